//go:build linux

package serial

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

type port struct {
	fd      int
	path    string
	timeout time.Duration
}

// Open opens the serial device at path in raw 8N1 mode at the given baud
// rate. Reads block for at most timeout before returning zero bytes.
func Open(path string, baud int, timeout time.Duration) (Port, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, err
	}

	// Best-effort: if anything below fails, close fd.
	ok := false
	defer func() {
		if !ok {
			_ = unix.Close(fd)
		}
	}()

	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	spd, err := baudToUnix(baud)
	if err != nil {
		return nil, err
	}

	// Raw mode: the bulk transfer phases carry arbitrary binary data, so no
	// line processing, flow control or parity.
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON | unix.IXOFF
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB | unix.CSTOPB | unix.CRTSCTS
	t.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL

	// VMIN=0/VTIME>0: a read returns as soon as at least one byte arrives,
	// or empty once the timeout elapses.
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = timeoutDeciseconds(timeout)

	t.Cflag &^= unix.CBAUD
	t.Cflag |= spd
	t.Ispeed = spd
	t.Ospeed = spd

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, t); err != nil {
		return nil, err
	}

	ok = true
	return &port{fd: fd, path: path, timeout: timeout}, nil
}

func timeoutDeciseconds(d time.Duration) uint8 {
	ds := int(d / (100 * time.Millisecond))
	if ds < 1 {
		ds = 1
	}
	if ds > 255 {
		ds = 255
	}
	return uint8(ds)
}

func (p *port) Read(b []byte) (int, error) {
	for {
		n, err := unix.Read(p.fd, b)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n < 0 {
			n = 0
		}
		return n, nil
	}
}

func (p *port) Write(b []byte) (int, error) {
	n, err := unix.Write(p.fd, b)
	if err != nil {
		return n, err
	}
	return n, nil
}

func (p *port) SetBaud(baud int) error {
	spd, err := baudToUnix(baud)
	if err != nil {
		return err
	}
	t, err := unix.IoctlGetTermios(p.fd, unix.TCGETS)
	if err != nil {
		return err
	}
	t.Cflag &^= unix.CBAUD
	t.Cflag |= spd
	t.Ispeed = spd
	t.Ospeed = spd
	return unix.IoctlSetTermios(p.fd, unix.TCSETS, t)
}

func (p *port) SendBreak() error {
	// Non-zero arg: POSIX-style duration in deciseconds.
	return unix.IoctlSetInt(p.fd, unix.TCSBRKP, 1)
}

func (p *port) Flush() error {
	return unix.IoctlSetInt(p.fd, unix.TCFLSH, unix.TCIOFLUSH)
}

func (p *port) Close() error {
	return unix.Close(p.fd)
}

func baudToUnix(baud int) (uint32, error) {
	switch baud {
	case 4800:
		return unix.B4800, nil
	case 9600:
		return unix.B9600, nil
	case 19200:
		return unix.B19200, nil
	case 38400:
		return unix.B38400, nil
	case 57600:
		return unix.B57600, nil
	case 115200:
		return unix.B115200, nil
	default:
		return 0, fmt.Errorf("unsupported baud %d", baud)
	}
}
