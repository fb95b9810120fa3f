// Package serial provides the byte transport to the navi2move device: a
// raw serial port with timed reads, runtime baud switching, break signalling
// and buffer flushing, plus sysfs-based device discovery.
package serial

import "io"

// Port is a duplex byte stream to the device.
//
// Read returns (0, nil) when the configured read timeout elapses without any
// data; callers treat that as "line idle", not as an error or EOF.
type Port interface {
	io.ReadWriteCloser

	// SetBaud changes the line rate without reopening the port.
	SetBaud(baud int) error
	// SendBreak holds the TX line in break condition for ~0.1 s.
	SendBreak() error
	// Flush discards anything pending in the input and output buffers.
	Flush() error
}
