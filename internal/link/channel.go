// Package link implements the device's serial protocol: checksummed text
// commands and the chunked bulk transfer engine layered on top of them.
package link

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/codingforfun/navi2move/internal/serial"
)

// maxLineLen bounds a single response line; real replies are well under 100
// bytes, anything longer means the device is streaming garbage.
const maxLineLen = 512

// Channel builds and validates single-line checksummed commands over the
// transport.
type Channel struct {
	port serial.Port

	// Quiet suppresses the operator echo of received lines.
	Quiet bool
	// Settle is the pause after each write; the firmware drops bytes that
	// arrive while it is still processing the previous command.
	Settle time.Duration
}

func NewChannel(port serial.Port) *Channel {
	return &Channel{port: port, Settle: 200 * time.Millisecond}
}

// Checksum computes the line checksum of body: the XOR of all bytes, with a
// leading '$' stripped, rendered as two uppercase hex digits.
func Checksum(body []byte) string {
	if len(body) > 0 && body[0] == '$' {
		body = body[1:]
	}
	var ck byte
	for _, b := range body {
		ck ^= b
	}
	return fmt.Sprintf("%02X", ck)
}

// SendCommand appends "*HH\r\n" to body and writes it.
func (c *Channel) SendCommand(body string) error {
	line := body + "*" + Checksum([]byte(body)) + "\r\n"
	return c.WriteRaw([]byte(line))
}

// WriteRaw writes b as-is (no checksum, no line terminator) and settles.
func (c *Channel) WriteRaw(b []byte) error {
	if _, err := c.port.Write(b); err != nil {
		return err
	}
	if c.Settle > 0 {
		time.Sleep(c.Settle)
	}
	return nil
}

// Response reads one line, verifies its trailing checksum unless
// checkChecksum is disabled, and enforces expectPrefix when non-empty.
//
// Checksum validation can be disabled because the device answers some send
// initiations with a known-bad checksum.
func (c *Channel) Response(expectPrefix string, checkChecksum bool) (string, error) {
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	if !c.Quiet {
		log.Printf("received response: %q", line)
	}
	if checkChecksum {
		if err := VerifyChecksum(line); err != nil {
			return "", err
		}
	}
	if expectPrefix != "" && !strings.HasPrefix(line, expectPrefix) {
		return "", fmt.Errorf("unexpected response %q, want prefix %q: %w",
			line, expectPrefix, ErrBadResponse)
	}
	return line, nil
}

// VerifyChecksum recomputes the trailing "*HH" checksum of a response line
// and compares it, case-insensitively, to the received one.
func VerifyChecksum(line string) error {
	s := strings.TrimRight(line, "\r\n")
	if strings.HasPrefix(s, "$") {
		s = s[1:]
	}
	if len(s) < 3 || s[len(s)-3] != '*' {
		return fmt.Errorf("unchecksummed message %q: %w", line, ErrBadChecksum)
	}
	body, got := s[:len(s)-3], strings.ToUpper(s[len(s)-2:])
	want := Checksum([]byte(body))
	if got != want {
		return fmt.Errorf("message %q: want checksum %s, got %s: %w",
			body, want, got, ErrBadChecksum)
	}
	return nil
}

// readLine reads bytes until a '\n'. A timed-out read ends the line early;
// validation of the truncated result reports the failure.
func (c *Channel) readLine() (string, error) {
	var buf []byte
	b := make([]byte, 1)
	for len(buf) < maxLineLen {
		n, err := c.port.Read(b)
		if err != nil {
			return "", err
		}
		if n == 0 {
			break
		}
		buf = append(buf, b[0])
		if b[0] == '\n' {
			break
		}
	}
	return string(buf), nil
}
