package link

import (
	"errors"
	"fmt"
)

var (
	// ErrBadResponse indicates an unexpected or malformed response line.
	ErrBadResponse = errors.New("bad response")

	// ErrBadChecksum indicates a checksum mismatch in any guarded region:
	// command line, chunk CRC, chunk sum or route header. It is a
	// specialization of ErrBadResponse.
	ErrBadChecksum = fmt.Errorf("bad checksum: %w", ErrBadResponse)

	// ErrAckTimeout indicates the device sent neither acknowledge byte
	// within the bounded wait. The link is assumed hung; the whole session
	// must be aborted.
	ErrAckTimeout = errors.New("no acknowledge received within deadline")

	// ErrNotAcknowledged indicates the device refused the end-of-transfer
	// handshake after all chunks were accepted.
	ErrNotAcknowledged = errors.New("end of transfer not acknowledged by the device")
)
