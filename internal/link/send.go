package link

import (
	"fmt"
	"time"
)

// MakeChunks partitions data into framed chunks for sending: a start byte,
// an ascending sequence number with its complement, exactly ChunkPayloadLen
// payload bytes (the final chunk 0xFF-padded to full length) and a trailing
// modulo-256 payload sum.
func MakeChunks(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	var chunks [][]byte
	for i := 0; i < len(data); i += ChunkPayloadLen {
		end := i + ChunkPayloadLen
		if end > len(data) {
			end = len(data)
		}
		payload := make([]byte, ChunkPayloadLen)
		copy(payload, data[i:end])
		for j := end - i; j < ChunkPayloadLen; j++ {
			payload[j] = 0xFF
		}
		seq := byte(len(chunks) + 1)
		frame := make([]byte, 0, 3+ChunkPayloadLen+1)
		frame = append(frame, stx, seq, 0xFF-seq)
		frame = append(frame, payload...)
		frame = append(frame, sum8(payload))
		chunks = append(chunks, frame)
	}
	return chunks
}

// SendData performs a full bulk send: initiate with initCmd (checksum
// validation of the initiation response may be disabled for device-specific
// known-bad checksums), switch to the high baud rate, wait for the device's
// opening acknowledge byte, stream the chunks with per-chunk retry on
// negative acknowledge, and close with the end-of-transmission handshake.
// The low baud rate is restored regardless of the outcome.
func (e *Engine) SendData(initCmd, expectPrefix string, data []byte, checkChecksum bool) (err error) {
	if err := e.ch.SendCommand(initCmd); err != nil {
		return err
	}
	if _, err := e.ch.Response(expectPrefix, checkChecksum); err != nil {
		return err
	}
	if err := e.switchBaud(highBaud); err != nil {
		return err
	}
	defer func() {
		if rerr := e.switchBaud(lowBaud); rerr != nil && err == nil {
			err = rerr
		}
	}()

	chunks := MakeChunks(data)

	// The device opens the exchange with an acknowledge byte of its own,
	// usually a NAK. Only its arrival matters.
	if _, err := e.waitForAcknowledge(); err != nil {
		return err
	}
	for _, chunk := range chunks {
		for {
			if err := e.ch.WriteRaw(chunk); err != nil {
				return err
			}
			ok, err := e.waitForAcknowledge()
			if err != nil {
				return err
			}
			if ok {
				break
			}
			// NAK: resend the identical chunk. The retry is unbounded; a
			// hung device surfaces through the acknowledge timeout instead.
		}
	}
	if err := e.ch.WriteRaw([]byte{eot}); err != nil {
		return err
	}
	ok, err := e.waitForAcknowledge()
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrNotAcknowledged)
	}
	if !ok {
		return ErrNotAcknowledged
	}
	return nil
}

// waitForAcknowledge blocks until the device sends a positive (0x06) or
// negative (0x15) acknowledge byte. Other bytes are ignored. If neither
// arrives within AckTimeout the link is assumed hung and the session is
// unrecoverable.
func (e *Engine) waitForAcknowledge() (bool, error) {
	deadline := time.Now().Add(e.AckTimeout)
	b := make([]byte, 1)
	for {
		n, err := e.port.Read(b)
		if err != nil {
			return false, err
		}
		if n > 0 {
			switch b[0] {
			case ack:
				return true, nil
			case nak:
				return false, nil
			}
			continue
		}
		if time.Now().After(deadline) {
			return false, fmt.Errorf("waited %s: %w", e.AckTimeout, ErrAckTimeout)
		}
		if e.AckPoll > 0 {
			time.Sleep(e.AckPoll)
		}
	}
}
