package link

import (
	"encoding/binary"
	"fmt"
	"log"
	"time"

	"github.com/codingforfun/navi2move/internal/serial"
)

const (
	stx = 0x02 // start of a data chunk
	eot = 0x04 // end of transmission
	ack = 0x06
	nak = 0x15

	// ChunkPayloadLen is the bulk payload carried per chunk. A full receive
	// frame is 3 header bytes, the payload and a 2-byte CRC.
	ChunkPayloadLen = 1024

	chunkFrameLen = 3 + ChunkPayloadLen + 2

	lowBaud  = 9600
	highBaud = 115200

	continueByte = 'C'
)

// Engine runs the chunked bulk get/send protocol. It owns the transport
// exclusively for the duration of an operation; the protocol is half-duplex
// and strictly sequential.
type Engine struct {
	ch   *Channel
	port serial.Port

	// AckTimeout bounds the wait for an acknowledge byte on the send path.
	AckTimeout time.Duration
	// AckPoll is the idle pause between acknowledge-wait reads.
	AckPoll time.Duration
	// ChunkSettle is the pause before reading a chunk, letting the device
	// finish its burst.
	ChunkSettle time.Duration
	// BreakSettle is the pause after a break before reprogramming the line.
	BreakSettle time.Duration
}

func NewEngine(ch *Channel, port serial.Port) *Engine {
	return &Engine{
		ch:          ch,
		port:        port,
		AckTimeout:  10 * time.Second,
		AckPoll:     50 * time.Millisecond,
		ChunkSettle: 500 * time.Millisecond,
		BreakSettle: 110 * time.Millisecond,
	}
}

// chunkResult is the outcome of one chunk read: either payload data
// (possibly empty, when the device pauses between bursts) or end-of-stream.
type chunkResult struct {
	data []byte
	end  bool
}

// GetData performs a full bulk receive: initiate with initCmd, require a
// response starting with expectPrefix, switch to the high baud rate, pull
// chunks until end-of-transmission, then restore the low rate. The returned
// slices are the raw chunk payloads in arrival order.
func (e *Engine) GetData(initCmd, expectPrefix string) ([][]byte, error) {
	if err := e.ch.SendCommand(initCmd); err != nil {
		return nil, err
	}
	if _, err := e.ch.Response(expectPrefix, true); err != nil {
		return nil, err
	}
	if err := e.switchBaud(highBaud); err != nil {
		return nil, err
	}
	if err := e.ch.WriteRaw([]byte{continueByte}); err != nil {
		return nil, err
	}
	var chunks [][]byte
	for {
		c, err := e.readChunk()
		if err != nil {
			return nil, err
		}
		if c.end {
			break
		}
		// Acknowledge before requesting the next chunk. EOT is not data and
		// is not acknowledged.
		if err := e.ch.WriteRaw([]byte{ack}); err != nil {
			return nil, err
		}
		if len(c.data) > 0 {
			chunks = append(chunks, c.data)
		}
	}
	if err := e.switchBaud(lowBaud); err != nil {
		return nil, err
	}
	return chunks, nil
}

// readChunk pulls one framed chunk off the wire. An end-of-transmission
// marker is a normal result, not an error.
func (e *Engine) readChunk() (chunkResult, error) {
	if e.ChunkSettle > 0 {
		time.Sleep(e.ChunkSettle)
	}
	frame, err := e.readBurst(chunkFrameLen)
	if err != nil {
		return chunkResult{}, err
	}
	if len(frame) == 0 {
		return chunkResult{}, nil
	}
	switch frame[0] {
	case eot:
		return chunkResult{end: true}, nil
	case stx:
		if len(frame) < 5 {
			return chunkResult{}, fmt.Errorf("short chunk frame (%d bytes): %w",
				len(frame), ErrBadResponse)
		}
		payload := frame[3 : len(frame)-2]
		want := binary.BigEndian.Uint16(frame[len(frame)-2:])
		if got := crc16(payload); got != want {
			return chunkResult{}, fmt.Errorf("chunk %d: want crc %04X, got %04X: %w",
				frame[1], want, got, ErrBadChecksum)
		}
		return chunkResult{data: payload}, nil
	default:
		return chunkResult{}, fmt.Errorf("unexpected chunk start byte 0x%02X: %w",
			frame[0], ErrBadResponse)
	}
}

// readBurst accumulates bytes until the line goes idle or max bytes arrived.
// The first read blocks for the transport's own timeout.
func (e *Engine) readBurst(max int) ([]byte, error) {
	buf := make([]byte, 0, max)
	tmp := make([]byte, 512)
	for len(buf) < max {
		n, err := e.port.Read(tmp)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		buf = append(buf, tmp[:n]...)
	}
	return buf, nil
}

// switchBaud sends a break, waits for the device to notice, and reprograms
// the line rate. Bulk transfer only works after this dance.
func (e *Engine) switchBaud(baud int) error {
	if err := e.port.SendBreak(); err != nil {
		return err
	}
	if e.BreakSettle > 0 {
		time.Sleep(e.BreakSettle)
	}
	if err := e.port.SetBaud(baud); err != nil {
		return err
	}
	if !e.ch.Quiet {
		log.Printf("set baudrate to %d", baud)
	}
	return nil
}
