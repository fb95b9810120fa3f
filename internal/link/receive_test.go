package link

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

// frameChunk builds a receive frame the way the device does: start byte,
// sequence and complement, payload, CRC big-endian.
func frameChunk(seq byte, payload []byte) []byte {
	frame := []byte{stx, seq, 0xFF - seq}
	frame = append(frame, payload...)
	crc := crc16(payload)
	return binary.BigEndian.AppendUint16(frame, crc)
}

func TestGetData(t *testing.T) {
	p1 := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	p2 := []byte{9, 10, 11, 12}
	p := &fakePort{script: [][]byte{
		[]byte("$POEM200,12*0A\r\n"),
		frameChunk(1, p1),
		{}, // line idle: first burst ends
		frameChunk(2, p2),
		{},
		{eot},
	}}
	e := fastEngine(p)

	chunks, err := e.GetData("$POEM12,14", "$POEM200,12")
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if len(chunks) != 2 || !bytes.Equal(chunks[0], p1) || !bytes.Equal(chunks[1], p2) {
		t.Fatalf("chunks = %v", chunks)
	}

	// The transfer brackets the high rate with breaks and restores 9600.
	if p.breaks != 2 {
		t.Errorf("got %d breaks, want 2", p.breaks)
	}
	if len(p.bauds) != 2 || p.bauds[0] != 115200 || p.bauds[1] != 9600 {
		t.Errorf("bauds = %v, want [115200 9600]", p.bauds)
	}

	// Command, continuation byte, one acknowledge per data chunk. The
	// end-of-transmission marker is not acknowledged.
	if len(p.writes) != 4 {
		t.Fatalf("got %d writes, want 4: %q", len(p.writes), p.writes)
	}
	if !bytes.Equal(p.writes[1], []byte{continueByte}) {
		t.Errorf("continuation write = %v", p.writes[1])
	}
	for _, w := range p.writes[2:] {
		if !bytes.Equal(w, []byte{ack}) {
			t.Errorf("acknowledge write = %v", w)
		}
	}
}

func TestGetDataBadCRC(t *testing.T) {
	frame := frameChunk(1, []byte{1, 2, 3, 4})
	frame[len(frame)-1] ^= 0x01
	p := &fakePort{script: [][]byte{
		[]byte("$POEM200,12*0A\r\n"),
		frame,
	}}
	e := fastEngine(p)

	_, err := e.GetData("$POEM12,14", "$POEM200,12")
	if !errors.Is(err, ErrBadChecksum) {
		t.Fatalf("got %v, want ErrBadChecksum", err)
	}
}

func TestGetDataUnexpectedStartByte(t *testing.T) {
	p := &fakePort{script: [][]byte{
		[]byte("$POEM200,12*0A\r\n"),
		{0x7F},
	}}
	e := fastEngine(p)

	_, err := e.GetData("$POEM12,14", "$POEM200,12")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("got %v, want ErrBadResponse", err)
	}
}

func TestGetDataIdleBetweenBursts(t *testing.T) {
	// The device may pause between chunks. An empty burst is not data and
	// not an error; the engine acknowledges and keeps polling.
	p1 := []byte{1, 2, 3, 4}
	p := &fakePort{script: [][]byte{
		[]byte("$POEM200,12*0A\r\n"),
		{}, // nothing yet
		frameChunk(1, p1),
		{},
		{eot},
	}}
	e := fastEngine(p)
	e.AckTimeout = 100 * time.Millisecond

	chunks, err := e.GetData("$POEM12,14", "$POEM200,12")
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if len(chunks) != 1 || !bytes.Equal(chunks[0], p1) {
		t.Fatalf("chunks = %v", chunks)
	}
}
