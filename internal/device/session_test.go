package device

import (
	"encoding/binary"
	"testing"

	"github.com/codingforfun/navi2move/internal/record"
)

// xmodemCRC mirrors the chunk checksum the firmware computes, bit by bit.
func xmodemCRC(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func frameChunk(seq byte, payload []byte) []byte {
	frame := []byte{0x02, seq, 0xFF - seq}
	frame = append(frame, payload...)
	return binary.BigEndian.AppendUint16(frame, xmodemCRC(payload))
}

func fastSession(t *testing.T, p *fakePort) *Session {
	t.Helper()
	s, err := NewSession(p, Options{Quiet: true})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.ch.Settle = 0
	s.eng.AckPoll = 0
	s.eng.ChunkSettle = 0
	s.eng.BreakSettle = 0
	return s
}

func TestNewSessionFlushes(t *testing.T) {
	p := &fakePort{}
	fastSession(t, p)
	if p.flushes != 1 {
		t.Fatalf("got %d flushes, want 1", p.flushes)
	}
}

func TestGetPois(t *testing.T) {
	a, _ := record.NewPoi("2020-05-06T07:08:09Z", 5212345, 1323456, 1)
	b, _ := record.NewPoi("2020-05-07T10:11:12Z", 5213000, 1324000, 2)
	payload := record.EncodePois([]record.Poi{a, b})

	p := &fakePort{script: [][]byte{
		respLine("$POEM200,12"),
		frameChunk(1, payload),
		{},
		{0x04},
	}}
	s := fastSession(t, p)

	pois, err := s.GetPois()
	if err != nil {
		t.Fatalf("GetPois: %v", err)
	}
	if len(pois) != 2 || pois[0] != a || pois[1] != b {
		t.Fatalf("pois = %+v", pois)
	}
}

func TestGetTracks(t *testing.T) {
	// Two fixes ten seconds apart, then one an hour later: two tracks.
	payload := make([]byte, 0, 3*record.TrackPointLen)
	for _, off := range []int32{0, 10, 3700} {
		rec := make([]byte, record.TrackPointLen)
		binary.LittleEndian.PutUint32(rec[0:4], uint32(off))
		binary.LittleEndian.PutUint32(rec[4:8], 100)
		binary.LittleEndian.PutUint32(rec[8:12], 200)
		binary.LittleEndian.PutUint32(rec[12:16], 300)
		payload = append(payload, rec...)
	}

	p := &fakePort{script: [][]byte{
		respLine("$POEM200,12"),
		frameChunk(1, payload),
		{},
		{0x04},
	}}
	s := fastSession(t, p)
	s.transform = func(x, y, z float64) (float64, float64, float64) { return x, y, z }

	tracks, err := s.GetTracks()
	if err != nil {
		t.Fatalf("GetTracks: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if len(tracks[0].Points) != 2 || len(tracks[1].Points) != 1 {
		t.Fatalf("track sizes = %d, %d", len(tracks[0].Points), len(tracks[1].Points))
	}
	if p0 := tracks[0].Points[0]; p0.Lon != 100 || p0.Lat != 200 || p0.Elevation != 300 {
		t.Errorf("first point = %+v", p0)
	}
}

func TestGetRoute(t *testing.T) {
	want := &record.Route{Points: []record.RoutePoint{
		record.NewRoutePoint("Home", record.SymbolNone, 5212345, 1323456, 0),
		record.NewRoutePoint("Work", record.SymbolLeft, 5213000, 1324000, 0),
	}}

	p := &fakePort{script: [][]byte{
		respLine("$POEM200,12"),
		frameChunk(1, want.Encode()),
		{},
		{0x04},
	}}
	s := fastSession(t, p)

	route, err := s.GetRoute()
	if err != nil {
		t.Fatalf("GetRoute: %v", err)
	}
	if len(route.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(route.Points))
	}
	for i, wp := range want.Points {
		if route.Points[i] != wp {
			t.Errorf("point %d = %+v, want %+v", i, route.Points[i], wp)
		}
	}
}

func TestSendPois(t *testing.T) {
	a, _ := record.NewPoi("2020-05-06T07:08:09Z", 5212345, 1323456, 1)

	p := &fakePort{script: [][]byte{
		// The initiation response to an upload carries a known-bad checksum.
		[]byte("$POEM200,12*FF\r\n"),
		{0x15, 0x06, 0x06}, // opening NAK, chunk accepted, EOT accepted
	}}
	s := fastSession(t, p)

	if err := s.SendPois([]record.Poi{a}); err != nil {
		t.Fatalf("SendPois: %v", err)
	}
	// Command, one chunk, end-of-transmission.
	if len(p.writes) != 3 {
		t.Fatalf("got %d writes, want 3", len(p.writes))
	}
	chunk := p.writes[1]
	if len(chunk) != 3+1024+1 {
		t.Fatalf("chunk length = %d", len(chunk))
	}
}

func TestSendPoisEmpty(t *testing.T) {
	p := &fakePort{}
	s := fastSession(t, p)
	if err := s.SendPois(nil); err == nil {
		t.Fatal("empty upload accepted")
	}
	if len(p.writes) != 0 {
		t.Fatalf("wrote %d messages for an empty upload", len(p.writes))
	}
}

func TestSendRouteEmpty(t *testing.T) {
	p := &fakePort{}
	s := fastSession(t, p)
	if err := s.SendRoute(&record.Route{}); err == nil {
		t.Fatal("empty route accepted")
	}
}
