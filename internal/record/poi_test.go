package record

import (
	"testing"
	"time"
)

func TestPoiRoundTrip(t *testing.T) {
	poi, err := NewPoi("2020-05-06T07:08:09Z", 5212345, -1323456, 3)
	if err != nil {
		t.Fatalf("NewPoi: %v", err)
	}

	buf := poi.Encode()
	if len(buf) != PoiLen {
		t.Fatalf("encoded length = %d", len(buf))
	}
	if buf[7] != 0xA0 {
		t.Errorf("reserved byte = %02X, want A0", buf[7])
	}

	got, err := DecodePoi(buf)
	if err != nil {
		t.Fatalf("DecodePoi: %v", err)
	}
	if got != poi {
		t.Fatalf("round trip: got %+v, want %+v", got, poi)
	}
	if got.TimeString() != "2020-05-06T07:08:09Z" {
		t.Errorf("TimeString = %s", got.TimeString())
	}
	if got.LatDegrees() != 52.12345 || got.LonDegrees() != -13.23456 {
		t.Errorf("degrees = (%v, %v)", got.LatDegrees(), got.LonDegrees())
	}
}

func TestDecodePoiIgnoresReserved(t *testing.T) {
	// Downloaded records carry arbitrary values in the reserved byte.
	poi, err := NewPoi("2019-01-02T03:04:05Z", 100, 200, 0)
	if err != nil {
		t.Fatalf("NewPoi: %v", err)
	}
	buf := poi.Encode()
	buf[7] = 0x17
	got, err := DecodePoi(buf)
	if err != nil {
		t.Fatalf("DecodePoi: %v", err)
	}
	if got != poi {
		t.Fatalf("got %+v, want %+v", got, poi)
	}
}

func TestNewPoiRejectsBadInput(t *testing.T) {
	if _, err := NewPoi("06.05.2020 07:08", 0, 0, 0); err == nil {
		t.Error("malformed time accepted")
	}
	if _, err := NewPoi("2020-05-06T07:08:09Z", 0, 0, 256); err == nil {
		t.Error("out-of-range symbol accepted")
	}
	if _, err := NewPoi("2020-05-06T07:08:09Z", 0, 0, -1); err == nil {
		t.Error("negative symbol accepted")
	}
}

func TestDecodePoiBadLength(t *testing.T) {
	if _, err := DecodePoi(make([]byte, 15)); err == nil {
		t.Fatal("short record accepted")
	}
}

func TestEncodePois(t *testing.T) {
	a, _ := NewPoi("2020-05-06T07:08:09Z", 1, 2, 0)
	b, _ := NewPoi("2020-05-06T07:08:10Z", 3, 4, 1)
	buf := EncodePois([]Poi{a, b})
	if len(buf) != 2*PoiLen {
		t.Fatalf("length = %d", len(buf))
	}
	got, err := DecodePoi(buf[PoiLen:])
	if err != nil {
		t.Fatalf("DecodePoi: %v", err)
	}
	if got != b {
		t.Fatalf("second poi = %+v, want %+v", got, b)
	}
}

func TestPoiTimeNormalizedToUTC(t *testing.T) {
	poi := Poi{Time: time.Date(2020, 5, 6, 9, 8, 9, 0, time.FixedZone("CEST", 2*3600))}
	got, err := DecodePoi(poi.Encode())
	if err != nil {
		t.Fatalf("DecodePoi: %v", err)
	}
	want := time.Date(2020, 5, 6, 7, 8, 9, 0, time.UTC)
	if !got.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", got.Time, want)
	}
}
