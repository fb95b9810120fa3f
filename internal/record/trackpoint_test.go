package record

import (
	"encoding/binary"
	"testing"
	"time"
)

func stubTransform(x, y, z float64) (lon, lat, elevation float64) {
	return x / 10, y / 10, z / 10
}

func trackPointBytes(offset, x, y, z int32) []byte {
	buf := make([]byte, TrackPointLen)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(offset))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(x))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(y))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(z))
	return buf
}

func TestDecodeTrackPoint(t *testing.T) {
	p, err := DecodeTrackPoint(trackPointBytes(100, 10, 20, -30), stubTransform)
	if err != nil {
		t.Fatalf("DecodeTrackPoint: %v", err)
	}
	// 100 seconds past the device epoch 2014-01-14T14:36:50Z.
	want := time.Date(2014, 1, 14, 14, 38, 30, 0, time.UTC)
	if !p.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", p.Time, want)
	}
	if p.ECEFX != 10 || p.ECEFY != 20 || p.ECEFZ != -30 {
		t.Errorf("ECEF = (%v, %v, %v)", p.ECEFX, p.ECEFY, p.ECEFZ)
	}
	if p.Lon != 1 || p.Lat != 2 || p.Elevation != -3 {
		t.Errorf("geodetic = (%v, %v, %v)", p.Lon, p.Lat, p.Elevation)
	}
}

func TestDecodeTrackPointBadLength(t *testing.T) {
	if _, err := DecodeTrackPoint(make([]byte, 16), stubTransform); err == nil {
		t.Fatal("short record accepted")
	}
}

func TestSplitTrack(t *testing.T) {
	base := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	points := make([]TrackPoint, 0, 4)
	for _, off := range []int{0, 10, 3700, 3710} {
		points = append(points, TrackPoint{Time: base.Add(time.Duration(off) * time.Second)})
	}

	tracks := SplitTrack(points, time.Hour)
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if len(tracks[0].Points) != 2 || len(tracks[1].Points) != 2 {
		t.Fatalf("track sizes = %d, %d", len(tracks[0].Points), len(tracks[1].Points))
	}
	if !tracks[1].Points[0].Time.Equal(base.Add(3700 * time.Second)) {
		t.Errorf("second track starts at %v", tracks[1].Points[0].Time)
	}
}

func TestSplitTrackEmpty(t *testing.T) {
	if tracks := SplitTrack(nil, time.Hour); tracks != nil {
		t.Fatalf("tracks = %v, want nil", tracks)
	}
}

func TestSplitTrackSinglePoint(t *testing.T) {
	points := []TrackPoint{{Time: time.Now()}}
	tracks := SplitTrack(points, time.Hour)
	if len(tracks) != 1 || len(tracks[0].Points) != 1 {
		t.Fatalf("tracks = %v", tracks)
	}
}
