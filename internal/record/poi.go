package record

import (
	"encoding/binary"
	"fmt"
	"time"
)

// PoiLen is the fixed on-wire size of one point of interest.
const PoiLen = 16

// TimeLayout is the interchange timestamp format at the adapter boundary.
const TimeLayout = "2006-01-02T15:04:05Z"

// poiReserved is byte 7 of an encoded POI. Downloaded records carry varying
// values there; encoding always writes this one.
const poiReserved = 0xA0

// Poi is one point of interest. Lat/Lon are degrees scaled by 1e5, as
// stored on the wire.
type Poi struct {
	Time   time.Time // UTC
	LatE5  int32
	LonE5  int32
	Symbol int
}

// NewPoi builds a POI from interchange fields. timeString must be an
// ISO-8601 UTC timestamp.
func NewPoi(timeString string, latE5, lonE5 int32, symbol int) (Poi, error) {
	t, err := time.Parse(TimeLayout, timeString)
	if err != nil {
		return Poi{}, fmt.Errorf("poi time %q: %v", timeString, err)
	}
	if symbol < 0 || symbol > 0xFF {
		return Poi{}, fmt.Errorf("poi symbol %d out of range", symbol)
	}
	return Poi{Time: t.UTC(), LatE5: latE5, LonE5: lonE5, Symbol: symbol}, nil
}

// LatDegrees returns the latitude in degrees.
func (p Poi) LatDegrees() float64 { return float64(p.LatE5) / 1e5 }

// LonDegrees returns the longitude in degrees.
func (p Poi) LonDegrees() float64 { return float64(p.LonE5) / 1e5 }

// TimeString renders the timestamp in the interchange format.
func (p Poi) TimeString() string { return p.Time.UTC().Format(TimeLayout) }

// DecodePoi decodes one 16-byte POI record: six packed UTC date/time bytes
// (year offset from 1900), a symbol byte, a reserved byte and two scaled
// little-endian coordinates, latitude first.
func DecodePoi(buf []byte) (Poi, error) {
	if len(buf) != PoiLen {
		return Poi{}, fmt.Errorf("poi: want %d bytes, got %d", PoiLen, len(buf))
	}
	t := time.Date(1900+int(buf[0]), time.Month(buf[1]), int(buf[2]),
		int(buf[3]), int(buf[4]), int(buf[5]), 0, time.UTC)
	return Poi{
		Time:   t,
		Symbol: int(buf[6]),
		LatE5:  int32(binary.LittleEndian.Uint32(buf[8:12])),
		LonE5:  int32(binary.LittleEndian.Uint32(buf[12:16])),
	}, nil
}

// Encode is the exact inverse of DecodePoi, except that the reserved byte is
// forced to 0xA0.
func (p Poi) Encode() []byte {
	buf := make([]byte, PoiLen)
	t := p.Time.UTC()
	buf[0] = byte(t.Year() - 1900)
	buf[1] = byte(t.Month())
	buf[2] = byte(t.Day())
	buf[3] = byte(t.Hour())
	buf[4] = byte(t.Minute())
	buf[5] = byte(t.Second())
	buf[6] = byte(p.Symbol)
	buf[7] = poiReserved
	binary.LittleEndian.PutUint32(buf[8:12], uint32(p.LatE5))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(p.LonE5))
	return buf
}

// EncodePois concatenates the wire encodings of pois.
func EncodePois(pois []Poi) []byte {
	out := make([]byte, 0, len(pois)*PoiLen)
	for _, p := range pois {
		out = append(out, p.Encode()...)
	}
	return out
}
