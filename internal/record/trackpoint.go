// Package record implements the device's three binary record formats:
// track points, points of interest and routes.
package record

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/codingforfun/navi2move/internal/geo"
)

// TrackPointLen is the fixed on-wire size of one logged position fix. Only
// the first 16 bytes carry data; the firmware pads each record to 20.
const TrackPointLen = 20

// trackEpoch is the device's time origin, 2014-01-14T14:36:50Z, as Unix
// seconds. Raw timestamps are int32 seconds from this instant.
const trackEpoch int64 = 1389710210

// TrackPoint is one logged position fix.
type TrackPoint struct {
	Time time.Time

	// Raw earth-centered coordinates, meters from the earth's center.
	ECEFX, ECEFY, ECEFZ float64

	// Geographic coordinates derived through the geodesy transform.
	Lon, Lat, Elevation float64
}

// DecodeTrackPoint decodes one 20-byte track point record. transform maps
// the raw earth-centered triple to geographic coordinates.
func DecodeTrackPoint(buf []byte, transform geo.Transform) (TrackPoint, error) {
	if len(buf) != TrackPointLen {
		return TrackPoint{}, fmt.Errorf("track point: want %d bytes, got %d",
			TrackPointLen, len(buf))
	}
	offset := int32(binary.LittleEndian.Uint32(buf[0:4]))
	x := float64(int32(binary.LittleEndian.Uint32(buf[4:8])))
	y := float64(int32(binary.LittleEndian.Uint32(buf[8:12])))
	z := float64(int32(binary.LittleEndian.Uint32(buf[12:16])))
	lon, lat, ele := transform(x, y, z)
	return TrackPoint{
		Time:  time.Unix(trackEpoch+int64(offset), 0).UTC(),
		ECEFX: x, ECEFY: y, ECEFZ: z,
		Lon: lon, Lat: lat, Elevation: ele,
	}, nil
}
