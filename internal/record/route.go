package record

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/codingforfun/navi2move/internal/link"
)

const (
	// RoutePointLen is the fixed on-wire size of one route waypoint.
	RoutePointLen = 76

	routeHeaderLen = 20

	// maxNameUnits is the name capacity of a route point: 32 UTF-16 code
	// units, stored as char table indices.
	maxNameUnits = 32
)

// RoutePoint is one route waypoint. Lat/Lon are degrees scaled by 1e5.
type RoutePoint struct {
	Name   string
	Symbol Symbol
	LatE5  int32
	LonE5  int32

	// Elevation in meters; zero unless sourced from the interchange adapter
	// (the wire format does not carry it).
	Elevation float64
}

// NewRoutePoint builds a waypoint from interchange fields, truncating the
// name beyond 32 UTF-16 code units.
func NewRoutePoint(name string, symbol Symbol, latE5, lonE5 int32, elevation float64) RoutePoint {
	return RoutePoint{
		Name:      truncateName(name),
		Symbol:    symbol,
		LatE5:     latE5,
		LonE5:     lonE5,
		Elevation: elevation,
	}
}

// LatDegrees returns the latitude in degrees.
func (p RoutePoint) LatDegrees() float64 { return float64(p.LatE5) / 1e5 }

// LonDegrees returns the longitude in degrees.
func (p RoutePoint) LonDegrees() float64 { return float64(p.LonE5) / 1e5 }

func truncateName(name string) string {
	units := utf16.Encode([]rune(name))
	if len(units) <= maxNameUnits {
		return name
	}
	return string(utf16.Decode(units[:maxNameUnits]))
}

// nameUnits returns the name as UTF-16 code units, the alphabet of the char
// table, capped at the record's name capacity.
func (p RoutePoint) nameUnits() []uint16 {
	units := utf16.Encode([]rune(p.Name))
	if len(units) > maxNameUnits {
		units = units[:maxNameUnits]
	}
	return units
}

// Route is an ordered sequence of waypoints. The char table, glyph section
// and header offsets are derived on encode, never stored.
type Route struct {
	Points []RoutePoint
}

// DecodeRoute parses a complete binary route buffer: header, point records,
// char table and glyph bitmap section. The glyph section's pixel contents
// are not interpreted, only its extent.
func DecodeRoute(buf []byte) (*Route, error) {
	if len(buf) < routeHeaderLen {
		return nil, fmt.Errorf("route: short buffer (%d bytes): %w", len(buf), link.ErrBadResponse)
	}
	header := buf[:routeHeaderLen]
	count := int(binary.LittleEndian.Uint16(header[2:4]))
	charTableOff := int(binary.LittleEndian.Uint32(header[4:8]))
	glyphOff := int(binary.LittleEndian.Uint32(header[8:12]))
	eofOff := int(binary.LittleEndian.Uint32(header[12:16]))

	want := binary.LittleEndian.Uint16(header[18:20])
	if got := headerChecksum(header[:18]); got != want {
		return nil, fmt.Errorf("route header: want checksum %04X, got %04X: %w",
			want, got, link.ErrBadChecksum)
	}

	if charTableOff < routeHeaderLen+count*RoutePointLen ||
		glyphOff < charTableOff || eofOff < glyphOff || eofOff > len(buf) {
		return nil, fmt.Errorf("route: inconsistent section offsets %d/%d/%d: %w",
			charTableOff, glyphOff, eofOff, link.ErrBadResponse)
	}

	table := decodeCharTable(buf[charTableOff:glyphOff])

	points := make([]RoutePoint, 0, count)
	for i := 0; i < count; i++ {
		rec := buf[routeHeaderLen+i*RoutePointLen : routeHeaderLen+(i+1)*RoutePointLen]
		p, err := decodeRoutePoint(rec, table)
		if err != nil {
			return nil, fmt.Errorf("route point %d: %w", i, err)
		}
		points = append(points, p)
	}
	return &Route{Points: points}, nil
}

func decodeCharTable(data []byte) []uint16 {
	table := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		table = append(table, binary.LittleEndian.Uint16(data[i:i+2]))
	}
	return table
}

func decodeRoutePoint(rec []byte, table []uint16) (RoutePoint, error) {
	var units []uint16
	for i := 0; i < maxNameUnits; i++ {
		ind := binary.LittleEndian.Uint16(rec[2*i : 2*i+2])
		if ind == 0 {
			// Index 0 is the unused/terminator entry; it never appears in a
			// stored name.
			continue
		}
		if int(ind) >= len(table) {
			return RoutePoint{}, fmt.Errorf("char table index %d out of range (table has %d entries): %w",
				ind, len(table), link.ErrBadResponse)
		}
		units = append(units, table[ind])
	}
	return RoutePoint{
		Name:   string(utf16.Decode(units)),
		Symbol: Symbol(binary.LittleEndian.Uint16(rec[64:66])),
		LatE5:  int32(binary.LittleEndian.Uint32(rec[68:72])),
		LonE5:  int32(binary.LittleEndian.Uint32(rec[72:76])),
	}, nil
}

// Encode emits the complete binary route: header, point records, char table
// and glyph bitmaps, with all three section offsets computed from the actual
// section lengths.
func (r *Route) Encode() []byte {
	table, index := r.charTable()

	points := make([]byte, 0, len(r.Points)*RoutePointLen)
	for _, p := range r.Points {
		points = append(points, encodeRoutePoint(p, index)...)
	}

	tableBin := make([]byte, 2*len(table))
	for i, u := range table {
		binary.LittleEndian.PutUint16(tableBin[2*i:], u)
	}

	glyphs := make([]byte, 0, len(table)*glyphLen)
	for _, u := range table {
		g := glyphFor(rune(u))
		glyphs = append(glyphs, g[:]...)
	}

	charTableOff := routeHeaderLen + len(points)
	glyphOff := charTableOff + len(tableBin)
	eofOff := glyphOff + len(glyphs)

	header := make([]byte, routeHeaderLen)
	binary.LittleEndian.PutUint16(header[0:2], 1)
	binary.LittleEndian.PutUint16(header[2:4], uint16(len(r.Points)))
	binary.LittleEndian.PutUint32(header[4:8], uint32(charTableOff))
	binary.LittleEndian.PutUint32(header[8:12], uint32(glyphOff))
	binary.LittleEndian.PutUint32(header[12:16], uint32(eofOff))
	binary.LittleEndian.PutUint16(header[18:20], headerChecksum(header[:18]))

	out := make([]byte, 0, eofOff)
	out = append(out, header...)
	out = append(out, points...)
	out = append(out, tableBin...)
	out = append(out, glyphs...)
	return out
}

// charTable collects the unique UTF-16 units across all point names in
// first-seen order. Entry 0 is the reserved unused/terminator unit.
func (r *Route) charTable() ([]uint16, map[uint16]uint16) {
	table := []uint16{0}
	index := map[uint16]uint16{0: 0}
	for _, p := range r.Points {
		for _, u := range p.nameUnits() {
			if _, ok := index[u]; ok {
				continue
			}
			index[u] = uint16(len(table))
			table = append(table, u)
		}
	}
	return table, index
}

func encodeRoutePoint(p RoutePoint, index map[uint16]uint16) []byte {
	rec := make([]byte, RoutePointLen)
	for i, u := range p.nameUnits() {
		binary.LittleEndian.PutUint16(rec[2*i:], index[u])
	}
	binary.LittleEndian.PutUint32(rec[64:68], uint32(p.Symbol))
	binary.LittleEndian.PutUint32(rec[68:72], uint32(p.LatE5))
	binary.LittleEndian.PutUint32(rec[72:76], uint32(p.LonE5))
	return rec
}

// headerChecksum is the negated modulo-2^16 sum of the first 18 header
// bytes, stored as a little-endian two's-complement 16-bit value.
func headerChecksum(hdr []byte) uint16 {
	var s uint16
	for _, b := range hdr {
		s += uint16(b)
	}
	return -s
}
