// Package gpx reads and writes GPX 1.1 files at the interchange boundary:
// it maps between XML elements and the record types, nothing more.
package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/codingforfun/navi2move/internal/record"
)

const gpxNamespace = "http://www.topografix.com/GPX/1/1"

type gpxDoc struct {
	XMLName   xml.Name `xml:"gpx"`
	Waypoints []point  `xml:"wpt"`
	Routes    []struct {
		Points []point `xml:"rtept"`
	} `xml:"rte"`
}

type point struct {
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Name string   `xml:"name"`
	Ele  *float64 `xml:"ele"`
	Time string   `xml:"time"`
	Sym  string   `xml:"sym"`
}

func parseFile(path string) (*gpxDoc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc gpxDoc
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return &doc, nil
}

func scale(deg float64) int32 {
	return int32(math.Round(deg * 1e5))
}

// ReadPois reads the waypoints of a GPX file as POIs. A waypoint must carry
// a <time> element; a <sym> of the form "POIn" selects symbol n, anything
// else falls back to 0.
func ReadPois(path string) ([]record.Poi, error) {
	doc, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	pois := make([]record.Poi, 0, len(doc.Waypoints))
	for i, wpt := range doc.Waypoints {
		if wpt.Time == "" {
			return nil, fmt.Errorf("%s: waypoint %d has no time element", path, i)
		}
		symbol := 0
		if n, err := strconv.Atoi(strings.TrimPrefix(wpt.Sym, "POI")); err == nil {
			symbol = n
		}
		poi, err := record.NewPoi(wpt.Time, scale(wpt.Lat), scale(wpt.Lon), symbol)
		if err != nil {
			return nil, fmt.Errorf("%s: waypoint %d: %v", path, i, err)
		}
		pois = append(pois, poi)
	}
	return pois, nil
}

// ReadRoute reads the first route of a GPX file. Route points without a name
// are named by their index; unknown symbols map to none; missing elevation
// is zero.
func ReadRoute(path string) (*record.Route, error) {
	doc, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	if len(doc.Routes) == 0 {
		return nil, fmt.Errorf("%s: no route element", path)
	}
	pts := doc.Routes[0].Points
	route := &record.Route{Points: make([]record.RoutePoint, 0, len(pts))}
	for i, rtept := range pts {
		name := rtept.Name
		if name == "" {
			name = strconv.Itoa(i)
		}
		var ele float64
		if rtept.Ele != nil {
			ele = *rtept.Ele
		}
		route.Points = append(route.Points, record.NewRoutePoint(
			name, record.SymbolFromName(rtept.Sym),
			scale(rtept.Lat), scale(rtept.Lon), ele))
	}
	return route, nil
}

// Output document shapes. Coordinates are preformatted strings so the files
// carry the device's five-decimal resolution, no more.

type outDoc struct {
	XMLName   xml.Name     `xml:"gpx"`
	Xmlns     string       `xml:"xmlns,attr"`
	Version   string       `xml:"version,attr"`
	Creator   string       `xml:"creator,attr"`
	Metadata  outMetadata  `xml:"metadata"`
	Waypoints []outPoint   `xml:"wpt,omitempty"`
	Route     *outPointSeq `xml:"rte,omitempty"`
}

type outMetadata struct {
	Name string `xml:"name"`
}

type outPointSeq struct {
	Points []outPoint `xml:"rtept"`
}

type outTrackSeg struct {
	Points []outPoint `xml:"trkpt"`
}

type outPoint struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Name string `xml:"name,omitempty"`
	Ele  string `xml:"ele,omitempty"`
	Time string `xml:"time,omitempty"`
	Sym  string `xml:"sym,omitempty"`
}

func writeDoc(w io.Writer, doc *outDoc) error {
	doc.Xmlns = gpxNamespace
	doc.Version = "1.1"
	doc.Creator = "conn2m"
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func coord(e5 int32) string {
	return strconv.FormatFloat(float64(e5)/1e5, 'f', 5, 64)
}

func coordDeg(deg float64) string {
	return strconv.FormatFloat(deg, 'f', 5, 64)
}

// WriteTrack writes one track as GPX.
func WriteTrack(w io.Writer, t record.Track) error {
	seg := make([]outPoint, 0, len(t.Points))
	for _, p := range t.Points {
		seg = append(seg, outPoint{
			Lat:  coordDeg(p.Lat),
			Lon:  coordDeg(p.Lon),
			Ele:  strconv.Itoa(int(p.Elevation)),
			Time: p.Time.UTC().Format(record.TimeLayout),
		})
	}
	name := ""
	if len(t.Points) > 0 {
		name = t.Points[0].Time.UTC().Format(record.TimeLayout)
	}
	return writeTrackDoc(w, name, seg)
}

func writeTrackDoc(w io.Writer, name string, seg []outPoint) error {
	// trkpt shares the outPoint shape but a different element name, so the
	// track segment is marshalled through its own wrapper.
	type trkDoc struct {
		XMLName  xml.Name    `xml:"gpx"`
		Xmlns    string      `xml:"xmlns,attr"`
		Version  string      `xml:"version,attr"`
		Creator  string      `xml:"creator,attr"`
		Metadata outMetadata `xml:"metadata"`
		Track    struct {
			Name    string      `xml:"name"`
			Segment outTrackSeg `xml:"trkseg"`
		} `xml:"trk"`
	}
	var doc trkDoc
	doc.Xmlns = gpxNamespace
	doc.Version = "1.1"
	doc.Creator = "conn2m"
	doc.Metadata.Name = "Track export from conn2m"
	doc.Track.Name = name
	doc.Track.Segment.Points = seg
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WritePois writes POIs as GPX waypoints, named by their timestamp.
func WritePois(w io.Writer, pois []record.Poi) error {
	doc := &outDoc{Metadata: outMetadata{Name: "POI export from conn2m"}}
	for _, p := range pois {
		ts := p.TimeString()
		doc.Waypoints = append(doc.Waypoints, outPoint{
			Lat:  coord(p.LatE5),
			Lon:  coord(p.LonE5),
			Name: ts,
			Time: ts,
			Sym:  fmt.Sprintf("POI%d", p.Symbol),
		})
	}
	return writeDoc(w, doc)
}

// WriteRoute writes a route as GPX.
func WriteRoute(w io.Writer, route *record.Route) error {
	doc := &outDoc{Metadata: outMetadata{Name: "Route export from conn2m"}}
	doc.Route = &outPointSeq{}
	for _, p := range route.Points {
		doc.Route.Points = append(doc.Route.Points, outPoint{
			Lat:  coord(p.LatE5),
			Lon:  coord(p.LonE5),
			Name: p.Name,
			Ele:  strconv.Itoa(int(p.Elevation)),
			Sym:  p.Symbol.String(),
		})
	}
	return writeDoc(w, doc)
}
