package device

import (
	"fmt"
	"log"
	"time"

	"github.com/codingforfun/navi2move/internal/geo"
	"github.com/codingforfun/navi2move/internal/link"
	"github.com/codingforfun/navi2move/internal/record"
	"github.com/codingforfun/navi2move/internal/serial"
)

const (
	cmdGetTracks = "$POEM12,14"
	cmdGetPois   = "$POEM12,2"
	cmdGetRoute  = "$POEM12,12"
	cmdSendPois  = "$POEM12,4"
	cmdSendRoute = "$POEM12,11"

	// respTransfer acknowledges every bulk transfer initiation, in either
	// direction.
	respTransfer = "$POEM200,12"
)

// Options tunes a session. Zero values select the defaults.
type Options struct {
	// Quiet suppresses operator echo of protocol traffic.
	Quiet bool
	// SplitGap is the timestamp gap that separates two recording sessions.
	SplitGap time.Duration
	// AckTimeout bounds the send-path acknowledge wait.
	AckTimeout time.Duration
	// Transform overrides the ECEF conversion; tests inject stubs here.
	Transform geo.Transform
}

// Session owns a serial port for the duration of a device conversation and
// exposes the named operations. It must not be shared.
type Session struct {
	ch        *link.Channel
	eng       *link.Engine
	transform geo.Transform
	splitGap  time.Duration
}

// NewSession wraps an open port. Any bytes still buffered from a previous
// conversation are discarded.
func NewSession(port serial.Port, opts Options) (*Session, error) {
	if err := port.Flush(); err != nil {
		return nil, err
	}
	ch := link.NewChannel(port)
	ch.Quiet = opts.Quiet
	eng := link.NewEngine(ch, port)
	if opts.AckTimeout > 0 {
		eng.AckTimeout = opts.AckTimeout
	}
	s := &Session{
		ch:        ch,
		eng:       eng,
		transform: opts.Transform,
		splitGap:  opts.SplitGap,
	}
	if s.transform == nil {
		s.transform = geo.ECEFToGeodetic
	}
	if s.splitGap <= 0 {
		s.splitGap = record.DefaultSplitGap
	}
	return s, nil
}

// GetTracks downloads all logged track points and splits them into
// recording sessions.
func (s *Session) GetTracks() ([]record.Track, error) {
	log.Printf("getting tracks")
	chunks, err := s.eng.GetData(cmdGetTracks, respTransfer)
	if err != nil {
		return nil, err
	}
	recs := link.ParseRecords(chunks, record.TrackPointLen)
	points := make([]record.TrackPoint, 0, len(recs))
	for _, rec := range recs {
		p, err := record.DecodeTrackPoint(rec, s.transform)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return record.SplitTrack(points, s.splitGap), nil
}

// GetPois downloads the stored points of interest.
func (s *Session) GetPois() ([]record.Poi, error) {
	log.Printf("getting poi data")
	chunks, err := s.eng.GetData(cmdGetPois, respTransfer)
	if err != nil {
		return nil, err
	}
	recs := link.ParseRecords(chunks, record.PoiLen)
	pois := make([]record.Poi, 0, len(recs))
	for _, rec := range recs {
		p, err := record.DecodePoi(rec)
		if err != nil {
			return nil, err
		}
		pois = append(pois, p)
	}
	return pois, nil
}

// GetRoute downloads the stored route.
func (s *Session) GetRoute() (*record.Route, error) {
	log.Printf("getting route data")
	chunks, err := s.eng.GetData(cmdGetRoute, respTransfer)
	if err != nil {
		return nil, err
	}
	var buf []byte
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	return record.DecodeRoute(buf)
}

// SendPois uploads points of interest. The device answers the initiation
// with a known-bad checksum, so checksum validation of that response is
// disabled.
func (s *Session) SendPois(pois []record.Poi) error {
	if len(pois) == 0 {
		return fmt.Errorf("no pois to send")
	}
	log.Printf("sending %d pois", len(pois))
	return s.eng.SendData(cmdSendPois, respTransfer, record.EncodePois(pois), false)
}

// SendRoute uploads a route, including its derived char table and glyph
// sections.
func (s *Session) SendRoute(route *record.Route) error {
	if route == nil || len(route.Points) == 0 {
		return fmt.Errorf("no route points to send")
	}
	log.Printf("sending route with %d points", len(route.Points))
	return s.eng.SendData(cmdSendRoute, respTransfer, route.Encode(), false)
}

// FetchConfig reads the device and recording configuration.
func (s *Session) FetchConfig() (*Config, error) {
	return FetchConfig(s.ch)
}
