package record

import "time"

// DefaultSplitGap is the timestamp gap at which a raw point sequence is
// split into separate recording sessions.
const DefaultSplitGap = time.Hour

// Track is one ordered, non-empty recording session. Treat Points as
// read-only after construction.
type Track struct {
	Points []TrackPoint
}

// SplitTrack splits points into tracks wherever the gap between consecutive
// timestamps is at least minGap. Order is preserved; every returned track is
// non-empty. An empty input yields no tracks.
func SplitTrack(points []TrackPoint, minGap time.Duration) []Track {
	if len(points) == 0 {
		return nil
	}
	if minGap <= 0 {
		minGap = DefaultSplitGap
	}
	var tracks []Track
	cur := []TrackPoint{points[0]}
	for _, p := range points[1:] {
		if p.Time.Sub(cur[len(cur)-1].Time) < minGap {
			cur = append(cur, p)
			continue
		}
		tracks = append(tracks, Track{Points: cur})
		cur = []TrackPoint{p}
	}
	return append(tracks, Track{Points: cur})
}
