// Package geo converts the device's earth-centered coordinates to
// geographic ones.
package geo

import "math"

// WGS84 ellipsoid.
const (
	semiMajor  = 6378137.0
	flattening = 1 / 298.257223563
)

// Transform converts earth-centered, earth-fixed meters to geographic
// longitude and latitude in degrees plus elevation in meters.
type Transform func(x, y, z float64) (lon, lat, elevation float64)

// ECEFToGeodetic converts an ECEF triple to WGS84 geographic coordinates
// using Bowring's closed-form approximation, which is exact to well below
// the device's 1e-5 degree resolution.
func ECEFToGeodetic(x, y, z float64) (lon, lat, elevation float64) {
	b := semiMajor * (1 - flattening)
	e2 := flattening * (2 - flattening)
	ep2 := e2 / (1 - e2)

	p := math.Hypot(x, y)
	lonRad := math.Atan2(y, x)

	if p == 0 {
		// On the polar axis the longitude is arbitrary.
		lat = math.Copysign(90, z)
		return 0, lat, math.Abs(z) - b
	}

	theta := math.Atan2(z*semiMajor, p*b)
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	latRad := math.Atan2(z+ep2*b*sinT*sinT*sinT, p-e2*semiMajor*cosT*cosT*cosT)

	sinLat := math.Sin(latRad)
	n := semiMajor / math.Sqrt(1-e2*sinLat*sinLat)
	elevation = p/math.Cos(latRad) - n

	return lonRad * 180 / math.Pi, latRad * 180 / math.Pi, elevation
}
