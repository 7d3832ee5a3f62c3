package coorkit

import (
	"math"

	"github.com/golang/geo/s1"
)

// Radians converts an angle measured in degrees to radians. The conversion
// is generally not exact.
func Radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// Degrees converts an angle measured in radians to degrees. Do not expect
// cos(Radians(90)) to be exactly zero.
func Degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

// Square returns v*v.
func Square(v float64) float64 {
	return v * v
}

// MeridianArc returns the length in meters, scaled by ScaleFactor, of the
// meridian from the equator to latitude phi (radians).
func MeridianArc(phi float64) float64 {
	s := gamma[0] * phi
	for k := 1; k < len(gamma); k++ {
		s += gamma[k] * math.Sin(2*float64(k)*phi)
	}
	return s * arcScale
}
