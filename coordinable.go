package coorkit

import "github.com/golang/geo/r2"

// Coordinable is implemented by any position that can be read as plane,
// polar and geographic coordinates against a Datum. The functions in this
// file work on any Coordinable, so new representations get them for free.
type Coordinable interface {
	// Datum is the origin the plane and polar coordinates are relative to.
	Datum() Datum

	// X and Y are plane coordinates in meters.
	X() float64
	Y() float64

	// Radial (meters) and Theta (radians) are polar coordinates.
	Radial() float64
	Theta() float64

	// Latitude and Longitude are geographic coordinates in degrees.
	Latitude() float64
	Longitude() float64
}

// To re-expresses c against datum d. When d is already c's datum no
// projection happens, and a *Coordinate is returned unchanged.
func To(c Coordinable, d Datum) *Coordinate {
	if c.Datum() == d {
		if cc, ok := c.(*Coordinate); ok {
			return cc
		}
		return XY(c.X(), c.Y(), WithDatum(d))
	}
	return LatLng(c.Latitude(), c.Longitude(), WithDatum(d))
}

func point(c Coordinable) r2.Point {
	return r2.Point{X: c.X(), Y: c.Y()}
}

// Between returns the distance in meters between a and b in a's plane.
func Between(a, b Coordinable) float64 {
	return point(a).Sub(point(To(b, a.Datum()))).Norm()
}

// Line returns the slope and intercept of the line through a and b in a's
// plane. A vertical pair (equal x) gives an infinite or NaN slope.
func Line(a, b Coordinable) (slope, intercept float64) {
	o := To(b, a.Datum())
	slope = (o.Y() - a.Y()) / (o.X() - a.X())
	return slope, -slope*a.X() + a.Y()
}

// Plus returns a + b, with b first aligned to a's datum. The result is in
// a's datum.
func Plus(a, b Coordinable) *Coordinate {
	return FromPoint(point(a).Add(point(To(b, a.Datum()))), WithDatum(a.Datum()))
}

// Minus returns a - b, with b first aligned to a's datum. The result is in
// a's datum.
func Minus(a, b Coordinable) *Coordinate {
	return FromPoint(point(a).Sub(point(To(b, a.Datum()))), WithDatum(a.Datum()))
}
