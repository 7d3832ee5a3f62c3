package coorkit

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

// Option configures a coordinate factory.
type Option func(*options)

type options struct {
	datum Datum
}

// WithDatum sets the origin of the new coordinate. The default is JGD.
func WithDatum(d Datum) Option {
	return func(o *options) { o.datum = d }
}

func buildOptions(opts []Option) options {
	o := options{datum: JGD}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// XY creates a Coordinate from plane coordinates in meters.
func XY(x, y float64, opts ...Option) *Coordinate {
	o := buildOptions(opts)
	return newCoordinate(x, y, o.datum)
}

// Polar creates a Coordinate from a radial distance in meters and an angle
// in radians measured from the x axis.
func Polar(radial, theta float64, opts ...Option) *Coordinate {
	o := buildOptions(opts)
	return newCoordinate(radial*math.Cos(theta), radial*math.Sin(theta), o.datum)
}

// LatLng creates a Coordinate from a geographic position in degrees by
// projecting it onto the datum's plane.
func LatLng(latitude, longitude float64, opts ...Option) *Coordinate {
	o := buildOptions(opts)
	x, y := forward(latitude, longitude, o.datum)
	return newCoordinate(x, y, o.datum)
}

// FromPoint is XY for an r2.Point.
func FromPoint(p r2.Point, opts ...Option) *Coordinate {
	return XY(p.X, p.Y, opts...)
}

// FromLatLng is LatLng for an s2.LatLng.
func FromLatLng(ll s2.LatLng, opts ...Option) *Coordinate {
	return LatLng(ll.Lat.Degrees(), ll.Lng.Degrees(), opts...)
}
