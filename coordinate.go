package coorkit

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

// Coordinate is an immutable position expressed as plane coordinates (x, y)
// in meters against a Datum. Polar and geographic representations are
// derived from (x, y, datum) on first use and cached.
//
// Conversions to and from latitude and longitude use the Gauss-Krüger
// projection and are approximate: the error grows as the position moves
// away from the datum, so choose a datum near the area of interest.
//
// Coordinates are created with XY, Polar, LatLng, FromPoint or FromLatLng
// and must not be copied by value.
type Coordinate struct {
	x, y  float64
	datum Datum

	polarOnce     sync.Once
	radial, theta float64

	geoOnce  sync.Once
	lat, lng float64
}

func newCoordinate(x, y float64, d Datum) *Coordinate {
	return &Coordinate{x: x, y: y, datum: d}
}

// X is the northing in meters from the datum.
func (c *Coordinate) X() float64 { return c.x }

// Y is the easting in meters from the datum.
func (c *Coordinate) Y() float64 { return c.y }

// Datum is the origin of the plane this coordinate is expressed in.
func (c *Coordinate) Datum() Datum { return c.datum }

func (c *Coordinate) polar() {
	c.polarOnce.Do(func() {
		c.radial = math.Hypot(c.x, c.y)
		c.theta = math.Atan2(c.y, c.x)
	})
}

// Radial is the distance in meters from the datum.
func (c *Coordinate) Radial() float64 {
	c.polar()
	return c.radial
}

// Theta is the polar angle in radians, measured from the x axis.
func (c *Coordinate) Theta() float64 {
	c.polar()
	return c.theta
}

func (c *Coordinate) geodetic() {
	c.geoOnce.Do(func() {
		c.lat, c.lng = inverse(c.x, c.y, c.datum)
	})
}

// Latitude in degrees.
func (c *Coordinate) Latitude() float64 {
	c.geodetic()
	return c.lat
}

// Longitude in degrees.
func (c *Coordinate) Longitude() float64 {
	c.geodetic()
	return c.lng
}

// Point returns the plane position as an r2.Point{X: x, Y: y}.
func (c *Coordinate) Point() r2.Point {
	return r2.Point{X: c.x, Y: c.y}
}

// LatLng returns the geographic position as an s2.LatLng.
func (c *Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude(), c.Longitude())
}

// GridConvergence returns the angle in degrees between grid north and true
// north at this coordinate.
func (c *Coordinate) GridConvergence() float64 {
	g, _ := gridFactors(c.Latitude(), c.Longitude(), c.datum)
	return g
}

// ScaleFactor returns the point scale factor of the projection at this
// coordinate.
func (c *Coordinate) ScaleFactor() float64 {
	_, m := gridFactors(c.Latitude(), c.Longitude(), c.datum)
	return m
}

// Equal reports whether o has the same x, y and datum. Derived fields are
// not compared.
func (c *Coordinate) Equal(o Coordinable) bool {
	return c.x == o.X() && c.y == o.Y() && c.datum == o.Datum()
}

// Key identifies a coordinate by (x, y, datum). Keys are comparable and
// can be used in maps.
type Key struct {
	X, Y  float64
	Datum Datum
}

// Key returns the canonical triple of c.
func (c *Coordinate) Key() Key {
	return Key{X: c.x, Y: c.y, Datum: c.datum}
}

func (c *Coordinate) String() string {
	return fmt.Sprintf("Coordinate(x=%v, y=%v, datum=%v)", c.x, c.y, c.datum)
}

// To re-expresses c against datum d. c itself is returned when d is
// already its datum.
func (c *Coordinate) To(d Datum) *Coordinate {
	return To(c, d)
}

// Align re-expresses c against the datum of o.
func (c *Coordinate) Align(o Coordinable) *Coordinate {
	return To(c, o.Datum())
}

// Between returns the distance in meters from c to o, measured in c's plane.
func (c *Coordinate) Between(o Coordinable) float64 {
	return Between(c, o)
}

// Line returns the slope and intercept of y = slope*x + intercept through c
// and o in c's plane.
func (c *Coordinate) Line(o Coordinable) (slope, intercept float64) {
	return Line(c, o)
}

// Plus adds o, aligned to c's datum, to c.
func (c *Coordinate) Plus(o Coordinable) *Coordinate {
	return Plus(c, o)
}

// Minus subtracts o, aligned to c's datum, from c.
func (c *Coordinate) Minus(o Coordinable) *Coordinate {
	return Minus(c, o)
}

// Override replaces one field when copying a Coordinate. See CopyByXY,
// CopyByPolar and CopyByLatLng for the fields each one honors.
type Override func(*overrides)

type overrides struct {
	x, y, radial, theta, lat, lng *float64
	datum                         *Datum
}

// SetX overrides x in CopyByXY.
func SetX(v float64) Override { return func(o *overrides) { o.x = &v } }

// SetY overrides y in CopyByXY.
func SetY(v float64) Override { return func(o *overrides) { o.y = &v } }

// SetRadial overrides radial in CopyByPolar.
func SetRadial(v float64) Override { return func(o *overrides) { o.radial = &v } }

// SetTheta overrides theta in CopyByPolar.
func SetTheta(v float64) Override { return func(o *overrides) { o.theta = &v } }

// SetLatitude overrides latitude in CopyByLatLng.
func SetLatitude(v float64) Override { return func(o *overrides) { o.lat = &v } }

// SetLongitude overrides longitude in CopyByLatLng.
func SetLongitude(v float64) Override { return func(o *overrides) { o.lng = &v } }

// SetDatum overrides the datum in any copy.
func SetDatum(d Datum) Override { return func(o *overrides) { o.datum = &d } }

func resolve(opts []Override) overrides {
	var o overrides
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func valueOr(p *float64, v float64) float64 {
	if p != nil {
		return *p
	}
	return v
}

func (o overrides) datumOr(d Datum) Datum {
	if o.datum != nil {
		return *o.datum
	}
	return d
}

// CopyByXY builds a new coordinate from c's x, y and datum, replaced by
// SetX, SetY and SetDatum where given. Other overrides are ignored.
func (c *Coordinate) CopyByXY(opts ...Override) *Coordinate {
	o := resolve(opts)
	return XY(valueOr(o.x, c.x), valueOr(o.y, c.y), WithDatum(o.datumOr(c.datum)))
}

// CopyByPolar builds a new coordinate from c's radial, theta and datum,
// replaced by SetRadial, SetTheta and SetDatum where given.
func (c *Coordinate) CopyByPolar(opts ...Override) *Coordinate {
	o := resolve(opts)
	return Polar(valueOr(o.radial, c.Radial()), valueOr(o.theta, c.Theta()),
		WithDatum(o.datumOr(c.datum)))
}

// CopyByLatLng builds a new coordinate from c's latitude, longitude and
// datum, replaced by SetLatitude, SetLongitude and SetDatum where given.
func (c *Coordinate) CopyByLatLng(opts ...Override) *Coordinate {
	o := resolve(opts)
	return LatLng(valueOr(o.lat, c.Latitude()), valueOr(o.lng, c.Longitude()),
		WithDatum(o.datumOr(c.datum)))
}
