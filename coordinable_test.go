package coorkit_test

import (
	"math"
	"testing"

	"github.com/hapix/coorkit"
	"github.com/stretchr/testify/assert"
)

// grid is a minimal Coordinable that is not a *coorkit.Coordinate.
type grid struct {
	x, y  float64
	datum coorkit.Datum
}

func (g grid) Datum() coorkit.Datum { return g.datum }
func (g grid) X() float64           { return g.x }
func (g grid) Y() float64           { return g.y }
func (g grid) Radial() float64      { return math.Hypot(g.x, g.y) }
func (g grid) Theta() float64       { return math.Atan2(g.y, g.x) }
func (g grid) Latitude() float64    { return coorkit.XY(g.x, g.y, coorkit.WithDatum(g.datum)).Latitude() }
func (g grid) Longitude() float64   { return coorkit.XY(g.x, g.y, coorkit.WithDatum(g.datum)).Longitude() }

var _ coorkit.Coordinable = grid{}
var _ coorkit.Coordinable = (*coorkit.Coordinate)(nil)

func TestContractOnOtherImplementations(t *testing.T) {
	g := grid{x: 10, y: 10, datum: zone9}
	origin := coorkit.XY(0, 0, coorkit.WithDatum(zone9))

	same := coorkit.To(g, zone9)
	assert.True(t, same.Equal(g))

	assert.InDelta(t, math.Sqrt(200), coorkit.Between(origin, g), delta)
	assert.InDelta(t, math.Sqrt(200), coorkit.Between(g, origin), delta)

	slope, intercept := coorkit.Line(g, grid{x: 20, y: 30, datum: zone9})
	assert.Equal(t, 2.0, slope)
	assert.Equal(t, -10.0, intercept)

	sum := coorkit.Plus(g, origin.Plus(coorkit.XY(1, 1, coorkit.WithDatum(zone9))))
	assert.Equal(t, zone9, sum.Datum())
	assert.InDelta(t, 11, sum.X(), delta)
	assert.InDelta(t, 11, sum.Y(), delta)

	diff := coorkit.Minus(g, g)
	assert.InDelta(t, 0, diff.Radial(), delta)
}

func TestContractAcrossDatums(t *testing.T) {
	g := grid{x: 500, y: -250, datum: zone9}
	moved := coorkit.To(g, coorkit.JGD)
	assert.Equal(t, coorkit.JGD, moved.Datum())
	assert.InDelta(t, g.Latitude(), moved.Latitude(), 1e-9)
	assert.InDelta(t, g.Longitude(), moved.Longitude(), 1e-9)

	// Distance does not depend on the frame it is measured in, up to the
	// scale difference between the two planes.
	other := coorkit.XY(600, -100, coorkit.WithDatum(zone9))
	want := math.Hypot(100, 150)
	assert.InDelta(t, want, coorkit.Between(g, other), delta)
	assert.InDelta(t, want, coorkit.Between(moved, other), want*1e-4)
}
