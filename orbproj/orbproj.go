// Package orbproj projects orb geometries between longitude/latitude and
// the plane of a coorkit Datum.
//
// Geographic points are orb.Point{longitude, latitude} in degrees, the
// orb convention. Plane points are orb.Point{x, y} in meters, x northing
// and y easting as in coorkit.
package orbproj

import (
	"github.com/hapix/coorkit"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// Forward returns the projection from orb.Point{lng, lat} to the plane of d.
func Forward(d coorkit.Datum) orb.Projection {
	return func(p orb.Point) orb.Point {
		c := coorkit.LatLng(p.Lat(), p.Lon(), coorkit.WithDatum(d))
		return orb.Point{c.X(), c.Y()}
	}
}

// Inverse returns the projection from the plane of d to orb.Point{lng, lat}.
func Inverse(d coorkit.Datum) orb.Projection {
	return func(p orb.Point) orb.Point {
		c := coorkit.XY(p[0], p[1], coorkit.WithDatum(d))
		return orb.Point{c.Longitude(), c.Latitude()}
	}
}

// Project returns a copy of the geographic geometry g in the plane of d.
// g itself is left untouched.
func Project(g orb.Geometry, d coorkit.Datum) orb.Geometry {
	if g == nil {
		return nil
	}
	return project.Geometry(orb.Clone(g), Forward(d))
}

// Unproject returns a copy of the plane geometry g in longitude/latitude.
func Unproject(g orb.Geometry, d coorkit.Datum) orb.Geometry {
	if g == nil {
		return nil
	}
	return project.Geometry(orb.Clone(g), Inverse(d))
}

// Length returns the length in meters of the geographic geometry g measured
// in the plane of d. Datums far from g give the projection's distortion.
func Length(g orb.Geometry, d coorkit.Datum) float64 {
	return planar.Length(Project(g, d))
}

// Coordinate converts a geographic orb.Point into a coorkit.Coordinate.
func Coordinate(p orb.Point, d coorkit.Datum) *coorkit.Coordinate {
	return coorkit.LatLng(p.Lat(), p.Lon(), coorkit.WithDatum(d))
}

// Point returns c as a geographic orb.Point.
func Point(c coorkit.Coordinable) orb.Point {
	return orb.Point{c.Longitude(), c.Latitude()}
}
