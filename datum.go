package coorkit

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Datum is the origin against which plane and polar coordinates are
// expressed. Datums are immutable values and compare with ==.
type Datum struct {
	lat float64 // degrees, [-90, 90]
	lng float64 // degrees, [-180, 180]
}

// JGD is the Japan Geodetic Datum origin as revised on 21 October 2011, the
// cross on the metal marker in Azabudai 2-chome, Minato-ku, Tokyo.
var JGD = MustDatum(35.65809922222222, 139.7413574722222)

// NewDatum constructs a Datum. Both bounds are inclusive; a value outside
// them yields a *RangeError naming the field.
func NewDatum(latitude, longitude float64) (Datum, error) {
	if err := checkRange("latitude", latitude, -90, 90); err != nil {
		return Datum{}, err
	}
	if err := checkRange("longitude", longitude, -180, 180); err != nil {
		return Datum{}, err
	}
	return Datum{lat: latitude, lng: longitude}, nil
}

// MustDatum is like NewDatum but panics if the datum is out of range.
func MustDatum(latitude, longitude float64) Datum {
	d, err := NewDatum(latitude, longitude)
	if err != nil {
		panic(fmt.Sprintf("error constructing datum: %s", err))
	}
	return d
}

// DatumFromLatLng constructs a Datum from an s2.LatLng.
func DatumFromLatLng(ll s2.LatLng) (Datum, error) {
	return NewDatum(ll.Lat.Degrees(), ll.Lng.Degrees())
}

// Latitude of the origin in degrees.
func (d Datum) Latitude() float64 { return d.lat }

// Longitude of the origin in degrees.
func (d Datum) Longitude() float64 { return d.lng }

// LatLng returns the origin as an s2.LatLng.
func (d Datum) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(d.lat, d.lng)
}

func (d Datum) String() string {
	return fmt.Sprintf("Datum(latitude=%v, longitude=%v)", d.lat, d.lng)
}

// planeZones are the origins of the 19 Japanese plane rectangular coordinate
// systems, in degrees and minutes.
var planeZones = [...][4]float64{
	{33, 0, 129, 30},  // I
	{33, 0, 131, 0},   // II
	{36, 0, 132, 10},  // III
	{33, 0, 133, 30},  // IV
	{36, 0, 134, 20},  // V
	{36, 0, 136, 0},   // VI
	{36, 0, 137, 10},  // VII
	{36, 0, 138, 30},  // VIII
	{36, 0, 139, 50},  // IX
	{40, 0, 140, 50},  // X
	{44, 0, 140, 15},  // XI
	{44, 0, 142, 15},  // XII
	{44, 0, 144, 15},  // XIII
	{26, 0, 142, 0},   // XIV
	{26, 0, 127, 30},  // XV
	{26, 0, 124, 0},   // XVI
	{26, 0, 131, 0},   // XVII
	{20, 0, 136, 0},   // XVIII
	{26, 0, 154, 0},   // XIX
}

// PlaneZone returns the origin of Japanese plane rectangular coordinate
// system zone (1 through 19).
func PlaneZone(zone int) (Datum, error) {
	if zone < 1 || zone > len(planeZones) {
		return Datum{}, fmt.Errorf("plane zone %d out of range [1, %d]", zone, len(planeZones))
	}
	z := planeZones[zone-1]
	return NewDatum(z[0]+z[1]/60, z[2]+z[3]/60)
}
