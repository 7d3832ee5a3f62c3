package coorkit_test

import (
	"fmt"

	"github.com/hapix/coorkit"
)

func ExampleLatLng() {
	zone9, _ := coorkit.PlaneZone(9)
	c := coorkit.LatLng(36.5, 140.5, coorkit.WithDatum(zone9))
	fmt.Printf("x=%.3f y=%.3f\n", c.X(), c.Y())
	// Output: x=55682.949 y=59721.825
}

func ExampleXY() {
	zone9, _ := coorkit.PlaneZone(9)
	c := coorkit.XY(-50000, -30000, coorkit.WithDatum(zone9))
	fmt.Printf("lat=%.6f lng=%.6f\n", c.Latitude(), c.Longitude())
	// Output: lat=35.548867 lng=139.502447
}

func ExampleCoordinate_Between() {
	a := coorkit.XY(0, 0)
	b := coorkit.Polar(5, coorkit.Radians(30))
	fmt.Printf("%.1f\n", a.Between(b))
	// Output: 5.0
}
