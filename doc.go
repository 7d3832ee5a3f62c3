// Package coorkit converts positions between plane rectangular (x, y),
// polar (radial, theta) and geographic (latitude, longitude) coordinates
// relative to a Datum, using the Gauss-Krüger projection on the WGS84
// ellipsoid with the scale factor of the Japanese plane rectangular
// coordinate systems.
//
//	zone9, _ := coorkit.PlaneZone(9)
//	c := coorkit.LatLng(36.5, 140.5, coorkit.WithDatum(zone9))
//	fmt.Println(c.X(), c.Y())
package coorkit
