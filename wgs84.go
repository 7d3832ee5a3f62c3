package coorkit

import "math"

// WGS84 ellipsoid parameters.
// https://en.wikipedia.org/wiki/World_Geodetic_System
const (
	SemiMajorAxis     = 6378137.0      // meters
	SemiMinorAxis     = 6356752.314245 // meters
	InverseFlattening = 298.257223563
)

// ThirdFlattening is Helmert's n = (a - b)/(a + b), the expansion variable of
// every series below.
const ThirdFlattening = 1.0 / (2.0*InverseFlattening - 1.0)

// ScaleFactor is the scale on the central meridian used by the Japanese
// plane rectangular coordinate systems.
const ScaleFactor = 0.9999

// Eccentricity of the WGS84 ellipsoid.
var Eccentricity = 2.0 * math.Sqrt(ThirdFlattening) / (1.0 + ThirdFlattening)

const n = ThirdFlattening

// alpha holds the coefficients of the forward (geodetic to plane) series,
// a2, a4 .. a10.
var alpha = [5]float64{
	(1.0/2.0 + (-2.0/3.0+(5.0/16.0+(41.0/180.0-127.0/288.0*n)*n)*n)*n) * n,
	(13.0/48.0 + (-3.0/5.0+(557.0/1440.0+281.0/630.0*n)*n)*n) * n * n,
	(61.0/240.0 + (-103.0/140.0+15061.0/26880.0*n)*n) * n * n * n,
	(49561.0/161280.0 - 179.0/168.0*n) * n * n * n * n,
	34729.0 / 80640.0 * n * n * n * n * n,
}

// beta holds the coefficients of the inverse (plane to geodetic) series.
var beta = [5]float64{
	(1.0/2.0 + (-2.0/3.0+(37.0/96.0+(-1.0/360.0-81.0/512.0*n)*n)*n)*n) * n,
	(1.0/48.0 + (1.0/15.0+(-437.0/1440.0+46.0/105.0*n)*n)*n) * n * n,
	(17.0/480.0 + (-37.0/840.0-209.0/4480.0*n)*n) * n * n * n,
	(4397.0/161280.0 - 11.0/504.0*n) * n * n * n * n,
	4583.0 / 161280.0 * n * n * n * n * n,
}

// gamma holds the meridian arc series. gamma[0] is the linear term, the
// rest multiply sin(2k*phi).
var gamma = [6]float64{
	1.0 + (1.0/4.0+1.0/64.0*n*n)*n*n,
	-3.0 / 2.0 * (n - (1.0/8.0-n*n/64.0)*n*n*n),
	15.0 / 16.0 * (1.0 - n*n/4.0) * n * n,
	-35.0 / 48.0 * (1.0 - 5.0/16.0*n*n) * n * n * n,
	315.0 / 512.0 * n * n * n * n,
	-693.0 / 1280.0 * n * n * n * n * n,
}

// delta holds the coefficients recovering geodetic latitude from
// conformal latitude.
var delta = [6]float64{
	(2.0 + (-2.0/3.0+(-2.0+(116.0/45.0+(26.0/45.0-2854.0/675.0*n)*n)*n)*n)*n) * n,
	(7.0/3.0 + (-8.0/5.0+(-227.0/45.0+(2704.0/315.0+2323.0/945.0*n)*n)*n)*n) * n * n,
	(56.0/15.0 + (-136.0/35.0+(-1262.0/105.0+73814.0/2835.0*n)*n)*n) * n * n * n,
	(4279.0/630.0 + (-332.0/35.0-399572.0/14175.0*n)*n) * n * n * n * n,
	(4174.0/315.0 - 144838.0/6237.0*n) * n * n * n * n * n,
	601676.0 / 22275.0 * n * n * n * n * n * n,
}

// arcScale converts the dimensionless series sums into meters on the plane.
const arcScale = ScaleFactor * SemiMajorAxis / (1.0 + n)

// zeta is the rectifying radius scaled by k0, k0*A.
var zeta = arcScale * gamma[0]
