package coorkit

import "math"

// conformal maps a geodetic position to the Gauss-Schreiber plane (xi',
// eta') before the Krüger series is applied. It also returns t, the tangent
// of the conformal latitude, and lambda, the longitude from the central
// meridian, both needed by gridFactors.
func conformal(latitude, longitude float64, d Datum) (xiDash, etaDash, t, lambda float64) {
	//  Ellipsoid to sphere
	//  --------- -- ------
	sinPhi := math.Sin(Radians(latitude))
	t = math.Sinh(math.Atanh(sinPhi) - Eccentricity*math.Atanh(Eccentricity*sinPhi))
	lambda = Radians(longitude) - Radians(d.lng)

	//  Sphere to first plane
	//  ------ -- ----- -----
	xiDash = math.Atan2(t, math.Cos(lambda))
	etaDash = math.Atanh(math.Sin(lambda) / math.Sqrt(1.0+Square(t)))
	return xiDash, etaDash, t, lambda
}

// forward projects a geodetic position (degrees) onto the plane whose
// origin is d. x grows northward, y eastward.
func forward(latitude, longitude float64, d Datum) (x, y float64) {
	xiDash, etaDash, _, _ := conformal(latitude, longitude, d)

	//  First plane to second plane
	//  Accumulate terms for x and y
	x, y = xiDash, etaDash
	for k, a := range alpha {
		s := 2.0 * float64(k+1)
		x += a * math.Sin(s*xiDash) * math.Cosh(s*etaDash)
		y += a * math.Cos(s*xiDash) * math.Sinh(s*etaDash)
	}

	// Scale, then move the origin from the equator to the datum.
	return zeta*x - MeridianArc(Radians(d.lat)), zeta * y
}

// inverse recovers the geodetic position (degrees) of plane point (x, y)
// relative to d.
func inverse(x, y float64, d Datum) (latitude, longitude float64) {
	//  Undo offsets and scale
	//  ---- -------  --- -----
	xi := (x + MeridianArc(Radians(d.lat))) / zeta
	eta := y / zeta

	//  Second plane to first plane
	//  ------ ----- -- ----- -----
	xiDash, etaDash := xi, eta
	for k, b := range beta {
		s := 2.0 * float64(k+1)
		xiDash -= b * math.Sin(s*xi) * math.Cosh(s*eta)
		etaDash -= b * math.Cos(s*xi) * math.Sinh(s*eta)
	}

	//  First plane to sphere to ellipsoid
	//  ----- ----- -- ------ -- ---------
	chi := math.Asin(math.Sin(xiDash) / math.Cosh(etaDash))
	phi := chi
	for k, dk := range delta {
		phi += dk * math.Sin(2.0*float64(k+1)*chi)
	}

	lambda := math.Atan(math.Sinh(etaDash) / math.Cos(xiDash))
	return Degrees(phi), Degrees(lambda + Radians(d.lng))
}

// gridFactors returns the meridian convergence in degrees (positive east of
// the central meridian in the northern hemisphere) and the point scale
// factor at a geodetic position.
func gridFactors(latitude, longitude float64, d Datum) (convergence, scale float64) {
	xiDash, etaDash, t, lambda := conformal(latitude, longitude, d)

	sigma, tau := 1.0, 0.0
	for k, a := range alpha {
		s := 2.0 * float64(k+1)
		sigma += s * a * math.Cos(s*xiDash) * math.Cosh(s*etaDash)
		tau += s * a * math.Sin(s*xiDash) * math.Sinh(s*etaDash)
	}

	tBar := math.Sqrt(1.0 + Square(t))
	tanLambda := math.Tan(lambda)
	convergence = Degrees(math.Atan2(tau*tBar+sigma*t*tanLambda, sigma*tBar-tau*t*tanLambda))

	phi := Radians(latitude)
	r := (1.0 - n) / (1.0 + n) * math.Tan(phi)
	scale = zeta / SemiMajorAxis * math.Sqrt((1.0+Square(r))*(Square(sigma)+Square(tau))/
		(Square(t)+Square(math.Cos(lambda))))
	return convergence, scale
}
