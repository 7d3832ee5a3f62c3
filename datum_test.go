package coorkit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/hapix/coorkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatumBounds(t *testing.T) {
	tests := []struct {
		lat, lng float64
		field    string // empty when valid
	}{
		{0, 0, ""},
		{-91, 0, "latitude"},
		{-90, 0, ""},
		{-89, 0, ""},
		{91, 0, "latitude"},
		{90, 0, ""},
		{89, 0, ""},
		{0, -181, "longitude"},
		{0, -180, ""},
		{0, -179, ""},
		{0, 181, "longitude"},
		{0, 180, ""},
		{0, 179, ""},
		{math.NaN(), 0, "latitude"},
		{0, math.Inf(1), "longitude"},
	}
	for _, tt := range tests {
		d, err := coorkit.NewDatum(tt.lat, tt.lng)
		if tt.field == "" {
			require.NoError(t, err, "(%v, %v)", tt.lat, tt.lng)
			assert.Equal(t, tt.lat, d.Latitude())
			assert.Equal(t, tt.lng, d.Longitude())
			continue
		}
		require.Error(t, err, "(%v, %v)", tt.lat, tt.lng)
		assert.True(t, errors.Is(err, coorkit.ErrRange))
		var re *coorkit.RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, tt.field, re.Field)
	}
}

func TestRangeErrorMessage(t *testing.T) {
	_, err := coorkit.NewDatum(-91, 0)
	require.Error(t, err)
	assert.Equal(t, "latitude must be '-90 <= latitude <= +90', but was -91", err.Error())

	_, err = coorkit.NewDatum(0, 181)
	require.Error(t, err)
	var re *coorkit.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 181.0, re.Value)
	assert.Equal(t, -180.0, re.Min)
	assert.Equal(t, 180.0, re.Max)
}

func TestMustDatumPanics(t *testing.T) {
	assert.Panics(t, func() { coorkit.MustDatum(100, 0) })
	assert.NotPanics(t, func() { coorkit.MustDatum(10, 10) })
}

func TestDatumEquality(t *testing.T) {
	d := coorkit.MustDatum(10, 10)
	assert.True(t, d == coorkit.MustDatum(10, 10))
	assert.False(t, d == coorkit.MustDatum(0, 0))
	assert.Equal(t, d.String(), coorkit.MustDatum(10, 10).String())
	assert.NotEqual(t, d.String(), coorkit.MustDatum(0, 0).String())

	seen := map[coorkit.Datum]int{d: 1}
	assert.Equal(t, 1, seen[coorkit.MustDatum(10, 10)])
}

func TestJGD(t *testing.T) {
	assert.Equal(t, 35.65809922222222, coorkit.JGD.Latitude())
	assert.Equal(t, 139.7413574722222, coorkit.JGD.Longitude())
}

func TestDatumLatLng(t *testing.T) {
	ll := coorkit.JGD.LatLng()
	assert.InDelta(t, coorkit.JGD.Latitude(), ll.Lat.Degrees(), 1e-12)
	assert.InDelta(t, coorkit.JGD.Longitude(), ll.Lng.Degrees(), 1e-12)

	d, err := coorkit.DatumFromLatLng(s2.LatLngFromDegrees(36, 140))
	require.NoError(t, err)
	assert.InDelta(t, 36, d.Latitude(), 1e-12)
	assert.InDelta(t, 140, d.Longitude(), 1e-12)

	_, err = coorkit.DatumFromLatLng(s2.LatLngFromDegrees(95, 0))
	assert.ErrorIs(t, err, coorkit.ErrRange)
}

func TestPlaneZone(t *testing.T) {
	d, err := coorkit.PlaneZone(9)
	require.NoError(t, err)
	assert.Equal(t, 36.0, d.Latitude())
	assert.Equal(t, 139.83333333333334, d.Longitude())

	d, err = coorkit.PlaneZone(1)
	require.NoError(t, err)
	assert.Equal(t, coorkit.MustDatum(33, 129.5), d)

	d, err = coorkit.PlaneZone(19)
	require.NoError(t, err)
	assert.Equal(t, coorkit.MustDatum(26, 154), d)

	for _, zone := range []int{0, 20, -1} {
		_, err := coorkit.PlaneZone(zone)
		assert.Error(t, err, "zone %d", zone)
	}
}
