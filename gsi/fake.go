package gsi

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownPoint is returned by Fake for a query it holds no answer for.
var ErrUnknownPoint = errors.New("gsi: no recorded answer for point")

type pair [2]float64

// Fake is an in-memory Surveyor answering from recorded results. The zero
// value answers nothing; populate it with AddLatLng and AddXY.
type Fake struct {
	mu    sync.Mutex
	toXY  map[pair]Result
	toLL  map[pair]Result
	calls int
}

var _ Surveyor = (*Fake)(nil)

// AddLatLng records the answer of LatLngToXY(latitude, longitude).
func (f *Fake) AddLatLng(latitude, longitude float64, r Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.toXY == nil {
		f.toXY = map[pair]Result{}
	}
	r.Latitude, r.Longitude = latitude, longitude
	f.toXY[pair{latitude, longitude}] = r
}

// AddXY records the answer of XYToLatLng(x, y).
func (f *Fake) AddXY(x, y float64, r Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.toLL == nil {
		f.toLL = map[pair]Result{}
	}
	r.X, r.Y = x, y
	f.toLL[pair{x, y}] = r
}

// LatLngToXY implements Surveyor.
func (f *Fake) LatLngToXY(ctx context.Context, latitude, longitude float64) (Result, error) {
	return f.lookup(ctx, true, latitude, longitude)
}

// XYToLatLng implements Surveyor.
func (f *Fake) XYToLatLng(ctx context.Context, x, y float64) (Result, error) {
	return f.lookup(ctx, false, x, y)
}

// Calls returns the number of queries answered or refused so far.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *Fake) lookup(ctx context.Context, geographic bool, a, b float64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	m := f.toLL
	if geographic {
		m = f.toXY
	}
	r, ok := m[pair{a, b}]
	if !ok {
		return Result{}, fmt.Errorf("%w (%v, %v)", ErrUnknownPoint, a, b)
	}
	return r, nil
}
