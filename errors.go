package coorkit

import (
	"errors"
	"fmt"
)

// ErrRange is matched by every RangeError through errors.Is.
var ErrRange = errors.New("value out of range")

// RangeError reports a datum component outside its closed interval.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be '%g <= %s <= %+g', but was %g",
		e.Field, e.Min, e.Field, e.Max, e.Value)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func checkRange(field string, v, lo, hi float64) error {
	// NaN fails both comparisons, so it is rejected here too.
	if lo <= v && v <= hi {
		return nil
	}
	return &RangeError{Field: field, Value: v, Min: lo, Max: hi}
}
