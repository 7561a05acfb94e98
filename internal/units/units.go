// Package units provides measurement types for RF link engineering:
// distances, frequencies, powers, angles, velocities, rates, gains and
// temperatures.
//
// Each type stores a single canonical magnitude (meters for Distance,
// hertz for Frequency, watts for Power, and so on) and derives every other
// unit representation from it on demand. Derived views are memoized per
// instance, which is purely a performance optimization: a view is a pure
// function of the immutable canonical magnitude, so repeated reads always
// return bit-identical results.
//
// A quantity never carries a bare number through an API boundary: callers
// must ask for a value in a particular unit, which keeps a kilometer from
// being silently consumed as a meter. Angles go one step further and carry
// a declared display preference (hours or degrees) so that right-ascension
// style values cannot be misread as degrees by accident.
package units

import (
	"fmt"
	"math"
	"strings"
)

// Magnitude constrains the numeric payload of a quantity: either a single
// value or a fixed-length series of values. Every unit view applies
// elementwise to series magnitudes.
type Magnitude interface {
	float64 | []float64
}

// apply maps f over a magnitude, elementwise for series.
func apply[M Magnitude](m M, f func(float64) float64) M {
	switch v := any(m).(type) {
	case float64:
		return any(f(v)).(M)
	case []float64:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = f(x)
		}
		return any(out).(M)
	}
	var zero M
	return zero
}

// clone detaches a magnitude from the caller's storage. Series values are
// copied so that mutating the source slice after construction cannot
// change a quantity's observed views.
func clone[M Magnitude](m M) M {
	if v, ok := any(m).([]float64); ok {
		out := make([]float64, len(v))
		copy(out, v)
		return any(out).(M)
	}
	return m
}

// cell memoizes one derived unit view. Quantities are immutable, so a
// racing recomputation stores an equal value; the unsynchronized write is
// idempotent and needs no lock.
type cell[M Magnitude] struct {
	v *M
}

func (c *cell[M]) get(canonical M, f func(float64) float64) M {
	if c.v == nil {
		v := apply(canonical, f)
		c.v = &v
	}
	return *c.v
}

// seed stores a known view value, letting constructors record the exact
// number they were given so that reading it back involves no arithmetic.
func (c *cell[M]) seed(v M) {
	v = clone(v)
	c.v = &v
}

// scalar reports whether the magnitude is a single value and, if so,
// returns it.
func scalar[M Magnitude](m M) (float64, bool) {
	v, ok := any(m).(float64)
	return v, ok
}

// series returns the magnitude as a slice, wrapping a single value.
func series[M Magnitude](m M) []float64 {
	switch v := any(m).(type) {
	case float64:
		return []float64{v}
	case []float64:
		return v
	}
	return nil
}

// formatMagnitude renders a magnitude for String methods: six significant
// digits for a single value, the plain slice otherwise.
func formatMagnitude[M Magnitude](m M, unit string) string {
	if v, ok := scalar(m); ok {
		return fmt.Sprintf("%.6g %s", v, unit)
	}
	return fmt.Sprintf("%v %s", any(m).([]float64), unit)
}

// euclideanLength is the root sum of squares over all elements.
func euclideanLength[M Magnitude](m M) float64 {
	var sum float64
	for _, v := range series(m) {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// accessorList renders unit accessor names for misuse guidance.
func accessorList(names []string) string {
	return strings.Join(names, ", ")
}
