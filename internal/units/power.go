package units

import (
	"fmt"
	"math"
)

// Power conversions. The decibel views are forward/inverse pairs; dBm is
// offset by 30 because its reference level is one milliwatt.
var (
	powKilowatts  = Divisor(1000) // 1000 W per kW
	powMilliwatts = Factor(1000)  // 1000 mW per W
	powDecibelW   = Pair{
		From: func(w float64) float64 { return 10 * math.Log10(w) },
		To:   func(db float64) float64 { return math.Pow(10, db/10) },
	}
	powDecibelMW = Pair{
		From: func(w float64) float64 { return 10*math.Log10(w) + 30 },
		To:   func(db float64) float64 { return math.Pow(10, (db-30)/10) },
	}
)

var powerAccessors = []string{"Kilowatts", "Watts", "Milliwatts", "DecibelWatts", "DecibelMilliwatts"}

// Power is stored canonically in watts.
type Power[M Magnitude] struct {
	w     M // canonical watts
	views *powerViews[M]
}

type powerViews[M Magnitude] struct {
	kw, mw, dbw, dbm cell[M]
}

// Watts returns a Power from a value in watts.
func Watts[M Magnitude](v M) Power[M] {
	return Power[M]{w: clone(v), views: &powerViews[M]{}}
}

// Kilowatts returns a Power from a value in kilowatts.
func Kilowatts[M Magnitude](v M) Power[M] {
	p := Power[M]{w: apply(v, powKilowatts.ToCanonical), views: &powerViews[M]{}}
	p.views.kw.seed(v)
	return p
}

// Milliwatts returns a Power from a value in milliwatts.
func Milliwatts[M Magnitude](v M) Power[M] {
	p := Power[M]{w: apply(v, powMilliwatts.ToCanonical), views: &powerViews[M]{}}
	p.views.mw.seed(v)
	return p
}

// DecibelWatts returns a Power from a value in dBW.
func DecibelWatts[M Magnitude](v M) Power[M] {
	p := Power[M]{w: apply(v, powDecibelW.ToCanonical), views: &powerViews[M]{}}
	p.views.dbw.seed(v)
	return p
}

// DecibelMilliwatts returns a Power from a value in dBm.
func DecibelMilliwatts[M Magnitude](v M) Power[M] {
	p := Power[M]{w: apply(v, powDecibelMW.ToCanonical), views: &powerViews[M]{}}
	p.views.dbm.seed(v)
	return p
}

// Watts is the canonical magnitude.
func (p Power[M]) Watts() M { return p.w }

// Kilowatts derives the power in kilowatts.
func (p Power[M]) Kilowatts() M { return p.views.kw.get(p.w, powKilowatts.FromCanonical) }

// Milliwatts derives the power in milliwatts.
func (p Power[M]) Milliwatts() M { return p.views.mw.get(p.w, powMilliwatts.FromCanonical) }

// DecibelWatts derives the power in dBW.
func (p Power[M]) DecibelWatts() M { return p.views.dbw.get(p.w, powDecibelW.FromCanonical) }

// DecibelMilliwatts derives the power in dBm.
func (p Power[M]) DecibelMilliwatts() M { return p.views.dbm.get(p.w, powDecibelMW.FromCanonical) }

func (p Power[M]) String() string {
	return formatMagnitude(p.w, "W")
}

// GoString renders a debug form including the type name.
func (p Power[M]) GoString() string {
	return fmt.Sprintf("<Power %s>", p)
}

// MarshalYAML rejects serializing a Power without choosing a unit.
func (p Power[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("Power", powerAccessors)
}

// MarshalJSON rejects serializing a Power without choosing a unit.
func (p Power[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("Power", powerAccessors)
}
