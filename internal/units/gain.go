package units

import (
	"fmt"
	"math"
)

// Gain conversion: decibels against the canonical linear ratio.
var gainDecibels = Pair{
	From: func(lin float64) float64 { return 10 * math.Log10(lin) },
	To:   func(db float64) float64 { return math.Pow(10, db/10) },
}

var gainAccessors = []string{"LinearRatio", "Decibels"}

// Gain is a dimensionless amplification stored canonically as a linear
// ratio.
type Gain[M Magnitude] struct {
	lin   M // canonical linear ratio
	views *gainViews[M]
}

type gainViews[M Magnitude] struct {
	db cell[M]
}

// LinearRatio returns a Gain from a linear power ratio.
func LinearRatio[M Magnitude](v M) Gain[M] {
	return Gain[M]{lin: clone(v), views: &gainViews[M]{}}
}

// Decibels returns a Gain from a value in dB.
func Decibels[M Magnitude](v M) Gain[M] {
	g := Gain[M]{lin: apply(v, gainDecibels.ToCanonical), views: &gainViews[M]{}}
	g.views.db.seed(v)
	return g
}

// LinearRatio is the canonical magnitude.
func (g Gain[M]) LinearRatio() M { return g.lin }

// Decibels derives the gain in dB.
func (g Gain[M]) Decibels() M { return g.views.db.get(g.lin, gainDecibels.FromCanonical) }

func (g Gain[M]) String() string {
	return formatMagnitude(g.Decibels(), "dB")
}

// GoString renders a debug form including the type name.
func (g Gain[M]) GoString() string {
	return fmt.Sprintf("<Gain %s>", g)
}

// MarshalYAML rejects serializing a Gain without choosing a unit.
func (g Gain[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("Gain", gainAccessors)
}

// MarshalJSON rejects serializing a Gain without choosing a unit.
func (g Gain[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("Gain", gainAccessors)
}
