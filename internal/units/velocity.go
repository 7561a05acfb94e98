package units

import (
	"fmt"

	"github.com/roman-kulish/link-engineering/internal/constants"
)

// Velocity conversions.
var (
	velKilometersPerSecond = Factor(constants.AUKM / constants.DayS) // km/s per au/day
	velMetersPerSecond     = Factor(constants.AUM / constants.DayS)  // m/s per au/day
)

var velocityAccessors = []string{"AstronomicalUnitsPerDay", "KilometersPerSecond", "MetersPerSecond"}

// Velocity is stored canonically in astronomical units per day.
type Velocity[M Magnitude] struct {
	auPerDay M // canonical au/day
	views    *velocityViews[M]
}

type velocityViews[M Magnitude] struct {
	kmPerS, mPerS cell[M]
}

// AstronomicalUnitsPerDay returns a Velocity from a value in au/day.
func AstronomicalUnitsPerDay[M Magnitude](v M) Velocity[M] {
	return Velocity[M]{auPerDay: clone(v), views: &velocityViews[M]{}}
}

// KilometersPerSecond returns a Velocity from a value in km/s.
func KilometersPerSecond[M Magnitude](v M) Velocity[M] {
	vel := Velocity[M]{auPerDay: apply(v, velKilometersPerSecond.ToCanonical), views: &velocityViews[M]{}}
	vel.views.kmPerS.seed(v)
	return vel
}

// AstronomicalUnitsPerDay is the canonical magnitude.
func (v Velocity[M]) AstronomicalUnitsPerDay() M { return v.auPerDay }

// KilometersPerSecond derives the velocity in km/s.
func (v Velocity[M]) KilometersPerSecond() M {
	return v.views.kmPerS.get(v.auPerDay, velKilometersPerSecond.FromCanonical)
}

// MetersPerSecond derives the velocity in m/s.
func (v Velocity[M]) MetersPerSecond() M {
	return v.views.mPerS.get(v.auPerDay, velMetersPerSecond.FromCanonical)
}

func (v Velocity[M]) String() string {
	return formatMagnitude(v.auPerDay, "au/day")
}

// GoString renders a debug form including the type name.
func (v Velocity[M]) GoString() string {
	return fmt.Sprintf("<Velocity %s>", v)
}

// MarshalYAML rejects serializing a Velocity without choosing a unit.
func (v Velocity[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("Velocity", velocityAccessors)
}

// MarshalJSON rejects serializing a Velocity without choosing a unit.
func (v Velocity[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("Velocity", velocityAccessors)
}
