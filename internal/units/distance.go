package units

import (
	"fmt"

	"github.com/roman-kulish/link-engineering/internal/constants"
)

// Distance conversions. The constant documents the ratio per unit.
var (
	distAstronomicalUnits = Pair{ // 149,597,870,700 m per au
		From: func(m float64) float64 { return m / constants.AUM },
		To:   func(au float64) float64 { return au * constants.AUM },
	}
	distKilometers  = Divisor(1000) // 1000 m per km
	distCentimeters = Factor(100)   // 100 cm per m
	distMillimeters = Factor(1000)  // 1000 mm per m
)

var distanceAccessors = []string{"AstronomicalUnits", "Kilometers", "Meters", "Centimeters", "Millimeters"}

// Distance is a length stored canonically in meters.
type Distance[M Magnitude] struct {
	m     M // canonical meters
	views *distanceViews[M]
}

type distanceViews[M Magnitude] struct {
	au, km, cm, mm cell[M]
}

// Meters returns a Distance from a value in meters.
func Meters[M Magnitude](v M) Distance[M] {
	return Distance[M]{m: clone(v), views: &distanceViews[M]{}}
}

// Kilometers returns a Distance from a value in kilometers.
func Kilometers[M Magnitude](v M) Distance[M] {
	d := Distance[M]{m: apply(v, distKilometers.ToCanonical), views: &distanceViews[M]{}}
	d.views.km.seed(v)
	return d
}

// Centimeters returns a Distance from a value in centimeters.
func Centimeters[M Magnitude](v M) Distance[M] {
	d := Distance[M]{m: apply(v, distCentimeters.ToCanonical), views: &distanceViews[M]{}}
	d.views.cm.seed(v)
	return d
}

// Millimeters returns a Distance from a value in millimeters.
func Millimeters[M Magnitude](v M) Distance[M] {
	d := Distance[M]{m: apply(v, distMillimeters.ToCanonical), views: &distanceViews[M]{}}
	d.views.mm.seed(v)
	return d
}

// AstronomicalUnits returns a Distance from a value in astronomical units
// (the Earth-Sun distance of 149,597,870,700 m).
func AstronomicalUnits[M Magnitude](v M) Distance[M] {
	d := Distance[M]{m: apply(v, distAstronomicalUnits.ToCanonical), views: &distanceViews[M]{}}
	d.views.au.seed(v)
	return d
}

// Meters is the canonical magnitude.
func (d Distance[M]) Meters() M { return d.m }

// Kilometers derives the distance in kilometers.
func (d Distance[M]) Kilometers() M { return d.views.km.get(d.m, distKilometers.FromCanonical) }

// Centimeters derives the distance in centimeters.
func (d Distance[M]) Centimeters() M { return d.views.cm.get(d.m, distCentimeters.FromCanonical) }

// Millimeters derives the distance in millimeters.
func (d Distance[M]) Millimeters() M { return d.views.mm.get(d.m, distMillimeters.FromCanonical) }

// AstronomicalUnits derives the distance in astronomical units.
func (d Distance[M]) AstronomicalUnits() M {
	return d.views.au.get(d.m, distAstronomicalUnits.FromCanonical)
}

// LightSeconds returns the distance expressed as light travel time in
// seconds.
func (d Distance[M]) LightSeconds() M {
	return apply(d.m, func(m float64) float64 { return m / constants.C })
}

// Length computes the Euclidean length when the magnitude is an |xyz|
// series, returning it as a new scalar Distance in meters. For a single
// value it is the absolute value.
func (d Distance[M]) Length() Distance[float64] {
	return Meters(euclideanLength(d.m))
}

func (d Distance[M]) String() string {
	return formatMagnitude(d.m, "m")
}

// GoString renders a debug form including the type name.
func (d Distance[M]) GoString() string {
	return fmt.Sprintf("<Distance %s>", d)
}

// MarshalYAML rejects serializing a Distance without choosing a unit.
func (d Distance[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("Distance", distanceAccessors)
}

// MarshalJSON rejects serializing a Distance without choosing a unit.
func (d Distance[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("Distance", distanceAccessors)
}
