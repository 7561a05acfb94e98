package units

import "fmt"

// Temperature conversions. Celsius and Fahrenheit are offset scales, so
// they are function pairs rather than plain factors.
var (
	tempCelsius = Pair{
		From: func(k float64) float64 { return k - 273.15 },
		To:   func(c float64) float64 { return c + 273.15 },
	}
	tempFahrenheit = Pair{
		From: func(k float64) float64 { return k*9/5 - 459.67 },
		To:   func(f float64) float64 { return (f + 459.67) * 5 / 9 },
	}
)

var temperatureAccessors = []string{"Kelvin", "Celsius", "Fahrenheit"}

// Temperature is stored canonically in kelvin.
type Temperature[M Magnitude] struct {
	k     M // canonical kelvin
	views *temperatureViews[M]
}

type temperatureViews[M Magnitude] struct {
	c, f cell[M]
}

// Kelvin returns a Temperature from a value in kelvin.
func Kelvin[M Magnitude](v M) Temperature[M] {
	return Temperature[M]{k: clone(v), views: &temperatureViews[M]{}}
}

// Celsius returns a Temperature from a value in degrees Celsius.
func Celsius[M Magnitude](v M) Temperature[M] {
	t := Temperature[M]{k: apply(v, tempCelsius.ToCanonical), views: &temperatureViews[M]{}}
	t.views.c.seed(v)
	return t
}

// Fahrenheit returns a Temperature from a value in degrees Fahrenheit.
func Fahrenheit[M Magnitude](v M) Temperature[M] {
	t := Temperature[M]{k: apply(v, tempFahrenheit.ToCanonical), views: &temperatureViews[M]{}}
	t.views.f.seed(v)
	return t
}

// Kelvin is the canonical magnitude.
func (t Temperature[M]) Kelvin() M { return t.k }

// Celsius derives the temperature in degrees Celsius.
func (t Temperature[M]) Celsius() M { return t.views.c.get(t.k, tempCelsius.FromCanonical) }

// Fahrenheit derives the temperature in degrees Fahrenheit.
func (t Temperature[M]) Fahrenheit() M { return t.views.f.get(t.k, tempFahrenheit.FromCanonical) }

func (t Temperature[M]) String() string {
	return formatMagnitude(t.k, "K")
}

// GoString renders a debug form including the type name.
func (t Temperature[M]) GoString() string {
	return fmt.Sprintf("<Temperature %s>", t)
}

// MarshalYAML rejects serializing a Temperature without choosing a unit.
func (t Temperature[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("Temperature", temperatureAccessors)
}

// MarshalJSON rejects serializing a Temperature without choosing a unit.
func (t Temperature[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("Temperature", temperatureAccessors)
}
