package units

import (
	"fmt"

	"github.com/roman-kulish/link-engineering/internal/constants"
)

// Frequency conversions.
var (
	freqKilohertz = Divisor(1e3) // 1e3 Hz per kHz
	freqMegahertz = Divisor(1e6) // 1e6 Hz per MHz
	freqGigahertz = Divisor(1e9) // 1e9 Hz per GHz
)

var frequencyAccessors = []string{"Hertz", "Kilohertz", "Megahertz", "Gigahertz", "Wavelength"}

// Frequency is stored canonically in hertz. Construction also derives the
// free-space wavelength from the speed of light, so every Frequency
// carries its matching Distance.
type Frequency[M Magnitude] struct {
	hz    M // canonical hertz
	wl    Distance[M]
	views *frequencyViews[M]
}

type frequencyViews[M Magnitude] struct {
	khz, mhz, ghz cell[M]
}

func newFrequency[M Magnitude](hz M) Frequency[M] {
	return Frequency[M]{
		hz:    hz,
		wl:    Meters(apply(hz, func(f float64) float64 { return constants.C / f })),
		views: &frequencyViews[M]{},
	}
}

// Hertz returns a Frequency from a value in hertz.
func Hertz[M Magnitude](v M) Frequency[M] {
	return newFrequency(clone(v))
}

// Kilohertz returns a Frequency from a value in kilohertz.
func Kilohertz[M Magnitude](v M) Frequency[M] {
	f := newFrequency(apply(v, freqKilohertz.ToCanonical))
	f.views.khz.seed(v)
	return f
}

// Megahertz returns a Frequency from a value in megahertz.
func Megahertz[M Magnitude](v M) Frequency[M] {
	f := newFrequency(apply(v, freqMegahertz.ToCanonical))
	f.views.mhz.seed(v)
	return f
}

// Gigahertz returns a Frequency from a value in gigahertz.
func Gigahertz[M Magnitude](v M) Frequency[M] {
	f := newFrequency(apply(v, freqGigahertz.ToCanonical))
	f.views.ghz.seed(v)
	return f
}

// WavelengthMeters returns a Frequency from its free-space wavelength in
// meters.
func WavelengthMeters[M Magnitude](v M) Frequency[M] {
	// C/wl is its own inverse, so the derived wavelength reproduces the
	// input exactly.
	return newFrequency(apply(v, func(wl float64) float64 { return constants.C / wl }))
}

// Hertz is the canonical magnitude.
func (f Frequency[M]) Hertz() M { return f.hz }

// Kilohertz derives the frequency in kilohertz.
func (f Frequency[M]) Kilohertz() M { return f.views.khz.get(f.hz, freqKilohertz.FromCanonical) }

// Megahertz derives the frequency in megahertz.
func (f Frequency[M]) Megahertz() M { return f.views.mhz.get(f.hz, freqMegahertz.FromCanonical) }

// Gigahertz derives the frequency in gigahertz.
func (f Frequency[M]) Gigahertz() M { return f.views.ghz.get(f.hz, freqGigahertz.FromCanonical) }

// Wavelength returns the free-space wavelength derived at construction.
func (f Frequency[M]) Wavelength() Distance[M] { return f.wl }

func (f Frequency[M]) String() string {
	return formatMagnitude(f.Gigahertz(), "GHz")
}

// GoString renders a debug form including the type name.
func (f Frequency[M]) GoString() string {
	return fmt.Sprintf("<Frequency %s>", f)
}

// MarshalYAML rejects serializing a Frequency without choosing a unit.
func (f Frequency[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("Frequency", frequencyAccessors)
}

// MarshalJSON rejects serializing a Frequency without choosing a unit.
func (f Frequency[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("Frequency", frequencyAccessors)
}
