package units

import (
	"errors"
	"testing"
)

func TestFrequencyConversions(t *testing.T) {
	f := Hertz(1000.0)
	exact(t, "Hertz", f.Hertz(), 1000)
	exact(t, "Kilohertz", f.Kilohertz(), 1.0)
	exact(t, "Megahertz", f.Megahertz(), 0.001)
	exact(t, "Gigahertz", f.Gigahertz(), 1e-6)

	exact(t, "Gigahertz round trip", Gigahertz(2.437).Gigahertz(), 2.437)
	exact(t, "Megahertz to hertz", Megahertz(144.0).Hertz(), 144e6)
}

func TestFrequencyWavelength(t *testing.T) {
	within(t, "144 MHz wavelength", Megahertz(144.0).Wavelength().Meters(), 2.0818920694444443, 0)

	// C/wl is its own inverse.
	exact(t, "wavelength round trip", WavelengthMeters(0.05).Wavelength().Meters(), 0.05)
}

func TestFrequencySeries(t *testing.T) {
	f := Megahertz([]float64{100, 200})
	sameSeries(t, "Hertz", f.Hertz(), []float64{100e6, 200e6})
	sameSeries(t, "Megahertz", f.Megahertz(), []float64{100, 200})
	if got := f.Wavelength().Meters(); len(got) != 2 {
		t.Fatalf("Wavelength has %d elements, want 2", len(got))
	}
}

func TestFrequencyStrings(t *testing.T) {
	if got := Gigahertz(2.437).String(); got != "2.437 GHz" {
		t.Errorf("String = %q", got)
	}
	if got := Gigahertz(2.437).GoString(); got != "<Frequency 2.437 GHz>" {
		t.Errorf("GoString = %q", got)
	}
}

func TestFrequencyRefusesBareSerialization(t *testing.T) {
	var ue *UnpackingError
	if _, err := Hertz(1.0).MarshalJSON(); !errors.As(err, &ue) {
		t.Fatalf("MarshalJSON error = %v, want UnpackingError", err)
	}
}
