package linkbudget

import (
	"strings"
	"testing"
)

// Fixture: 13 m dish fed with 300 W at 1791.748 MHz, eta 0.53.
const (
	fixDiameter   = 13.0
	fixPower      = 300.0
	fixEfficiency = 0.53
	fixWavelength = 0.16731842759138005
)

func TestFieldEquations(t *testing.T) {
	within(t, "SurfaceDensity", SurfaceDensity(fixPower, fixDiameter), 9.040754163799972, 1e-12)
	within(t, "NearFieldExtent", NearFieldExtent(fixDiameter, fixWavelength), 252.51253318720913, 1e-9)
	within(t, "NearFieldDensity", NearFieldDensity(fixEfficiency, fixPower, fixDiameter), 4.791599706813985, 1e-12)
	within(t, "FarFieldOnset", FarFieldOnset(fixDiameter, fixWavelength), 606.0300796493018, 1e-9)

	gain := AntennaGain(fixEfficiency, fixDiameter, fixWavelength)
	within(t, "gain", gain, 44.99374770486904, 1e-9)
	eirp := EIRP(gain, fixPower)
	within(t, "EIRP", eirp, 9473185.14321233, 1e-3)

	ff := FarFieldOnset(fixDiameter, fixWavelength)
	within(t, "FarFieldDensity", FarFieldDensity(eirp, ff), 2.0525691646974726, 1e-9)
	within(t, "WorstCaseDensity", WorstCaseDensity(eirp, ff), 4*2.0525691646974726, 1e-9)
}

func TestTransitionDensity(t *testing.T) {
	snf := NearFieldDensity(fixEfficiency, fixPower, fixDiameter)
	rnf := NearFieldExtent(fixDiameter, fixWavelength)

	// At the near-field boundary the transition density equals the
	// near-field density, then falls off as 1/R.
	within(t, "at boundary", TransitionDensity(snf, rnf, rnf), snf, 1e-12)
	within(t, "at twice the range", TransitionDensity(snf, rnf, 2*rnf), snf/2, 1e-12)
}

func TestDevice(t *testing.T) {
	t.Run("from temperature", func(t *testing.T) {
		d := NewDeviceFromTemperature("LNA", 35, 55)
		within(t, "NoiseFigureDB", d.NoiseFigureDB, TemperatureToNoiseFigure(55, ReferenceTemperatureK), 0)
		within(t, "TemperatureK", d.TemperatureK, 55, 0)
	})

	t.Run("from noise figure", func(t *testing.T) {
		d := NewDeviceFromNoiseFigure("mixer", -6, 8.0)
		within(t, "TemperatureK", d.TemperatureK, NoiseFigureToTemperature(8.0, ReferenceTemperatureK), 0)
		within(t, "NoiseFigureDB", d.NoiseFigureDB, 8.0, 0)
	})

	t.Run("string", func(t *testing.T) {
		s := NewDeviceFromTemperature("feed", 0, 290).String()
		for _, want := range []string{"Device:\tfeed", "Gain:\t0dB", "T:\t290K"} {
			if !strings.Contains(s, want) {
				t.Errorf("String() = %q, missing %q", s, want)
			}
		}
	})
}
