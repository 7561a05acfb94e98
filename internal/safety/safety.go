// Package safety evaluates transmit RF exposure compliance for parabolic
// reflector antennas against FCC OET Bulletin 65, Evaluating Compliance
// with FCC Guidelines for Human Exposure to Radiofrequency Electromagnetic
// Fields, 1997.
package safety

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/roman-kulish/link-engineering/internal/linkbudget"
	"github.com/roman-kulish/link-engineering/internal/units"
)

// DefaultEfficiency is the aperture efficiency assumed when none is given.
const DefaultEfficiency = 0.53

// Params describes the transmit system under evaluation.
type Params struct {
	Diameter   units.Distance[float64]
	Frequency  units.Frequency[float64]
	Power      units.Power[float64]
	Efficiency float64 // aperture efficiency, 0 means DefaultEfficiency
}

// Limits is one OET-65 maximum permissible exposure row. The field
// strength limits are undefined above 300 MHz, where only power density
// applies.
type Limits struct {
	PowerDensity  float64  // mW/cm^2
	EField        *float64 // V/m, nil when not applicable
	HField        *float64 // A/m, nil when not applicable
	AveragingMins int      // averaging time in minutes
}

// Verdict is a compliance call for one exposure region against both limit
// rows.
type Verdict struct {
	Occupational string // "below MPE" or "EXCEEDS MPE"
	Population   string // "below GP" or "EXCEEDS GP"
}

func (v Verdict) String() string {
	return strings.Join([]string{v.Occupational, v.Population}, " & ")
}

// Report carries the evaluated exposure figures. Densities are in W/m^2;
// the mW/cm^2 forms used against the limits are derived by Report methods.
type Report struct {
	Params       Params
	Wavelength   units.Distance[float64]
	Gain         units.Gain[float64]
	EIRP         units.Power[float64]
	Occupational Limits
	Population   Limits

	Surface         float64 // power density at the dish surface
	NearFieldExtent float64 // extent of the Fresnel region, meters
	NearField       float64 // maximum on-axis near-field density
	FarFieldOnset   float64 // onset of the far field, meters
	FarField        float64 // on-axis density at the far-field onset
	Ground          float64 // off-axis density near the ground
	GroundRange     float64 // meters from the dish edge

	NearFieldVerdict Verdict
	FarFieldVerdict  Verdict
	GroundVerdict    Verdict
}

// Evaluate computes the OET-65 exposure figures and compliance verdicts
// for the given transmit system.
func Evaluate(p Params) (*Report, error) {
	diameter := p.Diameter.Meters()
	freqMHz := p.Frequency.Megahertz()
	power := p.Power.Watts()

	if diameter <= 0 {
		return nil, fmt.Errorf("safety: diameter must be positive, got %v m", diameter)
	}
	if freqMHz <= 0 {
		return nil, fmt.Errorf("safety: frequency must be positive, got %v MHz", freqMHz)
	}
	if power <= 0 {
		return nil, fmt.Errorf("safety: power must be positive, got %v W", power)
	}
	if p.Efficiency < 0 || p.Efficiency > 1 {
		return nil, fmt.Errorf("safety: efficiency must be within 0..1, got %v", p.Efficiency)
	}
	eta := p.Efficiency
	if eta == 0 {
		eta = DefaultEfficiency
	}

	wavelength := p.Frequency.Wavelength().Meters()
	gain := linkbudget.AntennaGain(eta, diameter, wavelength)
	eirp := linkbudget.EIRP(gain, power)

	r := &Report{
		Params:       p,
		Wavelength:   p.Frequency.Wavelength(),
		Gain:         units.Decibels(gain),
		EIRP:         units.Watts(eirp),
		Occupational: OccupationalLimits(freqMHz),
		Population:   PopulationLimits(freqMHz),

		Surface:         linkbudget.SurfaceDensity(power, diameter),
		NearFieldExtent: linkbudget.NearFieldExtent(diameter, wavelength),
		NearField:       linkbudget.NearFieldDensity(eta, power, diameter),
		FarFieldOnset:   linkbudget.FarFieldOnset(diameter, wavelength),
		GroundRange:     diameter/2 + 1,
	}
	r.FarField = linkbudget.FarFieldDensity(eirp, r.FarFieldOnset)

	// The off-axis ground-level estimate assumes mainbeam rejection of
	// 20 dB near the dish edge.
	r.Ground = r.NearField / 100

	r.NearFieldVerdict = r.verdict(r.NearFieldMilliwattsPerCm2())
	r.FarFieldVerdict = r.verdict(r.FarFieldMilliwattsPerCm2())
	r.GroundVerdict = r.verdict(r.GroundMilliwattsPerCm2())
	return r, nil
}

// W/m^2 to mW/cm^2.
func toMilliwattsPerCm2(wPerM2 float64) float64 { return wPerM2 / 10 }

func (r *Report) SurfaceMilliwattsPerCm2() float64   { return toMilliwattsPerCm2(r.Surface) }
func (r *Report) NearFieldMilliwattsPerCm2() float64 { return toMilliwattsPerCm2(r.NearField) }
func (r *Report) FarFieldMilliwattsPerCm2() float64  { return toMilliwattsPerCm2(r.FarField) }
func (r *Report) GroundMilliwattsPerCm2() float64    { return toMilliwattsPerCm2(r.Ground) }

func (r *Report) verdict(density float64) Verdict {
	v := Verdict{Occupational: "below MPE", Population: "below GP"}
	if density > r.Occupational.PowerDensity {
		v.Occupational = "EXCEEDS MPE"
	}
	if density > r.Population.PowerDensity {
		v.Population = "EXCEEDS GP"
	}
	return v
}

// OccupationalLimits returns the occupational/controlled MPE row for a
// frequency in MHz (OET-65 table 1A).
func OccupationalLimits(freqMHz float64) Limits {
	l := Limits{PowerDensity: 100, EField: fptr(614), HField: fptr(1.63), AveragingMins: 6}
	switch {
	case freqMHz > 0.3 && freqMHz < 30:
		if freqMHz >= 3 {
			l.PowerDensity = 900 / math.Pow(freqMHz, 2)
			l.EField = fptr(1842 / freqMHz)
			l.HField = fptr(4.89 / freqMHz)
		}
	case freqMHz >= 30 && freqMHz < 300:
		l.PowerDensity, l.EField, l.HField = 1.0, fptr(61.4), fptr(0.163)
	case freqMHz >= 300 && freqMHz < 1500:
		l.PowerDensity, l.EField, l.HField = freqMHz/300, nil, nil
	case freqMHz >= 1500 && freqMHz < 100000:
		l.PowerDensity, l.EField, l.HField = 5.0, nil, nil
	}
	return l
}

// PopulationLimits returns the general population/uncontrolled row for a
// frequency in MHz (OET-65 table 1B).
func PopulationLimits(freqMHz float64) Limits {
	l := Limits{PowerDensity: 100, EField: fptr(614), HField: fptr(1.63), AveragingMins: 30}
	switch {
	case freqMHz > 0.3 && freqMHz < 30:
		if freqMHz >= 1.34 {
			l.PowerDensity = 180 / math.Pow(freqMHz, 2)
			l.EField = fptr(824 / freqMHz)
			l.HField = fptr(2.19 / freqMHz)
		}
	case freqMHz >= 30 && freqMHz < 300:
		l.PowerDensity, l.EField, l.HField = 0.2, fptr(27.5), fptr(0.073)
	case freqMHz >= 300 && freqMHz < 1500:
		l.PowerDensity, l.EField, l.HField = freqMHz/1500, nil, nil
	case freqMHz >= 1500 && freqMHz < 100000:
		l.PowerDensity, l.EField, l.HField = 1.0, nil, nil
	}
	return l
}

func fptr(v float64) *float64 { return &v }

func fieldLimit(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.3g", *v)
}

func (l Limits) row(label string) string {
	return fmt.Sprintf("%s:\t%s V/m\t%s A/m\t%.4g mW/cm^2\t%d minutes\n",
		label, fieldLimit(l.EField), fieldLimit(l.HField), l.PowerDensity, l.AveragingMins)
}

// String renders the compliance report.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nGiven:\t%s m\t%s\t%s W\n",
		humanize.Ftoa(r.Params.Diameter.Meters()),
		humanize.SI(r.Params.Frequency.Hertz(), "Hz"),
		humanize.Ftoa(r.Params.Power.Watts()))
	b.WriteString(r.Occupational.row("Occupational limits"))
	b.WriteString(r.Population.row("General Population"))
	fmt.Fprintf(&b, "\n Surface Pwr\t%.2f mW/cm^2\t", r.SurfaceMilliwattsPerCm2())
	b.WriteString("\n On-Axis -")
	fmt.Fprintf(&b, "\n\tNear Field Max Pwr\t%.2f mW/cm^2\t%s", r.NearFieldMilliwattsPerCm2(), r.NearFieldVerdict)
	fmt.Fprintf(&b, "\n\tNear Field Extent\t%.2f m\t", r.NearFieldExtent)
	fmt.Fprintf(&b, "\n\tFar Field Onset\t\t%.2f m\t", r.FarFieldOnset)
	fmt.Fprintf(&b, "\n\tFar Field Max Pwr\t%.2f mW/cm^2\t%s", r.FarFieldMilliwattsPerCm2(), r.FarFieldVerdict)
	b.WriteString("\n\n Off-Axis -")
	b.WriteString("\n   Near Field -")
	fmt.Fprintf(&b, "\n\t%.1f m from dish edge\t%.2f mW/cm^2\t%s\n",
		r.GroundRange, r.GroundMilliwattsPerCm2(), r.GroundVerdict)
	return b.String()
}
