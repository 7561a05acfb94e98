package units

import (
	"fmt"

	"github.com/roman-kulish/link-engineering/internal/constants"
)

// Rate time-denominator conversions.
var (
	ratePerHour   = Divisor(24)    // 24 hours per day
	ratePerMinute = Divisor(1440)  // 1440 minutes per day
	ratePerSecond = Divisor(86400) // 86400 seconds per day
)

var rateAccessors = []string{"PerDay", "PerHour", "PerMinute", "PerSecond"}

// Rate is a measurement whose denominator is time, stored canonically as
// units per day.
type Rate[M Magnitude] struct {
	perDay M // canonical per day
	views  *rateViews[M]
}

type rateViews[M Magnitude] struct {
	hour, minute, second cell[M]
}

// PerDay returns a Rate from a value in units per day.
func PerDay[M Magnitude](v M) Rate[M] {
	return Rate[M]{perDay: clone(v), views: &rateViews[M]{}}
}

// PerDay is the canonical magnitude.
func (r Rate[M]) PerDay() M { return r.perDay }

// PerHour derives the rate in units per hour.
func (r Rate[M]) PerHour() M { return r.views.hour.get(r.perDay, ratePerHour.FromCanonical) }

// PerMinute derives the rate in units per minute.
func (r Rate[M]) PerMinute() M { return r.views.minute.get(r.perDay, ratePerMinute.FromCanonical) }

// PerSecond derives the rate in units per second.
func (r Rate[M]) PerSecond() M { return r.views.second.get(r.perDay, ratePerSecond.FromCanonical) }

func (r Rate[M]) String() string {
	return formatMagnitude(r.perDay, "per day")
}

// GoString renders a debug form including the type name.
func (r Rate[M]) GoString() string {
	return fmt.Sprintf("<Rate %s>", r)
}

// MarshalYAML rejects serializing a Rate without choosing a unit.
func (r Rate[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("Rate", rateAccessors)
}

// MarshalJSON rejects serializing a Rate without choosing a unit.
func (r Rate[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("Rate", rateAccessors)
}

var angleRateAccessors = []string{"Radians", "Degrees", "Arcminutes", "Arcseconds", "Milliarcseconds"}

// AngleRate is the rate at which an angle changes, stored canonically in
// radians per day. It derives in two stages: the angular unit is scaled
// first, producing a Rate whose time denominator can then be converted.
type AngleRate[M Magnitude] struct {
	radPerDay M // canonical radians per day
	views     *angleRateViews[M]
}

type angleRateViews[M Magnitude] struct {
	rad, deg, arcmin, arcsec, mas *Rate[M]
}

// RadiansPerDay returns an AngleRate from a value in radians per day.
func RadiansPerDay[M Magnitude](v M) AngleRate[M] {
	return AngleRate[M]{radPerDay: clone(v), views: &angleRateViews[M]{}}
}

// rate memoizes one angular-unit Rate, scaling the canonical radians per
// day by unitsPerCircle/tau.
func (a AngleRate[M]) rate(slot **Rate[M], unitsPerCircle float64) Rate[M] {
	if *slot == nil {
		r := PerDay(apply(a.radPerDay, func(v float64) float64 {
			return v / constants.Tau * unitsPerCircle
		}))
		*slot = &r
	}
	return **slot
}

// Radians is the rate of change in radians.
func (a AngleRate[M]) Radians() Rate[M] {
	if a.views.rad == nil {
		r := PerDay(a.radPerDay)
		a.views.rad = &r
	}
	return *a.views.rad
}

// Degrees is the rate of change in degrees.
func (a AngleRate[M]) Degrees() Rate[M] { return a.rate(&a.views.deg, 360.0) }

// Arcminutes is the rate of change in arcminutes.
func (a AngleRate[M]) Arcminutes() Rate[M] { return a.rate(&a.views.arcmin, 21600.0) }

// Arcseconds is the rate of change in arcseconds.
func (a AngleRate[M]) Arcseconds() Rate[M] { return a.rate(&a.views.arcsec, constants.ASEC360) }

// Milliarcseconds is the rate of change in milliarcseconds.
func (a AngleRate[M]) Milliarcseconds() Rate[M] { return a.rate(&a.views.mas, 1.296e9) }

func (a AngleRate[M]) String() string {
	return formatMagnitude(a.radPerDay, "rad/day")
}

// GoString renders a debug form including the type name.
func (a AngleRate[M]) GoString() string {
	return fmt.Sprintf("<AngleRate %s>", a)
}

// MarshalYAML rejects serializing an AngleRate without choosing a unit.
func (a AngleRate[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("AngleRate", angleRateAccessors)
}

// MarshalJSON rejects serializing an AngleRate without choosing a unit.
func (a AngleRate[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("AngleRate", angleRateAccessors)
}
