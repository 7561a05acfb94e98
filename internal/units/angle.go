package units

import (
	"fmt"

	"github.com/roman-kulish/link-engineering/internal/constants"
)

// Preference declares the unit family an angle is naturally expressed in.
// It governs which accessors are unguarded: a right-ascension style angle
// prefers hours and refuses a casual read in degrees, and vice versa.
type Preference int

const (
	PreferDegrees Preference = iota
	PreferHours
)

func (p Preference) String() string {
	if p == PreferHours {
		return "hours"
	}
	return "degrees"
}

var angleAccessors = []string{"Radians", "Degrees", "Hours", "Arcminutes", "Arcseconds", "Milliarcseconds"}

// Angle is stored canonically in radians. The preference and signed flags
// are fixed at construction.
type Angle[M Magnitude] struct {
	rad    M // canonical radians
	pref   Preference
	signed bool
	views  *angleViews[M]
}

type angleViews[M Magnitude] struct {
	deg, hrs cell[M]
}

// AngleOption customizes an angle at construction.
type AngleOption func(*angleOptions)

type angleOptions struct {
	pref    Preference
	prefSet bool
	signed  bool
}

// WithPreference overrides the unit family the angle is declared to be
// naturally expressed in.
func WithPreference(p Preference) AngleOption {
	return func(o *angleOptions) {
		o.pref = p
		o.prefSet = true
	}
}

// WithSigned makes the angle's sexagesimal output carry an explicit sign.
func WithSigned() AngleOption {
	return func(o *angleOptions) {
		o.signed = true
	}
}

func newAngle[M Magnitude](rad M, def Preference, opts []AngleOption) Angle[M] {
	o := angleOptions{pref: def}
	for _, opt := range opts {
		opt(&o)
	}
	return Angle[M]{rad: rad, pref: o.pref, signed: o.signed, views: &angleViews[M]{}}
}

// Radians returns an Angle from a value in radians. The preference
// defaults to degrees.
func Radians[M Magnitude](v M, opts ...AngleOption) Angle[M] {
	return newAngle(clone(v), PreferDegrees, opts)
}

// Degrees returns a degree-preferring Angle from a value in degrees.
func Degrees[M Magnitude](v M, opts ...AngleOption) Angle[M] {
	a := newAngle(apply(v, func(d float64) float64 { return d / 360.0 * constants.Tau }), PreferDegrees, opts)
	a.views.deg.seed(v)
	return a
}

// Hours returns an hour-preferring Angle from a value in hours.
func Hours[M Magnitude](v M, opts ...AngleOption) Angle[M] {
	a := newAngle(apply(v, func(h float64) float64 { return h / 24.0 * constants.Tau }), PreferHours, opts)
	a.views.hrs.seed(v)
	return a
}

// FromAngle returns a new Angle with the same radians as a. Preference
// and signedness are taken from the options, not copied: absent an
// explicit option the result prefers degrees.
func FromAngle[M Magnitude](a Angle[M], opts ...AngleOption) Angle[M] {
	return newAngle(a.rad, PreferDegrees, opts)
}

// Radians is the canonical magnitude; it is never guarded.
func (a Angle[M]) Radians() M { return a.rad }

// Preference reports the unit family the angle is declared in.
func (a Angle[M]) Preference() Preference { return a.pref }

// Signed reports whether sexagesimal output carries an explicit sign.
func (a Angle[M]) Signed() bool { return a.signed }

// degrees and hours are the unchecked views used by the formatting code,
// which legitimately needs both families regardless of preference.
func (a Angle[M]) degrees() M {
	return a.views.deg.get(a.rad, func(r float64) float64 { return r * 360.0 / constants.Tau })
}

func (a Angle[M]) hours() M {
	return a.views.hrs.get(a.rad, func(r float64) float64 { return r * 24.0 / constants.Tau })
}

// Degrees returns the angle in degrees (360 in a circle). It fails with a
// WrongUnitError when the angle prefers hours.
func (a Angle[M]) Degrees() (M, error) {
	if a.pref != PreferDegrees {
		var zero M
		return zero, NewWrongUnitError(a.pref.String(), "degrees", "Hours")
	}
	return a.degrees(), nil
}

// Hours returns the angle in hours (24 in a circle). It fails with a
// WrongUnitError when the angle prefers degrees.
func (a Angle[M]) Hours() (M, error) {
	if a.pref != PreferHours {
		var zero M
		return zero, NewWrongUnitError(a.pref.String(), "hours", "Degrees")
	}
	return a.hours(), nil
}

// Arcminutes returns the angle in arcminutes.
func (a Angle[M]) Arcminutes() M {
	return apply(a.degrees(), func(d float64) float64 { return d * 60.0 })
}

// Arcseconds returns the angle in arcseconds.
func (a Angle[M]) Arcseconds() M {
	return apply(a.degrees(), func(d float64) float64 { return d * 3600.0 })
}

// Milliarcseconds returns the angle in milliarcseconds.
func (a Angle[M]) Milliarcseconds() M {
	return apply(a.degrees(), func(d float64) float64 { return d * 3600000.0 })
}

// HMS converts to hours, minutes and seconds, each carrying the sign of
// the angle itself. The decomposition is float-domain and unrounded; it
// is not suitable for display.
func (a Angle[M]) HMS() (hours, minutes, seconds M, err error) {
	if a.pref != PreferHours {
		return hours, minutes, seconds, NewWrongUnitError(a.pref.String(), "hours", "DMS")
	}
	hours, minutes, seconds = splitComponents(a.hours(), true)
	return hours, minutes, seconds, nil
}

// SignedHMS converts to a separate sign (-1, 0 or +1) and positive
// hours, minutes and seconds.
func (a Angle[M]) SignedHMS() (sign, hours, minutes, seconds M, err error) {
	if a.pref != PreferHours {
		return sign, hours, minutes, seconds, NewWrongUnitError(a.pref.String(), "hours", "SignedDMS")
	}
	sign, hours, minutes, seconds = signedComponents(a.hours())
	return sign, hours, minutes, seconds, nil
}

// DMS converts to degrees, minutes and seconds, each carrying the sign of
// the angle itself. The decomposition is float-domain and unrounded; it
// is not suitable for display.
func (a Angle[M]) DMS() (degrees, minutes, seconds M, err error) {
	if a.pref != PreferDegrees {
		return degrees, minutes, seconds, NewWrongUnitError(a.pref.String(), "degrees", "HMS")
	}
	degrees, minutes, seconds = splitComponents(a.degrees(), true)
	return degrees, minutes, seconds, nil
}

// SignedDMS converts to a separate sign (-1, 0 or +1) and positive
// degrees, minutes and seconds.
func (a Angle[M]) SignedDMS() (sign, degrees, minutes, seconds M, err error) {
	if a.pref != PreferDegrees {
		return sign, degrees, minutes, seconds, NewWrongUnitError(a.pref.String(), "degrees", "SignedHMS")
	}
	sign, degrees, minutes, seconds = signedComponents(a.degrees())
	return sign, degrees, minutes, seconds, nil
}

// DMSString renders the angle as `181deg 52' 30.0"` with the given number
// of fractional second digits. A series magnitude is summarized by its
// first and last elements.
func (a Angle[M]) DMSString(places int) (string, error) {
	if a.pref != PreferDegrees {
		return "", NewWrongUnitError(a.pref.String(), "degrees", "HMSString")
	}
	return summarize(a.degrees(), func(v float64) string {
		return formatDegrees(v, places, a.signed)
	}), nil
}

// HMSString renders the angle as `12h 07m 30.00s` with the given number
// of fractional second digits. A series magnitude is summarized by its
// first and last elements.
func (a Angle[M]) HMSString(places int) (string, error) {
	if a.pref != PreferHours {
		return "", NewWrongUnitError(a.pref.String(), "hours", "DMSString")
	}
	return summarize(a.hours(), func(v float64) string {
		return formatHours(v, places)
	}), nil
}

func (a Angle[M]) String() string {
	if len(series(a.rad)) == 0 {
		return "Angle []"
	}
	if a.pref == PreferDegrees {
		return summarize(a.degrees(), func(v float64) string {
			return formatDegrees(v, 1, a.signed)
		})
	}
	return summarize(a.hours(), func(v float64) string {
		return formatHours(v, 2)
	})
}

// GoString renders a debug form including the type name.
func (a Angle[M]) GoString() string {
	if len(series(a.rad)) == 0 {
		return "<Angle []>"
	}
	return fmt.Sprintf("<Angle %s>", a)
}

// MarshalYAML rejects serializing an Angle without choosing a unit.
func (a Angle[M]) MarshalYAML() (any, error) {
	return nil, NewUnpackingError("Angle", angleAccessors)
}

// MarshalJSON rejects serializing an Angle without choosing a unit.
func (a Angle[M]) MarshalJSON() ([]byte, error) {
	return nil, NewUnpackingError("Angle", angleAccessors)
}

// splitComponents runs the float-domain decomposition elementwise. With
// carrySign, each component carries the sign of its element.
func splitComponents[M Magnitude](m M, carrySign bool) (whole, minutes, seconds M) {
	factor := func(v float64) float64 {
		if carrySign {
			s, _, _, _ := SplitSexagesimal(v)
			if s < 0 {
				return -1
			}
		}
		return 1
	}
	whole = apply(m, func(v float64) float64 {
		_, w, _, _ := SplitSexagesimal(v)
		return factor(v) * w
	})
	minutes = apply(m, func(v float64) float64 {
		_, _, mn, _ := SplitSexagesimal(v)
		return factor(v) * mn
	})
	seconds = apply(m, func(v float64) float64 {
		_, _, _, sec := SplitSexagesimal(v)
		return factor(v) * sec
	})
	return whole, minutes, seconds
}

func signedComponents[M Magnitude](m M) (sign, whole, minutes, seconds M) {
	sign = apply(m, func(v float64) float64 {
		s, _, _, _ := SplitSexagesimal(v)
		return s
	})
	whole, minutes, seconds = splitComponents(m, false)
	return sign, whole, minutes, seconds
}

// summarize renders a magnitude with format, collapsing a series of two
// or more elements into "N values from <first> to <last>". An empty
// series renders as an empty string.
func summarize[M Magnitude](m M, format func(float64) string) string {
	vals := series(m)
	if len(vals) == 0 {
		return ""
	}
	if len(vals) >= 2 {
		return fmt.Sprintf("%d values from %s to %s", len(vals), format(vals[0]), format(vals[len(vals)-1]))
	}
	return format(vals[0])
}
