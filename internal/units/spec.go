package units

import "math"

// Spec types carry the mutually exclusive construction inputs of each
// quantity as optional fields, one per accepted unit, so a quantity can
// be declared in a YAML or JSON document. Resolve validates that exactly
// one input is populated and applies the matching conversion to obtain
// the canonical magnitude; nothing is constructed on failure.

// option pairs a parameter name with its optional value.
type option struct {
	name  string
	value *float64
}

// resolveOne enforces the exactly-one contract over the accepted options
// and validates the supplied number.
func resolveOne(typ string, opts []option) (name string, value float64, err error) {
	var given []string
	for _, o := range opts {
		if o.value != nil {
			given = append(given, o.name)
			name, value = o.name, *o.value
		}
	}
	if len(given) != 1 {
		accepted := make([]string, len(opts))
		for i, o := range opts {
			accepted[i] = o.name
		}
		return "", 0, NewInvalidConstructionError(typ, accepted, given)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", 0, NewInvalidValueError(typ, name, "value is not a finite number")
	}
	return name, value, nil
}

// DistanceSpec declares a Distance by exactly one unit.
type DistanceSpec struct {
	AstronomicalUnits *float64 `yaml:"astronomicalUnits,omitempty" json:"astronomicalUnits,omitempty"`
	Kilometers        *float64 `yaml:"kilometers,omitempty" json:"kilometers,omitempty"`
	Meters            *float64 `yaml:"meters,omitempty" json:"meters,omitempty"`
	Centimeters       *float64 `yaml:"centimeters,omitempty" json:"centimeters,omitempty"`
	Millimeters       *float64 `yaml:"millimeters,omitempty" json:"millimeters,omitempty"`
}

func (s DistanceSpec) Resolve() (Distance[float64], error) {
	name, v, err := resolveOne("Distance", []option{
		{"astronomicalUnits", s.AstronomicalUnits},
		{"kilometers", s.Kilometers},
		{"meters", s.Meters},
		{"centimeters", s.Centimeters},
		{"millimeters", s.Millimeters},
	})
	if err != nil {
		return Distance[float64]{}, err
	}
	switch name {
	case "astronomicalUnits":
		return AstronomicalUnits(v), nil
	case "kilometers":
		return Kilometers(v), nil
	case "centimeters":
		return Centimeters(v), nil
	case "millimeters":
		return Millimeters(v), nil
	default:
		return Meters(v), nil
	}
}

// FrequencySpec declares a Frequency by exactly one unit.
type FrequencySpec struct {
	Hertz            *float64 `yaml:"hertz,omitempty" json:"hertz,omitempty"`
	Kilohertz        *float64 `yaml:"kilohertz,omitempty" json:"kilohertz,omitempty"`
	Megahertz        *float64 `yaml:"megahertz,omitempty" json:"megahertz,omitempty"`
	Gigahertz        *float64 `yaml:"gigahertz,omitempty" json:"gigahertz,omitempty"`
	WavelengthMeters *float64 `yaml:"wavelengthMeters,omitempty" json:"wavelengthMeters,omitempty"`
}

func (s FrequencySpec) Resolve() (Frequency[float64], error) {
	name, v, err := resolveOne("Frequency", []option{
		{"hertz", s.Hertz},
		{"kilohertz", s.Kilohertz},
		{"megahertz", s.Megahertz},
		{"gigahertz", s.Gigahertz},
		{"wavelengthMeters", s.WavelengthMeters},
	})
	if err != nil {
		return Frequency[float64]{}, err
	}
	switch name {
	case "kilohertz":
		return Kilohertz(v), nil
	case "megahertz":
		return Megahertz(v), nil
	case "gigahertz":
		return Gigahertz(v), nil
	case "wavelengthMeters":
		return WavelengthMeters(v), nil
	default:
		return Hertz(v), nil
	}
}

// PowerSpec declares a Power by exactly one unit.
type PowerSpec struct {
	Kilowatts         *float64 `yaml:"kilowatts,omitempty" json:"kilowatts,omitempty"`
	Watts             *float64 `yaml:"watts,omitempty" json:"watts,omitempty"`
	Milliwatts        *float64 `yaml:"milliwatts,omitempty" json:"milliwatts,omitempty"`
	DecibelWatts      *float64 `yaml:"decibelWatts,omitempty" json:"decibelWatts,omitempty"`
	DecibelMilliwatts *float64 `yaml:"decibelMilliwatts,omitempty" json:"decibelMilliwatts,omitempty"`
}

func (s PowerSpec) Resolve() (Power[float64], error) {
	name, v, err := resolveOne("Power", []option{
		{"kilowatts", s.Kilowatts},
		{"watts", s.Watts},
		{"milliwatts", s.Milliwatts},
		{"decibelWatts", s.DecibelWatts},
		{"decibelMilliwatts", s.DecibelMilliwatts},
	})
	if err != nil {
		return Power[float64]{}, err
	}
	switch name {
	case "kilowatts":
		return Kilowatts(v), nil
	case "milliwatts":
		return Milliwatts(v), nil
	case "decibelWatts":
		return DecibelWatts(v), nil
	case "decibelMilliwatts":
		return DecibelMilliwatts(v), nil
	default:
		return Watts(v), nil
	}
}

// VelocitySpec declares a Velocity by exactly one unit.
type VelocitySpec struct {
	AstronomicalUnitsPerDay *float64 `yaml:"astronomicalUnitsPerDay,omitempty" json:"astronomicalUnitsPerDay,omitempty"`
	KilometersPerSecond     *float64 `yaml:"kilometersPerSecond,omitempty" json:"kilometersPerSecond,omitempty"`
}

func (s VelocitySpec) Resolve() (Velocity[float64], error) {
	name, v, err := resolveOne("Velocity", []option{
		{"astronomicalUnitsPerDay", s.AstronomicalUnitsPerDay},
		{"kilometersPerSecond", s.KilometersPerSecond},
	})
	if err != nil {
		return Velocity[float64]{}, err
	}
	if name == "kilometersPerSecond" {
		return KilometersPerSecond(v), nil
	}
	return AstronomicalUnitsPerDay(v), nil
}

// GainSpec declares a Gain by exactly one unit.
type GainSpec struct {
	LinearRatio *float64 `yaml:"linearRatio,omitempty" json:"linearRatio,omitempty"`
	Decibels    *float64 `yaml:"decibels,omitempty" json:"decibels,omitempty"`
}

func (s GainSpec) Resolve() (Gain[float64], error) {
	name, v, err := resolveOne("Gain", []option{
		{"linearRatio", s.LinearRatio},
		{"decibels", s.Decibels},
	})
	if err != nil {
		return Gain[float64]{}, err
	}
	if name == "decibels" {
		return Decibels(v), nil
	}
	return LinearRatio(v), nil
}

// TemperatureSpec declares a Temperature by exactly one unit.
type TemperatureSpec struct {
	Kelvin     *float64 `yaml:"kelvin,omitempty" json:"kelvin,omitempty"`
	Celsius    *float64 `yaml:"celsius,omitempty" json:"celsius,omitempty"`
	Fahrenheit *float64 `yaml:"fahrenheit,omitempty" json:"fahrenheit,omitempty"`
}

func (s TemperatureSpec) Resolve() (Temperature[float64], error) {
	name, v, err := resolveOne("Temperature", []option{
		{"kelvin", s.Kelvin},
		{"celsius", s.Celsius},
		{"fahrenheit", s.Fahrenheit},
	})
	if err != nil {
		return Temperature[float64]{}, err
	}
	switch name {
	case "celsius":
		return Celsius(v), nil
	case "fahrenheit":
		return Fahrenheit(v), nil
	default:
		return Kelvin(v), nil
	}
}

// AngleSpec declares an Angle by exactly one unit, plus the optional
// preference and signed flags. When preference is empty it follows the
// unit that was supplied: hours for an hour input, degrees otherwise.
type AngleSpec struct {
	Radians    *float64 `yaml:"radians,omitempty" json:"radians,omitempty"`
	Degrees    *float64 `yaml:"degrees,omitempty" json:"degrees,omitempty"`
	Hours      *float64 `yaml:"hours,omitempty" json:"hours,omitempty"`
	Preference string   `yaml:"preference,omitempty" json:"preference,omitempty"`
	Signed     bool     `yaml:"signed,omitempty" json:"signed,omitempty"`
}

func (s AngleSpec) Resolve() (Angle[float64], error) {
	name, v, err := resolveOne("Angle", []option{
		{"radians", s.Radians},
		{"degrees", s.Degrees},
		{"hours", s.Hours},
	})
	if err != nil {
		return Angle[float64]{}, err
	}

	var opts []AngleOption
	switch s.Preference {
	case "":
	case "degrees":
		opts = append(opts, WithPreference(PreferDegrees))
	case "hours":
		opts = append(opts, WithPreference(PreferHours))
	default:
		return Angle[float64]{}, NewInvalidValueError("Angle", "preference", `must be "degrees" or "hours"`)
	}
	if s.Signed {
		opts = append(opts, WithSigned())
	}

	switch name {
	case "radians":
		return Radians(v, opts...), nil
	case "hours":
		return Hours(v, opts...), nil
	default:
		return Degrees(v, opts...), nil
	}
}
