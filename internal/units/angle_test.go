package units

import (
	"errors"
	"testing"

	"github.com/roman-kulish/link-engineering/internal/constants"
)

func TestAngleConstruction(t *testing.T) {
	t.Run("degrees", func(t *testing.T) {
		a := Degrees(180.0)
		exact(t, "Radians", a.Radians(), constants.Pi)
		got, err := a.Degrees()
		if err != nil {
			t.Fatalf("Degrees() error: %v", err)
		}
		exact(t, "Degrees", got, 180.0)
		if a.Preference() != PreferDegrees {
			t.Errorf("Preference = %v, want degrees", a.Preference())
		}
	})

	t.Run("hours", func(t *testing.T) {
		a := Hours(12.0)
		exact(t, "Radians", a.Radians(), constants.Pi)
		got, err := a.Hours()
		if err != nil {
			t.Fatalf("Hours() error: %v", err)
		}
		exact(t, "Hours", got, 12.0)
		if a.Preference() != PreferHours {
			t.Errorf("Preference = %v, want hours", a.Preference())
		}
	})

	t.Run("radians default to degrees preference", func(t *testing.T) {
		a := Radians(1.0)
		if a.Preference() != PreferDegrees {
			t.Errorf("Preference = %v, want degrees", a.Preference())
		}
	})

	t.Run("options override", func(t *testing.T) {
		a := Radians(1.0, WithPreference(PreferHours), WithSigned())
		if a.Preference() != PreferHours {
			t.Errorf("Preference = %v, want hours", a.Preference())
		}
		if !a.Signed() {
			t.Error("Signed = false, want true")
		}
	})

	t.Run("from angle resets preference", func(t *testing.T) {
		ra := Hours(5.5)
		a := FromAngle(ra)
		exact(t, "Radians", a.Radians(), ra.Radians())
		if a.Preference() != PreferDegrees {
			t.Errorf("Preference = %v, want degrees", a.Preference())
		}
	})
}

func TestAngleGuards(t *testing.T) {
	ra := Hours(12.0)
	dec := Degrees(-23.5)

	var wu *WrongUnitError
	if _, err := ra.Degrees(); !errors.As(err, &wu) {
		t.Fatalf("Degrees() on hour angle error = %v, want WrongUnitError", err)
	}
	if wu.Preferred != "hours" || wu.Requested != "degrees" {
		t.Errorf("error = %v", wu)
	}

	if _, err := dec.Hours(); !errors.As(err, &wu) {
		t.Fatalf("Hours() on degree angle error = %v, want WrongUnitError", err)
	}
	if _, _, _, err := ra.DMS(); !errors.As(err, &wu) {
		t.Errorf("DMS() on hour angle error = %v, want WrongUnitError", err)
	}
	if _, _, _, err := dec.HMS(); !errors.As(err, &wu) {
		t.Errorf("HMS() on degree angle error = %v, want WrongUnitError", err)
	}
	if _, err := ra.DMSString(1); !errors.As(err, &wu) {
		t.Errorf("DMSString on hour angle error = %v, want WrongUnitError", err)
	}
	if _, err := dec.HMSString(2); !errors.As(err, &wu) {
		t.Errorf("HMSString on degree angle error = %v, want WrongUnitError", err)
	}
}

func TestAngleSmallUnits(t *testing.T) {
	a := Degrees(1.0)
	exact(t, "Arcminutes", a.Arcminutes(), 60.0)
	exact(t, "Arcseconds", a.Arcseconds(), 3600.0)
	exact(t, "Milliarcseconds", a.Milliarcseconds(), 3.6e6)
}

func TestAngleSexagesimalComponents(t *testing.T) {
	t.Run("hms", func(t *testing.T) {
		h, m, s, err := Hours(12.05125).HMS()
		if err != nil {
			t.Fatalf("HMS error: %v", err)
		}
		exact(t, "hours", h, 12)
		exact(t, "minutes", m, 3)
		exact(t, "seconds", s, 4.5)
	})

	t.Run("negative components carry the sign", func(t *testing.T) {
		d, m, s, err := Degrees(-12.05125).DMS()
		if err != nil {
			t.Fatalf("DMS error: %v", err)
		}
		exact(t, "degrees", d, -12)
		exact(t, "minutes", m, -3)
		exact(t, "seconds", s, -4.5)
	})

	t.Run("signed splits the sign out", func(t *testing.T) {
		sign, d, m, s, err := Degrees(-12.05125).SignedDMS()
		if err != nil {
			t.Fatalf("SignedDMS error: %v", err)
		}
		exact(t, "sign", sign, -1)
		exact(t, "degrees", d, 12)
		exact(t, "minutes", m, 3)
		exact(t, "seconds", s, 4.5)
	})
}

func TestAngleFormatting(t *testing.T) {
	t.Run("dms string", func(t *testing.T) {
		got, err := Degrees(181.875).DMSString(1)
		if err != nil {
			t.Fatalf("DMSString error: %v", err)
		}
		if want := `181deg 52' 30.0"`; got != want {
			t.Errorf("DMSString = %q, want %q", got, want)
		}
	})

	t.Run("signed dms string", func(t *testing.T) {
		got, err := Degrees(181.875, WithSigned()).DMSString(1)
		if err != nil {
			t.Fatalf("DMSString error: %v", err)
		}
		if want := `+181deg 52' 30.0"`; got != want {
			t.Errorf("DMSString = %q, want %q", got, want)
		}
	})

	t.Run("hms string", func(t *testing.T) {
		got, err := Hours(12.05125).HMSString(2)
		if err != nil {
			t.Fatalf("HMSString error: %v", err)
		}
		if want := "12h 03m 04.50s"; got != want {
			t.Errorf("HMSString = %q, want %q", got, want)
		}
	})

	t.Run("string follows preference", func(t *testing.T) {
		if got, want := Degrees(181.875).String(), `181deg 52' 30.0"`; got != want {
			t.Errorf("String = %q, want %q", got, want)
		}
		if got, want := Hours(12.05125).String(), "12h 03m 04.50s"; got != want {
			t.Errorf("String = %q, want %q", got, want)
		}
	})

	t.Run("series summarizes", func(t *testing.T) {
		got, err := Degrees([]float64{10, 20, 30}).DMSString(1)
		if err != nil {
			t.Fatalf("DMSString error: %v", err)
		}
		if want := `3 values from 10deg 00' 00.0" to 30deg 00' 00.0"`; got != want {
			t.Errorf("DMSString = %q, want %q", got, want)
		}
	})

	t.Run("empty series", func(t *testing.T) {
		if got := Degrees([]float64{}).String(); got != "Angle []" {
			t.Errorf("String = %q", got)
		}
	})

	t.Run("empty series sexagesimal", func(t *testing.T) {
		got, err := Degrees([]float64{}).DMSString(1)
		if err != nil {
			t.Fatalf("DMSString error: %v", err)
		}
		if got != "" {
			t.Errorf("DMSString = %q, want empty", got)
		}

		got, err = Hours([]float64{}).HMSString(2)
		if err != nil {
			t.Fatalf("HMSString error: %v", err)
		}
		if got != "" {
			t.Errorf("HMSString = %q, want empty", got)
		}
	})
}

func TestAngleRefusesBareSerialization(t *testing.T) {
	var ue *UnpackingError
	if _, err := Degrees(1.0).MarshalJSON(); !errors.As(err, &ue) {
		t.Fatalf("MarshalJSON error = %v, want UnpackingError", err)
	}
	if ue.Type != "Angle" {
		t.Errorf("error type = %q, want Angle", ue.Type)
	}
}
