package units

import (
	"fmt"
	"strings"
)

// InvalidConstructionError reports that a quantity was asked to be built
// from none, or from more than one, of its mutually exclusive inputs.
type InvalidConstructionError struct {
	Type     string   // quantity type name, e.g. "Distance"
	Accepted []string // accepted parameter names
	Given    []string // parameter names actually supplied
}

func NewInvalidConstructionError(typ string, accepted, given []string) *InvalidConstructionError {
	return &InvalidConstructionError{Type: typ, Accepted: accepted, Given: given}
}

func (e *InvalidConstructionError) Error() string {
	msg := fmt.Sprintf("to construct a %s supply exactly one of: %s", e.Type, strings.Join(e.Accepted, ", "))
	switch len(e.Given) {
	case 0:
		return msg + "; none was supplied"
	default:
		return fmt.Sprintf("%s; got %s", msg, strings.Join(e.Given, " and "))
	}
}

// InvalidValueError reports that the single supplied magnitude is not a
// usable number or series of numbers.
type InvalidValueError struct {
	Type   string // quantity type name
	Param  string // parameter the value was supplied for
	Reason string
}

func NewInvalidValueError(typ, param, reason string) *InvalidValueError {
	return &InvalidValueError{Type: typ, Param: param, Reason: reason}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Type, e.Param, e.Reason)
}

// WrongUnitError reports a guarded read of an angle in the unit family it
// was declared not to prefer.
type WrongUnitError struct {
	Preferred string // the angle's declared unit family, "hours" or "degrees"
	Requested string // the unit family that was asked for
	Instead   string // the call the caller should have made
}

func NewWrongUnitError(preferred, requested, instead string) *WrongUnitError {
	return &WrongUnitError{Preferred: preferred, Requested: requested, Instead: instead}
}

func (e *WrongUnitError) Error() string {
	return fmt.Sprintf("this angle is usually expressed in %s, not %s; use %s instead",
		e.Preferred, e.Requested, e.Instead)
}

// UnpackingError reports an attempt to treat a quantity as a bare number,
// such as serializing it directly, instead of asking for a named unit.
type UnpackingError struct {
	Type      string   // quantity type name
	Accessors []string // available unit accessors
}

func NewUnpackingError(typ string, accessors []string) *UnpackingError {
	return &UnpackingError{Type: typ, Accessors: accessors}
}

func (e *UnpackingError) Error() string {
	return fmt.Sprintf("to use this %s, ask for its value in a particular unit: %s",
		e.Type, accessorList(e.Accessors))
}
