package units

// Conversion maps between a unit view and the canonical magnitude of a
// quantity. A conversion is attached to a view at type-definition time;
// nothing is resolved by name at call time.
type Conversion interface {
	// FromCanonical derives the view value from the canonical magnitude.
	FromCanonical(c float64) float64
	// ToCanonical recovers the canonical magnitude from a view value.
	ToCanonical(v float64) float64
}

// Divisor is a linear conversion: view = canonical / k and canonical =
// view * k, where k is the size of one view unit in canonical units
// (1000 m per km, 1e9 Hz per GHz).
type Divisor float64

func (k Divisor) FromCanonical(c float64) float64 { return c / float64(k) }
func (k Divisor) ToCanonical(v float64) float64   { return v * float64(k) }

// Factor is the same linear conversion oriented the other way: view =
// canonical * f and canonical = view / f, where f is the number of view
// units in one canonical unit (100 cm per m). Preferred over Divisor when
// f is exactly representable and 1/f is not, so that round trips through
// the view stay exact.
type Factor float64

func (f Factor) FromCanonical(c float64) float64 { return c * float64(f) }
func (f Factor) ToCanonical(v float64) float64   { return v / float64(f) }

// Pair is a non-linear conversion given by a forward/inverse function
// pair, required to be exact mathematical inverses. Used for the decibel
// views, where the relationship is logarithmic.
type Pair struct {
	From func(c float64) float64 // canonical to view
	To   func(v float64) float64 // view to canonical
}

func (p Pair) FromCanonical(c float64) float64 { return p.From(c) }
func (p Pair) ToCanonical(v float64) float64   { return p.To(v) }
