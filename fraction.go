package fraction

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// Fraction type is a representation of a rational number kept in lowest terms.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fraction type is a struct with two parameters:
//
//   - Numerator: a signed integer carrying the sign of the fraction.
//   - Denominator: a positive integer.
//
// Every fraction is reduced at construction: the numerator and the denominator
// have no common divisor other than 1, and the denominator is positive.
// For example, 6/-8 is stored as -3/4, and 0/5 is stored as 0/1.
// Such approach guarantees that every rational number has exactly one
// representation, so two fractions are equal if and only if they are
// equal as Go values.
type Fraction struct {
	num int64 // numerator, carries the sign
	den int64 // denominator minus one, so that the zero value is 0/1
}

var (
	// ErrDivisionByZero is returned when a zero denominator or a zero divisor is used.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrTypeMismatch is returned when a value cannot be used as a fraction
	// or as an integer exponent.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrOverflow is returned when the reduced result does not fit into int64.
	ErrOverflow = errors.New("integer overflow")
)

// Arithmetic is the set of operations shared by exact numeric value types.
// It allows generic code to work with fractions without knowing their representation.
type Arithmetic[T any] interface {
	Add(T) (T, error)
	Sub(T) (T, error)
	Mul(T) (T, error)
	Quo(T) (T, error)
	Pow(int) (T, error)
	Equal(T) bool
}

var _ Arithmetic[Fraction] = Fraction{}

// newFraction reduces num/den and applies the sign.
// It is the only place where fractions are assembled.
func newFraction(neg bool, num, den uint64) (Fraction, error) {
	switch {
	case den == 0:
		return Fraction{}, ErrDivisionByZero
	case num == 0:
		return Fraction{}, nil
	}
	g := gcd(num, den)
	num, den = num/g, den/g
	if num > maxFint || den > maxFint {
		return Fraction{}, ErrOverflow
	}
	n := int64(num)
	if neg {
		n = -n
	}
	return Fraction{num: n, den: int64(den) - 1}, nil
}

func newFractionFromFint(num, den fint) (Fraction, error) {
	return New(int64(num), int64(den))
}

func newFractionFromBint(num, den *bint) (Fraction, error) {
	if den.sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	reduce(num, den)
	n, ok := num.fint()
	if !ok {
		return Fraction{}, ErrOverflow
	}
	d, ok := den.fint()
	if !ok {
		return Fraction{}, ErrOverflow
	}
	return newFractionFromFint(n, d)
}

// New returns a fraction equal to num / den in lowest terms.
// The sign of den is moved to the numerator.
//
// New returns an error if:
//   - den is 0;
//   - the reduced numerator or denominator is math.MinInt64 in absolute value,
//     for example New(math.MinInt64, 1).
func New(num, den int64) (Fraction, error) {
	f, err := newFraction((num < 0) != (den < 0), uabs(num), uabs(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("constructing %v/%v: %w", num, den, err)
	}
	return f, nil
}

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// NewFromInt64 returns a fraction equal to n / 1.
//
// NewFromInt64 returns an error if n is math.MinInt64.
func NewFromInt64(n int64) (Fraction, error) {
	return New(n, 1)
}

// Of converts a value of a dynamic type to a fraction.
// The following types are supported:
//
//   - Fraction and non-nil *Fraction;
//   - int, int8, int16, int32, int64;
//   - uint, uint8, uint16, uint32, uint64;
//   - non-nil *big.Rat.
//
// Of returns [ErrTypeMismatch] for any other type and [ErrOverflow]
// if the value does not fit into a fraction.
func Of(v any) (Fraction, error) {
	switch v := v.(type) {
	case Fraction:
		return v, nil
	case *Fraction:
		if v != nil {
			return *v, nil
		}
	case int:
		return NewFromInt64(int64(v))
	case int8:
		return NewFromInt64(int64(v))
	case int16:
		return NewFromInt64(int64(v))
	case int32:
		return NewFromInt64(int64(v))
	case int64:
		return NewFromInt64(v)
	case uint:
		return newFraction(false, uint64(v), 1)
	case uint8:
		return newFraction(false, uint64(v), 1)
	case uint16:
		return newFraction(false, uint64(v), 1)
	case uint32:
		return newFraction(false, uint64(v), 1)
	case uint64:
		return newFraction(false, v, 1)
	case *big.Rat:
		if v != nil {
			return newFractionFromRat(v)
		}
	}
	return Fraction{}, fmt.Errorf("converting %T to %T: %w", v, Fraction{}, ErrTypeMismatch)
}

func newFractionFromRat(r *big.Rat) (Fraction, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return Fraction{}, fmt.Errorf("converting %v: %w", r, ErrOverflow)
	}
	return New(num.Int64(), den.Int64())
}

// numer returns the numerator as fint.
func (f Fraction) numer() fint {
	return fint(f.num)
}

// denom returns the denominator as fint.
func (f Fraction) denom() fint {
	return fint(f.den) + 1
}

// Num returns the numerator of the fraction in lowest terms.
// The sign of the fraction is carried by the numerator.
func (f Fraction) Num() int64 {
	return int64(f.numer())
}

// Den returns the denominator of the fraction in lowest terms.
// The denominator is always positive.
func (f Fraction) Den() int64 {
	return int64(f.denom())
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a fraction in one of the following forms:
//
//	-3/4
//	3/4
//	2
//
// The denominator is omitted when it equals 1.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	buf := make([]byte, 0, 40)
	buf = strconv.AppendInt(buf, f.Num(), 10)
	if f.Den() != 1 {
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, f.Den(), 10)
	}
	return string(buf)
}

// MixedString returns a string representation of a fraction as a mixed number,
// that is an integer part followed by a proper fractional remainder:
//
//	2 1/3
//	1/3
//	2
//
// The integer part is the floor of the fraction and the remainder is
// always non-negative.
// Thus, -7/3 is represented as "-3 2/3" and -1/3 as "-1 2/3".
func (f Fraction) MixedString() string {
	q, r := f.numer().quoRem(f.denom())
	buf := make([]byte, 0, 60)
	switch {
	case r == 0:
		buf = strconv.AppendInt(buf, int64(q), 10)
	case q == 0:
		buf = strconv.AppendInt(buf, int64(r), 10)
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, f.Den(), 10)
	default:
		buf = strconv.AppendInt(buf, int64(q), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(r), 10)
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, f.Den(), 10)
	}
	return string(buf)
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Value implements the [driver.Valuer] interface.
// Also see method [Fraction.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction) Value() (driver.Value, error) {
	return f.String(), nil
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding to nearest, ties to even].
// The result is computed as float64(num) / float64(den).
//
// [rounding to nearest, ties to even]: https://en.wikipedia.org/wiki/Rounding#Round_half_to_even
func (f Fraction) Float64() float64 {
	return float64(f.Num()) / float64(f.Den())
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num == 0:
		return 0
	}
	return 1
}

// IsPos returns true if f > 0.
func (f Fraction) IsPos() bool {
	return f.num > 0
}

// IsNeg returns true if f < 0.
func (f Fraction) IsNeg() bool {
	return f.num < 0
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsInt returns true if the denominator divides the numerator.
// For a fraction in lowest terms this means the denominator is 1.
func (f Fraction) IsInt() bool {
	_, r := f.numer().quoRem(f.denom())
	return r == 0
}

// IsProper returns true if -1 < f < 1.
func (f Fraction) IsProper() bool {
	return f.numer().abs() < f.denom()
}

// IsUnit returns true if the numerator is exactly 1.
// Negative fractions, such as -1/3, are not unit fractions.
func (f Fraction) IsUnit() bool {
	return f.num == 1
}

// IsAdjacent returns true if f and g differ by a unit fraction
// with a denominator greater than 1, for example 1/2 and 1/3.
// The difference is computed exactly, even if it does not fit into a fraction.
func (f Fraction) IsAdjacent(g Fraction) bool {
	// Fast path
	if h, err := f.Sub(g); err == nil {
		return h.numer().abs() == 1 && h.denom() > 1
	}

	// Slow path
	num, den := getBint(), getBint()
	defer putBint(num)
	defer putBint(den)
	subSlow(num, den, f, g)
	reduce(num, den)
	one := getBint()
	defer putBint(one)
	one.setFint(1)
	return num.cmpAbs(one) == 0 && den.cmp(one) > 0
}

// Equal returns true if f and g represent the same number.
func (f Fraction) Equal(g Fraction) bool {
	return f == g
}

// EqualValue is like [Fraction.Equal], but accepts a value of a dynamic type.
// EqualValue returns false if v is neither a Fraction nor a non-nil *Fraction.
func (f Fraction) EqualValue(v any) bool {
	switch v := v.(type) {
	case Fraction:
		return f.Equal(v)
	case *Fraction:
		return v != nil && f.Equal(*v)
	}
	return false
}

// Neg returns f with opposite sign.
func (f Fraction) Neg() Fraction {
	return Fraction{num: -f.num, den: f.den}
}

// Abs returns absolute value of f.
func (f Fraction) Abs() Fraction {
	return Fraction{num: int64(f.numer().abs()), den: f.den}
}

// Inv returns the reciprocal of f.
//
// Inv returns an error if f is 0.
func (f Fraction) Inv() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, fmt.Errorf("computing [1 / %v]: %w", f, ErrDivisionByZero)
	}
	return newFractionFromFint(f.denom(), f.numer())
}

// Add returns the sum of f and g.
//
// Add returns an error if the reduced sum does not fit into a fraction.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	h, err := addFast(f, g)
	if err != nil {
		h, err = addSlow(f, g)
		if err != nil {
			return Fraction{}, fmt.Errorf("computing [%v + %v]: %w", f, g, err)
		}
	}
	return h, nil
}

// Sub returns the difference of f and g.
//
// Sub returns an error if the reduced difference does not fit into a fraction.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	h, err := addFast(f, g.Neg())
	if err != nil {
		h, err = addSlow(f, g.Neg())
		if err != nil {
			return Fraction{}, fmt.Errorf("computing [%v - %v]: %w", f, g, err)
		}
	}
	return h, nil
}

// addFast computes f + g using int64 arithmetic.
func addFast(f, g Fraction) (Fraction, error) {
	var (
		fnum, fden fint
		gnum, gden fint
		num, den   fint
		ok         bool
	)

	fnum, fden = f.numer(), f.denom()
	gnum, gden = g.numer(), g.denom()

	// Numerator
	fnum, ok = fnum.mul(gden)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	gnum, ok = gnum.mul(fden)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	num, ok = fnum.add(gnum)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	// Denominator
	den, ok = fden.mul(gden)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	return newFractionFromFint(num, den)
}

// addSlow computes f + g using big.Int arithmetic.
func addSlow(f, g Fraction) (Fraction, error) {
	num, den := getBint(), getBint()
	defer putBint(num)
	defer putBint(den)
	subSlow(num, den, f, g.Neg())
	return newFractionFromBint(num, den)
}

// subSlow sets num and den to the unreduced numerator and denominator
// of f - g.
func subSlow(num, den *bint, f, g Fraction) {
	x, y := getBint(), getBint()
	defer putBint(x)
	defer putBint(y)

	// Numerator
	x.setFint(f.numer())
	y.setFint(g.denom())
	num.mul(x, y)
	x.setFint(-g.numer())
	y.setFint(f.denom())
	x.mul(x, y)
	num.add(num, x)

	// Denominator
	x.setFint(f.denom())
	y.setFint(g.denom())
	den.mul(x, y)
}

// Mul returns the product of f and g.
//
// Mul returns an error if the reduced product does not fit into a fraction.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	h, err := mulFast(f, g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v * %v]: %w", f, g, err)
	}
	return h, nil
}

// mulFast computes f * g using int64 arithmetic.
// Common factors are cancelled crosswise before multiplication, so the product
// is already in lowest terms and an overflow here is an overflow of the result.
func mulFast(f, g Fraction) (Fraction, error) {
	var (
		fnum, fden fint
		gnum, gden fint
		num, den   fint
		ok         bool
	)

	fnum, fden = f.numer(), f.denom()
	gnum, gden = g.numer(), g.denom()

	// Special case: zero factor
	if fnum == 0 || gnum == 0 {
		return Fraction{}, nil
	}

	// Cross cancellation
	if d := fint(gcd(uint64(fnum.abs()), uint64(gden))); d != 1 {
		fnum, gden = fnum/d, gden/d
	}
	if d := fint(gcd(uint64(gnum.abs()), uint64(fden))); d != 1 {
		gnum, fden = gnum/d, fden/d
	}

	// Numerator
	num, ok = fnum.mul(gnum)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	// Denominator
	den, ok = fden.mul(gden)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	return newFractionFromFint(num, den)
}

// Quo returns the quotient of f and g.
//
// Quo returns an error if:
//   - g is 0;
//   - the reduced quotient does not fit into a fraction.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	// Special case: zero divisor
	if g.IsZero() {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, ErrDivisionByZero)
	}

	// General case
	inv := Fraction{num: int64(g.denom()), den: int64(g.numer().abs()) - 1}
	if g.IsNeg() {
		inv = inv.Neg()
	}
	h, err := mulFast(f, inv)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, err)
	}
	return h, nil
}

// Pow returns f raised to the power of exp.
// The numerator and the denominator are raised separately.
// A negative exponent raises the reciprocal of f to the power of -exp,
// and a zero exponent always produces 1, including 0^0.
//
// Pow returns an error if:
//   - f is 0 and exp is negative;
//   - the result does not fit into a fraction.
func (f Fraction) Pow(exp int) (Fraction, error) {
	var (
		num, den fint
		e        uint
		ok       bool
	)

	// Reciprocal
	switch {
	case exp < 0:
		inv, err := f.Inv()
		if err != nil {
			return Fraction{}, fmt.Errorf("computing [%v^%v]: %w", f, exp, err)
		}
		f = inv
		e = uint(-exp) // math.MinInt is mapped to its magnitude
	default:
		e = uint(exp)
	}

	// Numerator
	num, ok = f.numer().pow(e)
	if !ok {
		return Fraction{}, fmt.Errorf("computing [%v^%v]: %w", f, exp, ErrOverflow)
	}

	// Denominator
	den, ok = f.denom().pow(e)
	if !ok {
		return Fraction{}, fmt.Errorf("computing [%v^%v]: %w", f, exp, ErrOverflow)
	}

	return newFractionFromFint(num, den)
}

// Cmp compares f and g numerically and returns:
//
//	-1 if f < g
//	 0 if f == g
//	+1 if f > g
func (f Fraction) Cmp(g Fraction) int {
	// Special case: different signs
	switch {
	case g.Sign() < f.Sign():
		return 1
	case f.Sign() < g.Sign():
		return -1
	}

	// General case
	r, err := cmpFast(f, g)
	if err != nil {
		r = cmpSlow(f, g)
	}
	return r
}

func cmpFast(f, g Fraction) (int, error) {
	var (
		fnum, gnum fint
		ok         bool
	)

	// Cross multiplication
	fnum, ok = f.numer().mul(g.denom())
	if !ok {
		return 0, ErrOverflow
	}
	gnum, ok = g.numer().mul(f.denom())
	if !ok {
		return 0, ErrOverflow
	}

	// Comparison
	switch {
	case gnum < fnum:
		return 1, nil
	case fnum < gnum:
		return -1, nil
	default:
		return 0, nil
	}
}

func cmpSlow(f, g Fraction) int {
	fnum, gnum, x := getBint(), getBint(), getBint()
	defer putBint(fnum)
	defer putBint(gnum)
	defer putBint(x)

	// Cross multiplication
	fnum.setFint(f.numer())
	x.setFint(g.denom())
	fnum.mul(fnum, x)
	gnum.setFint(g.numer())
	x.setFint(f.denom())
	gnum.mul(gnum, x)

	// Comparison
	return fnum.cmp(gnum)
}

// Max returns maximum of f and g.
// Also see method [Fraction.Cmp].
func (f Fraction) Max(g Fraction) Fraction {
	if f.Cmp(g) >= 0 {
		return f
	}
	return g
}

// Min returns minimum of f and g.
// Also see method [Fraction.Cmp].
func (f Fraction) Min(g Fraction) Fraction {
	if f.Cmp(g) <= 0 {
		return f
	}
	return g
}

// Int64 returns the integer part of f truncated towards zero,
// the same way Go converts floating-point numbers to integers.
func (f Fraction) Int64() int64 {
	return f.Num() / f.Den()
}
