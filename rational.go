package exactsweep

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Rational is a signed arbitrary-precision rational number, always stored in
// lowest terms with a positive denominator. Every operation returns a fresh
// canonical Rational; values are immutable once constructed.
type Rational struct {
	num *big.Int
	den *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

// Zero is the canonical representation of 0, stored as 0/1.
func Zero() Rational { return Rational{num: big.NewInt(0), den: big.NewInt(1)} }

// One is the canonical representation of 1.
func One() Rational { return Rational{num: big.NewInt(1), den: big.NewInt(1)} }

// NewRationalInt builds a Rational from an int64 numerator over 1.
func NewRationalInt(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// NewRationalFrac builds a Rational from an int64 numerator and denominator,
// reducing to canonical form. It fails with ErrDivisionByZero if den is 0.
func NewRationalFrac(n, d int64) (Rational, error) {
	return newRational(big.NewInt(n), big.NewInt(d))
}

// newRational reduces (num, den) to canonical form: positive denominator,
// gcd(|num|, den) == 1, and 0 represented as 0/1.
func newRational(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	if n.Sign() == 0 {
		return Rational{num: big.NewInt(0), den: big.NewInt(1)}, nil
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	n.Quo(n, g)
	d.Quo(d, g)
	return Rational{num: n, den: d}, nil
}

var (
	reInteger   = regexp.MustCompile(`^(-?)(\d+)$`)
	reFraction  = regexp.MustCompile(`^(-?)(\d+)/(\d+)$`)
	reDecimal   = regexp.MustCompile(`^(-?)(\d+)\.(\d+)$`)
	reRepeating = regexp.MustCompile(`^(-?)(\d+)\.(\d+)\((\d+)\)$`)
)

// ParseRational parses an integer string, a "p/q" fraction, a terminating
// decimal "a.bcd", or a repeating decimal "a.b(cd)" into a canonical
// Rational. It fails with ErrInvalidNumber for any other text, or text with
// a zero denominator.
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("%w: empty string", ErrInvalidNumber)
	}

	if m := reRepeating.FindStringSubmatch(s); m != nil {
		return parseRepeatingDecimal(m)
	}
	if m := reDecimal.FindStringSubmatch(s); m != nil {
		return parseTerminatingDecimal(m)
	}
	if m := reFraction.FindStringSubmatch(s); m != nil {
		return parseFraction(m)
	}
	if m := reInteger.FindStringSubmatch(s); m != nil {
		return parseInteger(m)
	}
	return Rational{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
}

func parseInteger(m []string) (Rational, error) {
	sign, digits := m[1], m[2]
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidNumber, digits)
	}
	if sign == "-" {
		n.Neg(n)
	}
	return newRational(n, bigOne)
}

func parseFraction(m []string) (Rational, error) {
	sign, numStr, denStr := m[1], m[2], m[3]
	n, ok := new(big.Int).SetString(numStr, 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidNumber, numStr)
	}
	d, ok := new(big.Int).SetString(denStr, 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidNumber, denStr)
	}
	if d.Sign() == 0 {
		return Rational{}, fmt.Errorf("%w: zero denominator in %q/%q", ErrInvalidNumber, numStr, denStr)
	}
	if sign == "-" {
		n.Neg(n)
	}
	return newRational(n, d)
}

func parseTerminatingDecimal(m []string) (Rational, error) {
	sign, intPart, fracPart := m[1], m[2], m[3]
	n, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidNumber, intPart+"."+fracPart)
	}
	den := new(big.Int).Exp(bigTen, big.NewInt(int64(len(fracPart))), nil)
	if sign == "-" {
		n.Neg(n)
	}
	return newRational(n, den)
}

// parseRepeatingDecimal implements a.b(c) == (abc - ab) / ((10^|c|-1)*10^|b|),
// with sign carried from the leading '-'.
func parseRepeatingDecimal(m []string) (Rational, error) {
	sign, a, b, c := m[1], m[2], m[3], m[4]

	abc, ok := new(big.Int).SetString(a+b+c, 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidNumber, a+"."+b+"("+c+")")
	}
	ab, ok := new(big.Int).SetString(a+b, 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidNumber, a+b)
	}

	num := new(big.Int).Sub(abc, ab)
	denMul1 := new(big.Int).Exp(bigTen, big.NewInt(int64(len(c))), nil)
	denMul1.Sub(denMul1, bigOne)
	denMul2 := new(big.Int).Exp(bigTen, big.NewInt(int64(len(b))), nil)
	den := new(big.Int).Mul(denMul1, denMul2)

	if sign == "-" {
		num.Neg(num)
	}
	return newRational(num, den)
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	n := new(big.Int).Add(new(big.Int).Mul(r.num, other.den), new(big.Int).Mul(other.num, r.den))
	d := new(big.Int).Mul(r.den, other.den)
	result, _ := newRational(n, d) // d is a product of two positive denominators, never zero
	return result
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return r.Add(other.Neg())
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	n := new(big.Int).Mul(r.num, other.num)
	d := new(big.Int).Mul(r.den, other.den)
	result, _ := newRational(n, d)
	return result
}

// Div returns r / other, failing with ErrDivisionByZero if other is zero.
func (r Rational) Div(other Rational) (Rational, error) {
	if other.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	n := new(big.Int).Mul(r.num, other.den)
	d := new(big.Int).Mul(r.den, other.num)
	return newRational(n, d)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Recip returns 1/r, failing with ErrDivisionByZero if r is zero.
func (r Rational) Recip() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	return newRational(r.den, r.num)
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sign() int { return r.num.Sign() }

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.num.Sign() == 0 }

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.den.Cmp(bigOne) == 0 }

// Cmp compares r and other, returning -1, 0, or 1, computed as
// sign(num1*den2 - num2*den1) to avoid any floating-point conversion.
func (r Rational) Cmp(other Rational) int {
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	return lhs.Cmp(rhs)
}

// Equal reports whether r and other denote the same rational value.
func (r Rational) Equal(other Rational) bool { return r.Cmp(other) == 0 }

// Less reports whether r < other.
func (r Rational) Less(other Rational) bool { return r.Cmp(other) < 0 }

// Num returns a copy of the canonical numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns a copy of the canonical denominator.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.den) }

// Float64 returns the nearest float64 approximation of r, for debug output;
// no predicate in this package ever consults it.
func (r Rational) Float64() float64 {
	f := new(big.Rat).SetFrac(r.num, r.den)
	v, _ := f.Float64()
	return v
}

// String renders r in canonical "num" or "num/den" form.
func (r Rational) String() string {
	if r.den.Cmp(bigOne) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// Key returns a string uniquely identifying r's canonical value, suitable
// for use as a map key. Two Rationals with Equal == true always produce the
// same Key, because both are derived from the same reduced (num, den) pair.
func (r Rational) Key() string { return r.num.String() + "/" + r.den.String() }
