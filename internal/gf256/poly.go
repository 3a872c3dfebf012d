package gf256

import "fmt"

// Poly is an immutable polynomial over GF(256). Coefficients are stored
// most-significant-first: coeffs[0] is the coefficient of x^degree,
// coeffs[len(coeffs)-1] is the constant term.
//
// Invariant: either coeffs[0] != 0, or the polynomial is the single
// element []int{0} (the canonical zero polynomial).
type Poly struct {
	coeffs []int
}

var zeroPoly = &Poly{coeffs: []int{0}}

// NewPoly builds a Poly from most-significant-first coefficients,
// stripping leading zeros per the canonicalization invariant.
func NewPoly(coefficients []int) *Poly {
	if len(coefficients) == 0 {
		return zeroPoly
	}
	firstNonZero := 0
	for firstNonZero < len(coefficients)-1 && coefficients[firstNonZero] == 0 {
		firstNonZero++
	}
	if firstNonZero == 0 {
		c := make([]int, len(coefficients))
		copy(c, coefficients)
		return &Poly{coeffs: c}
	}
	c := make([]int, len(coefficients)-firstNonZero)
	copy(c, coefficients[firstNonZero:])
	return &Poly{coeffs: c}
}

// Degree returns len(coeffs)-1.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the canonical zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coeffs[0] == 0
}

// Coefficient returns the coefficient of x^degree, 0 if out of range.
func (p *Poly) Coefficient(degree int) int {
	if degree < 0 || degree > p.Degree() {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1-degree]
}

// EvaluateAt evaluates the polynomial at x using Horner's rule.
func (p *Poly) EvaluateAt(field *Field, x int) int {
	if x == 0 {
		return p.Coefficient(0)
	}
	if x == 1 {
		result := 0
		for _, c := range p.coeffs {
			result ^= c
		}
		return result
	}
	result := p.coeffs[0]
	for i := 1; i < len(p.coeffs); i++ {
		result = field.Add(field.Multiply(x, result), p.coeffs[i])
	}
	return result
}

// Multiply returns p*other.
func (p *Poly) Multiply(field *Field, other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return zeroPoly
	}
	a := p.coeffs
	b := other.coeffs
	result := make([]int, len(a)+len(b)-1)
	for i, ac := range a {
		if ac == 0 {
			continue
		}
		for j, bc := range b {
			result[i+j] ^= field.Multiply(ac, bc)
		}
	}
	return NewPoly(result)
}

// MultiplyInt returns p scaled by the integer scalar.
func (p *Poly) MultiplyInt(field *Field, scalar int) *Poly {
	if scalar == 0 {
		return zeroPoly
	}
	if scalar == 1 {
		return p
	}
	result := make([]int, len(p.coeffs))
	for i, c := range p.coeffs {
		result[i] = field.Multiply(c, scalar)
	}
	return NewPoly(result)
}

// MultiplyByMonomial returns p * coefficient * x^degree.
func (p *Poly) MultiplyByMonomial(field *Field, degree int, coefficient int) *Poly {
	if degree < 0 {
		panic(fmt.Sprintf("gf256: negative monomial degree %d", degree))
	}
	if coefficient == 0 {
		return zeroPoly
	}
	result := make([]int, len(p.coeffs)+degree)
	for i, c := range p.coeffs {
		result[i] = field.Multiply(c, coefficient)
	}
	return NewPoly(result)
}

// AddOrSubtract returns p + other (equivalently p - other; characteristic 2).
func (p *Poly) AddOrSubtract(other *Poly) *Poly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}
	smaller, larger := p.coeffs, other.coeffs
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	sumDiff := make([]int, len(larger))
	lengthDiff := len(larger) - len(smaller)
	copy(sumDiff, larger[:lengthDiff])
	for i := lengthDiff; i < len(larger); i++ {
		sumDiff[i] = larger[i] ^ smaller[i-lengthDiff]
	}
	return NewPoly(sumDiff)
}

// Divide performs GF(256) polynomial long division, returning (quotient,
// remainder) such that p = quotient*other + remainder and
// remainder.Degree() < other.Degree() (or remainder is zero). Panics if
// other is the zero polynomial.
func (p *Poly) Divide(field *Field, other *Poly) (quotient, remainder *Poly) {
	if other.IsZero() {
		panic("gf256: division by zero polynomial")
	}
	quotient = zeroPoly
	remainder = p
	denominatorLeadingTerm := other.Coefficient(other.Degree())
	inverseDenominatorLeadingTerm := field.Inverse(denominatorLeadingTerm)

	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := field.Multiply(remainder.Coefficient(remainder.Degree()), inverseDenominatorLeadingTerm)
		term := other.MultiplyByMonomial(field, degreeDiff, scale)
		iterationQuotient := field.BuildMonomial(degreeDiff, scale)
		quotient = quotient.AddOrSubtract(iterationQuotient)
		remainder = remainder.AddOrSubtract(term)
	}
	return quotient, remainder
}

// Mod returns p mod other, reducing by repeated subtraction of scaled
// copies of other until the degree drops below other's.
func (p *Poly) Mod(field *Field, other *Poly) *Poly {
	_, remainder := p.Divide(field, other)
	return remainder
}
