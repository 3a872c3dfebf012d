// Package reedsolomon implements QR code Reed-Solomon error correction
// over GF(256): syndrome computation, the Extended Euclidean algorithm
// for the error-locator/evaluator polynomials, Chien search, and
// Forney's formula.
package reedsolomon

import (
	"errors"
	"fmt"

	"github.com/jalphad/qrdecode/internal/gf256"
)

// ErrReedSolomon is returned for any uncorrectable Reed-Solomon pattern:
// too many errors, a locator-degree mismatch, an out-of-range error
// position, or a zero Forney denominator. The core does not distinguish
// these from a more specific "checksum" error; callers who want that
// distinction can wrap or compare against this sentinel with errors.Is.
var ErrReedSolomon = errors.New("reedsolomon: uncorrectable block")

// Decoder corrects QR code data blocks over GF(256).
type Decoder struct {
	field *gf256.Field
}

// NewDecoder returns a Decoder bound to the QR code GF(256) field.
func NewDecoder() *Decoder {
	return &Decoder{field: gf256.QRCodeField}
}

// Decode corrects errors in received in place and returns the number of
// errors corrected. twoS is the number of error-correction codewords
// (so the block can correct up to twoS/2 symbol errors). received holds
// unsigned byte values 0-255.
//
// If the received codeword has no errors, it is returned unchanged. If
// the pattern of errors cannot be corrected, Decode returns
// ErrReedSolomon and leaves received unspecified (callers must not rely
// on its contents after an error).
func (d *Decoder) Decode(received []int, twoS int) (int, error) {
	poly := gf256.NewPoly(received)

	syndromeCoefficients := make([]int, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		evalAt := poly.EvaluateAt(d.field, d.field.Exp(i))
		syndromeCoefficients[twoS-1-i] = evalAt
		if evalAt != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := gf256.NewPoly(syndromeCoefficients)
	sigma, omega, err := d.runEuclideanAlgorithm(d.field.BuildMonomial(twoS, 1), syndrome, twoS)
	if err != nil {
		return 0, err
	}

	errorPositions, err := d.chienSearch(sigma, len(received))
	if err != nil {
		return 0, err
	}

	magnitudes, err := d.forneyMagnitudes(sigma, omega, errorPositions, len(received))
	if err != nil {
		return 0, err
	}

	for i, pos := range errorPositions {
		if pos < 0 || pos >= len(received) {
			return 0, fmt.Errorf("%w: error position %d out of range [0,%d)", ErrReedSolomon, pos, len(received))
		}
		received[pos] = d.field.Add(received[pos], magnitudes[i])
	}
	return len(errorPositions), nil
}

// runEuclideanAlgorithm runs the Extended Euclidean algorithm on (a, b)
// until the remainder's degree drops below R/2, returning the
// normalized error-locator polynomial sigma (sigma(0)=1) and the
// error-evaluator polynomial omega.
func (d *Decoder) runEuclideanAlgorithm(a, b *gf256.Poly, R int) (sigma, omega *gf256.Poly, err error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast := a
	r := b
	tLast := gf256.NewPoly([]int{0})
	t := gf256.NewPoly([]int{1})

	for 2*r.Degree() >= R {
		rLastLast := rLast
		tLastLast := tLast
		rLast = r
		tLast = t

		if rLast.IsZero() {
			return nil, nil, fmt.Errorf("%w: r_{i-1} is zero", ErrReedSolomon)
		}
		r = rLastLast
		q := gf256.NewPoly([]int{0})
		denominatorLeadingTerm := rLast.Coefficient(rLast.Degree())
		dltInverse := d.field.Inverse(denominatorLeadingTerm)
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := d.field.Multiply(r.Coefficient(r.Degree()), dltInverse)
			q = q.AddOrSubtract(d.field.BuildMonomial(degreeDiff, scale))
			r = r.AddOrSubtract(rLast.MultiplyByMonomial(d.field, degreeDiff, scale))
		}

		t = q.Multiply(d.field, tLast).AddOrSubtract(tLastLast)

		if r.Degree() >= rLast.Degree() {
			return nil, nil, fmt.Errorf("%w: remainder degree did not decrease", ErrReedSolomon)
		}
	}

	sigmaTildeAtZero := t.Coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, fmt.Errorf("%w: sigma(0) is zero", ErrReedSolomon)
	}
	inverse := d.field.Inverse(sigmaTildeAtZero)
	sigma = t.MultiplyInt(d.field, inverse)
	omega = r.MultiplyInt(d.field, inverse)
	return sigma, omega, nil
}

// chienSearch finds the roots of sigma and translates them into QR
// codeword positions. codewordLength is the length of the received
// vector (N in spec terms).
func (d *Decoder) chienSearch(sigma *gf256.Poly, codewordLength int) ([]int, error) {
	numErrors := sigma.Degree()
	positions := make([]int, 0, numErrors)
	for i := 1; i <= 255; i++ {
		x := d.field.Exp(-i)
		if sigma.EvaluateAt(d.field, x) == 0 {
			// x is the inverse of the error locator α^degree.
			positions = append(positions, codewordLength-1-d.field.Log(d.field.Inverse(x)))
		}
	}
	if len(positions) != numErrors {
		return nil, fmt.Errorf("%w: found %d roots, locator degree is %d", ErrReedSolomon, len(positions), numErrors)
	}
	return positions, nil
}

// forneyMagnitudes computes the error magnitude at each error position
// using Forney's formula with the formal derivative of sigma
// (characteristic 2: sigma'(x) = sum of odd-degree terms of sigma,
// shifted down by one degree). With generator base 0 the magnitude is
// X_k * omega(X_k^-1) / sigma'(X_k^-1), where X_k = α^(N-1-pos).
func (d *Decoder) forneyMagnitudes(sigma, omega *gf256.Poly, errorPositions []int, codewordLength int) ([]int, error) {
	sigmaPrime := formalDerivative(sigma)
	magnitudes := make([]int, len(errorPositions))
	for i, pos := range errorPositions {
		xk := d.field.Exp(codewordLength - 1 - pos)
		xkInverse := d.field.Inverse(xk)
		denominator := sigmaPrime.EvaluateAt(d.field, xkInverse)
		if denominator == 0 {
			return nil, fmt.Errorf("%w: zero Forney denominator at position %d", ErrReedSolomon, pos)
		}
		numerator := omega.EvaluateAt(d.field, xkInverse)
		magnitudes[i] = d.field.Multiply(xk, d.field.Multiply(numerator, d.field.Inverse(denominator)))
	}
	return magnitudes, nil
}

// formalDerivative returns sigma'(x) = sum_i sigma_{2i+1} x^{2i}.
func formalDerivative(sigma *gf256.Poly) *gf256.Poly {
	degree := sigma.Degree()
	if degree <= 0 {
		return gf256.NewPoly([]int{0})
	}
	lowToHigh := make([]int, degree)
	for j := 1; j <= degree; j += 2 {
		lowToHigh[j-1] = sigma.Coefficient(j)
	}
	msb := make([]int, len(lowToHigh))
	for i, v := range lowToHigh {
		msb[len(lowToHigh)-1-i] = v
	}
	return gf256.NewPoly(msb)
}
