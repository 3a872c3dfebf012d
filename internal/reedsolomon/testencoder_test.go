package reedsolomon

import "github.com/jalphad/qrdecode/internal/gf256"

// buildGenerator and encode exist only to construct Reed-Solomon test
// fixtures; QR codes never need an encoder at decode time.

func buildGenerator(field *gf256.Field, degree int) *gf256.Poly {
	generator := gf256.NewPoly([]int{1})
	for d := 0; d < degree; d++ {
		term := gf256.NewPoly([]int{1, field.Exp(d)})
		generator = generator.Multiply(field, term)
	}
	return generator
}

// encode returns data followed by numECCodewords error-correction
// codewords computed against the QR code field.
func encode(data []int, numECCodewords int) []int {
	field := gf256.QRCodeField
	generator := buildGenerator(field, numECCodewords)

	infoCoefficients := make([]int, len(data)+numECCodewords)
	copy(infoCoefficients, data)
	info := gf256.NewPoly(infoCoefficients)
	_, remainder := info.Divide(field, generator)

	result := make([]int, len(data)+numECCodewords)
	copy(result, data)
	for i := 0; i < numECCodewords; i++ {
		result[len(data)+i] = remainder.Coefficient(numECCodewords - 1 - i)
	}
	return result
}
