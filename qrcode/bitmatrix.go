package qrcode

// BitMatrix is a square grid of modules, sampled by the detector from
// the symbol image. Coordinates are (x, y) = (column, row). This is
// the upstream input contract this package consumes: by the time a
// BitMatrix reaches here, finder-pattern detection, perspective
// correction, and module sampling have already happened.
type BitMatrix struct {
	dimension int
	bits      []bool
}

// NewBitMatrix allocates an empty (all-false) square matrix.
func NewBitMatrix(dimension int) *BitMatrix {
	return &BitMatrix{dimension: dimension, bits: make([]bool, dimension*dimension)}
}

// Dimension returns the matrix's width and height in modules.
func (m *BitMatrix) Dimension() int {
	return m.dimension
}

// Get returns the module at (x, y).
func (m *BitMatrix) Get(x, y int) bool {
	return m.bits[y*m.dimension+x]
}

// Set writes the module at (x, y).
func (m *BitMatrix) Set(x, y int, value bool) {
	m.bits[y*m.dimension+x] = value
}

// Clone returns an independent copy of m.
func (m *BitMatrix) Clone() *BitMatrix {
	c := &BitMatrix{dimension: m.dimension, bits: make([]bool, len(m.bits))}
	copy(c.bits, m.bits)
	return c
}

// Transpose mirrors the matrix across its main diagonal in place. QR
// codes are not rotationally symmetric in their function pattern
// layout, so a genuinely mirrored (flipped) symbol must be transposed
// before its codewords read out correctly.
func (m *BitMatrix) Transpose() {
	n := m.dimension
	for y := 0; y < n; y++ {
		for x := y + 1; x < n; x++ {
			a := y*n + x
			b := x*n + y
			m.bits[a], m.bits[b] = m.bits[b], m.bits[a]
		}
	}
}
