package qrcode

import (
	"fmt"

	"github.com/jalphad/qrdecode/internal/version"
)

// BitMatrixParser walks a sampled QR code bit matrix: reading format
// and version information, identifying function modules (so they are
// skipped during the codeword walk), and reading data codewords in the
// zig-zag order ISO/IEC 18004 Annex E defines.
type BitMatrixParser struct {
	bitMatrix     *BitMatrix
	dimension     int
	provisional   int
	mirror        bool
	formatInfo    *version.FormatInfo
	resolved      *version.Version
}

// NewBitMatrixParser validates the matrix dimension and returns a
// parser over it. The matrix is not copied; callers that need to try a
// mirrored read should Clone it first.
func NewBitMatrixParser(bitMatrix *BitMatrix) (*BitMatrixParser, error) {
	dimension := bitMatrix.Dimension()
	if dimension < 21 || dimension > 177 || (dimension-17)%4 != 0 {
		return nil, fmt.Errorf("%w: dimension %d is not a valid QR code size", ErrInvalidArgument, dimension)
	}
	provisional := (dimension - 17) / 4
	return &BitMatrixParser{bitMatrix: bitMatrix, dimension: dimension, provisional: provisional}, nil
}

// SetMirror toggles whether subsequent coordinate reads are
// transposed, without altering the underlying matrix. It is used for
// the one-shot mirrored retry: reformat/version info is checked in
// mirrored coordinates before the matrix itself is physically
// transposed.
func (p *BitMatrixParser) SetMirror(mirror bool) {
	p.mirror = mirror
	p.formatInfo = nil
	p.resolved = nil
}

// Mirror physically transposes the underlying matrix so that, once
// mirroring is switched off again with SetMirror(false), subsequent
// reads walk it in the orientation the mirrored format/version reads
// were validated against.
func (p *BitMatrixParser) Mirror() {
	p.bitMatrix.Transpose()
}

func (p *BitMatrixParser) get(x, y int) bool {
	if p.mirror {
		x, y = y, x
	}
	return p.bitMatrix.Get(x, y)
}

func (p *BitMatrixParser) copyBit(x, y, result int) int {
	bit := 0
	if p.get(x, y) {
		bit = 1
	}
	return (result << 1) | bit
}

// ReadFormatInformation reads and BCH-corrects the format information,
// trying the primary copy (around the top-left finder pattern) and
// falling back to the backup copy (split across the bottom-left and
// top-right finder patterns) if the primary is unreadable.
func (p *BitMatrixParser) ReadFormatInformation() (version.FormatInfo, error) {
	if p.formatInfo != nil {
		return *p.formatInfo, nil
	}

	bits1 := 0
	for i := 0; i <= 5; i++ {
		bits1 = p.copyBit(i, 8, bits1)
	}
	bits1 = p.copyBit(7, 8, bits1)
	bits1 = p.copyBit(8, 8, bits1)
	bits1 = p.copyBit(8, 7, bits1)
	for j := 5; j >= 0; j-- {
		bits1 = p.copyBit(8, j, bits1)
	}
	if fi, err := version.DecodeFormatInfo(bits1); err == nil {
		p.formatInfo = &fi
		return fi, nil
	}

	dimension := p.dimension
	bits2 := 0
	for j := dimension - 1; j >= dimension-7; j-- {
		bits2 = p.copyBit(8, j, bits2)
	}
	for i := dimension - 8; i < dimension; i++ {
		bits2 = p.copyBit(i, 8, bits2)
	}
	if fi, err := version.DecodeFormatInfo(bits2); err == nil {
		p.formatInfo = &fi
		return fi, nil
	}

	return version.FormatInfo{}, ErrFormatInformation
}

// ReadVersion determines the symbol version: for versions up to 6
// (dimension <= 41) the dimension alone is unambiguous; for larger symbols
// the two redundant version information blocks are read and
// BCH-corrected, cross-checked against the dimension.
func (p *BitMatrixParser) ReadVersion() (*version.Version, error) {
	if p.resolved != nil {
		return p.resolved, nil
	}
	if p.provisional <= 6 {
		v, err := version.Get(p.provisional)
		if err != nil {
			return nil, err
		}
		p.resolved = v
		return v, nil
	}

	dimension := p.dimension
	bits1 := 0
	for j := 5; j >= 0; j-- {
		for i := dimension - 11; i <= dimension-9; i++ {
			bits1 = p.copyBit(i, j, bits1)
		}
	}
	if n, err := version.DecodeVersionInfo(bits1); err == nil {
		if v, verr := version.Get(n); verr == nil && v.ModuleCount() == dimension {
			p.resolved = v
			return v, nil
		}
	}

	bits2 := 0
	for i := 5; i >= 0; i-- {
		for j := dimension - 11; j <= dimension-9; j++ {
			bits2 = p.copyBit(i, j, bits2)
		}
	}
	if n, err := version.DecodeVersionInfo(bits2); err == nil {
		if v, verr := version.Get(n); verr == nil && v.ModuleCount() == dimension {
			p.resolved = v
			return v, nil
		}
	}

	return nil, ErrVersionInformation
}

// isFunctionModule reports whether (row, col) belongs to a finder
// pattern, timing pattern, alignment pattern, the dark module, or (for
// version >= 7) a version information block, and so carries no data.
func isFunctionModule(row, col, dimension int, v *version.Version) bool {
	if (row <= 8 && col <= 8) ||
		(row <= 8 && col >= dimension-8) ||
		(row >= dimension-8 && col <= 8) {
		return true
	}

	if (row == 6 && col >= 8 && col < dimension-8) ||
		(col == 6 && row >= 8 && row < dimension-8) {
		return true
	}

	if row == 4*v.Number+9 && col == 8 {
		return true
	}

	if v.Number >= 7 {
		if (row >= dimension-11 && row < dimension-8 && col <= 5) ||
			(col >= dimension-11 && col < dimension-8 && row <= 5) {
			return true
		}
	}

	if isAlignmentPatternModule(v.AlignmentPatternCenters, row, col) {
		return true
	}

	return false
}

func isAlignmentPatternModule(centers []int, row, col int) bool {
	last := len(centers) - 1
	for i, cy := range centers {
		for j, cx := range centers {
			if (i == 0 && j == 0) || (i == 0 && j == last) || (i == last && j == 0) {
				continue
			}
			if absInt(row-cy) <= 2 && absInt(col-cx) <= 2 {
				return true
			}
		}
	}
	return false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ReadCodewords walks the data region in the zig-zag order defined by
// ISO/IEC 18004 Annex E (starting from the bottom-right, two columns at
// a time, reversing direction at each column pair), skipping function
// modules and undoing the data mask at every module it reads.
func (p *BitMatrixParser) ReadCodewords(v *version.Version, formatInfo version.FormatInfo) ([]int, error) {
	totalCodewords := v.TotalCodewords()
	codewords := make([]int, totalCodewords)
	codewordIndex := 0
	currentByte := 0
	bitsRead := 0

	dimension := p.dimension
	readingUp := true
	for col := dimension - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for counter := 0; counter < dimension; counter++ {
			var row int
			if readingUp {
				row = dimension - 1 - counter
			} else {
				row = counter
			}
			for colOffset := 0; colOffset < 2; colOffset++ {
				currentCol := col - colOffset
				if isFunctionModule(row, currentCol, dimension, v) {
					continue
				}
				bitsRead++
				bit := p.get(currentCol, row)
				if dataMask(formatInfo.MaskPattern, row, currentCol) {
					bit = !bit
				}
				currentByte <<= 1
				if bit {
					currentByte |= 1
				}
				if bitsRead == 8 {
					if codewordIndex >= totalCodewords {
						return nil, fmt.Errorf("%w: read more than %d codewords", ErrInvalidArgument, totalCodewords)
					}
					codewords[codewordIndex] = currentByte
					codewordIndex++
					bitsRead = 0
					currentByte = 0
				}
			}
		}
		readingUp = !readingUp
	}

	if codewordIndex != totalCodewords {
		return nil, fmt.Errorf("%w: read %d codewords, expected %d", ErrInvalidArgument, codewordIndex, totalCodewords)
	}
	return codewords, nil
}
