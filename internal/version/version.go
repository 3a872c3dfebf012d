// Package version holds the per-version QR code structural tables: error
// correction block layout, alignment pattern centers, and character
// count indicator widths. These tables are intrinsic to the symbol
// format (ISO/IEC 18004 Annex D/E) and are not re-derived at runtime.
package version

import "fmt"

// Level is a QR code error correction level.
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// LevelFromBits maps the 2-bit format-information error correction
// level field (ISO/IEC 18004 Table 23: 01=L, 00=M, 11=Q, 10=H) to a Level.
func LevelFromBits(bits int) (Level, error) {
	switch bits {
	case 0b01:
		return LevelL, nil
	case 0b00:
		return LevelM, nil
	case 0b11:
		return LevelQ, nil
	case 0b10:
		return LevelH, nil
	default:
		return 0, fmt.Errorf("version: invalid error correction level bits %02b", bits)
	}
}

// BlockGroup describes a run of identically-shaped Reed-Solomon blocks.
type BlockGroup struct {
	Count              int
	DataCodewords      int
}

// ECBlocks describes the block layout for one version/level combination.
type ECBlocks struct {
	ECCodewordsPerBlock int
	Groups              []BlockGroup
}

// NumBlocks returns the total number of data blocks across all groups.
func (e ECBlocks) NumBlocks() int {
	n := 0
	for _, g := range e.Groups {
		n += g.Count
	}
	return n
}

// TotalDataCodewords returns the sum of data codewords across all blocks.
func (e ECBlocks) TotalDataCodewords() int {
	n := 0
	for _, g := range e.Groups {
		n += g.Count * g.DataCodewords
	}
	return n
}

// Version describes one QR code symbol version (1-40).
type Version struct {
	Number                  int
	AlignmentPatternCenters []int
	ecBlocks                [4]ECBlocks
}

// ECBlocksForLevel returns the block layout for the given error
// correction level.
func (v *Version) ECBlocksForLevel(level Level) ECBlocks {
	return v.ecBlocks[level]
}

// ModuleCount returns the width/height of the symbol in modules.
func (v *Version) ModuleCount() int {
	return 4*v.Number + 17
}

// TotalCodewords returns the total number of codewords (data + error
// correction) encoded in the symbol, independent of error correction
// level.
func (v *Version) TotalCodewords() int {
	eb := v.ecBlocks[LevelL]
	total := 0
	for _, g := range eb.Groups {
		total += g.Count * (g.DataCodewords + eb.ECCodewordsPerBlock)
	}
	return total
}

// Get returns the Version for the given 1-40 symbol version number.
func Get(number int) (*Version, error) {
	if number < 1 || number > 40 {
		return nil, fmt.Errorf("version: number %d out of range [1,40]", number)
	}
	return &versions[number-1], nil
}
