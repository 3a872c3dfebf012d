package qrcode

import (
	"fmt"

	"github.com/jalphad/qrdecode/internal/version"
)

// Block is one Reed-Solomon codeword block extracted from the
// interleaved raw codeword stream: data codewords followed by its error
// correction codewords.
type Block struct {
	Codewords     []int
	NumDataCodewords int
}

// Deinterleave splits the symbol's raw codeword stream (as read off
// the matrix in zig-zag order) back into its constituent Reed-Solomon
// blocks. QR codes interleave same-index codewords across blocks
// (D1B1, D1B2, ..., D2B1, D2B2, ... then EC1B1, EC1B2, ...) so that a
// localized burst of damage spreads thinly across many blocks instead
// of destroying one outright; this reverses that.
func Deinterleave(rawCodewords []int, ecBlocks version.ECBlocks) ([]Block, error) {
	blocks := make([]Block, 0, ecBlocks.NumBlocks())
	for _, g := range ecBlocks.Groups {
		for i := 0; i < g.Count; i++ {
			blocks = append(blocks, Block{
				Codewords:        make([]int, g.DataCodewords+ecBlocks.ECCodewordsPerBlock),
				NumDataCodewords: g.DataCodewords,
			})
		}
	}

	maxDataCodewords := blocks[0].NumDataCodewords
	for _, b := range blocks {
		if b.NumDataCodewords > maxDataCodewords {
			maxDataCodewords = b.NumDataCodewords
		}
	}

	rawIndex := 0
	for i := 0; i < maxDataCodewords; i++ {
		for j := range blocks {
			if i < blocks[j].NumDataCodewords {
				if rawIndex >= len(rawCodewords) {
					return nil, fmt.Errorf("%w: ran out of codewords while de-interleaving data", ErrInvalidArgument)
				}
				blocks[j].Codewords[i] = rawCodewords[rawIndex]
				rawIndex++
			}
		}
	}

	ecPerBlock := ecBlocks.ECCodewordsPerBlock
	for i := 0; i < ecPerBlock; i++ {
		for j := range blocks {
			numData := blocks[j].NumDataCodewords
			if rawIndex >= len(rawCodewords) {
				return nil, fmt.Errorf("%w: ran out of codewords while de-interleaving error correction data", ErrInvalidArgument)
			}
			blocks[j].Codewords[numData+i] = rawCodewords[rawIndex]
			rawIndex++
		}
	}

	if rawIndex != len(rawCodewords) {
		return nil, fmt.Errorf("%w: %d raw codewords left unconsumed after de-interleaving", ErrInvalidArgument, len(rawCodewords)-rawIndex)
	}
	return blocks, nil
}
