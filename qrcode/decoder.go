package qrcode

import (
	"fmt"

	"github.com/jalphad/qrdecode/internal/reedsolomon"
)

// Decoder reads a sampled QR code bit matrix to its decoded text.
type Decoder struct {
	rs      *reedsolomon.Decoder
	verbose bool
}

// NewDecoder returns a Decoder ready to decode symbols.
func NewDecoder() *Decoder {
	return &Decoder{rs: reedsolomon.NewDecoder()}
}

// SetVerbose toggles step-by-step progress printing, useful when
// working through a decode by hand.
func (d *Decoder) SetVerbose(verbose bool) {
	d.verbose = verbose
}

func (d *Decoder) logf(format string, args ...any) {
	if d.verbose {
		fmt.Printf(format+"\n", args...)
	}
}

// Decode reads bitMatrix (a module grid already sampled by the
// detector) into a DecoderResult. If the first read fails, Decode
// retries once against the mirrored (transposed) orientation — some
// detectors hand back a bit matrix sampled in the wrong reading
// direction — and returns the original error if the mirrored attempt
// also fails.
func (d *Decoder) Decode(bitMatrix *BitMatrix) (*DecoderResult, error) {
	working := bitMatrix.Clone()
	parser, err := NewBitMatrixParser(working)
	if err != nil {
		return nil, err
	}

	result, decodeErr := d.decodeParser(parser)
	if decodeErr == nil {
		return result, nil
	}
	d.logf("initial decode failed (%v), retrying mirrored", decodeErr)

	parser.SetMirror(true)
	if _, verr := parser.ReadVersion(); verr != nil {
		return nil, decodeErr
	}
	if _, ferr := parser.ReadFormatInformation(); ferr != nil {
		return nil, decodeErr
	}
	parser.Mirror()
	parser.SetMirror(false)

	mirroredResult, mirroredErr := d.decodeParser(parser)
	if mirroredErr != nil {
		return nil, decodeErr
	}
	return mirroredResult, nil
}

func (d *Decoder) decodeParser(parser *BitMatrixParser) (*DecoderResult, error) {
	formatInfo, err := parser.ReadFormatInformation()
	if err != nil {
		return nil, err
	}
	d.logf("format information: level=%v mask=%d", formatInfo.Level, formatInfo.MaskPattern)

	v, err := parser.ReadVersion()
	if err != nil {
		return nil, err
	}
	d.logf("version: %d", v.Number)

	rawCodewords, err := parser.ReadCodewords(v, formatInfo)
	if err != nil {
		return nil, err
	}
	d.logf("read %d raw codewords", len(rawCodewords))

	ecBlocks := v.ECBlocksForLevel(formatInfo.Level)
	blocks, err := Deinterleave(rawCodewords, ecBlocks)
	if err != nil {
		return nil, err
	}

	dataBytes := make([]byte, 0, ecBlocks.TotalDataCodewords())
	errorsCorrected := 0
	for i, block := range blocks {
		n, err := d.rs.Decode(block.Codewords, ecBlocks.ECCodewordsPerBlock)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		errorsCorrected += n
		for _, cw := range block.Codewords[:block.NumDataCodewords] {
			dataBytes = append(dataBytes, byte(cw))
		}
	}
	d.logf("corrected %d codeword errors across %d blocks", errorsCorrected, len(blocks))

	segments, err := decodeSegments(dataBytes, v)
	if err != nil {
		return nil, err
	}

	result := &DecoderResult{
		Text:            segments.text.String(),
		Version:         v.Number,
		Level:           formatInfo.Level,
		RawBytes:        dataBytes,
		ErrorsCorrected: errorsCorrected,
	}
	if segments.hasStructuredAppend {
		result.StructuredAppend = true
		result.StructuredAppendSequence = segments.structuredAppendSequence
		result.StructuredAppendParity = segments.structuredAppendParity
	} else {
		result.StructuredAppendSequence = noStructuredAppend
		result.StructuredAppendParity = noStructuredAppend
	}
	return result, nil
}

// ValidateStructuredAppendParity recomputes the XOR parity over
// message, the full reassembled multi-symbol text (as raw bytes), and
// reports whether it matches the parity value carried by each symbol's
// structured append header.
func ValidateStructuredAppendParity(message []byte, parity int) bool {
	p := 0
	for _, b := range message {
		p ^= int(b)
	}
	return p == parity
}
