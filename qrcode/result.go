package qrcode

import "github.com/jalphad/qrdecode/internal/version"

// noStructuredAppend is the sentinel value for DecoderResult's
// structured-append fields when the symbol carried no structured
// append header.
const noStructuredAppend = -1

// DecoderResult is the text and metadata recovered from a QR code
// symbol.
type DecoderResult struct {
	Text    string
	Version int
	Level   version.Level

	// RawBytes is the aggregated, post-correction data-codeword stream:
	// every block's data codewords, in block order, after Reed-Solomon
	// correction and before segment decoding.
	RawBytes []byte

	// ErrorsCorrected is the total number of codeword errors corrected
	// across all Reed-Solomon blocks.
	ErrorsCorrected int

	// StructuredAppendSequence and StructuredAppendParity are only
	// meaningful when StructuredAppend is true: Sequence is the 0-based
	// index of this symbol among the sequence (low nibble) combined
	// with the total count (high nibble) per ISO/IEC 18004 Annex H, and
	// Parity is the 8-bit XOR checksum across the full message's bytes.
	StructuredAppend         bool
	StructuredAppendSequence int
	StructuredAppendParity   int
}
