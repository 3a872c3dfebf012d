package qrcode

import (
	"fmt"
	"strings"

	"github.com/jalphad/qrdecode/internal/bitbuffer"
	"github.com/jalphad/qrdecode/internal/eci"
	"github.com/jalphad/qrdecode/internal/version"
)

const (
	modeTerminator       = 0b0000
	modeNumeric          = 0b0001
	modeAlphanumeric     = 0b0010
	modeStructuredAppend = 0b0011
	modeByte             = 0b0100
	modeFNC1First        = 0b0101
	modeECI              = 0b0111
	modeKanji            = 0b1000
	modeFNC1Second       = 0b1001
)

// alphanumericTable is the 45-character alphabet ISO/IEC 18004 Table 5
// assigns to Alphanumeric mode values 0-44.
const alphanumericTable = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// segmentResult accumulates the decoded text and any structured-append
// or ECI metadata encountered while walking a symbol's data segments.
type segmentResult struct {
	text strings.Builder

	hasStructuredAppend bool
	structuredAppendSequence int
	structuredAppendParity   int

	fnc1Seen bool
}

// decodeSegments walks dataBytes (the concatenated, error-corrected
// data codewords of every block, in order) as a sequence of mode
// segments, per ISO/IEC 18004 clause 7.4, until a terminator or
// exhausted bitstream is reached.
func decodeSegments(dataBytes []byte, v *version.Version) (segmentResult, error) {
	var result segmentResult
	bits := bitbuffer.New(dataBytes)
	currentCharset := ""

	for {
		if bits.Available() < 4 {
			break
		}
		mode, err := bits.Read(4)
		if err != nil {
			return result, err
		}

		switch mode {
		case modeTerminator:
			return result, nil

		case modeNumeric:
			if err := decodeNumeric(bits, v, &result); err != nil {
				return result, err
			}

		case modeAlphanumeric:
			if err := decodeAlphanumeric(bits, v, &result); err != nil {
				return result, err
			}

		case modeByte:
			if err := decodeByte(bits, v, &result, currentCharset); err != nil {
				return result, err
			}

		case modeKanji:
			if err := decodeKanji(bits, v, &result); err != nil {
				return result, err
			}

		case modeStructuredAppend:
			seq, err := bits.Read(8)
			if err != nil {
				return result, fmt.Errorf("%w: structured append sequence: %v", ErrInvalidData, err)
			}
			parity, err := bits.Read(8)
			if err != nil {
				return result, fmt.Errorf("%w: structured append parity: %v", ErrInvalidData, err)
			}
			result.hasStructuredAppend = true
			result.structuredAppendSequence = seq
			result.structuredAppendParity = parity

		case modeFNC1First, modeFNC1Second:
			// FNC1 only marks application-identifier framing; it carries
			// no bits of its own and does not change how subsequent
			// segments are read.
			result.fnc1Seen = true

		case modeECI:
			name, err := readECIDesignator(bits)
			if err != nil {
				return result, err
			}
			currentCharset = name

		default:
			return result, fmt.Errorf("%w: unrecognized mode indicator %04b", ErrInvalidData, mode)
		}
	}
	return result, nil
}

func decodeNumeric(bits *bitbuffer.BitBuffer, v *version.Version, result *segmentResult) error {
	count, err := readCharCount(bits, version.ModeNumeric, v)
	if err != nil {
		return err
	}
	remaining := count
	for remaining >= 3 {
		digits, err := bits.Read(10)
		if err != nil {
			return fmt.Errorf("%w: numeric triple: %v", ErrInvalidData, err)
		}
		if digits > 999 {
			return fmt.Errorf("%w: numeric triple %d out of range", ErrInvalidData, digits)
		}
		fmt.Fprintf(&result.text, "%03d", digits)
		remaining -= 3
	}
	switch remaining {
	case 2:
		v, err := bits.Read(7)
		if err != nil {
			return fmt.Errorf("%w: numeric pair: %v", ErrInvalidData, err)
		}
		if v > 99 {
			return fmt.Errorf("%w: numeric pair %d out of range", ErrInvalidData, v)
		}
		fmt.Fprintf(&result.text, "%02d", v)
	case 1:
		v, err := bits.Read(4)
		if err != nil {
			return fmt.Errorf("%w: numeric digit: %v", ErrInvalidData, err)
		}
		if v > 9 {
			return fmt.Errorf("%w: numeric digit %d out of range", ErrInvalidData, v)
		}
		fmt.Fprintf(&result.text, "%d", v)
	}
	return nil
}

func decodeAlphanumeric(bits *bitbuffer.BitBuffer, v *version.Version, result *segmentResult) error {
	count, err := readCharCount(bits, version.ModeAlphanumeric, v)
	if err != nil {
		return err
	}
	remaining := count
	for remaining >= 2 {
		pair, err := bits.Read(11)
		if err != nil {
			return fmt.Errorf("%w: alphanumeric pair: %v", ErrInvalidData, err)
		}
		first := pair / 45
		second := pair % 45
		if first >= len(alphanumericTable) || second >= len(alphanumericTable) {
			return fmt.Errorf("%w: alphanumeric pair %d decodes out of table range", ErrInvalidData, pair)
		}
		result.text.WriteByte(alphanumericTable[first])
		result.text.WriteByte(alphanumericTable[second])
		remaining -= 2
	}
	if remaining == 1 {
		v, err := bits.Read(6)
		if err != nil {
			return fmt.Errorf("%w: alphanumeric final character: %v", ErrInvalidData, err)
		}
		if v >= len(alphanumericTable) {
			return fmt.Errorf("%w: alphanumeric value %d out of table range", ErrInvalidData, v)
		}
		result.text.WriteByte(alphanumericTable[v])
	}
	return nil
}

func decodeByte(bits *bitbuffer.BitBuffer, v *version.Version, result *segmentResult, charsetName string) error {
	count, err := readCharCount(bits, version.ModeByte, v)
	if err != nil {
		return err
	}
	payload := make([]byte, count)
	for i := 0; i < count; i++ {
		b, err := bits.Read(8)
		if err != nil {
			return fmt.Errorf("%w: byte segment data: %v", ErrInvalidData, err)
		}
		payload[i] = byte(b)
	}

	if charsetName != "" {
		s, decodeErr := eci.Decode(payload, charsetName)
		if decodeErr != nil {
			return fmt.Errorf("%w: %v", ErrInvalidData, decodeErr)
		}
		result.text.WriteString(s)
		return nil
	}
	s, _ := eci.DecodeAutoDetect(payload)
	result.text.WriteString(s)
	return nil
}

func decodeKanji(bits *bitbuffer.BitBuffer, v *version.Version, result *segmentResult) error {
	count, err := readCharCount(bits, version.ModeKanji, v)
	if err != nil {
		return err
	}
	shiftJIS := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		packed, err := bits.Read(13)
		if err != nil {
			return fmt.Errorf("%w: kanji character: %v", ErrInvalidData, err)
		}
		// ISO/IEC 18004 7.4.5: the encoder subtracts 0x8140 or 0xC140
		// (depending on range) from the Shift_JIS code point and packs
		// the difference's bytes as high*0xC0 + low. Unpacking restores
		// the difference; below 0x1F00 it came from the 0x8140 range.
		assembled := (packed/0xC0)<<8 | (packed % 0xC0)
		var sjis int
		if assembled < 0x1F00 {
			sjis = assembled + 0x8140
		} else {
			sjis = assembled + 0xC140
		}
		shiftJIS = append(shiftJIS, byte(sjis>>8), byte(sjis))
	}
	s, err := eciDecodeShiftJIS(shiftJIS)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	result.text.WriteString(s)
	return nil
}

func eciDecodeShiftJIS(b []byte) (string, error) {
	return eci.Decode(b, "Shift_JIS")
}

func readCharCount(bits *bitbuffer.BitBuffer, mode version.Mode, v *version.Version) (int, error) {
	width, err := version.CharCountBits(mode, v.Number)
	if err != nil {
		return 0, err
	}
	count, err := bits.Read(width)
	if err != nil {
		return 0, fmt.Errorf("%w: character count: %v", ErrInvalidData, err)
	}
	return count, nil
}

// readECIDesignator decodes an ECI mode segment's variable-length
// designator (ISO/IEC 18004 Annex F / AIM ECI spec: 1, 2, or 3 bytes
// depending on the leading bit pattern) and resolves it to a charset
// name. An unknown or reserved designator resolves to "", which leaves
// the following Byte segment to charset auto-detection.
func readECIDesignator(bits *bitbuffer.BitBuffer) (string, error) {
	first, err := bits.Read(8)
	if err != nil {
		return "", fmt.Errorf("%w: ECI designator: %v", ErrInvalidData, err)
	}

	var designator int
	switch {
	case first&0x80 == 0:
		designator = first
	case first&0xC0 == 0x80:
		second, err := bits.Read(8)
		if err != nil {
			return "", fmt.Errorf("%w: ECI designator (2-byte): %v", ErrInvalidData, err)
		}
		designator = (first&0x3F)<<8 | second
	case first&0xE0 == 0xC0:
		second, err := bits.Read(8)
		if err != nil {
			return "", fmt.Errorf("%w: ECI designator (3-byte): %v", ErrInvalidData, err)
		}
		third, err := bits.Read(8)
		if err != nil {
			return "", fmt.Errorf("%w: ECI designator (3-byte): %v", ErrInvalidData, err)
		}
		designator = (first&0x1F)<<16 | second<<8 | third
	default:
		return "", fmt.Errorf("%w: malformed ECI designator leading byte %08b", ErrInvalidData, first)
	}

	return eci.NameFor(designator), nil
}
