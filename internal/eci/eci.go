// Package eci resolves QR code Extended Channel Interpretation
// designators to character sets and transcodes Byte-mode payloads
// against them.
package eci

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Name is the canonical charset name for an ECI designator value
// (ISO/IEC 18004 Annex F, AIM ECI table).
var Name = map[int]string{
	0:   "CP437",
	1:   "ISO-8859-1",
	2:   "CP437",
	3:   "ISO-8859-1",
	4:   "ISO-8859-2",
	5:   "ISO-8859-3",
	6:   "ISO-8859-4",
	7:   "ISO-8859-5",
	8:   "ISO-8859-6",
	9:   "ISO-8859-7",
	10:  "ISO-8859-8",
	11:  "ISO-8859-9",
	12:  "ISO-8859-10",
	13:  "ISO-8859-11",
	// 14 is reserved.
	15:  "ISO-8859-13",
	16:  "ISO-8859-14",
	17:  "ISO-8859-15",
	18:  "ISO-8859-16",
	20:  "Shift_JIS",
	21:  "Windows-1250",
	22:  "Windows-1251",
	23:  "Windows-1252",
	24:  "Windows-1253",
	25:  "Windows-1254",
	26:  "UTF-8",
	27:  "US-ASCII",
	28:  "Big5",
	29:  "GB18030",
	30:  "EUC-KR",
	170: "US-ASCII",
}

var encodings = map[string]encoding.Encoding{
	"ISO-8859-1":  charmap.ISO8859_1,
	"ISO-8859-2":  charmap.ISO8859_2,
	"ISO-8859-3":  charmap.ISO8859_3,
	"ISO-8859-4":  charmap.ISO8859_4,
	"ISO-8859-5":  charmap.ISO8859_5,
	"ISO-8859-6":  charmap.ISO8859_6,
	"ISO-8859-7":  charmap.ISO8859_7,
	"ISO-8859-8":  charmap.ISO8859_8,
	"ISO-8859-9":  charmap.ISO8859_9,
	"ISO-8859-10": charmap.ISO8859_10,
	"ISO-8859-13": charmap.ISO8859_13,
	"ISO-8859-14": charmap.ISO8859_14,
	"ISO-8859-15": charmap.ISO8859_15,
	"ISO-8859-16": charmap.ISO8859_16,
	"CP437":       charmap.CodePage437,
	"Windows-1250": charmap.Windows1250,
	"Windows-1251": charmap.Windows1251,
	"Windows-1252": charmap.Windows1252,
	"Windows-1253": charmap.Windows1253,
	"Windows-1254": charmap.Windows1254,
	"Shift_JIS":    japanese.ShiftJIS,
	"EUC-KR":       korean.EUCKR,
	"GB18030":      simplifiedchinese.GB18030,
	"Big5":         traditionalchinese.Big5,
}

// NameFor resolves a numeric ECI designator to its canonical charset
// name, or "" if the designator is unknown or reserved.
func NameFor(designator int) string {
	return Name[designator]
}

// Decode transcodes b, a Byte-mode payload, into a Go string using the
// named charset. UTF-8 and US-ASCII pass through unchanged (ASCII is a
// UTF-8 subset); every other name is looked up in the x/text encoding
// registry.
func Decode(b []byte, charsetName string) (string, error) {
	switch charsetName {
	case "", "UTF-8", "US-ASCII":
		if !utf8.Valid(b) {
			return "", fmt.Errorf("eci: payload is not valid UTF-8")
		}
		return string(b), nil
	}

	enc, ok := encodings[charsetName]
	if !ok {
		return "", fmt.Errorf("eci: unsupported charset %q", charsetName)
	}
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("eci: decoding as %s: %w", charsetName, err)
	}
	return string(decoded), nil
}

// candidateCharsets is tried, in order, when a Byte-mode segment has no
// resolvable ECI designator (the common case: no ECI segment preceded
// it at all). The first candidate that decodes without error, yields
// valid UTF-8 and, for a charset other than UTF-8, contains no U+FFFD
// replacement character wins.
var candidateCharsets = []string{"UTF-8", "Shift_JIS", "ISO-8859-1"}

// DecodeAutoDetect tries Decode against a short list of common QR code
// charsets and returns the first one that produces a clean result. This
// mirrors how real scanners behave when a Byte-mode segment arrives
// with no preceding ECI designator: ISO/IEC 18004 leaves the default
// interpretation implementation-defined, so heuristic sniffing is
// unavoidable.
func DecodeAutoDetect(b []byte) (string, string) {
	for _, name := range candidateCharsets {
		s, err := Decode(b, name)
		if err != nil || !utf8.ValidString(s) {
			continue
		}
		// x/text decoders substitute U+FFFD for bytes that are invalid in
		// their charset instead of returning an error.
		if name != "UTF-8" && strings.ContainsRune(s, utf8.RuneError) {
			continue
		}
		return s, name
	}
	return string(b), ""
}
