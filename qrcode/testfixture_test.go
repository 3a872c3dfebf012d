package qrcode

import (
	"github.com/jalphad/qrdecode/internal/gf256"
	"github.com/jalphad/qrdecode/internal/version"
)

// This file builds complete, valid QR code bit matrices purely from
// Go code (no image, no external encoder) so the decoder can be
// exercised end to end without a detector.

type bitWriter struct {
	bytes []byte
	cur   byte
	nbits int
}

func (w *bitWriter) writeBits(value, n int) {
	for i := n - 1; i >= 0; i-- {
		bit := (value >> uint(i)) & 1
		w.cur = (w.cur << 1) | byte(bit)
		w.nbits++
		if w.nbits == 8 {
			w.bytes = append(w.bytes, w.cur)
			w.cur = 0
			w.nbits = 0
		}
	}
}

func (w *bitWriter) padToByte() {
	for w.nbits != 0 {
		w.writeBits(0, 1)
	}
}

// encodeNumericSegment encodes text (digits only) as a complete Numeric
// mode segment, including mode indicator and character count.
func encodeNumericSegment(w *bitWriter, v *version.Version, text string) {
	count, err := version.CharCountBits(version.ModeNumeric, v.Number)
	if err != nil {
		panic(err)
	}
	w.writeBits(0b0001, 4)
	w.writeBits(len(text), count)
	i := 0
	for i+3 <= len(text) {
		n := 0
		for _, c := range text[i : i+3] {
			n = n*10 + int(c-'0')
		}
		w.writeBits(n, 10)
		i += 3
	}
	remaining := len(text) - i
	if remaining == 2 {
		n := int(text[i]-'0')*10 + int(text[i+1]-'0')
		w.writeBits(n, 7)
	} else if remaining == 1 {
		w.writeBits(int(text[i]-'0'), 4)
	}
}

func encodeAlphanumericSegment(w *bitWriter, v *version.Version, text string) {
	count, err := version.CharCountBits(version.ModeAlphanumeric, v.Number)
	if err != nil {
		panic(err)
	}
	w.writeBits(0b0010, 4)
	w.writeBits(len(text), count)
	i := 0
	for i+2 <= len(text) {
		a := indexOfAlphanumeric(text[i])
		b := indexOfAlphanumeric(text[i+1])
		w.writeBits(a*45+b, 11)
		i += 2
	}
	if i < len(text) {
		w.writeBits(indexOfAlphanumeric(text[i]), 6)
	}
}

func indexOfAlphanumeric(c byte) int {
	for i := 0; i < len(alphanumericTable); i++ {
		if alphanumericTable[i] == c {
			return i
		}
	}
	panic("character not in alphanumeric table: " + string(c))
}

// encodeKanjiSegment encodes sjisPairs (each a 2-byte Shift_JIS code
// point, high byte first) as a complete Kanji mode segment, performing
// the inverse of decodeKanji's 13-bit unpacking.
func encodeKanjiSegment(w *bitWriter, v *version.Version, sjisPairs [][2]byte) {
	count, err := version.CharCountBits(version.ModeKanji, v.Number)
	if err != nil {
		panic(err)
	}
	w.writeBits(0b1000, 4)
	w.writeBits(len(sjisPairs), count)
	for _, pair := range sjisPairs {
		sjis := int(pair[0])<<8 | int(pair[1])
		var diff int
		if sjis >= 0x8140 && sjis <= 0x9FFC {
			diff = sjis - 0x8140
		} else {
			diff = sjis - 0xC140
		}
		packed := (diff>>8)*0xC0 + diff&0xFF
		w.writeBits(packed, 13)
	}
}

func encodeByteSegment(w *bitWriter, v *version.Version, payload []byte) {
	count, err := version.CharCountBits(version.ModeByte, v.Number)
	if err != nil {
		panic(err)
	}
	w.writeBits(0b0100, 4)
	w.writeBits(len(payload), count)
	for _, b := range payload {
		w.writeBits(int(b), 8)
	}
}

// finishDataCodewords appends the terminator, pads to a byte boundary,
// and fills out to capacity with the standard 0xEC/0x11 pad pattern.
func finishDataCodewords(w *bitWriter, capacity int) []int {
	remaining := capacity*8 - (len(w.bytes)*8 + w.nbits)
	term := 4
	if remaining < 4 {
		term = remaining
	}
	if term > 0 {
		w.writeBits(0, term)
	}
	w.padToByte()
	pad := byte(0xEC)
	for len(w.bytes) < capacity {
		w.bytes = append(w.bytes, pad)
		if pad == 0xEC {
			pad = 0x11
		} else {
			pad = 0xEC
		}
	}
	out := make([]int, capacity)
	for i, b := range w.bytes {
		out[i] = int(b)
	}
	return out
}

func rsBuildGenerator(field *gf256.Field, degree int) *gf256.Poly {
	generator := gf256.NewPoly([]int{1})
	for d := 0; d < degree; d++ {
		generator = generator.Multiply(field, gf256.NewPoly([]int{1, field.Exp(d)}))
	}
	return generator
}

func rsEncodeBlock(data []int, ecCount int) []int {
	field := gf256.QRCodeField
	generator := rsBuildGenerator(field, ecCount)
	infoCoefficients := make([]int, len(data)+ecCount)
	copy(infoCoefficients, data)
	info := gf256.NewPoly(infoCoefficients)
	_, remainder := info.Divide(field, generator)
	result := make([]int, len(data)+ecCount)
	copy(result, data)
	for i := 0; i < ecCount; i++ {
		result[len(data)+i] = remainder.Coefficient(ecCount - 1 - i)
	}
	return result
}

// interleave is the inverse of Deinterleave: it produces the raw
// codeword stream a real symbol would carry from a set of independently
// RS-encoded blocks.
func interleave(blocks [][]int, numDataCodewords []int, ecPerBlock int) []int {
	maxData := 0
	for _, n := range numDataCodewords {
		if n > maxData {
			maxData = n
		}
	}
	var raw []int
	for i := 0; i < maxData; i++ {
		for j, block := range blocks {
			if i < numDataCodewords[j] {
				raw = append(raw, block[i])
			}
		}
	}
	for i := 0; i < ecPerBlock; i++ {
		for j, block := range blocks {
			raw = append(raw, block[numDataCodewords[j]+i])
		}
	}
	return raw
}

// buildSymbol assembles a complete, validly-formatted QR code bit
// matrix carrying dataCodewordPayload (already terminator/padded to the
// version's full data capacity) at the given error correction level and
// mask pattern.
func buildSymbol(v *version.Version, level version.Level, mask int, dataCodewordPayload []int) *BitMatrix {
	ecBlocks := v.ECBlocksForLevel(level)

	blocks := make([][]int, 0, ecBlocks.NumBlocks())
	numDataCodewords := make([]int, 0, ecBlocks.NumBlocks())
	offset := 0
	for _, g := range ecBlocks.Groups {
		for i := 0; i < g.Count; i++ {
			data := dataCodewordPayload[offset : offset+g.DataCodewords]
			offset += g.DataCodewords
			blocks = append(blocks, rsEncodeBlock(data, ecBlocks.ECCodewordsPerBlock))
			numDataCodewords = append(numDataCodewords, g.DataCodewords)
		}
	}

	raw := interleave(blocks, numDataCodewords, ecBlocks.ECCodewordsPerBlock)

	dimension := v.ModuleCount()
	matrix := NewBitMatrix(dimension)

	formatInfo := version.FormatInfo{Level: level, MaskPattern: mask}
	writeFormatInfo(matrix, formatInfo)
	if v.Number >= 7 {
		writeVersionInfo(matrix, v)
	}
	writeCodewords(matrix, v, formatInfo, raw)
	return matrix
}

func writeFormatInfo(matrix *BitMatrix, formatInfo version.FormatInfo) {
	code := version.EncodeFormatInfo(formatInfo.Level, formatInfo.MaskPattern)
	dimension := matrix.Dimension()

	bitAt := func(pos int) bool { return (code>>uint(pos))&1 == 1 }

	pos := 14
	for i := 0; i <= 5; i++ {
		matrix.Set(i, 8, bitAt(pos))
		pos--
	}
	matrix.Set(7, 8, bitAt(pos))
	pos--
	matrix.Set(8, 8, bitAt(pos))
	pos--
	matrix.Set(8, 7, bitAt(pos))
	pos--
	for j := 5; j >= 0; j-- {
		matrix.Set(8, j, bitAt(pos))
		pos--
	}

	pos = 14
	for j := dimension - 1; j >= dimension-7; j-- {
		matrix.Set(8, j, bitAt(pos))
		pos--
	}
	for i := dimension - 8; i < dimension; i++ {
		matrix.Set(i, 8, bitAt(pos))
		pos--
	}
}

func writeVersionInfo(matrix *BitMatrix, v *version.Version) {
	code := version.EncodeVersionInfo(v.Number)
	dimension := matrix.Dimension()
	bitAt := func(pos int) bool { return (code>>uint(pos))&1 == 1 }

	pos := 17
	for j := 5; j >= 0; j-- {
		for i := dimension - 11; i <= dimension-9; i++ {
			matrix.Set(i, j, bitAt(pos))
			pos--
		}
	}

	pos = 17
	for i := 5; i >= 0; i-- {
		for j := dimension - 11; j <= dimension-9; j++ {
			matrix.Set(i, j, bitAt(pos))
			pos--
		}
	}
}

func writeCodewords(matrix *BitMatrix, v *version.Version, formatInfo version.FormatInfo, codewords []int) {
	dimension := matrix.Dimension()
	codewordIndex := 0
	bitIndex := 0

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
				if codewordIndex >= len(codewords) {
					continue
				}
				bit := (codewords[codewordIndex]>>uint(7-bitIndex))&1 == 1
				if dataMask(formatInfo.MaskPattern, row, currentCol) {
					bit = !bit
				}
				matrix.Set(currentCol, row, bit)
				bitIndex++
				if bitIndex == 8 {
					bitIndex = 0
					codewordIndex++
				}
			}
		}
		readingUp = !readingUp
	}
}
