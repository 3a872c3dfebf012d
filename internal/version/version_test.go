package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOutOfRange(t *testing.T) {
	_, err := Get(0)
	assert.Error(t, err)
	_, err = Get(41)
	assert.Error(t, err)
}

func TestModuleCount(t *testing.T) {
	v, err := Get(1)
	require.NoError(t, err)
	assert.Equal(t, 21, v.ModuleCount())

	v, err = Get(40)
	require.NoError(t, err)
	assert.Equal(t, 177, v.ModuleCount())
}

func TestVersion1BlockLayout(t *testing.T) {
	v, err := Get(1)
	require.NoError(t, err)
	l := v.ECBlocksForLevel(LevelL)
	assert.Equal(t, 7, l.ECCodewordsPerBlock)
	assert.Equal(t, 1, l.NumBlocks())
	assert.Equal(t, 19, l.TotalDataCodewords())
	assert.Equal(t, 26, v.TotalCodewords())
}

func TestVersion5QHasTwoGroups(t *testing.T) {
	v, err := Get(5)
	require.NoError(t, err)
	q := v.ECBlocksForLevel(LevelQ)
	assert.Equal(t, 2, len(q.Groups))
	assert.Equal(t, 4, q.NumBlocks())
	assert.Equal(t, 2*15+2*16, q.TotalDataCodewords())
}

func TestAllVersionsHaveConsistentTotals(t *testing.T) {
	for n := 1; n <= 40; n++ {
		v, err := Get(n)
		require.NoError(t, err)
		total := v.TotalCodewords()
		for lvl := LevelL; lvl <= LevelH; lvl++ {
			eb := v.ECBlocksForLevel(lvl)
			got := 0
			for _, g := range eb.Groups {
				got += g.Count * (g.DataCodewords + eb.ECCodewordsPerBlock)
			}
			assert.Equal(t, total, got, "version %d level %v", n, lvl)
		}
	}
}

func TestCharCountBitsBands(t *testing.T) {
	n, err := CharCountBits(ModeNumeric, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = CharCountBits(ModeNumeric, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = CharCountBits(ModeByte, 27)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	_, err = CharCountBits(ModeKanji, 41)
	assert.Error(t, err)
}

func TestFormatInfoRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelL, LevelM, LevelQ, LevelH} {
		for mask := 0; mask < 8; mask++ {
			code := EncodeFormatInfo(level, mask)
			decoded, err := DecodeFormatInfo(code)
			require.NoError(t, err)
			assert.Equal(t, level, decoded.Level)
			assert.Equal(t, mask, decoded.MaskPattern)
		}
	}
}

func TestFormatInfoCorrectsBitErrors(t *testing.T) {
	code := EncodeFormatInfo(LevelH, 5)
	corrupted := code ^ 0b101 // 2 bit flips, within correction distance
	decoded, err := DecodeFormatInfo(corrupted)
	require.NoError(t, err)
	assert.Equal(t, LevelH, decoded.Level)
	assert.Equal(t, 5, decoded.MaskPattern)
}

func TestVersionInfoRoundTrip(t *testing.T) {
	for v := 7; v <= 40; v++ {
		code := EncodeVersionInfo(v)
		decoded, err := DecodeVersionInfo(code)
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestVersionInfoCorrectsBitErrors(t *testing.T) {
	code := EncodeVersionInfo(23)
	corrupted := code ^ 0b11 // 2 bit flips
	decoded, err := DecodeVersionInfo(corrupted)
	require.NoError(t, err)
	assert.Equal(t, 23, decoded)
}
