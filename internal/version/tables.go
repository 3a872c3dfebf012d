package version

// versions holds the ISO/IEC 18004 Annex D/E structural tables for
// symbol versions 1-40, indexed by Number-1.
var versions = [40]Version{
	newVersion(1, []int{},
		ecb(7, bg(1, 19)), ecb(10, bg(1, 16)), ecb(13, bg(1, 13)), ecb(17, bg(1, 9))),
	newVersion(2, []int{6, 18},
		ecb(10, bg(1, 34)), ecb(16, bg(1, 28)), ecb(22, bg(1, 22)), ecb(28, bg(1, 16))),
	newVersion(3, []int{6, 22},
		ecb(15, bg(1, 55)), ecb(26, bg(1, 44)), ecb(18, bg(2, 17)), ecb(22, bg(2, 13))),
	newVersion(4, []int{6, 26},
		ecb(20, bg(1, 80)), ecb(18, bg(2, 32)), ecb(26, bg(2, 24)), ecb(16, bg(4, 9))),
	newVersion(5, []int{6, 30},
		ecb(26, bg(1, 108)), ecb(24, bg(2, 43)), ecb(18, bg(2, 15), bg(2, 16)), ecb(22, bg(2, 11), bg(2, 12))),
	newVersion(6, []int{6, 34},
		ecb(18, bg(2, 68)), ecb(16, bg(4, 27)), ecb(24, bg(4, 19)), ecb(28, bg(4, 15))),
	newVersion(7, []int{6, 22, 38},
		ecb(20, bg(2, 78)), ecb(18, bg(4, 31)), ecb(18, bg(2, 14), bg(4, 15)), ecb(26, bg(4, 13), bg(1, 14))),
	newVersion(8, []int{6, 24, 42},
		ecb(24, bg(2, 97)), ecb(22, bg(2, 38), bg(2, 39)), ecb(22, bg(4, 18), bg(2, 19)), ecb(26, bg(4, 14), bg(2, 15))),
	newVersion(9, []int{6, 26, 46},
		ecb(30, bg(2, 116)), ecb(22, bg(3, 36), bg(2, 37)), ecb(20, bg(4, 16), bg(4, 17)), ecb(24, bg(4, 12), bg(4, 13))),
	newVersion(10, []int{6, 28, 50},
		ecb(18, bg(2, 68), bg(2, 69)), ecb(26, bg(4, 43), bg(1, 44)), ecb(24, bg(6, 19), bg(2, 20)), ecb(28, bg(6, 15), bg(2, 16))),
	newVersion(11, []int{6, 30, 54},
		ecb(20, bg(4, 81)), ecb(30, bg(1, 50), bg(4, 51)), ecb(28, bg(4, 22), bg(4, 23)), ecb(24, bg(3, 12), bg(8, 13))),
	newVersion(12, []int{6, 32, 58},
		ecb(24, bg(2, 92), bg(2, 93)), ecb(22, bg(6, 36), bg(2, 37)), ecb(26, bg(4, 20), bg(6, 21)), ecb(28, bg(7, 14), bg(4, 15))),
	newVersion(13, []int{6, 34, 62},
		ecb(26, bg(4, 107)), ecb(22, bg(8, 37), bg(1, 38)), ecb(24, bg(8, 20), bg(4, 21)), ecb(22, bg(12, 11), bg(4, 12))),
	newVersion(14, []int{6, 26, 46, 66},
		ecb(30, bg(3, 115), bg(1, 116)), ecb(24, bg(4, 40), bg(5, 41)), ecb(20, bg(11, 16), bg(5, 17)), ecb(24, bg(11, 12), bg(5, 13))),
	newVersion(15, []int{6, 26, 48, 70},
		ecb(22, bg(5, 87), bg(1, 88)), ecb(24, bg(5, 41), bg(5, 42)), ecb(30, bg(5, 24), bg(7, 25)), ecb(24, bg(11, 12), bg(7, 13))),
	newVersion(16, []int{6, 26, 50, 74},
		ecb(24, bg(5, 98), bg(1, 99)), ecb(28, bg(7, 45), bg(3, 46)), ecb(24, bg(15, 19), bg(2, 20)), ecb(30, bg(3, 15), bg(13, 16))),
	newVersion(17, []int{6, 30, 54, 78},
		ecb(28, bg(1, 107), bg(5, 108)), ecb(28, bg(10, 46), bg(1, 47)), ecb(28, bg(1, 22), bg(15, 23)), ecb(28, bg(2, 14), bg(17, 15))),
	newVersion(18, []int{6, 30, 56, 82},
		ecb(30, bg(5, 120), bg(1, 121)), ecb(26, bg(9, 43), bg(4, 44)), ecb(28, bg(17, 22), bg(1, 23)), ecb(28, bg(2, 14), bg(19, 15))),
	newVersion(19, []int{6, 30, 58, 86},
		ecb(28, bg(3, 113), bg(4, 114)), ecb(26, bg(3, 44), bg(11, 45)), ecb(26, bg(17, 21), bg(4, 22)), ecb(26, bg(9, 13), bg(16, 14))),
	newVersion(20, []int{6, 34, 62, 90},
		ecb(28, bg(3, 107), bg(5, 108)), ecb(26, bg(3, 41), bg(13, 42)), ecb(30, bg(15, 24), bg(5, 25)), ecb(28, bg(15, 15), bg(10, 16))),
	newVersion(21, []int{6, 28, 50, 72, 94},
		ecb(28, bg(4, 116), bg(4, 117)), ecb(26, bg(17, 42)), ecb(28, bg(17, 22), bg(6, 23)), ecb(30, bg(19, 16), bg(6, 17))),
	newVersion(22, []int{6, 26, 50, 74, 98},
		ecb(28, bg(2, 111), bg(7, 112)), ecb(28, bg(17, 46)), ecb(30, bg(7, 24), bg(16, 25)), ecb(24, bg(34, 13))),
	newVersion(23, []int{6, 30, 54, 78, 102},
		ecb(30, bg(4, 121), bg(5, 122)), ecb(28, bg(4, 47), bg(14, 48)), ecb(30, bg(11, 24), bg(14, 25)), ecb(30, bg(16, 15), bg(14, 16))),
	newVersion(24, []int{6, 28, 54, 80, 106},
		ecb(30, bg(6, 117), bg(4, 118)), ecb(28, bg(6, 45), bg(14, 46)), ecb(30, bg(11, 24), bg(16, 25)), ecb(30, bg(30, 16), bg(2, 17))),
	newVersion(25, []int{6, 32, 58, 84, 110},
		ecb(26, bg(8, 106), bg(4, 107)), ecb(28, bg(8, 47), bg(13, 48)), ecb(30, bg(7, 24), bg(22, 25)), ecb(30, bg(22, 15), bg(13, 16))),
	newVersion(26, []int{6, 30, 58, 86, 114},
		ecb(28, bg(10, 114), bg(2, 115)), ecb(28, bg(19, 46), bg(4, 47)), ecb(28, bg(28, 22), bg(6, 23)), ecb(30, bg(33, 16), bg(4, 17))),
	newVersion(27, []int{6, 34, 62, 90, 118},
		ecb(30, bg(8, 122), bg(4, 123)), ecb(28, bg(22, 45), bg(3, 46)), ecb(30, bg(8, 23), bg(26, 24)), ecb(30, bg(12, 15), bg(28, 16))),
	newVersion(28, []int{6, 26, 50, 74, 98, 122},
		ecb(30, bg(3, 117), bg(10, 118)), ecb(28, bg(3, 45), bg(23, 46)), ecb(30, bg(4, 24), bg(31, 25)), ecb(30, bg(11, 15), bg(31, 16))),
	newVersion(29, []int{6, 30, 54, 78, 102, 126},
		ecb(30, bg(7, 116), bg(7, 117)), ecb(28, bg(21, 45), bg(7, 46)), ecb(30, bg(1, 23), bg(37, 24)), ecb(30, bg(19, 15), bg(26, 16))),
	newVersion(30, []int{6, 26, 52, 78, 104, 130},
		ecb(30, bg(5, 115), bg(10, 116)), ecb(28, bg(19, 47), bg(10, 48)), ecb(30, bg(15, 24), bg(25, 25)), ecb(30, bg(23, 15), bg(25, 16))),
	newVersion(31, []int{6, 30, 56, 82, 108, 134},
		ecb(30, bg(13, 115), bg(3, 116)), ecb(28, bg(2, 46), bg(29, 47)), ecb(30, bg(42, 24), bg(1, 25)), ecb(30, bg(23, 15), bg(28, 16))),
	newVersion(32, []int{6, 34, 60, 86, 112, 138},
		ecb(30, bg(17, 115)), ecb(28, bg(10, 46), bg(23, 47)), ecb(30, bg(10, 24), bg(35, 25)), ecb(30, bg(19, 15), bg(35, 16))),
	newVersion(33, []int{6, 30, 58, 86, 114, 142},
		ecb(30, bg(17, 115), bg(1, 116)), ecb(28, bg(14, 46), bg(21, 47)), ecb(30, bg(29, 24), bg(19, 25)), ecb(30, bg(11, 15), bg(46, 16))),
	newVersion(34, []int{6, 34, 62, 90, 118, 146},
		ecb(30, bg(13, 115), bg(6, 116)), ecb(28, bg(14, 46), bg(23, 47)), ecb(30, bg(44, 24), bg(7, 25)), ecb(30, bg(59, 16), bg(1, 17))),
	newVersion(35, []int{6, 30, 54, 78, 102, 126, 150},
		ecb(30, bg(12, 121), bg(7, 122)), ecb(28, bg(12, 47), bg(26, 48)), ecb(30, bg(39, 24), bg(14, 25)), ecb(30, bg(22, 15), bg(41, 16))),
	newVersion(36, []int{6, 24, 50, 76, 102, 128, 154},
		ecb(30, bg(6, 121), bg(14, 122)), ecb(28, bg(6, 47), bg(34, 48)), ecb(30, bg(46, 24), bg(10, 25)), ecb(30, bg(2, 15), bg(64, 16))),
	newVersion(37, []int{6, 28, 54, 80, 106, 132, 158},
		ecb(30, bg(17, 122), bg(4, 123)), ecb(28, bg(29, 46), bg(14, 47)), ecb(30, bg(49, 24), bg(10, 25)), ecb(30, bg(24, 15), bg(46, 16))),
	newVersion(38, []int{6, 32, 58, 84, 110, 136, 162},
		ecb(30, bg(4, 122), bg(18, 123)), ecb(28, bg(13, 46), bg(32, 47)), ecb(30, bg(48, 24), bg(14, 25)), ecb(30, bg(42, 15), bg(32, 16))),
	newVersion(39, []int{6, 26, 54, 82, 110, 138, 166},
		ecb(30, bg(20, 117), bg(4, 118)), ecb(28, bg(40, 47), bg(7, 48)), ecb(30, bg(43, 24), bg(22, 25)), ecb(30, bg(10, 15), bg(67, 16))),
	newVersion(40, []int{6, 30, 58, 86, 114, 142, 170},
		ecb(30, bg(19, 118), bg(6, 119)), ecb(28, bg(18, 47), bg(31, 48)), ecb(30, bg(34, 24), bg(34, 25)), ecb(30, bg(20, 15), bg(61, 16))),
}

func bg(count, dataCodewords int) BlockGroup {
	return BlockGroup{Count: count, DataCodewords: dataCodewords}
}

func ecb(ecCodewordsPerBlock int, groups ...BlockGroup) ECBlocks {
	return ECBlocks{ECCodewordsPerBlock: ecCodewordsPerBlock, Groups: groups}
}

func newVersion(number int, alignmentCenters []int, l, m, q, h ECBlocks) Version {
	return Version{
		Number:                  number,
		AlignmentPatternCenters: alignmentCenters,
		ecBlocks:                [4]ECBlocks{LevelL: l, LevelM: m, LevelQ: q, LevelH: h},
	}
}
