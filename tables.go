// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hashlife

import (
	"math/bits"
	"sync"

	"golang.org/x/sync/errgroup"
)

// level2ResultChunks is the number of disjoint ranges the 65,536-entry
// level-2 table is split across when built. The table is a pure function of
// a rule's two masks and the index, so each chunk is independent.
const level2ResultChunks = 16

// transitionTables holds the rule-derived tables. Once built, a
// transitionTables value is never mutated again and may be shared freely by
// every Universe constructed with the same rule, per the specification's
// "global mutable state" note.
type transitionTables struct {
	rule   Rule
	level2 [65536]uint8
}

// newTransitionTables derives the level-2 transition table for rule. The
// 65,536 entries are independent of one another, so construction is
// parallelized across errgroup workers; the resulting table is treated as
// an immutable fixture from here on.
func newTransitionTables(rule *Rule) *transitionTables {
	t := &transitionTables{rule: *rule}

	var g errgroup.Group
	chunk := 65536 / level2ResultChunks
	for c := 0; c < level2ResultChunks; c++ {
		lo := c * chunk
		hi := lo + chunk
		if c == level2ResultChunks-1 {
			hi = 65536
		}
		g.Go(func() error {
			computeLevel2Range(&t.level2, rule, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	return t
}

// computeLevel2Range fills table[lo:hi] with the level-2 (4x4) transition
// results for the given rule.
//
// The 16-bit index is a 4x4 square in row-major order, the same layout as a
// leaf quadrant: bit 15 is the top-left cell and bit 0 the bottom-right. The
// output packs the next-generation center 2x2 as NW<<5|NE<<4|SW<<1|SE.
func computeLevel2Range(table *[65536]uint8, rule *Rule, lo, hi int) {
	nexts := [2]neighborMask{rule.birth, rule.survival}
	for i := lo; i < hi; i++ {
		j := uint16(i)
		nw := (nexts[(i>>10)&1] >> bits.OnesCount16(j&0b1110_1010_1110_0000)) & 1
		ne := (nexts[(i>>9)&1] >> bits.OnesCount16(j&0b0111_0101_0111_0000)) & 1
		sw := (nexts[(i>>6)&1] >> bits.OnesCount16(j&0b0000_1110_1010_1110)) & 1
		se := (nexts[(i>>5)&1] >> bits.OnesCount16(j&0b0000_0111_0101_0111)) & 1
		table[i] = uint8(nw<<5 | ne<<4 | sw<<1 | se)
	}
}

// byteSpan is the half-open [low, high) span of set bits in a byte, measured
// from the center of an 8-wide row or column (i.e. offset by -4).
type byteSpan struct {
	low, high int
}

var (
	byteRangeTableOnce sync.Once
	byteRangeTable     [256]byteSpan
)

// getByteRangeTable returns the rule-independent byte-range lookup table
// used to compute leaf bounding boxes in O(1): for a mask m formed by ORing
// together the rows (or columns) of a leaf's quadrants, byteRange(m) gives
// the column (or row) span of set bits. For m == 0, leading and trailing
// zero counts are both 8, so the formula naturally yields low=4, high=-4 —
// an empty (low > high) span, with no special case needed.
func getByteRangeTable() *[256]byteSpan {
	byteRangeTableOnce.Do(func() {
		for m := 0; m < 256; m++ {
			lz := bits.LeadingZeros8(uint8(m))
			tz := bits.TrailingZeros8(uint8(m))
			byteRangeTable[m] = byteSpan{low: lz - 4, high: 4 - tz}
		}
	})
	return &byteRangeTable
}

// leafResults computes the two precomputed center results of a freshly
// interned 8x8 leaf built from the four 4x4 bit-square quadrants nw, ne, sw,
// se: results[0] is the center 4x4 after one generation, results[1] is the
// center 4x4 after two generations.
func (t *transitionTables) leafResults(nw, ne, sw, se uint16) (r0, r1 uint16) {
	// Nine overlapping 4x4 squares of the 8x8 leaf.
	n0, n2, n6, n8 := nw, ne, sw, se
	n1 := (nw<<2)&0xCCCC | (ne>>2)&0x3333
	n7 := (sw<<2)&0xCCCC | (se>>2)&0x3333
	n3 := (nw<<8)&0xFF00 | (sw>>8)&0x00FF
	n5 := (ne<<8)&0xFF00 | (se>>8)&0x00FF
	n4 := (nw<<10)&0xCC00 | (ne<<6)&0x3300 | (sw>>6)&0x00CC | (se>>10)&0x0033

	l2 := &t.level2
	m0 := uint16(l2[n0])
	m1 := uint16(l2[n1])
	m2 := uint16(l2[n2])
	m3 := uint16(l2[n3])
	m4 := uint16(l2[n4])
	m5 := uint16(l2[n5])
	m6 := uint16(l2[n6])
	m7 := uint16(l2[n7])
	m8 := uint16(l2[n8])

	r0v := m0<<10 | m1<<8 | m3<<2 | m4
	r1v := m1<<10 | m2<<8 | m4<<2 | m5
	r2v := m3<<10 | m4<<8 | m6<<2 | m7
	r3v := m4<<10 | m5<<8 | m7<<2 | m8

	result0 := (r0v<<5)&0xCC00 | (r1v<<3)&0x3300 | (r2v>>3)&0x00CC | (r3v>>5)&0x0033

	a := uint16(l2[r0v])
	b := uint16(l2[r1v])
	c := uint16(l2[r2v])
	d := uint16(l2[r3v])
	result1 := a<<10 | b<<8 | c<<2 | d

	return result0, result1
}
