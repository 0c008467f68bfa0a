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

import "math"

// Rect is an inclusive axis-aligned viewport in cell coordinates, used to
// prune WriteCells' traversal.
type Rect struct {
	Left, Top, Right, Bottom int64
}

// Boundary returns the inclusive bounding box of every live cell in the
// universe. An empty universe reports (MaxInt64, MaxInt64, MinInt64,
// MinInt64), the conventional empty-rectangle sentinel (left > right).
func (u *Universe) Boundary() (left, top, right, bottom int64) {
	l, t, r, b, ok := u.boundary(u.root, u.store.level(u.root), 0, 0)
	if !ok {
		return math.MaxInt64, math.MaxInt64, math.MinInt64, math.MinInt64
	}
	return l, t, r, b
}

// boundary computes the live-cell bounding box of the subtree rooted at id,
// a node of the given level centered at (cx, cy). It reports ok == false
// for a canonical empty subtree, letting callers skip it in O(1) without
// descending.
func (u *Universe) boundary(id NodeID, level uint8, cx, cy int64) (left, top, right, bottom int64, ok bool) {
	if id == u.ensureEmptyLevel(level) {
		return 0, 0, 0, 0, false
	}

	if level == 3 {
		cl, ct, cr, cb, has := leafBoundary(u.store.asLeaf(id))
		if !has {
			return 0, 0, 0, 0, false
		}
		return cx + int64(cl), cy + int64(ct), cx + int64(cr), cy + int64(cb), true
	}

	inner := u.store.asInternal(id)
	half := int64(1) << (level - 2)
	quadrants := [4]struct {
		id     NodeID
		dx, dy int64
	}{
		{inner.nw, -half, -half},
		{inner.ne, half, -half},
		{inner.sw, -half, half},
		{inner.se, half, half},
	}

	for _, q := range quadrants {
		cl, ct, cr, cb, has := u.boundary(q.id, level-1, cx+q.dx, cy+q.dy)
		if !has {
			continue
		}
		if !ok {
			left, top, right, bottom, ok = cl, ct, cr, cb, true
			continue
		}
		if cl < left {
			left = cl
		}
		if ct < top {
			top = ct
		}
		if cr > right {
			right = cr
		}
		if cb > bottom {
			bottom = cb
		}
	}
	return left, top, right, bottom, ok
}

// leafBoundary computes a leaf's live-cell bounding box in coordinates
// local to the leaf's own center (columns and rows -4..3), using the
// rule-independent byte-range table to find the row and column extent in
// O(1) rather than scanning all 64 bits.
func leafBoundary(l leafData) (left, top, right, bottom int, ok bool) {
	var rows [8]uint8
	rows[0] = rowNibble(l.nw, 0)<<4 | rowNibble(l.ne, 0)
	rows[1] = rowNibble(l.nw, 1)<<4 | rowNibble(l.ne, 1)
	rows[2] = rowNibble(l.nw, 2)<<4 | rowNibble(l.ne, 2)
	rows[3] = rowNibble(l.nw, 3)<<4 | rowNibble(l.ne, 3)
	rows[4] = rowNibble(l.sw, 0)<<4 | rowNibble(l.se, 0)
	rows[5] = rowNibble(l.sw, 1)<<4 | rowNibble(l.se, 1)
	rows[6] = rowNibble(l.sw, 2)<<4 | rowNibble(l.se, 2)
	rows[7] = rowNibble(l.sw, 3)<<4 | rowNibble(l.se, 3)

	var colMask, rowPresence uint8
	for r, mask := range rows {
		colMask |= mask
		if mask != 0 {
			rowPresence |= 1 << uint(7-r)
		}
	}
	if colMask == 0 {
		return 0, 0, 0, 0, false
	}

	table := getByteRangeTable()
	cs := table[colMask]
	rs := table[rowPresence]
	return cs.low, rs.low, cs.high - 1, rs.high - 1, true
}

// rowNibble extracts row r (0-3, top to bottom) of a 4x4 bit-square
// quadrant as a 4-bit value, bit 3 = leftmost column.
func rowNibble(quad uint16, r int) uint8 {
	return uint8((quad >> uint(4*(3-r))) & 0xF)
}

// WriteCells visits every non-empty leaf in the universe whose region
// intersects viewport (or every leaf, if viewport is nil), calling emit
// with the leaf's four 4x4 quadrants and the global coordinates of the
// leaf's top-left corner. Subtrees entirely outside the viewport, and
// canonical empty subtrees, are pruned without being descended into.
func (u *Universe) WriteCells(viewport *Rect, emit func(nw, ne, sw, se uint16, x, y int64)) {
	u.writeCells(u.root, u.store.level(u.root), 0, 0, viewport, emit)
}

func (u *Universe) writeCells(id NodeID, level uint8, cx, cy int64, viewport *Rect, emit func(nw, ne, sw, se uint16, x, y int64)) {
	if id == u.ensureEmptyLevel(level) {
		return
	}

	half := int64(1) << (level - 1)
	if viewport != nil {
		if cx+half <= viewport.Left || cx-half > viewport.Right ||
			cy+half <= viewport.Top || cy-half > viewport.Bottom {
			return
		}
	}

	if level == 3 {
		l := u.store.asLeaf(id)
		emit(l.nw, l.ne, l.sw, l.se, cx-half, cy-half)
		return
	}

	inner := u.store.asInternal(id)
	childHalf := int64(1) << (level - 2)
	u.writeCells(inner.nw, level-1, cx-childHalf, cy-childHalf, viewport, emit)
	u.writeCells(inner.ne, level-1, cx+childHalf, cy-childHalf, viewport, emit)
	u.writeCells(inner.sw, level-1, cx-childHalf, cy+childHalf, viewport, emit)
	u.writeCells(inner.se, level-1, cx+childHalf, cy+childHalf, viewport, emit)
}
