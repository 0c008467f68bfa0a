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

// centerQuad extracts the geometric center 4x4 from four overlapping 4x4
// bit-squares positioned as nw, ne, sw, se, taking the innermost 2x2 corner
// of each. This is the same bit-mixing shape used to build a leaf's own
// absolute center (see leafResults' n4) and is reused here to recombine
// four already-stepped quadrants into one centered quadrant without a
// further rule application.
func centerQuad(nw, ne, sw, se uint16) uint16 {
	return (nw<<10)&0xCC00 | (ne<<6)&0x3300 | (sw>>6)&0x00CC | (se>>10)&0x0033
}

// step advances a macrocell of level L by 2^k generations (0 <= k <= L-2),
// returning its centered sub-square of side 2^(L-1) — a node one level
// smaller than the input. This is the recursive, memoized heart of
// HashLife: Gosper's nine-overlapping-subsquare construction.
//
// Callers (only Simulate, in this package) are responsible for the
// memoization coherence discipline in store.invalidateResults: step trusts
// that any non-invalid cached result on an internal node is the answer for
// the k it is about to be asked for.
func (u *Universe) step(id NodeID, k uint8) NodeID {
	level := u.store.level(id)

	empty := u.ensureEmptyLevel(level)
	if id == empty {
		return u.ensureEmptyLevel(level - 1)
	}

	if level == 4 {
		return u.stepLeafLevel(id, k)
	}

	if cached := u.store.cachedResult(id); cached != invalidNodeID {
		return cached
	}

	inner := u.store.asInternal(id)
	nwI := u.store.asInternal(inner.nw)
	neI := u.store.asInternal(inner.ne)
	swI := u.store.asInternal(inner.sw)
	seI := u.store.asInternal(inner.se)

	n0 := inner.nw
	n2 := inner.ne
	n6 := inner.sw
	n8 := inner.se
	n1 := u.store.findOrCreateInternal(level-1, nwI.ne, neI.nw, nwI.se, neI.sw)
	n3 := u.store.findOrCreateInternal(level-1, nwI.sw, nwI.se, swI.nw, swI.ne)
	n4 := u.store.findOrCreateInternal(level-1, nwI.se, neI.sw, swI.ne, seI.nw)
	n5 := u.store.findOrCreateInternal(level-1, neI.sw, neI.se, seI.nw, seI.ne)
	n7 := u.store.findOrCreateInternal(level-1, swI.ne, seI.nw, swI.se, seI.sw)

	m0 := u.step(n0, k)
	m1 := u.step(n1, k)
	m2 := u.step(n2, k)
	m3 := u.step(n3, k)
	m4 := u.step(n4, k)
	m5 := u.step(n5, k)
	m6 := u.step(n6, k)
	m7 := u.step(n7, k)
	m8 := u.step(n8, k)

	var rnw, rne, rsw, rse NodeID
	if int(k) >= int(level)-2 {
		qnw := u.store.findOrCreateInternal(level-1, m0, m1, m3, m4)
		qne := u.store.findOrCreateInternal(level-1, m1, m2, m4, m5)
		qsw := u.store.findOrCreateInternal(level-1, m3, m4, m6, m7)
		qse := u.store.findOrCreateInternal(level-1, m4, m5, m7, m8)

		rnw = u.step(qnw, k)
		rne = u.step(qne, k)
		rsw = u.step(qsw, k)
		rse = u.step(qse, k)
	} else {
		rnw = u.innerQuadrant(m0, m1, m3, m4)
		rne = u.innerQuadrant(m1, m2, m4, m5)
		rsw = u.innerQuadrant(m3, m4, m6, m7)
		rse = u.innerQuadrant(m4, m5, m7, m8)
	}

	result := u.store.findOrCreateInternal(level-1, rnw, rne, rsw, rse)
	u.store.setResult(id, result)
	return result
}

// innerQuadrant recenters four same-level sibling nodes a, b, c, d (nw, ne,
// sw, se positioned) into one new node of the *same* level, built from
// their innermost child (a.se, b.sw, c.ne, d.nw). This is the partial-step
// recombination: no further rule application, just a recentering one
// child deeper — the bit-level analogue of centerQuad for whole nodes
// instead of raw 4x4 squares. a, b, c, d must all be the same variant
// (leaf or internal); callers only ever pass siblings from one step call,
// which share a level by construction.
func (u *Universe) innerQuadrant(a, b, c, d NodeID) NodeID {
	if u.store.isLeaf(a) {
		la := u.store.asLeaf(a)
		lb := u.store.asLeaf(b)
		lc := u.store.asLeaf(c)
		ld := u.store.asLeaf(d)
		return u.store.findOrCreateLeaf(la.se, lb.sw, lc.ne, ld.nw)
	}
	ia := u.store.asInternal(a)
	ib := u.store.asInternal(b)
	ic := u.store.asInternal(c)
	id := u.store.asInternal(d)
	return u.store.findOrCreateInternal(u.store.level(a), ia.se, ib.sw, ic.ne, id.nw)
}

// stepLeafLevel specializes step for level-4 nodes, whose children are
// leaves. It performs the same nine-subsquare construction, but composition
// and recomposition operate directly on 16-bit leaf quadrants using
// leafResults' bit-mix helpers and the leaves' own precomputed one- and
// two-generation centers, rather than recursing into step.
func (u *Universe) stepLeafLevel(id NodeID, k uint8) NodeID {
	if cached := u.store.cachedResult(id); cached != invalidNodeID {
		return cached
	}

	inner := u.store.asInternal(id)
	nw := u.store.asLeaf(inner.nw)
	ne := u.store.asLeaf(inner.ne)
	sw := u.store.asLeaf(inner.sw)
	se := u.store.asLeaf(inner.se)

	pick := func(results [2]uint16) uint16 {
		if k == 0 {
			return results[0]
		}
		return results[1]
	}

	m0 := pick(nw.results)
	m2 := pick(ne.results)
	m6 := pick(sw.results)
	m8 := pick(se.results)

	r1a, r1b := u.tables.leafResults(nw.ne, ne.nw, nw.se, ne.sw)
	r3a, r3b := u.tables.leafResults(nw.sw, nw.se, sw.nw, sw.ne)
	r4a, r4b := u.tables.leafResults(nw.se, ne.sw, sw.ne, se.nw)
	r5a, r5b := u.tables.leafResults(ne.sw, ne.se, se.nw, se.ne)
	r7a, r7b := u.tables.leafResults(sw.ne, se.nw, sw.se, se.sw)

	pick2 := func(a, b uint16) uint16 {
		if k == 0 {
			return a
		}
		return b
	}
	m1 := pick2(r1a, r1b)
	m3 := pick2(r3a, r3b)
	m4 := pick2(r4a, r4b)
	m5 := pick2(r5a, r5b)
	m7 := pick2(r7a, r7b)

	var rnw, rne, rsw, rse uint16
	if k >= 2 {
		_, qnw := u.tables.leafResults(m0, m1, m3, m4)
		_, qne := u.tables.leafResults(m1, m2, m4, m5)
		_, qsw := u.tables.leafResults(m3, m4, m6, m7)
		_, qse := u.tables.leafResults(m4, m5, m7, m8)
		rnw, rne, rsw, rse = qnw, qne, qsw, qse
	} else {
		rnw = centerQuad(m0, m1, m3, m4)
		rne = centerQuad(m1, m2, m4, m5)
		rsw = centerQuad(m3, m4, m6, m7)
		rse = centerQuad(m4, m5, m7, m8)
	}

	result := u.store.findOrCreateLeaf(rnw, rne, rsw, rse)
	u.store.setResult(id, result)
	return result
}
