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

// maxLevel bounds the root level so that a node's half-side (1 <<
// (level-1)) never overflows a signed 64-bit coordinate.
const maxLevel = 62

// Universe owns the interned node store, the current root, the active
// rule and its transition tables, and the per-level vector of canonical
// empty nodes. It is the envelope described in the specification: it
// automatically expands and shrinks the root as cells are set and as
// generations are simulated.
//
// A Universe is not safe for concurrent use; the specification leaves
// that to an external lock if a caller needs one.
type Universe struct {
	store  *store
	tables *transitionTables
	rule   Rule

	root NodeID

	// emptyNodes[L] is the canonical empty node at level L. Indices 0-2
	// are unused placeholders (the minimum node level is 3).
	emptyNodes []NodeID

	// lastK is the step exponent used by the most recent call into step,
	// or -1 if Simulate has never run. Simulate uses it to know which
	// internal node caches need invalidating before reusing them at a
	// different k (see store.invalidateResults).
	lastK int
}

// NewUniverse creates an empty universe governed by rule. The root starts
// as the level-3 canonical empty leaf.
func NewUniverse(rule *Rule) *Universe {
	tables := newTransitionTables(rule)
	s := newStore(tables)

	u := &Universe{
		store:      s,
		tables:     tables,
		rule:       *rule,
		emptyNodes: make([]NodeID, 3, 8),
		lastK:      -1,
	}
	emptyLeaf := s.findOrCreateLeaf(0, 0, 0, 0)
	u.emptyNodes = append(u.emptyNodes, emptyLeaf)
	u.root = emptyLeaf
	return u
}

// Rule returns a copy of the universe's active rule.
func (u *Universe) Rule() Rule {
	return u.rule
}

// MemorySize is a diagnostic: the number of interned nodes currently held
// by the universe.
func (u *Universe) MemorySize() int {
	return u.store.count()
}

// ensureEmptyLevel grows the empty-node vector, lazily interning each
// level's canonical empty node on first need, and returns the canonical
// empty node at the requested level.
func (u *Universe) ensureEmptyLevel(level uint8) NodeID {
	for uint8(len(u.emptyNodes)) <= level {
		lvl := uint8(len(u.emptyNodes))
		below := u.emptyNodes[lvl-1]
		id := u.store.findOrCreateInternal(lvl, below, below, below, below)
		u.store.setResult(id, below)
		u.emptyNodes = append(u.emptyNodes, id)
	}
	return u.emptyNodes[level]
}

func (u *Universe) half() int64 {
	return int64(1) << (u.store.level(u.root) - 1)
}

// expand replaces root with an internal node one level higher, wrapping
// the old root's four quadrants inward with empty margin on the three
// outer sides of each.
func (u *Universe) expand() error {
	level := u.store.level(u.root)
	if level >= maxLevel {
		return ErrLatticeOverflow
	}

	var newNW, newNE, newSW, newSE NodeID
	if level == 3 {
		leaf := u.store.asLeaf(u.root)
		newNW = u.store.findOrCreateLeaf(0, 0, 0, leaf.nw)
		newNE = u.store.findOrCreateLeaf(0, 0, leaf.ne, 0)
		newSW = u.store.findOrCreateLeaf(0, leaf.sw, 0, 0)
		newSE = u.store.findOrCreateLeaf(leaf.se, 0, 0, 0)
	} else {
		below := u.ensureEmptyLevel(level - 1)
		inner := u.store.asInternal(u.root)
		newNW = u.store.findOrCreateInternal(level, below, below, below, inner.nw)
		newNE = u.store.findOrCreateInternal(level, below, below, inner.ne, below)
		newSW = u.store.findOrCreateInternal(level, below, inner.sw, below, below)
		newSE = u.store.findOrCreateInternal(level, inner.se, below, below, below)
	}

	u.root = u.store.findOrCreateInternal(level+1, newNW, newNE, newSW, newSE)
	return nil
}

// shrink halves the canvas while root.level > 4 and the twelve non-center
// grandchildren of root are all canonical empties, replacing root with the
// internal node made of the four innermost grandchildren. It never shrinks
// below level 4, since step always returns a node one level below its
// input and a level-4 root is the smallest one step can still act on.
func (u *Universe) shrink() {
	for u.store.level(u.root) > 4 {
		level := u.store.level(u.root)
		inner := u.store.asInternal(u.root)
		nwc := u.store.asInternal(inner.nw)
		nec := u.store.asInternal(inner.ne)
		swc := u.store.asInternal(inner.sw)
		sec := u.store.asInternal(inner.se)

		empty := u.emptyNodes[level-2]
		allEmpty := nwc.nw == empty && nwc.ne == empty && nwc.sw == empty &&
			nec.nw == empty && nec.ne == empty && nec.se == empty &&
			swc.nw == empty && swc.sw == empty && swc.se == empty &&
			sec.ne == empty && sec.sw == empty && sec.se == empty
		if !allEmpty {
			return
		}

		u.root = u.store.findOrCreateInternal(level-1, nwc.se, nec.sw, swc.ne, sec.nw)
	}
}

// Set marks the cell at (x, y) live or dead. Coordinates are centered at
// the origin; the canvas automatically expands to cover them, up to a root
// of level maxLevel, which covers [-2^61, 2^61) on each axis. A coordinate
// outside that range makes Set return ErrLatticeOverflow.
func (u *Universe) Set(x, y int64, alive bool) error {
	for x < -u.half() || x >= u.half() || y < -u.half() || y >= u.half() {
		if err := u.expand(); err != nil {
			return err
		}
	}
	u.root = u.setNode(u.root, u.store.level(u.root), x, y, alive)
	return nil
}

// setNode rebuilds the path from a node at the given level down to the
// leaf containing (x, y), x and y being relative to this node's own
// center, interning a new node at each level with exactly one child (or,
// at the leaf, one bit) replaced.
func (u *Universe) setNode(id NodeID, level uint8, x, y int64, alive bool) NodeID {
	if level == 3 {
		leaf := u.store.asLeaf(id)
		west, north := x < 0, y < 0
		lx, ly := uint(x&3), uint(y&3)
		bit := uint16(1) << ((3 - lx) + 4*(3-ly))

		nw, ne, sw, se := leaf.nw, leaf.ne, leaf.sw, leaf.se
		quad := quadrantPtr(west, north, &nw, &ne, &sw, &se)
		if alive {
			*quad |= bit
		} else {
			*quad &^= bit
		}
		return u.store.findOrCreateLeaf(nw, ne, sw, se)
	}

	half := int64(1) << (level - 2)
	west, north := x < 0, y < 0
	childX, childY := x, y
	if west {
		childX += half
	} else {
		childX -= half
	}
	if north {
		childY += half
	} else {
		childY -= half
	}

	inner := u.store.asInternal(id)
	nw, ne, sw, se := inner.nw, inner.ne, inner.sw, inner.se
	child := quadrantPtr(west, north, &nw, &ne, &sw, &se)
	*child = u.setNode(*child, level-1, childX, childY, alive)
	return u.store.findOrCreateInternal(level, nw, ne, sw, se)
}

// quadrantPtr picks the quadrant matching (west, north), used identically
// whether the quadrants are NodeID children or raw leaf bit-squares.
func quadrantPtr[T any](west, north bool, nw, ne, sw, se *T) *T {
	switch {
	case west && north:
		return nw
	case !west && north:
		return ne
	case west && !north:
		return sw
	default:
		return se
	}
}
