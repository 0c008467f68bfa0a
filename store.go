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

import "fmt"

// NodeID is a stable, pointer-sized handle to an interned macrocell. Two
// structurally-equal macrocells always share the same NodeID: the store
// hash-conses on (variant, level, children-or-quadrants). The zero value,
// invalidNodeID, means "no node" / "no cached result yet".
type NodeID uint64

const invalidNodeID NodeID = 0

type nodeVariant uint8

const (
	leafVariant nodeVariant = iota
	internalVariant
)

// leafData is the payload of a level-3 (8x8) node: four 4x4 bit-square
// quadrants, plus the two precomputed center-after-N-generations results
// described in the data model.
type leafData struct {
	nw, ne, sw, se uint16
	results        [2]uint16
}

// internalData is the payload of a level >= 4 node: four same-level-minus-1
// children, plus a single mutable cache slot holding the identity of this
// node's center future (see the step engine for what "future" means for a
// given k).
type internalData struct {
	nw, ne, sw, se NodeID
	result         NodeID
}

type node struct {
	variant nodeVariant
	level   uint8
	leaf    leafData
	inner   internalData
	mark    bool
}

// nodeKey is the structural interning key: two nodes with an equal key are
// the same node. It is a plain comparable struct (rather than a hashed
// byte key) because every field here has a fixed, small size, so Go's
// built-in map hashing is exactly as cheap as hashing it by hand.
type nodeKey struct {
	variant                        nodeVariant
	level                          uint8
	leafNW, leafNE, leafSW, leafSE uint16
	nw, ne, sw, se                 NodeID
}

// store is the insertion-ordered, hash-consed set of all macrocells ever
// created for one Universe. Nodes are retained for the lifetime of the
// store; nothing is ever evicted (see the specification's memory
// discipline note) — the slice only ever grows.
type store struct {
	tables *transitionTables

	// nodes[0] is an unused sentinel so that NodeID(0) unambiguously means
	// invalidNodeID.
	nodes []node
	index map[nodeKey]NodeID

	// internals lists the NodeIDs of every interned internal node, in
	// creation order, so that the simulate driver can sweep cached
	// results across a change of step exponent (see invalidateResults).
	internals []NodeID
}

func newStore(tables *transitionTables) *store {
	return &store{
		tables: tables,
		nodes:  make([]node, 1),
		index:  make(map[nodeKey]NodeID),
	}
}

// findOrCreateLeaf interns the level-3 (8x8) leaf with the given quadrants,
// computing its two center results on first creation.
func (s *store) findOrCreateLeaf(nw, ne, sw, se uint16) NodeID {
	key := nodeKey{variant: leafVariant, level: 3, leafNW: nw, leafNE: ne, leafSW: sw, leafSE: se}
	if id, ok := s.index[key]; ok {
		return id
	}
	r0, r1 := s.tables.leafResults(nw, ne, sw, se)
	id := s.append(node{
		variant: leafVariant,
		level:   3,
		leaf:    leafData{nw: nw, ne: ne, sw: sw, se: se, results: [2]uint16{r0, r1}},
	})
	s.index[key] = id
	return id
}

// findOrCreateInternal interns the internal node at the given level (>= 4)
// with the given same-level-minus-1 children.
func (s *store) findOrCreateInternal(level uint8, nw, ne, sw, se NodeID) NodeID {
	if level < 4 {
		panic(fmt.Sprintf("hashlife: internal node level must be >= 4, got %d", level))
	}
	key := nodeKey{variant: internalVariant, level: level, nw: nw, ne: ne, sw: sw, se: se}
	if id, ok := s.index[key]; ok {
		return id
	}
	id := s.append(node{
		variant: internalVariant,
		level:   level,
		inner:   internalData{nw: nw, ne: ne, sw: sw, se: se, result: invalidNodeID},
	})
	s.index[key] = id
	s.internals = append(s.internals, id)
	return id
}

func (s *store) append(n node) NodeID {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, n)
	return id
}

// level returns the level of an interned node.
func (s *store) level(id NodeID) uint8 {
	return s.nodes[id].level
}

// isLeaf reports whether id names a level-3 leaf.
func (s *store) isLeaf(id NodeID) bool {
	return s.nodes[id].variant == leafVariant
}

// asLeaf returns the quadrants and precomputed results of a leaf. It panics
// if id does not name a leaf: that would be an internal invariant
// violation, per the specification's typed-accessor contract.
func (s *store) asLeaf(id NodeID) leafData {
	n := &s.nodes[id]
	if n.variant != leafVariant {
		panic("hashlife: asLeaf called on an internal node")
	}
	return n.leaf
}

// asInternal returns the children and cached result of an internal node. It
// panics if id does not name an internal node.
func (s *store) asInternal(id NodeID) internalData {
	n := &s.nodes[id]
	if n.variant != internalVariant {
		panic("hashlife: asInternal called on a leaf node")
	}
	return n.inner
}

// setResult stores the memoized center-future of an internal node.
func (s *store) setResult(id NodeID, result NodeID) {
	s.nodes[id].inner.result = result
}

// cachedResult returns the memoized center-future of an internal node, or
// invalidNodeID if none is cached.
func (s *store) cachedResult(id NodeID) NodeID {
	return s.nodes[id].inner.result
}

// invalidateResults clears the cached result of every internal node whose
// level satisfies kOld < level-2 <= kNew. A node's single result slot holds
// the answer for one step exponent at a time; Simulate passes the smaller
// of its old and new exponents as kOld and maxLevel as kNew, which clears
// every result that may be a partial step for the old exponent.
func (s *store) invalidateResults(kOld, kNew int) {
	for _, id := range s.internals {
		lvl := int(s.nodes[id].level)
		if kOld < lvl-2 && lvl-2 <= kNew {
			s.nodes[id].inner.result = invalidNodeID
		}
	}
}

// count returns the number of interned nodes (the diagnostic MemorySize).
func (s *store) count() int {
	return len(s.nodes) - 1
}
