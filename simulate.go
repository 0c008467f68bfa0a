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

import "math/bits"

// Simulate advances the universe by exactly n generations. n is decomposed
// into its binary representation and applied bit by bit from the
// least-significant set bit upward: for each, the root is stepped by 2^k
// generations, which requires root.level >= k+3 (one more than step's own
// k+2 minimum, so that the stepped region always has at least one
// generation's worth of empty margin on every side and cannot be affected
// by whatever currently lies outside the canvas).
//
// Beyond that level floor, expand is unconditionally called at least twice
// per iteration before stepping: step always returns a node one level
// smaller than its input, and the two extra expansions guarantee room for
// that shrink regardless of how tightly the level floor above was already
// met, per the specification's conservative margin policy. shrink runs
// after every step to restore a tight root before the next iteration's
// level check, rather than only once at the very end.
//
// Processing bits from low to high means k increases within one call, but
// it can drop again on the next call. Every time k changes, each internal
// node whose level-2 exceeds the smaller of the old and new k is
// invalidated: its single cached-result slot may hold a partial step for
// the old k, which is stale for the new one. Nodes at or below that level
// hold full steps, which are the same for both exponents, and are kept.
func (u *Universe) Simulate(n uint64) error {
	for n != 0 {
		k := bits.TrailingZeros64(n)
		n &^= uint64(1) << uint(k)

		need := uint8(k) + 3
		if need < 4 {
			need = 4
		}
		for u.store.level(u.root) < need {
			if err := u.expand(); err != nil {
				return err
			}
		}
		for i := 0; i < 2; i++ {
			if err := u.expand(); err != nil {
				return err
			}
		}

		if u.lastK != k {
			u.store.invalidateResults(min(u.lastK, k), maxLevel)
			u.lastK = k
		}

		u.root = u.step(u.root, uint8(k))
		u.shrink()
	}

	return nil
}
