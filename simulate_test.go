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

import "testing"

func TestSimulateEmptyUniverseStaysEmpty(t *testing.T) {
	u := NewUniverse(GameOfLife)
	if err := u.Simulate(1000); err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	assertLiveCells(t, u, nil)
}

func TestSimulateZeroGenerationsIsNoop(t *testing.T) {
	u := NewUniverse(GameOfLife)
	cells := []cellPos{{0, -1}, {0, 0}, {0, 1}}
	setAll(t, u, cells)
	if err := u.Simulate(0); err != nil {
		t.Fatalf("Simulate(0): %v", err)
	}
	assertLiveCells(t, u, cells)
}

func TestSimulateBlinkerOscillates(t *testing.T) {
	u := NewUniverse(GameOfLife)
	vertical := []cellPos{{0, -1}, {0, 0}, {0, 1}}
	horizontal := []cellPos{{-1, 0}, {0, 0}, {1, 0}}
	setAll(t, u, vertical)

	if err := u.Simulate(1); err != nil {
		t.Fatalf("Simulate(1): %v", err)
	}
	assertLiveCells(t, u, horizontal)

	if err := u.Simulate(1); err != nil {
		t.Fatalf("Simulate(1): %v", err)
	}
	assertLiveCells(t, u, vertical)

	if err := u.Simulate(2); err != nil {
		t.Fatalf("Simulate(2): %v", err)
	}
	assertLiveCells(t, u, vertical)
}

func TestSimulateGliderDisplaces(t *testing.T) {
	u := NewUniverse(GameOfLife)
	// Standard glider, drifting toward +x, +y every 4 generations.
	glider := []cellPos{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	setAll(t, u, glider)

	if err := u.Simulate(4); err != nil {
		t.Fatalf("Simulate(4): %v", err)
	}

	want := make([]cellPos, len(glider))
	for i, c := range glider {
		want[i] = cellPos{c.x + 1, c.y + 1}
	}
	assertLiveCells(t, u, want)
}

func TestSimulateRPentominoGrows(t *testing.T) {
	u := NewUniverse(GameOfLife)
	rPentomino := []cellPos{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}
	setAll(t, u, rPentomino)

	if err := u.Simulate(100); err != nil {
		t.Fatalf("Simulate(100): %v", err)
	}

	got := liveCells(u)
	if len(got) == 0 {
		t.Fatal("R-pentomino died out after 100 generations, expected it to still be active")
	}
	// The R-pentomino famously hasn't stabilized into a symmetric quiescent
	// shape by generation 100; just sanity-check it hasn't vanished or
	// stayed exactly as it started.
	if len(got) == len(rPentomino) {
		t.Fatal("R-pentomino population unchanged after 100 generations, expected growth/decay")
	}
}

// TestSimulateRPentominoStabilizesAtGeneration1103 pins the well-known
// R-pentomino fact: by generation 1103 it has settled into a debris field
// of still lifes and period-2 oscillators with population 116, and stays
// at 116 one generation later. This is the exact regression named in the
// specification's end-to-end scenario 3, not just a nonzero/changed
// sanity check.
func TestSimulateRPentominoStabilizesAtGeneration1103(t *testing.T) {
	u := NewUniverse(GameOfLife)
	rPentomino := []cellPos{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}
	setAll(t, u, rPentomino)

	if err := u.Simulate(1103); err != nil {
		t.Fatalf("Simulate(1103): %v", err)
	}
	if got := len(liveCells(u)); got != 116 {
		t.Fatalf("population after generation 1103 = %d, want 116", got)
	}

	if err := u.Simulate(1); err != nil {
		t.Fatalf("Simulate(1) (to generation 1104): %v", err)
	}
	if got := len(liveCells(u)); got != 116 {
		t.Fatalf("population after generation 1104 = %d, want 116", got)
	}
}

// TestSimulateLargeGenerationCountMatchesIncrementalSplit is this module's
// stand-in for the specification's Breeder-class regression (scenario 5:
// simulate(10_000) and simulate(515) each matching a canonical RLE
// fixture). The retrieved corpus's original_source/algo/tests/breeder.rs
// names "tests/fixtures/Breeder.lif" and
// "tests/fixtures/Breeder_gen10000.rle", but neither fixture file itself
// was retrieved alongside the source, so there is no canonical byte
// sequence here to compare against. Law L2 (simulate(a); simulate(b) ≡
// simulate(a+b)) gives an equivalent large-n regression that needs no
// external fixture: it drives the same iteration count (10,000, split
// across a 515/9,485 boundary that lands on a different set of step
// exponents than one straight call), forcing the same many-bit,
// many-expand/shrink-cycle code path a Breeder run would exercise, and
// asserts the two runs agree cell-for-cell.
func TestSimulateLargeGenerationCountMatchesIncrementalSplit(t *testing.T) {
	seed := []cellPos{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}

	direct := NewUniverse(GameOfLife)
	setAll(t, direct, seed)
	if err := direct.Simulate(10_000); err != nil {
		t.Fatalf("Simulate(10000): %v", err)
	}

	split := NewUniverse(GameOfLife)
	setAll(t, split, seed)
	if err := split.Simulate(515); err != nil {
		t.Fatalf("Simulate(515): %v", err)
	}
	if err := split.Simulate(10_000 - 515); err != nil {
		t.Fatalf("Simulate(9485): %v", err)
	}

	wantLeft, wantTop, wantRight, wantBottom := direct.Boundary()
	gotLeft, gotTop, gotRight, gotBottom := split.Boundary()
	if wantLeft != gotLeft || wantTop != gotTop || wantRight != gotRight || wantBottom != gotBottom {
		t.Fatalf("Boundary() after split simulate = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
			gotLeft, gotTop, gotRight, gotBottom, wantLeft, wantTop, wantRight, wantBottom)
	}

	want := liveCells(direct)
	got := liveCells(split)
	if len(want) != len(got) {
		t.Fatalf("population after split simulate = %d, want %d", len(got), len(want))
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("missing expected live cell %+v after split simulate", c)
		}
	}
}
