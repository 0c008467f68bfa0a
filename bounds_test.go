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

func TestWriteCellsViewportPrunes(t *testing.T) {
	u := NewUniverse(GameOfLife)
	cells := []cellPos{{-50, -50}, {0, 0}, {50, 50}}
	setAll(t, u, cells)

	viewport := &Rect{Left: -5, Top: -5, Right: 5, Bottom: 5}
	got := make(map[cellPos]bool)
	u.WriteCells(viewport, func(nw, ne, sw, se uint16, x, y int64) {
		plotQuad(got, nw, x, y)
		plotQuad(got, ne, x+4, y)
		plotQuad(got, sw, x, y+4)
		plotQuad(got, se, x+4, y+4)
	})

	if !got[cellPos{0, 0}] {
		t.Fatal("viewport-restricted WriteCells missed the in-viewport cell (0, 0)")
	}
	if got[cellPos{-50, -50}] || got[cellPos{50, 50}] {
		t.Fatalf("viewport-restricted WriteCells emitted out-of-viewport cells: %+v", got)
	}
}

func TestBoundaryIgnoresClearedOuterCells(t *testing.T) {
	u := NewUniverse(GameOfLife)
	setAll(t, u, []cellPos{{-20, -20}, {20, 20}, {0, 0}})
	if err := u.Set(-20, -20, false); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := u.Set(20, 20, false); err != nil {
		t.Fatalf("Set: %v", err)
	}
	left, top, right, bottom := u.Boundary()
	if left != 0 || top != 0 || right != 0 || bottom != 0 {
		t.Fatalf("Boundary() = (%d,%d,%d,%d), want (0,0,0,0)", left, top, right, bottom)
	}
}
