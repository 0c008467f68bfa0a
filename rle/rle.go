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

// Package rle reads and writes Life patterns in the Run Length Encoded
// format described at https://www.conwaylife.com/wiki/Run_Length_Encoded.
package rle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arucil/hashlife"
)

// ErrTruncated is returned by Read when the input ends before a terminating
// '!' is seen.
var ErrTruncated = errors.New("rle: unexpected end of pattern")

// ErrMalformed is returned by Read when the pattern body contains a byte
// that isn't a digit or one of 'b', 'o', '$'.
var ErrMalformed = errors.New("rle: malformed pattern body")

// Read parses RLE pattern text from r and sets every live cell it
// describes into u, with the pattern's own (0, 0) placed at u's (0, 0).
// Header and comment lines are skipped; only the "b"/"o"/"$" run-length
// body is interpreted.
func Read(r io.Reader, u *hashlife.Universe) error {
	var body strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line[0] == '#':
		case line[0] == 'x' || line[0] == 'X':
			// header line, e.g. "x = 3, y = 3, rule = B3/S23"
		default:
			body.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	src := body.String()
	var x, y int64
	for len(src) > 0 {
		if src[0] == '!' {
			return nil
		}

		num := int64(1)
		digits := 0
		for digits < len(src) && src[digits] >= '0' && src[digits] <= '9' {
			digits++
		}
		if digits > 0 {
			n, err := strconv.ParseInt(src[:digits], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			num = n
			src = src[digits:]
		}
		if len(src) == 0 {
			return ErrTruncated
		}

		switch src[0] {
		case 'b':
			x += num
		case 'o':
			for i := int64(0); i < num; i++ {
				if err := u.Set(x+i, y, true); err != nil {
					return err
				}
			}
			x += num
		case '$':
			x = 0
			y += num
		default:
			return fmt.Errorf("%w: unexpected byte %q", ErrMalformed, src[0])
		}
		src = src[1:]
	}
	return ErrTruncated
}

// Write renders u's live cells, restricted to its current bounding box, as
// RLE pattern text to w.
func Write(w io.Writer, u *hashlife.Universe) error {
	rule := u.Rule()
	left, top, right, bottom := u.Boundary()
	if left > right {
		_, err := fmt.Fprintf(w, "x = 0, y = 0, rule = %s\n!\n", rule.String())
		return err
	}

	width := right - left + 1
	height := bottom - top + 1

	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, width)
	}

	viewport := &hashlife.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
	u.WriteCells(viewport, func(nw, ne, sw, se uint16, x, y int64) {
		plotQuadrant(grid, nw, x, y, left, top)
		plotQuadrant(grid, ne, x+4, y, left, top)
		plotQuadrant(grid, sw, x, y+4, left, top)
		plotQuadrant(grid, se, x+4, y+4, left, top)
	})

	if _, err := fmt.Fprintf(w, "x = %d, y = %d, rule = %s\n", width, height, rule.String()); err != nil {
		return err
	}
	return writeBody(w, grid)
}

// plotQuadrant sets the cells of a 4x4 leaf quadrant whose top-left corner
// is (qx, qy) into grid, whose origin is (originX, originY).
func plotQuadrant(grid [][]bool, quad uint16, qx, qy, originX, originY int64) {
	if quad == 0 {
		return
	}
	for ly := 0; ly < 4; ly++ {
		for lx := 0; lx < 4; lx++ {
			bit := uint16(1) << uint((3-lx)+4*(3-ly))
			if quad&bit == 0 {
				continue
			}
			gx := qx + int64(lx) - originX
			gy := qy + int64(ly) - originY
			if gx >= 0 && gy >= 0 && gy < int64(len(grid)) && gx < int64(len(grid[gy])) {
				grid[gy][gx] = true
			}
		}
	}
}

type run struct {
	alive bool
	count int
}

// rowRuns run-length-encodes row, trimming any trailing dead cells: a
// row's unwritten tail is implicitly dead.
func rowRuns(row []bool) []run {
	last := -1
	for i, v := range row {
		if v {
			last = i
		}
	}
	if last < 0 {
		return nil
	}

	var runs []run
	cur := row[0]
	count := 0
	for i := 0; i <= last; i++ {
		if row[i] == cur {
			count++
			continue
		}
		runs = append(runs, run{alive: cur, count: count})
		cur = row[i]
		count = 1
	}
	runs = append(runs, run{alive: cur, count: count})
	return runs
}

// writeBody emits the "b"/"o"/"$" run-length body for grid, wrapping lines
// before column 70 and collapsing runs of entirely blank rows into a
// single "$" token with a repeat count.
func writeBody(w io.Writer, grid [][]bool) error {
	var out strings.Builder
	lineLen := 0
	token := func(tag byte, num int) {
		var tok string
		if num == 1 {
			tok = string(tag)
		} else {
			tok = strconv.Itoa(num) + string(tag)
		}
		if lineLen+len(tok) > 70 {
			out.WriteByte('\n')
			lineLen = 0
		}
		out.WriteString(tok)
		lineLen += len(tok)
	}

	blankRows := 0
	for _, row := range grid {
		runs := rowRuns(row)
		if runs == nil {
			blankRows++
			continue
		}
		if blankRows > 0 {
			token('$', blankRows)
		}
		for _, rn := range runs {
			tag := byte('b')
			if rn.alive {
				tag = 'o'
			}
			token(tag, rn.count)
		}
		blankRows = 1
	}
	if blankRows > 1 {
		token('$', blankRows-1)
	}

	out.WriteByte('!')
	out.WriteByte('\n')
	_, err := io.WriteString(w, out.String())
	return err
}
