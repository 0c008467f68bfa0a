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

// Package bmpexport renders a universe's live cells to a 1-bit-per-pixel
// Windows BMP image: white for dead, black for live.
package bmpexport

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/arucil/hashlife"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	paletteSize    = 8
	pixelOffset    = fileHeaderSize + infoHeaderSize + paletteSize
)

// Write renders u's live cells, restricted to its current bounding box, as
// a monochrome BMP to w. An empty universe is rendered as a single white
// pixel.
func Write(w io.Writer, u *hashlife.Universe) error {
	left, top, right, bottom := u.Boundary()

	width, height := int64(1), int64(1)
	nonEmpty := left <= right
	if nonEmpty {
		width = right - left + 1
		height = bottom - top + 1
	}

	rowBytes := int((width + 7) / 8)
	padding := (4 - rowBytes%4) % 4
	stride := rowBytes + padding

	rows := make([][]byte, height)
	for i := range rows {
		rows[i] = make([]byte, stride)
	}

	if nonEmpty {
		viewport := &hashlife.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
		u.WriteCells(viewport, func(nw, ne, sw, se uint16, x, y int64) {
			plotQuadrant(rows, nw, x, y, left, top)
			plotQuadrant(rows, ne, x+4, y, left, top)
			plotQuadrant(rows, sw, x, y+4, left, top)
			plotQuadrant(rows, se, x+4, y+4, left, top)
		})
	}

	bw := bufio.NewWriter(w)
	if err := writeHeaders(bw, int32(width), int32(height), uint32(stride)); err != nil {
		return err
	}
	// BMP pixel rows are stored bottom row first.
	for i := len(rows) - 1; i >= 0; i-- {
		if _, err := bw.Write(rows[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes u's image to it.
func WriteFile(path string, u *hashlife.Universe) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, u)
}

// plotQuadrant sets the pixel bits of a 4x4 leaf quadrant whose top-left
// corner is (qx, qy) into the packed row buffers whose origin is
// (originX, originY).
func plotQuadrant(rows [][]byte, quad uint16, qx, qy, originX, originY int64) {
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
			if gx < 0 || gy < 0 || int(gy) >= len(rows) {
				continue
			}
			byteIndex := int(gx / 8)
			if byteIndex >= len(rows[gy]) {
				continue
			}
			rows[gy][byteIndex] |= 0x80 >> uint(gx%8)
		}
	}
}

// writeHeaders writes the BITMAPFILEHEADER, BITMAPINFOHEADER, and the
// two-entry black-and-white color table for a 1-bpp image of the given
// dimensions and row stride.
func writeHeaders(w io.Writer, width, height int32, stride uint32) error {
	imageSize := stride * uint32(height)

	fileHeader := struct {
		Type      [2]byte
		Size      uint32
		Reserved1 uint16
		Reserved2 uint16
		OffBits   uint32
	}{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(pixelOffset) + imageSize,
		OffBits: pixelOffset,
	}
	if err := binary.Write(w, binary.LittleEndian, fileHeader); err != nil {
		return err
	}

	infoHeader := struct {
		Size          uint32
		Width         int32
		Height        int32
		Planes        uint16
		BitCount      uint16
		Compression   uint32
		SizeImage     uint32
		XPelsPerMeter int32
		YPelsPerMeter int32
		ClrUsed       uint32
		ClrImportant  uint32
	}{
		Size:      infoHeaderSize,
		Width:     width,
		Height:    height,
		Planes:    1,
		BitCount:  1,
		SizeImage: imageSize,
	}
	if err := binary.Write(w, binary.LittleEndian, infoHeader); err != nil {
		return err
	}

	// Index 0: white (dead). Index 1: black (alive). Each entry is BGR
	// plus a reserved byte, per the BMP color table layout.
	palette := [paletteSize]byte{
		0xFF, 0xFF, 0xFF, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	_, err := w.Write(palette[:])
	return err
}
