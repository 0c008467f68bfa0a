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

package bmpexport

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arucil/hashlife"
)

func TestWriteHeaderFields(t *testing.T) {
	u := hashlife.NewUniverse(hashlife.GameOfLife)
	for _, c := range [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if err := u.Set(c[0], c[1], true); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, u); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data := buf.Bytes()
	if len(data) < pixelOffset {
		t.Fatalf("output too short: %d bytes", len(data))
	}
	if data[0] != 'B' || data[1] != 'M' {
		t.Fatalf("bad magic: %q", data[:2])
	}

	offBits := binary.LittleEndian.Uint32(data[10:14])
	if offBits != pixelOffset {
		t.Fatalf("bfOffBits = %d, want %d", offBits, pixelOffset)
	}

	width := int32(binary.LittleEndian.Uint32(data[18:22]))
	height := int32(binary.LittleEndian.Uint32(data[22:26]))
	if width != 2 || height != 2 {
		t.Fatalf("width/height = %d/%d, want 2/2", width, height)
	}

	bitCount := binary.LittleEndian.Uint16(data[28:30])
	if bitCount != 1 {
		t.Fatalf("biBitCount = %d, want 1", bitCount)
	}

	// Palette: index 0 white, index 1 black.
	palette := data[fileHeaderSize+infoHeaderSize : pixelOffset]
	want := []byte{0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(palette, want) {
		t.Fatalf("palette = % x, want % x", palette, want)
	}
}

func TestWriteEmptyUniverseIsOnePixel(t *testing.T) {
	u := hashlife.NewUniverse(hashlife.GameOfLife)
	var buf bytes.Buffer
	if err := Write(&buf, u); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data := buf.Bytes()
	width := int32(binary.LittleEndian.Uint32(data[18:22]))
	height := int32(binary.LittleEndian.Uint32(data[22:26]))
	if width != 1 || height != 1 {
		t.Fatalf("width/height = %d/%d, want 1/1", width, height)
	}
}

func TestWriteRowsArePadded(t *testing.T) {
	u := hashlife.NewUniverse(hashlife.GameOfLife)
	// 9 columns wide: row data needs 2 bytes (9 bits), padded to a
	// multiple of 4.
	for x := int64(0); x < 9; x++ {
		if err := u.Set(x, 0, true); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := Write(&buf, u); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data := buf.Bytes()
	imageSize := binary.LittleEndian.Uint32(data[34:38])
	if imageSize%4 != 0 {
		t.Fatalf("biSizeImage = %d, not a multiple of 4", imageSize)
	}
	if len(data) != pixelOffset+int(imageSize) {
		t.Fatalf("total length %d != header + image %d", len(data), pixelOffset+int(imageSize))
	}
}
