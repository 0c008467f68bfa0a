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

// Command hashlife loads a Life pattern, simulates it for a number of
// generations using the HashLife algorithm, and writes the result back out
// as RLE text or as a BMP snapshot.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arucil/hashlife"
	"github.com/arucil/hashlife/bmpexport"
	"github.com/arucil/hashlife/rle"
)

func main() {
	var (
		inPath  = flag.String("in", "", "input RLE pattern file (required)")
		outPath = flag.String("out", "", "output path; .rle or .bmp extension selects the format (required)")
		gens    = flag.String("gen", "0", "number of generations to simulate")
		rule    = flag.String("rule", "B3/S23", "life-family rule, e.g. B3/S23")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	n, err := strconv.ParseUint(*gens, 10, 64)
	if err != nil {
		log.Fatalf("hashlife: invalid -gen value %q: %v", *gens, err)
	}

	r, err := hashlife.ParseRule(*rule)
	if err != nil {
		log.Fatalf("hashlife: invalid -rule value %q: %v", *rule, err)
	}

	u := hashlife.NewUniverse(r)

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("hashlife: %v", err)
	}
	err = rle.Read(in, u)
	in.Close()
	if err != nil {
		log.Fatalf("hashlife: reading %s: %v", *inPath, err)
	}

	if n > 0 {
		if err := u.Simulate(n); err != nil {
			log.Fatalf("hashlife: simulating %d generations: %v", n, err)
		}
	}

	left, top, right, bottom := u.Boundary()
	log.Printf("hashlife: %d generations simulated, %d nodes live, bounds (%d,%d)-(%d,%d)",
		n, u.MemorySize(), left, top, right, bottom)

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("hashlife: %v", err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(*outPath)) {
	case ".bmp":
		err = bmpexport.Write(out, u)
	default:
		err = rle.Write(out, u)
	}
	if err != nil {
		log.Fatalf("hashlife: writing %s: %v", *outPath, err)
	}
}
