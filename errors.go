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

import "errors"

// Sentinel errors raised by the core, matching the error table in the
// specification: the engine is almost total and fails only on explicit
// precondition violations.
var (
	// ErrMalformedRule is returned when a rule name cannot be parsed, or
	// a neighbor count outside 0..8 is requested.
	ErrMalformedRule = errors.New("hashlife: malformed rule")

	// ErrB0NotAllowed is returned by SetBirth(0): B0 rules require an
	// alternating-rule trick incompatible with canonical empty-node
	// identity, and are out of scope for this engine.
	ErrB0NotAllowed = errors.New("hashlife: B0 rules are not supported")

	// ErrEmptyUniverse reports a universe with no live cells where a
	// non-empty rectangle is required. No exporter in this module returns
	// it: bmpexport renders an empty universe as one white pixel, and rle
	// writes a 0x0 pattern.
	ErrEmptyUniverse = errors.New("hashlife: universe has no live cells")

	// ErrLatticeOverflow is returned by Set and Simulate when a pattern
	// would require a root level beyond the signed 64-bit lattice.
	ErrLatticeOverflow = errors.New("hashlife: pattern exceeds the 64-bit lattice")
)
