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

import (
	"fmt"
	"strings"
)

// neighborMask is a 9-bit mask; bit k means "k live neighbors triggers this
// transition".
type neighborMask uint16

// Rule is a pair of birth/survival neighbor-count masks for an
// outer-totalistic two-state automaton. The zero Rule has no births and no
// survivals (every cell dies every generation).
type Rule struct {
	birth    neighborMask
	survival neighborMask
}

// GameOfLife is Conway's original rule, B3/S23.
var GameOfLife = &Rule{birth: 1 << 3, survival: 1<<2 | 1<<3}

// NewRule returns an empty rule (no births, no survivals). Use SetBirth and
// SetSurvival to populate it.
func NewRule() *Rule {
	return &Rule{}
}

// SetBirth marks that a dead cell with exactly num live neighbors becomes
// live. num must be in 1..8; B0 is rejected because HashLife's canonical
// empty-node identity depends on an all-dead cell staying dead.
func (r *Rule) SetBirth(num uint8) error {
	if num == 0 {
		return ErrB0NotAllowed
	}
	if num > 8 {
		return ErrMalformedRule
	}
	r.birth |= 1 << num
	return nil
}

// SetSurvival marks that a live cell with exactly num live neighbors stays
// live. num must be in 0..8.
func (r *Rule) SetSurvival(num uint8) error {
	if num > 8 {
		return ErrMalformedRule
	}
	r.survival |= 1 << num
	return nil
}

// Equal reports whether two rules have identical birth and survival masks.
func (r *Rule) Equal(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.birth == other.birth && r.survival == other.survival
}

// String renders the rule in canonical B<digits>/S<digits> form, digits in
// ascending order.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeDigits(&b, r.birth)
	b.WriteString("/S")
	writeDigits(&b, r.survival)
	return b.String()
}

func writeDigits(b *strings.Builder, mask neighborMask) {
	for k := 0; k <= 8; k++ {
		if mask&(1<<uint(k)) != 0 {
			fmt.Fprintf(b, "%d", k)
		}
	}
}

// ParseRule parses a canonical B<digits>/S<digits> rule name, such as
// "B3/S23" or "B36/S23". Digits need not be sorted or unique in the input.
func ParseRule(s string) (*Rule, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return nil, ErrMalformedRule
	}
	bPart, sPart := parts[0], parts[1]
	if len(bPart) == 0 || (bPart[0] != 'B' && bPart[0] != 'b') {
		return nil, ErrMalformedRule
	}
	if len(sPart) == 0 || (sPart[0] != 'S' && sPart[0] != 's') {
		return nil, ErrMalformedRule
	}

	r := NewRule()
	for _, c := range bPart[1:] {
		if c < '0' || c > '9' {
			return nil, ErrMalformedRule
		}
		if err := r.SetBirth(uint8(c - '0')); err != nil {
			return nil, err
		}
	}
	for _, c := range sPart[1:] {
		if c < '0' || c > '9' {
			return nil, ErrMalformedRule
		}
		if err := r.SetSurvival(uint8(c - '0')); err != nil {
			return nil, err
		}
	}
	return r, nil
}
