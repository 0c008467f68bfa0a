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
	"errors"
	"testing"
)

func TestParseRuleGameOfLife(t *testing.T) {
	r, err := ParseRule("B3/S23")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	if !r.Equal(GameOfLife) {
		t.Fatalf("got %v, want %v", r, GameOfLife)
	}
}

func TestParseRuleRoundTrip(t *testing.T) {
	cases := []string{"B3/S23", "B36/S23", "B2/S", "B/S012345678"}
	for _, c := range cases {
		r, err := ParseRule(c)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", c, err)
		}
		if r.String() != c {
			t.Fatalf("ParseRule(%q).String() = %q", c, r.String())
		}
	}
}

func TestParseRuleUnsortedDigits(t *testing.T) {
	r, err := ParseRule("B63/S32")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	if r.String() != "B36/S23" {
		t.Fatalf("got %q, want canonical %q", r.String(), "B36/S23")
	}
}

func TestParseRuleMalformed(t *testing.T) {
	cases := []string{"", "B3S23", "X3/S23", "B3/X23", "B3/S2a"}
	for _, c := range cases {
		if _, err := ParseRule(c); !errors.Is(err, ErrMalformedRule) {
			t.Fatalf("ParseRule(%q) error = %v, want ErrMalformedRule", c, err)
		}
	}
}

func TestParseRuleRejectsB0(t *testing.T) {
	if _, err := ParseRule("B03/S23"); !errors.Is(err, ErrB0NotAllowed) {
		t.Fatalf("ParseRule(\"B03/S23\") error = %v, want ErrB0NotAllowed", err)
	}
}

func TestSetBirthRejectsB0(t *testing.T) {
	r := NewRule()
	if err := r.SetBirth(0); !errors.Is(err, ErrB0NotAllowed) {
		t.Fatalf("SetBirth(0) error = %v, want ErrB0NotAllowed", err)
	}
}

func TestSetBirthRejectsOutOfRange(t *testing.T) {
	r := NewRule()
	if err := r.SetBirth(9); !errors.Is(err, ErrMalformedRule) {
		t.Fatalf("SetBirth(9) error = %v, want ErrMalformedRule", err)
	}
}

func TestRuleEqualNil(t *testing.T) {
	var r *Rule
	if !r.Equal(nil) {
		t.Fatal("nil.Equal(nil) = false, want true")
	}
	if r.Equal(GameOfLife) {
		t.Fatal("nil.Equal(GameOfLife) = true, want false")
	}
}
