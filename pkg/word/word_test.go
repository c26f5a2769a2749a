package word_test

import (
	"testing"

	"github.com/h-ohsaki/casl/pkg/word"
)

func TestSignedUnsigned(t *testing.T) {
	cases := []struct {
		u uint16
		s int16
	}{
		{0x0000, 0},
		{0x0001, 1},
		{0xFFFF, -1},
		{0x8000, -32768},
		{0x7FFF, 32767},
	}

	for _, c := range cases {
		if got := word.Signed(c.u); got != c.s {
			t.Errorf("Signed(%#04x) = %d, want %d", c.u, got, c.s)
		}
		if got := word.Unsigned(c.s); got != c.u {
			t.Errorf("Unsigned(%d) = %#04x, want %#04x", c.s, got, c.u)
		}
	}
}

func TestCompute(t *testing.T) {
	cases := []struct {
		w    uint16
		flag word.Flag
	}{
		{0x0000, word.ZERO},
		{0x0001, word.PLUS},
		{0x7FFF, word.PLUS},
		{0x8000, word.MINUS},
		{0xFFFF, word.MINUS},
	}

	for _, c := range cases {
		if got := word.Compute(c.w); got != c.flag {
			t.Errorf("Compute(%#04x) = %v, want %v", c.w, got, c.flag)
		}
	}
}

func TestSat16(t *testing.T) {
	cases := []struct {
		in   int32
		want uint16
	}{
		{0, 0x0000},
		{-1, 0xFFFF},
		{1, 0x0001},
		{100000, 0x7FFF},
		{-100000, 0x8000},
	}

	for _, c := range cases {
		if got := word.Sat16(c.in); got != c.want {
			t.Errorf("Sat16(%d) = %#04x, want %#04x", c.in, got, c.want)
		}
	}
}
