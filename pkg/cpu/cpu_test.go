package cpu_test

import (
	"testing"

	"github.com/h-ohsaki/casl/pkg/cpu"
	"github.com/h-ohsaki/casl/pkg/word"
)

func TestResetColdBoot(t *testing.T) {
	var s cpu.State
	s.PC = 0x1234
	s.GR[0] = 0xFFFF
	s.BP = []uint16{1, 2, 3}

	s.Reset()

	if s.PC != 0 {
		t.Errorf("PC = %#04x, want 0", s.PC)
	}
	if s.FR != word.ZERO {
		t.Errorf("FR = %v, want ZERO", s.FR)
	}
	for i := 0; i < 4; i++ {
		if s.GR[i] != 0 {
			t.Errorf("GR%d = %#04x, want 0", i, s.GR[i])
		}
	}
	if s.GR[4] != cpu.StackTop {
		t.Errorf("GR4 = %#04x, want %#04x", s.GR[4], cpu.StackTop)
	}
	if len(s.BP) != 0 {
		t.Errorf("BP = %v, want empty", s.BP)
	}
}

func TestBreakpoints(t *testing.T) {
	var s cpu.State
	s.Reset()

	if !s.AddBreakpoint(0x100) {
		t.Fatal("AddBreakpoint(0x100) = false, want true")
	}
	if s.AddBreakpoint(0x100) {
		t.Fatal("AddBreakpoint(0x100) duplicate = true, want false")
	}

	s.AddBreakpoint(0x200)

	if idx := s.HitBreakpoint(0x200); idx != 2 {
		t.Fatalf("HitBreakpoint(0x200) = %d, want 2", idx)
	}

	if !s.DeleteBreakpoint(1) {
		t.Fatal("DeleteBreakpoint(1) = false, want true")
	}
	if len(s.BP) != 1 || s.BP[0] != 0x200 {
		t.Fatalf("BP after delete = %v, want [0x200]", s.BP)
	}

	s.ClearBreakpoints()
	if len(s.BP) != 0 {
		t.Fatalf("BP after clear = %v, want empty", s.BP)
	}
}
