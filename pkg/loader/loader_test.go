package loader_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/h-ohsaki/casl/pkg/loader"
	"github.com/h-ohsaki/casl/pkg/machine"
)

func image(payload ...uint16) []byte {
	buf := make([]byte, 16)
	copy(buf, "CASL")
	for _, w := range payload {
		buf = append(buf, byte(w>>8), byte(w))
	}
	return buf
}

func TestLoadSuccess(t *testing.T) {
	m := machine.New(strings.NewReader(""), &bytes.Buffer{})
	m.CPU.GR[0] = 0xDEAD
	m.CPU.PC = 0x1234

	if err := loader.Load(bytes.NewReader(image(0xABCD, 0x0001)), m, "test.com"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.CPU.PC != 0 {
		t.Errorf("PC = %#04x, want 0", m.CPU.PC)
	}
	if m.CPU.GR[0] != 0 {
		t.Errorf("GR0 = %#04x, want 0 (reset)", m.CPU.GR[0])
	}
	if got := m.Mem.Read(0); got != 0xABCD {
		t.Errorf("mem[0] = %#04x, want 0xABCD", got)
	}
	if got := m.Mem.Read(1); got != 0x0001 {
		t.Errorf("mem[1] = %#04x, want 0x0001", got)
	}
}

func TestLoadBadMagicLeavesMemoryUnchanged(t *testing.T) {
	m := machine.New(strings.NewReader(""), &bytes.Buffer{})

	bad := append([]byte("NOPE"), make([]byte, 12)...)
	bad = append(bad, 0x00, 0x01)

	err := loader.Load(bytes.NewReader(bad), m, "bad.com")

	if _, ok := err.(*loader.BadMagicError); !ok {
		t.Fatalf("err = %T, want *loader.BadMagicError", err)
	}

	if got := m.Mem.Read(0); got != 0 {
		t.Errorf("mem[0] = %#04x, want 0 (untouched)", got)
	}
}

func TestLoadOutOfMemory(t *testing.T) {
	m := machine.New(strings.NewReader(""), &bytes.Buffer{})

	buf := make([]byte, 16)
	copy(buf, "CASL")
	// One word per address up to and past StackTop (0xFF00 words).
	for i := 0; i < 0xFF01; i++ {
		buf = append(buf, 0x00, 0x01)
	}

	err := loader.Load(bytes.NewReader(buf), m, "huge.com")
	if err != loader.ErrOutOfMemory {
		t.Fatalf("err = %v, want ErrOutOfMemory", err)
	}
}
