package memory_test

import (
	"testing"

	"github.com/h-ohsaki/casl/pkg/memory"
)

func TestReadUnwritten(t *testing.T) {
	var m memory.Memory

	if got := m.Read(0x1234); got != 0 {
		t.Fatalf("Read(0x1234) = %#04x, want 0", got)
	}
}

func TestWriteRead(t *testing.T) {
	var m memory.Memory

	m.Write(0x0100, 0xBEEF)

	if got := m.Read(0x0100); got != 0xBEEF {
		t.Fatalf("Read(0x0100) = %#04x, want 0xBEEF", got)
	}

	if got := m.Read(0x0101); got != 0 {
		t.Fatalf("Read(0x0101) = %#04x, want 0", got)
	}
}

func TestLoadReplacesContents(t *testing.T) {
	var m memory.Memory

	m.Write(0x0005, 0xFFFF)
	m.Load([]uint16{0x1, 0x2, 0x3})

	if got := m.Read(0x0005); got != 0 {
		t.Fatalf("Read(0x0005) after Load = %#04x, want 0", got)
	}

	if got := m.Read(0x0002); got != 0x3 {
		t.Fatalf("Read(0x0002) = %#04x, want 0x3", got)
	}
}
