// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package memory implements COMET's 64K-word linear address space.
package memory

// Size is the number of addressable words.
const Size = 1 << 16

// Memory is a word-addressed, zero-default 64K address space. The zero
// value is ready to use.
type Memory struct {
	cells [Size]uint16
}

// Read returns the word at addr. Addresses that were never written
// read as zero.
func (m *Memory) Read(addr uint16) uint16 {
	return m.cells[addr]
}

// Write stores value at addr unconditionally.
func (m *Memory) Write(addr uint16, value uint16) {
	m.cells[addr] = value
}

// Reset zeroes every cell.
func (m *Memory) Reset() {
	for i := range m.cells {
		m.cells[i] = 0
	}
}

// Load replaces the entire contents of m with words, starting at
// address 0. Cells beyond len(words) are zeroed. Load is used by the
// loader to swap in a freshly read image atomically.
func (m *Memory) Load(words []uint16) {
	m.Reset()
	copy(m.cells[:], words)
}
