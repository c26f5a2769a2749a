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

// Package cpu holds COMET's register file: PC, FR, GR0..GR4, and the
// debugger's breakpoint set. It has no behavior beyond storage; the
// executor in pkg/machine reads a working copy and commits at the end
// of a step.
package cpu

import "github.com/h-ohsaki/casl/pkg/word"

// StackTop is GR4's cold-boot value. The stack grows toward address 0.
const StackTop uint16 = 0xFF00

// NumGR is the number of general-purpose registers, GR0..GR3 plus the
// stack pointer GR4.
const NumGR = 5

// State is COMET's register file. The zero value is not valid; use
// Reset to bring it to cold boot.
type State struct {
	PC uint16
	FR word.Flag
	GR [NumGR]uint16

	// BP holds breakpoint addresses in insertion order. It is
	// debugger-only state: the executor never mutates it, and reads it
	// only to perform the post-step breakpoint check.
	BP []uint16
}

// Reset brings the register file to cold boot: PC = 0, FR = ZERO,
// GR0..GR3 = 0, GR4 = StackTop, BP empty.
func (s *State) Reset() {
	s.PC = 0x0000
	s.FR = word.ZERO
	for i := range s.GR {
		s.GR[i] = 0
	}
	s.GR[4] = StackTop
	s.BP = nil
}

// SP returns GR4, the stack pointer.
func (s *State) SP() uint16 {
	return s.GR[4]
}

// SetSP sets GR4.
func (s *State) SetSP(v uint16) {
	s.GR[4] = v
}

// AddBreakpoint appends addr to BP unless it is already present.
func (s *State) AddBreakpoint(addr uint16) bool {
	for _, bp := range s.BP {
		if bp == addr {
			return false
		}
	}

	s.BP = append(s.BP, addr)
	return true
}

// DeleteBreakpoint removes the breakpoint at 1-based position i. It
// reports whether i was in range.
func (s *State) DeleteBreakpoint(i int) bool {
	if i < 1 || i > len(s.BP) {
		return false
	}

	s.BP = append(s.BP[:i-1], s.BP[i:]...)
	return true
}

// ClearBreakpoints empties BP.
func (s *State) ClearBreakpoints() {
	s.BP = nil
}

// HitBreakpoint reports the 1-based index of the breakpoint matching
// addr, or 0 if none matches.
func (s *State) HitBreakpoint(addr uint16) int {
	for i, bp := range s.BP {
		if bp == addr {
			return i + 1
		}
	}

	return 0
}
