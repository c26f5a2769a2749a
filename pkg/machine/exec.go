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

package machine

import (
	"bufio"
	"io"

	"github.com/h-ohsaki/casl/pkg/cpu"
	"github.com/h-ohsaki/casl/pkg/memory"
	"github.com/h-ohsaki/casl/pkg/word"
)

// Machine wires a register file and a memory together and runs them.
// It owns the console streams the IN/OUT traps read and write.
type Machine struct {
	CPU *cpu.State
	Mem *memory.Memory

	Input  *bufio.Scanner
	Output io.Writer
}

// New returns a Machine over a freshly reset CPU and memory, reading
// IN from in and writing OUT to out.
func New(in io.Reader, out io.Writer) *Machine {
	var s cpu.State
	s.Reset()

	var m memory.Memory

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 4096), 4096)

	return &Machine{
		CPU:    &s,
		Mem:    &m,
		Input:  scanner,
		Output: out,
	}
}

type pendingWrite struct {
	addr, value uint16
}

// Step performs one fetch-decode-execute cycle. It returns the
// 1-based index of a breakpoint matching the post-step PC, or 0 if
// none matches; callers that don't care about breakpoints (a plain
// "step" command) simply ignore a non-zero result. Step returns
// ErrExit when the program executes the EXIT trap, and
// *IllegalInstructionError when the opcode at PC is unrecognized and
// PC is not a trap address -- in the latter case memory and registers
// are left exactly as they were on entry.
func (m *Machine) Step() (breakpoint int, err error) {
	pc := m.CPU.PC

	switch pc {
	case TrapIN:
		m.trapIN()
		return m.CPU.HitBreakpoint(m.CPU.PC), nil
	case TrapOUT:
		m.trapOUT()
		return m.CPU.HitBreakpoint(m.CPU.PC), nil
	case TrapEXIT:
		return 0, ErrExit
	}

	d := decode(m.Mem, pc)

	def, ok := opcodeTable[d.opcode]
	if !ok {
		return 0, &IllegalInstructionError{PC: pc}
	}

	eadr := effectiveAddr(d, m.CPU.GR)

	next := *m.CPU
	var writes []pendingWrite
	branched := false

	switch d.opcode {
	case opLD:
		next.GR[d.gr] = m.Mem.Read(eadr)

	case opST:
		writes = append(writes, pendingWrite{eadr, next.GR[d.gr]})

	case opLEA:
		next.GR[d.gr] = eadr
		next.FR = word.Compute(next.GR[d.gr])

	case opADD:
		next.GR[d.gr] = next.GR[d.gr] + m.Mem.Read(eadr)
		next.FR = word.Compute(next.GR[d.gr])

	case opSUB:
		next.GR[d.gr] = next.GR[d.gr] - m.Mem.Read(eadr)
		next.FR = word.Compute(next.GR[d.gr])

	case opAND:
		next.GR[d.gr] = next.GR[d.gr] & m.Mem.Read(eadr)
		next.FR = word.Compute(next.GR[d.gr])

	case opOR:
		next.GR[d.gr] = next.GR[d.gr] | m.Mem.Read(eadr)
		next.FR = word.Compute(next.GR[d.gr])

	case opEOR:
		next.GR[d.gr] = next.GR[d.gr] ^ m.Mem.Read(eadr)
		next.FR = word.Compute(next.GR[d.gr])

	case opCPA:
		diff := int32(word.Signed(next.GR[d.gr])) - int32(word.Signed(m.Mem.Read(eadr)))
		next.FR = word.Compute(word.Sat16(diff))

	case opCPL:
		diff := int32(next.GR[d.gr]) - int32(m.Mem.Read(eadr))
		next.FR = word.Compute(word.Sat16(diff))

	case opSLA:
		next.GR[d.gr] = shiftSLA(next.GR[d.gr], eadr)
		next.FR = word.Compute(next.GR[d.gr])

	case opSRA:
		next.GR[d.gr] = shiftSRA(next.GR[d.gr], eadr)
		next.FR = word.Compute(next.GR[d.gr])

	case opSLL:
		next.GR[d.gr] = next.GR[d.gr] << eadr
		next.FR = word.Compute(next.GR[d.gr])

	case opSRL:
		next.GR[d.gr] = next.GR[d.gr] >> eadr
		next.FR = word.Compute(next.GR[d.gr])

	case opJPZ:
		if next.FR != word.MINUS {
			next.PC, branched = eadr, true
		}

	case opJMI:
		if next.FR == word.MINUS {
			next.PC, branched = eadr, true
		}

	case opJNZ:
		if next.FR != word.ZERO {
			next.PC, branched = eadr, true
		}

	case opJZE:
		if next.FR == word.ZERO {
			next.PC, branched = eadr, true
		}

	case opJMP:
		next.PC, branched = eadr, true

	case opPUSH:
		next.SetSP(next.SP() - 1)
		writes = append(writes, pendingWrite{next.SP(), eadr})

	case opPOP:
		next.GR[d.gr] = m.Mem.Read(next.SP())
		next.SetSP(next.SP() + 1)

	case opCALL:
		next.SetSP(next.SP() - 1)
		writes = append(writes, pendingWrite{next.SP(), pc + 2})
		next.PC, branched = eadr, true

	case opRET:
		next.PC = m.Mem.Read(next.SP())
		next.SetSP(next.SP() + 1)
		branched = true
	}

	if !branched {
		next.PC = pc + def.size
	}

	for _, w := range writes {
		m.Mem.Write(w.addr, w.value)
	}

	*m.CPU = next

	return m.CPU.HitBreakpoint(m.CPU.PC), nil
}
