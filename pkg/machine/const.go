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

// Opcodes, high byte of instruction word 1.
const (
	opLD   uint16 = 0x10
	opST   uint16 = 0x11
	opLEA  uint16 = 0x12
	opADD  uint16 = 0x20
	opSUB  uint16 = 0x21
	opAND  uint16 = 0x30
	opOR   uint16 = 0x31
	opEOR  uint16 = 0x33
	opCPA  uint16 = 0x40
	opCPL  uint16 = 0x41
	opSLA  uint16 = 0x50
	opSRA  uint16 = 0x51
	opSLL  uint16 = 0x52
	opSRL  uint16 = 0x53
	opJPZ  uint16 = 0x60
	opJMI  uint16 = 0x61
	opJNZ  uint16 = 0x62
	opJZE  uint16 = 0x63
	opJMP  uint16 = 0x64
	opPUSH uint16 = 0x70
	opPOP  uint16 = 0x71
	opCALL uint16 = 0x80
	opRET  uint16 = 0x81
)

// Magic PC addresses that trap to a synthetic system call instead of
// ordinary decode.
const (
	TrapIN   uint16 = 0xFFF0
	TrapOUT  uint16 = 0xFFF2
	TrapEXIT uint16 = 0xFFF4
)

// encoding is the operand encoding shape an opcode uses, shared by the
// disassembler and the executor so they agree on instruction size from
// one source of truth.
type encoding uint8

const (
	encOp1 encoding = iota // GRn, #adr[, GRx]
	encOp2                 // #adr[, GRx]
	encOp3                 // GRn (second word consumed, unused)
	encOp4                 // no operand
)

type opdef struct {
	mnemonic string
	enc      encoding
	size     uint16
}

var opcodeTable = map[uint16]opdef{
	opLD:   {"LD", encOp1, 2},
	opST:   {"ST", encOp1, 2},
	opLEA:  {"LEA", encOp1, 2},
	opADD:  {"ADD", encOp1, 2},
	opSUB:  {"SUB", encOp1, 2},
	opAND:  {"AND", encOp1, 2},
	opOR:   {"OR", encOp1, 2},
	opEOR:  {"EOR", encOp1, 2},
	opCPA:  {"CPA", encOp1, 2},
	opCPL:  {"CPL", encOp1, 2},
	opSLA:  {"SLA", encOp1, 2},
	opSRA:  {"SRA", encOp1, 2},
	opSLL:  {"SLL", encOp1, 2},
	opSRL:  {"SRL", encOp1, 2},
	opJPZ:  {"JPZ", encOp2, 2},
	opJMI:  {"JMI", encOp2, 2},
	opJNZ:  {"JNZ", encOp2, 2},
	opJZE:  {"JZE", encOp2, 2},
	opJMP:  {"JMP", encOp2, 2},
	opPUSH: {"PUSH", encOp2, 2},
	opPOP:  {"POP", encOp3, 2},
	opCALL: {"CALL", encOp2, 2},
	opRET:  {"RET", encOp4, 1},
}
