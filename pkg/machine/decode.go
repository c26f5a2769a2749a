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
	"fmt"

	"github.com/h-ohsaki/casl/pkg/memory"
)

type decoded struct {
	opcode uint16
	gr     uint16
	xr     uint16
	adr    uint16
}

func decode(mem *memory.Memory, pc uint16) decoded {
	word1 := mem.Read(pc)

	return decoded{
		opcode: word1 >> 8,
		gr:     (word1 >> 4) & 0xF,
		xr:     word1 & 0xF,
		adr:    mem.Read(pc + 1),
	}
}

func effectiveAddr(d decoded, gr [5]uint16) uint16 {
	if d.xr >= 1 && d.xr <= 4 {
		return d.adr + gr[d.xr]
	}
	return d.adr
}

// Disassemble parses the two-word instruction at pc into a mnemonic,
// an operand string, and its size in words. It never mutates memory;
// calling it twice in a row on the same memory yields identical
// output.
func Disassemble(mem *memory.Memory, pc uint16) (mnemonic, operand string, size uint16) {
	d := decode(mem, pc)

	def, ok := opcodeTable[d.opcode]
	if !ok {
		word1 := mem.Read(pc)
		mnemonic = "DC"
		operand = fmt.Sprintf("#%04x", word1)
		size = 1
	} else {
		mnemonic = def.mnemonic
		size = def.size

		switch def.enc {
		case encOp1:
			operand = fmt.Sprintf("GR%d, #%04X", d.gr, d.adr)
			if d.xr >= 1 && d.xr <= 4 {
				operand += fmt.Sprintf(", GR%d", d.xr)
			}
		case encOp2:
			operand = fmt.Sprintf("#%04X", d.adr)
			if d.xr >= 1 && d.xr <= 4 {
				operand += fmt.Sprintf(", GR%d", d.xr)
			}
		case encOp3:
			operand = fmt.Sprintf("GR%d", d.gr)
		case encOp4:
			operand = ""
		}
	}

	switch pc {
	case TrapIN:
		mnemonic, operand, size = "IN", "", 2
	case TrapOUT:
		mnemonic, operand, size = "OUT", "", 2
	case TrapEXIT:
		mnemonic, operand, size = "EXIT", "", 2
	}

	return mnemonic, operand, size
}
