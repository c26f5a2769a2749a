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

package debugger

import (
	"fmt"
	"os"
	"strconv"

	"github.com/h-ohsaki/casl/pkg/cpu"
	"github.com/h-ohsaki/casl/pkg/loader"
	"github.com/h-ohsaki/casl/pkg/machine"
	"github.com/h-ohsaki/casl/pkg/word"
)

// commandTable is the fixed set of REPL commands, long name plus
// short alias. run and step are flagged
// "list": both move PC silently and the user wants to see where
// execution landed, so Dispatch prints register state after either
// one runs (the other commands either produce their own output or
// don't change anything worth re-displaying).
var commandTable []*command

func init() {
	commandTable = []*command{
		{name: "run", alias: "r", usage: "run", list: true, handler: cmdRun},
		{name: "step", alias: "s", usage: "step [n]", list: true, handler: cmdStep},
		{name: "break", alias: "b", usage: "break adr", handler: cmdBreak},
		{name: "del", alias: "de", usage: "del [i]", handler: cmdDel},
		{name: "info", alias: "i", usage: "info", handler: cmdInfo},
		{name: "print", alias: "p", usage: "print", handler: cmdPrint},
		{name: "dump", alias: "du", usage: "dump [adr]", handler: cmdDump},
		{name: "stack", alias: "st", usage: "stack", handler: cmdStack},
		{name: "file", alias: "f", usage: "file path", handler: cmdFile},
		{name: "jump", alias: "j", usage: "jump adr", handler: cmdJump},
		{name: "memory", alias: "m", usage: "memory adr val", handler: cmdMemory},
		{name: "disasm", alias: "di", usage: "disasm [adr]", handler: cmdDisasm},
		{name: "help", alias: "h", usage: "help", handler: cmdHelp},
		{name: "quit", alias: "q", usage: "quit", handler: cmdQuit},
	}
}

func cmdRun(d *Debugger, args []string) error {
	if len(args) != 0 {
		return &InvalidArgumentError{Usage: "run"}
	}

	for {
		if d.interrupted() {
			fmt.Fprintln(d.Out)
			return nil
		}

		brk, err := d.Machine.Step()
		if err != nil {
			switch e := err.(type) {
			case *machine.IllegalInstructionError:
				fmt.Fprintf(d.Out, "illegal instruction at %#04x\n", e.PC)
				return nil
			default:
				if err == machine.ErrExit {
					d.Exited = true
					fmt.Fprintln(d.Out, "program exited")
					return nil
				}
				return err
			}
		}

		if brk != 0 {
			fmt.Fprintf(d.Out, "Breakpoint %d\n", brk)
			return nil
		}
	}
}

func cmdStep(d *Debugger, args []string) error {
	n := 1

	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return &InvalidArgumentError{Usage: "step [n]"}
		}
		n = v
	} else if len(args) != 0 {
		return &InvalidArgumentError{Usage: "step [n]"}
	}

	for i := 0; i < n; i++ {
		if _, err := d.Machine.Step(); err != nil {
			switch e := err.(type) {
			case *machine.IllegalInstructionError:
				fmt.Fprintf(d.Out, "illegal instruction at %#04x\n", e.PC)
				return nil
			default:
				if err == machine.ErrExit {
					d.Exited = true
					fmt.Fprintln(d.Out, "program exited")
					return nil
				}
				return err
			}
		}
	}

	return nil
}

func cmdBreak(d *Debugger, args []string) error {
	if len(args) != 1 {
		return &InvalidArgumentError{Usage: "break adr"}
	}

	addr, err := ParseAddr(args[0])
	if err != nil {
		return &InvalidArgumentError{Usage: "break adr"}
	}

	if d.Machine.CPU.AddBreakpoint(addr) {
		fmt.Fprintf(d.Out, "breakpoint %d set at %#04x\n", len(d.Machine.CPU.BP), addr)
	} else {
		fmt.Fprintf(d.Out, "breakpoint already set at %#04x\n", addr)
	}

	return nil
}

func cmdDel(d *Debugger, args []string) error {
	if len(args) > 1 {
		return &InvalidArgumentError{Usage: "del [i]"}
	}

	if len(args) == 1 {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return &InvalidArgumentError{Usage: "del [i]"}
		}

		if !d.Machine.CPU.DeleteBreakpoint(i) {
			fmt.Fprintf(d.Out, "no breakpoint #%d\n", i)
			return nil
		}

		fmt.Fprintf(d.Out, "breakpoint %d deleted\n", i)
		return nil
	}

	fmt.Fprint(d.Out, "Delete all breakpoints? (y or n) ")
	switch d.readLine() {
	case "y", "Y":
		d.Machine.CPU.ClearBreakpoints()
		fmt.Fprintln(d.Out, "breakpoints cleared")
	}

	return nil
}

func cmdInfo(d *Debugger, args []string) error {
	if len(args) != 0 {
		return &InvalidArgumentError{Usage: "info"}
	}

	if len(d.Machine.CPU.BP) == 0 {
		fmt.Fprintln(d.Out, "no breakpoints set")
		return nil
	}

	for i, addr := range d.Machine.CPU.BP {
		fmt.Fprintf(d.Out, "%d: %#04x\n", i+1, addr)
	}

	return nil
}

func cmdPrint(d *Debugger, args []string) error {
	if len(args) != 0 {
		return &InvalidArgumentError{Usage: "print"}
	}

	pc := d.Machine.CPU.PC
	mnem, operand, _ := machine.Disassemble(d.Machine.Mem, pc)

	fmt.Fprintf(d.Out, "PC  %#04x  %s %s\n", pc, mnem, operand)

	for i := 0; i < cpu.NumGR; i++ {
		v := d.Machine.CPU.GR[i]
		fmt.Fprintf(d.Out, "GR%d %#04x  %d\n", i, v, word.Signed(v))
	}

	fmt.Fprintf(d.Out, "FR  %s\n", d.Machine.CPU.FR)

	return nil
}

const dumpRows = 16
const dumpCols = 8

func (d *Debugger) dumpWords(start uint16) {
	addr := start

	for row := 0; row < dumpRows; row++ {
		fmt.Fprintf(d.Out, "%04X:", addr)

		var gutter [dumpCols]byte
		for col := 0; col < dumpCols; col++ {
			w := d.Machine.Mem.Read(addr)
			fmt.Fprintf(d.Out, " %04X", w)

			lo := byte(w)
			if lo >= 0x20 && lo < 0x7F {
				gutter[col] = lo
			} else {
				gutter[col] = '.'
			}

			addr++
		}

		fmt.Fprintf(d.Out, "  %s\n", gutter[:])
	}
}

func cmdDump(d *Debugger, args []string) error {
	addr := d.Machine.CPU.PC

	if len(args) == 1 {
		a, err := ParseAddr(args[0])
		if err != nil {
			return &InvalidArgumentError{Usage: "dump [adr]"}
		}
		addr = a
	} else if len(args) != 0 {
		return &InvalidArgumentError{Usage: "dump [adr]"}
	}

	d.dumpWords(addr)
	return nil
}

func cmdStack(d *Debugger, args []string) error {
	if len(args) != 0 {
		return &InvalidArgumentError{Usage: "stack"}
	}

	d.dumpWords(d.Machine.CPU.SP())
	return nil
}

func cmdFile(d *Debugger, args []string) error {
	if len(args) != 1 {
		return &InvalidArgumentError{Usage: "file path"}
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(d.Out, "comet: %v\n", err)
		return nil
	}
	defer f.Close()

	if err := loader.Load(f, d.Machine, args[0]); err != nil {
		fmt.Fprintf(d.Out, "comet: %v\n", err)
		return nil
	}

	d.Exited = false
	fmt.Fprintf(d.Out, "loaded %s\n", args[0])
	return nil
}

func cmdJump(d *Debugger, args []string) error {
	if len(args) != 1 {
		return &InvalidArgumentError{Usage: "jump adr"}
	}

	addr, err := ParseAddr(args[0])
	if err != nil {
		return &InvalidArgumentError{Usage: "jump adr"}
	}

	d.Machine.CPU.PC = addr
	return nil
}

func cmdMemory(d *Debugger, args []string) error {
	if len(args) != 2 {
		return &InvalidArgumentError{Usage: "memory adr val"}
	}

	addr, err := ParseAddr(args[0])
	if err != nil {
		return &InvalidArgumentError{Usage: "memory adr val"}
	}

	val, err := ParseAddr(args[1])
	if err != nil {
		return &InvalidArgumentError{Usage: "memory adr val"}
	}

	d.Machine.Mem.Write(addr, val)
	return nil
}

func cmdDisasm(d *Debugger, args []string) error {
	addr := d.Machine.CPU.PC

	if len(args) == 1 {
		a, err := ParseAddr(args[0])
		if err != nil {
			return &InvalidArgumentError{Usage: "disasm [adr]"}
		}
		addr = a
	} else if len(args) != 0 {
		return &InvalidArgumentError{Usage: "disasm [adr]"}
	}

	for i := 0; i < 16; i++ {
		mnem, operand, size := machine.Disassemble(d.Machine.Mem, addr)
		fmt.Fprintf(d.Out, "%04X: %-5s %s\n", addr, mnem, operand)
		addr += size
	}

	return nil
}

func cmdHelp(d *Debugger, args []string) error {
	for _, c := range commandTable {
		fmt.Fprintf(d.Out, "%-7s (%s)  %s\n", c.name, c.alias, c.usage)
	}
	return nil
}

func cmdQuit(d *Debugger, args []string) error {
	if len(args) != 0 {
		return &InvalidArgumentError{Usage: "quit"}
	}

	d.Quit = true
	return nil
}
