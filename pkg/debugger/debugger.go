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

// Package debugger implements the comet> REPL: a prefix-matched
// command dispatcher sitting on top of a machine.Machine. Reading the
// prompt and the line itself is the caller's job (cmd/comet); this
// package owns everything from "a line arrived" onward.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/prefixtree"

	"github.com/h-ohsaki/casl/pkg/machine"
)

type command struct {
	name    string
	alias   string
	usage   string
	list    bool
	handler func(*Debugger, []string) error
}

// commandSet resolves a REPL token to a command through a
// github.com/beevik/prefixtree tree, the way cmds.find does in the
// go6502 debugger this package is grounded on: exact registrations (long
// name and short alias alike) take priority, and anything else
// resolves as a prefix if it is unambiguous.
type commandSet struct {
	tree *prefixtree.Tree
	byName map[string]*command
}

func newCommandSet(cmds []*command) *commandSet {
	cs := &commandSet{
		tree:   prefixtree.New(),
		byName: make(map[string]*command, len(cmds)),
	}

	for _, c := range cmds {
		cs.tree.Add(c.name, c)
		cs.byName[c.name] = c

		if c.alias != "" {
			cs.tree.Add(c.alias, c)
		}
	}

	return cs
}

func (cs *commandSet) find(token string) (*command, error) {
	v, err := cs.tree.Find(token)
	if err != nil {
		return nil, err
	}

	return v.(*command), nil
}

// Debugger dispatches REPL lines against a machine. The zero value is
// not usable; construct one with New.
type Debugger struct {
	Machine *machine.Machine
	Out     io.Writer

	// Scanner supplies REPL lines and any interactive confirmations a
	// command needs (e.g. del's "Delete all breakpoints?" prompt). It
	// reads the same console the user types debugger commands into,
	// never the machine's simulated IN stream.
	Scanner *bufio.Scanner

	// Quit is set by the quit command; cmd/comet checks it after
	// every Dispatch to know when to stop reading lines.
	Quit bool

	// Exited is set once the running program has hit the EXIT trap.
	// The REPL keeps going (a reload via file clears it), but
	// cmd/comet uses it to pick a nonzero process exit status once
	// the user finally quits.
	Exited bool

	// Interrupted is polled by run between steps; a nil func means
	// run is never interrupted. cmd/comet wires this to a SIGINT flag
	// for the duration of a run.
	Interrupted func() bool

	lastFields []string
	cmds       *commandSet
}

// New builds a Debugger over m, writing all REPL output to out and
// reading commands (and confirmation prompts) from in.
func New(m *machine.Machine, in io.Reader, out io.Writer) *Debugger {
	d := &Debugger{
		Machine: m,
		Out:     out,
		Scanner: bufio.NewScanner(in),
	}
	d.cmds = newCommandSet(commandTable)
	return d
}

func (d *Debugger) readLine() string {
	if d.Scanner.Scan() {
		return strings.TrimSpace(d.Scanner.Text())
	}
	return ""
}

// Dispatch runs one REPL line. Empty input repeats the previous
// command's full token list.
func (d *Debugger) Dispatch(line string) {
	fields := strings.Fields(line)

	if len(fields) == 0 {
		fields = d.lastFields
	}
	if len(fields) == 0 {
		return
	}
	d.lastFields = fields

	token, args := fields[0], fields[1:]

	cmd, err := d.cmds.find(token)
	switch {
	case err == prefixtree.ErrPrefixNotFound:
		fmt.Fprintf(d.Out, "comet: %s: no such command\n", token)
		return
	case err == prefixtree.ErrPrefixAmbiguous:
		fmt.Fprintf(d.Out, "comet: %s: ambiguous command\n", token)
		return
	case err != nil:
		fmt.Fprintf(d.Out, "comet: %v\n", err)
		return
	}

	if err := cmd.handler(d, args); err != nil {
		if usage, ok := err.(*InvalidArgumentError); ok {
			fmt.Fprintf(d.Out, "usage: %s\n", usage.Usage)
			return
		}
		fmt.Fprintf(d.Out, "comet: %v\n", err)
		return
	}

	if cmd.list {
		cmdPrint(d, nil)
	}
}

func (d *Debugger) interrupted() bool {
	return d.Interrupted != nil && d.Interrupted()
}
