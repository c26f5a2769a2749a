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
	"errors"
	"fmt"
)

// IllegalInstructionError is returned by Step when the opcode at PC is
// not in opcodeTable and PC is not a trap address. Memory and register
// state are left exactly as they were before the step.
type IllegalInstructionError struct {
	PC uint16
}

func (e *IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction at %#04x", e.PC)
}

// ErrExit is returned by Step when the running program executes the
// EXIT trap. It carries no payload; EXIT always signals a failure
// indication.
var ErrExit = errors.New("program exited")
