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

// Package loader reads a CASL object image into a machine's memory.
package loader

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/h-ohsaki/casl/pkg/cpu"
	"github.com/h-ohsaki/casl/pkg/machine"
)

const headerSize = 16

const magic = "CASL"

// BadMagicError is returned when the first four bytes of the image
// are not the ASCII tag "CASL".
type BadMagicError struct {
	Path string
}

func (e *BadMagicError) Error() string {
	return "bad magic: " + e.Path + " is not a CASL object file"
}

// ErrOutOfMemory is returned when the payload would overflow the
// usable address range below cpu.StackTop.
var ErrOutOfMemory = errors.New("object file exceeds available memory")

// Load reads a CASL object image from r into m. On success, m's
// memory is fully replaced (every cell not covered by the image reads
// as zero), PC is set to 0, GR0..GR4 and BP are reset to their
// cold-boot values. On failure m is left exactly as it was: the image
// is read into a scratch buffer and swapped in only once the whole
// file has been validated.
//
// path is used only to name the file in BadMagicError.
func Load(r io.Reader, m *machine.Machine, path string) error {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return &BadMagicError{Path: path}
		}
		return err
	}

	if string(header[:4]) != magic {
		return &BadMagicError{Path: path}
	}

	scratch := make([]uint16, 0, cpu.StackTop)
	buf := make([]byte, 2)

	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			// A trailing odd byte is padding, not a word; stop.
			break
		}
		if err != nil {
			return err
		}

		if uint16(len(scratch)) >= cpu.StackTop {
			return ErrOutOfMemory
		}

		scratch = append(scratch, binary.BigEndian.Uint16(buf))
	}

	m.Mem.Load(scratch)
	m.CPU.Reset()

	return nil
}
