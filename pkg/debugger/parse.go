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
	"strconv"
	"strings"
)

// ParseAddr decodes a debugger numeric argument: decimal with an
// optional leading sign, or hexadecimal prefixed with '#'. The result
// is masked to 16 bits.
func ParseAddr(s string) (uint16, error) {
	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 16, 64)
		if err != nil {
			return 0, err
		}
		return uint16(v), nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint16(v), nil
}
