// This file is part of go6502.
//
// go6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go6502.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs provides typed preference values. Each value is safe to read
// from more than one goroutine and can be set either from a native Go value or
// from a string. The string form makes it easy to set preferences from a
// command line.
//
// Hook functions can be attached to a value to be called just before or just
// after the value changes. A pre-hook returning an error prevents the change.
//
// The command line stack collects preferences in the form "key::value; key::value"
// and lets a package consume the values it recognises with SetFromCommandLine().
package prefs
