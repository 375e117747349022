// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import "strings"

// escape renders s with LF, TAB, CR, backslash and the given quote rune
// escaped; every other byte (rune, per Open Question 4 of §9: the
// reference reinterprets a single byte as a char, but implementations
// should emit the full Unicode scalar) passes through unchanged.
func escape(s string, quote rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case quote:
			b.WriteByte('\\')
			b.WriteRune(quote)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeString renders s as a double-quoted string literal.
func escapeString(s string) string {
	return `"` + escape(s, '"') + `"`
}

// escapeChar renders a single rune as a single-quoted character literal.
func escapeChar(r rune) string {
	return "'" + escape(string(r), '\'') + "'"
}
