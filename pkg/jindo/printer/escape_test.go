// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_escapeStringPassesPlainTextThrough(t *testing.T) {
	assert.Equal(t, `"hello"`, escapeString("hello"))
}

func Test_escapeStringEscapesControlBytes(t *testing.T) {
	assert.Equal(t, `"a\nb\tc\rd"`, escapeString("a\nb\tc\rd"))
}

func Test_escapeStringEscapesBackslashAndQuote(t *testing.T) {
	assert.Equal(t, `"a\\b\"c"`, escapeString(`a\b"c`))
}

func Test_escapeStringLeavesSingleQuoteAlone(t *testing.T) {
	assert.Equal(t, `"it's fine"`, escapeString("it's fine"))
}

func Test_escapeCharEscapesQuoteNotDoubleQuote(t *testing.T) {
	assert.Equal(t, `'\''`, escapeChar('\''))
	assert.Equal(t, `'"'`, escapeChar('"'))
}

func Test_escapeCharEscapesNewlineTabReturn(t *testing.T) {
	assert.Equal(t, `'\n'`, escapeChar('\n'))
	assert.Equal(t, `'\t'`, escapeChar('\t'))
	assert.Equal(t, `'\r'`, escapeChar('\r'))
}

// escapeString must emit the full Unicode scalar for non-ASCII input rather
// than reinterpreting its UTF-8 bytes one at a time; see DESIGN.md's Open
// Question 4 resolution.
func Test_escapeStringPreservesMultibyteScalarsWhole(t *testing.T) {
	assert.Equal(t, `"café 日本語 🎉"`, escapeString("café 日本語 🎉"))
}

func Test_escapeStringHandlesEmptyInput(t *testing.T) {
	assert.Equal(t, `""`, escapeString(""))
}
