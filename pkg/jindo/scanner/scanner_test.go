// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package scanner

import (
	"strings"
	"testing"

	"jindo/pkg/jindo/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanner(t *testing.T, src string) *Scanner {
	t.Helper()
	var s Scanner
	s.Init(strings.NewReader(src), func(line, col uint, msg string) {
		t.Fatalf("unexpected scanner error at %d:%d: %s", line, col, msg)
	})
	return &s
}

func Test_scannerTokenizesIdentifiersAndOperators(t *testing.T) {
	s := newScanner(t, "total + 1")

	s.Next()
	require.Equal(t, token.Name, s.Token())
	assert.Equal(t, "total", s.Literal())

	s.Next()
	require.Equal(t, token.Op, s.Token())
	assert.Equal(t, token.Add, s.Op())

	s.Next()
	require.Equal(t, token.Literal, s.Token())
	assert.Equal(t, "1", s.Literal())
	assert.False(t, s.Bad())

	// a literal at end of input gets an automatic semicolon before EOF
	s.Next()
	assert.Equal(t, token.Semi, s.Token())

	s.Next()
	assert.Equal(t, token.EOF, s.Token())
}

func Test_scannerReportsByteOffsetOfEachToken(t *testing.T) {
	s := newScanner(t, "ab cd")

	s.Next()
	assert.Equal(t, 0, s.Offset())

	s.Next()
	assert.Equal(t, 3, s.Offset())
}

func Test_scannerRecognizesStringLiterals(t *testing.T) {
	s := newScanner(t, `"hello"`)

	s.Next()
	require.Equal(t, token.Literal, s.Token())
	assert.Equal(t, token.StringLit, s.Kind())
	assert.False(t, s.Bad())
}

func Test_scannerRecognizesDelimiters(t *testing.T) {
	s := newScanner(t, "(x)")

	s.Next()
	assert.Equal(t, token.Lparen, s.Token())
	s.Next()
	assert.Equal(t, token.Name, s.Token())
	s.Next()
	assert.Equal(t, token.Rparen, s.Token())
}

func Test_scannerAssignsNewlineAsSemicolonAfterNameLiteral(t *testing.T) {
	s := newScanner(t, "x\ny")

	s.Next()
	require.Equal(t, token.Name, s.Token())
	s.Next()
	assert.Equal(t, token.Semi, s.Token())
	s.Next()
	assert.Equal(t, token.Name, s.Token())
}
