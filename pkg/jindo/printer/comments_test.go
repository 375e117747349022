// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import (
	"testing"

	"jindo/pkg/jindo/scanner"

	"github.com/stretchr/testify/assert"
)

func Test_gatherCommentsFindsLineAndBlockComments(t *testing.T) {
	src := []byte("fn main() {} // trailing\n/* a block */\n")
	cs := scanner.GatherComments(src)

	if assert.Len(t, cs, 2) {
		assert.Equal(t, scanner.LineComment, cs[0].Kind)
		assert.Equal(t, scanner.BlockComment, cs[1].Kind)
	}
}

func Test_gatherCommentsIgnoresSlashesInsideStrings(t *testing.T) {
	src := []byte(`let s = "not // a comment";` + "\n// real\n")
	cs := scanner.GatherComments(src)

	if assert.Len(t, cs, 1) {
		assert.Equal(t, "// real", cs[0].Text)
	}
}

func Test_maybePrintCommentEmitsOnlyThoseBeforeTarget(t *testing.T) {
	comments := []scanner.Comment{
		{Position: 2, Kind: scanner.LineComment, Text: "// a", Lines: []string{"// a"}},
		{Position: 10, Kind: scanner.LineComment, Text: "// b", Lines: []string{"// b"}},
	}

	var buf stringSink
	s := NewSession(&buf, 40, comments, nil)
	s.pp.BeginInconsistent(0)
	s.pp.Word("x")
	s.maybePrintComment(5)
	s.pp.Word("y")
	s.pp.End()
	requireNoEOFError(t, s)

	out := string(buf)
	assert.Contains(t, out, "// a")
	assert.NotContains(t, out, "// b")
	assert.True(t, s.comments.cur == 1)
}

func Test_maybePrintCommentAdvancesPastAllEligibleComments(t *testing.T) {
	comments := []scanner.Comment{
		{Position: 1, Kind: scanner.LineComment, Text: "// a", Lines: []string{"// a"}},
		{Position: 2, Kind: scanner.LineComment, Text: "// b", Lines: []string{"// b"}},
	}
	var buf stringSink
	s := NewSession(&buf, 40, comments, nil)
	s.pp.BeginInconsistent(0)
	s.maybePrintComment(100)
	s.pp.End()
	requireNoEOFError(t, s)

	assert.True(t, s.comments.done())
}

func Test_printRemainingCommentsDrainsEverythingLeft(t *testing.T) {
	comments := []scanner.Comment{
		{Position: 1, Kind: scanner.LineComment, Text: "// a", Lines: []string{"// a"}},
		{Position: 2, Kind: scanner.LineComment, Text: "// b", Lines: []string{"// b"}},
	}
	var buf stringSink
	s := NewSession(&buf, 40, comments, nil)
	s.pp.BeginInconsistent(0)
	s.printRemainingComments()
	s.pp.End()
	requireNoEOFError(t, s)

	assert.True(t, s.comments.done())
	assert.Contains(t, string(buf), "// a")
	assert.Contains(t, string(buf), "// b")
}

func Test_trimLineCommentMarkerStripsSlashesAndLeadingSpaces(t *testing.T) {
	assert.Equal(t, "hi", trimLineCommentMarker("// hi"))
	assert.Equal(t, "hi", trimLineCommentMarker("//hi"))
}

func Test_trimBlockCommentLinesStripsDelimitersFromEnds(t *testing.T) {
	lines := []string{"/* one", "two */"}
	trimmed := trimBlockCommentLines(lines)
	assert.Equal(t, []string{" one", "two "}, trimmed)
}

func requireNoEOFError(t *testing.T, s *Session) {
	t.Helper()
	if err := s.pp.EOF(); err != nil {
		t.Fatalf("unexpected EOF error: %v", err)
	}
}
