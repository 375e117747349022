// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import "jindo/pkg/jindo/scanner"

// commentStore holds the ordered comment list gathered from a source file
// and a monotonically advancing cursor into it, so the emitter never
// prints the same comment twice and always prints them in ascending
// position order, interleaved with AST output.
type commentStore struct {
	comments []scanner.Comment
	cur      int
}

func newCommentStore(comments []scanner.Comment) *commentStore {
	return &commentStore{comments: comments}
}

func (cs *commentStore) done() bool { return cs.cur >= len(cs.comments) }

func (cs *commentStore) peek() (scanner.Comment, bool) {
	if cs.done() {
		return scanner.Comment{}, false
	}
	return cs.comments[cs.cur], true
}

// maybePrintComment emits every not-yet-printed comment positioned before
// target, per spec §4.2: "While cur_cmnt's position < target: emit the
// comment, advance cur_cmnt; if space_after, additionally emit a line()
// after the comment."
func (s *Session) maybePrintComment(target int) {
	for {
		c, ok := s.comments.peek()
		if !ok || c.Position >= target {
			return
		}
		s.printComment(c)
		s.comments.cur++
		if c.SpaceAfter {
			s.pp.Line()
		}
	}
}

// maybePrintLineComment attaches a pending comment inline after a list
// element's trailing comma, if it starts within hi+4 bytes of the
// element's span. It reports whether it consumed a comment, so the caller
// can skip its own separator in that case.
func (s *Session) maybePrintLineComment(hi int) bool {
	c, ok := s.comments.peek()
	if !ok || c.Position > hi+4 {
		return false
	}
	s.pp.Word(" ")
	s.printComment(c)
	s.comments.cur++
	return true
}

// printRemainingComments drains every comment still unprinted, called once
// at the end of a full-file render.
func (s *Session) printRemainingComments() {
	for {
		c, ok := s.comments.peek()
		if !ok {
			return
		}
		s.printComment(c)
		s.comments.cur++
		if c.SpaceAfter {
			s.pp.Line()
		}
	}
}

func (s *Session) printComment(c scanner.Comment) {
	switch c.Kind {
	case scanner.LineComment:
		s.pp.Word("// " + trimLineCommentMarker(c.Text))
		s.pp.HardBreak()
	case scanner.BlockComment:
		s.pp.BeginConsistent(0)
		s.pp.Word("/* ")
		s.pp.BeginInconsistent(0)
		for i, line := range trimBlockCommentLines(c.Lines) {
			if i > 0 {
				s.pp.HardBreak()
			}
			s.pp.Word(line)
		}
		s.pp.End()
		s.pp.Word("*/")
		s.pp.End()
		s.pp.Line()
	}
}

// trimLineCommentMarker strips a leading "//" so printComment's own
// "// " prefix isn't doubled.
func trimLineCommentMarker(text string) string {
	if len(text) >= 2 && text[0] == '/' && text[1] == '/' {
		text = text[2:]
		for len(text) > 0 && text[0] == ' ' {
			text = text[1:]
		}
	}
	return text
}

// trimBlockCommentLines strips the "/*"/"*/" delimiters captured in the
// first and last line, since printComment emits its own.
func trimBlockCommentLines(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	out := make([]string, len(lines))
	copy(out, lines)
	if len(out[0]) >= 2 {
		out[0] = out[0][2:]
	}
	last := len(out) - 1
	if len(out[last]) >= 2 {
		out[last] = out[last][:len(out[last])-2]
	}
	return out
}
