// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package scanner

import "strings"

// CommentKind distinguishes `//` line comments from `/* */` block comments.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

// Comment is a single comment recovered from source text, in the shape
// spec.md §3 describes: a byte position, a kind (with the block variant
// carrying its text pre-split into lines), and a flag recording whether a
// blank line (or the end of the source) follows it — the signal the printer's comment
// store (pkg/jindo/printer/comments.go) uses to decide whether to force an
// extra line break after emitting the comment.
type Comment struct {
	Position   int // byte offset of the opening // or /*
	Kind       CommentKind
	Text       string   // full text, including delimiters, excluding trailing newline
	Lines      []string // for BlockComment: Text split on '\n'; for LineComment: single element
	SpaceAfter bool
}

// GatherComments scans src for // and /* */ comments and returns them in
// ascending position order. It implements the lexer adapter's
// gather_comments contract (spec.md §6): parsing the surrounding grammar is
// out of scope, so this walks raw bytes directly rather than driving the
// full Scanner, skipping over string/rune literals just enough to avoid
// mistaking a quoted "//" for a comment.
func GatherComments(src []byte) []Comment {
	var out []Comment
	i, n := 0, len(src)

	for i < n {
		switch {
		case src[i] == '"' || src[i] == '\'':
			i = skipQuoted(src, i)

		case src[i] == '/' && i+1 < n && src[i+1] == '/':
			start := i
			i += 2
			for i < n && src[i] != '\n' {
				i++
			}
			text := string(src[start:i])
			out = append(out, Comment{
				Position: start,
				Kind:     LineComment,
				Text:     text,
				Lines:    []string{text},
			})
			markSpaceAfter(src, i, &out[len(out)-1])

		case src[i] == '/' && i+1 < n && src[i+1] == '*':
			start := i
			i += 2
			for i < n-1 && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			end := i + 2
			if end > n {
				end = n
			} else {
				i += 2
			}
			text := string(src[start:end])
			out = append(out, Comment{
				Position: start,
				Kind:     BlockComment,
				Text:     text,
				Lines:    strings.Split(text, "\n"),
			})
			markSpaceAfter(src, end, &out[len(out)-1])
			i = end

		default:
			i++
		}
	}

	return out
}

// skipQuoted advances past a "..." or '...' literal starting at i, honoring
// backslash escapes, so a "//" or "/*" inside it is not mistaken for a
// comment opener.
func skipQuoted(src []byte, i int) int {
	quote := src[i]
	i++
	n := len(src)
	for i < n {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			return i
		}
		i++
	}
	return i
}

// markSpaceAfter sets c.SpaceAfter if a blank line separates the comment
// ending at off from whatever follows it, or if only whitespace follows it
// to the end of src.
func markSpaceAfter(src []byte, off int, c *Comment) {
	nl := 0
	i := off
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\r':
			i++
			continue
		case '\n':
			nl++
			i++
			continue
		}
		break
	}
	c.SpaceAfter = nl >= 2 || i >= len(src)
}
