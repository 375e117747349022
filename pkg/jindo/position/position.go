// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package position implements source positions and source spans.
package position

import "fmt"

// PosMax is the largest line or column value representable in a Pos.
const PosMax = 1 << 30

// starting points for line and column numbers
const (
	linebase = 1
	Colbase  = 1
)

// Pos describes a location in a source file: a byte offset plus the
// line/column it decodes to, relative to a PosBase.
type Pos struct {
	base      *PosBase
	offset    int
	line, col uint
}

// MakePos constructs a Pos at the given byte offset, line and column.
func MakePos(base *PosBase, offset int, line, col uint) Pos {
	return Pos{base, offset, line, col}
}

func NewLineBase(pos Pos, filename string, offset int, line, col uint) *PosBase {
	return &PosBase{pos, filename, offset, sat32(line), sat32(col)}
}

// NewFileBase returns the PosBase anchoring offset 0 to line 1, col 1 of filename.
func NewFileBase(filename string) *PosBase {
	base := &PosBase{MakePos(nil, 0, linebase, Colbase), filename, 0, linebase, Colbase}
	base.pos.base = base
	return base
}

func (p Pos) String() string {
	if p.base == nil {
		return fmt.Sprintf("<unknown>@%d", p.offset)
	}
	return fmt.Sprintf("%s:%d:%d", p.base.Filename(), p.line, p.col)
}

// PosBase anchors a Pos to a filename.
type PosBase struct {
	pos      Pos
	filename string
	offset   int
	line     uint32
	col      uint32
}

func (b PosBase) Filename() string { return b.filename }

func (p Pos) Pos() Pos       { return p }
func (p Pos) Offset() int    { return p.offset }
func (p Pos) Line() uint     { return p.line }
func (p Pos) Col() uint      { return p.col }
func (p Pos) IsKnown() bool  { return p.line > 0 }
func (p Pos) Filename() string {
	if p.base == nil {
		return ""
	}
	return p.base.Filename()
}

func sat32(x uint) uint32 {
	if x > PosMax {
		return PosMax
	}
	return uint32(x)
}

// Span is a half-open byte range [Lo, Hi) within a single source file,
// carried by every AST node.
type Span struct {
	Lo, Hi Pos
}

func (s Span) String() string {
	return fmt.Sprintf("%s+%d", s.Lo, s.Hi.Offset()-s.Lo.Offset())
}
