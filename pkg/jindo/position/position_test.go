// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_makePosRoundTripsOffsetLineCol(t *testing.T) {
	p := MakePos(nil, 42, 3, 7)
	assert.Equal(t, 42, p.Offset())
	assert.Equal(t, uint(3), p.Line())
	assert.Equal(t, uint(7), p.Col())
}

func Test_unknownPosHasNoLine(t *testing.T) {
	p := Pos{}
	assert.False(t, p.IsKnown())
}

func Test_fileBaseAnchorsOffsetZeroToLineOneColOne(t *testing.T) {
	base := NewFileBase("mod.jin")
	assert.Equal(t, "mod.jin", base.Filename())
	assert.Equal(t, uint32(linebase), base.line)
	assert.Equal(t, uint32(Colbase), base.col)
}

func Test_spanStringReportsOffsetWidth(t *testing.T) {
	s := Span{Lo: MakePos(nil, 10, 1, 1), Hi: MakePos(nil, 16, 1, 7)}
	assert.Equal(t, "<unknown>@10+6", s.String())
}
