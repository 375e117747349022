// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPP(margin int, f func(p *PP)) string {
	var buf stringSink
	p := NewPP(&buf, margin)
	f(p)
	_ = p.EOF()
	return string(buf)
}

func Test_wordsJoinedBySpaceFit(t *testing.T) {
	out := renderPP(20, func(p *PP) {
		p.BeginInconsistent(0)
		p.Word("one")
		p.Space()
		p.Word("two")
		p.End()
	})
	assert.Equal(t, "one two", out)
}

func Test_inconsistentGroupFitsOnOneLineWhenItFits(t *testing.T) {
	out := renderPP(20, func(p *PP) {
		p.BeginInconsistent(0)
		p.Word("aa")
		p.Space()
		p.Word("bb")
		p.Space()
		p.Word("cc")
		p.End()
	})
	assert.Equal(t, "aa bb cc", out)
}

func Test_inconsistentGroupWrapsOnlyTheBreakThatOverflows(t *testing.T) {
	// margin 6: "aa bb" fits after the first break resolves (width of the
	// "bb" chunk is 2, well within the remaining space), but the second
	// break's chunk ("cc") no longer fits once "bb" has been printed, so
	// only that break wraps.
	out := renderPP(6, func(p *PP) {
		p.BeginInconsistent(0)
		p.Word("aa")
		p.Space()
		p.Word("bb")
		p.Space()
		p.Word("cc")
		p.End()
	})
	assert.Equal(t, "aa bb\ncc", out)
}

func Test_consistentGroupBreaksEveryMemberTogether(t *testing.T) {
	out := renderPP(4, func(p *PP) {
		p.BeginConsistent(2)
		p.Word("aa")
		p.Break(1, 0)
		p.Word("bb")
		p.Break(1, 0)
		p.Word("cc")
		p.End()
	})
	assert.Equal(t, "aa\n  bb\n  cc", out)
}

func Test_hardBreakAlwaysWraps(t *testing.T) {
	out := renderPP(40, func(p *PP) {
		p.BeginInconsistent(0)
		p.Word("one")
		p.HardBreak()
		p.Word("two")
		p.End()
	})
	assert.Equal(t, "one\ntwo", out)
}

func Test_lineForcesWrapInNonFittingInconsistentGroup(t *testing.T) {
	out := renderPP(5, func(p *PP) {
		p.BeginInconsistent(0)
		p.Word("aaaaaa")
		p.Line()
		p.Word("b")
		p.End()
	})
	assert.Equal(t, "aaaaaa\nb", out)
}

func Test_lineStaysASpaceInFittingGroup(t *testing.T) {
	out := renderPP(40, func(p *PP) {
		p.BeginInconsistent(0)
		p.Word("a")
		p.Line()
		p.Word("b")
		p.End()
	})
	assert.Equal(t, "a b", out)
}

func Test_flatModeNeverWraps(t *testing.T) {
	out := renderPP(0, func(p *PP) {
		p.BeginConsistent(4)
		p.Word("aaaaaaaaaaaaaaaaaaaaaaaa")
		p.Break(1, 0)
		p.Word("bbbbbbbbbbbbbbbbbbbbbbbb")
		p.End()
	})
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaa bbbbbbbbbbbbbbbbbbbbbbbb", out)
}

func Test_eofWithUnbalancedBeginIsFatal(t *testing.T) {
	var buf stringSink
	p := NewPP(&buf, 20)
	p.BeginConsistent(0)
	p.Word("x")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(FatalError)
		assert.True(t, ok)
	}()
	_ = p.EOF()
}

func Test_endWithoutBeginIsFatal(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(FatalError)
		assert.True(t, ok)
	}()
	var buf stringSink
	p := NewPP(&buf, 20)
	p.End()
}
