// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import "jindo/pkg/jindo/ast"

// emitPat renders a pattern node, as it appears in an alt arm, a let
// binding, or a destructuring parameter.
func (s *Session) emitPat(p ast.Pat) {
	switch x := p.(type) {
	case *ast.WildPat:
		s.pp.Word("_")

	case *ast.BindPat:
		s.pp.Word("?")
		s.emitName(x.Name)

	case *ast.LitPat:
		s.emitBasicLit(x.Lit)

	case *ast.TagPat:
		s.emitExpr(x.Path, 0)
		if x.Elems != nil {
			s.pp.Word("(")
			for i, e := range x.Elems {
				if i > 0 {
					s.pp.Word(",")
					s.pp.Space()
				}
				s.emitPat(e)
			}
			s.pp.Word(")")
		}

	case *ast.TupPat:
		s.pp.Word("(")
		for i, e := range x.Elems {
			if i > 0 {
				s.pp.Word(",")
				s.pp.Space()
			}
			s.emitPat(e)
		}
		s.pp.Word(")")

	case *ast.RecPat:
		if x.Type != nil {
			s.emitType(x.Type)
			s.pp.Space()
		}
		s.pp.Word("{")
		for i, f := range x.Fields {
			if i > 0 {
				s.pp.Word(",")
				s.pp.Space()
			}
			s.emitName(f.Name)
			s.pp.Word(":")
			s.pp.Space()
			s.emitPat(f.Pat)
		}
		s.pp.Word("}")

	case *ast.RangePat:
		s.emitBasicLit(x.Lo)
		s.pp.Word("...")
		s.emitBasicLit(x.Hi)

	default:
		fatalf("unknown pattern %T", p)
	}
}
