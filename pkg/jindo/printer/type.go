// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import "jindo/pkg/jindo/ast"

// emitType renders a type node. Types never need operator-precedence
// parenthesization, only the sigils their own constructors carry (@, &,
// vec[...]), so there is no maybeParens counterpart here.
func (s *Session) emitType(t ast.Type) {
	switch x := t.(type) {
	case *ast.NilType:
		s.pp.Word("nil")

	case *ast.BoolType:
		s.pp.Word("bool")

	case *ast.CharType:
		s.pp.Word("char")

	case *ast.StrType:
		s.pp.Word("str")

	case *ast.MachType:
		s.pp.Word(x.Name)

	case *ast.PathType:
		s.emitExpr(x.X, 0)
		if len(x.Args) > 0 {
			s.pp.Word("[")
			for i, a := range x.Args {
				if i > 0 {
					s.pp.Word(",")
					s.pp.Space()
				}
				s.emitType(a)
			}
			s.pp.Word("]")
		}

	case *ast.BoxType:
		s.pp.Word("@")
		s.emitType(x.Elem)

	case *ast.RefType:
		s.pp.Word("&")
		s.emitType(x.Elem)

	case *ast.VecType:
		s.pp.Word("vec")
		s.pp.Word("[")
		s.emitType(x.Elem)
		s.pp.Word("]")

	case *ast.PortType:
		s.pp.Word("port")
		s.pp.Word("[")
		s.emitType(x.Elem)
		s.pp.Word("]")

	case *ast.ChanType:
		s.pp.Word("chan")
		s.pp.Word("[")
		s.emitType(x.Elem)
		s.pp.Word("]")

	case *ast.TupType:
		s.pp.Word("(")
		for i, e := range x.Elems {
			if i > 0 {
				s.pp.Word(",")
				s.pp.Space()
			}
			s.emitType(e)
		}
		s.pp.Word(")")

	case *ast.RecType:
		s.pp.Word("rec")
		s.pp.Space()
		s.pp.Word("{")
		s.pp.BeginInconsistent(IndentUnit)
		for _, f := range x.Fields {
			s.pp.Line()
			s.emitType(f.Type)
			s.pp.Space()
			s.emitName(f.Name)
			s.pp.Word(";")
		}
		s.pp.End()
		s.pp.Line()
		s.pp.Word("}")

	case *ast.FuncType:
		s.pp.Word("fn")
		s.pp.Word("(")
		for i, p := range x.Param {
			if i > 0 {
				s.pp.Word(",")
				s.pp.Space()
			}
			s.emitType(p)
		}
		s.pp.Word(")")
		if x.Return != nil {
			s.pp.Space()
			s.pp.Word("->")
			s.pp.Space()
			s.emitType(x.Return)
		}

	case *ast.ObjType:
		s.pp.Word("obj")
		s.pp.Space()
		s.pp.Word("{")
		s.pp.BeginInconsistent(IndentUnit)
		for _, m := range x.Methods {
			s.pp.Line()
			s.emitObjTypeMethod(m)
			s.pp.Word(";")
		}
		s.pp.End()
		s.pp.Line()
		s.pp.Word("}")

	default:
		fatalf("unknown type %T", t)
	}
}

// emitObjTypeMethod renders one `fn Name(Param...) [-> Return]` signature
// inside an ObjType: the same shape emitSignature renders for a FuncDecl,
// minus the body a declaration carries (a method signature here is never
// "pred", only "fn").
func (s *Session) emitObjTypeMethod(m *ast.ObjTypeMethod) {
	s.pp.Word("fn")
	s.pp.Space()
	s.emitName(m.Name)
	s.pp.Word("(")
	s.emitFieldList(m.Param)
	s.pp.Word(")")
	if m.Return != nil {
		s.pp.Space()
		s.pp.Word("->")
		s.pp.Space()
		s.emitType(m.Return)
	}
}
