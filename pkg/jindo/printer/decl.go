// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import "jindo/pkg/jindo/ast"

// emitFile renders a module: view items, a soft line break, items, then
// whatever comments never attached to a node.
func (s *Session) emitFile(f *ast.File) {
	for _, vi := range f.ViewItems {
		s.emitViewItem(vi)
	}
	if len(f.ViewItems) > 0 {
		s.pp.Line()
	}
	for _, d := range f.DeclList {
		s.emitItem(d)
	}
	s.printRemainingComments()
}

func (s *Session) emitViewItem(vi ast.ViewItem) {
	s.maybePrintComment(vi.Span().Lo.Offset())
	switch v := vi.(type) {
	case *ast.UseDecl:
		s.pp.Word("use")
		s.pp.Space()
		s.pp.Word(v.Path.Value)
		s.pp.Word(";")
	case *ast.ImportDecl:
		s.pp.Word("import")
		s.pp.Space()
		s.pp.Word(v.Path.Value)
		s.pp.Word(";")
	case *ast.ExportDecl:
		s.pp.Word("export")
		s.pp.Space()
		s.pp.Word(v.Path.Value)
		s.pp.Word(";")
	default:
		fatalf("unknown view item %T", vi)
	}
	s.pp.HardBreak()
}

// emitItem is the item wrapper shared by every top level declaration:
// comment injection, an indented group, the body, then two soft line
// breaks to visually separate items.
func (s *Session) emitItem(d ast.Decl) {
	s.maybePrintComment(d.Span().Lo.Offset())
	s.pp.BeginInconsistent(IndentUnit)
	s.emitItemBody(d)
	s.pp.End()
	s.pp.Line()
	s.pp.Line()
}

func (s *Session) emitItemBody(d ast.Decl) {
	switch decl := d.(type) {
	case *ast.ConstDecl:
		s.pp.Word("const")
		s.pp.Space()
		if decl.Type != nil {
			s.emitType(decl.Type)
			s.pp.Space()
		}
		s.emitName(decl.Name)
		s.pp.Space()
		s.pp.Word("=")
		s.pp.Space()
		s.emitExpr(decl.Value, 0)
		s.pp.Word(";")

	case *ast.FuncDecl:
		s.emitSignature(decl)
		s.pp.Space()
		s.emitBlock(decl.Body)

	case *ast.ModDecl:
		s.pp.Word("mod")
		s.pp.Space()
		s.emitName(decl.Name)
		s.pp.Space()
		s.pp.Word("{")
		s.pp.BeginInconsistent(IndentUnit)
		for _, nested := range decl.DeclList {
			s.pp.Line()
			s.emitItem(nested)
		}
		s.pp.End()
		s.pp.Line()
		s.maybePrintComment(decl.RbracePos.Offset())
		s.pp.Word("}")

	case *ast.NativeModDecl:
		s.pp.Word("native")
		s.pp.Space()
		s.pp.Word(escapeString(decl.ABI))
		s.pp.Space()
		s.pp.Word("mod")
		s.pp.Space()
		s.emitName(decl.Name)
		s.pp.Space()
		s.pp.Word("{")
		s.pp.BeginInconsistent(IndentUnit)
		for _, nested := range decl.Natives {
			s.pp.Line()
			s.emitNativeItem(nested)
		}
		s.pp.End()
		s.pp.Line()
		s.maybePrintComment(decl.RbracePos.Offset())
		s.pp.Word("}")

	case *ast.TypeDecl:
		s.pp.Word("type")
		s.pp.Space()
		s.emitName(decl.Name)
		s.emitTypeParams(decl.TypeParams)
		s.pp.Space()
		s.pp.Word("=")
		s.pp.Space()
		s.emitType(decl.Type)
		s.pp.Word(";")

	case *ast.TagDecl:
		s.pp.Word("tag")
		s.pp.Space()
		s.emitName(decl.Name)
		s.emitTypeParams(decl.TypeParams)
		s.pp.Space()
		s.pp.Word("{")
		s.pp.BeginInconsistent(IndentUnit)
		for _, v := range decl.Variants {
			s.pp.Line()
			s.emitTagVariant(v)
		}
		s.pp.End()
		s.pp.Line()
		s.maybePrintComment(decl.RbracePos.Offset())
		s.pp.Word("}")

	case *ast.ObjDecl:
		s.pp.Word("obj")
		s.pp.Space()
		s.emitName(decl.Name)
		s.emitTypeParams(decl.TypeParams)
		s.pp.Word("(")
		s.emitFieldList(decl.Fields)
		s.pp.Word(")")
		s.pp.Space()
		s.pp.Word("{")
		s.pp.BeginInconsistent(IndentUnit)
		for _, m := range decl.Methods {
			s.pp.Line()
			s.emitItem(m)
		}
		if decl.Dtor != nil {
			s.pp.Line()
			s.pp.Word("close")
			s.pp.Space()
			s.emitBlock(decl.Dtor)
		}
		s.pp.End()
		s.pp.Line()
		s.maybePrintComment(decl.RbracePos.Offset())
		s.pp.Word("}")

	default:
		fatalf("unknown item %T", d)
	}
}

func (s *Session) emitNativeItem(d ast.Decl) {
	s.maybePrintComment(d.Span().Lo.Offset())
	switch n := d.(type) {
	case *ast.NativeTypeDecl:
		s.pp.Word("type")
		s.pp.Space()
		s.emitName(n.Name)
		s.pp.Word(";")
	case *ast.NativeFuncDecl:
		s.pp.Word("fn")
		s.pp.Space()
		s.emitName(n.Name)
		s.pp.Word("(")
		s.emitFieldList(n.Param)
		s.pp.Word(")")
		if n.Return != nil {
			s.pp.Space()
			s.pp.Word("->")
			s.pp.Space()
			s.emitType(n.Return)
		}
		if n.LinkName != nil {
			s.pp.Space()
			s.pp.Word(escapeString(n.LinkName.Value))
		}
		s.pp.Word(";")
	default:
		fatalf("unknown native item %T", d)
	}
}

func (s *Session) emitTagVariant(v *ast.TagVariant) {
	s.maybePrintComment(v.Span().Lo.Offset())
	s.emitName(v.Name)
	if v.Args != nil {
		s.pp.Word("(")
		for i, t := range v.Args {
			if i > 0 {
				s.pp.Word(",")
				s.pp.Space()
			}
			s.emitType(t)
		}
		s.pp.Word(")")
	}
	s.pp.Word(";")
	if !s.maybePrintLineComment(v.Span().Hi.Offset()) {
		s.pp.Line()
	}
}

func (s *Session) emitTypeParams(params []*ast.Name) {
	if len(params) == 0 {
		return
	}
	s.pp.Word("[")
	for i, p := range params {
		if i > 0 {
			s.pp.Word(",")
			s.pp.Space()
		}
		s.emitName(p)
	}
	s.pp.Word("]")
}

func (s *Session) emitFieldList(fields []*ast.Field) {
	for i, f := range fields {
		if i > 0 {
			s.pp.Word(",")
			s.pp.Space()
		}
		s.emitField(f)
	}
}

func (s *Session) emitField(f *ast.Field) {
	if f.Alias {
		s.pp.Word("&")
	}
	s.emitType(f.Type)
	if f.Name != nil {
		s.pp.Space()
		s.emitName(f.Name)
	}
}

func (s *Session) emitName(n *ast.Name) { s.pp.Word(n.Value) }
