// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import (
	"jindo/pkg/jindo/ast"
	"jindo/pkg/jindo/parser"
	"jindo/pkg/jindo/position"
	"jindo/pkg/jindo/token"
)

func (s *Session) emitBlock(b *ast.BlockStmt) {
	s.pp.Word("{")
	s.pp.BeginInconsistent(IndentUnit)
	for _, stmt := range b.StmtList {
		s.pp.Line()
		s.emitStmt(stmt)
	}
	if b.Trailing != nil {
		s.pp.Line()
		s.maybePrintComment(b.Trailing.Span().Lo.Offset())
		s.emitExpr(b.Trailing, 0)
		if !s.maybePrintLineComment(b.Trailing.Span().Hi.Offset()) {
			s.pp.Line()
		}
	}
	s.pp.End()
	if len(b.StmtList) > 0 || b.Trailing != nil {
		s.pp.Line()
	}
	s.maybePrintComment(b.RbracePos.Offset())
	s.pp.Word("}")
}

func (s *Session) emitStmt(st ast.Stmt) {
	s.maybePrintComment(st.Span().Lo.Offset())
	s.emitStmtBody(st)
	if parser.StmtEndsWithSemi(st) {
		s.pp.Word(";")
	}
	if !s.maybePrintLineComment(st.Span().Hi.Offset()) {
		s.pp.Line()
	}
}

func (s *Session) emitStmtBody(st ast.Stmt) {
	switch n := st.(type) {
	case *ast.ExprStmt:
		s.emitExpr(n.X, 0)

	case *ast.DeclStmt:
		switch d := n.Decl.(type) {
		case *ast.LocalDecl:
			s.emitLocalDecl(d)
		case ast.Decl:
			s.emitItemBody(d)
		default:
			fatalf("unknown declaration statement payload %T", n.Decl)
		}

	case *ast.IncDecStmt:
		s.emitExpr(n.X, 0)
		if n.Op == token.Add {
			s.pp.Word("++")
		} else {
			s.pp.Word("--")
		}

	case *ast.DefineStmt:
		s.emitExpr(n.Lhs, 0)
		s.pp.Space()
		s.pp.Word(":=")
		s.pp.Space()
		s.emitExpr(n.Rhs, 0)

	case *ast.AssignStmt:
		s.emitExpr(n.Lhs, 0)
		s.pp.Space()
		if n.Op == token.NoneOp {
			s.pp.Word("=")
		} else {
			s.pp.Word(n.Op.String() + "=")
		}
		s.pp.Space()
		s.emitExpr(n.Rhs, 0)

	case *ast.IfStmt:
		s.emitIf(n)

	case *ast.WhileStmt:
		s.pp.BeginInconsistent(0)
		s.pp.Word("while")
		s.pp.Space()
		s.pp.Word("(")
		s.emitExpr(n.Cond, 0)
		s.pp.Word(")")
		s.pp.End()
		s.pp.Space()
		s.emitBlock(n.Body)

	case *ast.ForStmt:
		s.pp.BeginInconsistent(0)
		s.pp.Word("for")
		s.pp.Space()
		s.pp.Word("(")
		if n.Init != nil {
			s.emitStmtBody(n.Init)
		}
		s.pp.Word(";")
		s.pp.Space()
		if n.Cond != nil {
			s.emitExpr(n.Cond, 0)
		}
		s.pp.Word(";")
		s.pp.Space()
		if n.Post != nil {
			s.emitStmtBody(n.Post)
		}
		s.pp.Word(")")
		s.pp.End()
		s.pp.Space()
		s.emitBlock(n.Body)

	case *ast.ForEachStmt:
		s.pp.BeginInconsistent(0)
		s.pp.Word("for")
		s.pp.Space()
		s.pp.Word("(")
		s.emitName(n.Var)
		s.pp.Space()
		s.pp.Word("in")
		s.pp.Space()
		s.emitExpr(n.Iter, 0)
		s.pp.Word(")")
		s.pp.End()
		s.pp.Space()
		s.emitBlock(n.Body)

	case *ast.DoWhileStmt:
		s.pp.Word("do")
		s.pp.Space()
		s.emitBlock(n.Body)
		s.pp.Space()
		s.pp.Word("while")
		s.pp.Space()
		s.pp.Word("(")
		s.emitExpr(n.Cond, 0)
		s.pp.Word(")")

	case *ast.AltStmt:
		s.emitAlt(n.Subject, n.Arms, n.RbracePos)

	case *ast.BlockStmt:
		s.emitBlock(n)

	default:
		fatalf("unknown statement %T", st)
	}
}

func (s *Session) emitIf(n *ast.IfStmt) {
	s.pp.BeginInconsistent(0)
	s.pp.Word("if")
	s.pp.Space()
	s.pp.Word("(")
	s.emitExpr(n.Cond, 0)
	s.pp.Word(")")
	s.pp.End()
	s.pp.Space()
	s.emitBlock(n.Block)
	if n.Else != nil {
		s.pp.Space()
		s.pp.Word("else")
		s.pp.Space()
		switch e := n.Else.(type) {
		case *ast.IfStmt:
			s.emitIf(e)
		case *ast.BlockStmt:
			s.emitBlock(e)
		default:
			fatalf("unknown else clause %T", n.Else)
		}
	}
}

func (s *Session) emitLocalDecl(d *ast.LocalDecl) {
	if d.Type != nil {
		s.pp.Word("let")
		s.pp.Space()
		s.emitType(d.Type)
	} else {
		s.pp.Word("auto")
	}
	s.pp.Space()
	s.emitName(d.Name)
	if d.Init != nil {
		s.pp.Space()
		if d.Recv {
			s.pp.Word("<-")
		} else {
			s.pp.Word("=")
		}
		s.pp.Space()
		s.emitExpr(d.Init, 0)
	}
}

func (s *Session) emitAlt(subject ast.Expr, arms []*ast.AltArm, rbrace position.Pos) {
	s.pp.Word("alt")
	s.pp.Space()
	s.emitExpr(subject, 0)
	s.pp.Space()
	s.pp.Word("{")
	s.pp.BeginInconsistent(IndentUnit)
	for _, arm := range arms {
		s.pp.Line()
		s.pp.Word("case")
		s.pp.Space()
		s.pp.Word("(")
		s.emitPat(arm.Pat)
		if arm.Guard != nil {
			s.pp.Space()
			s.pp.Word("if")
			s.pp.Space()
			s.emitExpr(arm.Guard, 0)
		}
		s.pp.Word(")")
		s.pp.Space()
		s.emitBlock(arm.Body)
	}
	s.pp.End()
	s.pp.Line()
	s.maybePrintComment(rbrace.Offset())
	s.pp.Word("}")
}
