// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import (
	"jindo/pkg/jindo/ast"
	"jindo/pkg/jindo/common"
	"jindo/pkg/jindo/parser"
	"jindo/pkg/jindo/token"
)

// exprPrec reports the precedence an expression binds at, for
// parenthesization purposes: a binary Operation's own operator precedence,
// a cast's CastPrecedence, and the maximum (never parenthesized) for
// everything else.
func exprPrec(e ast.Expr) int {
	switch x := e.(type) {
	case *ast.Operation:
		if x.Y != nil {
			return parser.Precedence(x.Op)
		}
		return parser.UnaryPrecedence
	case *ast.CastExpr:
		return parser.CastPrecedence
	default:
		return parser.UnaryPrecedence + 1
	}
}

// maybeParens wraps e in parentheses iff its own precedence is lower than
// outerPrec, per §4.4: `print_maybe_parens`.
func (s *Session) maybeParens(e ast.Expr, outerPrec int) {
	if exprPrec(e) < outerPrec {
		s.pp.Word("(")
		s.emitExpr(e, 0)
		s.pp.Word(")")
	} else {
		s.emitExpr(e, outerPrec)
	}
}

// emitExpr renders e. outerPrec is the precedence context e appears in; no
// case reads it: whether e itself needs parens is decided by maybeParens
// before this function is reached, and *ast.Operation and *ast.CastExpr
// parenthesize their own operands from their own precedence.
func (s *Session) emitExpr(e ast.Expr, outerPrec int) {
	s.maybePrintComment(e.Span().Lo.Offset())
	switch x := e.(type) {
	case *ast.BadExpr:
		s.pp.Word("/* bad expr: " + x.Reason + " */")

	case *ast.Name:
		s.pp.Word(x.Value)

	case *ast.BasicLit:
		s.emitBasicLit(x)

	case *ast.PathExpr:
		for i, seg := range x.Segments {
			if i > 0 {
				s.pp.Word("::")
			}
			s.emitName(seg)
		}
		if len(x.TypeArgs) > 0 {
			s.pp.Word("[")
			for i, t := range x.TypeArgs {
				if i > 0 {
					s.pp.Word(",")
					s.pp.Space()
				}
				s.emitType(t)
			}
			s.pp.Word("]")
		}

	case *ast.VecLit:
		s.pp.Word("vec")
		s.pp.Word("(")
		s.emitElemList(x.Elems)
		s.pp.Word(")")

	case *ast.TupLit:
		s.pp.Word("tup")
		s.pp.Word("(")
		s.emitElemList(x.Elems)
		s.pp.Word(")")

	case *ast.RecLit:
		s.pp.Word("rec")
		s.pp.Word("(")
		s.emitRecFieldList(x.Fields)
		if x.With != nil {
			if len(x.Fields) > 0 {
				s.pp.Space()
			}
			s.pp.Word("with")
			s.pp.Space()
			s.emitExpr(x.With, 0)
		}
		s.pp.Word(")")

	case *ast.Operation:
		s.emitOperation(x)

	case *ast.CastExpr:
		s.maybeParens(x.X, parser.CastPrecedence)
		s.pp.Space()
		s.pp.Word("as")
		s.pp.Space()
		s.emitType(x.Type)

	case *ast.ParenExpr:
		s.pp.Word("(")
		s.emitExpr(x.X, 0)
		s.pp.Word(")")

	case *ast.SelectorExpr:
		s.maybeParens(x.X, parser.UnaryPrecedence+1)
		s.pp.Word(".")
		s.emitName(x.Sel)

	case *ast.IndexExpr:
		// historical dotted-index syntax: e.(i)
		s.maybeParens(x.X, parser.UnaryPrecedence+1)
		s.pp.Word(".(")
		s.emitExpr(x.Index, 0)
		s.pp.Word(")")

	case *ast.CallExpr:
		s.maybeParens(x.Func, parser.UnaryPrecedence+1)
		s.pp.Word("(")
		for i, a := range x.ArgList {
			if i > 0 {
				s.pp.Word(",")
				s.pp.Space()
			}
			s.emitExpr(a, 0)
		}
		s.pp.Word(")")

	case *ast.BindExpr:
		s.pp.Word("bind")
		s.pp.Space()
		s.maybeParens(x.Func, parser.UnaryPrecedence+1)
		s.pp.Word("(")
		for i, a := range x.ArgList {
			if i > 0 {
				s.pp.Word(",")
				s.pp.Space()
			}
			if a == nil {
				s.pp.Word("_")
			} else {
				s.emitExpr(a, 0)
			}
		}
		s.pp.Word(")")

	case *ast.SpawnExpr:
		s.pp.Word("spawn")
		s.pp.Space()
		s.emitExpr(x.Call, 0)

	case *ast.SendExpr:
		s.maybeParens(x.Port, parser.Precedence(token.Or)+1)
		s.pp.Space()
		s.pp.Word("<|")
		s.pp.Space()
		s.emitExpr(x.Value, 0)

	case *ast.RecvExpr:
		if x.Value == nil {
			s.pp.Word("<-")
			s.pp.Space()
			s.emitExpr(x.Chan, 0)
		} else {
			s.maybeParens(x.Chan, parser.Precedence(token.Or)+1)
			s.pp.Space()
			s.pp.Word("<-")
			s.pp.Space()
			s.emitExpr(x.Value, 0)
		}

	case *ast.PortExpr:
		s.pp.Word("port()")

	case *ast.ChanExpr:
		s.pp.Word("chan")
		s.pp.Word("(")
		s.emitExpr(x.Elem, 0)
		s.pp.Word(")")

	case *ast.LogExpr:
		if x.Level == 1 {
			s.pp.Word("log")
		} else {
			s.pp.Word("log_err")
		}
		for _, a := range x.Args {
			s.pp.Space()
			s.emitExpr(a, 0)
		}

	case *ast.CheckExpr:
		s.pp.Word("check")
		s.pp.Word("(")
		s.emitExpr(x.Cond, 0)
		s.pp.Word(")")

	case *ast.AssertExpr:
		s.pp.Word("assert")
		s.pp.Word("(")
		s.emitExpr(x.Cond, 0)
		s.pp.Word(")")

	case *ast.ExtExpr:
		s.pp.Word("#")
		s.maybeParens(x.Path, parser.UnaryPrecedence+1)
		s.pp.Word("(")
		for i, a := range x.ArgList {
			if i > 0 {
				s.pp.Word(",")
				s.pp.Space()
			}
			s.emitExpr(a, 0)
		}
		s.pp.Word(")")
		// body rendering deferred, see DESIGN.md

	case *ast.AnonObjExpr:
		s.pp.Word("obj")
		// body rendering deferred, see DESIGN.md

	case *ast.FlowExpr:
		s.emitFlow(x)

	default:
		fatalf("unknown expression %T", e)
	}
}

func (s *Session) emitBasicLit(x *ast.BasicLit) {
	switch x.Kind {
	case token.StringLit:
		s.pp.Word(escapeString(x.Value))
	case token.RuneLit:
		if r := []rune(x.Value); len(r) > 0 {
			s.pp.Word(escapeChar(r[0]))
		} else {
			s.pp.Word("''")
		}
	default:
		s.pp.Word(x.Value)
	}
}

func (s *Session) emitOperation(x *ast.Operation) {
	if x.Y == nil {
		s.pp.Word(common.UnOpToString(x.Op))
		s.maybeParens(x.X, parser.UnaryPrecedence)
		return
	}
	prec := parser.Precedence(x.Op)
	// left operand: parens iff strictly lower precedence; right operand:
	// parens iff lower-or-equal, per §4.4's left-associative tie-break.
	s.maybeParens(x.X, prec)
	s.pp.Space()
	s.pp.Word(common.BinOpToString(x.Op))
	s.pp.Space()
	s.maybeParens(x.Y, prec+1)
}

func (s *Session) emitFlow(x *ast.FlowExpr) {
	switch x.Kind {
	case ast.FlowFail:
		s.pp.Word("fail")
	case ast.FlowBreak:
		s.pp.Word("break")
	case ast.FlowCont:
		s.pp.Word("cont")
	case ast.FlowRet:
		s.pp.Word("ret")
		if x.Value != nil {
			s.pp.Space()
			s.emitExpr(x.Value, 0)
		}
	case ast.FlowPut:
		s.pp.Word("put")
		if x.Value != nil {
			s.pp.Space()
			s.emitExpr(x.Value, 0)
		}
	case ast.FlowBe:
		s.pp.Word("be")
		s.pp.Space()
		s.emitExpr(x.Value, 0)
	default:
		fatalf("unknown flow kind %d", x.Kind)
	}
}

func (s *Session) emitElemList(elems []*ast.Elem) {
	for i, e := range elems {
		if i > 0 {
			s.pp.Word(",")
			s.pp.Space()
		}
		if e.Mutable {
			s.pp.Word("mutable")
			s.pp.Space()
		}
		s.emitExpr(e.Value, 0)
	}
}

func (s *Session) emitRecFieldList(fields []*ast.RecLitField) {
	for i, f := range fields {
		if i > 0 {
			s.pp.Word(",")
			s.pp.Space()
		}
		if f.Mutable {
			s.pp.Word("mutable")
			s.pp.Space()
		}
		s.emitName(f.Name)
		s.pp.Word("=")
		s.emitExpr(f.Value, 0)
	}
}
