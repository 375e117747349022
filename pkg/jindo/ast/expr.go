// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package ast

import (
	"jindo/pkg/jindo/position"
	"jindo/pkg/jindo/token"
)

type (
	Expr interface {
		Node
		aExpr()
	}

	// a placeholder for an expression no component could construct a
	// better node for
	BadExpr struct {
		Reason string
		expr
	}

	// an identifier, used both as an expression and wherever a bare name
	// is needed (declarations, fields, labels)
	Name struct {
		Value string
		expr
	}

	// a literal: int, float, rune, string, bool or nil
	BasicLit struct {
		Value string
		Kind  token.LitKind
		Bad   bool // true: Value has syntax errors
		expr
	}

	// Segments[0]::Segments[1]::...[TypeArgs]
	PathExpr struct {
		Segments []*Name
		TypeArgs []Type // nil means no explicit type arguments
		expr
	}

	// vec(Elems...)
	VecLit struct {
		Elems []*Elem
		expr
	}

	// tup(Elems...)
	TupLit struct {
		Elems []*Elem
		expr
	}

	// rec(Fields[0].Name=Fields[0].Value, ... [with With])
	RecLit struct {
		Fields []*RecLitField
		With   Expr // nil means no functional-update suffix
		expr
	}

	// X Op Y, a binary operation; or, with Y == nil, a unary "Op X"
	Operation struct {
		Op   token.Operator
		X, Y Expr
		expr
	}

	// X as Type
	CastExpr struct {
		X    Expr
		Type Type
		expr
	}

	// (X)
	ParenExpr struct {
		X Expr
		expr
	}

	// X.Sel
	SelectorExpr struct {
		X   Expr
		Sel *Name
		expr
	}

	// X.(Index)   (the historical dotted-index syntax)
	IndexExpr struct {
		X     Expr
		Index Expr
		expr
	}

	// Func(ArgList[0], ArgList[1], ...)
	CallExpr struct {
		Func    Expr
		ArgList []Expr // nil means no arguments
		expr
	}

	// bind Func(ArgList...) where a nil element of ArgList is a free `_` slot
	BindExpr struct {
		Func    Expr
		ArgList []Expr
		expr
	}

	// spawn Call   (the two leading bookkeeping fields of the reference
	// node are not surfaced here; they are ignored at print time there too)
	SpawnExpr struct {
		Call *CallExpr
		expr
	}

	// Port <| Value
	SendExpr struct {
		Port  Expr
		Value Expr
		expr
	}

	// Chan <- Value   (also used for a bare receive, Value == nil)
	RecvExpr struct {
		Chan  Expr
		Value Expr
		expr
	}

	// port()
	PortExpr struct {
		expr
	}

	// chan(Elem)
	ChanExpr struct {
		Elem Expr
		expr
	}

	// log Level, Args...   (Level 1 renders as `log`, Level 0 as `log_err`)
	LogExpr struct {
		Level int
		Args  []Expr
		expr
	}

	// check(Cond)
	CheckExpr struct {
		Cond Expr
		expr
	}

	// assert(Cond)
	AssertExpr struct {
		Cond Expr
		expr
	}

	// #Path(ArgList...) Body   (macro-extension call; Body rendering is
	// deferred, per spec §9 design notes — see DESIGN.md)
	ExtExpr struct {
		Path    *PathExpr
		ArgList []Expr
		Body    *BlockStmt
		expr
	}

	// obj(Fields...) { Methods }   (anonymous object; only the `obj`
	// keyword is rendered, body rendering deferred — see DESIGN.md)
	AnonObjExpr struct {
		Fields    []*RecLitField
		Methods   []*FuncDecl
		RbracePos position.Pos
		expr
	}

	FlowKind int

	// fail | break | cont | ret [Value] | put [Value] | be Value
	FlowExpr struct {
		Kind  FlowKind
		Value Expr // nil unless Kind is FlowRet or FlowPut (optional) or FlowBe (required)
		expr
	}
)

const (
	FlowFail FlowKind = iota
	FlowBreak
	FlowCont
	FlowRet
	FlowPut
	FlowBe
)

type expr struct{ node }

func (*expr) aExpr() {}

// Elem is one element of a VecLit or TupLit: a value, optionally marked
// mutable.
type Elem struct {
	Mutable bool
	Value   Expr
	node
}

// RecLitField is `Name=Value` inside a RecLit or AnonObjExpr, optionally
// marked mutable.
type RecLitField struct {
	Name    *Name
	Value   Expr
	Mutable bool
	node
}

// AltArm is one `Pat [if Guard] Body` arm of an alt, rendered as
// `case (Pat [if Guard]) Body`.
type AltArm struct {
	Pat   Pat
	Guard Expr // nil means no guard clause
	Body  *BlockStmt
	node
}
