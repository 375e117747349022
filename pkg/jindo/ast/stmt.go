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

// SimpleStmt is the subset of Stmt legal in a for-loop's init/post clause.
type SimpleStmt interface {
	Stmt
	aSimpleStmt()
}

type simpleStmt struct{ stmt }

func (*simpleStmt) aSimpleStmt() {}

type (
	// Lhs++ or Lhs--
	IncDecStmt struct {
		X   Expr
		Op  token.Operator // Add or Sub
		simpleStmt
	}

	// Lhs := Rhs
	DefineStmt struct {
		Lhs Expr
		Rhs Expr
		simpleStmt
	}

	// Lhs = Rhs, or Lhs op= Rhs when Op != NoneOp
	AssignStmt struct {
		Lhs Expr
		Op  token.Operator
		Rhs Expr
		simpleStmt
	}

	// if Cond Block [else Else]
	IfStmt struct {
		Cond  Expr
		Block *BlockStmt
		Else  Stmt // *IfStmt or *BlockStmt; nil means no else clause
		stmt
	}

	// while Cond Body
	WhileStmt struct {
		Cond Expr
		Body *BlockStmt
		stmt
	}

	// for Init; Cond; Post Body
	ForStmt struct {
		Init SimpleStmt // nil means no init clause
		Cond Expr       // nil means no condition (loop forever)
		Post SimpleStmt // nil means no post clause
		Body *BlockStmt
		stmt
	}

	// for Var in Iter Body
	ForEachStmt struct {
		Var  *Name
		Iter Expr
		Body *BlockStmt
		stmt
	}

	// do Body while Cond
	DoWhileStmt struct {
		Body *BlockStmt
		Cond Expr
		stmt
	}

	// alt Subject { Arms }
	AltStmt struct {
		Subject   Expr
		Arms      []*AltArm
		RbracePos position.Pos
		stmt
	}
)
