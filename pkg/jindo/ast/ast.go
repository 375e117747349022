// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package ast declares the types used to represent a Jindo module: view
// items, declarations, statements, expressions, patterns and types. Every
// node carries a byte-offset Span rather than a single Pos, so the printer
// (pkg/jindo/printer) can recover original source extents for comment
// interleaving. Building the full grammar's parser is out of scope for this
// repository (see pkg/jindo/parser's doc comment), so trees here are either
// hand-built, the way a pretty-printer's own test fixtures ordinarily are,
// or produced by whatever partial parsing pkg/jindo/parser does grow.
package ast

import (
	"jindo/pkg/jindo/position"
)

// Node is implemented by every AST node.
type Node interface {
	Span() position.Span
	SetSpan(s position.Span)
	aNode()
}

type node struct {
	span position.Span
}

func (n *node) Span() position.Span     { return n.span }
func (n *node) SetSpan(s position.Span) { n.span = s }
func (*node) aNode()                    {}

// NewSpan builds a Span from two byte offsets, with no known file base —
// the constructor callers use when building trees directly rather than
// through a parser.
func NewSpan(lo, hi int) position.Span {
	return position.Span{
		Lo: position.MakePos(nil, lo, 0, 0),
		Hi: position.MakePos(nil, hi, 0, 0),
	}
}

// ----------------------------------------------------------------------------
// Module

// File is the root of a single compiled module: its view items (use/import/
// export) followed by its items.
type File struct {
	ViewItems []ViewItem
	DeclList  []Decl
	node
}

func NewName(span position.Span, value string) *Name {
	n := new(Name)
	n.span = span
	n.Value = value
	return n
}

// ----------------------------------------------------------------------------
// View items

type (
	ViewItem interface {
		Node
		aViewItem()
	}

	// use <path>;
	UseDecl struct {
		Path *BasicLit
		viewItem
	}

	// import [Group] <path>;
	ImportDecl struct {
		Group *Group // nil means not part of a group
		Path  *BasicLit
		viewItem
	}

	// export <path>;
	ExportDecl struct {
		Path *BasicLit
		viewItem
	}
)

type viewItem struct{ node }

func (*viewItem) aViewItem() {}

// ----------------------------------------------------------------------------
// Items

type (
	Decl interface {
		Node
		aDecl()
	}

	// [Group] const [Type] Name = Value;
	ConstDecl struct {
		Group *Group
		Name  *Name
		Type  Type // nil means no declared type
		Value Expr
		decl
	}

	// [Group] fn|pred Name[TypeParams](Param...) [-> Return] Body
	FuncDecl struct {
		Group      *Group
		IsPred     bool // true renders "pred" in place of "fn"
		Name       *Name
		TypeParams []*Name
		Param      []*Field
		Return     Type // nil means the nil type; the "-> Return" clause is omitted
		Body       *BlockStmt
		decl
	}

	// mod Name { DeclList }
	ModDecl struct {
		Name      *Name
		DeclList  []Decl
		RbracePos position.Pos
		decl
	}

	// native "ABI" mod Name { Natives }
	NativeModDecl struct {
		ABI       string // spelled exactly as written; see DESIGN.md Open Question 1
		Name      *Name
		Natives   []Decl // *NativeTypeDecl or *NativeFuncDecl
		RbracePos position.Pos
		decl
	}

	// type Name;  (inside a native mod: an opaque foreign type)
	NativeTypeDecl struct {
		Name *Name
		decl
	}

	// fn Name(Param...) -> Return ["LinkName"];  (inside a native mod)
	NativeFuncDecl struct {
		Name     *Name
		Param    []*Field
		Return   Type
		LinkName *BasicLit // nil means no explicit link name
		decl
	}

	// [Group] type Name[TypeParams] = Type;
	TypeDecl struct {
		Group      *Group
		Name       *Name
		TypeParams []*Name
		Type       Type
		decl
	}

	// tag Name[TypeParams] { Variants }
	TagDecl struct {
		Name       *Name
		TypeParams []*Name
		Variants   []*TagVariant
		RbracePos  position.Pos
		decl
	}

	// obj Name[TypeParams](Fields) { Methods [close Body] }
	ObjDecl struct {
		Name       *Name
		TypeParams []*Name
		Fields     []*Field
		Methods    []*FuncDecl
		Dtor       *BlockStmt // non-nil means a close destructor is present
		RbracePos  position.Pos
		decl
	}
)

type decl struct{ node }

func (*decl) aDecl() {}

// TagVariant is one arm of a TagDecl, e.g. `Some(int);` or a unit `None;`.
type TagVariant struct {
	Name *Name
	Args []Type // nil means a unit variant with no parenthesized payload
	node
}

// Group marks a run of adjacent declarations as sharing one keyword,
// mirroring Go's parenthesized declaration groups (`const (...)`). Distinct
// *Group values are never equal; a nil Group means "not grouped".
type Group struct {
	_ int
}

// ----------------------------------------------------------------------------
// Local declarations (inside a block)

// LocalDecl is `let Type Name [= Expr | <- Expr];` or, with Type == nil,
// `auto Name [= Expr | <- Expr];`. The printer picks the keyword from Type
// alone; Auto is not consulted.
type LocalDecl struct {
	Name  *Name
	Type  Type // nil means the type is inferred
	Auto  bool
	Init  Expr // nil means no initializer
	Recv  bool // true: `<-Expr` (receive-init) rather than `=Expr`
	node
}

// ----------------------------------------------------------------------------
// Statements

type (
	Stmt interface {
		Node
		aStmt()
	}

	// a bare expression, evaluated for effect
	ExprStmt struct {
		X Expr
		stmt
	}

	// a local or nested item declaration
	DeclStmt struct {
		Decl Node // *LocalDecl, or a Decl for a nested item
		stmt
	}

	// { StmtList [Trailing] }
	BlockStmt struct {
		StmtList  []Stmt
		Trailing  Expr // nil means the block has no trailing expression value
		RbracePos position.Pos
		stmt
	}
)

type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Fields (parameters, object/record fields)

// Field is `[&]Type Name` in a parameter list, or `Type Name` in an object's
// or record's field list. Name is nil for an anonymous parameter.
type Field struct {
	Name  *Name
	Type  Type
	Alias bool // true: `&Type Name`, by-reference/alias mode
	node
}
