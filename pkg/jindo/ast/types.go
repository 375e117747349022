// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package ast

// Package ast's Type hierarchy is kept separate from Expr, the way the
// language this spec models kept `ty_*` nodes distinct from `expr_*` nodes:
// a type never needs to carry a runtime value, and the printer's
// parenthesization rules for the two differ (types never need operator
// precedence parens, only pointer/box sigils).
type (
	Type interface {
		Node
		aType()
	}

	// nil
	NilType struct {
		typ
	}

	// bool
	BoolType struct {
		typ
	}

	// char
	CharType struct {
		typ
	}

	// str
	StrType struct {
		typ
	}

	// int, uint, float, or a sized machine type (i8, u32, f64, ...)
	MachType struct {
		Name string
		typ
	}

	// a named type, possibly qualified (Pkg.Name) and/or instantiated
	// (Name[Args...])
	PathType struct {
		X    Expr // *Name or *SelectorExpr
		Args []Type
		typ
	}

	// @Elem   (boxed/owned pointer)
	BoxType struct {
		Elem Type
		typ
	}

	// &Elem   (borrowed reference)
	RefType struct {
		Elem Type
		typ
	}

	// vec[Elem]
	VecType struct {
		Elem Type
		typ
	}

	// port[Elem]
	PortType struct {
		Elem Type
		typ
	}

	// chan[Elem]
	ChanType struct {
		Elem Type
		typ
	}

	// (Elems[0], Elems[1], ...)   (tuple type, len(Elems) != 1)
	TupType struct {
		Elems []Type
		typ
	}

	// rec { Fields[0].Type Fields[0].Name; ... }
	RecType struct {
		Fields []*Field
		typ
	}

	// fn(Param...) [-> Return]
	FuncType struct {
		Param  []Type
		Return Type // nil means the nil type
		typ
	}

	// obj { Methods[0]; Methods[1]; ... }   (a structural object type:
	// no fields, just the method signatures an implementor must provide)
	ObjType struct {
		Methods []*ObjTypeMethod
		typ
	}
)

// ObjTypeMethod is one `fn Name(Param...) [-> Return];` signature inside an
// ObjType.
type ObjTypeMethod struct {
	Name   *Name
	Param  []*Field
	Return Type // nil means the nil type; the "-> Return" clause is omitted
	node
}

type typ struct{ node }

func (*typ) aType() {}
