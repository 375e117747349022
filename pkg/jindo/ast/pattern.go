// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package ast

// Pat is a pattern, as it appears in an AltArm, a LocalDecl's binding
// position, or a function parameter destructuring.
type (
	Pat interface {
		Node
		aPat()
	}

	// _   (matches anything, binds nothing)
	WildPat struct {
		pat
	}

	// ?Name   (binds the matched value to Name)
	BindPat struct {
		Name *Name
		pat
	}

	// a literal pattern: 0, "s", 'c', true, nil
	LitPat struct {
		Lit *BasicLit
		pat
	}

	// Tag[.Variant][(Elems...)]   (tag variant pattern)
	TagPat struct {
		Path  Expr // *Name or *SelectorExpr
		Elems []Pat
		pat
	}

	// (Elems[0], Elems[1], ...)
	TupPat struct {
		Elems []Pat
		pat
	}

	// Type { Fields[0].Name: Fields[0].Pat, ... }
	RecPat struct {
		Type   Type // nil means the type is inferred
		Fields []*RecPatField
		pat
	}

	// Lo ... Hi   (inclusive range pattern)
	RangePat struct {
		Lo, Hi *BasicLit
		pat
	}
)

type pat struct{ node }

func (*pat) aPat() {}

// RecPatField is `Name: Pat` inside a RecPat.
type RecPatField struct {
	Name *Name
	Pat  Pat
	node
}
