// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package parser is the "parser adapter" pkg/jindo/printer leans on for the
// handful of grammar facts a printer needs that a lexer alone can't supply:
// operator precedence (for parenthesization) and which statement forms take
// a trailing semicolon. A full recursive-descent parser for the grammar
// (items, expressions, patterns) is out of scope for this repository — see
// pkg/jindo/ast's doc comment — so this package stays intentionally narrow.
package parser

import "jindo/pkg/jindo/token"

// Precedence reports the binding strength of a binary operator: higher
// binds tighter. Operators not in the table (and all unary operators) are
// not binary and have no precedence of their own; As (the cast operator)
// gets its own distinguished level via CastPrecedence.
func Precedence(op token.Operator) int {
	switch op {
	case token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.Eql, token.Neq, token.Lss, token.Leq, token.Gtr, token.Geq:
		return 3
	case token.Or:
		return 4
	case token.Xor:
		return 5
	case token.And, token.AndNot:
		return 6
	case token.Shl, token.Shr:
		return 7
	case token.Add, token.Sub:
		return 12
	case token.Mul, token.Div, token.Rem:
		return 13
	default:
		return 0
	}
}

// CastPrecedence is the precedence `as` binds at: tighter than any binary
// operator, since `x + y as T` always parses as `x + (y as T)`, but looser
// than a unary prefix operator, since `-x as T` parses as `(-x) as T`.
const CastPrecedence = 14

// UnaryPrecedence is the precedence a prefix unary operator (!, -, *) binds
// at: tighter than everything but a postfix operator (call, index, field
// selection), which the printer never parenthesizes at all.
const UnaryPrecedence = 15
