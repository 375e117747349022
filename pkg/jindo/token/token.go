// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package token defines the lexical tokens, literal kinds and binary/unary
// operators shared by the scanner, the (stubbed) parser, and the printer.
package token

// Token enumerates the lexical token kinds the scanner reports. It stays
// deliberately small: the printer emits most keywords as literal words
// rather than routing them through Token, since lexing the full grammar the
// spec describes is out of scope for this repository (see pkg/jindo/parser's
// doc comment).
type Token uint8

type token = Token

const (
	_   token = iota
	EOF       // end of file

	// names and literals
	Name    // identifier
	Literal // int/float/rune/string literal

	// operators and operations
	// Operator is excluding '*' (Star)
	Op       // operator, value in Scanner.Op()
	AssignOp // op=
	IncOp    // ++ or --
	Assign   // =
	Define   // :=
	Star     // *

	// delimiters
	Lparen    // (
	Lbrack    // [
	Lbrace    // {
	Rparen    // )
	Rbrack    // ]
	Rbrace    // }
	Comma     // ,
	Semi      // ;
	Colon     // :
	Dot       // .
	DotDotDot // ...

	// keywords the Scanner recognizes; the full keyword surface of the
	// spec's grammar (tag, obj, alt, ...) is emitted directly as words by
	// the printer rather than scanned, see above.
	keyword_beg
	Break
	Const
	Continue
	While
	Else
	For
	Func
	If
	Import
	Space
	Return
	Type
	Var
	Oper
	keyword_end

	tokenCount
)

func (t token) IsKeyword() bool { return t > keyword_beg && t < keyword_end }

// Make sure we have at most 64 tokens so callers may use a bitset.
const _ uint64 = 1 << (tokenCount - 1)

// Contains reports whether tok is in tokset.
func Contains(tokset uint64, tok token) bool {
	return tokset&(1<<tok) != 0
}

// LitKind distinguishes the kinds of literal a Literal token can carry.
type LitKind uint8

// TODO(gri) With the 'i' (imaginary) suffix now permitted on integer
// and floating-point numbers, having a single ImagLit does
// not represent the literal kind well anymore. Remove it?
const (
	IntLit LitKind = iota
	FloatLit
	ImagLit
	RuneLit
	StringLit
)

func (k LitKind) String() string {
	switch k {
	case IntLit:
		return "int"
	case FloatLit:
		return "float"
	case ImagLit:
		return "imag"
	case RuneLit:
		return "rune"
	case StringLit:
		return "string"
	default:
		return "?lit?"
	}
}

// Operator enumerates binary and unary operators plus the distinguished
// cast operator `as`. Precedence lives in pkg/jindo/parser (the "parser
// adapter" named in spec §6) rather than here, keeping token identity
// separate from grammar-level precedence knowledge.
type Operator uint8

const (
	NoneOp Operator = iota

	// binary
	OrOr
	AndAnd
	Eql
	Neq
	Lss
	Leq
	Gtr
	Geq
	Add
	Sub
	Mul
	Div
	Rem
	Or
	Xor
	And
	AndNot
	Shl
	Shr

	// unary
	Not
	Neg
	Deref

	// distinguished: spec §4.4 calls out cast as having its own
	// precedence, handled alongside binary operators for parenthesization.
	As

	operatorCount
)

func (op Operator) IsBinary() bool {
	return op >= OrOr && op <= Shr
}

func (op Operator) IsUnary() bool {
	return op == Not || op == Neg || op == Deref
}
