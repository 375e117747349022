// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import (
	"testing"

	"jindo/pkg/jindo/ast"
	"jindo/pkg/jindo/token"

	"github.com/stretchr/testify/assert"
)

func renderExpr(e ast.Expr) string {
	return renderAt(DefaultColumns, func(s *Session) { s.emitExpr(e, 0) })
}

func renderType(ty ast.Type) string {
	return renderAt(DefaultColumns, func(s *Session) { s.emitType(ty) })
}

func renderPat(p ast.Pat) string {
	return renderAt(DefaultColumns, func(s *Session) { s.emitPat(p) })
}

func op(o token.Operator, x, y ast.Expr) *ast.Operation {
	n := &ast.Operation{Op: o, X: x, Y: y}
	n.SetSpan(ast.NewSpan(0, 0))
	return n
}

func nm(v string) *ast.Name {
	n := &ast.Name{Value: v}
	n.SetSpan(ast.NewSpan(0, 0))
	return n
}

func intLit(v string) *ast.BasicLit {
	n := &ast.BasicLit{Value: v, Kind: token.IntLit}
	n.SetSpan(ast.NewSpan(0, 0))
	return n
}

// Binary precedence: (1 + 2) * 3 must keep its explicit grouping, since
// dropping the parens would reorder evaluation to 1 + (2 * 3).
func Test_precedenceKeepsExplicitGroupingAroundLooserLeftOperand(t *testing.T) {
	tree := op(token.Mul, op(token.Add, intLit("1"), intLit("2")), intLit("3"))
	assert.Equal(t, "(1 + 2) * 3", renderExpr(tree))
}

// With the grouping on the right instead, the same rule applies in mirror:
// 1 * (2 + 3) must not collapse to 1 * 2 + 3.
func Test_precedenceKeepsExplicitGroupingAroundLooserRightOperand(t *testing.T) {
	tree := op(token.Mul, intLit("1"), op(token.Add, intLit("2"), intLit("3")))
	assert.Equal(t, "1 * (2 + 3)", renderExpr(tree))
}

// No parens are inserted when precedence alone already forces the intended
// evaluation order: 1 + 2 * 3 means 1 + (2 * 3) with or without them.
func Test_precedenceOmitsParensWhenOrderIsAlreadyUnambiguous(t *testing.T) {
	tree := op(token.Add, intLit("1"), op(token.Mul, intLit("2"), intLit("3")))
	assert.Equal(t, "1 + 2 * 3", renderExpr(tree))
}

// Same-precedence operators are left-associative; a right operand at equal
// precedence still needs parens to preserve grouping, but a left operand at
// equal precedence never does.
func Test_sameOperatorChainsWithoutParensOnTheLeft(t *testing.T) {
	tree := op(token.Sub, op(token.Sub, intLit("1"), intLit("2")), intLit("3"))
	assert.Equal(t, "1 - 2 - 3", renderExpr(tree))
}

func Test_sameOperatorNeedsParensOnTheRightToPreserveGrouping(t *testing.T) {
	tree := op(token.Sub, intLit("1"), op(token.Sub, intLit("2"), intLit("3")))
	assert.Equal(t, "1 - (2 - 3)", renderExpr(tree))
}

// A cast binds tighter than any binary operator but looser than a unary
// prefix, so `-x as T` already reads as `(-x) as T` and needs no parens.
func Test_castBindsLooserThanUnaryPrefix(t *testing.T) {
	neg := op(token.Sub, nm("x"), nil)
	tree := &ast.CastExpr{X: neg, Type: &ast.MachType{Name: "i64"}}
	tree.SetSpan(ast.NewSpan(0, 0))
	assert.Equal(t, "-x as i64", renderExpr(tree))
}

// Postfix positions (call target, field selector) must still parenthesize a
// lower-precedence operand: (a + b).field, not a + b.field.
func Test_selectorParenthesizesLowerPrecedenceOperand(t *testing.T) {
	sum := op(token.Add, nm("a"), nm("b"))
	sel := &ast.SelectorExpr{X: sum, Sel: nm("field")}
	sel.SetSpan(ast.NewSpan(0, 0))
	assert.Equal(t, "(a + b).field", renderExpr(sel))
}

func Test_callParenthesizesLowerPrecedenceCallee(t *testing.T) {
	sum := op(token.Add, nm("f"), nm("g"))
	call := &ast.CallExpr{Func: sum, ArgList: []ast.Expr{intLit("1")}}
	call.SetSpan(ast.NewSpan(0, 0))
	assert.Equal(t, "(f + g)(1)", renderExpr(call))
}

// A bind pattern renders with its leading `?` sigil, matching the grammar's
// own `?id` notation; dropping it would render indistinguishably from a
// plain name pattern.
func Test_bindPatRendersLeadingQuestionMark(t *testing.T) {
	pat := &ast.BindPat{Name: nm("r")}
	pat.SetSpan(ast.NewSpan(0, 0))
	assert.Equal(t, "?r", renderPat(pat))
}

// A boxed type renders with its `@` sigil.
func Test_boxTypeRendersAtSigil(t *testing.T) {
	ty := &ast.BoxType{Elem: &ast.MachType{Name: "i32"}}
	ty.SetSpan(ast.NewSpan(0, 0))
	assert.Equal(t, "@i32", renderType(ty))
}

// A vector type renders with its `vec` keyword, not bare brackets.
func Test_vecTypeRendersVecKeyword(t *testing.T) {
	ty := &ast.VecType{Elem: &ast.MachType{Name: "i32"}}
	ty.SetSpan(ast.NewSpan(0, 0))
	assert.Equal(t, "vec[i32]", renderType(ty))
}

// An object type renders each method signature on its own line, with the
// parameter list reusing the same alias/name shape as a FuncDecl's.
func Test_objTypeRendersMethodSignatures(t *testing.T) {
	ty := &ast.ObjType{
		Methods: []*ast.ObjTypeMethod{
			{
				Name:   nm("area"),
				Param:  nil,
				Return: &ast.MachType{Name: "f64"},
			},
			{
				Name: nm("scale"),
				Param: []*ast.Field{
					{Type: &ast.MachType{Name: "f64"}, Name: nm("factor")},
				},
			},
		},
	}
	ty.SetSpan(ast.NewSpan(0, 0))

	out := renderType(ty)
	assert.Contains(t, out, "fn area() -> f64;")
	assert.Contains(t, out, "fn scale(f64 factor);")
}

// A string literal escapes control characters and quotes when rendered.
func Test_stringLiteralRendersEscaped(t *testing.T) {
	lit := &ast.BasicLit{Value: "a\nb\"c", Kind: token.StringLit}
	lit.SetSpan(ast.NewSpan(0, 0))
	assert.Equal(t, `"a\nb\"c"`, renderExpr(lit))
}

// Vector and tuple literals render their element lists comma-separated.
func Test_vecLitRendersCommaSeparatedElements(t *testing.T) {
	vec := &ast.VecLit{Elems: []*ast.Elem{
		{Value: intLit("1")},
		{Value: intLit("2")},
		{Value: intLit("3")},
	}}
	vec.SetSpan(ast.NewSpan(0, 0))
	assert.Equal(t, "vec(1, 2, 3)", renderExpr(vec))
}

// A full module renders its view items ahead of its declarations, in order.
func Test_fileRendersViewItemsBeforeDeclarations(t *testing.T) {
	file := &ast.File{
		ViewItems: []ast.ViewItem{
			mustViewItem(&ast.UseDecl{Path: &ast.BasicLit{Value: "std::io", Kind: token.StringLit}}),
		},
		DeclList: []ast.Decl{
			mustDecl(&ast.ConstDecl{
				Name:  nm("limit"),
				Type:  &ast.MachType{Name: "i32"},
				Value: intLit("8"),
			}),
		},
	}
	file.SetSpan(ast.NewSpan(0, 0))

	out := renderAt(DefaultColumns, func(s *Session) { s.emitFile(file) })
	usePos := indexOf(out, "use")
	constPos := indexOf(out, "const")
	if assert.True(t, usePos >= 0 && constPos >= 0) {
		assert.True(t, usePos < constPos)
	}
}

func mustViewItem(v ast.ViewItem) ast.ViewItem {
	v.SetSpan(ast.NewSpan(0, 0))
	return v
}

func mustDecl(d ast.Decl) ast.Decl {
	d.SetSpan(ast.NewSpan(0, 0))
	return d
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
