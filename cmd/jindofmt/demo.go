// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package main

import (
	"jindo/pkg/jindo/ast"
	"jindo/pkg/jindo/token"
)

var zeroSpan = ast.NewSpan(0, 0)

// sp stamps a zero span on a freshly built node and returns it, so every
// constructor call below can stay a one-liner; the demo module is never
// printed with comment interleaving, so real spans would carry no meaning.
func sp[T ast.Node](n T) T {
	n.SetSpan(zeroSpan)
	return n
}

func name(v string) *ast.Name { return ast.NewName(zeroSpan, v) }

func lit(v string, k token.LitKind) *ast.BasicLit {
	return sp(&ast.BasicLit{Value: v, Kind: k})
}

func intLit(v string) *ast.BasicLit    { return lit(v, token.IntLit) }
func strLit(v string) *ast.BasicLit    { return lit(v, token.StringLit) }

// demoModule builds a hand-authored module, the way a pretty-printer's own
// fixture tree ordinarily would: view items, one of each item kind except
// `mod`, and a sample of statement, expression, pattern and type forms.
// Many expression kinds (bind, send, receive, rec, tup, index, ...) do not
// appear in it.
func demoModule() *ast.File {
	f := &ast.File{
		ViewItems: []ast.ViewItem{
			sp(&ast.UseDecl{Path: strLit("std::io")}),
			sp(&ast.ImportDecl{Path: strLit("vec")}),
			sp(&ast.ExportDecl{Path: strLit("Shape")}),
		},
		DeclList: []ast.Decl{
			demoConst(),
			demoNativeMod(),
			demoTypeAlias(),
			demoTag(),
			demoObj(),
			demoFunc(),
		},
	}
	return sp(f)
}

func demoConst() ast.Decl {
	return sp(&ast.ConstDecl{
		Type:  sp(&ast.MachType{Name: "i32"}),
		Name:  name("max_retries"),
		Value: intLit("8"),
	})
}

func demoNativeMod() ast.Decl {
	return sp(&ast.NativeModDecl{
		ABI:  "rust-intrinstic",
		Name: name("rt"),
		Natives: []ast.Decl{
			sp(&ast.NativeTypeDecl{Name: name("handle_t")}),
			sp(&ast.NativeFuncDecl{
				Name: name("abort"),
				Param: []*ast.Field{
					{Name: name("code"), Type: sp(&ast.MachType{Name: "i32"})},
				},
				Return:   sp(&ast.NilType{}),
				LinkName: strLit("rt_abort"),
			}),
		},
	})
}

func demoTypeAlias() ast.Decl {
	return sp(&ast.TypeDecl{
		Name: name("Pair"),
		Type: sp(&ast.TupType{Elems: []ast.Type{
			sp(&ast.MachType{Name: "i32"}),
			sp(&ast.MachType{Name: "i32"}),
		}}),
	})
}

func demoTag() ast.Decl {
	return sp(&ast.TagDecl{
		Name: name("Shape"),
		Variants: []*ast.TagVariant{
			sp(&ast.TagVariant{Name: name("Circle"), Args: []ast.Type{sp(&ast.MachType{Name: "f64"})}}),
			sp(&ast.TagVariant{Name: name("Rect"), Args: []ast.Type{
				sp(&ast.MachType{Name: "f64"}),
				sp(&ast.MachType{Name: "f64"}),
			}}),
			sp(&ast.TagVariant{Name: name("Point")}),
		},
	})
}

func demoObj() ast.Decl {
	selfShape := sp(&ast.SelectorExpr{X: sp(&ast.Name{Value: "self"}), Sel: name("shape")})
	area := &ast.FuncDecl{
		Name:   name("area"),
		Return: sp(&ast.MachType{Name: "f64"}),
		Body: sp(&ast.BlockStmt{
			StmtList: []ast.Stmt{
				sp(&ast.AltStmt{
					Subject: selfShape,
					Arms:    areaArms(),
				}),
			},
		}),
	}

	return sp(&ast.ObjDecl{
		Name: name("Canvas"),
		Fields: []*ast.Field{
			{Name: name("shape"), Type: sp(&ast.PathType{X: sp(&ast.Name{Value: "Shape"})})},
			{Name: name("label"), Type: sp(&ast.StrType{})},
		},
		Methods: []*ast.FuncDecl{sp(area)},
		Dtor: sp(&ast.BlockStmt{
			StmtList: []ast.Stmt{
				sp(&ast.ExprStmt{X: sp(&ast.LogExpr{
					Level: 1,
					Args:  []ast.Expr{strLit("canvas closed")},
				})}),
			},
		}),
	})
}

func areaArms() []*ast.AltArm {
	return []*ast.AltArm{
		{
			Pat: sp(&ast.TagPat{
				Path:  sp(&ast.Name{Value: "Circle"}),
				Elems: []ast.Pat{sp(&ast.BindPat{Name: name("r")})},
			}),
			Body: sp(&ast.BlockStmt{
				Trailing: sp(&ast.Operation{
					Op: token.Mul,
					X:  sp(&ast.Name{Value: "r"}),
					Y:  sp(&ast.Name{Value: "r"}),
				}),
			}),
		},
		{
			Pat:  sp(&ast.WildPat{}),
			Body: sp(&ast.BlockStmt{Trailing: intLit("0")}),
		},
	}
}

func demoFunc() ast.Decl {
	body := sp(&ast.BlockStmt{
		StmtList: []ast.Stmt{
			sp(&ast.DeclStmt{Decl: sp(&ast.LocalDecl{
				Name: name("total"),
				Auto: true,
				Init: intLit("0"),
			})}),
			sp(&ast.DeclStmt{Decl: sp(&ast.LocalDecl{
				Name: name("items"),
				Type: sp(&ast.VecType{Elem: sp(&ast.MachType{Name: "i32"})}),
				Init: sp(&ast.VecLit{Elems: []*ast.Elem{
					{Value: intLit("1")},
					{Value: intLit("2")},
					{Value: intLit("3")},
				}}),
			})}),
			sp(&ast.ForEachStmt{
				Var:  name("x"),
				Iter: sp(&ast.Name{Value: "items"}),
				Body: sp(&ast.BlockStmt{
					StmtList: []ast.Stmt{
						sp(&ast.IfStmt{
							Cond: sp(&ast.Operation{
								Op: token.Gtr,
								X:  sp(&ast.Name{Value: "x"}),
								Y:  intLit("1"),
							}),
							Block: sp(&ast.BlockStmt{
								StmtList: []ast.Stmt{
									sp(&ast.AssignStmt{
										Lhs: sp(&ast.Name{Value: "total"}),
										Op:  token.Add,
										Rhs: sp(&ast.Name{Value: "x"}),
									}),
								},
							}),
							Else: sp(&ast.BlockStmt{
								StmtList: []ast.Stmt{
									sp(&ast.ExprStmt{X: sp(&ast.FlowExpr{Kind: ast.FlowCont})}),
								},
							}),
						}),
					},
				}),
			}),
			sp(&ast.ExprStmt{X: sp(&ast.SpawnExpr{Call: sp(&ast.CallExpr{
				Func:    sp(&ast.Name{Value: "report"}),
				ArgList: []ast.Expr{sp(&ast.Name{Value: "total"})},
			})})}),
			sp(&ast.ExprStmt{X: sp(&ast.CheckExpr{Cond: sp(&ast.Operation{
				Op: token.Geq,
				X:  sp(&ast.Name{Value: "total"}),
				Y:  intLit("0"),
			})})}),
		},
		Trailing: sp(&ast.FlowExpr{
			Kind: ast.FlowRet,
			Value: sp(&ast.CastExpr{
				X:    sp(&ast.Operation{Op: token.Add, X: sp(&ast.Name{Value: "total"}), Y: intLit("1")}),
				Type: sp(&ast.MachType{Name: "i64"}),
			}),
		}),
	})

	return sp(&ast.FuncDecl{
		Name: name("sum_report"),
		Param: []*ast.Field{
			{Name: name("items"), Type: sp(&ast.RefType{Elem: sp(&ast.VecType{Elem: sp(&ast.MachType{Name: "i32"})})}), Alias: true},
		},
		Return: sp(&ast.MachType{Name: "i64"}),
		Body:   body,
	})
}
