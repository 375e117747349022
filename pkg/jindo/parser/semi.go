// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package parser

import "jindo/pkg/jindo/ast"

// StmtEndsWithSemi reports whether s must be followed by `;` when printed.
// Statements ending in a brace (blocks, if/while/for, alt) don't take one;
// everything else does.
func StmtEndsWithSemi(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.BlockStmt, *ast.IfStmt, *ast.WhileStmt, *ast.ForStmt, *ast.ForEachStmt, *ast.AltStmt:
		return false
	case *ast.DoWhileStmt:
		// `do { ... } while cond` still ends with `;` — the closing brace
		// belongs to the body, not the statement as a whole.
		return true
	default:
		return true
	}
}
