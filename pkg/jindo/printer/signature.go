// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package printer

import "jindo/pkg/jindo/ast"

// emitSignature renders `fn|pred name<type-params>(arg, ...) [-> ret]`.
// The "-> ret" clause is omitted when decl.Return is nil (the nil type).
func (s *Session) emitSignature(decl *ast.FuncDecl) {
	if decl.IsPred {
		s.pp.Word("pred")
	} else {
		s.pp.Word("fn")
	}
	s.pp.Space()
	s.emitName(decl.Name)
	s.emitTypeParams(decl.TypeParams)
	s.pp.Word("(")
	s.emitFieldList(decl.Param)
	s.pp.Word(")")
	if decl.Return != nil {
		s.pp.Space()
		s.pp.Word("->")
		s.pp.Space()
		s.emitType(decl.Return)
	}
}
