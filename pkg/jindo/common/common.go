// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package common implements the small formatting utilities the printer
// treats as external collaborators: rendering of integer literals and
// machine-typed names. Neither is part of the pretty-printer's hard
// engineering; they exist so the emitter has somewhere concrete to call.
package common

import (
	"strconv"

	"jindo/pkg/jindo/token"
)

// MachType names a hardware-width numeric type, e.g. i32 or f64.
type MachType uint8

const (
	MachNone MachType = iota
	MachI8
	MachI16
	MachI32
	MachI64
	MachU8
	MachU16
	MachU32
	MachU64
	MachF32
	MachF64
)

var machNames = [...]string{
	MachNone: "",
	MachI8:   "i8",
	MachI16:  "i16",
	MachI32:  "i32",
	MachI64:  "i64",
	MachU8:   "u8",
	MachU16:  "u16",
	MachU32:  "u32",
	MachU64:  "u64",
	MachF32:  "f32",
	MachF64:  "f64",
}

// MachTypeToString renders a machine type name, e.g. "i32".
func MachTypeToString(mt MachType) string {
	if int(mt) < len(machNames) {
		return machNames[mt]
	}
	return "?mach?"
}

// IntegerToString renders a signed integer literal.
//
// Open Question 3 (spec.md §9): unsigned literals wider than int64 are
// rendered by casting through a signed value, which misprints the largest
// unsigned magnitudes. That limitation is preserved here on purpose; callers
// holding a genuinely unsigned value should prefer UnsignedToString.
func IntegerToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

// UnsignedToString renders an unsigned integer literal without the
// through-signed-cast limitation of IntegerToString.
func UnsignedToString(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// FloatToString renders a floating point literal using the shortest
// representation that round-trips.
func FloatToString(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// BinOpToString and UnOpToString name a binary/unary operator as the parser
// adapter would; both just defer to token.Operator, kept here as thin named
// entry points matching the spec's common-adapter surface.
func BinOpToString(op token.Operator) string { return op.String() }
func UnOpToString(op token.Operator) string  { return op.String() }
