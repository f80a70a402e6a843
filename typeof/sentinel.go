// Copyright (c) 2026, electricessence.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package typeof

import "reflect"

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks an absent value. It is distinct from nil, which is the
// null value. Storing Undefined in a map keeps the key present.
var Undefined interface{} = undefined{}

// Symbol is a unique property key. Two symbols are the same key only if
// they are the same pointer.
type Symbol struct {
	description string
}

// NewSymbol returns a new symbol that is distinct from every other symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Description returns the description the symbol was created with.
func (s *Symbol) Description() string { return s.description }

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// Iterator is the key of the default iteration member. It resolves on
// slices, arrays, receive channels, iter.Seq shaped functions and values
// with an All method returning one.
var Iterator = NewSymbol("Symbol.iterator")

var (
	undefinedType = reflect.TypeOf(undefined{})
	symbolType    = reflect.TypeOf((*Symbol)(nil))
)

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// flag reports the value of an optional trailing boolean argument.
func flag(opts []bool) bool {
	return len(opts) != 0 && opts[0]
}
