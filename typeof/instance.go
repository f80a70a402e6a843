// Copyright (c) 2026, electricessence.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package typeof

import "reflect"

// TypeFor returns the reflect.Type of T. Unlike reflect.TypeOf on a zero
// value it also works when T is an interface type.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Is returns true if instance is of type typ or derives from it. An
// instance derives from typ when it implements typ, when its type is named
// and typ is the unnamed or predeclared form of its underlying type, or
// when typ is embedded anywhere in its chain of anonymous struct fields.
// Pointers are followed to the types they point at; a pointer type is only
// matched exactly or through embedding, never by layout.
func Is(instance interface{}, typ reflect.Type) bool {
	if typ == nil || IsNull(instance) {
		return false
	}
	return derivesFrom(reflect.TypeOf(instance), typ,
		make(map[reflect.Type]bool))
}

// As returns instance if Is(instance, typ) holds and nil otherwise.
func As(instance interface{}, typ reflect.Type) interface{} {
	if Is(instance, typ) {
		return instance
	}
	return nil
}

func derivesFrom(t, typ reflect.Type, seen map[reflect.Type]bool) bool {
	if t == typ {
		return true
	}
	if seen[t] {
		return false
	}
	seen[t] = true
	if typ.Kind() == reflect.Interface {
		if t.Implements(typ) {
			return true
		}
	} else if typ.Kind() != reflect.Ptr && typ.PkgPath() == "" &&
		t.Name() != "" && t.Kind() == typ.Kind() && t.ConvertibleTo(typ) {
		return true
	}
	switch t.Kind() {
	case reflect.Ptr:
		return derivesFrom(t.Elem(), typ, seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous && derivesFrom(f.Type, typ, seen) {
				return true
			}
		}
	}
	return false
}
