// Copyright (c) 2026, electricessence.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package typeof

import (
	"reflect"
	"testing"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/immutable/hashmap"
)

func TestHasMember(t *testing.T) {
	t.Run("promoted methods", func(t *testing.T) {
		a := &A{}
		assert(!HasMember(a, "xxx"), func() {
			t.Fatal("xxx should not resolve")
		})
		assert(HasMember(a, "push"), func() {
			t.Fatal("push should resolve to Push")
		})
		push, _ := Member(a, "push")
		push.(func(interface{}) int)(1)
		dyn.Apply(push, 2)
		assert(reflect.DeepEqual(*a, A{1, 2}), func() {
			t.Fatalf("expected [1 2], got %v\n", *a)
		})
	})
	t.Run("present but undefined", func(t *testing.T) {
		obj := map[string]interface{}{"a": "hello", "b": Undefined}
		assert(HasMember(obj, "b"), func() {
			t.Fatal("b is present")
		})
		assert(!HasMember(obj, "b", true), func() {
			t.Fatal("b is undefined and should fail verification")
		})
		assert(HasMember(obj, "a", true), func() {
			t.Fatal("a is defined")
		})
	})
	t.Run("present but null", func(t *testing.T) {
		obj := map[string]interface{}{"b": nil}
		assert(HasMember(obj, "b", true), func() {
			t.Fatal("null is a defined value")
		})
	})
	t.Run("primitives and null have no members", func(t *testing.T) {
		for _, v := range []interface{}{nil, Undefined, "hello", 10, true} {
			assert(!HasMember(v, "length"), func() {
				t.Fatalf("%#v should have no members\n", v)
			})
		}
	})
	t.Run("non-keys never resolve", func(t *testing.T) {
		obj := map[interface{}]interface{}{true: 1}
		assert(!HasMember(obj, true), func() {
			t.Fatal("booleans are not property keys")
		})
	})
	t.Run("struct fields", func(t *testing.T) {
		d := &Derived{Base: &Base{Name: "d", Total: 3}, Count: 2}
		for _, key := range []string{"Name", "name", "count", "sum", "describe"} {
			assert(HasMember(d, key), func() {
				t.Fatalf("%s should resolve\n", key)
			})
		}
		assert(!HasMember(d, "summary"), func() {
			t.Fatal("summary should not resolve")
		})
		sum, _ := Member(d, "sum")
		assert(dyn.Equal(sum, 3), func() {
			t.Fatalf("expected 3, got %v\n", sum)
		})
	})
	t.Run("nil embedded pointer hides promoted fields", func(t *testing.T) {
		d := &Derived{}
		assert(!HasMember(d, "name"), func() {
			t.Fatal("name is unreachable through a nil *Base")
		})
		assert(HasMember(d, "count"), func() {
			t.Fatal("count is declared on Derived")
		})
	})
	t.Run("unexported fields are hidden", func(t *testing.T) {
		v := struct{ secret int }{1}
		assert(!HasMember(v, "secret"), func() {
			t.Fatal("unexported fields should not resolve")
		})
	})
	t.Run("json tags", func(t *testing.T) {
		v := struct {
			Secret string `json:"-"`
			Dash   string `json:"-,"`
			Plain  string `json:",omitempty"`
		}{Secret: "pw", Dash: "dash", Plain: "plain"}
		got, ok := Member(v, "-")
		assert(ok && got == "dash", func() {
			t.Fatalf("expected dash, got %v\n", got)
		})
		assert(!HasMember(&struct {
			Secret string `json:"-"`
		}{"pw"}, "-"), func() {
			t.Fatal("a field tagged \"-\" has no json key")
		})
		assert(!HasMember(v, ""), func() {
			t.Fatal("the empty key should not resolve")
		})
		assert(HasMember(v, "plain"), func() {
			t.Fatal("plain should resolve by field name")
		})
	})
	t.Run("numeric keys", func(t *testing.T) {
		obj := map[string]interface{}{"1": "yes"}
		assert(HasMember(obj, 1), func() {
			t.Fatal("1 should find \"1\"")
		})
		assert(HasMember(obj, 1.0), func() {
			t.Fatal("1.0 should find \"1\"")
		})
		ints := map[int]string{2: "two"}
		assert(HasMember(ints, "2"), func() {
			t.Fatal("\"2\" should find 2")
		})
		assert(HasMember(ints, int8(2)), func() {
			t.Fatal("int8(2) should find 2")
		})
		assert(!HasMember(ints, 2.5), func() {
			t.Fatal("2.5 should not truncate to 2")
		})
	})
	t.Run("sequences", func(t *testing.T) {
		s := []string{"x", "y"}
		assert(HasMember(s, 1) && !HasMember(s, 2) && !HasMember(s, -1),
			func() {
				t.Fatal("only indices in bounds should resolve")
			})
		length, _ := Member(s, "length")
		assert(dyn.Equal(length, 2), func() {
			t.Fatalf("expected 2, got %v\n", length)
		})
	})
	t.Run("symbols", func(t *testing.T) {
		sym := NewSymbol("tag")
		obj := map[interface{}]interface{}{sym: "x"}
		assert(HasMember(obj, sym), func() {
			t.Fatal("symbol key should resolve")
		})
		assert(!HasMember(obj, NewSymbol("tag")), func() {
			t.Fatal("a different symbol is a different key")
		})
	})
	t.Run("keyed containers", func(t *testing.T) {
		m := hashmap.Empty().Assoc("color", "red").Assoc(1, "one")
		assert(HasMember(m, "color"), func() {
			t.Fatal("color should resolve through Find")
		})
		assert(HasMember(m, "1"), func() {
			t.Fatal("\"1\" should find 1 through Find")
		})
		assert(!HasMember(m, "weight"), func() {
			t.Fatal("weight is not in the map")
		})
		color, _ := Member(m, "color")
		assert(dyn.Equal(color, "red"), func() {
			t.Fatalf("expected red, got %v\n", color)
		})
	})
}

func TestHasMemberOfType(t *testing.T) {
	withThen := map[string]interface{}{"then": func() {}}
	withoutThen := map[string]interface{}{"other": "value"}
	thenNotFunc := map[string]interface{}{"then": "not a function"}
	assert(HasMemberOfType(withThen, "then", TagFunction), func() {
		t.Fatal("then is a function")
	})
	assert(!HasMemberOfType(withoutThen, "then", TagFunction), func() {
		t.Fatal("then is missing")
	})
	assert(!HasMemberOfType(thenNotFunc, "then", TagFunction), func() {
		t.Fatal("then is a string")
	})
	assert(HasMemberOfType(thenNotFunc, "then", TagString), func() {
		t.Fatal("then is a string")
	})
	assert(!HasMemberOfType(nil, "then", TagFunction), func() {
		t.Fatal("nil has no members")
	})
	assert(!HasMemberOfType(Undefined, "then", TagFunction), func() {
		t.Fatal("undefined has no members")
	})
	assert(HasMemberOfType(map[string]interface{}{"u": Undefined}, "u",
		TagUndefined), func() {
		t.Fatal("u holds undefined")
	})
}

func TestHasMethod(t *testing.T) {
	a := &A{}
	assert(!HasMethod(a, "xxx"), func() {
		t.Fatal("xxx is not a method")
	})
	assert(HasMethod(a, "push"), func() {
		t.Fatal("push is a method")
	})
	assert(!HasMethod(A{}, "push"), func() {
		t.Fatal("Push has a pointer receiver")
	})
	d := &Derived{Base: &Base{Name: "d"}}
	assert(HasMethod(d, "describe") == HasMemberOfType(d, "describe", TagFunction),
		func() {
			t.Fatal("HasMethod should agree with HasMemberOfType")
		})
	assert(!HasMethod(d, "name"), func() {
		t.Fatal("name is a field")
	})
}
