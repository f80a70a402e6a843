// Copyright (c) 2026, electricessence.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package typeof

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/try"
)

var (
	// ErrInvalidLength is reported when an array-like source has a length
	// that is not a number.
	ErrInvalidLength = errors.New("array-like object has a non-number length")
	// ErrConcurrentModification is reported when the length of an
	// array-like source changes while it is being iterated.
	ErrConcurrentModification = errors.New("array-like length changed while iterating")
	// ErrNotIterable is returned by Collect for values AsIterable rejects.
	ErrNotIterable = errors.New("value is not iterable")
)

// IsArrayLike returns true for slices, arrays and strings, and for any
// value that is not a function and has a length member.
func IsArrayLike(instance interface{}) bool {
	if IsString(instance) {
		return true
	}
	if !IsNull(instance) {
		switch reflect.TypeOf(instance).Kind() {
		case reflect.Slice, reflect.Array:
			return true
		}
	}
	return !IsFunction(instance) && HasMember(instance, "length")
}

// IsIterable returns true if the Iterator member of instance is a
// function.
func IsIterable(instance interface{}) bool {
	return HasMemberOfType(instance, Iterator, TagFunction)
}

// AsIterable returns instance unchanged if it is iterable. Otherwise, if
// it is array-like, it returns a new *ArrayLike over it. Strings are only
// adapted when allowString is true so that callers treating strings as
// atomic values do not split them into characters by accident. In every
// other case AsIterable returns nil.
func AsIterable(instance interface{}, allowString ...bool) interface{} {
	if IsIterable(instance) {
		return instance
	}
	if (flag(allowString) || !IsString(instance)) && IsArrayLike(instance) {
		return &ArrayLike{source: instance}
	}
	return nil
}

// Collect drains AsIterable(instance) into a slice. Two-value sequences
// produce an Entry per step. A panic raised while iterating is returned
// as an error.
func Collect(instance interface{}, allowString ...bool) ([]interface{}, error) {
	it := AsIterable(instance, allowString...)
	if it == nil {
		return nil, fmt.Errorf("%w: %T", ErrNotIterable, instance)
	}
	if arr, isArrayLike := it.(*ArrayLike); isArrayLike {
		out := []interface{}{}
		err := arr.Range(func(v interface{}) {
			out = append(out, v)
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	seq, _ := Member(it, Iterator)
	out, err := try.Apply(drain, seq)
	if err != nil {
		return nil, err
	}
	return out.([]interface{}), nil
}

// ArrayLike adapts a value with a numeric length member and indexed
// elements to the iteration protocol. Each pass reads the length when it
// starts and checks it again before every element. Missing elements are
// produced as Undefined.
type ArrayLike struct {
	source interface{}
}

// Source returns the value being adapted.
func (a *ArrayLike) Source() interface{} {
	return a.source
}

// Values returns a fresh lazy pass over the source. A failure is yielded
// once, with a nil element, and ends the pass.
func (a *ArrayLike) Values() iter.Seq2[interface{}, error] {
	return func(yield func(interface{}, error) bool) {
		src := a.indexed()
		length, ok := src.length()
		if !ok {
			yield(nil, fmt.Errorf("%w: %T", ErrInvalidLength, a.source))
			return
		}
		for i := 0; float64(i) < length; i++ {
			current, ok := src.length()
			if !ok || current != length {
				yield(nil, fmt.Errorf("%w: at index %d",
					ErrConcurrentModification, i))
				return
			}
			if !yield(src.at(i), nil) {
				return
			}
		}
	}
}

// All is the default iteration member of an ArrayLike. It panics with
// the errors Values would yield.
func (a *ArrayLike) All() iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		for v, err := range a.Values() {
			if err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Range iterates over the elements. Range can take a set of functions
// matched by type. If the function returns a bool this is treated as a
// loop termination variable, if false the loop will terminate.
//
//	func(int, interface{}) iterates over indices and values.
//	func(int, interface{}) bool
//	func(interface{}) iterates over only the values
//	func(interface{}) bool
func (a *ArrayLike) Range(fn interface{}) error {
	var do func(int, interface{}) bool
	switch f := fn.(type) {
	case func(int, interface{}) bool:
		do = f
	case func(int, interface{}):
		do = func(idx int, val interface{}) bool {
			f(idx, val)
			return true
		}
	case func(interface{}) bool:
		do = func(idx int, val interface{}) bool {
			return f(val)
		}
	case func(interface{}):
		do = func(idx int, val interface{}) bool {
			f(val)
			return true
		}
	default:
		panic("invalid range function")
	}
	idx := 0
	for v, err := range a.Values() {
		if err != nil {
			return err
		}
		if !do(idx, v) {
			break
		}
		idx++
	}
	return nil
}

func (a *ArrayLike) indexed() indexed {
	if IsString(a.source) {
		return runes([]rune(reflect.ValueOf(a.source).String()))
	}
	return members{source: a.source}
}

type indexed interface {
	length() (float64, bool)
	at(int) interface{}
}

// runes is a string viewed as its characters.
type runes []rune

func (r runes) length() (float64, bool) { return float64(len(r)), true }

func (r runes) at(i int) interface{} { return string(r[i]) }

// members reads length and elements through member resolution.
type members struct {
	source interface{}
}

func (m members) length() (float64, bool) {
	v, ok := Member(m.source, "length")
	if !ok {
		return 0, false
	}
	if IsFunction(v) {
		if v, ok = callGetter(v); !ok {
			return 0, false
		}
	}
	if !IsNumber(v) {
		return 0, false
	}
	return NumberOrNaN(v), true
}

func (m members) at(i int) interface{} {
	if v, ok := Member(m.source, i); ok {
		return v
	}
	if at, ok := Member(m.source, "at"); ok && isIndexAccessor(at) {
		return dyn.Apply(at, i)
	}
	return Undefined
}

func callGetter(fn interface{}) (interface{}, bool) {
	t := reflect.TypeOf(fn)
	if t.NumIn() != 0 || t.NumOut() != 1 {
		return nil, false
	}
	return dyn.Apply(fn), true
}

func isIndexAccessor(fn interface{}) bool {
	if !IsFunction(fn) {
		return false
	}
	t := reflect.TypeOf(fn)
	return t.NumIn() == 1 && !t.IsVariadic() && t.In(0).Kind() == reflect.Int &&
		t.NumOut() == 1
}

// iteratorOf returns the default iteration member of rv, if it has one.
func iteratorOf(rv reflect.Value) (interface{}, bool) {
	base := reflect.Indirect(rv)
	switch base.Kind() {
	case reflect.Slice, reflect.Array:
		return iter.Seq[interface{}](func(yield func(interface{}) bool) {
			for i := 0; i < base.Len(); i++ {
				if !yield(base.Index(i).Interface()) {
					return
				}
			}
		}), true
	case reflect.Chan:
		if base.IsNil() || base.Type().ChanDir()&reflect.RecvDir == 0 {
			return nil, false
		}
		return iter.Seq[interface{}](func(yield func(interface{}) bool) {
			for {
				v, ok := base.Recv()
				if !ok || !yield(v.Interface()) {
					return
				}
			}
		}), true
	case reflect.Func:
		if !base.IsNil() && isSeqFunc(base.Type()) {
			return base.Interface(), true
		}
	}
	all := rv.MethodByName("All")
	if all.IsValid() && all.Type().NumIn() == 0 && all.Type().NumOut() == 1 &&
		isSeqFunc(all.Type().Out(0)) {
		return all.Interface(), true
	}
	return nil, false
}

// isSeqFunc reports whether t has the shape of iter.Seq or iter.Seq2.
func isSeqFunc(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && (y.NumIn() == 1 || y.NumIn() == 2) &&
		y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

// drain runs an iteration member to completion. The member is either a
// sequence function or an All method returning one.
func drain(member interface{}) []interface{} {
	seq := reflect.ValueOf(member)
	if seq.Type().NumIn() == 0 {
		seq = seq.Call(nil)[0]
	}
	yt := seq.Type().In(0)
	cont := reflect.ValueOf(true).Convert(yt.Out(0))
	out := []interface{}{}
	yield := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
		if len(args) == 2 {
			out = append(out, EntryNew(args[0].Interface(), args[1].Interface()))
		} else {
			out = append(out, args[0].Interface())
		}
		return []reflect.Value{cont}
	})
	seq.Call([]reflect.Value{yield})
	return out
}

// EntryNew creates a new entry.
func EntryNew(key, value interface{}) Entry {
	return Entry{key: key, value: value}
}

// Entry is one step of a two-value sequence.
type Entry struct {
	key   interface{}
	value interface{}
}

// Key returns the key.
func (e Entry) Key() interface{} { return e.key }

// Value returns the value.
func (e Entry) Value() interface{} { return e.value }

// String returns a string representation of the Entry.
func (e Entry) String() string { return fmt.Sprintf("[%v %v]", e.key, e.value) }

// Equal implements equality between Entries.
func (e Entry) Equal(other interface{}) bool {
	oe, isEntry := other.(Entry)
	if !isEntry {
		return false
	}
	return dyn.Equal(oe.key, e.key) && dyn.Equal(oe.value, e.value)
}
