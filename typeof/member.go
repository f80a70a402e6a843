// Copyright (c) 2026, electricessence.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package typeof

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"jsouthworth.net/go/dyn"
)

// Member resolves key on instance and returns the resolved value and
// whether the key was found. Keys resolve, in order, as map keys, slice
// or array indices (plus "length"), exported methods, exported struct
// fields (including promoted fields and json tag names), and through a
// Find(key) (value, bool) method. Names also match with their first
// letter upper-cased, so "length" finds a Length method. Iterator
// additionally resolves to the default iteration member of native
// sequences and of values with an All method.
//
// Null, Undefined and primitive instances have no members, and keys that
// are not property keys never resolve.
func Member(instance interface{}, key interface{}) (interface{}, bool) {
	if IsNullOrUndefined(instance) || IsPrimitive(instance) ||
		!IsPropertyKey(key) {
		return nil, false
	}
	rv := reflect.ValueOf(instance)
	if v, ok := lookup(rv, key); ok {
		return v, true
	}
	if key == Iterator {
		return iteratorOf(rv)
	}
	return nil, false
}

// HasMember returns true if key resolves on instance, whether the member
// is declared on the value itself or promoted from an embedded type.
// When verify is true a member holding Undefined does not count.
func HasMember(instance interface{}, key interface{}, verify ...bool) bool {
	v, ok := Member(instance, key)
	return ok && (!flag(verify) || !IsUndefined(v))
}

// HasMemberOfType returns true if key resolves on instance to a value
// tagged kind.
func HasMemberOfType(instance interface{}, key interface{}, kind Tag) bool {
	v, ok := Member(instance, key)
	return ok && TagOf(v) == kind
}

// HasMethod returns true if key resolves on instance to a function.
func HasMethod(instance interface{}, key interface{}) bool {
	return HasMemberOfType(instance, key, TagFunction)
}

func lookup(rv reflect.Value, key interface{}) (interface{}, bool) {
	base := reflect.Indirect(rv)
	if base.Kind() == reflect.Interface && !base.IsNil() {
		base = base.Elem()
	}
	switch base.Kind() {
	case reflect.Map:
		if v, ok := mapIndex(base, key); ok {
			return v, true
		}
	case reflect.Slice, reflect.Array:
		if v, ok := sequenceIndex(base, key); ok {
			return v, true
		}
	}
	if name, ok := keyName(key); ok {
		if v, ok := methodByName(rv, name); ok {
			return v, true
		}
		if base.Kind() == reflect.Struct {
			if v, ok := fieldByName(base, name); ok {
				return v, true
			}
		}
	}
	return findByKey(rv, key)
}

func mapIndex(m reflect.Value, key interface{}) (interface{}, bool) {
	kt := m.Type().Key()
	for _, k := range keyForms(key) {
		kv, ok := convertKey(reflect.ValueOf(k), kt)
		if !ok {
			continue
		}
		if v := m.MapIndex(kv); v.IsValid() {
			return v.Interface(), true
		}
	}
	return nil, false
}

func sequenceIndex(s reflect.Value, key interface{}) (interface{}, bool) {
	if name, ok := keyName(key); ok && name == "length" {
		return s.Len(), true
	}
	i, ok := indexOf(key)
	if !ok || i < 0 || i >= s.Len() {
		return nil, false
	}
	return s.Index(i).Interface(), true
}

func methodByName(rv reflect.Value, name string) (interface{}, bool) {
	for _, n := range nameForms(name) {
		if m := rv.MethodByName(n); m.IsValid() {
			return m.Interface(), true
		}
	}
	return nil, false
}

func fieldByName(s reflect.Value, name string) (interface{}, bool) {
	t := s.Type()
	for _, n := range nameForms(name) {
		f, ok := t.FieldByName(n)
		if !ok || !f.IsExported() {
			continue
		}
		// A nil embedded pointer hides the fields promoted through it.
		fv, err := s.FieldByIndexErr(f.Index)
		if err != nil || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}
	for _, f := range reflect.VisibleFields(t) {
		jn, ok := jsonName(f)
		if !ok || f.Anonymous || !f.IsExported() || jn != name {
			continue
		}
		fv, err := s.FieldByIndexErr(f.Index)
		if err != nil || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

// jsonName reports the key a field is encoded under. Untagged fields and
// fields tagged "-" have none; "-," names the key "-" as encoding/json does.
func jsonName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	return tag, tag != ""
}

type keyFinder interface {
	Find(key interface{}) (interface{}, bool)
}

// findByKey resolves key through a Find(key) (value, bool) method such as
// the ones on immutable vectors and hashmaps.
func findByKey(rv reflect.Value, key interface{}) (interface{}, bool) {
	if !rv.CanInterface() {
		return nil, false
	}
	if kf, ok := rv.Interface().(keyFinder); ok {
		for _, k := range keyForms(key) {
			if v, found := kf.Find(k); found {
				return v, true
			}
		}
		return nil, false
	}
	find := rv.MethodByName("Find")
	if !find.IsValid() {
		return nil, false
	}
	ft := find.Type()
	if ft.NumIn() != 1 || ft.IsVariadic() || ft.NumOut() != 2 ||
		ft.Out(1).Kind() != reflect.Bool {
		return nil, false
	}
	for _, k := range keyForms(key) {
		kv, ok := convertKey(reflect.ValueOf(k), ft.In(0))
		if !ok {
			continue
		}
		out, _ := dyn.Apply(find.Interface(), kv.Interface()).([]interface{})
		if len(out) == 2 && out[1] == true {
			return out[0], true
		}
	}
	return nil, false
}

// keyForms returns the key followed by its equivalent spellings: numbers
// are also tried as int, float64 and decimal string, integer strings are
// also tried as int.
func keyForms(key interface{}) []interface{} {
	forms := []interface{}{key}
	switch TagOf(key) {
	case TagNumber:
		f := toFloat(reflect.ValueOf(key))
		if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
			forms = append(forms, int(f))
		}
		forms = append(forms, f, strconv.FormatFloat(f, 'f', -1, 64))
	case TagString:
		s := reflect.ValueOf(key).String()
		if i, err := strconv.Atoi(s); err == nil && strconv.Itoa(i) == s {
			forms = append(forms, i)
		}
	}
	return forms
}

// convertKey makes kv usable as a key of type kt. Numbers only convert to
// other number kinds when no precision is lost, strings only to other
// string kinds.
func convertKey(kv reflect.Value, kt reflect.Type) (reflect.Value, bool) {
	if kv.Type().AssignableTo(kt) {
		return kv, true
	}
	switch {
	case isNumberKind(kv.Kind()) && isNumberKind(kt.Kind()):
		cv := kv.Convert(kt)
		if toFloat(cv) != toFloat(kv) {
			return reflect.Value{}, false
		}
		return cv, true
	case kv.Kind() == reflect.String && kt.Kind() == reflect.String:
		return kv.Convert(kt), true
	}
	return reflect.Value{}, false
}

func keyName(key interface{}) (string, bool) {
	if TagOf(key) != TagString {
		return "", false
	}
	return reflect.ValueOf(key).String(), true
}

func indexOf(key interface{}) (int, bool) {
	for _, k := range keyForms(key) {
		if i, ok := k.(int); ok {
			return i, true
		}
	}
	return 0, false
}

// nameForms returns name and, if it starts with a lower case letter, the
// exported spelling of name.
func nameForms(name string) []string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return []string{name}
	}
	return []string{name, string(unicode.ToUpper(r)) + name[size:]}
}
