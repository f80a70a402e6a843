// Copyright (c) 2026, electricessence.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package typeof

import (
	"errors"
	"fmt"
	"reflect"
)

// Tag is the runtime category of a value. The set of tags is closed.
type Tag int

const (
	TagBoolean Tag = iota
	TagNumber
	TagString
	TagSymbol
	TagObject
	TagUndefined
	TagFunction
)

var tagNames = [...]string{
	TagBoolean:   "boolean",
	TagNumber:    "number",
	TagString:    "string",
	TagSymbol:    "symbol",
	TagObject:    "object",
	TagUndefined: "undefined",
	TagFunction:  "function",
}

// ErrUnknownTag is returned by ParseTag for labels outside the tag set.
var ErrUnknownTag = errors.New("unknown type tag")

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// ParseTag returns the Tag whose label is name.
func ParseTag(name string) (Tag, error) {
	for t, label := range tagNames {
		if label == name {
			return Tag(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, name)
}

// TagOf returns the runtime tag of v. The null value reports TagObject.
func TagOf(v interface{}) Tag {
	if v == nil {
		return TagObject
	}
	return tagOfValue(reflect.ValueOf(v))
}

func tagOfValue(rv reflect.Value) Tag {
	if !rv.IsValid() || isNilValue(rv) {
		return TagObject
	}
	switch rv.Type() {
	case undefinedType:
		return TagUndefined
	case symbolType:
		return TagSymbol
	}
	switch {
	case rv.Kind() == reflect.Bool:
		return TagBoolean
	case isNumberKind(rv.Kind()):
		return TagNumber
	case rv.Kind() == reflect.String:
		return TagString
	case rv.Kind() == reflect.Func:
		return TagFunction
	default:
		return TagObject
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// toFloat converts a value of a number kind to float64.
func toFloat(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}
