// Copyright (c) 2026, electricessence.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package typeof

import (
	"math"
	"reflect"
)

// IsNull returns true for untyped nil and for nil pointers, funcs, chans
// and interfaces. Nil slices and maps are empty collections, not null.
func IsNull(value interface{}) bool {
	return value == nil || isNilValue(reflect.ValueOf(value))
}

// IsUndefined returns true if value is the Undefined sentinel.
func IsUndefined(value interface{}) bool {
	_, isUndefined := value.(undefined)
	return isUndefined
}

// IsNullOrUndefined returns true if value is null or Undefined.
func IsNullOrUndefined(value interface{}) bool {
	return IsNull(value) || IsUndefined(value)
}

// IsBoolean returns true if value is a boolean.
func IsBoolean(value interface{}) bool {
	return TagOf(value) == TagBoolean
}

// IsNumber returns true if value is of any integer or float kind.
// When ignoreNaN is true, NaN is not considered a number.
func IsNumber(value interface{}, ignoreNaN ...bool) bool {
	if TagOf(value) != TagNumber {
		return false
	}
	return !flag(ignoreNaN) || !math.IsNaN(toFloat(reflect.ValueOf(value)))
}

// IsTrueNaN returns true only if value is a number and is NaN.
func IsTrueNaN(value interface{}) bool {
	return TagOf(value) == TagNumber &&
		math.IsNaN(toFloat(reflect.ValueOf(value)))
}

// IsString returns true if value is a string.
func IsString(value interface{}) bool {
	return TagOf(value) == TagString
}

// IsFunction returns true if value is a non-nil func.
func IsFunction(value interface{}) bool {
	return TagOf(value) == TagFunction
}

// IsObject returns true if value is tagged as an object. Null is only
// accepted when allowNull is true.
func IsObject(value interface{}, allowNull ...bool) bool {
	return TagOf(value) == TagObject && (flag(allowNull) || !IsNull(value))
}

// IsPrimitive returns true if the value is a boolean, string, number, or
// null. Undefined is accepted only when allowUndefined is true.
func IsPrimitive(value interface{}, allowUndefined ...bool) bool {
	switch TagOf(value) {
	case TagBoolean, TagString, TagNumber:
		return true
	case TagUndefined:
		return flag(allowUndefined)
	case TagObject:
		return IsNull(value)
	}
	return false
}

// IsPrimitiveOrSymbol is IsPrimitive that also accepts symbols.
func IsPrimitiveOrSymbol(value interface{}, allowUndefined ...bool) bool {
	return TagOf(value) == TagSymbol || IsPrimitive(value, allowUndefined...)
}

// IsPropertyKey returns true if the value is a string, number, or symbol.
func IsPropertyKey(value interface{}) bool {
	switch TagOf(value) {
	case TagString, TagNumber, TagSymbol:
		return true
	}
	return false
}

// NumberOrNaN returns value as a float64 if it is a number and NaN
// otherwise. Strings are not parsed.
func NumberOrNaN(value interface{}) float64 {
	if TagOf(value) != TagNumber {
		return math.NaN()
	}
	return toFloat(reflect.ValueOf(value))
}
