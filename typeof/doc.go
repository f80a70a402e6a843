// Copyright (c) 2026, electricessence.
//
// SPDX-License-Identifier: MPL-2.0

// Package typeof answers runtime questions about values whose shape is not
// known statically: values decoded from JSON or YAML into interface{},
// duck-typed objects, or anything handed across a package boundary as an
// empty interface. Every value is classified into one of a closed set of
// tags (boolean, number, string, symbol, object, undefined, function).
// Untyped nil and nil pointers, funcs, chans, and interfaces are the null
// value; Undefined is a separate sentinel for an absent value. Members
// resolve through map keys, slice indices, exported struct fields and
// methods (including those promoted from embedded types), and Find
// lookups on keyed containers.
//
// Array-like values (anything with a length member) can be adapted to the
// iteration protocol with AsIterable. The adapter reads elements lazily
// and reports ErrConcurrentModification if the source length changes
// while it walks.
package typeof
