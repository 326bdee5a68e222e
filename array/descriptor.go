// Copyright 2025 go-array Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package array

import (
	"reflect"
	"strings"
	"sync"
)

// Kind is the coarse representation class of an element type.
type Kind uint8

const (
	// KindInvalid is the zero Kind, used only by the zero ElementDescriptor.
	KindInvalid Kind = iota

	// KindNumeric covers integer and floating-point types.
	KindNumeric

	// KindReference covers interfaces, pointers, maps, chans, funcs and slices.
	KindReference

	// KindAggregate covers every other value type: structs, arrays, strings,
	// bools and complex numbers.
	KindAggregate
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindReference:
		return "reference"
	case KindAggregate:
		return "aggregate"
	default:
		return "invalid"
	}
}

// Numeric is the closed set of primitive numeric tags. It indexes the
// widening table, so the order matters.
type Numeric uint8

const (
	NumNone Numeric = iota
	NumInt8
	NumUint8
	NumInt16
	NumUint16
	NumInt32
	NumUint32
	NumInt64
	NumUint64
	NumFloat32
	NumFloat64

	numNumeric
)

var numericNames = [numNumeric]string{
	"none", "int8", "uint8", "int16", "uint16", "int32", "uint32",
	"int64", "uint64", "float32", "float64",
}

// String returns the Go name of the fixed-width type for the tag.
func (n Numeric) String() string {
	if n >= numNumeric {
		return "unknown"
	}
	return numericNames[n]
}

// IsFloat reports whether n is a floating-point tag.
func (n Numeric) IsFloat() bool {
	return n == NumFloat32 || n == NumFloat64
}

// ElementDescriptor describes an element type for copy planning. It is
// derived once per type and never changes.
type ElementDescriptor struct {
	// Type is the element's Go type.
	Type reflect.Type

	// Kind is the representation class.
	Kind Kind

	// Numeric is the fixed-width tag for numeric kinds, NumNone otherwise.
	Numeric Numeric

	// Size is the element size in bytes.
	Size uintptr

	// Traced is true when the element holds pointer words the garbage
	// collector must see, which rules out raw byte moves.
	Traced bool

	// Nullable is the held type when Type is a Nullable instantiation.
	Nullable reflect.Type
}

// IsInterface reports whether the element type is an interface type.
func (d ElementDescriptor) IsInterface() bool {
	return d.Type != nil && d.Type.Kind() == reflect.Interface
}

// Identical reports whether elements described by d and o can be moved
// without conversion.
func (d ElementDescriptor) Identical(o ElementDescriptor) bool {
	if d.Type == o.Type {
		return true
	}
	return d.Kind == KindNumeric && o.Kind == KindNumeric && d.Numeric == o.Numeric
}

var (
	descriptors  sync.Map // reflect.Type -> ElementDescriptor
	nullableType = reflect.TypeFor[nullable]()
	nullablePkg  = reflect.TypeFor[Nullable[int]]().PkgPath()
)

// DescriptorOf returns the descriptor for t. Results are cached.
func DescriptorOf(t reflect.Type) ElementDescriptor {
	if t == nil {
		return ElementDescriptor{}
	}
	if d, ok := descriptors.Load(t); ok {
		return d.(ElementDescriptor)
	}
	d := describe(t)
	actual, _ := descriptors.LoadOrStore(t, d)
	return actual.(ElementDescriptor)
}

// DescriptorFor returns the descriptor for T.
func DescriptorFor[T any]() ElementDescriptor {
	return DescriptorOf(reflect.TypeFor[T]())
}

func describe(t reflect.Type) ElementDescriptor {
	d := ElementDescriptor{
		Type:   t,
		Size:   t.Size(),
		Traced: hasPointers(t),
	}
	if n := numericOf(t); n != NumNone {
		d.Kind = KindNumeric
		d.Numeric = n
		return d
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.UnsafePointer,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		d.Kind = KindReference
	default:
		d.Kind = KindAggregate
		if isNullable(t) {
			d.Nullable = reflect.Zero(t).Interface().(nullable).underlying()
		}
	}
	return d
}

// isNullable reports whether t is a Nullable instantiation. Structs that
// embed a Nullable get its methods promoted but are ordinary aggregates.
func isNullable(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == nullablePkg &&
		strings.HasPrefix(t.Name(), "Nullable[") &&
		t.Implements(nullableType)
}

func numericOf(t reflect.Type) Numeric {
	switch t.Kind() {
	case reflect.Int8:
		return NumInt8
	case reflect.Uint8:
		return NumUint8
	case reflect.Int16:
		return NumInt16
	case reflect.Uint16:
		return NumUint16
	case reflect.Int32:
		return NumInt32
	case reflect.Uint32:
		return NumUint32
	case reflect.Int64:
		return NumInt64
	case reflect.Uint64:
		return NumUint64
	case reflect.Float32:
		return NumFloat32
	case reflect.Float64:
		return NumFloat64
	case reflect.Int:
		if t.Size() == 4 {
			return NumInt32
		}
		return NumInt64
	case reflect.Uint, reflect.Uintptr:
		if t.Size() == 4 {
			return NumUint32
		}
		return NumUint64
	}
	return NumNone
}

// hasPointers reports whether values of t contain pointer words.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
