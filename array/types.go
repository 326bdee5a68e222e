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

// Package array provides type-aware bulk copying between arrays whose
// element types may differ in representation, plus the accessor abstraction
// shared by the sort and search engines in array/contrib/sort.
//
// Two kinds of storage are supported:
//
//   - Fast storage: monomorphic Go slices ([]T). Copies use the built-in
//     memmove or a raw byte move, and the sorter/searcher are instantiated
//     per element type with no per-element dynamic dispatch.
//   - Generic storage: any slice or pointer to array wrapped in a View,
//     optionally ranked or with a non-zero lower bound. Elements are read and
//     written through reflect, boxed as any.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-array/array"
//
//	src := []int32{1, 2, 3}
//	dst := make([]float64, 3)
//	if err := array.CopyConvert(src, 0, dst, 0, 3); err != nil {
//	    // handle err
//	}
//
//	boxed := make([]any, 3)
//	err := array.Copy(src, 0, boxed, 0, 3) // boxes each element
package array

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numbers is a constraint for every type the widening table knows about.
type Numbers interface {
	Floats | Integers
}

// Ordered is a constraint for types with a natural total ordering.
type Ordered interface {
	constraints.Ordered
}

// KeySpace is indexed access to an array's elements. The sorter and the
// searcher are written once against it; SliceKeys provides the fast
// implementation and ValueKeys the erased one.
type KeySpace[T any] interface {
	// Len returns the number of addressable elements.
	Len() int

	// Get returns element i.
	Get(i int) T

	// Set stores v at element i.
	Set(i int, v T)

	// Swap exchanges elements i and j.
	Swap(i, j int)
}

// Nullable is a value that may be absent. Boxing a Nullable that is not
// Valid produces nil, and unboxing nil into a Nullable destination produces
// the zero Nullable.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// Some returns a valid Nullable holding v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true}
}

// Box returns the held value as any, or nil when n is not valid.
func (n Nullable[T]) Box() any {
	if !n.Valid {
		return nil
	}
	return n.Value
}

func (Nullable[T]) underlying() reflect.Type {
	return reflect.TypeFor[T]()
}

// nullable is implemented by every Nullable instantiation.
type nullable interface {
	Box() any
	underlying() reflect.Type
}
