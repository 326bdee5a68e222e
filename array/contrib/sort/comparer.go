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

package sort

import (
	"cmp"

	"github.com/ajroetker/go-array/array"
	"golang.org/x/exp/constraints"
)

// Comparer orders two values: negative when a sorts before b, zero when
// they are equal, positive otherwise. Engines are instantiated per Comparer
// type so the natural ordering compiles to a direct call.
type Comparer[T any] interface {
	Compare(a, b T) int
}

// orderedComparer is the natural ordering of T, with NaN first.
type orderedComparer[T constraints.Ordered] struct{}

func (orderedComparer[T]) Compare(a, b T) int {
	return cmp.Compare(a, b)
}

// funcComparer adapts a comparison function.
type funcComparer[T any] func(a, b T) int

func (f funcComparer[T]) Compare(a, b T) int {
	return f(a, b)
}

// comparerOf returns fn, or array.DefaultCompare on boxed values when fn is
// nil.
func comparerOf[T any](fn func(a, b T) int) funcComparer[T] {
	if fn != nil {
		return fn
	}
	return func(a, b T) int {
		return array.DefaultCompare(a, b)
	}
}

// erasedComparer lifts a typed comparison into one over boxed elements, for
// routing typed calls through the erased engine.
func erasedComparer[T any](fn func(a, b T) int) func(a, b any) int {
	if fn == nil {
		return nil
	}
	return func(a, b any) int {
		return fn(unboxAs[T](a), unboxAs[T](b))
	}
}

func unboxAs[T any](x any) T {
	if x == nil {
		var zero T
		return zero
	}
	return x.(T)
}

// noItems stands in for an absent items KeySpace.
type noItems[V any] struct{}

func (noItems[V]) Len() int         { return 0 }
func (noItems[V]) Get(int) (zero V) { return zero }
func (noItems[V]) Set(int, V)       {}
func (noItems[V]) Swap(int, int)    {}
