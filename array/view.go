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
	"fmt"
	"math"
	"reflect"
)

// MaxIndex is the engine's native index width. Indices, lengths and lower
// bounds never exceed it; Copy64 reports wider values as ErrLengthOverflow.
const MaxIndex = math.MaxInt32

// View borrows array storage for the duration of one operation. It records
// the element descriptor, the flat length, and for ranked views the
// per-dimension lengths and lower bounds over row-major storage.
//
// A View never owns its storage: it holds the caller's slice and writes
// through it.
type View struct {
	data        reflect.Value // always a slice
	desc        ElementDescriptor
	lengths     []int
	lowerBounds []int
}

// ViewOf wraps storage as a rank-1 View with lower bound 0. Storage must be
// a slice or a non-nil pointer to an array; a View or *View is returned as
// is. A nil slice is an empty array, while an untyped nil or a nil pointer
// is ErrNullArgument.
func ViewOf(storage any) (View, error) {
	switch s := storage.(type) {
	case View:
		return s, nil
	case *View:
		if s == nil {
			return View{}, fmt.Errorf("ViewOf: %w", ErrNullArgument)
		}
		return *s, nil
	case nil:
		return View{}, fmt.Errorf("ViewOf: %w", ErrNullArgument)
	}

	rv := reflect.ValueOf(storage)
	switch rv.Kind() {
	case reflect.Slice:
	case reflect.Pointer:
		if rv.Type().Elem().Kind() != reflect.Array {
			return View{}, fmt.Errorf("ViewOf: %s is not a slice or pointer to array: %w", rv.Type(), ErrInvalidArgument)
		}
		if rv.IsNil() {
			return View{}, fmt.Errorf("ViewOf: %w", ErrNullArgument)
		}
		rv = rv.Elem().Slice(0, rv.Elem().Len())
	default:
		return View{}, fmt.Errorf("ViewOf: %s is not a slice or pointer to array: %w", rv.Type(), ErrInvalidArgument)
	}
	if rv.Len() > MaxIndex {
		return View{}, fmt.Errorf("ViewOf: length %d: %w", rv.Len(), ErrLengthOverflow)
	}
	return View{
		data:        rv,
		desc:        DescriptorOf(rv.Type().Elem()),
		lengths:     []int{rv.Len()},
		lowerBounds: []int{0},
	}, nil
}

// RankedView wraps row-major storage as an array of rank len(lengths) with
// the given per-dimension lower bounds. The storage length must equal the
// product of lengths.
func RankedView(storage any, lengths, lowerBounds []int) (View, error) {
	if len(lengths) == 0 || len(lengths) != len(lowerBounds) {
		return View{}, fmt.Errorf("RankedView: %d lengths, %d lower bounds: %w", len(lengths), len(lowerBounds), ErrInvalidArgument)
	}
	v, err := ViewOf(storage)
	if err != nil {
		return View{}, fmt.Errorf("RankedView: %w", err)
	}
	total := 1
	for dim, n := range lengths {
		lb := lowerBounds[dim]
		if n < 0 || lb < -MaxIndex || lb > MaxIndex-n {
			return View{}, fmt.Errorf("RankedView: dimension %d length %d lower bound %d: %w", dim, n, lb, ErrIndexOutOfRange)
		}
		if n != 0 && total > MaxIndex/n {
			return View{}, fmt.Errorf("RankedView: dimension %d: %w", dim, ErrLengthOverflow)
		}
		total *= n
	}
	if total != v.Len() {
		return View{}, fmt.Errorf("RankedView: shape holds %d elements, storage has %d: %w", total, v.Len(), ErrInvalidArgument)
	}
	v.lengths = append([]int(nil), lengths...)
	v.lowerBounds = append([]int(nil), lowerBounds...)
	return v, nil
}

// Len returns the total number of elements.
func (v View) Len() int {
	if !v.data.IsValid() {
		return 0
	}
	return v.data.Len()
}

// Rank returns the number of dimensions.
func (v View) Rank() int {
	return len(v.lengths)
}

// Length returns the length of dimension dim.
func (v View) Length(dim int) int {
	return v.lengths[dim]
}

// LowerBound returns the lower bound of dimension dim.
func (v View) LowerBound(dim int) int {
	return v.lowerBounds[dim]
}

// Descriptor returns the element descriptor.
func (v View) Descriptor() ElementDescriptor {
	return v.desc
}

// Keys returns erased access to the flat storage, indexed from 0.
func (v View) Keys() ValueKeys {
	return newValueKeys(v.data)
}

// Flat converts an absolute index, which includes the dimension-0 lower
// bound, into a flat storage offset.
func (v View) Flat(index int) int {
	return index - v.lowerBounds[0]
}

// CheckRange validates that [index, index+length) lies inside v, where
// index is absolute.
func (v View) CheckRange(index, length int) error {
	lb := 0
	if len(v.lowerBounds) > 0 {
		lb = v.lowerBounds[0]
	}
	if length < 0 {
		return fmt.Errorf("length %d is negative: %w", length, ErrIndexOutOfRange)
	}
	if index < lb {
		return fmt.Errorf("index %d is below lower bound %d: %w", index, lb, ErrIndexOutOfRange)
	}
	if index-lb > v.Len()-length {
		return fmt.Errorf("range [%d, %d+%d) exceeds length %d: %w", index, index, length, v.Len(), ErrIndexOutOfRange)
	}
	return nil
}
