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
	"fmt"

	"github.com/ajroetker/go-array/array"
	"golang.org/x/exp/constraints"
)

// Search results follow the bitwise-complement convention: a non-negative
// result is the index of an element equal to the value (any one of them when
// there are duplicates); a negative result r means not found, and ^r is the
// index at which the value would be inserted to keep the range sorted.
//
// Every variant probes the same indices for the same input, so the fast and
// generic paths agree.

// BinarySearch searches the sorted slice data for value in natural order.
func BinarySearch[T constraints.Ordered](data []T, value T) int {
	i, _ := BinarySearchRange(data, 0, len(data), value)
	return i
}

// BinarySearchRange searches data[index:index+length], which must be sorted
// in natural order. Results are indices into data.
func BinarySearchRange[T constraints.Ordered](data []T, index, length int, value T) (int, error) {
	if err := checkRange("BinarySearchRange", len(data), index, length); err != nil {
		return 0, err
	}
	if !array.FastPathEnabled() {
		return BinarySearchValues(data, index, length, value, nil)
	}
	lo, hi := index, index+length-1
	for lo <= hi {
		mid := lo + ((hi - lo) >> 1)
		c := cmp.Compare(data[mid], value)
		if c == 0 {
			return mid, nil
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return ^lo, nil
}

// BinarySearchFunc searches data[index:index+length], sorted according to
// cmp. cmp is called as cmp(element, value); nil means array.DefaultCompare.
func BinarySearchFunc[T any](data []T, index, length int, value T, cmp func(a, b T) int) (int, error) {
	if err := checkRange("BinarySearchFunc", len(data), index, length); err != nil {
		return 0, err
	}
	if !array.FastPathEnabled() {
		return BinarySearchValues(data, index, length, value, erasedComparer(cmp))
	}
	i, err := search(array.SliceKeys[T](data), index, index+length-1, value, comparerOf(cmp))
	if err != nil {
		return 0, fmt.Errorf("BinarySearchFunc: %w", err)
	}
	return i, nil
}

// BinarySearchKeySpace searches length elements of keys starting at index.
func BinarySearchKeySpace[T any](keys array.KeySpace[T], index, length int, value T, cmp func(a, b T) int) (int, error) {
	if keys == nil {
		return 0, fmt.Errorf("BinarySearchKeySpace: %w", array.ErrNullArgument)
	}
	if err := checkRange("BinarySearchKeySpace", keys.Len(), index, length); err != nil {
		return 0, err
	}
	i, err := search(keys, index, index+length-1, value, comparerOf(cmp))
	if err != nil {
		return 0, fmt.Errorf("BinarySearchKeySpace: %w", err)
	}
	return i, nil
}

// BinarySearchValues is the type-erased search over a slice, pointer to
// array or rank-1 array.View. index and the result are absolute: they
// include the view's lower bound, and so does the insertion point encoded
// in a negative result.
func BinarySearchValues(arr any, index, length int, value any, cmp func(a, b any) int) (int, error) {
	v, err := array.ViewOf(arr)
	if err != nil {
		return 0, fmt.Errorf("BinarySearchValues: %w", err)
	}
	if v.Rank() != 1 {
		return 0, fmt.Errorf("BinarySearchValues: rank %d: %w", v.Rank(), array.ErrRankMismatch)
	}
	if err := v.CheckRange(index, length); err != nil {
		return 0, fmt.Errorf("BinarySearchValues: %w", err)
	}
	lo := v.Flat(index)
	i, err := search(v.Keys(), lo, lo+length-1, value, comparerOf(cmp))
	if err != nil {
		return 0, fmt.Errorf("BinarySearchValues: %w", err)
	}
	lb := v.LowerBound(0)
	if i < 0 {
		return ^(^i + lb), nil
	}
	return i + lb, nil
}

// search is the generic engine over the inclusive range [lo, hi].
func search[T any, KS array.KeySpace[T], C Comparer[T]](keys KS, lo, hi int, value T, c C) (result int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = array.RecoverComparer(r)
		}
	}()
	for lo <= hi {
		mid := lo + ((hi - lo) >> 1)
		order := c.Compare(keys.Get(mid), value)
		if order == 0 {
			return mid, nil
		}
		if order < 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return ^lo, nil
}
