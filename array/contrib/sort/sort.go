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
	"fmt"

	"github.com/ajroetker/go-array/array"
	"golang.org/x/exp/constraints"
)

// Sort sorts data in-place in ascending natural order. Floating-point NaNs
// order before every other value, as in cmp.Compare.
//
// This is the fast path: direct slice access and a comparison the compiler
// sees statically. Sort is not stable.
func Sort[T constraints.Ordered](data []T) {
	if len(data) < 2 {
		return
	}
	if !array.FastPathEnabled() {
		// DefaultCompare orders every constraints.Ordered type, so this cannot fail.
		_ = SortValues(data, nil, 0, len(data), nil)
		return
	}
	s := sorter[T, T, array.SliceKeys[T], noItems[T], orderedComparer[T]]{
		keys: array.SliceKeys[T](data),
	}
	_ = s.run(0, len(data)-1)
}

// SortFunc sorts data in-place using cmp, which must implement a strict
// weak ordering. A nil cmp uses array.DefaultCompare on the boxed elements.
// SortFunc is not stable.
func SortFunc[T any](data []T, cmp func(a, b T) int) error {
	return SortPairs[T, struct{}](data, nil, 0, len(data), cmp)
}

// SortRange sorts length elements of data starting at index.
func SortRange[T any](data []T, index, length int, cmp func(a, b T) int) error {
	return SortPairs[T, struct{}](data, nil, index, length, cmp)
}

// SortPairs sorts keys[index:index+length] and permutes items in lockstep,
// so items[i] stays attached to keys[i]. items may be nil. A nil cmp uses
// array.DefaultCompare on the boxed keys.
//
// Arguments are validated before anything is written. If cmp panics, the
// elements moved so far stay moved and the returned error is a
// *array.ComparerError.
func SortPairs[K, V any](keys []K, items []V, index, length int, cmp func(a, b K) int) error {
	if err := checkRange("SortPairs", len(keys), index, length); err != nil {
		return err
	}
	if items != nil && len(items)-index < length {
		return fmt.Errorf("SortPairs: items length %d is shorter than keys range [%d, %d+%d): %w",
			len(items), index, index, length, array.ErrIndexOutOfRange)
	}
	if length < 2 {
		return nil
	}
	if !array.FastPathEnabled() {
		var erasedItems any
		if items != nil {
			erasedItems = items
		}
		return SortValues(keys, erasedItems, index, length, erasedComparer(cmp))
	}
	s := sorter[K, V, array.SliceKeys[K], array.SliceKeys[V], funcComparer[K]]{
		keys:   keys,
		items:  items,
		cmp:    comparerOf(cmp),
		paired: items != nil,
	}
	if err := s.run(index, index+length-1); err != nil {
		return fmt.Errorf("SortPairs: %w", err)
	}
	return nil
}

// SortKeySpace sorts length elements of keys starting at index, permuting
// items in lockstep when it is not nil. It is the entry point for custom
// storage.
func SortKeySpace[K, V any](keys array.KeySpace[K], items array.KeySpace[V], index, length int, cmp func(a, b K) int) error {
	if keys == nil {
		return fmt.Errorf("SortKeySpace: keys: %w", array.ErrNullArgument)
	}
	if err := checkRange("SortKeySpace", keys.Len(), index, length); err != nil {
		return err
	}
	if items != nil && items.Len()-index < length {
		return fmt.Errorf("SortKeySpace: items length %d is shorter than keys range: %w", items.Len(), array.ErrIndexOutOfRange)
	}
	s := sorter[K, V, array.KeySpace[K], array.KeySpace[V], funcComparer[K]]{
		keys:   keys,
		items:  items,
		cmp:    comparerOf(cmp),
		paired: items != nil,
	}
	if err := s.run(index, index+length-1); err != nil {
		return fmt.Errorf("SortKeySpace: %w", err)
	}
	return nil
}

// SortValues is the type-erased sort. keys and items are slices, pointers
// to arrays or rank-1 array.Views; index is absolute (it includes the lower
// bound) and both arrays must share the same lower bound. items may be nil.
// A nil cmp uses array.DefaultCompare, whose ErrNotComparable panic for
// unordered values is returned as a *array.ComparerError.
func SortValues(keys, items any, index, length int, cmp func(a, b any) int) error {
	kv, err := array.ViewOf(keys)
	if err != nil {
		return fmt.Errorf("SortValues: keys: %w", err)
	}
	if kv.Rank() != 1 {
		return fmt.Errorf("SortValues: keys rank %d: %w", kv.Rank(), array.ErrRankMismatch)
	}
	if err := kv.CheckRange(index, length); err != nil {
		return fmt.Errorf("SortValues: keys: %w", err)
	}

	var iv array.View
	paired := items != nil
	if paired {
		if iv, err = array.ViewOf(items); err != nil {
			return fmt.Errorf("SortValues: items: %w", err)
		}
		if iv.Rank() != 1 {
			return fmt.Errorf("SortValues: items rank %d: %w", iv.Rank(), array.ErrRankMismatch)
		}
		if iv.LowerBound(0) != kv.LowerBound(0) {
			return fmt.Errorf("SortValues: lower bounds %d and %d differ: %w", kv.LowerBound(0), iv.LowerBound(0), array.ErrInvalidArgument)
		}
		if err := iv.CheckRange(index, length); err != nil {
			return fmt.Errorf("SortValues: items: %w", err)
		}
	}
	if length < 2 {
		return nil
	}

	s := sorter[any, any, array.ValueKeys, array.ValueKeys, funcComparer[any]]{
		keys:   kv.Keys(),
		cmp:    comparerOf(cmp),
		paired: paired,
	}
	if paired {
		s.items = iv.Keys()
	}
	lo := kv.Flat(index)
	if err := s.run(lo, lo+length-1); err != nil {
		return fmt.Errorf("SortValues: %w", err)
	}
	return nil
}

// IsSorted reports whether data is sorted in ascending natural order.
func IsSorted[T constraints.Ordered](data []T) bool {
	k := orderedComparer[T]{}
	for i := 1; i < len(data); i++ {
		if k.Compare(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is sorted according to cmp. A panic in
// cmp propagates to the caller.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	k := comparerOf(cmp)
	for i := 1; i < len(data); i++ {
		if k.Compare(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

func checkRange(op string, n, index, length int) error {
	switch {
	case index < 0:
		return fmt.Errorf("%s: index %d is negative: %w", op, index, array.ErrIndexOutOfRange)
	case length < 0:
		return fmt.Errorf("%s: length %d is negative: %w", op, length, array.ErrIndexOutOfRange)
	case index > n-length:
		return fmt.Errorf("%s: range [%d, %d+%d) exceeds length %d: %w", op, index, index, length, n, array.ErrIndexOutOfRange)
	}
	return nil
}
