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

import "fmt"

// Fill sets all elements in dst to value.
// Uses a doubling pattern so the work is O(log n) calls to the built-in
// memmove.
func Fill[T any](dst []T, value T) {
	n := len(dst)
	if n == 0 {
		return
	}

	dst[0] = value

	// Double the filled region each iteration
	for filled := 1; filled < n; filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// Clear sets length elements of storage starting at the absolute index to
// the element type's zero value.
func Clear(storage any, index, length int) error {
	v, err := ViewOf(storage)
	if err != nil {
		return fmt.Errorf("Clear: %w", err)
	}
	if err := v.CheckRange(index, length); err != nil {
		return fmt.Errorf("Clear: %w", err)
	}
	if length == 0 {
		return nil
	}
	lo := v.Flat(index)
	v.data.Slice(lo, lo+length).Clear()
	return nil
}

// Reverse reverses the order of length elements of storage starting at the
// absolute index. Ranked views are reversed in flat order.
func Reverse(storage any, index, length int) error {
	v, err := ViewOf(storage)
	if err != nil {
		return fmt.Errorf("Reverse: %w", err)
	}
	if err := v.CheckRange(index, length); err != nil {
		return fmt.Errorf("Reverse: %w", err)
	}
	if length < 2 {
		return nil
	}
	keys := v.Keys()
	for i, j := v.Flat(index), v.Flat(index)+length-1; i < j; i, j = i+1, j-1 {
		keys.Swap(i, j)
	}
	return nil
}
