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

package main

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/ajroetker/go-array/array"
	"github.com/ajroetker/go-array/array/contrib/sort"
)

// Config sizes a run.
type Config struct {
	Trials int
	Size   int
	Seed   uint64
}

// checkFunc runs one randomized trial and returns a violation, if any.
type checkFunc func(cfg Config, seed uint64) error

var suiteByName = map[string]checkFunc{
	"copy":    checkCopy,
	"convert": checkConvert,
	"sort":    checkSort,
	"pairs":   checkPairs,
	"search":  checkSearch,
	"failure": checkFailure,
}

func suiteNames() []string {
	return slices.Sorted(maps.Keys(suiteByName))
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomInts fills n values drawn from [0, span), in one of four shapes:
// random, ascending, descending or constant.
func randomInts(r *rand.Rand, n int, span int64) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = r.Int64N(span)
	}
	switch r.IntN(4) {
	case 1:
		slices.Sort(data)
	case 2:
		slices.Sort(data)
		slices.Reverse(data)
	case 3:
		for i := range data {
			data[i] = data[0]
		}
	}
	return data
}

// checkCopy: overlapping copies within one array match a copy through a
// temporary buffer, for untraced and traced elements, fast and generic.
func checkCopy(cfg Config, seed uint64) error {
	r := newRand(seed)
	n := 1 + r.IntN(cfg.Size)
	length := r.IntN(n + 1)
	si, di := r.IntN(n-length+1), r.IntN(n-length+1)

	data := make([]int32, n)
	for i := range data {
		data[i] = r.Int32()
	}
	want := slices.Clone(data)
	copy(want[di:], slices.Clone(data[si:si+length]))

	fast := slices.Clone(data)
	if err := array.CopySlice(fast, si, fast, di, length); err != nil {
		return fmt.Errorf("seed %d: CopySlice: %w", seed, err)
	}
	generic := slices.Clone(data)
	if err := array.Copy(generic, si, generic, di, length); err != nil {
		return fmt.Errorf("seed %d: Copy: %w", seed, err)
	}
	if !slices.Equal(fast, want) || !slices.Equal(generic, want) {
		return fmt.Errorf("seed %d: overlapping copy (%d -> %d, %d) diverged from memmove", seed, si, di, length)
	}

	strs := make([]string, n)
	for i, v := range data {
		strs[i] = strconv.Itoa(int(v))
	}
	wantStrs := slices.Clone(strs)
	copy(wantStrs[di:], slices.Clone(strs[si:si+length]))
	if err := array.Copy(strs, si, strs, di, length); err != nil {
		return fmt.Errorf("seed %d: Copy strings: %w", seed, err)
	}
	if !slices.Equal(strs, wantStrs) {
		return fmt.Errorf("seed %d: overlapping string copy diverged from memmove", seed)
	}
	return nil
}

// checkConvert: widening and box/unbox round trips reproduce the source, and
// a bad element leaves a constrained destination untouched.
func checkConvert(cfg Config, seed uint64) error {
	r := newRand(seed)
	n := 1 + r.IntN(cfg.Size)
	src := make([]int32, n)
	for i := range src {
		src[i] = r.Int32() - r.Int32()
	}

	wide := make([]float64, n)
	if err := array.CopyConvert(src, 0, wide, 0, n); err != nil {
		return fmt.Errorf("seed %d: CopyConvert: %w", seed, err)
	}
	for i, v := range src {
		if wide[i] != float64(v) {
			return fmt.Errorf("seed %d: widened[%d] = %v, want %v", seed, i, wide[i], v)
		}
	}

	boxed := make([]any, n)
	if err := array.Copy(src, 0, boxed, 0, n); err != nil {
		return fmt.Errorf("seed %d: box: %w", seed, err)
	}
	back := make([]int32, n)
	if err := array.ConstrainedCopy(boxed, 0, back, 0, n); err != nil {
		return fmt.Errorf("seed %d: unbox: %w", seed, err)
	}
	if !slices.Equal(back, src) {
		return fmt.Errorf("seed %d: box/unbox round trip diverged", seed)
	}

	bad := r.IntN(n)
	boxed[bad] = "not a number"
	untouched := make([]int32, n)
	if err := array.ConstrainedCopy(boxed, 0, untouched, 0, n); !errors.Is(err, array.ErrArrayTypeMismatch) {
		return fmt.Errorf("seed %d: constrained unbox of bad element: got %v", seed, err)
	}
	if slices.ContainsFunc(untouched, func(v int32) bool { return v != 0 }) {
		return fmt.Errorf("seed %d: constrained copy wrote before failing", seed)
	}
	partial := make([]int32, n)
	if err := array.Copy(boxed, 0, partial, 0, n); !errors.Is(err, array.ErrArrayTypeMismatch) {
		return fmt.Errorf("seed %d: unbox of bad element: got %v", seed, err)
	}
	if !slices.Equal(partial[:bad], src[:bad]) {
		return fmt.Errorf("seed %d: ordinary copy lost the elements before the failure", seed)
	}
	return nil
}

// checkSort: fast and generic sorts both produce the sorted permutation, and
// a sub-range sort leaves the rest alone.
func checkSort(cfg Config, seed uint64) error {
	r := newRand(seed)
	n := r.IntN(cfg.Size + 1)
	data := randomInts(r, n, int64(1+r.IntN(4*cfg.Size)))
	want := slices.Sorted(slices.Values(data))

	fast := slices.Clone(data)
	sort.Sort(fast)
	if !slices.Equal(fast, want) {
		return fmt.Errorf("seed %d: Sort is not the sorted permutation", seed)
	}
	generic := slices.Clone(data)
	if err := sort.SortValues(generic, nil, 0, n, nil); err != nil {
		return fmt.Errorf("seed %d: SortValues: %w", seed, err)
	}
	if !slices.Equal(generic, want) {
		return fmt.Errorf("seed %d: SortValues is not the sorted permutation", seed)
	}

	length := r.IntN(n + 1)
	index := r.IntN(n - length + 1)
	part := slices.Clone(data)
	if err := sort.SortRange(part, index, length, cmp.Compare[int64]); err != nil {
		return fmt.Errorf("seed %d: SortRange: %w", seed, err)
	}
	if !slices.Equal(part[:index], data[:index]) || !slices.Equal(part[index+length:], data[index+length:]) {
		return fmt.Errorf("seed %d: SortRange wrote outside [%d, %d)", seed, index, index+length)
	}
	if !sort.IsSorted(part[index : index+length]) {
		return fmt.Errorf("seed %d: SortRange left [%d, %d) unsorted", seed, index, index+length)
	}
	return nil
}

// checkPairs: items follow their keys.
func checkPairs(cfg Config, seed uint64) error {
	r := newRand(seed)
	n := r.IntN(cfg.Size + 1)
	keys := randomInts(r, n, int64(1+r.IntN(cfg.Size)))
	orig := slices.Clone(keys)
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	if err := sort.SortPairs(keys, items, 0, n, cmp.Compare[int64]); err != nil {
		return fmt.Errorf("seed %d: SortPairs: %w", seed, err)
	}
	if !sort.IsSorted(keys) {
		return fmt.Errorf("seed %d: SortPairs left keys unsorted", seed)
	}
	seen := make([]bool, n)
	for i, it := range items {
		if seen[it] || orig[it] != keys[i] {
			return fmt.Errorf("seed %d: item %d detached from its key", seed, it)
		}
		seen[it] = true
	}
	return nil
}

// checkSearch: fast and generic searches agree and honor the
// complement convention.
func checkSearch(cfg Config, seed uint64) error {
	r := newRand(seed)
	n := r.IntN(cfg.Size + 1)
	span := int64(1 + r.IntN(2*cfg.Size))
	data := randomInts(r, n, span)
	slices.Sort(data)

	for range 8 {
		value := r.Int64N(span+2) - 1
		got := sort.BinarySearch(data, value)
		generic, err := sort.BinarySearchValues(data, 0, n, value, nil)
		if err != nil {
			return fmt.Errorf("seed %d: BinarySearchValues: %w", seed, err)
		}
		if got != generic {
			return fmt.Errorf("seed %d: search %d: fast %d, generic %d", seed, value, got, generic)
		}
		if got >= 0 {
			if data[got] != value {
				return fmt.Errorf("seed %d: search %d returned index of %d", seed, value, data[got])
			}
			continue
		}
		ins := ^got
		if (ins > 0 && data[ins-1] >= value) || (ins < n && data[ins] <= value) {
			return fmt.Errorf("seed %d: search %d: insertion point %d is wrong", seed, value, ins)
		}
	}
	return nil
}

// checkFailure: a comparator that panics part way through surfaces as
// ErrInvalidComparer, keeps the multiset intact, and does not disturb the
// next sort.
func checkFailure(cfg Config, seed uint64) error {
	r := newRand(seed)
	n := 2 + r.IntN(cfg.Size)
	data := randomInts(r, n, int64(n))
	want := slices.Sorted(slices.Values(data))

	// Any sort of n elements makes at least n-1 comparisons.
	failAt := 1 + r.IntN(n-1)
	calls := 0
	failing := func(a, b int64) int {
		calls++
		if calls == failAt {
			panic("comparator exploded")
		}
		return cmp.Compare(a, b)
	}
	err := sort.SortFunc(data, failing)
	if !errors.Is(err, array.ErrInvalidComparer) {
		return fmt.Errorf("seed %d: failing comparator returned %v", seed, err)
	}
	if !slices.Equal(slices.Sorted(slices.Values(data)), want) {
		return fmt.Errorf("seed %d: failed sort lost elements", seed)
	}

	if err := sort.SortFunc(data, cmp.Compare[int64]); err != nil {
		return fmt.Errorf("seed %d: sort after failure: %w", seed, err)
	}
	if !slices.Equal(data, want) {
		return fmt.Errorf("seed %d: sort after failure is wrong", seed)
	}
	return nil
}
