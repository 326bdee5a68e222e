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

import "github.com/ajroetker/go-array/array"

// Partitions of this size or smaller use insertion sort (or the 2- and
// 3-element special cases).
const introsortSizeThreshold = 16

// sorter holds one sort call. It is created per call and never shared, so a
// failed call leaves nothing behind that could affect the next one.
type sorter[K, V any, KS array.KeySpace[K], VS array.KeySpace[V], C Comparer[K]] struct {
	keys   KS
	items  VS
	cmp    C
	paired bool
}

// run sorts the inclusive range [lo, hi]. Comparator panics are recovered
// and returned as a *array.ComparerError; writes made before the failure
// are kept.
func (s *sorter[K, V, KS, VS, C]) run(lo, hi int) (err error) {
	if hi <= lo {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = array.RecoverComparer(r)
		}
	}()
	n := hi - lo + 1
	if n > introsortSizeThreshold && s.isSorted(lo, hi) {
		return nil
	}
	s.introSort(lo, hi, depthLimit(n))
	return nil
}

// depthLimit returns 2*(floor(log2(n))+1), the number of partitioning
// rounds allowed before a range falls back to heapsort.
func depthLimit(n int) int {
	depth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		depth++
	}
	return 2 * depth
}

func (s *sorter[K, V, KS, VS, C]) introSort(lo, hi, depth int) {
	for hi > lo {
		n := hi - lo + 1
		if n <= introsortSizeThreshold {
			switch n {
			case 2:
				s.swapIfGreater(lo, hi)
			case 3:
				s.swapIfGreater(lo, hi-1)
				s.swapIfGreater(lo, hi)
				s.swapIfGreater(hi-1, hi)
			default:
				s.insertionSort(lo, hi)
			}
			return
		}

		if depth == 0 {
			s.heapSort(lo, hi)
			return
		}
		depth--

		p := s.partition(lo, hi)
		// Recurse right, iterate left.
		s.introSort(p+1, hi, depth)
		hi = p - 1
	}
}

func (s *sorter[K, V, KS, VS, C]) swap(i, j int) {
	s.keys.Swap(i, j)
	if s.paired {
		s.items.Swap(i, j)
	}
}

func (s *sorter[K, V, KS, VS, C]) less(i, j int) bool {
	return s.cmp.Compare(s.keys.Get(i), s.keys.Get(j)) < 0
}

func (s *sorter[K, V, KS, VS, C]) swapIfGreater(i, j int) {
	if i != j && s.cmp.Compare(s.keys.Get(i), s.keys.Get(j)) > 0 {
		s.swap(i, j)
	}
}

func (s *sorter[K, V, KS, VS, C]) isSorted(lo, hi int) bool {
	for i := lo; i < hi; i++ {
		if s.less(i+1, i) {
			return false
		}
	}
	return true
}

// partition picks the median of lo, mid and hi, parks it at hi-1 and runs a
// Hoare partition of (lo, hi-1). It returns the pivot's final index.
func (s *sorter[K, V, KS, VS, C]) partition(lo, hi int) int {
	mid := lo + (hi-lo)>>1
	s.swapIfGreater(lo, mid)
	s.swapIfGreater(lo, hi)
	s.swapIfGreater(mid, hi)

	pivot := s.keys.Get(mid)
	s.swap(mid, hi-1)

	// keys[lo] <= pivot and keys[hi-1] == pivot stop the cursors. A cursor
	// that passes them means the comparator contradicted itself.
	left, right := lo, hi-1
	for left < right {
		for {
			left++
			if left > hi-1 {
				array.PartitionOverrun()
			}
			if s.cmp.Compare(s.keys.Get(left), pivot) >= 0 {
				break
			}
		}
		for {
			right--
			if right < lo {
				array.PartitionOverrun()
			}
			if s.cmp.Compare(pivot, s.keys.Get(right)) >= 0 {
				break
			}
		}
		if left >= right {
			break
		}
		s.swap(left, right)
	}

	if left != hi-1 {
		s.swap(left, hi-1)
	}
	return left
}

// insertionSort sorts [lo, hi]. Elements that are already in place are
// never written.
func (s *sorter[K, V, KS, VS, C]) insertionSort(lo, hi int) {
	for i := lo; i < hi; i++ {
		t := s.keys.Get(i + 1)
		j := i
		for j >= lo && s.cmp.Compare(t, s.keys.Get(j)) < 0 {
			j--
		}
		if j == i {
			continue
		}

		var ti V
		if s.paired {
			ti = s.items.Get(i + 1)
		}
		for k := i; k > j; k-- {
			s.keys.Set(k+1, s.keys.Get(k))
			if s.paired {
				s.items.Set(k+1, s.items.Get(k))
			}
		}
		s.keys.Set(j+1, t)
		if s.paired {
			s.items.Set(j+1, ti)
		}
	}
}

// heapSort sorts [lo, hi] with a max-heap: bottom-up build, then repeated
// extraction of the maximum.
func (s *sorter[K, V, KS, VS, C]) heapSort(lo, hi int) {
	n := hi - lo + 1
	if n <= 1 {
		return
	}

	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(lo, i, n)
	}

	for i := n - 1; i > 0; i-- {
		s.swap(lo, lo+i)
		s.siftDown(lo, 0, i)
	}
}

// siftDown restores the heap property for the heap of n elements rooted at
// lo, starting from heap index i.
func (s *sorter[K, V, KS, VS, C]) siftDown(lo, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && s.less(lo+largest, lo+left) {
			largest = left
		}
		if right < n && s.less(lo+largest, lo+right) {
			largest = right
		}

		if largest == i {
			return
		}

		s.swap(lo+i, lo+largest)
		i = largest
	}
}
