// Package sort provides the introspective sort and binary search engines of
// go-array. Both are written once against array.KeySpace and a comparator,
// and are instantiated either over fast contiguous slices or over erased
// array.View storage.
//
// # Algorithm
//
// The sort is an introsort variant that combines:
//   - A single compare-and-swap for 2 elements and a 3-element sorting network
//   - Insertion sort for partitions of up to 16 elements
//   - Median-of-three quicksort partitioning for larger partitions
//   - Heapsort fallback once the depth budget 2*(floor(log2(n))+1) is spent,
//     which guarantees O(n log n) worst case
//
// An optional items KeySpace is permuted in lockstep with the keys.
//
// The sort is not stable: equal keys (and their items) may be reordered.
// Input that is already sorted is detected up front and never written.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-array/array/contrib/sort"
//
//	func ProcessData(data []float32) {
//	    sort.Sort(data)  // In-place ascending sort
//	}
//
//	func ByName(keys []string, ids []int) error {
//	    return sort.SortPairs(keys, ids, 0, len(keys), strings.Compare)
//	}
//
// # Errors
//
// A comparator that panics makes the call return a *array.ComparerError
// ("comparer failed"); a comparator inconsistent enough to push a partition
// cursor out of range returns one marked Inconsistent ("invalid comparer
// implementation"). Both match array.ErrInvalidComparer. Elements already
// moved when the comparator failed stay where they are.
package sort
