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
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/go-array/array"
)

// Generate random data for benchmarks
func generateFloat64(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rand.Float64() * 1000
	}
	return data
}

func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

// Float64 benchmarks
func BenchmarkSort_Float64_100(b *testing.B) {
	benchmarkSortFloat64(b, 100)
}

func BenchmarkSort_Float64_10000(b *testing.B) {
	benchmarkSortFloat64(b, 10000)
}

func benchmarkSortFloat64(b *testing.B, n int) {
	// Generate reference data
	ref := generateFloat64(n)
	data := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Int32 benchmarks
func BenchmarkSort_Int32_100(b *testing.B) {
	benchmarkSortInt32(b, 100)
}

func BenchmarkSort_Int32_10000(b *testing.B) {
	benchmarkSortInt32(b, 10000)
}

func benchmarkSortInt32(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

func BenchmarkSortPairs_Int32_10000(b *testing.B) {
	ref := generateInt32(10000)
	keys := make([]int32, len(ref))
	items := make([]int, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(keys, ref)
		_ = SortPairs(keys, items, 0, len(keys), func(a, b int32) int { return int(a) - int(b) })
	}
}

// Erased engine, for comparison with the typed one above.
func BenchmarkSortValues_Int32_10000(b *testing.B) {
	ref := generateInt32(10000)
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		_ = SortValues(data, nil, 0, len(data), nil)
	}
}

func BenchmarkSortGeneric_Float64_10000(b *testing.B) {
	prev := array.SetFastPath(false)
	defer array.SetFastPath(prev)
	benchmarkSortFloat64(b, 10000)
}

// Stdlib benchmarks for comparison
func BenchmarkStdlib_Float64_10000(b *testing.B) {
	ref := generateFloat64(10000)
	data := make([]float64, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func BenchmarkStdlib_Int32_10000(b *testing.B) {
	ref := generateInt32(10000)
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func BenchmarkBinarySearch_Int32_10000(b *testing.B) {
	data := generateInt32(10000)
	slices.Sort(data)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BinarySearch(data, data[i%len(data)])
	}
}
