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

import "unsafe"

// This file holds the primitive widening table. Each (source, destination)
// tag pair the standard widening rules allow maps to a routine specialized
// for that pair, so a copy looks up its routine once and then runs a tight
// loop with no per-element dispatch.
//
// Integer to floating-point entries follow the standard table even where
// float32/float64 cannot represent every source value exactly
// (int64 -> float64, int32 -> float32, ...).

// widenFunc converts n elements starting at src into n elements at dst.
type widenFunc func(dst, src unsafe.Pointer, n int)

var wideners [numNumeric][numNumeric]widenFunc

func init() {
	widening[uint8, uint16](NumUint8, NumUint16)
	widening[uint8, int16](NumUint8, NumInt16)
	widening[uint8, uint32](NumUint8, NumUint32)
	widening[uint8, int32](NumUint8, NumInt32)
	widening[uint8, uint64](NumUint8, NumUint64)
	widening[uint8, int64](NumUint8, NumInt64)
	widening[uint8, float32](NumUint8, NumFloat32)
	widening[uint8, float64](NumUint8, NumFloat64)

	widening[int8, int16](NumInt8, NumInt16)
	widening[int8, int32](NumInt8, NumInt32)
	widening[int8, int64](NumInt8, NumInt64)
	widening[int8, float32](NumInt8, NumFloat32)
	widening[int8, float64](NumInt8, NumFloat64)

	widening[uint16, uint32](NumUint16, NumUint32)
	widening[uint16, int32](NumUint16, NumInt32)
	widening[uint16, uint64](NumUint16, NumUint64)
	widening[uint16, int64](NumUint16, NumInt64)
	widening[uint16, float32](NumUint16, NumFloat32)
	widening[uint16, float64](NumUint16, NumFloat64)

	widening[int16, int32](NumInt16, NumInt32)
	widening[int16, int64](NumInt16, NumInt64)
	widening[int16, float32](NumInt16, NumFloat32)
	widening[int16, float64](NumInt16, NumFloat64)

	widening[uint32, uint64](NumUint32, NumUint64)
	widening[uint32, int64](NumUint32, NumInt64)
	widening[uint32, float32](NumUint32, NumFloat32)
	widening[uint32, float64](NumUint32, NumFloat64)

	widening[int32, int64](NumInt32, NumInt64)
	widening[int32, float32](NumInt32, NumFloat32)
	widening[int32, float64](NumInt32, NumFloat64)

	widening[uint64, float32](NumUint64, NumFloat32)
	widening[uint64, float64](NumUint64, NumFloat64)

	widening[int64, float32](NumInt64, NumFloat32)
	widening[int64, float64](NumInt64, NumFloat64)

	widening[float32, float64](NumFloat32, NumFloat64)
}

func widening[S, D Numbers](s, d Numeric) {
	wideners[s][d] = widenLoop[S, D]
}

// CanWiden reports whether every value of src converts to dst under the
// standard widening rules. Identical tags do not widen.
func CanWiden(src, dst Numeric) bool {
	if src >= numNumeric || dst >= numNumeric {
		return false
	}
	return wideners[src][dst] != nil
}

// widenLoop converts in blocks of MaxLanes[D] so the compiler can drop
// bounds checks inside each block. Every source element is read once.
func widenLoop[S, D Numbers](dst, src unsafe.Pointer, n int) {
	s := unsafe.Slice((*S)(src), n)
	d := unsafe.Slice((*D)(dst), n)
	lanes := max(MaxLanes[D](), 1)
	i := 0
	for ; i+lanes <= n; i += lanes {
		in := s[i : i+lanes : i+lanes]
		out := d[i : i+lanes : i+lanes]
		for j, v := range in {
			out[j] = D(v)
		}
	}
	for ; i < n; i++ {
		d[i] = D(s[i])
	}
}
