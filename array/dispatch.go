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
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel is the widest instruction set detected on this CPU. The
// engine uses it to size conversion blocks; it never changes results.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable SIMD width was detected.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth = 16
	fastPath     = !NoFastEnv()
)

// CurrentLevel returns the detected instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes used to size blocks.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the detected level.
func CurrentName() string {
	return currentLevel.String()
}

// NoFastEnv checks if the ARRAY_NO_FAST environment variable is set.
// When set, typed entry points route through the generic (erased) engine,
// which is useful to cross-check both paths.
func NoFastEnv() bool {
	val := os.Getenv("ARRAY_NO_FAST")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// FastPathEnabled reports whether typed entry points use direct slice
// access.
func FastPathEnabled() bool {
	return fastPath
}

// SetFastPath enables or disables the fast paths and returns the previous
// setting. It is meant for tests and benchmarks and is not safe to call
// concurrently with engine operations.
func SetFastPath(enabled bool) bool {
	prev := fastPath
	fastPath = enabled
	return prev
}

// MaxLanes returns how many T values fit in CurrentWidth bytes.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T any]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
