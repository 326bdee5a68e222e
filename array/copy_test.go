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

package array_test

import (
	"fmt"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/ajroetker/go-array/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

type named struct {
	id   int
	name string
}

func (n named) String() string { return fmt.Sprintf("%d:%s", n.id, n.name) }

func TestCopy_OverlapShiftsLeft(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	require.NoError(t, array.Copy(src, 1, src, 0, 4))
	assert.Equal(t, []int{2, 3, 4, 5, 5}, src)
}

func TestCopy_OverlapShiftsRight(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	require.NoError(t, array.Copy(src, 0, src, 1, 4))
	assert.Equal(t, []int{1, 1, 2, 3, 4}, src)
}

func TestCopy_OverlapTraced(t *testing.T) {
	src := []string{"a", "b", "c", "d", "e"}
	require.NoError(t, array.Copy(src, 0, src, 2, 3))
	assert.Equal(t, []string{"a", "b", "a", "b", "c"}, src)

	require.NoError(t, array.Copy(src, 2, src, 0, 3))
	assert.Equal(t, []string{"a", "b", "c", "b", "c"}, src)
}

func TestCopySlice_MatchesGeneric(t *testing.T) {
	for _, tc := range []struct {
		name           string
		si, di, length int
	}{
		{"left", 3, 1, 5},
		{"right", 1, 3, 5},
		{"disjoint", 0, 6, 3},
		{"empty", 4, 4, 0},
		{"full", 0, 0, 9},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fast := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
			generic := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
			require.NoError(t, array.CopySlice(fast, tc.si, fast, tc.di, tc.length))
			require.NoError(t, array.Copy(generic, tc.si, generic, tc.di, tc.length))
			assert.Equal(t, generic, fast)
		})
	}
}

func TestCopy_RoundTripAcrossStrategies(t *testing.T) {
	ints := []int32{-3, 0, 7, math.MaxInt32, math.MinInt32}

	// Widen
	wide := make([]int64, len(ints))
	require.NoError(t, array.Copy(ints, 0, wide, 0, len(ints)))
	for i, v := range ints {
		assert.Equal(t, int64(v), wide[i])
	}

	// Box then unbox
	boxed := make([]any, len(ints))
	require.NoError(t, array.Copy(ints, 0, boxed, 0, len(ints)))
	for i, v := range ints {
		assert.Equal(t, v, boxed[i])
	}
	back := make([]int32, len(ints))
	require.NoError(t, array.Copy(boxed, 0, back, 0, len(ints)))
	assert.Equal(t, ints, back)
}

func TestCopy_NamedNumericMovesAsIs(t *testing.T) {
	src := []float64{1.5, -2, 37}
	dst := make([]celsius, 3)
	require.NoError(t, array.Copy(src, 0, dst, 0, 3))
	assert.Equal(t, []celsius{1.5, -2, 37}, dst)

	dst2 := make([]celsius, 3)
	require.NoError(t, array.CopyConvert(src, 0, dst2, 0, 3))
	assert.Equal(t, dst, dst2)
}

func TestCopy_BoxIntoInterface(t *testing.T) {
	src := []named{{1, "a"}, {2, "b"}}
	dst := make([]fmt.Stringer, 2)
	require.NoError(t, array.Copy(src, 0, dst, 0, 2))
	assert.Equal(t, "1:a", dst[0].String())
	assert.Equal(t, "2:b", dst[1].String())
}

func TestCopy_BoxNullable(t *testing.T) {
	src := []array.Nullable[int]{array.Some(4), {}, array.Some(-1)}
	dst := make([]any, 3)
	require.NoError(t, array.Copy(src, 0, dst, 0, 3))
	assert.Equal(t, []any{4, nil, -1}, dst)
}

func TestCopy_UnboxNullable(t *testing.T) {
	src := []any{7, nil, 9}
	dst := make([]array.Nullable[int], 3)
	require.NoError(t, array.Copy(src, 0, dst, 0, 3))
	assert.Equal(t, []array.Nullable[int]{array.Some(7), {}, array.Some(9)}, dst)
}

func TestCopy_UnboxNilIntoValueFails(t *testing.T) {
	src := []any{1, nil, 3}
	dst := make([]int, 3)
	err := array.Copy(src, 0, dst, 0, 3)
	require.ErrorIs(t, err, array.ErrArrayTypeMismatch)
	assert.Contains(t, err.Error(), "element 1")
	assert.Equal(t, []int{1, 0, 0}, dst)
}

func TestCopy_UnboxWidens(t *testing.T) {
	src := []any{int8(-4), uint16(9), float32(0.5), 2.25}
	dst := make([]float64, 4)
	require.NoError(t, array.Copy(src, 0, dst, 0, 4))
	assert.Equal(t, []float64{-4, 9, 0.5, 2.25}, dst)

	narrow := make([]int16, 1)
	err := array.Copy([]any{int64(3)}, 0, narrow, 0, 1)
	require.ErrorIs(t, err, array.ErrArrayTypeMismatch)
}

type optionalNote struct {
	array.Nullable[int]
	Note string
}

type optionalRef struct {
	*array.Nullable[int]
}

func TestCopy_EmbeddedNullableIsAggregate(t *testing.T) {
	refs := []optionalRef{{}, {&array.Nullable[int]{Value: 2, Valid: true}}}
	v, err := array.ViewOf(refs)
	require.NoError(t, err)
	assert.Nil(t, v.Descriptor().Nullable)

	boxedRefs := make([]any, 2)
	require.NoError(t, array.Copy(refs, 0, boxedRefs, 0, 2))
	assert.Equal(t, []any{refs[0], refs[1]}, boxedRefs)

	notes := []optionalNote{{array.Some(3), "kept"}}
	boxed := make([]any, 1)
	require.NoError(t, array.Copy(notes, 0, boxed, 0, 1))
	assert.Equal(t, optionalNote{array.Some(3), "kept"}, boxed[0])

	back := make([]optionalNote, 1)
	require.NoError(t, array.Copy(boxed, 0, back, 0, 1))
	assert.Equal(t, notes, back)

	err = array.Copy([]any{5}, 0, back, 0, 1)
	require.ErrorIs(t, err, array.ErrArrayTypeMismatch)
	err = array.Copy([]any{nil}, 0, back, 0, 1)
	require.ErrorIs(t, err, array.ErrArrayTypeMismatch)
	assert.Equal(t, notes, back)
}

func TestCopy_CastUpAndDown(t *testing.T) {
	r1, r2 := strings.NewReader("x"), strings.NewReader("y")
	readers := []*strings.Reader{r1, nil, r2}

	up := make([]io.Reader, 3)
	require.NoError(t, array.Copy(readers, 0, up, 0, 3))
	assert.Same(t, r1, up[0])

	anys := []any{r1, nil, r2}
	down := make([]*strings.Reader, 3)
	require.NoError(t, array.Copy(anys, 0, down, 0, 3))
	assert.Equal(t, []*strings.Reader{r1, nil, r2}, down)
}

func TestCopy_CastFailureKeepsPartialWrites(t *testing.T) {
	r := strings.NewReader("x")
	src := []any{r, r, "nope", r}
	dst := make([]io.Reader, 4)

	err := array.Copy(src, 0, dst, 0, 4)
	require.ErrorIs(t, err, array.ErrArrayTypeMismatch)
	assert.Contains(t, err.Error(), "element 2")
	assert.NotNil(t, dst[0])
	assert.NotNil(t, dst[1])
	assert.Nil(t, dst[2])
	assert.Nil(t, dst[3])
}

func TestConstrainedCopy_AllOrNothing(t *testing.T) {
	r := strings.NewReader("x")
	src := []any{r, r, "nope", r}
	dst := make([]io.Reader, 4)

	err := array.ConstrainedCopy(src, 0, dst, 0, 4)
	require.ErrorIs(t, err, array.ErrArrayTypeMismatch)
	assert.Equal(t, make([]io.Reader, 4), dst)

	ints := []int{1, 2, 3}
	require.ErrorIs(t, array.ConstrainedCopy([]any{1, "2", 3}, 0, ints, 0, 3), array.ErrArrayTypeMismatch)
	assert.Equal(t, []int{1, 2, 3}, ints)

	require.NoError(t, array.ConstrainedCopy([]any{4, 5, 6}, 0, ints, 0, 3))
	assert.Equal(t, []int{4, 5, 6}, ints)
}

func TestConstrainedCopy_OverlapAndWiden(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5}
	require.NoError(t, array.ConstrainedCopy(data, 1, data, 0, 4))
	assert.Equal(t, []uint8{2, 3, 4, 5, 5}, data)

	wide := make([]float32, 5)
	require.NoError(t, array.ConstrainedCopy(data, 0, wide, 0, 5))
	assert.Equal(t, []float32{2, 3, 4, 5, 5}, wide)
}

func TestCopy_Rejects(t *testing.T) {
	for _, tc := range []struct {
		name     string
		src, dst any
	}{
		{"narrowing", []int64{1}, make([]int32, 1)},
		{"signed into unsigned", []int8{1}, make([]uint8, 1)},
		{"float into int", []float64{1}, make([]int64, 1)},
		{"unrelated pointers", []*int{nil}, make([]*string, 1)},
		{"value into unimplemented interface", []int{1}, make([]io.Reader, 1)},
		{"string into int", []string{"1"}, make([]int, 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, array.Copy(tc.src, 0, tc.dst, 0, 1), array.ErrArrayTypeMismatch)
		})
	}
}

func TestCopy_ArgumentErrors(t *testing.T) {
	data := []int{1, 2, 3}
	var nilArray *[4]int

	require.ErrorIs(t, array.Copy(nil, 0, data, 0, 0), array.ErrNullArgument)
	require.ErrorIs(t, array.Copy(data, 0, nil, 0, 0), array.ErrNullArgument)
	require.ErrorIs(t, array.Copy(nilArray, 0, data, 0, 0), array.ErrNullArgument)
	require.ErrorIs(t, array.Copy(42, 0, data, 0, 0), array.ErrInvalidArgument)
	require.ErrorIs(t, array.Copy([3]int{}, 0, data, 0, 0), array.ErrInvalidArgument)

	require.ErrorIs(t, array.Copy(data, -1, data, 0, 1), array.ErrIndexOutOfRange)
	require.ErrorIs(t, array.Copy(data, 0, data, 0, -1), array.ErrIndexOutOfRange)
	require.ErrorIs(t, array.Copy(data, 2, data, 0, 2), array.ErrIndexOutOfRange)
	require.ErrorIs(t, array.Copy(data, 0, data, 2, 2), array.ErrIndexOutOfRange)
	require.ErrorIs(t, array.Copy(data, math.MaxInt, data, 0, 1), array.ErrIndexOutOfRange)
	require.ErrorIs(t, array.CopySlice(data, 0, data, 1, 3), array.ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 2, 3}, data)
}

func TestCopy64_LengthOverflow(t *testing.T) {
	data := []int{1, 2, 3}
	require.ErrorIs(t, array.Copy64(data, 0, data, 0, math.MaxInt32+1), array.ErrLengthOverflow)
	require.ErrorIs(t, array.Copy64(data, math.MinInt64, data, 0, 1), array.ErrLengthOverflow)
	require.ErrorIs(t, array.Copy64(data, -1, data, 0, 1), array.ErrIndexOutOfRange)
	require.NoError(t, array.Copy64(data, 1, data, 0, 2))
	assert.Equal(t, []int{2, 3, 3}, data)
}

func TestCopyN_FromLowerBounds(t *testing.T) {
	src := []int{1, 2, 3, 4}
	dst := make([]int, 4)
	require.NoError(t, array.CopyN(src, dst, 3))
	assert.Equal(t, []int{1, 2, 3, 0}, dst)

	ranked, err := array.RankedView([]int{9, 9, 9, 9}, []int{4}, []int{10})
	require.NoError(t, err)
	require.NoError(t, array.CopyN(src, ranked, 2))
	require.NoError(t, array.Copy(ranked, 10, dst, 0, 4))
	assert.Equal(t, []int{1, 2, 9, 9}, dst)
}

func TestCopy_RankedViews(t *testing.T) {
	storage := []int{0, 1, 2, 3, 4, 5}
	grid, err := array.RankedView(storage, []int{2, 3}, []int{1, 0})
	require.NoError(t, err)

	flat := make([]int, 6)
	require.ErrorIs(t, array.Copy(grid, 1, flat, 0, 6), array.ErrRankMismatch)

	other, err := array.RankedView(make([]int, 6), []int{3, 2}, []int{1, 5})
	require.NoError(t, err)
	require.NoError(t, array.Copy(grid, 2, other, 1, 5))
	require.ErrorIs(t, array.Copy(grid, 0, other, 1, 1), array.ErrIndexOutOfRange)

	keys := other.Keys()
	got := make([]any, keys.Len())
	for i := range got {
		got[i] = keys.Get(i)
	}
	assert.Equal(t, []any{1, 2, 3, 4, 5, 0}, got)
}

func TestCopy_PointerToArray(t *testing.T) {
	src := [4]uint16{10, 20, 30, 40}
	var dst [4]uint64
	require.NoError(t, array.Copy(&src, 1, &dst, 0, 3))
	assert.Equal(t, [4]uint64{20, 30, 40, 0}, dst)
}

func TestCopyConvert_FallsBackToGeneric(t *testing.T) {
	src := []int{1, 2}
	dst := make([]any, 2)
	require.NoError(t, array.CopyConvert(src, 0, dst, 0, 2))
	assert.Equal(t, []any{1, 2}, dst)

	require.ErrorIs(t, array.CopyConvert([]float64{1}, 0, make([]float32, 1), 0, 1), array.ErrArrayTypeMismatch)
}

func TestCopyConvert_NoFastPath(t *testing.T) {
	prev := array.SetFastPath(false)
	defer array.SetFastPath(prev)

	src := []int16{-1, 2, -3}
	dst := make([]float64, 3)
	require.NoError(t, array.CopyConvert(src, 0, dst, 0, 3))
	assert.Equal(t, []float64{-1, 2, -3}, dst)

	same := []int16{1, 2, 3, 4}
	require.NoError(t, array.CopySlice(same, 0, same, 1, 3))
	assert.Equal(t, []int16{1, 1, 2, 3}, same)
}
