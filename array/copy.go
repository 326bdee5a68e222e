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
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Copy copies length elements of src starting at srcIndex into dst starting
// at dstIndex. src and dst are slices, pointers to arrays or Views; indices
// are absolute, so they include a ranked view's lower bound.
//
// Element types may differ as long as Classify accepts them. src and dst may
// be the same storage with overlapping ranges; the result is as if the
// source range were first copied to a temporary buffer.
//
// Copy validates every argument before writing. If a checked element
// (Unbox, or Cast out of an interface) fails, the elements before it have
// already been written and are left in place; the returned error wraps
// ErrArrayTypeMismatch and names the failing source index. Use
// ConstrainedCopy when the destination must stay untouched on failure.
func Copy(src any, srcIndex int, dst any, dstIndex int, length int) error {
	sv, dv, err := viewPair("Copy", src, dst)
	if err != nil {
		return err
	}
	return copyViews("Copy", sv, srcIndex, dv, dstIndex, length, false)
}

// CopyN copies the first length elements of src into the start of dst,
// counting from each array's lower bound.
func CopyN(src, dst any, length int) error {
	sv, dv, err := viewPair("CopyN", src, dst)
	if err != nil {
		return err
	}
	return copyViews("CopyN", sv, sv.lowerBound(), dv, dv.lowerBound(), length, false)
}

// Copy64 is Copy for 64-bit indices and lengths. Values outside the native
// index width fail with ErrLengthOverflow before anything else is checked.
func Copy64(src any, srcIndex int64, dst any, dstIndex int64, length int64) error {
	si, err1 := narrowIndex(srcIndex)
	di, err2 := narrowIndex(dstIndex)
	n, err3 := narrowIndex(length)
	if err1 != nil || err2 != nil || err3 != nil {
		return fmt.Errorf("Copy64: (%d, %d, %d): %w", srcIndex, dstIndex, length, ErrLengthOverflow)
	}
	return Copy(src, si, dst, di, n)
}

// ConstrainedCopy is Copy with an all-or-nothing guarantee: either all
// length elements are copied or dst is left unmodified.
//
// Plans that cannot fail (SimpleMove, Box, Widen, unchecked Cast) are
// applied directly. Checked plans convert every element into a staging
// buffer first and commit it with one typed move only after all of them
// passed.
func ConstrainedCopy(src any, srcIndex int, dst any, dstIndex int, length int) error {
	sv, dv, err := viewPair("ConstrainedCopy", src, dst)
	if err != nil {
		return err
	}
	return copyViews("ConstrainedCopy", sv, srcIndex, dv, dstIndex, length, true)
}

// CopySlice is the fast Copy for identical element types. It has memmove
// semantics for overlapping ranges of the same slice.
func CopySlice[T any](src []T, srcIndex int, dst []T, dstIndex, length int) error {
	if !fastPath {
		return Copy(src, srcIndex, dst, dstIndex, length)
	}
	if err := checkSliceRange("CopySlice", len(src), srcIndex, len(dst), dstIndex, length); err != nil {
		return err
	}
	copy(dst[dstIndex:dstIndex+length], src[srcIndex:srcIndex+length])
	return nil
}

// CopyConvert is the fast Copy between typed slices. Identical layouts are
// moved in bulk and numeric widening runs the specialized routine for the
// (S, D) pair; boxing, unboxing and casts go through the generic engine.
func CopyConvert[S, D any](src []S, srcIndex int, dst []D, dstIndex, length int) error {
	if !fastPath {
		return Copy(src, srcIndex, dst, dstIndex, length)
	}
	if err := checkSliceRange("CopyConvert", len(src), srcIndex, len(dst), dstIndex, length); err != nil {
		return err
	}
	plan := Classify(DescriptorFor[S](), DescriptorFor[D]())
	switch plan.Strategy {
	case Reject:
		return fmt.Errorf("CopyConvert: %s into %s: %w", plan.Source.Type, plan.Dest.Type, ErrArrayTypeMismatch)
	case SimpleMove:
		if length == 0 {
			return nil
		}
		if same, ok := any(dst).([]S); ok {
			copy(same[dstIndex:dstIndex+length], src[srcIndex:srcIndex+length])
			return nil
		}
		// Distinct numeric types sharing a layout.
		rawMove(unsafe.Pointer(&dst[dstIndex]), unsafe.Pointer(&src[srcIndex]), uintptr(length)*plan.ElementSize)
		return nil
	case Widen:
		if length > 0 {
			wideners[plan.Source.Numeric][plan.Dest.Numeric](unsafe.Pointer(&dst[dstIndex]), unsafe.Pointer(&src[srcIndex]), length)
		}
		return nil
	}
	sv, dv, err := viewPair("CopyConvert", src, dst)
	if err != nil {
		return err
	}
	return applyPlan("CopyConvert", plan, sv, srcIndex, dv, dstIndex, length, false)
}

func viewPair(op string, src, dst any) (View, View, error) {
	sv, err := ViewOf(src)
	if err != nil {
		return View{}, View{}, fmt.Errorf("%s: source: %w", op, err)
	}
	dv, err := ViewOf(dst)
	if err != nil {
		return View{}, View{}, fmt.Errorf("%s: destination: %w", op, err)
	}
	return sv, dv, nil
}

func copyViews(op string, sv View, srcIndex int, dv View, dstIndex int, length int, reliable bool) error {
	if sv.Rank() != dv.Rank() {
		return fmt.Errorf("%s: source rank %d, destination rank %d: %w", op, sv.Rank(), dv.Rank(), ErrRankMismatch)
	}
	if err := sv.CheckRange(srcIndex, length); err != nil {
		return fmt.Errorf("%s: source: %w", op, err)
	}
	if err := dv.CheckRange(dstIndex, length); err != nil {
		return fmt.Errorf("%s: destination: %w", op, err)
	}
	plan := Classify(sv.desc, dv.desc)
	if plan.Strategy == Reject {
		return fmt.Errorf("%s: %s into %s: %w", op, sv.desc.Type, dv.desc.Type, ErrArrayTypeMismatch)
	}
	return applyPlan(op, plan, sv, srcIndex, dv, dstIndex, length, reliable)
}

// applyPlan runs a validated plan. Indices are absolute.
func applyPlan(op string, plan CopyPlan, sv View, srcIndex int, dv View, dstIndex int, length int, reliable bool) error {
	if length == 0 {
		return nil
	}
	s, d := sv.Flat(srcIndex), dv.Flat(dstIndex)
	src, dst := sv.data, dv.data

	switch plan.Strategy {
	case SimpleMove:
		if plan.Source.Traced {
			// Typed move: the runtime applies write barriers.
			reflect.Copy(dst.Slice(d, d+length), src.Slice(s, s+length))
		} else {
			rawMove(elemAddr(dst, d), elemAddr(src, s), uintptr(length)*plan.ElementSize)
		}
	case Widen:
		wideners[plan.Source.Numeric][plan.Dest.Numeric](elemAddr(dst, d), elemAddr(src, s), length)
	case Box:
		boxRange(plan, dst, d, src, s, length)
	case Cast:
		if !plan.Checked {
			for i := range length {
				dst.Index(d + i).Set(src.Index(s + i))
			}
			return nil
		}
		fallthrough
	case Unbox:
		if reliable {
			return stageRange(op, plan, dst, d, src, s, length, srcIndex)
		}
		for i := range length {
			e := src.Index(s + i).Interface()
			if err := convertInto(dst.Index(d+i), e, plan); err != nil {
				return fmt.Errorf("%s: element %d: %w", op, srcIndex+i, err)
			}
		}
	default:
		return fmt.Errorf("%s: %s into %s: %w", op, plan.Source.Type, plan.Dest.Type, ErrArrayTypeMismatch)
	}
	return nil
}

// boxRange stores each source value into the interface-typed destination.
// Nullable sources box their held value, or nil.
func boxRange(plan CopyPlan, dst reflect.Value, d int, src reflect.Value, s int, length int) {
	for i := range length {
		e := src.Index(s + i).Interface()
		if plan.Source.Nullable != nil {
			e = e.(nullable).Box()
		}
		out := dst.Index(d + i)
		if e == nil {
			out.SetZero()
			continue
		}
		out.Set(reflect.ValueOf(e))
	}
}

// stageRange converts every element into a fresh buffer and commits the
// buffer in one move only if all of them succeeded.
func stageRange(op string, plan CopyPlan, dst reflect.Value, d int, src reflect.Value, s int, length int, srcIndex int) error {
	staging := reflect.MakeSlice(reflect.SliceOf(plan.Dest.Type), length, length)
	for i := range length {
		e := src.Index(s + i).Interface()
		if err := convertInto(staging.Index(i), e, plan); err != nil {
			return fmt.Errorf("%s: element %d: %w", op, srcIndex+i, err)
		}
	}
	reflect.Copy(dst.Slice(d, d+length), staging)
	return nil
}

// convertInto stores e, already read from the source, into out according to
// a checked Unbox or Cast plan.
func convertInto(out reflect.Value, e any, plan CopyPlan) error {
	want := plan.Dest
	if e == nil {
		if plan.Strategy == Cast || want.Nullable != nil {
			out.SetZero()
			return nil
		}
		return fmt.Errorf("nil cannot be stored in %s: %w", want.Type, ErrArrayTypeMismatch)
	}
	rv := reflect.ValueOf(e)
	got := rv.Type()

	if plan.Strategy == Cast {
		if !got.AssignableTo(want.Type) {
			return fmt.Errorf("%s cannot be stored in %s: %w", got, want.Type, ErrArrayTypeMismatch)
		}
		out.Set(rv)
		return nil
	}

	switch {
	case got == want.Type:
		out.Set(rv)
	case want.Nullable != nil && got == want.Nullable:
		out.SetZero()
		out.Field(0).Set(rv)
		out.Field(1).SetBool(true)
	case want.Kind == KindNumeric:
		gd := DescriptorOf(got)
		if gd.Kind != KindNumeric || (gd.Numeric != want.Numeric && !CanWiden(gd.Numeric, want.Numeric)) {
			return fmt.Errorf("%s cannot be unboxed into %s: %w", got, want.Type, ErrArrayTypeMismatch)
		}
		out.Set(rv.Convert(want.Type))
	default:
		return fmt.Errorf("%s cannot be unboxed into %s: %w", got, want.Type, ErrArrayTypeMismatch)
	}
	return nil
}

// rawMove is memmove for pointer-free memory.
func rawMove(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}

func elemAddr(v reflect.Value, i int) unsafe.Pointer {
	return v.Index(i).Addr().UnsafePointer()
}

func (v View) lowerBound() int {
	if len(v.lowerBounds) == 0 {
		return 0
	}
	return v.lowerBounds[0]
}

func narrowIndex(v int64) (int, error) {
	if v > MaxIndex || v < math.MinInt32 {
		return 0, ErrLengthOverflow
	}
	return int(v), nil
}

func checkSliceRange(op string, srcLen, srcIndex, dstLen, dstIndex, length int) error {
	switch {
	case length < 0:
		return fmt.Errorf("%s: length %d is negative: %w", op, length, ErrIndexOutOfRange)
	case srcIndex < 0 || srcIndex > srcLen-length:
		return fmt.Errorf("%s: source range [%d, %d+%d) exceeds length %d: %w", op, srcIndex, srcIndex, length, srcLen, ErrIndexOutOfRange)
	case dstIndex < 0 || dstIndex > dstLen-length:
		return fmt.Errorf("%s: destination range [%d, %d+%d) exceeds length %d: %w", op, dstIndex, dstIndex, length, dstLen, ErrIndexOutOfRange)
	}
	return nil
}
