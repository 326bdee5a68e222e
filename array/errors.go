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
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors. Every message is prefixed with "array:" and callers match
// them with errors.Is; operations wrap them with fmt.Errorf("op: ...: %w").
//
// Argument validation (null, rank, index, type classification) always runs
// before the first write. Once writing has started, only Copy and the sort
// entry points may return with the destination partially modified;
// ConstrainedCopy never does.
var (
	// ErrNullArgument is returned when source, destination or keys is nil.
	ErrNullArgument = errors.New("array: argument is nil")

	// ErrInvalidArgument is returned for storage that is neither a slice nor
	// a pointer to an array, or for inconsistent ranked view shapes.
	ErrInvalidArgument = errors.New("array: invalid argument")

	// ErrIndexOutOfRange is returned for negative or overflowing indices and
	// lengths, including ranges below a view's lower bound.
	ErrIndexOutOfRange = errors.New("array: index out of range")

	// ErrRankMismatch is returned when copying between views of different
	// rank, or when sorting/searching a view whose rank is not 1.
	ErrRankMismatch = errors.New("array: rank mismatch")

	// ErrArrayTypeMismatch is returned when the classifier rejects a pair of
	// element types, or when an element fails a Cast/Unbox check.
	ErrArrayTypeMismatch = errors.New("array: array type mismatch")

	// ErrInvalidComparer is matched by every *ComparerError.
	ErrInvalidComparer = errors.New("array: invalid comparer")

	// ErrLengthOverflow is returned when a 64-bit index or length does not
	// fit in MaxIndex.
	ErrLengthOverflow = errors.New("array: length overflows native index width")

	// ErrNotComparable is raised by DefaultCompare for values without a
	// natural ordering.
	ErrNotComparable = errors.New("array: values are not comparable")
)

// ComparerError reports a comparator that panicked or that behaved
// inconsistently enough to run a partition cursor out of its range.
type ComparerError struct {
	// Cause is the recovered panic value. Nil when Inconsistent is set by
	// a cursor overrun detected by the sorter itself.
	Cause any

	// Inconsistent is true for out-of-range failures, which only a comparator
	// that breaks its own ordering (for example a < a) can cause.
	Inconsistent bool
}

func (e *ComparerError) Error() string {
	if e.Inconsistent {
		return "array: invalid comparer implementation"
	}
	return fmt.Sprintf("array: comparer failed: %v", e.Cause)
}

// Is reports true for ErrInvalidComparer.
func (e *ComparerError) Is(target error) bool {
	return target == ErrInvalidComparer
}

// Unwrap returns the recovered value when it is an error.
func (e *ComparerError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// errPartitionOverrun is panicked by partition loops whose cursor would
// leave the range; it is never visible outside a *ComparerError.
var errPartitionOverrun = errors.New("array: partition cursor overran its range")

// PartitionOverrun aborts a running sort or search after its comparator
// pushed a cursor out of range. It must only be called below a
// RecoverComparer.
func PartitionOverrun() {
	panic(errPartitionOverrun)
}

// RecoverComparer converts a value recovered from a comparator panic into a
// *ComparerError. Bounds failures and partition overruns are reported as an
// invalid implementation, everything else as a failed comparison.
//
// Typical use:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        err = array.RecoverComparer(r)
//	    }
//	}()
func RecoverComparer(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		if errors.Is(err, errPartitionOverrun) {
			return &ComparerError{Inconsistent: true}
		}
		var rt runtime.Error
		if errors.As(err, &rt) && strings.Contains(rt.Error(), "out of range") {
			return &ComparerError{Cause: r, Inconsistent: true}
		}
	}
	return &ComparerError{Cause: r}
}
