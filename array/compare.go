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
	"cmp"
	"fmt"
	"reflect"
)

// Comparable is implemented by element types that define their own order
// for DefaultCompare.
type Comparable interface {
	// CompareTo returns a negative number, zero or a positive number when
	// the receiver orders before, with or after other.
	CompareTo(other any) int
}

// DefaultCompare is the total ordering used for erased values when no
// comparator is supplied:
//
//   - nil orders before everything else;
//   - a Comparable operand decides via CompareTo, on either side;
//   - numbers compare by value across numeric kinds, with NaN first as in
//     cmp.Compare;
//   - strings compare lexically and false orders before true.
//
// Any other pair panics with an error wrapping ErrNotComparable. The sort
// and search engines turn that panic into a *ComparerError.
func DefaultCompare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	// Common cases without reflection.
	switch x := a.(type) {
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case Comparable:
		return x.CompareTo(b)
	}
	if y, ok := b.(Comparable); ok {
		return -cmp.Compare(y.CompareTo(a), 0)
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	ad, bd := DescriptorOf(av.Type()), DescriptorOf(bv.Type())
	switch {
	case ad.Kind == KindNumeric && bd.Kind == KindNumeric:
		return compareNumbers(av, ad.Numeric, bv, bd.Numeric)
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return cmp.Compare(av.String(), bv.String())
	case av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(av.Bool()), boolRank(bv.Bool()))
	}
	panic(fmt.Errorf("DefaultCompare: %T and %T: %w", a, b, ErrNotComparable))
}

func compareNumbers(a reflect.Value, an Numeric, b reflect.Value, bn Numeric) int {
	switch {
	case an.IsFloat() || bn.IsFloat():
		return cmp.Compare(asFloat(a, an), asFloat(b, bn))
	case isSigned(an) && isSigned(bn):
		return cmp.Compare(a.Int(), b.Int())
	case !isSigned(an) && !isSigned(bn):
		return cmp.Compare(a.Uint(), b.Uint())
	case isSigned(an):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	default:
		if b.Int() < 0 {
			return 1
		}
		return cmp.Compare(a.Uint(), uint64(b.Int()))
	}
}

func asFloat(v reflect.Value, n Numeric) float64 {
	switch {
	case n.IsFloat():
		return v.Float()
	case isSigned(n):
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}

func isSigned(n Numeric) bool {
	switch n {
	case NumInt8, NumInt16, NumInt32, NumInt64:
		return true
	}
	return false
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
