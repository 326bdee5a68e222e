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
	"reflect"
)

// SliceKeys is the fast KeySpace: direct access to a contiguous []T.
type SliceKeys[T any] []T

func (s SliceKeys[T]) Len() int       { return len(s) }
func (s SliceKeys[T]) Get(i int) T    { return s[i] }
func (s SliceKeys[T]) Set(i int, v T) { s[i] = v }
func (s SliceKeys[T]) Swap(i, j int)  { s[i], s[j] = s[j], s[i] }

// ValueKeys is the generic KeySpace over erased storage. Get boxes the
// element as any; Set accepts nil as the element type's zero value.
type ValueKeys struct {
	data reflect.Value
	swap func(i, j int)
}

// NewValueKeys returns erased access to storage, which must be accepted by
// ViewOf.
func NewValueKeys(storage any) (ValueKeys, error) {
	v, err := ViewOf(storage)
	if err != nil {
		return ValueKeys{}, fmt.Errorf("NewValueKeys: %w", err)
	}
	return v.Keys(), nil
}

func newValueKeys(data reflect.Value) ValueKeys {
	k := ValueKeys{data: data}
	if data.IsValid() {
		k.swap = reflect.Swapper(data.Interface())
	}
	return k
}

// Len returns the number of elements.
func (k ValueKeys) Len() int {
	if !k.data.IsValid() {
		return 0
	}
	return k.data.Len()
}

// Get returns element i boxed as any. Interface elements are returned as
// their dynamic value.
func (k ValueKeys) Get(i int) any {
	return k.data.Index(i).Interface()
}

// Set stores x at element i. It panics if x is not assignable to the
// element type, like reflect.Value.Set.
func (k ValueKeys) Set(i int, x any) {
	e := k.data.Index(i)
	if x == nil {
		e.SetZero()
		return
	}
	e.Set(reflect.ValueOf(x))
}

// Swap exchanges elements i and j without boxing.
func (k ValueKeys) Swap(i, j int) {
	k.swap(i, j)
}
