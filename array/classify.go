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

// Strategy is how a copy moves elements between two element types.
type Strategy uint8

const (
	// Reject means the element types are not copy-compatible.
	Reject Strategy = iota

	// SimpleMove moves the bytes as-is: identical types, or numeric types
	// with the same fixed-width layout.
	SimpleMove

	// Box stores value elements into an interface-typed destination.
	Box

	// Unbox extracts value elements from an interface-typed source.
	Unbox

	// Cast stores reference elements into a distinct reference type.
	Cast

	// Widen converts numeric elements through the widening table.
	Widen
)

var strategyNames = [...]string{"reject", "move", "box", "unbox", "cast", "widen"}

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	if int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// CopyPlan is the outcome of Classify. A copy computes its plan once and
// applies it to every element in the range.
type CopyPlan struct {
	Strategy Strategy

	// ElementSize is the destination element size in bytes.
	ElementSize uintptr

	// Checked is true when individual elements can fail the plan: Unbox,
	// and Cast out of an interface type.
	Checked bool

	Source, Dest ElementDescriptor
}

// Classify decides how elements described by src are copied into elements
// described by dst. Rules, first match wins:
//
//  1. Identical descriptors move as-is.
//  2. Value into interface boxes; interface into value unboxes.
//  3. Distinct reference types cast: unchecked when src is assignable to
//     dst, checked when src is an interface dst's type may satisfy.
//  4. Numeric into a numeric type that widens it converts.
//  5. Anything else is rejected.
func Classify(src, dst ElementDescriptor) CopyPlan {
	plan := CopyPlan{Source: src, Dest: dst, ElementSize: dst.Size}
	if src.Type == nil || dst.Type == nil {
		return plan
	}

	switch {
	case src.Identical(dst):
		plan.Strategy = SimpleMove

	case dst.IsInterface() && src.Kind != KindReference:
		if src.Type.Implements(dst.Type) || (src.Nullable != nil && src.Nullable.Implements(dst.Type)) {
			plan.Strategy = Box
		}

	case src.IsInterface() && dst.Kind != KindReference:
		if dst.Type.Implements(src.Type) || (dst.Nullable != nil && dst.Nullable.Implements(src.Type)) {
			plan.Strategy = Unbox
			plan.Checked = true
		}

	case src.Kind == KindReference && dst.Kind == KindReference:
		switch {
		case src.Type.AssignableTo(dst.Type):
			plan.Strategy = Cast
		case src.IsInterface() && (dst.IsInterface() || dst.Type.Implements(src.Type)):
			plan.Strategy = Cast
			plan.Checked = true
		}

	case src.Kind == KindNumeric && dst.Kind == KindNumeric:
		if CanWiden(src.Numeric, dst.Numeric) {
			plan.Strategy = Widen
		}
	}
	return plan
}
