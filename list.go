// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fam

import (
	"fmt"
	"iter"
	"slices"
)

// List is an immutable ordered sequence of zero or more values.
//
// The zero value is the empty list. Every operation returns a new List;
// the backing array is never shared with the caller or between results.
// An empty List always holds a nil slice so that structurally equal lists
// compare equal under reflect.DeepEqual.
type List[A any] struct {
	values []A
}

// Nil returns the empty list.
func Nil[A any]() List[A] {
	return List[A]{}
}

// FromSlice creates a List holding a copy of s in order.
func FromSlice[A any](s []A) List[A] {
	if len(s) == 0 {
		return List[A]{}
	}
	return List[A]{values: slices.Clone(s)}
}

// ListOf creates a List from its arguments in order.
func ListOf[A any](vs ...A) List[A] {
	return FromSlice(vs)
}

// Len returns the number of values in l.
func (l List[A]) Len() int {
	return len(l.values)
}

// IsEmpty reports whether l holds no values.
func (l List[A]) IsEmpty() bool {
	return len(l.values) == 0
}

// Values returns a copy of the held values, or nil when l is empty.
func (l List[A]) Values() []A {
	return slices.Clone(l.values)
}

// All iterates the values of l in order with their indices.
func (l List[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i, v := range l.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String formats l as its values in brackets, e.g. [2 3 4].
func (l List[A]) String() string {
	if len(l.values) == 0 {
		return "[]"
	}
	return fmt.Sprint(l.values)
}

// ConcatList returns the values of a followed by the values of b.
func ConcatList[A any](a, b List[A]) List[A] {
	n := len(a.values) + len(b.values)
	if n == 0 {
		return List[A]{}
	}
	out := make([]A, 0, n)
	out = append(out, a.values...)
	out = append(out, b.values...)
	return List[A]{values: out}
}

// FoldList folds l from the left, starting from z.
func FoldList[A, B any](l List[A], z B, f func(B, A) B) B {
	acc := z
	for _, a := range l.values {
		acc = f(acc, a)
	}
	return acc
}

// ReduceList folds l from the left using its first value as the seed.
// Returns None for the empty list.
func ReduceList[A any](l List[A], f func(A, A) A) Option[A] {
	if len(l.values) == 0 {
		return None[A]()
	}
	acc := l.values[0]
	for _, a := range l.values[1:] {
		acc = f(acc, a)
	}
	return Some(acc)
}
