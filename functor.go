// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fam

// Functor operations for List and Option.

// MapList applies f to every value of l, preserving order and length.
// f is not invoked for the empty list.
func MapList[A, B any](l List[A], f func(A) B) List[B] {
	if len(l.values) == 0 {
		return List[B]{}
	}
	out := make([]B, len(l.values))
	for i, a := range l.values {
		out[i] = f(a)
	}
	return List[B]{values: out}
}

// MapOption applies f to the held value if present.
// f is not invoked when o is empty.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return Option[B]{}
}

// Fmap implements [Functor]. It is MapList restricted to func(A) A.
func (l List[A]) Fmap(f func(A) A) List[A] {
	return MapList(l, f)
}

// Fmap implements [Functor]. It is MapOption restricted to func(A) A.
func (o Option[A]) Fmap(f func(A) A) Option[A] {
	return MapOption(o, f)
}
