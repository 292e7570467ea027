// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fam

// Monad operations for List and Option.
//
// Minimal definition: Return and FlatMap. Flatten and Then are derived and
// written out directly to avoid the intermediate closures.

// ReturnList wraps a into a single-value List. Same as [PureList].
func ReturnList[A any](a A) List[A] {
	return PureList(a)
}

// ReturnOption wraps a into a present Option. Same as [PureOption].
func ReturnOption[A any](a A) Option[A] {
	return Some(a)
}

// FlatMapList applies f to every value of l and concatenates the resulting
// lists in order.
//
//	FlatMapList(ListOf(1, 2, 3), func(x int) List[int] { return ListOf(x, x*2) })
//	// [1 2 2 4 3 6]
func FlatMapList[A, B any](l List[A], f func(A) List[B]) List[B] {
	var out []B
	for _, a := range l.values {
		out = append(out, f(a).values...)
	}
	return List[B]{values: out}
}

// FlatMapOption returns f applied to the held value, or None when o is empty.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return Option[B]{}
}

// FlattenList concatenates the inner lists of ll in order.
func FlattenList[A any](ll List[List[A]]) List[A] {
	n := 0
	for _, l := range ll.values {
		n += len(l.values)
	}
	if n == 0 {
		return List[A]{}
	}
	out := make([]A, 0, n)
	for _, l := range ll.values {
		out = append(out, l.values...)
	}
	return List[A]{values: out}
}

// FlattenOption returns the inner Option, or None when oo is empty.
func FlattenOption[A any](oo Option[Option[A]]) Option[A] {
	if oo.present {
		return oo.value
	}
	return Option[A]{}
}

// ThenList repeats n once per value of l, discarding the values of l.
// Equivalent to FlatMapList(l, func(A) List[B] { return n }).
func ThenList[A, B any](l List[A], n List[B]) List[B] {
	k := len(l.values) * len(n.values)
	if k == 0 {
		return List[B]{}
	}
	out := make([]B, 0, k)
	for range l.values {
		out = append(out, n.values...)
	}
	return List[B]{values: out}
}

// ThenOption returns n when o is present, None otherwise.
func ThenOption[A, B any](o Option[A], n Option[B]) Option[B] {
	if o.present {
		return n
	}
	return Option[B]{}
}

// Bind implements [Monad]. It is FlatMapList restricted to func(A) List[A].
func (l List[A]) Bind(f func(A) List[A]) List[A] {
	return FlatMapList(l, f)
}

// Bind implements [Monad]. It is FlatMapOption restricted to func(A) Option[A].
func (o Option[A]) Bind(f func(A) Option[A]) Option[A] {
	return FlatMapOption(o, f)
}
