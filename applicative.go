// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fam

// Applicative operations for List and Option.
//
// Apply is defined only between containers of the same kind. Applying a
// List of functions to an Option (or the reverse) does not type-check.

// PureList lifts a into a single-value List.
func PureList[A any](a A) List[A] {
	return List[A]{values: []A{a}}
}

// PureOption lifts a into a present Option.
func PureOption[A any](a A) Option[A] {
	return Some(a)
}

// ApplyList applies every function of fs to every value of xs.
//
// Results are ordered with functions in the outer loop and values in the
// inner loop:
//
//	ApplyList(ListOf(1, 2, 3), ListOf(inc, double)) // [2 3 4 2 4 6]
//
// The result is empty when either xs or fs is empty.
func ApplyList[A, B any](xs List[A], fs List[func(A) B]) List[B] {
	if len(xs.values) == 0 || len(fs.values) == 0 {
		return List[B]{}
	}
	out := make([]B, 0, len(xs.values)*len(fs.values))
	for _, f := range fs.values {
		for _, x := range xs.values {
			out = append(out, f(x))
		}
	}
	return List[B]{values: out}
}

// ApplyOption applies the function held by f to the value held by x.
// The result is None if either is empty; the function is then not invoked.
func ApplyOption[A, B any](x Option[A], f Option[func(A) B]) Option[B] {
	if x.present && f.present {
		return Some(f.value(x.value))
	}
	return Option[B]{}
}

// LiftA2List combines every value of xs with every value of ys using f,
// xs in the outer loop.
func LiftA2List[A, B, C any](f func(A, B) C, xs List[A], ys List[B]) List[C] {
	return ApplyList(ys, MapList(xs, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}))
}

// LiftA2Option combines the values of x and y using f when both are present.
func LiftA2Option[A, B, C any](f func(A, B) C, x Option[A], y Option[B]) Option[C] {
	return ApplyOption(y, MapOption(x, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}))
}

// Apply implements [Applicative]. It is ApplyList restricted to func(A) A.
func (l List[A]) Apply(fs List[func(A) A]) List[A] {
	return ApplyList(l, fs)
}

// Apply implements [Applicative]. It is ApplyOption restricted to func(A) A.
func (o Option[A]) Apply(f Option[func(A) A]) Option[A] {
	return ApplyOption(o, f)
}
