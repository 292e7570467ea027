// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fam

// Capability interfaces.
//
// Each capability is its own F-bounded interface. The self-referencing
// constraint lets generic code receive the concrete container type back
// from every operation instead of an interface value. The three interfaces
// are independent: a type opts into each one separately.
//
// Go methods cannot declare type parameters, so the interface methods are
// the type-preserving forms. The type-changing forms are package functions
// ([MapList], [ApplyList], [FlatMapList] and their Option counterparts).

// Functor is the structure-preserving mapping capability.
//
//   - identity:    m.Fmap(id) ≡ m
//   - composition: m.Fmap(g∘f) ≡ m.Fmap(f).Fmap(g)
type Functor[F Functor[F, A], A any] interface {
	Fmap(f func(A) A) F
}

// Applicative applies a container of functions G to a container of values
// of the same kind. G is the function container, e.g. List[func(A) A] for List[A].
//
//   - identity:     v.Apply(pure(id)) ≡ v
//   - homomorphism: pure(x).Apply(pure(f)) ≡ pure(f(x))
type Applicative[F Applicative[F, G, A], G, A any] interface {
	Apply(fs G) F
}

// Monad is the sequencing capability.
//
//   - left unit:     ret(a).Bind(f) ≡ f(a)
//   - right unit:    m.Bind(ret) ≡ m
//   - associativity: m.Bind(f).Bind(g) ≡ m.Bind(func(x) f(x).Bind(g))
type Monad[F Monad[F, A], A any] interface {
	Bind(f func(A) F) F
}

var (
	_ Functor[List[int], int]                          = List[int]{}
	_ Applicative[List[int], List[func(int) int], int] = List[int]{}
	_ Monad[List[int], int]                            = List[int]{}

	_ Functor[Option[int], int]                            = Option[int]{}
	_ Applicative[Option[int], Option[func(int) int], int] = Option[int]{}
	_ Monad[Option[int], int]                              = Option[int]{}
)
