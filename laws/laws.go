// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package laws checks the Functor, Applicative and Monad laws for any type
// implementing the fam capability interfaces.
//
// Each checker returns the two sides of its equation. Comparison is left to
// the caller, since the right notion of equality depends on the container
// and its element type.
//
//	lhs, rhs := laws.FunctorIdentity(fam.ListOf(1, 2, 3))
//	// lhs and rhs must be equal
package laws

import "code.hybscloud.com/fam"

// Identity returns a unchanged.
func Identity[A any](a A) A {
	return a
}

// Compose returns g∘f; the left argument is applied second.
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Dot is the curried form of [Compose], used as the lifted function in the
// applicative composition law.
func Dot[A, B, C any](g func(B) C) func(func(A) B) func(A) C {
	return func(f func(A) B) func(A) C {
		return Compose(g, f)
	}
}

// ApplyTo returns the function that applies its argument to y ($ y).
func ApplyTo[A, B any](y A) func(func(A) B) B {
	return func(f func(A) B) B {
		return f(y)
	}
}

// FunctorIdentity: m.Fmap(id) ≡ m
func FunctorIdentity[F fam.Functor[F, A], A any](m F) (F, F) {
	return m.Fmap(Identity[A]), m
}

// FunctorComposition: m.Fmap(g∘f) ≡ m.Fmap(f).Fmap(g)
func FunctorComposition[F fam.Functor[F, A], A any](m F, f, g func(A) A) (F, F) {
	return m.Fmap(Compose(g, f)), m.Fmap(f).Fmap(g)
}

// ApplicativeIdentity: v.Apply(pure(id)) ≡ v
func ApplicativeIdentity[F fam.Applicative[F, G, A], G, A any](v F, pureFn func(func(A) A) G) (F, F) {
	return v.Apply(pureFn(Identity[A])), v
}

// ApplicativeHomomorphism: pure(x).Apply(pure(f)) ≡ pure(f(x))
func ApplicativeHomomorphism[F fam.Applicative[F, G, A], G, A any](x A, f func(A) A, pure func(A) F, pureFn func(func(A) A) G) (F, F) {
	return pure(x).Apply(pureFn(f)), pure(f(x))
}

// MonadLeftUnit: ret(a).Bind(f) ≡ f(a)
func MonadLeftUnit[F fam.Monad[F, A], A any](a A, f func(A) F, ret func(A) F) (F, F) {
	return ret(a).Bind(f), f(a)
}

// MonadRightUnit: m.Bind(ret) ≡ m
func MonadRightUnit[F fam.Monad[F, A], A any](m F, ret func(A) F) (F, F) {
	return m.Bind(ret), m
}

// MonadAssociativity: m.Bind(f).Bind(g) ≡ m.Bind(func(x) f(x).Bind(g))
func MonadAssociativity[F fam.Monad[F, A], A any](m F, f, g func(A) F) (F, F) {
	return m.Bind(f).Bind(g), m.Bind(func(x A) F {
		return f(x).Bind(g)
	})
}
