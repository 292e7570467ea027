// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/fam"
	"code.hybscloud.com/fam/laws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyN = 500

type (
	intList = fam.List[int]
	intOpt  = fam.Option[int]
	listFns = fam.List[func(int) int]
	optFns  = fam.Option[func(int) int]
)

func randList(rng *rand.Rand) intList {
	s := make([]int, rng.IntN(6))
	for i := range s {
		s[i] = rng.IntN(201) - 100
	}
	return fam.FromSlice(s)
}

func randOption(rng *rand.Rand) intOpt {
	if rng.IntN(3) == 0 {
		return fam.None[int]()
	}
	return fam.Some(rng.IntN(201) - 100)
}

func inc(x int) int    { return x + 1 }
func double(x int) int { return x * 2 }

func TestIdentity(t *testing.T) {
	assert.Equal(t, 3, laws.Identity(3))
	assert.Equal(t, "value", laws.Identity("value"))
}

func TestComposeAppliesRightFirst(t *testing.T) {
	// (+1) . (*2) $ 1 = 3
	assert.Equal(t, 3, laws.Compose(inc, double)(1))
	assert.Equal(t, 4, laws.Compose(double, inc)(1))
}

func TestDot(t *testing.T) {
	assert.Equal(t, 3, laws.Dot[int, int, int](inc)(double)(1))
}

func TestApplyTo(t *testing.T) {
	assert.Equal(t, 10, laws.ApplyTo[int, int](5)(double))
}

func TestListLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randList(rng)
		x := rng.IntN(201) - 100

		lhs, rhs := laws.FunctorIdentity[intList, int](m)
		require.Equal(t, rhs, lhs, "functor identity")

		lhs, rhs = laws.FunctorComposition[intList, int](m, inc, double)
		require.Equal(t, rhs, lhs, "functor composition")

		lhs, rhs = laws.ApplicativeIdentity[intList, listFns, int](m, fam.PureList[func(int) int])
		require.Equal(t, rhs, lhs, "applicative identity")

		lhs, rhs = laws.ApplicativeHomomorphism[intList, listFns, int](x, double, fam.PureList[int], fam.PureList[func(int) int])
		require.Equal(t, rhs, lhs, "applicative homomorphism")

		f := func(v int) intList { return fam.ListOf(v, v+1) }
		g := func(v int) intList {
			if v%2 == 0 {
				return fam.Nil[int]()
			}
			return fam.ListOf(v * 10)
		}

		lhs, rhs = laws.MonadLeftUnit[intList, int](x, f, fam.ReturnList[int])
		require.Equal(t, rhs, lhs, "monad left unit")

		lhs, rhs = laws.MonadRightUnit[intList, int](m, fam.ReturnList[int])
		require.Equal(t, rhs, lhs, "monad right unit")

		lhs, rhs = laws.MonadAssociativity[intList, int](m, f, g)
		require.Equal(t, rhs, lhs, "monad associativity")
	}
}

func TestOptionLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randOption(rng)
		x := rng.IntN(201) - 100

		lhs, rhs := laws.FunctorIdentity[intOpt, int](m)
		require.Equal(t, rhs, lhs, "functor identity")

		lhs, rhs = laws.FunctorComposition[intOpt, int](m, inc, double)
		require.Equal(t, rhs, lhs, "functor composition")

		lhs, rhs = laws.ApplicativeIdentity[intOpt, optFns, int](m, fam.PureOption[func(int) int])
		require.Equal(t, rhs, lhs, "applicative identity")

		lhs, rhs = laws.ApplicativeHomomorphism[intOpt, optFns, int](x, double, fam.PureOption[int], fam.PureOption[func(int) int])
		require.Equal(t, rhs, lhs, "applicative homomorphism")

		f := func(v int) intOpt {
			if v < 0 {
				return fam.None[int]()
			}
			return fam.Some(v + 1)
		}
		g := func(v int) intOpt {
			if v%2 == 0 {
				return fam.None[int]()
			}
			return fam.Some(v * 10)
		}

		lhs, rhs = laws.MonadLeftUnit[intOpt, int](x, f, fam.ReturnOption[int])
		require.Equal(t, rhs, lhs, "monad left unit")

		lhs, rhs = laws.MonadRightUnit[intOpt, int](m, fam.ReturnOption[int])
		require.Equal(t, rhs, lhs, "monad right unit")

		lhs, rhs = laws.MonadAssociativity[intOpt, int](m, f, g)
		require.Equal(t, rhs, lhs, "monad associativity")
	}
}

// brokenList violates the functor identity law by dropping its last value.
type brokenList []int

func (b brokenList) Fmap(f func(int) int) brokenList {
	if len(b) == 0 {
		return b
	}
	out := make(brokenList, len(b)-1)
	for i := range out {
		out[i] = f(b[i])
	}
	return out
}

func TestFunctorIdentityDetectsViolation(t *testing.T) {
	lhs, rhs := laws.FunctorIdentity[brokenList, int](brokenList{1, 2})
	assert.NotEqual(t, rhs, lhs)
}
