// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fam provides the Functor, Applicative and Monad capabilities over
// two immutable containers: [List] (zero or more values) and [Option] (zero
// or one value).
//
// # Design Philosophy
//
// fam provides:
//   - One concrete type per container, implementing three independent
//     F-bounded capability interfaces rather than a layered hierarchy
//   - Type-changing operations as package functions, since Go methods
//     cannot declare type parameters
//   - Instance-local composition only: List combines with List, Option
//     with Option. There is no operation mixing the two.
//
// # Containers
//
// List:
//
//   - [Nil], [FromSlice], [ListOf]: Constructors (FromSlice copies its input)
//   - [List.Len], [List.IsEmpty], [List.Values], [List.All]: Accessors
//   - [ConcatList], [FoldList], [ReduceList]: Sequence helpers
//
// Option:
//
//   - [Some], [None]: Constructors
//   - [FromPointer], [FromComma]: Constructors from Go's native absence forms
//   - [Option.IsPresent]: The single presence predicate
//   - [Option.Get], [Option.OrElse], [Option.ToPointer]: Accessors
//   - [MatchOption]: Pattern matching
//
// The zero value of both containers is empty.
//
// # Capabilities
//
// Functor:
//
//   - [MapList], [MapOption]: Apply f to every held value
//   - [Functor]: Fmap(func(A) A) F
//
// Applicative:
//
//   - [PureList], [PureOption]: Lift a bare value
//   - [ApplyList]: Cross product, functions in the outer loop
//   - [ApplyOption]: Short-circuits when either side is empty
//   - [LiftA2List], [LiftA2Option]: Derived binary lift
//   - [Applicative]: Apply(G) F
//
// Monad:
//
//   - [ReturnList], [ReturnOption]: Wrap a bare value (same as Pure)
//   - [FlatMapList], [FlatMapOption]: Bind, with the nested result flattened
//   - [FlattenList], [FlattenOption]: Join
//   - [ThenList], [ThenOption]: Sequence, discarding the first values
//   - [Monad]: Bind(func(A) F) F
//
// Generic law checkers over the capability interfaces live in package
// code.hybscloud.com/fam/laws.
//
// # Failure
//
// No operation returns an error. A panic raised by a caller-supplied
// function propagates unchanged and no partial result is produced.
//
// # Example
//
//	xs := fam.ListOf(1, 2, 3)
//	fs := fam.ListOf(
//		func(x int) int { return x + 1 },
//		func(x int) int { return x * 2 },
//	)
//	fam.ApplyList(xs, fs) // [2 3 4 2 4 6]
//
//	fam.FlatMapOption(fam.Some(1), func(x int) fam.Option[int] {
//		return fam.Some(x * 3)
//	}) // Some(3)
package fam
