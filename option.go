// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fam

import "fmt"

// Option represents a slot that holds either one value (Some) or nothing (None).
//
// The zero value is None. FromPointer(nil) also yields None, so an unset
// slot and a slot built from the nil sentinel share one representation
// and [Option.IsPresent] is the only presence check.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPointer creates an Option from p: None when p is nil, Some(*p) otherwise.
func FromPointer[A any](p *A) Option[A] {
	if p == nil {
		return Option[A]{}
	}
	return Option[A]{present: true, value: *p}
}

// FromComma creates an Option from the comma-ok idiom.
//
//	v, ok := m[key]
//	o := fam.FromComma(v, ok)
func FromComma[A any](a A, ok bool) Option[A] {
	if !ok {
		return Option[A]{}
	}
	return Option[A]{present: true, value: a}
}

// IsPresent returns true if o holds a value.
func (o Option[A]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if o holds no value.
func (o Option[A]) IsEmpty() bool {
	return !o.present
}

// Get returns the held value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// OrElse returns the held value, or fallback when o is empty.
func (o Option[A]) OrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// ToPointer returns a pointer to a copy of the held value, or nil.
func (o Option[A]) ToPointer() *A {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// String formats o as Some(v) or None.
func (o Option[A]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MatchOption pattern matches on o, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
