// Package basis defines the shared polynomial basis abstraction: element
// evaluation over a reference interval, optional derivative and
// antiderivative capabilities, and checked wrappers that validate what the
// unchecked element methods deliberately do not.
package basis

import (
	"errors"
	"fmt"

	"github.com/ToBlick/gobasis/grid"
)

var (
	ErrElementRange = errors.New("basis: element index out of range")
	ErrNoDeriv      = errors.New("basis: derivative not supported")
	ErrNoAntideriv  = errors.New("basis: antiderivative not supported")
)

// Basis is a finite family of functions on a reference interval, evaluated
// one element at a time. Implementations do not validate the element index
// in EvalElement; the checked wrappers in this package do.
type Basis interface {
	Len() int
	Support() grid.Interval
	EvalElement(i int, x float64) float64
}

// Differentiable marks bases whose elements expose first derivatives.
type Differentiable interface {
	Basis
	EvalElementDeriv(i int, x float64) float64
}

// Integrable marks bases whose elements expose antiderivatives normalized
// to vanish at the left end of the support.
type Integrable interface {
	Basis
	EvalElementAntideriv(i int, x float64) float64
}

// HasDeriv reports whether b supports element derivatives.
func HasDeriv(b Basis) bool {
	_, ok := b.(Differentiable)
	return ok
}

// HasAntideriv reports whether b supports element antiderivatives.
func HasAntideriv(b Basis) bool {
	_, ok := b.(Integrable)
	return ok
}

// Eval validates the element index, then delegates to the unchecked
// element evaluation.
func Eval(b Basis, i int, x float64) (val float64, err error) {
	if i < 0 || i >= b.Len() {
		err = fmt.Errorf("%w: element %d of %d", ErrElementRange, i, b.Len())
		return
	}
	val = b.EvalElement(i, x)
	return
}

// Deriv validates the element index and the derivative capability, then
// delegates.
func Deriv(b Basis, i int, x float64) (val float64, err error) {
	if i < 0 || i >= b.Len() {
		err = fmt.Errorf("%w: element %d of %d", ErrElementRange, i, b.Len())
		return
	}
	d, ok := b.(Differentiable)
	if !ok {
		err = ErrNoDeriv
		return
	}
	val = d.EvalElementDeriv(i, x)
	return
}

// Antideriv validates the element index and the antiderivative capability,
// then delegates.
func Antideriv(b Basis, i int, x float64) (val float64, err error) {
	if i < 0 || i >= b.Len() {
		err = fmt.Errorf("%w: element %d of %d", ErrElementRange, i, b.Len())
		return
	}
	in, ok := b.(Integrable)
	if !ok {
		err = ErrNoAntideriv
		return
	}
	val = in.EvalElementAntideriv(i, x)
	return
}
