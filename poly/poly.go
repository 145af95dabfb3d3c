// Package poly implements single variable polynomials in monomial
// coefficient form.
package poly

import (
	"fmt"
	"strings"
)

// Polynomial holds monomial coefficients, Coeffs[k] multiplying x^k. The
// zero value is the zero polynomial.
type Polynomial struct {
	Coeffs []float64
}

// New builds a polynomial from coefficients in ascending power order,
// dropping trailing zero terms.
func New(coeffs ...float64) (p Polynomial) {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	p.Coeffs = make([]float64, n)
	copy(p.Coeffs, coeffs[:n])
	return
}

// Degree returns the polynomial degree, -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Eval computes p(x) by Horner's rule.
func (p Polynomial) Eval(x float64) (y float64) {
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		y = y*x + p.Coeffs[k]
	}
	return
}

// Derivative returns dp/dx.
func (p Polynomial) Derivative() (d Polynomial) {
	if len(p.Coeffs) < 2 {
		return
	}
	d.Coeffs = make([]float64, len(p.Coeffs)-1)
	for k := 1; k < len(p.Coeffs); k++ {
		d.Coeffs[k-1] = float64(k) * p.Coeffs[k]
	}
	return
}

// Integrate returns the antiderivative of p with zero constant term.
func (p Polynomial) Integrate() (q Polynomial) {
	if len(p.Coeffs) == 0 {
		return
	}
	q.Coeffs = make([]float64, len(p.Coeffs)+1)
	for k, c := range p.Coeffs {
		q.Coeffs[k+1] = c / float64(k+1)
	}
	return
}

// Scale returns a*p as a new polynomial.
func (p Polynomial) Scale(a float64) (q Polynomial) {
	q.Coeffs = make([]float64, len(p.Coeffs))
	for k, c := range p.Coeffs {
		q.Coeffs[k] = a * c
	}
	return
}

// Add returns p+r as a new polynomial.
func (p Polynomial) Add(r Polynomial) (q Polynomial) {
	n := len(p.Coeffs)
	if len(r.Coeffs) > n {
		n = len(r.Coeffs)
	}
	q.Coeffs = make([]float64, n)
	copy(q.Coeffs, p.Coeffs)
	for k, c := range r.Coeffs {
		q.Coeffs[k] += c
	}
	return
}

func (p Polynomial) String() string {
	if len(p.Coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		if p.Coeffs[k] == 0 && len(p.Coeffs) > 1 {
			continue
		}
		if sb.Len() != 0 {
			sb.WriteString(" + ")
		}
		switch k {
		case 0:
			fmt.Fprintf(&sb, "%g", p.Coeffs[k])
		case 1:
			fmt.Fprintf(&sb, "%g*x", p.Coeffs[k])
		default:
			fmt.Fprintf(&sb, "%g*x^%d", p.Coeffs[k], k)
		}
	}
	return sb.String()
}
