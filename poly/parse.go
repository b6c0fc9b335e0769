package poly

import (
	"fmt"
	"strconv"
	"unicode"
)

/*
Parse reads a polynomial written with the ring's indeterminate names,
decimal coefficients, + - * / ^ and parentheses, e.g. "x^2*y - 3/4*z + 1".
Division is only allowed by constants.
*/
func (r *Ring[E]) Parse(s string) (*Poly[E], error) {
	ps := &parser[E]{r: r, src: []rune(s)}

	p, err := ps.expr()
	if err != nil {
		return nil, err
	}

	ps.skipSpace()
	if ps.pos < len(ps.src) {
		return nil, ps.errorf("unexpected %q", ps.src[ps.pos])
	}

	return p, nil
}

// ParseList parses each string of ss.
func (r *Ring[E]) ParseList(ss ...string) ([]*Poly[E], error) {
	out := make([]*Poly[E], len(ss))
	for i, s := range ss {
		p, err := r.Parse(s)
		if err != nil {
			return nil, err
		}

		out[i] = p
	}

	return out, nil
}

type parser[E any] struct {
	r   *Ring[E]
	src []rune
	pos int
}

func (ps *parser[E]) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: at offset %d: %s", ErrParse, ps.pos, fmt.Sprintf(format, args...))
}

func (ps *parser[E]) skipSpace() {
	for ps.pos < len(ps.src) && unicode.IsSpace(ps.src[ps.pos]) {
		ps.pos++
	}
}

func (ps *parser[E]) peek() rune {
	ps.skipSpace()
	if ps.pos >= len(ps.src) {
		return 0
	}

	return ps.src[ps.pos]
}

func (ps *parser[E]) expr() (*Poly[E], error) {
	sum := ps.r.Zero()

	sign := ps.peek()
	if sign == '+' || sign == '-' {
		ps.pos++
	} else {
		sign = '+'
	}

	for {
		t, err := ps.term()
		if err != nil {
			return nil, err
		}

		if sign == '-' {
			sum = sum.Sub(t)
		} else {
			sum = sum.Add(t)
		}

		sign = ps.peek()
		if sign != '+' && sign != '-' {
			return sum, nil
		}

		ps.pos++
	}
}

func (ps *parser[E]) term() (*Poly[E], error) {
	prod, err := ps.factor()
	if err != nil {
		return nil, err
	}

	for {
		op := ps.peek()
		if op != '*' && op != '/' {
			return prod, nil
		}

		ps.pos++

		f, err := ps.factor()
		if err != nil {
			return nil, err
		}

		if op == '*' {
			if prod, err = prod.Mul(f); err != nil {
				return nil, err
			}

			continue
		}

		if !f.IsConst() || f.IsZero() {
			return nil, ps.errorf("division by a non-constant or zero")
		}

		cr := ps.r.coeffs

		inv, err := cr.Div(cr.One(), f.terms[0].Coeff)
		if err != nil {
			// over ZZ try the exact quotient of every coefficient.
			if prod, err = prod.DivExact(f); err != nil {
				return nil, ps.errorf("%v", err)
			}

			continue
		}

		prod = prod.MulScalar(inv)
	}
}

func (ps *parser[E]) factor() (*Poly[E], error) {
	base, err := ps.base()
	if err != nil {
		return nil, err
	}

	if ps.peek() != '^' {
		return base, nil
	}

	ps.pos++
	ps.skipSpace()

	start := ps.pos
	for ps.pos < len(ps.src) && unicode.IsDigit(ps.src[ps.pos]) {
		ps.pos++
	}

	k, err := strconv.Atoi(string(ps.src[start:ps.pos]))
	if err != nil {
		return nil, ps.errorf("bad exponent")
	}

	return base.Pow(k)
}

func (ps *parser[E]) base() (*Poly[E], error) {
	c := ps.peek()

	switch {
	case c == '(':
		ps.pos++

		p, err := ps.expr()
		if err != nil {
			return nil, err
		}

		if ps.peek() != ')' {
			return nil, ps.errorf("missing ')'")
		}

		ps.pos++

		return p, nil

	case unicode.IsDigit(c):
		start := ps.pos
		for ps.pos < len(ps.src) && unicode.IsDigit(ps.src[ps.pos]) {
			ps.pos++
		}

		v, err := ps.r.coeffs.Parse(string(ps.src[start:ps.pos]))
		if err != nil {
			return nil, err
		}

		return ps.r.Const(v), nil

	case unicode.IsLetter(c):
		start := ps.pos
		for ps.pos < len(ps.src) {
			r := ps.src[ps.pos]
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}

			ps.pos++
		}

		name := string(ps.src[start:ps.pos])

		i, ok := ps.r.m.IndetIndex(name)
		if !ok {
			return nil, ps.errorf("unknown indeterminate %q", name)
		}

		return ps.r.Indet(i), nil
	}

	if c == 0 {
		return nil, ps.errorf("unexpected end of input")
	}

	return nil, ps.errorf("unexpected %q", c)
}
