package groebner

import (
	"errors"

	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

var (
	ErrBadArg                 = monomial.ErrBadArg
	ErrNotAField              = errors.New("coefficient ring is not a field")
	ErrCoefficientsNotInField = errors.New("coefficients do not lie in a field")
	ErrExponentOverflow       = monomial.ErrExponentOverflow
	ErrNotDivisible           = field.ErrNotDivisible
	ErrBadQuotient            = errors.New("quotient is not exact")
	ErrNotYetImplemented      = errors.New("not yet implemented")
	ErrZeroPoly               = poly.ErrZeroPoly
	ErrModulus                = field.ErrModulus
)
