package monomial

import (
	"fmt"
	"math/big"
	"strings"
)

// MaxMatrixEntry bounds the absolute value of order matrix entries, so that
// dot products with small exponent vectors always fit in an int64.
const MaxMatrixEntry = 1 << 15

/*
Ordering is a term ordering on power products of NumIndets indeterminates.

The set of orderings is closed: Lex, DegLex, DegRevLex and matrix orderings.
Every ordering is described by a square order matrix whose first GradingDim
rows define the (multi-)degree. Indeterminate 0 is the largest.
*/
type Ordering interface {
	NumIndets() int
	GradingDim() int
	// Matrix returns a fresh copy of the order matrix.
	Matrix() [][]int64
	String() string

	cmp(a, b []uint32) int
}

func checkArity(n int) {
	if n < 0 {
		panic(fmt.Sprintf("negative number of indeterminates: %d", n))
	}
}

type lex struct{ n int }

// Lex is the pure lexicographic ordering, x0 > x1 > ... > x(n-1).
func Lex(n int) Ordering {
	checkArity(n)

	return lex{n: n}
}

func (o lex) NumIndets() int  { return o.n }
func (o lex) GradingDim() int { return 0 }
func (o lex) String() string  { return "Lex" }

func (o lex) Matrix() [][]int64 {
	return identityRows(o.n, 0)
}

func (o lex) cmp(a, b []uint32) int {
	return cmpLex(a, b)
}

type degLex struct{ n int }

// DegLex compares the standard degree first, then lexicographically.
func DegLex(n int) Ordering {
	checkArity(n)

	return degLex{n: n}
}

func (o degLex) NumIndets() int  { return o.n }
func (o degLex) GradingDim() int { return min(o.n, 1) }
func (o degLex) String() string  { return "DegLex" }

func (o degLex) Matrix() [][]int64 {
	if o.n == 0 {
		return nil
	}

	return append([][]int64{onesRow(o.n)}, identityRows(o.n, 0)[:o.n-1]...)
}

func (o degLex) cmp(a, b []uint32) int {
	if c := cmpDeg(a, b); c != 0 {
		return c
	}

	return cmpLex(a, b)
}

type degRevLex struct{ n int }

// DegRevLex compares the standard degree first, then the reverse
// lexicographic tie break: the smaller exponent of the last differing
// indeterminate wins.
func DegRevLex(n int) Ordering {
	checkArity(n)

	return degRevLex{n: n}
}

func (o degRevLex) NumIndets() int  { return o.n }
func (o degRevLex) GradingDim() int { return min(o.n, 1) }
func (o degRevLex) String() string  { return "DegRevLex" }

func (o degRevLex) Matrix() [][]int64 {
	if o.n == 0 {
		return nil
	}

	rows := [][]int64{onesRow(o.n)}
	for i := o.n - 1; i >= 1; i-- {
		row := make([]int64, o.n)
		row[i] = -1
		rows = append(rows, row)
	}

	return rows
}

func (o degRevLex) cmp(a, b []uint32) int {
	if c := cmpDeg(a, b); c != 0 {
		return c
	}

	// index 0 is implied by the degree.
	for i := len(a) - 1; i >= 1; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

type matrixOrdering struct {
	rows       [][]int64
	gradingDim int
}

/*
NewMatrixOrdering returns the ordering comparing successive dot products with
the rows of m.

m must be square and of full rank, with entries bounded by MaxMatrixEntry.
The first non-zero entry of every column must be positive, which makes the
ordering a well-ordering, and the first gradingDim rows must be non-negative.
*/
func NewMatrixOrdering(m [][]int64, gradingDim int) (Ordering, error) {
	n := len(m)

	if gradingDim < 0 || gradingDim > n {
		return nil, fmt.Errorf("%w: grading dimension %d out of range [0, %d]", ErrBadArg, gradingDim, n)
	}

	rows := make([][]int64, n)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: order matrix is not square (row %d has %d entries, want %d)", ErrBadArg, i, len(row), n)
		}

		for j, x := range row {
			if x > MaxMatrixEntry || x < -MaxMatrixEntry {
				return nil, fmt.Errorf("%w: order matrix entry (%d,%d)=%d exceeds %d", ErrBadArg, i, j, x, MaxMatrixEntry)
			}

			if i < gradingDim && x < 0 {
				return nil, fmt.Errorf("%w: grading row %d has a negative entry", ErrBadArg, i)
			}
		}

		rows[i] = append([]int64(nil), row...)
	}

	var ech echelon
	for _, row := range rows {
		if !ech.add(row) {
			return nil, fmt.Errorf("%w: order matrix is singular", ErrBadArg)
		}
	}

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if rows[i][j] == 0 {
				continue
			}

			if rows[i][j] < 0 {
				return nil, fmt.Errorf("%w: column %d does not start positive; not a well-ordering", ErrBadArg, j)
			}

			break
		}
	}

	return &matrixOrdering{rows: rows, gradingDim: gradingDim}, nil
}

/*
CompleteOrdering builds a square matrix ordering on n indeterminates from
some leading rows: the standard unit rows are appended, and every row that
is linearly dependent on the rows before it is dropped.

The first gradingDim rows must be independent; they become the grading.
*/
func CompleteOrdering(n int, rows [][]int64, gradingDim int) (Ordering, error) {
	checkArity(n)

	if gradingDim > len(rows) {
		return nil, fmt.Errorf("%w: grading dimension %d exceeds the %d leading rows", ErrBadArg, gradingDim, len(rows))
	}

	var ech echelon

	kept := make([][]int64, 0, n)
	candidates := append(append([][]int64(nil), rows...), identityRows(n, 0)...)

	for i, row := range candidates {
		if len(kept) == n {
			break
		}

		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrBadArg, i, len(row), n)
		}

		if ech.add(row) {
			kept = append(kept, row)

			continue
		}

		if i < gradingDim {
			return nil, fmt.Errorf("%w: grading row %d is dependent on the previous rows", ErrBadArg, i)
		}
	}

	return NewMatrixOrdering(kept, gradingDim)
}

func (o *matrixOrdering) NumIndets() int  { return len(o.rows) }
func (o *matrixOrdering) GradingDim() int { return o.gradingDim }

func (o *matrixOrdering) Matrix() [][]int64 {
	out := make([][]int64, len(o.rows))
	for i, row := range o.rows {
		out[i] = append([]int64(nil), row...)
	}

	return out
}

func (o *matrixOrdering) String() string {
	bldr := strings.Builder{}
	bldr.WriteString("Matrix(")

	for i, row := range o.rows {
		if i > 0 {
			bldr.WriteString(", ")
		}

		fmt.Fprint(&bldr, row)
	}

	fmt.Fprintf(&bldr, "; grading %d)", o.gradingDim)

	return bldr.String()
}

func (o *matrixOrdering) cmp(a, b []uint32) int {
	for _, row := range o.rows {
		// |entry| <= 2^15 and exponents < 2^31: the sums fit.
		var da, db int64
		for j, w := range row {
			if w == 0 {
				continue
			}

			da += w * int64(a[j])
			db += w * int64(b[j])
		}

		if da != db {
			if da > db {
				return 1
			}

			return -1
		}
	}

	return 0
}

func cmpLex(a, b []uint32) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

func cmpDeg(a, b []uint32) int {
	var da, db uint64
	for i := range a {
		da += uint64(a[i])
		db += uint64(b[i])
	}

	switch {
	case da > db:
		return 1
	case da < db:
		return -1
	}

	return 0
}

func onesRow(n int) []int64 {
	row := make([]int64, n)
	for i := range row {
		row[i] = 1
	}

	return row
}

// identityRows returns the unit rows e_from, ..., e_(n-1).
func identityRows(n, from int) [][]int64 {
	rows := make([][]int64, 0, n-from)
	for i := from; i < n; i++ {
		row := make([]int64, n)
		row[i] = 1
		rows = append(rows, row)
	}

	return rows
}

// echelon incrementally tracks the row space of the rows added so far.
type echelon struct {
	rows   [][]*big.Rat
	pivots []int
}

// add reduces row against the stored rows and keeps it if it is independent.
func (e *echelon) add(row []int64) bool {
	v := make([]*big.Rat, len(row))
	for i, x := range row {
		v[i] = new(big.Rat).SetInt64(x)
	}

	tmp := new(big.Rat)
	for k, r := range e.rows {
		p := e.pivots[k]
		if v[p].Sign() == 0 {
			continue
		}

		factor := new(big.Rat).Quo(v[p], r[p])
		for j := range v {
			v[j].Sub(v[j], tmp.Mul(factor, r[j]))
		}
	}

	for j, x := range v {
		if x.Sign() != 0 {
			e.rows = append(e.rows, v)
			e.pivots = append(e.pivots, j)

			return true
		}
	}

	return false
}
