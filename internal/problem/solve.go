package problem

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	groebner "github.com/jonathanmweiss/go-groebner"
	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/poly"
)

// Summary is the part of groebner.Stats worth reporting.
type Summary struct {
	Runs             int  `yaml:"runs"`
	PairsCreated     int  `yaml:"pairs_created"`
	PairsProcessed   int  `yaml:"pairs_processed"`
	CoprimeDiscarded int  `yaml:"coprime_discarded"`
	ChainDiscarded   int  `yaml:"chain_discarded"`
	BDiscarded       int  `yaml:"b_discarded"`
	Reductions       int  `yaml:"reductions"`
	ZeroReductions   int  `yaml:"zero_reductions"`
	MonomialFastPath bool `yaml:"monomial_fast_path,omitempty"`
	Univariate       bool `yaml:"univariate_fast_path,omitempty"`
}

// Result is what Solve reports, ready for printing.
type Result struct {
	Name      string    `yaml:"name"`
	Ring      string    `yaml:"ring"`
	Operation Operation `yaml:"operation"`
	RunID     string    `yaml:"run_id,omitempty"`

	Basis      []string   `yaml:"basis,omitempty"`
	MinGens    []string   `yaml:"min_gens,omitempty"`
	Vectors    []string   `yaml:"vectors,omitempty"`
	Components [][]string `yaml:"components,omitempty"`
	Member     *bool      `yaml:"member,omitempty"`

	// LogHeight is the largest natural log height of a basis element over QQ,
	// HeightDigits the decimal digits of the largest height.
	LogHeight    string `yaml:"log_height,omitempty"`
	HeightDigits int    `yaml:"height_digits,omitempty"`

	Stats Summary `yaml:"stats"`
}

// Solve runs the problem's operation.
func Solve(p *Problem) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if strings.EqualFold(p.Field, "prime") {
		f, err := field.NewPrimeField(p.Modulus)
		if err != nil {
			return nil, err
		}

		return solve[uint64](p, f, nil)
	}

	return solve[*big.Rat](p, field.QQ, func(b *poly.Poly[*big.Rat]) (*big.Float, int, error) {
		h, err := poly.LogHeight(b)
		if err != nil {
			return nil, 0, err
		}

		return h, poly.HeightDigits(b), nil
	})
}

func solve[E any](p *Problem, cr field.Ring[E], height func(*poly.Poly[E]) (*big.Float, int, error)) (*Result, error) {
	m, err := p.monoid()
	if err != nil {
		return nil, err
	}

	r := poly.NewRing(cr, m)

	gens, err := r.ParseList(p.Generators...)
	if err != nil {
		return nil, fmt.Errorf("%w: generators: %w", ErrInvalid, err)
	}

	others, err := r.ParseList(p.Others...)
	if err != nil {
		return nil, fmt.Errorf("%w: others: %w", ErrInvalid, err)
	}

	stats := &groebner.Stats{}
	opts := p.options(stats)

	res := &Result{Name: p.Name, Ring: r.String(), Operation: p.Operation}

	log.Debugf("solving %s: %s in %s", p.Name, p.Operation, r)

	var basis []*poly.Poly[E]

	switch p.Operation {
	case OpGBasis:
		var minGens []*poly.Poly[E]
		if basis, minGens, err = groebner.ComputeGBasis(r, gens, opts...); err == nil {
			res.MinGens = strs(minGens)
		}
	case OpLT:
		basis, err = groebner.ComputeLT(r, gens, opts...)
	case OpElim:
		var idx []int
		if idx, err = p.indices(m, p.Eliminate); err == nil {
			basis, err = groebner.ComputeElim(r, gens, idx, opts...)
		}
	case OpHomogenize:
		var idx []int
		if idx, err = p.indices(m, p.Eliminate); err == nil {
			basis, err = groebner.ComputeHomogenization(r, gens, idx[0], opts...)
		}
	case OpIntersect:
		basis, err = groebner.ComputeIntersection(r, gens, others, opts...)
	case OpColon:
		basis, err = groebner.ComputeCColon(r, gens, others, opts...)
	case OpSaturate:
		basis, err = groebner.ComputeSSaturation(r, gens, others, opts...)
	case OpSyz:
		var syz []*groebner.Vector[E]
		if syz, err = groebner.ComputeSyz(r, gens, opts...); err == nil {
			for _, v := range syz {
				res.Vectors = append(res.Vectors, v.String())
			}
		}
	case OpRadical:
		var in bool
		if in, err = groebner.RadicalMembership(r, gens, others[0], opts...); err == nil {
			res.Member = &in
		}
	case OpPoints:
		var pts [][]E
		if pts, err = parsePoints(cr, p.Points); err == nil {
			basis, err = groebner.IdealOfPoints(r, pts, opts...)
		}
	case OpDecompose:
		res.Components, err = decompose(r, gens, opts)
	case OpNormalForm:
		var gb []*poly.Poly[E]
		if gb, _, err = groebner.ComputeGBasis(r, gens, opts...); err == nil {
			var nf *poly.Poly[E]
			if nf, err = groebner.NormalForm(r, others[0], gb, opts...); err == nil {
				basis = []*poly.Poly[E]{nf}
			}
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}

	res.Basis = strs(basis)

	if height != nil && len(basis) > 0 {
		best := new(big.Float)
		for _, b := range basis {
			h, digits, err := height(b)
			if err != nil {
				return nil, err
			}

			if h.Cmp(best) > 0 {
				best = h
			}

			res.HeightDigits = max(res.HeightDigits, digits)
		}

		res.LogHeight = best.Text('g', 10)
	}

	if stats.RunID != uuid.Nil {
		res.RunID = stats.RunID.String()
	}

	res.Stats = Summary{
		Runs:             stats.Runs,
		PairsCreated:     stats.PairsCreated,
		PairsProcessed:   stats.PairsProcessed,
		CoprimeDiscarded: stats.CoprimeDiscarded,
		ChainDiscarded:   stats.ChainDiscarded,
		BDiscarded:       stats.BDiscarded,
		Reductions:       stats.Reductions,
		ZeroReductions:   stats.ZeroReductions,
		MonomialFastPath: stats.MonomialFastPath,
		Univariate:       stats.UnivariateFastPath,
	}

	return res, nil
}

func decompose[E any](r *poly.Ring[E], gens []*poly.Poly[E], opts []groebner.Option) ([][]string, error) {
	I, err := groebner.NewIdeal(r, gens, opts...)
	if err != nil {
		return nil, err
	}

	comps, err := I.PrimaryDecomposition()
	if err != nil {
		return nil, err
	}

	out := make([][]string, len(comps))
	for k, c := range comps {
		gb, err := c.GBasis()
		if err != nil {
			return nil, err
		}

		out[k] = strs(gb)
	}

	return out, nil
}

func parsePoints[E any](cr field.Ring[E], raw [][]string) ([][]E, error) {
	out := make([][]E, len(raw))
	for k, pt := range raw {
		out[k] = make([]E, len(pt))
		for i, s := range pt {
			c, err := cr.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("%w: point %d: %w", ErrInvalid, k, err)
			}

			out[k][i] = c
		}
	}

	return out, nil
}

func strs[E any](ps []*poly.Poly[E]) []string {
	if len(ps) == 0 {
		return nil
	}

	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}
