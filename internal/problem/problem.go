// Package problem reads Groebner basis problems from TOML or YAML files and
// solves them.
package problem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	logging "github.com/ipfs/go-log/v2"
	groebner "github.com/jonathanmweiss/go-groebner"
	"github.com/jonathanmweiss/go-groebner/monomial"
	"gopkg.in/yaml.v3"
)

var log = logging.Logger("problem")

var (
	ErrUnknownFormat = errors.New("unknown problem file format")
	ErrInvalid       = errors.New("invalid problem")
)

// Operation names what to compute from the generators.
type Operation string

const (
	OpGBasis     Operation = "gbasis"
	OpLT         Operation = "lt"
	OpElim       Operation = "elim"
	OpSyz        Operation = "syz"
	OpIntersect  Operation = "intersect"
	OpColon      Operation = "colon"
	OpSaturate   Operation = "saturate"
	OpHomogenize Operation = "homogenize"
	OpRadical    Operation = "radical"
	OpPoints     Operation = "points"
	OpDecompose  Operation = "decompose"
	OpNormalForm Operation = "nf"
)

const defaultModulus = 32003

var operations = []Operation{
	OpGBasis, OpLT, OpElim, OpSyz, OpIntersect, OpColon, OpSaturate,
	OpHomogenize, OpRadical, OpPoints, OpDecompose, OpNormalForm,
}

/*
Problem is one computation: a polynomial ring, generators and an operation.

	name = "cyclic4"
	field = "prime"
	modulus = 32003
	indets = ["a", "b", "c", "d"]
	ordering = "degrevlex"
	generators = ["a + b + c + d", "a*b + b*c + c*d + d*a", ...]

Operations other than gbasis read their second argument from others (a
second ideal, or the polynomial to saturate by, test or reduce), eliminate
(indeterminate names) or points.
*/
type Problem struct {
	Name string `toml:"name" yaml:"name"`

	// Field is "QQ" or "prime".
	Field   string `toml:"field" yaml:"field"`
	Modulus uint64 `toml:"modulus" yaml:"modulus"`

	Indets []string `toml:"indets" yaml:"indets"`
	// Ordering is lex, deglex, degrevlex or matrix.
	Ordering    string    `toml:"ordering" yaml:"ordering"`
	Matrix      [][]int64 `toml:"matrix" yaml:"matrix"`
	GradingDim  int       `toml:"grading_dim" yaml:"grading_dim"`
	MaxExponent uint32    `toml:"max_exponent" yaml:"max_exponent"`
	BigExponent bool      `toml:"big_exponents" yaml:"big_exponents"`

	Operation   Operation `toml:"operation" yaml:"operation"`
	Strategy    string    `toml:"strategy" yaml:"strategy"`
	Interreduce *bool     `toml:"interreduce" yaml:"interreduce"`

	Generators []string   `toml:"generators" yaml:"generators"`
	Others     []string   `toml:"others" yaml:"others"`
	Eliminate  []string   `toml:"eliminate" yaml:"eliminate"`
	Points     [][]string `toml:"points" yaml:"points"`
}

// Load decodes a problem by file extension: .toml, .yaml or .yml.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem: %w", err)
	}

	var p Problem

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &p); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	log.Debugf("loaded problem %s from %s", p.Name, path)

	return &p, nil
}

// Validate fills in defaults and checks the fields that do not need a ring.
func (p *Problem) Validate() error {
	if p.Field == "" {
		p.Field = "QQ"
	}

	if p.Ordering == "" {
		p.Ordering = "degrevlex"
	}

	if p.Operation == "" {
		p.Operation = OpGBasis
	}

	if p.Strategy == "" {
		p.Strategy = groebner.Sugar.String()
	}

	switch strings.ToLower(p.Field) {
	case "qq":
	case "prime":
		if p.Modulus == 0 {
			p.Modulus = defaultModulus
		}
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalid, p.Field)
	}

	if len(p.Indets) == 0 {
		return fmt.Errorf("%w: no indeterminates", ErrInvalid)
	}

	known := false
	for _, op := range operations {
		if p.Operation == op {
			known = true
		}
	}

	if !known {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalid, p.Operation)
	}

	if _, err := groebner.ParseStrategy(p.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch p.Operation {
	case OpElim:
		if len(p.Eliminate) == 0 {
			return fmt.Errorf("%w: nothing to eliminate", ErrInvalid)
		}
	case OpHomogenize:
		if len(p.Eliminate) != 1 {
			return fmt.Errorf("%w: homogenize needs one indeterminate in eliminate", ErrInvalid)
		}
	case OpRadical, OpNormalForm:
		if len(p.Others) != 1 {
			return fmt.Errorf("%w: %s needs one polynomial in others", ErrInvalid, p.Operation)
		}
	}

	return nil
}

func (p *Problem) ordering() (monomial.Ordering, error) {
	n := len(p.Indets)

	switch strings.ToLower(p.Ordering) {
	case "lex":
		return monomial.Lex(n), nil
	case "deglex":
		return monomial.DegLex(n), nil
	case "degrevlex":
		return monomial.DegRevLex(n), nil
	case "matrix":
		return monomial.NewMatrixOrdering(p.Matrix, p.GradingDim)
	}

	return nil, fmt.Errorf("%w: unknown ordering %q", ErrInvalid, p.Ordering)
}

func (p *Problem) monoid() (*monomial.Monoid, error) {
	ord, err := p.ordering()
	if err != nil {
		return nil, err
	}

	opts := []monomial.Option{monomial.WithNames(p.Indets...)}

	switch {
	case p.BigExponent:
		opts = append(opts, monomial.WithBigExponents())
	case p.MaxExponent > 0:
		opts = append(opts, monomial.WithMaxExponent(p.MaxExponent))
	}

	return monomial.NewMonoid(ord, opts...)
}

// indices maps names to indeterminate indices.
func (p *Problem) indices(m *monomial.Monoid, names []string) ([]int, error) {
	out := make([]int, len(names))
	for k, s := range names {
		i, ok := m.IndetIndex(s)
		if !ok {
			return nil, fmt.Errorf("%w: unknown indeterminate %q", ErrInvalid, s)
		}

		out[k] = i
	}

	return out, nil
}

func (p *Problem) options(stats *groebner.Stats) []groebner.Option {
	st, _ := groebner.ParseStrategy(p.Strategy)

	opts := []groebner.Option{groebner.WithStrategy(st), groebner.WithStats(stats)}
	if p.Interreduce != nil && !*p.Interreduce {
		opts = append(opts, groebner.WithoutInterreduction())
	}

	return opts
}
