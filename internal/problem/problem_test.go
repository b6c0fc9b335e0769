package problem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const lexToml = `
field = "QQ"
indets = ["x", "y"]
ordering = "lex"
generators = ["x^2 - y", "x*y - 1"]
`

const cyclicYaml = `
name: cyclic4
field: prime
modulus: 32003
indets: [a, b, c, d]
generators:
  - a + b + c + d
  - a*b + b*c + c*d + d*a
  - a*b*c + b*c*d + c*d*a + d*a*b
  - a*b*c*d - 1
`

func TestLoad(t *testing.T) {
	a := assert.New(t)

	p, err := Load(writeFile(t, "small.toml", lexToml))
	require.NoError(t, err)

	a.Equal("small", p.Name)
	a.Equal("lex", p.Ordering)
	a.Equal(OpGBasis, p.Operation)
	a.Equal("sugar", p.Strategy)
	a.Len(p.Generators, 2)

	p, err = Load(writeFile(t, "c4.yml", cyclicYaml))
	require.NoError(t, err)

	a.Equal("cyclic4", p.Name)
	a.Equal("degrevlex", p.Ordering)
	a.Equal(uint64(32003), p.Modulus)

	_, err = Load(writeFile(t, "p.json", "{}"))
	a.ErrorIs(err, ErrUnknownFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	a.Error(err)

	_, err = Load(writeFile(t, "bad.toml", "indets = ["))
	a.Error(err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Problem
	}{
		{"no indets", Problem{}},
		{"unknown field", Problem{Field: "GF4", Indets: []string{"x"}}},
		{"unknown operation", Problem{Indets: []string{"x"}, Operation: "factor"}},
		{"unknown strategy", Problem{Indets: []string{"x"}, Strategy: "magic"}},
		{"elim without indets", Problem{Indets: []string{"x"}, Operation: OpElim}},
		{"homogenize with two", Problem{Indets: []string{"x", "h"}, Operation: OpHomogenize, Eliminate: []string{"x", "h"}}},
		{"radical without f", Problem{Indets: []string{"x"}, Operation: OpRadical}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.p.Validate(), ErrInvalid)
		})
	}

	p := Problem{Field: "prime", Indets: []string{"x"}}
	require.NoError(t, p.Validate())
	assert.Equal(t, uint64(defaultModulus), p.Modulus)
}

func TestSolve(t *testing.T) {
	a := assert.New(t)

	t.Run("lex basis", func(t *testing.T) {
		p, err := Load(writeFile(t, "small.toml", lexToml))
		require.NoError(t, err)

		res, err := Solve(p)
		require.NoError(t, err)

		a.Equal([]string{"y^3 - 1", "x - y^2"}, res.Basis)
		a.NotEmpty(res.LogHeight)
		a.Equal(1, res.HeightDigits)
		a.NotEmpty(res.RunID)
		a.Equal(1, res.Stats.Runs)
	})

	t.Run("cyclic4", func(t *testing.T) {
		p, err := Load(writeFile(t, "c4.yaml", cyclicYaml))
		require.NoError(t, err)

		res, err := Solve(p)
		require.NoError(t, err)

		a.Len(res.Basis, 7)
		a.Equal("a + b + c + d", res.Basis[0])
		a.Empty(res.LogHeight)
		a.Zero(res.HeightDigits)
		a.Positive(res.Stats.PairsCreated)
	})

	t.Run("elimination", func(t *testing.T) {
		p := &Problem{
			Indets:     []string{"t", "x", "y"},
			Operation:  OpElim,
			Eliminate:  []string{"t"},
			Generators: []string{"x - t^2", "y - t^3"},
		}

		res, err := Solve(p)
		require.NoError(t, err)
		a.Equal([]string{"x^3 - y^2"}, res.Basis)

		p.Eliminate = []string{"s"}
		_, err = Solve(p)
		a.ErrorIs(err, ErrInvalid)
	})

	t.Run("radical membership", func(t *testing.T) {
		p := &Problem{
			Indets:     []string{"x", "y"},
			Operation:  OpRadical,
			Generators: []string{"x^3", "y^2 - x"},
			Others:     []string{"y"},
		}

		res, err := Solve(p)
		require.NoError(t, err)
		require.NotNil(t, res.Member)
		a.True(*res.Member)
	})

	t.Run("intersection", func(t *testing.T) {
		p := &Problem{
			Indets:     []string{"x", "y"},
			Operation:  OpIntersect,
			Generators: []string{"x - 1"},
			Others:     []string{"x + 1"},
		}

		res, err := Solve(p)
		require.NoError(t, err)
		a.Equal([]string{"x^2 - 1"}, res.Basis)
	})

	t.Run("points", func(t *testing.T) {
		p := &Problem{
			Field:     "prime",
			Modulus:   101,
			Indets:    []string{"x", "y"},
			Operation: OpPoints,
			Points:    [][]string{{"4", "7"}},
		}

		res, err := Solve(p)
		require.NoError(t, err)
		a.Equal([]string{"y - 7", "x - 4"}, res.Basis)

		p.Points = [][]string{{"4", "seven"}}
		_, err = Solve(p)
		a.ErrorIs(err, ErrInvalid)
	})

	t.Run("decompose", func(t *testing.T) {
		p := &Problem{
			Indets:     []string{"x", "y", "z"},
			Operation:  OpDecompose,
			Generators: []string{"x*y", "y*z"},
		}

		res, err := Solve(p)
		require.NoError(t, err)
		a.ElementsMatch([][]string{{"y"}, {"z", "x"}}, res.Components)
	})

	t.Run("normal form", func(t *testing.T) {
		p := &Problem{
			Indets:     []string{"x", "y"},
			Operation:  OpNormalForm,
			Generators: []string{"x", "y"},
			Others:     []string{"x*y + 7"},
		}

		res, err := Solve(p)
		require.NoError(t, err)
		a.Equal([]string{"7"}, res.Basis)
	})

	t.Run("bad generator", func(t *testing.T) {
		p := &Problem{Indets: []string{"x"}, Generators: []string{"x + w"}}

		_, err := Solve(p)
		a.ErrorIs(err, ErrInvalid)
	})
}

func TestResultYaml(t *testing.T) {
	p, err := Load(writeFile(t, "small.toml", lexToml))
	require.NoError(t, err)

	res, err := Solve(p)
	require.NoError(t, err)

	out, err := yaml.Marshal(res)
	require.NoError(t, err)

	var back Result
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, res.Basis, back.Basis)
	assert.Equal(t, res.Stats, back.Stats)
}
