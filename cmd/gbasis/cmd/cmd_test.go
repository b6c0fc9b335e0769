package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestRun(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "twisted.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
indets = ["t", "x", "y"]
operation = "elim"
eliminate = ["t"]
generators = ["x - t^2", "y - t^3"]
`), 0o600))

	out, err := execute(t, "run", path)
	require.NoError(t, err)

	var res struct {
		Name  string   `yaml:"name"`
		Basis []string `yaml:"basis"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	a.Equal("twisted", res.Name)
	a.Equal([]string{"x^3 - y^2"}, res.Basis)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "nothing.toml"))
	a.Error(err)

	_, err = execute(t, "run")
	a.Error(err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gbasis "+version+"\n", out)
}
