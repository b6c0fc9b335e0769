package cmd

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gbasis",
	Short: "Groebner bases of polynomial ideals",
	Long: `gbasis reads a problem file (TOML or YAML) describing a polynomial ring,
a list of generators and an operation, and prints the result as YAML.

Operations:
  gbasis      - reduced Groebner basis and minimal generators
  lt          - leading terms of the Groebner basis
  elim        - eliminate the indeterminates listed in eliminate
  syz         - syzygies of the generators
  intersect   - intersection with the ideal in others
  colon       - colon by the ideal in others
  saturate    - saturation by the ideal in others
  homogenize  - homogenize with respect to one indeterminate
  radical     - radical membership of the polynomial in others
  points      - vanishing ideal of a finite set of points
  decompose   - primary decomposition of a square-free monomial ideal
  nf          - normal form of the polynomial in others`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}

		return logging.SetLogLevel("*", "debug")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
