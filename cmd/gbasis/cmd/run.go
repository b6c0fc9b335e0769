package cmd

import (
	"fmt"

	"github.com/jonathanmweiss/go-groebner/internal/problem"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var runCmd = &cobra.Command{
	Use:   "run <problem-file>...",
	Short: "Solves one or more problem files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()

	for _, path := range args {
		p, err := problem.Load(path)
		if err != nil {
			printError("loading "+path, err)
			return err
		}

		res, err := problem.Solve(p)
		if err != nil {
			printError("solving "+p.Name, err)
			return err
		}

		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}

	return nil
}
