package main

import (
	"os"

	"github.com/jonathanmweiss/go-groebner/cmd/gbasis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
