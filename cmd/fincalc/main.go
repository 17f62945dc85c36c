package main

import (
	"os"

	"github.com/msto63/fincalc/cmd/fincalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
