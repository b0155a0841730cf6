package main

import (
	"os"

	"github.com/adesai/prepdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
