package main

import (
	"os"

	"github.com/mathpech/mathpech/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
