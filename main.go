package main

import (
	"fmt"
	"os"

	"github.com/avstrong/diamond/internal/cli"
)

func main() {
	var exitCode int

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run app: %v\n", err)

		exitCode = 1
	}

	os.Exit(exitCode)
}
