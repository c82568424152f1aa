// Package main is the entry point for the plugconf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/cmd"
)

func main() {
	root := cmd.NewRootCmd()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
