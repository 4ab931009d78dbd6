// ABOUTME: Entry point for the agenus-admin CLI
// ABOUTME: Terminal tool for managing the Agenus product catalog

package main

import (
	"fmt"
	"os"

	"github.com/juliomonteiiro/agenus-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
