// Command present simulates and previews presentation transitions.
package main

import (
	"os"

	"github.com/go-drift/present/cmd/present/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
