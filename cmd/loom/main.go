// Command loom renders the bundled demo views headlessly and inspects
// configuration.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/loom/cmd/loom/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
