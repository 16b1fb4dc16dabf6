package cmd

import (
	"fmt"

	"github.com/go-drift/loom/cmd/loom/internal/demo"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demos",
		Short: "List the bundled demos",
		Long:  `List the demo views that "loom capture" can render.`,
		Usage: "loom demos",
		Run:   runDemos,
	})
}

func runDemos(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("demos takes no arguments")
	}
	for _, d := range demo.All() {
		fmt.Fprintf(stdout, "  %-10s %s\n", d.Name, d.Short)
	}
	return nil
}
