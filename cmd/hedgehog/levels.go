package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the acts",
	Long:  `Shows every act in play order with its stock contents.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printLevels(os.Stdout, world.StandardCatalog{}, world.DefaultTuning())
	},
}

func printLevels(w io.Writer, cat world.Catalog, t world.Tuning) {
	fmt.Fprintln(w, "Acts:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-2s  %-12s  %-6s  %-7s  %-8s  %-4s  %s\n", "#", "Name", "Rings", "Enemies", "Monitors", "Boss", "Finish")
	fmt.Fprintf(w, "  %-2s  %-12s  %-6s  %-7s  %-8s  %-4s  %s\n", "-", "----", "-----", "-------", "--------", "----", "------")

	for i, id := range world.Levels {
		c := world.NewLevelContent(t)
		cat.Build(id, c)
		boss := "no"
		if c.Boss != nil {
			boss = "yes"
		}
		fmt.Fprintf(w, "  %-2d  %-12s  %-6d  %-7d  %-8d  %-4s  x=%.0f\n",
			i+1, id, len(c.Rings), len(c.Enemies), len(c.Monitors), boss, c.Finish.Pos.X)
	}
}
