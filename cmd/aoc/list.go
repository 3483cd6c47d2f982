package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc-grids/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered days",
	Long:  `Shows a list of all puzzle days the solver knows.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	days := registry.List()

	if len(days) == 0 {
		fmt.Fprintln(out, "No days available.")
		return
	}

	fmt.Fprintln(out, "Available days:")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-3s  %s\n", "Day", "Title")
	fmt.Fprintf(out, "  %-3s  %s\n", "---", "-----")

	for _, d := range days {
		fmt.Fprintf(out, "  %-3d  %s\n", d.Day, d.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'aoc run <day> <input>' to solve a day.")
}
