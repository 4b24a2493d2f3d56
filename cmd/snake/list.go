package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long: `Shows every registered variant with its preset board size and tick
interval. A config file passed with --config (or found on the search path)
is applied on top of the chosen preset.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	variants := registry.List()
	out := cmd.OutOrStdout()

	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return nil
	}

	idW, titleW := len("ID"), len("Title")
	for _, v := range variants {
		idW = max(idW, len(v.ID))
		titleW = max(titleW, len(v.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %-7s  %s\n", idW, "ID", titleW, "Title", "Board", "Tick")
	for _, v := range variants {
		fmt.Fprintf(out, "  %-*s  %-*s  %-7s  %s\n", idW, v.ID, titleW, v.Title, v.Board(), v.Config.TickInterval())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake play <id>' to play a variant.")
	return nil
}
