package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long: `Shows every registered variant with its render policy and whether the
difficulty ramp runs. A render.mode in the config file or --render on play
overrides the variant's render policy.`,
	Run: runList,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runList(cmd *cobra.Command, args []string) {
	infos := registry.List()
	if len(infos) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println(variantTable(infos).Render())
	fmt.Println("Run 'catch play <id>' to play a variant.")
}

// variantTable lays out one row per registered variant.
func variantTable(infos []registry.VariantInfo) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE", "RENDER", "RAMP").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, info := range infos {
		render, ramp := "?", "?"
		if v, ok := catch.LookupVariant(info.ID); ok {
			render = string(v.Render)
			ramp = "off"
			if v.Ramp {
				ramp = "on"
			}
		}
		t.Row(info.ID, info.Title, render, ramp)
	}
	return t
}
