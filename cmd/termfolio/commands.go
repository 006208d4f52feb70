package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poi5en/termfolio/internal/platform/shell"
	"github.com/poi5en/termfolio/internal/registry"
	"github.com/poi5en/termfolio/internal/terminal"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List terminal commands",
	Long:  `Shows every command the terminal understands, in help order.`,
	Run:   runCommands,
}

func runCommands(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	table := terminal.DefaultTable(cfg.Profile, nil)

	fmt.Println("Available commands:")
	fmt.Println()
	fmt.Println(shell.HelpTable(table.Help()))
	fmt.Println()
	fmt.Printf("Total: %d commands\n", table.Len())

	fmt.Println()
	fmt.Println("Games:")
	for _, g := range registry.List() {
		fmt.Printf("  %-10s %s\n", g.ID, g.Title)
	}
}
