package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var flagPretty bool

var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := openTable(args[0])
		if err != nil {
			return err
		}

		if !flagPretty {
			fmt.Print(tbl.String())
			return nil
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240")))
		for _, row := range tbl.All() {
			t.Row(row.Fields()...)
		}
		fmt.Println(t.Render())
		return nil
	},
}

func init() {
	catCmd.Flags().BoolVar(&flagPretty, "pretty", false, "render a bordered table instead of raw CSV")
	rootCmd.AddCommand(catCmd)
}
