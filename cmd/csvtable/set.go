package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <file> <row> <col> <value>",
	Short: "Write one cell and save the file",
	Long: `Write one cell and save the file in place. Writing beyond the current
bounds grows the table, padding new cells with empty strings.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, col, err := parseCell(args[1], args[2])
		if err != nil {
			return err
		}

		tbl, err := openTable(args[0])
		if err != nil {
			return err
		}

		tbl.SetString(row, col, args[3])
		log.Debug("cell written", "row", row, "col", col, "value", args[3])

		// Empty path: save back to the file we loaded.
		return tbl.Save("")
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
