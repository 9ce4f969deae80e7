package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridfile/csvtable/pkg/csvtable"
)

var sniffCmd = &cobra.Command{
	Use:   "sniff <file>",
	Short: "Detect the field separator of a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		sep := csvtable.DetectSeparator(string(data))
		fmt.Println(printableSeparator(sep))
		return nil
	},
}

// printableSeparator makes whitespace separators visible on a terminal.
func printableSeparator(sep string) string {
	if sep == "\t" {
		return `\t`
	}
	return sep
}

func init() {
	rootCmd.AddCommand(sniffCmd)
}
