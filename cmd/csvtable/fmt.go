package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gridfile/csvtable/pkg/csvtable"
)

var (
	flagOut    string
	flagOutSep string
	flagQuote  bool
	flagTrim   bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a CSV file with a new separator, quoting, or trimming",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := openTable(args[0])
		if err != nil {
			return err
		}

		if flagTrim {
			tbl.Trim()
		}

		out := flagOut
		if out == "" {
			out = args[0]
		}
		if err := tbl.SaveWithOptions(out, csvtable.SaveOptions{
			Separator: flagOutSep,
			Quote:     flagQuote,
		}); err != nil {
			return err
		}
		log.Debug("rewrote file", "out", out, "rows", tbl.NumRows())
		return nil
	},
}

func init() {
	fmtCmd.Flags().StringVar(&flagOut, "out", "", "output path (default: rewrite in place)")
	fmtCmd.Flags().StringVar(&flagOutSep, "out-sep", "", "output field separator (default: same as input)")
	fmtCmd.Flags().BoolVar(&flagQuote, "quote", false, "quote every field on output")
	fmtCmd.Flags().BoolVar(&flagTrim, "trim", false, "trim whitespace from every field first")
	rootCmd.AddCommand(fmtCmd)
}
