// Command csvtable inspects and edits CSV files from the shell.
//
// Usage:
//
//	csvtable cat data.csv --pretty
//	csvtable get data.csv 1 2 --type int
//	csvtable set data.csv 1 2 42
//	csvtable fmt data.csv --out-sep ";" --quote --trim
//	csvtable sniff data.csv
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gridfile/csvtable/pkg/csvtable"
)

var (
	flagSep     string
	flagComment string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "csvtable",
	Short:         "Inspect and edit CSV files",
	Long:          "csvtable loads CSV files into a row/column grid, reads and edits typed cell values, and writes them back.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSep, "sep", ",", `field separator; "auto" detects it from the file`)
	rootCmd.PersistentFlags().StringVar(&flagComment, "comment", "#", "comment line prefix, skipped on load")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// openTable loads path into a fresh table, honoring the --sep and --comment
// flags. With --sep auto the separator is sniffed from the file content.
func openTable(path string) (*csvtable.Table, error) {
	sep := flagSep
	if sep == "auto" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sep = csvtable.DetectSeparator(string(data))
		log.Debug("detected separator", "path", path, "sep", sep)
	}

	tbl := csvtable.New()
	if err := tbl.LoadWithOptions(path, csvtable.LoadOptions{
		Separator:     sep,
		CommentPrefix: flagComment,
	}); err != nil {
		return nil, err
	}
	log.Debug("loaded table", "path", path, "rows", tbl.NumRows())
	return tbl, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
