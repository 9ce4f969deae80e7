package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var flagType string

var getCmd = &cobra.Command{
	Use:   "get <file> <row> <col>",
	Short: "Read one cell",
	Long: `Read one cell as a typed value. Out-of-range cells and unparseable
content yield the type's zero value, matching the library's lenient policy.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, col, err := parseCell(args[1], args[2])
		if err != nil {
			return err
		}

		tbl, err := openTable(args[0])
		if err != nil {
			return err
		}

		switch flagType {
		case "string":
			fmt.Println(tbl.GetString(row, col))
		case "int":
			fmt.Println(tbl.GetInt(row, col))
		case "float":
			fmt.Println(tbl.GetFloat(row, col))
		case "bool":
			fmt.Println(tbl.GetBool(row, col))
		default:
			return fmt.Errorf("unknown --type %q (want string, int, float, or bool)", flagType)
		}
		return nil
	},
}

func parseCell(rowArg, colArg string) (row, col int, err error) {
	row, err = strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, fmt.Errorf("row index %q is not a number", rowArg)
	}
	col, err = strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("column index %q is not a number", colArg)
	}
	return row, col, nil
}

func init() {
	getCmd.Flags().StringVar(&flagType, "type", "string", "value type: string, int, float, or bool")
	rootCmd.AddCommand(getCmd)
}
