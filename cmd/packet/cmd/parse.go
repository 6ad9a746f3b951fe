package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobjonsson/packet/pkg/logger"
	"github.com/jacobjonsson/packet/pkg/packet"
	"github.com/jacobjonsson/packet/pkg/source"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse JavaScript source and print it back",
	Long: `Parse JavaScript source code and write the printed form of the
syntax tree to standard output. Reading from standard input is the
default when no file is given.

Examples:
  # Parse a file and print it back
  packet parse script.js

  # Parse an inline expression
  packet parse -e "a ** b ** c"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "eval", "e", false, "treat the argument as inline code")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
		filename = "<stdin>"
	}

	src := source.New(filename, input)
	sink := &logger.Pretty{Out: os.Stderr}
	program, err := packet.ParseSource(src, sink)
	if sink.HasErrors() || err != nil {
		return fmt.Errorf("parsing failed")
	}

	fmt.Print(packet.Print(program))
	return nil
}
