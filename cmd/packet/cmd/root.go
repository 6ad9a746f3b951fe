package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobjonsson/packet/pkg/logger"
	"github.com/jacobjonsson/packet/pkg/packet"
	"github.com/jacobjonsson/packet/pkg/source"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "packet <input> [<output>]",
	Short: "JavaScript parser and printer",
	Long: `packet is a front end for ECMAScript source text: a scanner and a
top-down operator-precedence parser that build a syntax tree, plus a
printer that writes the tree back out as JavaScript.

Given an input file it parses the file and reports any syntax errors.
Given an output path as well, it writes the printed form of the tree
there.`,
	Version:       Version,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func runRoot(cmd *cobra.Command, args []string) error {
	input := args[0]
	contents, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", input, err)
	}

	src := source.New(input, string(contents))
	sink := &logger.Pretty{Out: os.Stderr}
	program, parseErr := packet.ParseSource(src, sink)

	if sink.HasErrors() || parseErr != nil {
		return fmt.Errorf("parsing %s failed", input)
	}

	if len(args) == 2 {
		output := packet.Print(program)
		if err := os.WriteFile(args[1], []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", args[1], err)
		}
	}
	return nil
}
