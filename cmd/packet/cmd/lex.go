package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobjonsson/packet/pkg/packet"
	"github.com/jacobjonsson/packet/pkg/token"
)

var (
	evalExpr string
	showPos  bool
	showKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a JavaScript file or expression",
	Long: `Tokenize (lex) JavaScript source and print the resulting tokens.

This command is useful for debugging the scanner and understanding how
source code is tokenized.

Examples:
  # Tokenize a file
  packet lex script.js

  # Tokenize an inline expression
  packet lex -e "let x = 42;"

  # Show token kinds and byte offsets
  packet lex --show-kind --show-pos script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token byte offsets")
	lexCmd.Flags().BoolVar(&showKind, "show-kind", false, "show token kind names")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		contents, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(contents)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokens, err := packet.ScanAll(input)
	for _, tok := range tokens {
		printToken(input, tok)
	}
	if err != nil {
		return err
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
	}
	return nil
}

func printToken(input string, tok token.Token) {
	var output string
	if showKind {
		output = fmt.Sprintf("[%-24s]", tok.Kind.String())
	}
	output += fmt.Sprintf(" %q", input[tok.Span.Start:tok.Span.End])
	if showPos {
		output += fmt.Sprintf(" @%d..%d", tok.Span.Start, tok.Span.End)
	}
	fmt.Println(output)
}
