package cmd

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jacobjonsson/packet/pkg/logger"
	"github.com/jacobjonsson/packet/pkg/packet"
	"github.com/jacobjonsson/packet/pkg/source"
)

var (
	bannerColor = color.New(color.FgGreen)
	resultColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
	infoColor   = color.New(color.FgCyan)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse JavaScript snippets",
	Long: `Start an interactive session: each line is parsed and printed back
from its syntax tree, or the syntax errors are shown. Use arrow keys for
history; exit with "exit" or Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("js >>> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	bannerColor.Printf("packet %s — JavaScript parser\n", Version)
	infoColor.Println("Each line is parsed and printed back. Type \"exit\" to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		src := source.New("<repl>", line)
		sink := &logger.Recorder{}
		program, parseErr := packet.ParseSource(src, sink)
		if sink.HasErrors() || parseErr != nil {
			for _, msg := range sink.Messages {
				errorColor.Printf("[%d:%d] %s: %s\n",
					msg.Location.Line, msg.Location.Column, msg.Severity, msg.Text)
			}
			continue
		}
		resultColor.Print(packet.Print(program))
	}
}
