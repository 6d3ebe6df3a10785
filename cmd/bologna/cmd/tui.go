package cmd

import (
	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	bllog "github.com/msto63/bologna/foundation/core/log"
	"github.com/msto63/bologna/internal/tui/console"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"console"},
	Short:   "Start the terminal console",
	Long: `Starts an interactive console. Every submitted line is parsed in a fresh
session and the results are kept in a scrollable history.

Keys:
  Enter       parse the line
  Tab         toggle parse / token mode
  Ctrl+L      clear history
  PgUp/PgDn   scroll
  Esc/Ctrl+C  quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts, err := appConfig.ParserOptions()
	if err != nil {
		return err
	}
	// the alternate screen owns the terminal
	opts.Logger = bllog.Discard()

	return console.Run(console.Config{
		Prompt: appConfig.REPL.Prompt,
		Parser: opts,
		Lexer:  blparser.LexerOptions{EmitWhitespace: appConfig.REPL.EmitWhitespace},
	})
}
