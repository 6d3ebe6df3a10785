package cmd

import (
	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	"github.com/msto63/bologna/internal/repl"
	"github.com/spf13/cobra"
)

var lexWhitespace bool

var lexCmd = &cobra.Command{
	Use:   "lex",
	Short: "Print the tokens of every input line",
	Long: `Reads standard input line by line and prints one token per line:

  DEF: 'def'
  IDENTIFIER: 'foo'
  NUMBER: '4.5' 4.5
  CHAR: '('

With --whitespace the runs of blanks between tokens are printed too.`,
	Args: cobra.NoArgs,
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVarP(&lexWhitespace, "whitespace", "w", false, "also print whitespace tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	cfg, err := replConfig()
	if err != nil {
		return err
	}

	whitespace := lexWhitespace || appConfig.REPL.EmitWhitespace
	return repl.Lex(cfg, blparser.LexerOptions{EmitWhitespace: whitespace})
}
