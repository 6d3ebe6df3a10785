package cmd

import (
	bllog "github.com/msto63/bologna/foundation/core/log"
	"github.com/msto63/bologna/internal/repl"
	"github.com/msto63/bologna/pkg/core/version"
	"github.com/spf13/cobra"
)

var replPrintAST bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive loop",
	Long: `Reads top-level constructs from standard input and reports each one:

  def name(args) body   - function definition
  extern name(args)     - extern declaration
  expression            - top-level expression
  ;                     - ignored

The banner, prompts and reports go to stderr; with --ast the syntax tree of
every construct is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replPrintAST, "ast", false, "print the syntax tree of every construct")
}

// replConfig builds the REPL configuration shared by repl, lex and parse
func replConfig() (repl.Config, error) {
	opts, err := appConfig.ParserOptions()
	if err != nil {
		return repl.Config{}, err
	}
	opts.Logger = appLogger

	banner := appConfig.REPL.Banner
	if banner == "" {
		banner = version.Banner()
	}

	return repl.Config{
		Banner: banner,
		Prompt: appConfig.REPL.Prompt,
		Parser: opts,
		Logger: appLogger,
	}, nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := replConfig()
	if err != nil {
		return err
	}
	cfg.PrintAST = replPrintAST

	summary, err := repl.Run(cfg)
	appLogger.Debug("session finished", bllog.Fields{
		"parsed":   summary.Parsed(),
		"failures": summary.Failures,
	})
	return err
}
