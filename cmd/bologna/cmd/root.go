package cmd

import (
	"fmt"
	"os"

	bllog "github.com/msto63/bologna/foundation/core/log"
	"github.com/msto63/bologna/pkg/core/config"
	"github.com/msto63/bologna/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	appLogger *bllog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bologna",
	Short: "Bologna - Kaleidoscope front end",
	Long: `Bologna tokenizes and parses a small expression language with
function definitions, extern declarations and top-level expressions.

Without a subcommand the interactive loop is started.

Commands:
  repl     - interactive loop (default)
  lex      - token dump per input line
  parse    - parse files and print their syntax trees
  tui      - terminal console
  serve    - websocket parse service`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runREPL,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $BOLOGNA_CONFIG or ./bologna.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVar(&replPrintAST, "ast", false, "print the syntax tree of every construct")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		printError("loading config", err)
		return err
	}

	appLogger = logging.Setup(appConfig, cmd.Name(), verbose)
	appLogger.Debug("configuration loaded", bllog.Fields{
		"precedence": appConfig.Parser.Precedence,
		"log_level":  appConfig.General.LogLevel,
	})
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
