package cmd

import (
	"fmt"
	"io"
	"os"

	bldriver "github.com/msto63/bologna/foundation/bologna/driver"
	"github.com/msto63/bologna/internal/repl"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Parse source files and print their syntax trees",
	Long: `Parses every file in a fresh session and prints the syntax tree of each
construct to stdout. Failures are reported on stderr as

  file:line:column: Error: message

Use - to read standard input. The command fails when any construct failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := replConfig()
	if err != nil {
		return err
	}
	cfg.Out = cmd.OutOrStdout()
	cfg.Err = cmd.ErrOrStderr()

	failures := 0
	for _, name := range args {
		summary, err := parseFile(name, cfg)
		if err != nil {
			return err
		}
		failures += summary.Failures
	}

	if failures > 0 {
		return fmt.Errorf("%d construct(s) failed to parse", failures)
	}
	return nil
}

func parseFile(name string, cfg repl.Config) (bldriver.Summary, error) {
	var src io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return bldriver.Summary{}, err
		}
		defer f.Close()
		src = f
	}

	return repl.ParseStream(name, src, cfg)
}
