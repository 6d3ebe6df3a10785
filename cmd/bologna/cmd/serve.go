package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/msto63/bologna/internal/server"
	"github.com/msto63/bologna/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket parse service",
	Long: `Starts the parse service.

  GET /ws       websocket; messages {"type": "parse"|"tokens"|"ping", "payload": {...}}
  GET /health   health report as JSON

Examples:
  bologna serve
  bologna serve --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveHost != "" {
		appConfig.Server.Host = serveHost
	}
	if servePort != 0 {
		appConfig.Server.Port = servePort
	}

	srv, err := server.New(appConfig, logging.Wrap(appLogger, "server"))
	if err != nil {
		printError("creating server", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
