package main

import (
	"github.com/spf13/cobra"

	"github.com/jmrestrepo/dictamen/internal/home"
	"github.com/jmrestrepo/dictamen/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dictamen server",
	Long: `Start the dictamen HTTP server.

The server keeps all runs in memory; restarting it forgets every run.

Endpoints:
  - POST /api/documents              - Upload a PDF for a category and document type
  - POST /api/documents/{id}/process - Run the pipeline (synchronous)
  - GET  /api/documents/{id}         - Run status and progress
  - GET  /api/documents/{id}/result  - Rendered summary as plain text
  - GET  /health                     - Basic server health check

Examples:
  dictamen serve                    # Start on default port 8080
  dictamen serve --port 3000        # Start on custom port
  dictamen serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		st, err := newStack(logger)
		if err != nil {
			return err
		}

		host := serveHost
		if host == "" {
			host = st.cfg.Server.Host
		}
		port := servePort
		if port == "" {
			port = st.cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:        host,
			Port:        port,
			MaxUploadMB: st.cfg.Server.MaxUploadMB,
			Service:     st.service,
			Logger:      logger,
		})
		if err != nil {
			return err
		}

		// Blocks until shutdown
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}
