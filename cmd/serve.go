package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alainchaple/formulario-publicaciones-ua/config"
	"github.com/alainchaple/formulario-publicaciones-ua/storage"
	"github.com/alainchaple/formulario-publicaciones-ua/web"
)

var (
	servePort       int
	serveStorePath  string
	serveAdminToken string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the publication submission web service",
	Long: `Start the HTTP server with the single-entry form, the bulk spreadsheet
import, the CSV download endpoint, and (when an admin token is configured)
the store reset endpoint.`,
	Example: `
  # Start with configuration defaults
  formulario serve

  # Override port and store location
  formulario serve --port 9090 --store /var/lib/formulario/data.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if strings.TrimSpace(serveStorePath) != "" {
			cfg.Store.Path = serveStorePath
		}
		if strings.TrimSpace(serveAdminToken) != "" {
			cfg.Admin.Token = serveAdminToken
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		store, err := storage.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		server := &http.Server{
			Addr:    addr,
			Handler: web.NewServer(store, *cfg, logger),
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		logger.Info("server listening",
			zap.Int("port", cfg.Server.Port),
			zap.String("store", cfg.Store.Path),
		)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-sigCh:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			err := <-errCh
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 10000, "HTTP port for the web service")
	serveCmd.Flags().StringVar(&serveStorePath, "store", "", "Path to the publications CSV store (overrides config)")
	serveCmd.Flags().StringVar(&serveAdminToken, "admin-token", "", "Admin token for the reset endpoint (overrides config)")
}
