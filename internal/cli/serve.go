package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/stayfinder/internal/backend"
	"github.com/evcraddock/stayfinder/internal/config"
	"github.com/evcraddock/stayfinder/internal/db"
	"github.com/evcraddock/stayfinder/internal/logging"
	"github.com/evcraddock/stayfinder/internal/payment"
	"github.com/evcraddock/stayfinder/internal/web"
)

type serveFlags struct {
	port int
	dev  bool
	db   string
}

func newServeCmd() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the HTTP API server.

Outside dev mode the server proxies to the remote service named by
SF_REMOTE_ENDPOINT and SF_REMOTE_API_KEY. In dev mode without a remote
endpoint it serves a local catalog, kept in SQLite when --db is given and
in memory otherwise. A bare --db uses ~/.stayfinder/stayfinder.db.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			applyServeFlags(cmd, &cfg, f)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&f.port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&f.dev, "dev", false, "development mode (local storage unless a remote endpoint is set)")
	cmd.Flags().StringVar(&f.db, "db", "", "SQLite database path for dev mode (default: in-memory)")
	cmd.Flags().Lookup("db").NoOptDefVal = db.DefaultPathName

	return cmd
}

// applyServeFlags overrides cfg with the flags the user actually set.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config, f serveFlags) {
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if cmd.Flags().Changed("dev") {
		cfg.DevMode = f.dev
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = f.db
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Setup(cfg.DevMode)

	b, err := backend.Select(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := b.Close(); cerr != nil {
			slog.Warn("closing backend", "error", cerr)
		}
	}()

	payments := payment.NewStripeProvider(cfg.StripeSecretKey)
	if !payments.Enabled() || cfg.StripePublicKey == "" {
		slog.Warn("payment keys not configured; checkout will report payment setup required")
	}

	srv, err := web.NewServer(web.Config{
		Store:             b.Store,
		Auth:              b.Auth,
		Payments:          payments,
		Backend:           string(b.Kind),
		PublishableKey:    cfg.StripePublicKey,
		PlaceholderUserID: cfg.PlaceholderUserID,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return srv.Run(ctx, cfg.Port)
}
