package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nexushealth/hms-api/internal/app"
	"github.com/nexushealth/hms-api/internal/infrastructure/config"
	"github.com/nexushealth/hms-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title NexusHealth HMS API
// @version 1.0
// @description Hospital back-office API: patients, clinical and operational registers, blood bank and AI clinical assistants.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "hms",
		Short:         "NexusHealth hospital management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(serveCmd(&envFile))
	rootCmd.AddCommand(seedCmd(&envFile))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Error().Err(err).Msg("hms exited")
		stop()
		os.Exit(1)
	}
}

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *envFile)
		},
	}
}

func seedCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo accounts and records into the configured datastore",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, log, err := bootstrap(ctx, *envFile)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			report, err := a.Seed(ctx)
			if err != nil {
				return err
			}
			log.Info().Int("inserted", report.Inserted).Int("skipped", report.Skipped).Msg("database seeded")
			return nil
		},
	}
}

func runServer(ctx context.Context, envFile string) error {
	a, log, err := bootstrap(ctx, envFile)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- a.Start() }()

	select {
	case err := <-errCh:
		_ = a.Close(context.Background())
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// bootstrap loads the optional dotenv file and configuration, then builds the app.
func bootstrap(ctx context.Context, envFile string) (*app.App, zerolog.Logger, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, zerolog.Nop(), err
		}
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "hms-api",
	})

	a, err := app.New(ctx, *cfg, log)
	if err != nil {
		return nil, log, err
	}
	return a, log, nil
}
