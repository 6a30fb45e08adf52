package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borderchat-server/internal/app"
	"github.com/vovakirdan/borderchat-server/internal/config"
	"github.com/vovakirdan/borderchat-server/internal/log"
)

func main() {
	var (
		configPath string
		addr       string
		logLevel   string
	)

	root := &cobra.Command{
		Use:          "borderchat-server",
		Short:        "Realtime chat relay for border checkpoint rooms",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bootLogger := log.New(logLevel)

			cfg, path, err := config.Load(bootLogger, configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags override file and env values.
			if addr != "" {
				cfg.Addr = addr
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			logger := log.New(cfg.LogLevel)
			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting borderchat server")

			application, err := app.New(&cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := application.Run(ctx); err != nil {
				return err
			}

			logger.Info().Msg("server stopped")
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to config.yaml")
	root.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	root.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
