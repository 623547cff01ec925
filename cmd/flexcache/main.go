// Command flexcache runs the namespaced cache HTTP service.
//
// @title flexcache API
// @version 1.0
// @description Namespaced key/value cache backed by Redis or process memory.
// @BasePath /
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goforj/flexcache/internal/app"
	"github.com/goforj/flexcache/internal/config"
	"github.com/goforj/flexcache/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	serve := serveCmd()
	root := &cobra.Command{
		Use:           "flexcache",
		Short:         "flexcache - namespaced cache service",
		Long:          "An HTTP cache service that uses Redis when reachable and falls back to process memory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, versionCmd())
	return root
}

func serveCmd() *cobra.Command {
	var (
		addr     string
		redis    string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.HTTPAddr = addr
			}
			if flags.Changed("redis") {
				cfg.RedisConnectionString = redis
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting flexcache", zap.String("version", version))
			a, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			return a.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address (overrides HTTP_ADDR)")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis connection string (overrides REDIS_CONNECTION_STRING)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (overrides LOG_LEVEL)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
