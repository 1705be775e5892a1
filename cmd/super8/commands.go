package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	humanize "github.com/dustin/go-humanize"
	server "github.com/inference-gateway/super8/server"
	config "github.com/inference-gateway/super8/server/config"
	godotenv "github.com/joho/godotenv"
	afero "github.com/spf13/afero"
	cobra "github.com/spf13/cobra"
	zap "go.uber.org/zap"
)

// NewRootCommand returns the root command with all subcommands attached
func NewRootCommand(fsys afero.Fs, version string) *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "super8",
		Short:         "Transient media artifact service applying a Super 8 film effect.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before configuration (ignored when missing)")

	rootCmd.AddCommand(NewServeCommand(fsys, version))
	rootCmd.AddCommand(NewSweepCommand(fsys, version))

	return rootCmd
}

// NewServeCommand runs the HTTP API and the periodic sweeper until interrupted
func NewServeCommand(fsys afero.Fs, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload, retrieval and cleanup API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, logger, err := bootstrap(ctx, version)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Info("configuration loaded",
				zap.String("max_upload_size", humanize.IBytes(uint64(cfg.UploadConfig.MaxSize))),
				zap.Duration("outbound_max_age", cfg.RetentionConfig.OutboundMaxAge),
				zap.Duration("inbound_max_age", cfg.RetentionConfig.InboundMaxAge),
				zap.Duration("job_timeout", cfg.JobConfig.Timeout),
				zap.String("sweep_lock_provider", cfg.SweepLockConfig.Provider))

			srv, err := server.NewServerBuilder(cfg, logger).
				WithFs(fsys).
				Build(ctx)
			if err != nil {
				logger.Error("failed to build server", zap.Error(err))
				return err
			}

			return srv.Start(ctx)
		},
	}
}

// NewSweepCommand runs a single sweep and exits
func NewSweepCommand(fsys afero.Fs, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Evict expired artifacts once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, logger, err := bootstrap(ctx, version)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			sweeper, err := server.NewServerBuilder(cfg, logger).
				WithFs(fsys).
				BuildSweeper(ctx)
			if err != nil {
				return err
			}
			defer sweeper.Stop()

			result, err := sweeper.Sweep(ctx)
			if result.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "sweep skipped: another sweep holds the lease")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d outbound, %d inbound, %d temp\n",
				result.OutboundRemoved, result.InboundRemoved, result.TempRemoved)

			return err
		},
	}
}

func bootstrap(ctx context.Context, version string) (*config.Config, *zap.Logger, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, &config.Config{
		ServiceName:    "super8",
		ServiceVersion: version,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var logger *zap.Logger
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Printf("failed to initialize logger: %v", err)
		return nil, nil, err
	}

	return cfg, logger, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
