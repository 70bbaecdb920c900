// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/puzzlebox/cliparse"
	"github.com/danielhkuo/puzzlebox/db"
	"github.com/danielhkuo/puzzlebox/identifier"
	"github.com/danielhkuo/puzzlebox/imagestore"
	"github.com/danielhkuo/puzzlebox/router"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	cfg    cliparse.Config
	dbConn *sql.DB
	images *imagestore.FSStore
	svc    *identifier.Service
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzlebox",
	Short: "Puzzle Box server",
	Long: `Puzzle Box stores user-submitted puzzles under short display codes,
collects feedback and client error reports, and records puzzle telemetry.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbConn == nil {
			return nil
		}
		err := dbConn.Close()
		dbConn = nil
		return err
	},
}

func init() {
	cliparse.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(puzzlesCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(errorsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "puzzlebox "+version)
	},
}

// setup loads configuration, installs the logger and opens storage.
func setup(cmd *cobra.Command, args []string) error {
	// Skip init for version command
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	cfg, err = cliparse.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.SetDefault(cfg.NewLogger())

	dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}
	slog.Debug("database schema ready", "driver", cfg.DatabaseType)

	images, err = imagestore.NewFSStore(cfg.ImageDir, cfg.ImageBaseURL)
	if err != nil {
		return err
	}

	svc = identifier.New(dbConn, images, identifier.WithLogger(slog.Default()))
	return nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Create server
		server := http.Server{
			Handler: router.NewRouter(svc, images.Handler(), cfg),
			Addr:    ":" + strconv.Itoa(cfg.Port),
		}

		// signal.Notify requires the channel to be buffered
		ctrlc := make(chan os.Signal, 1)
		signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
		go func() {
			// Wait for Ctrl-C signal
			<-ctrlc
			server.Close()
		}()

		// Start server
		slog.Info("Listening", "port", cfg.Port, "database", cfg.DatabaseType, "version", cfg.ServerVersion)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		slog.Info("Server closed")
		return nil
	},
}
