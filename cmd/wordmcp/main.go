// Command wordmcp runs the Word document MCP server on stdio.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nexxia-ai/wordmcp"
	"github.com/nexxia-ai/wordmcp/document"
	"github.com/nexxia-ai/wordmcp/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "wordmcp",
		Short:         "MCP server for reading and writing Word documents",
		Long:          "wordmcp exposes document tools (read, write, replace, PDF export) over the Model Context Protocol on stdio.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("env-file", "", "optional .env file to load before reading configuration")
	flags.String("soffice", "soffice", "LibreOffice binary used for PDF conversion")
	flags.Duration("convert-timeout", 2*time.Minute, "timeout for a single PDF conversion")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	v.SetEnvPrefix("WORDMCP")
	v.AutomaticEnv()
	_ = v.BindPFlag("soffice", flags.Lookup("soffice"))
	_ = v.BindPFlag("convert_timeout", flags.Lookup("convert-timeout"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		if err := utils.LoadEnvFile(envFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	// stdout carries the protocol; all logging goes to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(v.GetString("log_level")),
	}))
	slog.SetDefault(log)

	svc := document.NewService(document.Config{
		Soffice:        v.GetString("soffice"),
		ConvertTimeout: v.GetDuration("convert_timeout"),
		Logger:         log,
	})

	log.Info("starting server", "name", wordmcp.ServerName, "version", wordmcp.Version)
	return wordmcp.ServeStdio(wordmcp.NewServer(svc, log))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
