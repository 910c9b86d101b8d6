package main

import (
	"os"

	"github.com/indigo-web/lite"
	"github.com/indigo-web/lite/logging"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lite",
	Short: "lite - a minimal HTTP/1.1 server",
	Long: `lite serves a handful of demo routes, answering exactly one request per
connection:

  GET  /          replies with OK!
  POST /echo      replies with the request body
  GET  /json      replies with a JSON document
  GET  /only-get  replies with the request headers count`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to the config file (json, yaml or toml)")
	rootCmd.Flags().String("host", "localhost", "Host to bind to")
	rootCmd.Flags().Uint16("port", 8080, "Port to listen on")
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error or silent")
	rootCmd.Flags().String("log-format", "text", "Log format: text or json")
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(newViper(), cmd.Flags(), configPath)
	if err != nil {
		return err
	}

	logger := logging.NewFormatted(
		os.Stderr,
		logging.LevelFromString(settings.Log.Level),
		logging.Format(settings.Log.Format),
	)

	bound, err := lite.New().
		Tune(settings.Config()).
		Logger(logger).
		Serve(newRouter()).
		Bind(settings.Host, settings.Port)
	if err != nil {
		logger.Error("cannot start", "error", err)
		return err
	}

	return bound.Run()
}
