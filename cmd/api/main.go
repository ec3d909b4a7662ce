package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Attendance check-in backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the process-wide logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
