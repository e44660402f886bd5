package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ivlev/motionkit/internal/logging"
)

var (
	version  = "dev"
	logLevel string
	rootCmd  *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:           "motionkit",
		Short:         "Resolve declarative animation queues",
		Long:          "Resolve declarative animation queues into staggered, ready-to-render frames",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		newDelaysCmd(),
		newPresetsCmd(),
		newResolveCmd(),
		newPreviewCmd(),
		newGridCmd(),
		newCycleCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[-] %v\n", err)
		os.Exit(1)
	}
}

func newLogger() hclog.Logger {
	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	return logging.NewLogger("motionkit", level, os.Stderr)
}
