// Package cmd provides Cobra CLI commands for grabby.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avasse/grabby/internal/build"
)

var (
	buildInfo build.Info

	rootCmd = &cobra.Command{
		Use:   "grabby",
		Short: "Download-handler toolkit for embedded browser engines",
		Long: `Grabby builds the download handler an embedded browser engine calls into.

Handlers are assembled from optional callbacks with a fluent builder, or
from one of two preset destination policies: save everything into a fixed
folder, or defer to the engine's native save dialog.

The CLI ships a simulator that drives a handler through the full download
lifecycle without a real engine, which is handy for trying out policies
and for debugging callback wiring.`,
	}
)

// SetBuildInfo stores build metadata injected by main.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
