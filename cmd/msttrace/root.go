package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "msttrace",
	Short: "msttrace computes Kruskal MST step traces over weighted graphs",
	Long: `msttrace reads a weighted undirected graph in the textual format

    V E
    <V vertex-name tokens>
    <E lines, each: edgeId src dst weight>

runs Kruskal's algorithm over it, and emits the full step-by-step decision
trace as JSON: one record per considered edge stating whether it was accepted
or rejected, why, and the running MST state.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}
