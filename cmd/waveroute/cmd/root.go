package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "waveroute",
	Short: "waveroute - delay-matched waveguide routing",
	Long: `waveroute routes optical waveguides between chip ports: it builds
minimum-bend paths from straights and fixed-radius arcs, detours around
placed components, and pads interferometer arms to a target optical
length with compensating excursions.

Examples:
  waveroute route job.yaml            # Route every request in the job file
  waveroute route -v job.yaml         # ...with per-segment detail`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
