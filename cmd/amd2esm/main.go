// Package main provides the entry point for the amd2esm CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robyngit/convert-metacatui-es6/cmd/amd2esm/commands"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "amd2esm",
		Short: "Convert RequireJS AMD modules to standard ES modules",
		Long: `amd2esm mirrors a MetacatUI source tree into an output directory and
rewrites each define() wrapper as import/export statements, preserving
the module body verbatim. Files outside the AMD pattern are recorded
with diagnostics instead of failing the run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "amd2esm %s\n", version)
		},
	}
}
