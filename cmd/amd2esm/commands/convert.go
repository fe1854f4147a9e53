// Package commands implements the CLI command handlers for amd2esm.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/robyngit/convert-metacatui-es6/internal/cli"
	"github.com/robyngit/convert-metacatui-es6/internal/config"
	"github.com/robyngit/convert-metacatui-es6/internal/utils"
)

// NewConvertCommand builds the convert subcommand.
func NewConvertCommand() *cobra.Command {
	var (
		configPath string
		source     string
		output     string
		recordPath string
		patches    bool
		noGit      bool
		verbose    bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "convert [source-dir]",
		Short: "Mirror a source tree and rewrite its AMD modules as ES modules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags and the positional argument override file config.
			if len(args) == 1 {
				cfg.Source = args[0]
			}
			if source != "" {
				cfg.Source = source
			}
			if output != "" {
				cfg.Output = output
			}
			if recordPath != "" {
				cfg.Report.RecordPath = recordPath
			}
			if patches {
				cfg.Report.Patches = true
			}
			if noGit {
				cfg.Snapshot.Git = false
			}

			diags := utils.NewDiagnosticSystem(utils.DiagnosticInfo)
			if quiet {
				diags = utils.NewQuietDiagnostics()
			} else if verbose {
				diags = utils.NewVerboseDiagnostics()
			}

			summary, err := cli.NewRunner(cfg, diags).Run(cmd.Context())
			if err != nil {
				return err
			}
			if summary.WithErrors > 0 {
				diags.Warn("%d of %d files carry diagnostics; see %s for details",
					summary.WithErrors, summary.TotalFiles, cfg.Report.RecordPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (default: .amd2esm.yaml in CWD or $HOME)")
	cmd.Flags().StringVar(&source, "source", "", "source tree to convert")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory for the converted tree")
	cmd.Flags().StringVar(&recordPath, "record", "", "path of the CSV record of edited files")
	cmd.Flags().BoolVar(&patches, "patches", false, "write a .patch file per converted file")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip the pre-conversion git baseline commit")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only show errors")

	return cmd
}
