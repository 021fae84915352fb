package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cecil-the-coder/kitutil/pkg/logging"
	"github.com/cecil-the-coder/kitutil/pkg/types"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// rootOptions holds the persistent flags and the logger built from them.
type rootOptions struct {
	logLevel  string
	logFormat string
	logger    types.Logger
}

// NewRootCmd creates the kitutil root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "kitutil",
		Short: "kitutil - helpers for settings maps, sampling, time and data sniffing",
		Long: `kitutil exposes a small helper library on the command line.

Use subcommands to:
  - merge, reconcile and sum YAML or JSON settings files
  - draw random values, probabilities and peaked weights
  - format times, durations and time differences
  - sniff files for audio, container and base64 content`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.New(logging.Options{
				Level:  opts.logLevel,
				Format: opts.logFormat,
				Output: cmd.ErrOrStderr(),
			}).WithField("run", uuid.NewString())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	groupMaps := "maps"
	groupSampling := "sampling"
	groupTime := "time"
	groupData := "data"

	rootCmd.AddGroup(&cobra.Group{ID: groupMaps, Title: "Settings Maps"})
	rootCmd.AddGroup(&cobra.Group{ID: groupSampling, Title: "Sampling"})
	rootCmd.AddGroup(&cobra.Group{ID: groupTime, Title: "Time"})
	rootCmd.AddGroup(&cobra.Group{ID: groupData, Title: "Data"})

	mergeCmd := newMergeCmd(opts)
	reconcileCmd := newReconcileCmd(opts)
	updateCmd := newUpdateCmd(opts)
	sampleCmd := newSampleCmd(opts)
	timeCmd := newTimeCmd(opts)
	sniffCmd := newSniffCmd(opts)

	mergeCmd.GroupID = groupMaps
	reconcileCmd.GroupID = groupMaps
	updateCmd.GroupID = groupMaps
	sampleCmd.GroupID = groupSampling
	timeCmd.GroupID = groupTime
	sniffCmd.GroupID = groupData

	rootCmd.AddCommand(mergeCmd, reconcileCmd, updateCmd, sampleCmd, timeCmd, sniffCmd)

	return rootCmd
}

// log returns the run logger, or a no-op logger when the command is run
// without going through the root.
func (o *rootOptions) log() types.Logger {
	return types.OrNop(o.logger)
}
