package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cecil-the-coder/kitutil/pkg/config"
	"github.com/cecil-the-coder/kitutil/pkg/dictutil"
)

func newMergeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "merge BASE OVERRIDE...",
		Short: "Deep-merge settings files, later files winning",
		Long: `Deep-merge two or more YAML or JSON settings files and print the result
as YAML. Nested maps merge key by key; lists and scalars from later files
replace earlier ones. The input files are not modified.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := config.Overlay(args...)
			if err != nil {
				return err
			}
			opts.log().Debug("merged settings files", "files", len(args))
			return printYAML(cmd, merged)
		},
	}
}

func newReconcileCmd(opts *rootOptions) *cobra.Command {
	var ignored []string

	cmd := &cobra.Command{
		Use:   "reconcile FILE DEFAULTS",
		Short: "Fill keys missing from a settings file with defaults",
		Long: `Fill every key that FILE lacks with the value from DEFAULTS and print
the result as YAML. The first missing key is reported as a warning.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := config.LoadFile(args[1])
			if err != nil {
				return err
			}
			m, _, err := config.NewLoader(defaults, opts.log(), ignored...).Load(args[0])
			if err != nil {
				return err
			}
			return printYAML(cmd, m)
		},
	}

	cmd.Flags().StringSliceVar(&ignored, "ignore", nil, "Keys to fill silently (default: built-in list)")

	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var (
		sum     bool
		matched bool
	)

	cmd := &cobra.Command{
		Use:   "update TARGET UPDATES",
		Short: "Apply UPDATES onto TARGET and print the result",
		Long: `Apply the keys of UPDATES onto TARGET and print the result as YAML.

By default the result holds the keys of both files. With --sum, numbers
present in both are added. With --matched-keys, the result is TARGET with
the updated keys written into it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sum && matched {
				return fmt.Errorf("--sum and --matched-keys cannot be combined")
			}
			target, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}
			updates, err := config.LoadFile(args[1])
			if err != nil {
				return err
			}

			var result map[string]interface{}
			switch {
			case sum:
				result = dictutil.SumUpdateInPlace(target, updates)
			case matched:
				result = dictutil.UpdateMatchedKeysInPlace(target, updates)
			default:
				result = dictutil.UpdateInPlace(target, updates)
			}
			opts.log().Debug("applied updates", "sum", sum, "matched_keys", matched)
			return printYAML(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&sum, "sum", false, "Add numbers present in both files")
	cmd.Flags().BoolVar(&matched, "matched-keys", false, "Return TARGET updated in place")

	return cmd
}

func printYAML(cmd *cobra.Command, m map[string]interface{}) error {
	out, err := config.Marshal(m)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
