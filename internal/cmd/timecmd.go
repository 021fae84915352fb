package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cecil-the-coder/kitutil/pkg/timeutil"
)

func newTimeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Format times and durations",
	}

	var (
		offset     float64
		timeFormat string
		dateFormat string
	)
	nowCmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time and date, optionally shifted by days",
		Long: `Print the current time and date. --offset shifts the clock by whole
days; a fractional part is applied as hours (1.5 is a day and twelve
hours). Patterns use strftime syntax.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := timeutil.NewClock(nil, opts.log())
			t, d := clock.GetTime(offset, timeFormat, dateFormat)
			if t == "" && d == "" {
				return fmt.Errorf("could not format time with offset %v", offset)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", t, d)
			return err
		},
	}
	nowCmd.Flags().Float64Var(&offset, "offset", 0, "Offset in days")
	nowCmd.Flags().StringVar(&timeFormat, "time-format", timeutil.DefaultTimeFormat, "strftime pattern for the time")
	nowCmd.Flags().StringVar(&dateFormat, "date-format", timeutil.DefaultDateFormat, "strftime pattern for the date")

	formatCmd := &cobra.Command{
		Use:   "format SECONDS",
		Short: "Express a number of seconds in a readable unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[0], err)
			}
			value, unit := timeutil.FormatTime(seconds)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", value, unit)
			return err
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff START END",
		Short: "Describe the time between two Unix timestamps",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid start %q: %w", args[0], err)
			}
			end, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid end %q: %w", args[1], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), timeutil.FormatSecondsDifference(start, end))
			return err
		},
	}

	cmd.AddCommand(nowCmd, formatCmd, diffCmd)
	return cmd
}
