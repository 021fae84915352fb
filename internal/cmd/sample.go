package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cecil-the-coder/kitutil/pkg/sample"
)

func newSampleCmd(opts *rootOptions) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw random values",
	}
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for reproducible draws (0 uses a random seed)")

	sampler := func() *sample.Sampler {
		if seed == 0 {
			return sample.NewSampler(nil, opts.log())
		}
		return sample.NewSeeded(seed, opts.log())
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "range LOW HIGH",
			Short: "Draw a value between LOW and HIGH inclusive",
			Long: `Draw a value between LOW and HIGH inclusive. Two integers give an
integer; otherwise the result is a float rounded to the most decimal
places either bound carries once parsed, so trailing zeros do not count
("2.50" has one place).`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				bounds := []interface{}{parseNumber(args[0]), parseNumber(args[1])}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), sampler().RandomValueFromRange(bounds))
				return err
			},
		},
		&cobra.Command{
			Use:   "chance P",
			Short: "Print true with probability P",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid probability %q: %w", args[0], err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), sampler().CheckProbability(p))
				return err
			},
		},
		newWeightsCmd(sampler),
	)

	return cmd
}

func newWeightsCmd(sampler func() *sample.Sampler) *cobra.Command {
	var (
		target   float64
		length   int
		strength float64
		pick     bool
	)

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print normalised weights peaking at a target position",
		Long: `Print LENGTH weights that sum to 1 and peak at TARGET, a position
between 0 (first index) and 1 (last index). STRENGTH sharpens the peak.
With --pick, draw an index with those weights instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights := sample.NormalizedWeights(target, length, strength)
			if pick {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), sampler().WeightedChoice(weights))
				return err
			}
			parts := make([]string, len(weights))
			for i, w := range weights {
				parts[i] = strconv.FormatFloat(w, 'f', 4, 64)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return err
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0.5, "Peak position between 0 and 1")
	cmd.Flags().IntVar(&length, "length", 5, "Number of weights")
	cmd.Flags().Float64Var(&strength, "strength", 1.0, "Peak sharpness")
	cmd.Flags().BoolVar(&pick, "pick", false, "Draw an index instead of printing weights")

	return cmd
}

// parseNumber keeps integers as int and other numbers as float64. Anything
// else is passed through as a string, which the sampler rejects.
func parseNumber(s string) interface{} {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
