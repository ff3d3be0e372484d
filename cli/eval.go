package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tuannh982/intsets/sets"
)

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var (
		a, b     []int64
		min, max int64
	)
	cmd := &cobra.Command{
		Use:       "eval <union|difference|symdiff|intersection|complement|extent-complement>",
		Short:     "Evaluate one set operation and print the result",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"union", "difference", "symdiff", "intersection", "complement", "extent-complement"},
		RunE: func(cmd *cobra.Command, args []string) error {
			setA, err := fromValues(a, opts.setOptions())
			if err != nil {
				return fmt.Errorf("set A: %w", err)
			}
			setB, err := fromValues(b, opts.setOptions())
			if err != nil {
				return fmt.Errorf("set B: %w", err)
			}

			var result *sets.Set
			switch op := args[0]; op {
			case "complement":
				result, err = sets.Complement(setA, min, max)
			case "extent-complement":
				result, err = sets.ComplementOfExtent(setA)
			default:
				result, err = binaryOps[op](setA, setB)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return printResult(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().Int64SliceVar(&a, "a", nil, "Elements of set A, head first")
	cmd.Flags().Int64SliceVar(&b, "b", nil, "Elements of set B, head first")
	cmd.Flags().Int64Var(&min, "min", 0, "Exclusive lower bound for complement")
	cmd.Flags().Int64Var(&max, "max", 0, "Exclusive upper bound for complement")
	return cmd
}
