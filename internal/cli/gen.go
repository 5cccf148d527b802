package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/builder"
)

type genFlags struct {
	shape   string
	n       int
	rows    int
	cols    int
	p       float64
	seed    int64
	minFlow uint32
	maxFlow uint32
}

func newGenCommand() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a synthetic valve network in puzzle format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctor, err := f.constructor()
			if err != nil {
				return err
			}
			if f.maxFlow < f.minFlow {
				return fmt.Errorf("--max-flow %d is below --min-flow %d", f.maxFlow, f.minFlow)
			}
			vs, err := builder.BuildValves([]builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithFlowFn(builder.UniformFlowFn(f.minFlow, f.maxFlow)),
			}, ctor)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range vs {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.shape, "shape", "random", "path, cycle, star, grid, complete or random")
	fl.IntVarP(&f.n, "valves", "n", 10, "number of valves (all shapes but grid)")
	fl.IntVar(&f.rows, "rows", 3, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64VarP(&f.p, "prob", "p", 0.1, "extra tunnel probability (random)")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.Uint32Var(&f.minFlow, "min-flow", 0, "lowest flow rate")
	fl.Uint32Var(&f.maxFlow, "max-flow", 25, "highest flow rate")
	return cmd
}

func (f *genFlags) constructor() (builder.Constructor, error) {
	switch f.shape {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", f.shape)
	}
}
