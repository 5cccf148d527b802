package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/solver"
	"github.com/katalvlaran/valvenet/valve"
)

type solveFlags struct {
	config      string
	input       string
	start       string
	minutes     uint32
	dualMinutes uint32
	strict      bool
	plan        bool
	verbose     bool
}

func newSolveCommand() *cobra.Command {
	var f solveFlags
	def := DefaultConfig()
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle input for one agent and for two agents.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := DefaultConfig()
			if f.config != "" {
				if err := LoadConfig(f.config, &cfg); err != nil {
					return err
				}
			}
			f.overlay(cmd.Flags(), &cfg)
			return runSolve(cmd, cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "path to a YAML config file")
	fl.StringVarP(&f.input, "file", "f", def.Input, "puzzle input, - for stdin")
	fl.StringVar(&f.start, "start", def.Start, "name of the start valve")
	fl.Uint32Var(&f.minutes, "minutes", def.Minutes, "time budget of the single agent")
	fl.Uint32Var(&f.dualMinutes, "dual-minutes", def.DualMinutes, "time budget of each of the two agents")
	fl.BoolVar(&f.strict, "strict", false, "reject inputs with unreachable positive-flow valves")
	fl.BoolVar(&f.plan, "plan", false, "print the valve opening plans")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	return cmd
}

func runSolve(cmd *cobra.Command, cfg Config) error {
	logger := setupLogging(cmd.ErrOrStderr(), cfg.Verbose)

	valves, err := readValves(cmd.InOrStdin(), cfg.Input)
	if err != nil {
		return err
	}
	opts := []network.Option{network.WithStart(cfg.Start)}
	if cfg.Strict {
		opts = append(opts, network.WithStrictReachability())
	}
	g, err := network.FromValves(valves, opts...)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"valves":  g.Len(),
		"targets": len(g.Targets()),
	}).Debug("network built")

	rep, err := solver.Solve(cmd.Context(), g, solver.Budgets{
		Single: cfg.Minutes,
		Dual:   cfg.DualMinutes,
	}, solver.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "single (%d min): %d\n", cfg.Minutes, rep.Single.Pressure)
	if cfg.Plan {
		if err := printPlan(out, g, "  ", rep.Single.Plan); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "dual (%d min): %d\n", cfg.DualMinutes, rep.Dual.Pressure)
	if cfg.Plan {
		for i, p := range rep.Dual.Plans {
			fmt.Fprintf(out, "  agent %d:\n", i+1)
			if err := printPlan(out, g, "    ", p); err != nil {
				return err
			}
		}
	}
	return nil
}

func readValves(stdin io.Reader, path string) ([]valve.Valve, error) {
	if path == "-" || path == "" {
		return valve.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vs, err := valve.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vs, nil
}

// printPlan writes one line per step with the tunnel route walked to reach
// the opened valve.
func printPlan(w io.Writer, g *network.ValveGraph, indent string, plan []solver.Step) error {
	at := g.Start()
	for _, st := range plan {
		id, _ := g.ID(st.Valve)
		route, err := g.Route(at, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%sminute %2d: open %s (+%d) via %s\n",
			indent, st.Minute, st.Valve, st.Released, strings.Join(route, ">"))
		at = id
	}
	return nil
}
