package solver_test

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/katalvlaran/valvenet/builder"
	"github.com/katalvlaran/valvenet/mask"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/solver"
	"github.com/katalvlaran/valvenet/valve"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph(t testing.TB) *network.ValveGraph {
	t.Helper()
	f, err := os.Open("../testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()
	vs, err := valve.Parse(f)
	require.NoError(t, err)
	g, err := network.FromValves(vs)
	require.NoError(t, err)
	return g
}

func fixture(t testing.TB, seed int64, ctor builder.Constructor) *network.ValveGraph {
	t.Helper()
	vs, err := builder.BuildValves([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithFlowFn(builder.UniformFlowFn(0, 15)),
	}, ctor)
	require.NoError(t, err)
	g, err := network.FromValves(vs)
	require.NoError(t, err)
	return g
}

// bruteSingle enumerates every ordering of the allowed targets without memo.
func bruteSingle(g *network.ValveGraph, at int, left uint32, open, allowed mask.Set) uint64 {
	var top uint64
	for _, tg := range g.Targets() {
		if open.Has(tg.Bit) || !allowed.Has(tg.Bit) {
			continue
		}
		d := g.Distance(at, tg.Node)
		if d == network.Unreachable || d+1 > left {
			continue
		}
		rem := left - d - 1
		v := uint64(g.FlowRate(tg.Node))*uint64(rem) + bruteSingle(g, tg.Node, rem, open.With(tg.Bit), allowed)
		if v > top {
			top = v
		}
	}
	return top
}

// bruteDual tries every split of the targets between two agents.
func bruteDual(g *network.ValveGraph, budget uint32) uint64 {
	all := g.TargetMask()
	var top uint64
	for sub := all; ; sub = (sub - 1) & all {
		v := bruteSingle(g, 0, budget, mask.Empty, sub) + bruteSingle(g, 0, budget, mask.Empty, all&^sub)
		if v > top {
			top = v
		}
		if sub == 0 {
			break
		}
	}
	return top
}

// replay walks plan over g and returns the pressure it releases.
func replay(t *testing.T, g *network.ValveGraph, budget uint32, plan []solver.Step) uint64 {
	t.Helper()
	at, elapsed, total := 0, uint32(0), uint64(0)
	seen := map[string]bool{}
	for _, st := range plan {
		require.False(t, seen[st.Valve], "valve %s opened twice", st.Valve)
		seen[st.Valve] = true
		id, ok := g.ID(st.Valve)
		require.True(t, ok)
		elapsed += g.Distance(at, id) + 1
		require.LessOrEqual(t, elapsed, budget)
		require.Equal(t, elapsed, st.Minute)
		require.Equal(t, uint64(g.FlowRate(id))*uint64(budget-elapsed), st.Released)
		total += st.Released
		at = id
	}
	return total
}

func TestBestPressure_Sample(t *testing.T) {
	g := sampleGraph(t)
	require.Equal(t, uint64(1651), solver.BestPressure(g, 30))
}

func TestBestDualPressure_Sample(t *testing.T) {
	g := sampleGraph(t)
	require.Equal(t, uint64(1707), solver.BestDualPressure(g, 26))
}

func TestSingle_PlanSample(t *testing.T) {
	g := sampleGraph(t)
	res := solver.Single(g, 30)
	require.Equal(t, uint64(1651), res.Pressure)
	assert.Positive(t, res.States)

	var order []string
	for _, st := range res.Plan {
		order = append(order, st.Valve)
	}
	assert.Equal(t, []string{"DD", "BB", "JJ", "HH", "EE", "CC"}, order)
	assert.Equal(t, res.Pressure, replay(t, g, 30, res.Plan))
}

func TestDual_PlansAndPartition(t *testing.T) {
	g := sampleGraph(t)
	res := solver.Dual(g, 26)
	require.Equal(t, uint64(1707), res.Pressure)
	assert.True(t, res.Partition.First.Disjoint(res.Partition.Second))
	assert.Positive(t, res.Masks)
	assert.GreaterOrEqual(t, res.Visits, res.Masks)

	got := replay(t, g, 26, res.Plans[0]) + replay(t, g, 26, res.Plans[1])
	assert.Equal(t, res.Pressure, got)
	for i, set := range []mask.Set{res.Partition.First, res.Partition.Second} {
		for _, st := range res.Plans[i] {
			id, _ := g.ID(st.Valve)
			var bit uint
			for _, tg := range g.Targets() {
				if tg.Node == id {
					bit = tg.Bit
				}
			}
			assert.True(t, set.Has(bit), "%s outside its agent's set", st.Valve)
		}
	}
}

func TestZeroBudget(t *testing.T) {
	g := sampleGraph(t)
	assert.Zero(t, solver.BestPressure(g, 0))
	assert.Zero(t, solver.BestDualPressure(g, 0))
	assert.Empty(t, solver.Single(g, 0).Plan)
}

func TestNoPositiveFlow(t *testing.T) {
	vs := []valve.Valve{
		{Name: "AA", Tunnels: []string{"BB"}},
		{Name: "BB", Tunnels: []string{"AA"}},
	}
	g, err := network.FromValves(vs)
	require.NoError(t, err)
	for _, budget := range []uint32{0, 1, 30} {
		assert.Zero(t, solver.BestPressure(g, budget))
		res := solver.Dual(g, budget)
		assert.Zero(t, res.Pressure)
		assert.Equal(t, 1, res.Masks)
	}
}

func TestSingleValveStart(t *testing.T) {
	g, err := network.FromValves([]valve.Valve{{Name: "AA", Tunnels: []string{"AA"}}})
	require.NoError(t, err)
	assert.Zero(t, solver.BestPressure(g, 30))
	assert.Zero(t, solver.BestDualPressure(g, 26))
}

// TestDual_NoDoubleCount: one agent alone can reach both valves, so a
// combination that reused a valve would report more than the true optimum.
func TestDual_NoDoubleCount(t *testing.T) {
	vs := []valve.Valve{
		{Name: "AA", Tunnels: []string{"BB"}},
		{Name: "BB", FlowRate: 10, Tunnels: []string{"AA", "CC"}},
		{Name: "CC", FlowRate: 5, Tunnels: []string{"BB"}},
	}
	g, err := network.FromValves(vs)
	require.NoError(t, err)

	require.Equal(t, uint64(110), solver.BestPressure(g, 10))
	res := solver.Dual(g, 10)
	require.Equal(t, uint64(115), res.Pressure)
	assert.True(t, res.Partition.First.Disjoint(res.Partition.Second))
	assert.Equal(t, bruteDual(g, 10), res.Pressure)
}

func TestUnreachableTargetIsSkipped(t *testing.T) {
	vs := []valve.Valve{
		{Name: "AA", Tunnels: []string{"BB"}},
		{Name: "BB", FlowRate: 4, Tunnels: []string{"AA"}},
		{Name: "CC", FlowRate: 50, Tunnels: []string{"AA"}},
	}
	g, err := network.FromValves(vs)
	require.NoError(t, err)
	assert.Equal(t, uint64(4*8), solver.BestPressure(g, 10))
	assert.Equal(t, uint64(4*8), solver.BestDualPressure(g, 10))
}

func TestStartWithFlow(t *testing.T) {
	vs := []valve.Valve{
		{Name: "AA", FlowRate: 3, Tunnels: []string{"BB"}},
		{Name: "BB", FlowRate: 1, Tunnels: []string{"AA"}},
	}
	g, err := network.FromValves(vs)
	require.NoError(t, err)
	// open AA at minute 1 (3*4), walk to BB and open it at minute 3 (1*2)
	assert.Equal(t, uint64(14), solver.BestPressure(g, 5))
	// each agent opens one valve: 3*4 + 1*3
	assert.Equal(t, uint64(15), solver.BestDualPressure(g, 5))
}

func TestLargeFlowRates(t *testing.T) {
	vs := []valve.Valve{
		{Name: "AA", Tunnels: []string{"BB"}},
		{Name: "BB", FlowRate: 300_000_000, Tunnels: []string{"AA"}},
	}
	g, err := network.FromValves(vs)
	require.NoError(t, err)

	res := solver.Single(g, 30)
	assert.Equal(t, uint64(8_400_000_000), res.Pressure)
	assert.Equal(t, res.Pressure, replay(t, g, 30, res.Plan))
	assert.Equal(t, uint64(8_400_000_000), solver.BestDualPressure(g, 30))
}

func TestLargeStartFlowMonotone(t *testing.T) {
	g, err := network.FromValves([]valve.Valve{
		{Name: "AA", FlowRate: 1 << 31, Tunnels: []string{"AA"}},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1<<31), solver.BestPressure(g, 2))
	assert.Equal(t, uint64(1<<32), solver.BestPressure(g, 3))
	var prev uint64
	for budget := uint32(0); budget <= 10; budget++ {
		single := solver.BestPressure(g, budget)
		require.GreaterOrEqual(t, single, prev)
		prev = single
		require.GreaterOrEqual(t, solver.BestDualPressure(g, budget), single)
	}
}

func TestSolve_PressureOverflow(t *testing.T) {
	g, err := network.FromValves([]valve.Valve{
		{Name: "AA", FlowRate: math.MaxUint32, Tunnels: []string{"AA"}},
	})
	require.NoError(t, err)

	rep, err := solver.Solve(context.Background(), g, solver.Budgets{Single: math.MaxUint32})
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint32)*uint64(math.MaxUint32-1), rep.Single.Pressure)

	_, err = solver.Solve(context.Background(), g, solver.Budgets{Single: 30, Dual: math.MaxUint32})
	require.ErrorIs(t, err, solver.ErrPressureOverflow)
}

func TestProperties_Fixtures(t *testing.T) {
	fixtures := map[string]*network.ValveGraph{
		"cycle":  fixture(t, 1, builder.Cycle(7)),
		"star":   fixture(t, 2, builder.Star(6)),
		"grid":   fixture(t, 3, builder.Grid(3, 3)),
		"sparse": fixture(t, 4, builder.RandomSparse(9, 0.2)),
		"path":   fixture(t, 5, builder.Path(6)),
	}
	for name, g := range fixtures {
		t.Run(name, func(t *testing.T) {
			var prev uint64
			for budget := uint32(0); budget <= 12; budget++ {
				single := solver.BestPressure(g, budget)
				require.GreaterOrEqual(t, single, prev, "monotone in budget")
				prev = single

				require.Equal(t, bruteSingle(g, 0, budget, mask.Empty, g.TargetMask()), single)

				dual := solver.Dual(g, budget)
				require.GreaterOrEqual(t, dual.Pressure, single)
				require.True(t, dual.Partition.First.Disjoint(dual.Partition.Second))
				require.Equal(t, bruteDual(g, budget), dual.Pressure)
			}
		})
	}
}

func TestIdempotent(t *testing.T) {
	g := sampleGraph(t)
	a, b := solver.Single(g, 30), solver.Single(g, 30)
	assert.Equal(t, a, b)
	c, d := solver.Dual(g, 26), solver.Dual(g, 26)
	assert.Equal(t, c, d)
}

func TestSolve(t *testing.T) {
	g := sampleGraph(t)
	rep, err := solver.Solve(context.Background(), g, solver.DefaultBudgets())
	require.NoError(t, err)
	assert.Equal(t, uint64(1651), rep.Single.Pressure)
	assert.Equal(t, uint64(1707), rep.Dual.Pressure)
	assert.Equal(t, solver.DefaultBudgets(), rep.Budgets)

	_, err = solver.Solve(context.Background(), nil, solver.DefaultBudgets())
	require.ErrorIs(t, err, solver.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = solver.Solve(ctx, g, solver.DefaultBudgets())
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := sampleGraph(t)
	solver.Single(g, 30, solver.WithLogger(logger))
	solver.Dual(g, 26, solver.WithLogger(logger))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(1651), entries[0].Data["pressure"])
	assert.Equal(t, uint64(1707), entries[1].Data["pressure"])
	assert.Equal(t, logrus.DebugLevel, entries[1].Level)
}
