package network_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/valvenet/mask"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/valve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) []valve.Valve {
	t.Helper()
	f, err := os.Open("../testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()
	vs, err := valve.Parse(f)
	require.NoError(t, err)
	return vs
}

func TestFromValves_Sample(t *testing.T) {
	g, err := network.FromValves(loadSample(t))
	require.NoError(t, err)

	require.Equal(t, 10, g.Len())
	assert.Equal(t, "AA", g.Name(g.Start()))

	var names []string
	for i, tg := range g.Targets() {
		assert.Equal(t, uint(i), tg.Bit)
		assert.NotZero(t, g.FlowRate(tg.Node))
		names = append(names, g.Name(tg.Node))
	}
	assert.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ"}, names)
	assert.Equal(t, mask.Set(0b111111), g.TargetMask())

	id := func(name string) int {
		v, ok := g.ID(name)
		require.True(t, ok, name)
		return v
	}
	aa, hh, jj, bb := id("AA"), id("HH"), id("JJ"), id("BB")
	assert.Equal(t, uint32(0), g.Distance(aa, aa))
	assert.Equal(t, uint32(1), g.Distance(aa, bb))
	assert.Equal(t, uint32(5), g.Distance(aa, hh))
	assert.Equal(t, uint32(7), g.Distance(jj, hh))
	assert.Equal(t, g.Distance(hh, jj), g.Distance(jj, hh))

	// FF has no flow: no distance row.
	assert.Equal(t, uint32(network.Unreachable), g.Distance(id("FF"), aa))
	assert.Len(t, g.Relevant(), 7)
}

func TestFromValves_StartSwappedToFront(t *testing.T) {
	vs := []valve.Valve{
		{Name: "X", FlowRate: 5, Tunnels: []string{"S"}},
		{Name: "Y", FlowRate: 0, Tunnels: []string{"S"}},
		{Name: "S", FlowRate: 0, Tunnels: []string{"X", "Y"}},
	}
	g, err := network.FromValves(vs, network.WithStart("S"))
	require.NoError(t, err)
	assert.Equal(t, "S", g.Name(0))
	assert.Equal(t, "X", g.Name(2), "swap only exchanges positions with the start")
	assert.Equal(t, "Y", g.Name(1))
	assert.Equal(t, uint32(1), g.Distance(0, 2))

	// input slice is untouched
	assert.Equal(t, "X", vs[0].Name)
}

func TestFromValves_Errors(t *testing.T) {
	tests := []struct {
		name   string
		valves []valve.Valve
		opts   []network.Option
		want   error
	}{
		{
			name:   "missing start",
			valves: []valve.Valve{{Name: "BB", Tunnels: []string{"BB"}}},
			want:   network.ErrStartNotFound,
		},
		{
			name: "duplicate",
			valves: []valve.Valve{
				{Name: "AA", Tunnels: []string{"BB"}},
				{Name: "AA", Tunnels: []string{"BB"}},
			},
			want: network.ErrDuplicateValve,
		},
		{
			name:   "unknown tunnel",
			valves: []valve.Valve{{Name: "AA", Tunnels: []string{"ZZ"}}},
			want:   network.ErrUnknownTunnel,
		},
		{
			name:   "empty start option",
			valves: []valve.Valve{{Name: "AA"}},
			opts:   []network.Option{network.WithStart("")},
			want:   network.ErrOptionViolation,
		},
		{
			name: "strict unreachable",
			valves: []valve.Valve{
				{Name: "AA", Tunnels: []string{"AA"}},
				{Name: "BB", FlowRate: 3, Tunnels: []string{"AA"}},
			},
			opts: []network.Option{network.WithStrictReachability()},
			want: network.ErrUnreachableTarget,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := network.FromValves(tt.valves, tt.opts...)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, network.ErrConfiguration)
			require.Nil(t, g)
		})
	}
}

func TestFromValves_TooManyTargets(t *testing.T) {
	vs := []valve.Valve{{Name: "AA"}}
	for i := 0; i <= mask.Width; i++ {
		name := "V" + string(rune('A'+i/26)) + string(rune('a'+i%26))
		vs[0].Tunnels = append(vs[0].Tunnels, name)
		vs = append(vs, valve.Valve{Name: name, FlowRate: 1, Tunnels: []string{"AA"}})
	}
	_, err := network.FromValves(vs)
	require.ErrorIs(t, err, network.ErrTooManyTargets)

	// exactly Width targets is fine
	vs = vs[:len(vs)-1]
	vs[0].Tunnels = vs[0].Tunnels[:len(vs[0].Tunnels)-1]
	g, err := network.FromValves(vs)
	require.NoError(t, err)
	assert.Len(t, g.Targets(), mask.Width)
}

func TestFromValves_UnreachableIsLenient(t *testing.T) {
	vs := []valve.Valve{
		{Name: "AA", Tunnels: []string{"AA"}},
		{Name: "BB", FlowRate: 3, Tunnels: []string{"AA"}},
	}
	g, err := network.FromValves(vs)
	require.NoError(t, err)
	assert.Equal(t, uint32(network.Unreachable), g.Distance(0, 1))
	assert.Equal(t, uint32(1), g.Distance(1, 0))
}

func TestFromValves_StartWithFlowIsTarget(t *testing.T) {
	vs := []valve.Valve{
		{Name: "AA", FlowRate: 4, Tunnels: []string{"BB"}},
		{Name: "BB", FlowRate: 2, Tunnels: []string{"AA"}},
	}
	g, err := network.FromValves(vs)
	require.NoError(t, err)
	assert.Equal(t, []network.Target{{Node: 0, Bit: 0}, {Node: 1, Bit: 1}}, g.Targets())
	assert.Equal(t, []int{0, 1}, g.Relevant())
}

func TestRoute(t *testing.T) {
	g, err := network.FromValves(loadSample(t))
	require.NoError(t, err)
	id := func(name string) int {
		i, ok := g.ID(name)
		require.True(t, ok)
		return i
	}

	route, err := g.Route(id("AA"), id("HH"))
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "DD", "EE", "FF", "GG", "HH"}, route)
	assert.Len(t, route, int(g.Distance(id("AA"), id("HH")))+1)

	route, err = g.Route(id("JJ"), id("BB"))
	require.NoError(t, err)
	assert.Equal(t, []string{"JJ", "II", "AA", "BB"}, route)

	route, err = g.Route(id("CC"), id("CC"))
	require.NoError(t, err)
	assert.Equal(t, []string{"CC"}, route)

	// GG is not a relevant valve, so no distance row bounds the search.
	route, err = g.Route(id("GG"), id("AA"))
	require.NoError(t, err)
	assert.Equal(t, []string{"GG", "FF", "EE", "DD", "AA"}, route)
}

func TestRoute_Unreachable(t *testing.T) {
	g, err := network.FromValves([]valve.Valve{
		{Name: "AA", Tunnels: []string{"AA"}},
		{Name: "BB", FlowRate: 3, Tunnels: []string{"AA"}},
	})
	require.NoError(t, err)

	_, err = g.Route(0, 1)
	require.ErrorIs(t, err, network.ErrNoRoute)
	route, err := g.Route(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"BB", "AA"}, route)
}
