// Package valvenet finds the most pressure that can be released from a
// network of valves joined by tunnels, either by one agent or by two agents
// working at the same time.
//
// Moving through one tunnel takes a minute and opening a valve takes a
// minute. An open valve releases its flow rate every remaining minute.
//
// Packages:
//
//	valve    parse puzzle lines into Valve records and print them back
//	mask     64-bit sets of opened valves
//	bfs      breadth-first walker and unit-cost distance rows
//	network  ValveGraph: the start valve, the valves worth opening, distances
//	solver   single-agent and two-agent searches, plans, concurrent Solve
//	builder  synthetic networks (path, cycle, star, grid, complete, random)
//
// Command valvenet (cmd/valvenet) exposes the solve and gen subcommands.
//
// Quick start:
//
//	valves, _ := valve.Parse(os.Stdin)
//	g, _ := network.FromValves(valves)
//	fmt.Println(solver.BestPressure(g, 30), solver.BestDualPressure(g, 26))
package valvenet
