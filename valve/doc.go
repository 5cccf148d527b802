// Package valve defines the Valve record consumed by the network builder and
// a parser for the line-oriented puzzle format:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Both the singular and the plural tunnel phrasing are accepted. Blank lines
// are skipped. Valve names are opaque tokens; they are usually two capital
// letters but the parser does not insist on it.
//
// Errors
//
//   - ErrMalformedLine  if a line does not match the grammar.
//   - ErrBadFlowRate    if the flow rate does not fit in a uint32.
//
// Both are wrapped with the 1-based line number by Parse.
package valve
