// Package network turns a list of valve.Valve records into a ValveGraph:
// dense integer ids with the start valve at id 0, a bit position for every
// positive-flow valve ("target"), and BFS distance rows for the relevant
// valves (start ∪ targets).
//
// Errors
//
// Every construction failure satisfies errors.Is(err, ErrConfiguration):
//
//   - ErrStartNotFound      no valve carries the start name.
//   - ErrTooManyTargets     more than mask.Width positive-flow valves.
//   - ErrDuplicateValve     two valves share a name.
//   - ErrUnknownTunnel      a tunnel leads to an undeclared valve.
//   - ErrUnreachableTarget  a target is disconnected (WithStrictReachability only).
//   - ErrOptionViolation    an invalid Option.
//
// Without WithStrictReachability a disconnected target simply reports
// Unreachable distances and solvers never select it.
package network
