package network

import (
	"errors"
	"fmt"
)

// ErrConfiguration classifies every construction failure. A graph is never
// partially returned: FromValves yields either a complete ValveGraph or an
// error for which errors.Is(err, ErrConfiguration) holds.
var ErrConfiguration = errors.New("network: configuration error")

// Sentinel errors; each wraps ErrConfiguration.
var (
	// ErrStartNotFound is returned when no valve carries the start name.
	ErrStartNotFound = fmt.Errorf("%w: start valve not found", ErrConfiguration)

	// ErrTooManyTargets is returned when the positive-flow valves do not fit
	// in a mask.Set.
	ErrTooManyTargets = fmt.Errorf("%w: too many positive-flow valves", ErrConfiguration)

	// ErrDuplicateValve is returned when two valves share a name.
	ErrDuplicateValve = fmt.Errorf("%w: duplicate valve name", ErrConfiguration)

	// ErrUnknownTunnel is returned when a tunnel leads to an undeclared valve.
	ErrUnknownTunnel = fmt.Errorf("%w: tunnel to unknown valve", ErrConfiguration)

	// ErrUnreachableTarget is returned under WithStrictReachability when a
	// positive-flow valve cannot be reached from the start.
	ErrUnreachableTarget = fmt.Errorf("%w: positive-flow valve unreachable from start", ErrConfiguration)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: invalid option supplied", ErrConfiguration)
)

// ErrNoRoute is returned by Route when the destination cannot be reached.
var ErrNoRoute = errors.New("network: no route between valves")
