package valve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors for parsing.
var (
	// ErrMalformedLine is returned when a line does not follow the valve grammar.
	ErrMalformedLine = errors.New("valve: malformed line")

	// ErrBadFlowRate is returned when the flow rate is not a uint32.
	ErrBadFlowRate = errors.New("valve: invalid flow rate")
)

// Valve is one node of the tunnel network as read from the input.
type Valve struct {
	// Name identifies the valve, e.g. "AA".
	Name string

	// FlowRate is the pressure released per remaining minute once open.
	FlowRate uint32

	// Tunnels lists the neighbor names in input order.
	Tunnels []string
}

// String renders v back into the puzzle format.
func (v Valve) String() string {
	if len(v.Tunnels) == 1 {
		return fmt.Sprintf("Valve %s has flow rate=%d; tunnel leads to valve %s", v.Name, v.FlowRate, v.Tunnels[0])
	}
	return fmt.Sprintf("Valve %s has flow rate=%d; tunnels lead to valves %s", v.Name, v.FlowRate, strings.Join(v.Tunnels, ", "))
}

var lineRx = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// ParseLine parses a single input line.
func ParseLine(line string) (Valve, error) {
	m := lineRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Valve{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	rate, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return Valve{}, fmt.Errorf("%w: %q: %v", ErrBadFlowRate, m[2], err)
	}
	var tunnels []string
	for _, t := range strings.Split(m[3], ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			return Valve{}, fmt.Errorf("%w: empty tunnel in %q", ErrMalformedLine, line)
		}
		tunnels = append(tunnels, t)
	}
	return Valve{Name: m[1], FlowRate: uint32(rate), Tunnels: tunnels}, nil
}

// Parse reads valves from r, one per line, in input order.
func Parse(r io.Reader) ([]Valve, error) {
	var out []Valve
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, v)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("valve: reading input: %w", err)
	}
	return out, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Valve, error) {
	return Parse(strings.NewReader(s))
}
