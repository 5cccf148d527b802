// Package solver finds the maximum pressure released by one or two agents
// walking a network.ValveGraph within a time budget.
//
// What
//
//   - Single / BestPressure: one agent, depth-first search memoized on
//     (valve, minutes left, opened set).
//   - Dual / BestDualPressure: two agents sharing the valve pool. One agent's
//     trajectory space is walked exhaustively, recording the best total per
//     exact opened set; the answer is the best sum over two disjoint sets.
//   - Solve: both searches concurrently on one graph.
//
// Scoring
//
//	Moving to a valve costs its tunnel distance in minutes, opening it one
//	more minute. An open valve releases its flow rate for every minute left
//	after it opens. A target that is unreachable or too far away is skipped.
//
// Complexity (K = targets, T = budget)
//
//   - Single: at most (K+1)·(T+1)·2^K memo states, O(K) work each.
//   - Dual:   exponential walk bounded by T, then O(M²) over M recorded
//     sets in the worst case; the sorted scan usually stops far earlier.
//
// Concurrency
//
//	Every call owns its tables; a ValveGraph is never mutated and may be
//	shared by concurrent calls.
//
// Logging
//
//	Search statistics are emitted at debug level through logrus; see
//	WithLogger.
package solver
