// Package dice implements the Cortex dice pool.
//
// A pool holds at most one group per die size (D4 through D12). Rolling a pool
// fills every group with faces; faces at or below the hitch threshold are
// hitches and never count toward a Total. SelectBest reports the Botch,
// Total-only or Total-and-Effect outcome for the current roll, including both
// the "best total first" and "best effect first" picks.
//
// Randomness is injected through Source so callers and tests control rolls.
// A Pool is not safe for concurrent use; give each caller its own pool.
package dice
