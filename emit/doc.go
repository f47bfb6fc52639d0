// Package emit walks a finalized planner.Queue's sealed records in order
// and drives an output Sink: tool switches, retractions, TYPE comments,
// fan commands, and the three point-emission strategies spec.md §4.7
// distinguishes — small-move coalescing, vase-mode (spiralize) Z ramping,
// and the normal path with optional perimeter-overlap trim.
package emit
