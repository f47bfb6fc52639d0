// Package plog is the planner's thin logging seam: a nil-safe wrapper
// around *zap.Logger so that package planner and package emit can log
// structured diagnostics (retraction decisions, fan-floor adjustments,
// coalescing runs) without forcing every caller to construct a real
// logger first.
package plog
