// Package pathrecord defines PathRecord: one contiguous machine action
// (a run of travel or a run of extrusion under one unchanging config), and
// the small Retract lattice the planner folds retraction decisions into.
//
// A Record is mutable while open (its points may still grow) and frozen
// once Seal is called; the planner never appends to a sealed record, and
// the emitter never mutates one at all. The monotone None < Requested <
// Force ordering on Retract means a record's retraction strength only ever
// goes up over its open lifetime — see Max.
package pathrecord
