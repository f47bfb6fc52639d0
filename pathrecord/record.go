package pathrecord

import (
	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/pathcfg"
)

// UnchangedFan is the sentinel FanPercent value meaning "do not emit a fan
// command for this record".
const UnchangedFan = -1

// Record is one contiguous machine action: a config, the extruder it runs
// on, its ordered points, and the retraction/fan/seal state the planner and
// emitter thread through it.
//
// The record's first point is never stored: per spec, it is implicitly
// whatever the last emitted position was when this record is executed.
type Record struct {
	// Config governs this record's speed, width, and traversal semantics.
	// Compared by identity elsewhere in this module; never reassigned
	// after New.
	Config *pathcfg.Config

	// ExtruderIndex is the extruder this record runs on.
	ExtruderIndex int

	// Points are this record's points, in emission order. The implicit
	// first point (see the type doc) is not included.
	Points []geom.Point

	// SpeedMMPerS starts at Config.SpeedMMPerS and may be lowered by
	// planner.Queue.FinalizeLayer's minimum-layer-time slowdown.
	SpeedMMPerS float64

	// Retract is this record's retraction request, monotone non-decreasing
	// over the record's open lifetime (see Max).
	Retract Retract

	// FanPercent is UnchangedFan (no fan command emitted) or a value in
	// [0, 100].
	FanPercent int

	sealed bool
}

// New opens a Record under cfg, running on the given extruder. Speed starts
// at cfg.SpeedMMPerS; fan starts unchanged; retract starts at None.
func New(cfg *pathcfg.Config, extruderIndex int) *Record {
	return &Record{
		Config:        cfg,
		ExtruderIndex: extruderIndex,
		SpeedMMPerS:   cfg.SpeedMMPerS,
		Retract:       RetractNone,
		FanPercent:    UnchangedFan,
	}
}

// Sealed reports whether Seal has been called on this record.
func (r *Record) Sealed() bool {
	return r.sealed
}

// Seal freezes the record. Any later Append returns ErrSealViolation.
func (r *Record) Seal() {
	r.sealed = true
}

// Append adds p to the record's points. It returns ErrSealViolation if the
// record is already sealed.
func (r *Record) Append(p geom.Point) error {
	if r.sealed {
		return ErrSealViolation
	}
	r.Points = append(r.Points, p)
	return nil
}

// RequestRetract raises Retract to at least RetractRequested, never
// downgrading an existing RetractForce.
func (r *Record) RequestRetract() {
	r.Retract = Max(r.Retract, RetractRequested)
}

// ForceRetract raises Retract to RetractForce.
func (r *Record) ForceRetract() {
	r.Retract = Max(r.Retract, RetractForce)
}

// PolygonLength returns the open arclength of the record's own points (the
// implicit first point is not included, matching geom.Polygon.Length's
// no-implicit-closing-edge semantics).
func (r *Record) PolygonLength() int64 {
	return geom.Polygon(r.Points).Length()
}

// IsTinyHopFrom reports whether this record is a single-point hop landing
// closer than 2x the config's line width to ref. The emitter's small-move
// coalescing scan (emit's gatherTinyRun) applies the same proximity test to
// a run's first record inline rather than calling this method.
func (r *Record) IsTinyHopFrom(ref geom.Point) bool {
	if len(r.Points) != 1 {
		return false
	}
	return geom.ShorterThan(ref, r.Points[0], 2*r.Config.LineWidthUM)
}
