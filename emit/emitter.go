package emit

import (
	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/pathcfg"
	"github.com/meltpath/layerplan/pathrecord"
	"github.com/meltpath/layerplan/planner"
	"github.com/meltpath/layerplan/plog"
)

// Emitter walks a finalized planner.Queue and drives a Sink.
type Emitter struct {
	log *plog.Logger
}

// New builds an Emitter. A nil logger is fine; it is wrapped in a no-op.
func New(log *plog.Logger) *Emitter {
	return &Emitter{log: plog.OrNop(log)}
}

// Emit drains q's sealed records into sink in order. initialExtruder is
// the extruder active before this layer, so the first record's extruder
// is only treated as a tool change if it actually differs.
// layerThicknessUM feeds the spiralize Z ramp.
//
// Emit is terminal for q: it seals the tail record first, then walks
// Records() once. Calling Emit on a queue with no records at all returns
// ErrEmptyEmit without touching sink — a non-fatal condition callers may
// simply skip.
func (e *Emitter) Emit(q *planner.Queue, sink Sink, initialExtruder int, layerThicknessUM int64) error {
	q.Seal()
	records := q.Records()
	if len(records) == 0 {
		return ErrEmptyEmit
	}

	current := initialExtruder
	var lastEmittedConfig *pathcfg.Config
	pos := q.InitialPosition()

	for i := 0; i < len(records); {
		rec := records[i]

		switch {
		case rec.ExtruderIndex != current:
			if err := sink.SwitchExtruder(rec.ExtruderIndex); err != nil {
				return err
			}
			current = rec.ExtruderIndex
		case rec.Retract != pathrecord.RetractNone:
			estimate := 0.0
			if rec.Config.IsTravel() {
				estimate = estimateMoveTime(pos, rec)
			}
			if err := sink.WriteRetraction(estimate, rec.Retract == pathrecord.RetractForce); err != nil {
				return err
			}
		}

		if !pathcfg.Same(rec.Config, lastEmittedConfig) && !rec.Config.IsTravel() {
			if err := sink.WriteComment("TYPE:" + rec.Config.CommentTag); err != nil {
				return err
			}
			lastEmittedConfig = rec.Config
		}

		if rec.FanPercent != pathrecord.UnchangedFan {
			if err := sink.WriteFan(rec.FanPercent); err != nil {
				return err
			}
		}

		var run []int
		if len(rec.Points) == 1 && !rec.Config.IsTravel() {
			run = gatherTinyRun(records, i, pos)
		}

		var (
			next geom.Point
			err  error
		)
		switch {
		case len(run) > 2:
			next, err = emitCoalescedRun(sink, records, run, pos)
			i = run[len(run)-1] + 1
		case rec.Config.Spiralize && !anyLaterSpiralize(records, i):
			next, err = emitSpiralize(sink, rec, pos, q.LayerZ(), layerThicknessUM)
			i++
		default:
			next, err = emitNormal(sink, rec, pos, q.PerimeterOverlapRatio())
			i++
		}
		if err != nil {
			return err
		}
		pos = next
	}

	return sink.UpdateLayerPrintTime()
}

// estimateMoveTime approximates the time a travel record's own move will
// take: the hop to its first point plus its own arclength, at its speed.
func estimateMoveTime(pos geom.Point, rec *pathrecord.Record) float64 {
	if len(rec.Points) == 0 {
		return 0
	}
	distUM := geom.Dist(pos, rec.Points[0]) + rec.PolygonLength()
	return float64(distUM) / 1000.0 / rec.SpeedMMPerS
}
