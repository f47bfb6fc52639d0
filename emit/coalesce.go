package emit

import (
	"math"

	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/pathrecord"
)

// gatherTinyRun scans forward from i for a run of single-point extrusion
// records each closer than 2x the run-starting record's line width to the
// point before it. The proximity threshold is fixed at the run's start
// width throughout the scan — not recomputed per record — and a trailing
// single-point travel record is included in the scan (it can terminate a
// run of tiny extrusion hops) but is never part of the returned run: it is
// left for the next Emit iteration to process on its own.
func gatherTinyRun(records []*pathrecord.Record, i int, pos geom.Point) []int {
	if len(records[i].Points) != 1 || records[i].Config.IsTravel() {
		return nil
	}
	threshold := 2 * records[i].Config.LineWidthUM
	if !geom.ShorterThan(pos, records[i].Points[0], threshold) {
		return nil
	}

	run := []int{i}
	prev := records[i].Points[0]
	for j := i + 1; j < len(records); j++ {
		rec := records[j]
		if len(rec.Points) != 1 {
			break
		}
		if !geom.ShorterThan(prev, rec.Points[0], threshold) {
			break
		}
		if rec.Config.IsTravel() {
			break
		}
		run = append(run, j)
		prev = rec.Points[0]
	}
	return run
}

// emitCoalescedRun pairs up run[:len(run)-1] two at a time, emitting one
// midpoint move per pair with a line width scaled to preserve deposited
// volume, then always emits the run's true final point as an unscaled
// move — this is what keeps property 9 (final XY position unchanged)
// true regardless of the run's parity. An unpaired record just before the
// final point (an odd-length pairable prefix) is emitted unscaled too.
func emitCoalescedRun(sink Sink, records []*pathrecord.Record, run []int, pos geom.Point) (geom.Point, error) {
	pairable := run[:len(run)-1]
	finalIdx := run[len(run)-1]

	cur := pos
	i := 0
	for i+1 < len(pairable) {
		a, b := records[pairable[i]], records[pairable[i+1]]
		next, err := emitCoalescedPair(sink, cur, a, b)
		if err != nil {
			return cur, err
		}
		cur = next
		i += 2
	}
	if i < len(pairable) {
		rec := records[pairable[i]]
		p := rec.Points[0]
		width := p.Width
		if width == 0 {
			width = rec.Config.LineWidthUM
		}
		if err := sink.WriteMove(p, rec.SpeedMMPerS, width); err != nil {
			return cur, err
		}
		cur = p
	}

	finalRec := records[finalIdx]
	p := finalRec.Points[0]
	width := p.Width
	if width == 0 {
		width = finalRec.Config.LineWidthUM
	}
	if err := sink.WriteMove(p, finalRec.SpeedMMPerS, width); err != nil {
		return cur, err
	}
	return p, nil
}

// emitCoalescedPair emits a single move to the midpoint of a and b's
// points, scaling the line width by original_len/new_len so the
// deposited volume (width x length) is preserved within integer rounding.
func emitCoalescedPair(sink Sink, pos geom.Point, a, b *pathrecord.Record) (geom.Point, error) {
	pa, pb := a.Points[0], b.Points[0]
	mid := geom.Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2, Z: pa.Z}

	originalLen := geom.Dist(pos, pa) + geom.Dist(pa, pb)
	newLen := geom.Dist(pos, mid)

	width := a.Config.LineWidthUM
	if newLen > 0 {
		width = int64(math.Round(float64(width) * float64(originalLen) / float64(newLen)))
	}

	if err := sink.WriteMove(mid, a.SpeedMMPerS, width); err != nil {
		return pos, err
	}
	return mid, nil
}
