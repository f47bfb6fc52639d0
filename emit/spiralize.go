package emit

import (
	"math"

	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/pathrecord"
)

// anyLaterSpiralize reports whether any record after index i is also
// spiralize. The Z ramp only applies to the last spiralize record in the
// queue: an earlier one (a rare case — a travel or tool change splitting
// an otherwise-continuous vase wall into two records) falls through to
// normal emission instead of ramping twice.
func anyLaterSpiralize(records []*pathrecord.Record, i int) bool {
	for j := i + 1; j < len(records); j++ {
		if records[j].Config.Spiralize {
			return true
		}
	}
	return false
}

// chainLength returns the arclength of pos -> points[0] -> points[1] -> ...,
// i.e. the record's own points plus the implicit leading segment from the
// position the machine is at when the record begins executing.
func chainLength(pos geom.Point, points []geom.Point) int64 {
	var total int64
	prev := pos
	for _, p := range points {
		total += geom.Dist(prev, p)
		prev = p
	}
	return total
}

// emitSpiralize ramps Z linearly across rec's own points from zBase to
// zBase + layerThicknessUM, proportional to arclength walked so far
// (including the implicit leading segment from pos to the first point).
func emitSpiralize(sink Sink, rec *pathrecord.Record, pos geom.Point, zBase, layerThicknessUM int64) (geom.Point, error) {
	total := chainLength(pos, rec.Points)

	prev := pos
	last := pos
	var walked int64
	for _, p := range rec.Points {
		walked += geom.Dist(prev, p)
		prev = p

		z := zBase
		if total > 0 {
			frac := float64(layerThicknessUM) * (float64(walked) / float64(total))
			z = zBase + int64(math.Floor(frac+0.5))
		}
		width := p.Width
		if width == 0 {
			width = rec.Config.LineWidthUM
		}
		p.Z = z
		if err := sink.WriteMove(p, rec.SpeedMMPerS, width); err != nil {
			return last, err
		}
		last = p
	}
	return last, nil
}
