package emit

import (
	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/pathcfg"
	"github.com/meltpath/layerplan/pathrecord"
)

// emitNormal emits rec's points in order, trimming a closed WALL-OUTER or
// WALL-INNER perimeter's tail overlap first when perimeterOverlapRatio <
// 1. pos is the machine's position when rec begins executing; it doubles
// as loop_start, the seam point a trimmed perimeter returns to.
//
// TODO: the original planner this is modeled on also contained a
// commented-out secondary retract-while-moving step here, folding a
// partial retraction into the closing seam move. It was never specified
// beyond that comment; this is the hook where it would go, left
// unimplemented.
func emitNormal(sink Sink, rec *pathrecord.Record, pos geom.Point, overlapRatio float64) (geom.Point, error) {
	points := geom.Polygon(rec.Points)
	loopStart := pos

	closedInData := len(points) > 0 && points[len(points)-1].EqualXY(loopStart)
	trimEligible := closedInData && overlapRatio < 1 &&
		(rec.Config.CommentTag == pathcfg.TagWallOuter || rec.Config.CommentTag == pathcfg.TagWallInner)

	trimmed := false
	if trimEligible {
		trimDist := int64(float64(rec.Config.LineWidthUM) * (1 - overlapRatio))
		if trimDist > 0 {
			points = geom.Trim(points, trimDist)
			trimmed = true
		}
	}

	cur := pos
	for _, p := range points {
		width := p.Width
		if width == 0 {
			width = rec.Config.LineWidthUM
		}
		if err := sink.WriteMove(p, rec.SpeedMMPerS, width); err != nil {
			return cur, err
		}
		cur = p
	}

	if trimmed {
		if err := sink.WriteMove(loopStart, rec.SpeedMMPerS, 0); err != nil {
			return cur, err
		}
		cur = loopStart
	}

	return cur, nil
}
