package orderopt

import (
	"sort"

	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/router"
)

// candidate is a (polygon, vertex) pair scored by its distance from the
// current position, used as the nearest-neighbor scheduling unit.
type candidate struct {
	poly, vert int
	distSq     int64
}

// Optimize greedily schedules polys for printing starting from start.
//
// At each step it ranks every not-yet-scheduled polygon by the distance from
// the current position to its nearest vertex, then walks that ranking from
// nearest to farthest and takes the first polygon the router reports as
// reachable (Kind != NoPath) from the current position. If rtr is nil, or no
// candidate is reachable, the globally nearest candidate is taken regardless
// — every polygon must end up scheduled somewhere, and a router that cannot
// find a path is not grounds for never printing a polygon.
//
// inside and layerIndex are passed straight through to rtr.Route and are
// meaningless when rtr is nil.
func Optimize(polys geom.PolygonSet, start geom.Point, rtr router.Router, inside geom.PolygonSet, layerIndex int) Result {
	n := len(polys)
	if n == 0 {
		return Result{}
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	order := make([]int, 0, n)
	startIndex := make([]int, n)
	cur := start

	for len(remaining) > 0 {
		cands := rankByDistance(polys, remaining, cur)

		chosen := cands[0]
		if rtr != nil {
			for _, c := range cands {
				res, err := rtr.Route(inside, cur, polys[c.poly][c.vert], layerIndex)
				if err == nil && res.Kind != router.NoPath {
					chosen = c
					break
				}
			}
		}

		order = append(order, chosen.poly)
		startIndex[chosen.poly] = chosen.vert
		cur = polys[chosen.poly][chosen.vert]
		remaining = removePoly(remaining, chosen.poly)
	}

	return Result{Order: order, StartIndex: startIndex}
}

// rankByDistance returns, for every polygon index in remaining, its nearest
// vertex to cur, sorted nearest-first with a deterministic tie-break on
// (polygon index, vertex index).
func rankByDistance(polys geom.PolygonSet, remaining []int, cur geom.Point) []candidate {
	cands := make([]candidate, 0, len(remaining))
	for _, p := range remaining {
		v, d := nearestVertex(polys[p], cur)
		cands = append(cands, candidate{poly: p, vert: v, distSq: d})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].distSq != cands[j].distSq {
			return cands[i].distSq < cands[j].distSq
		}
		if cands[i].poly != cands[j].poly {
			return cands[i].poly < cands[j].poly
		}
		return cands[i].vert < cands[j].vert
	})
	return cands
}

// nearestVertex returns the index of poly's vertex closest to cur, along
// with its squared distance, breaking ties in favor of the lower index.
func nearestVertex(poly geom.Polygon, cur geom.Point) (vert int, distSq int64) {
	best := int64(-1)
	bv := 0
	for v, pt := range poly {
		d := geom.DistSq(cur, pt)
		if best == -1 || d < best {
			best, bv = d, v
		}
	}
	return bv, best
}

func removePoly(remaining []int, p int) []int {
	out := remaining[:0]
	for _, r := range remaining {
		if r != p {
			out = append(out, r)
		}
	}
	return out
}
