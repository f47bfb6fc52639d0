package orderopt

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/router"
)

func square(ox, oy int64) geom.Polygon {
	return geom.Polygon{
		geom.Pt(ox, oy),
		geom.Pt(ox+1000, oy),
		geom.Pt(ox+1000, oy+1000),
		geom.Pt(ox, oy+1000),
	}
}

func TestOptimizeNoRouterPicksNearestFirst(t *testing.T) {
	near := square(0, 0)
	far := square(100000, 0)
	polys := geom.PolygonSet{far, near}

	res := Optimize(polys, geom.Pt(-1000, 500), nil, nil, 0)

	want := []int{1, 0} // the near square, then the far square
	if diff := cmp.Diff(want, res.Order); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
}

func TestOptimizeStartIndexPicksClosestVertex(t *testing.T) {
	poly := square(0, 0)
	polys := geom.PolygonSet{poly}

	// (1000,1000) is nearest to the third vertex, index 2.
	res := Optimize(polys, geom.Pt(1000, 1000), nil, nil, 0)

	if res.StartIndex[0] != 2 {
		t.Errorf("StartIndex[0] = %d, want 2", res.StartIndex[0])
	}
}

func TestOptimizeEmptySetReturnsEmptyResult(t *testing.T) {
	res := Optimize(nil, geom.Pt(0, 0), nil, nil, 0)
	if diff := cmp.Diff(Result{}, res); diff != "" {
		t.Errorf("expected empty Result (-want +got):\n%s", diff)
	}
}

// unreachableFromOrigin reports NoPath for any destination whose X is below
// blockBeyondX, forcing the optimizer to skip a nearer polygon in favor of
// a farther but reachable one.
type unreachableFromOrigin struct {
	blockBeyondX int64
}

func (u unreachableFromOrigin) Route(_ geom.PolygonSet, from, to geom.Point, _ int) (router.Result, error) {
	if to.X < u.blockBeyondX {
		return router.Result{Kind: router.NoPath}, nil
	}
	return router.Result{Kind: router.Direct}, nil
}

func TestOptimizePrefersReachableOverNearer(t *testing.T) {
	blocked := square(0, 0)     // nearer, but Route reports NoPath
	reachable := square(50000, 0) // farther, but reachable

	polys := geom.PolygonSet{blocked, reachable}
	rtr := unreachableFromOrigin{blockBeyondX: 10000}

	res := Optimize(polys, geom.Pt(-1000, 500), rtr, geom.PolygonSet{}, 0)

	if res.Order[0] != 1 {
		t.Errorf("Order[0] = %d, want 1 (the reachable square, despite being farther)", res.Order[0])
	}
}

func TestOptimizeSchedulesEverythingEvenIfNothingReachable(t *testing.T) {
	polys := geom.PolygonSet{square(0, 0), square(100000, 0)}
	alwaysBlocked := unreachableFromOrigin{blockBeyondX: 1 << 40}

	res := Optimize(polys, geom.Pt(0, 0), alwaysBlocked, geom.PolygonSet{}, 0)

	if len(res.Order) != 2 {
		t.Fatalf("Order has %d entries, want 2 (every polygon must still be scheduled)", len(res.Order))
	}
}
