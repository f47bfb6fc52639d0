package router

import "github.com/meltpath/layerplan/geom"

// Kind classifies a routing outcome.
type Kind int

const (
	// Direct means the straight segment from "from" to "to" never leaves
	// the boundary; Waypoints is empty.
	Direct Kind = iota

	// Interior means Waypoints is a non-empty, ordered list of points
	// strictly between "from" and "to" (exclusive of both) that keeps the
	// travel inside the boundary.
	Interior

	// NoPath means no fully-interior route could be found. This is not an
	// error: planner.Queue.QueueTravel absorbs it into a retraction
	// decision.
	NoPath
)

// String renders a Kind for logging and test failure messages.
func (k Kind) String() string {
	switch k {
	case Direct:
		return "Direct"
	case Interior:
		return "Interior"
	case NoPath:
		return "NoPath"
	default:
		return "Kind(?)"
	}
}

// Result is the outcome of a Route call.
type Result struct {
	Kind      Kind
	Waypoints []geom.Point
}

// Router finds a travel path between two points that stays inside a
// polygon set. Implementations must be deterministic and loop-free, and
// must never return a waypoint outside the boundary; they need not return
// an optimal (shortest) route. layerIndex is provided for implementations
// that cache per-layer boundary state; VisibilityRouter ignores it.
type Router interface {
	Route(inside geom.PolygonSet, from, to geom.Point, layerIndex int) (Result, error)
}
