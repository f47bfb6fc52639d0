package router

import "errors"

// Sentinel errors returned by VisibilityRouter.Route. Per spec.md §7, a
// RouterNoPath outcome is not one of these: "no interior route exists" is
// reported as a RouteResult with Kind == NoPath, not as an error, because
// the planner absorbs it into a retraction decision rather than surfacing
// it to the caller.
var (
	// ErrNilPolygonSet indicates a nil or empty inside-boundary polygon
	// set was supplied where at least one polygon is required to route
	// against.
	ErrNilPolygonSet = errors.New("router: inside polygon set is empty")
)
