// Package router implements inside-boundary routing: given a travel's start
// and end point and a set of polygons describing "the inside of the
// printed part", find a sequence of waypoints from start to end that never
// leaves the polygon set, or report that no such route exists.
//
// The planner depends only on the Router interface; VisibilityRouter is one
// implementation, built the way dijkstra.Dijkstra in the teacher corpus is
// built: construct a graph (here, a visibility graph over the boundary's
// vertices plus the two endpoints), then run Dijkstra with a lazy
// decrease-key container/heap priority queue to find the shortest interior
// path. The router does not need to be optimal — spec.md only requires it
// be deterministic and loop-free, and never produce a waypoint that exits
// the boundary — so a visibility graph restricted to existing polygon
// vertices (rather than a full continuous visibility complex) is enough.
//
// Complexity: building the visibility graph is O(V^2) edge-visibility
// checks for V boundary vertices (each check itself O(E) against the
// polygon set's edges); Dijkstra over the resulting graph is
// O((V+E) log V). For the vertex counts of a single layer's islands this is
// fast; it is not meant to scale to a whole print's worth of geometry in one
// call (callers route once per travel).
package router
