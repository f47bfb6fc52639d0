// Package geom provides the integer-point geometry primitives the layer
// planner builds on: points in micrometre units, polygons as ordered point
// sequences, and the small set of length/containment/trim operations the
// planner needs.
//
// Every distance in this package is measured in the XY plane. A Point's Z
// coordinate is carried through for vase-mode (spiralize) emission only; it
// never participates in a length, distance, or containment calculation.
// Arithmetic stays in integer micrometres for as long as possible; this
// package reaches for floating point only in the square root behind Length,
// the interpolation of Trim's cut point, the edge-crossing test in
// PointInPolygon, and the final micrometre-to-millimetre conversion.
package geom
