// Package planner implements the layer path planner's core: a queue of
// path records for one layer at one Z, the operations that append to it
// (extrusion, polygon, travel, fan, tool-change, forced retract), and the
// two finalization passes that run once the layer's geometry is complete
// (minimum-layer-time speed slowdown, fan floor).
//
// A Queue is built for exactly one layer. Its public operations mutate the
// tail of an append-only record list; FinalizeLayer seals the layer's
// global adjustments; after that the records are handed to package emit.
package planner
