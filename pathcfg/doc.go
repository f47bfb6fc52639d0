// Package pathcfg defines PathConfig: the immutable, named bundle of speed,
// extrusion width, and semantic tag that every queued move in the planner
// is stamped with.
//
// Configs are compared by identity, never by field equality: two configs
// carrying the same speed and width but bound to different roles (say, an
// inner wall and an infill line that happen to share a width) must never
// fold into the same path record. Build one Config per (role, material,
// layer) combination with New, keep the pointer, and hand that same pointer
// to every queue call that means "this same kind of move".
package pathcfg
