package emit

import "github.com/meltpath/layerplan/geom"

// Sink is the downstream collaborator the emitter drives; it maps
// (point, speed, line width) and the surrounding bookkeeping calls onto
// machine commands. The emitter makes no assumption about dialect.
type Sink interface {
	// SwitchExtruder emits a tool change to extruder i.
	SwitchExtruder(i int) error

	// WriteRetraction emits a retraction. estimatedMoveTimeS is the
	// estimated duration of the move the retraction precedes, used by
	// sinks that taper retraction distance by move speed; forced
	// distinguishes a mandatory retraction from an advisory one.
	WriteRetraction(estimatedMoveTimeS float64, forced bool) error

	// WriteComment emits a free-text comment line, used for TYPE:<tag>
	// section markers.
	WriteComment(s string) error

	// WriteFan emits a fan-speed command, percent in [0, 100].
	WriteFan(percent int) error

	// WriteMove emits a single machine move to p at the given speed and
	// line width. lineWidthUM == 0 means a travel (non-depositing) move.
	WriteMove(p geom.Point, speedMMPerS float64, lineWidthUM int64) error

	// UpdateLayerPrintTime signals that the layer is fully emitted, for
	// sinks that track cumulative print time.
	UpdateLayerPrintTime() error
}
