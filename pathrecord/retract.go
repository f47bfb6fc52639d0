package pathrecord

// Retract is the strength of the retraction requested across a travel
// record, ordered None < Requested < Force.
type Retract int

const (
	// RetractNone means no retraction is requested for this record.
	RetractNone Retract = iota

	// RetractRequested means a retraction is advisable (a long travel, a
	// boundary crossing) but not mandatory.
	RetractRequested

	// RetractForce means a retraction is mandatory: the caller explicitly
	// asked for one via planner.Queue.ForceRetract, or a prior Force was
	// already recorded and must not be downgraded.
	RetractForce
)

// String renders a Retract for logging and test failure messages.
func (r Retract) String() string {
	switch r {
	case RetractNone:
		return "None"
	case RetractRequested:
		return "Requested"
	case RetractForce:
		return "Force"
	default:
		return "Retract(?)"
	}
}

// Max returns the stronger of a and b on the None < Requested < Force
// lattice. Every write to Record.Retract goes through Max (directly or via
// Record.RequestRetract/ForceRetract) so that a Force request already on a
// record can never be overwritten by a later, weaker Requested.
func Max(a, b Retract) Retract {
	if b > a {
		return b
	}
	return a
}
