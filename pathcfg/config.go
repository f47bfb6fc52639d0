package pathcfg

import "math"

// Reserved comment tags carrying behavior elsewhere in the planner. Any
// other tag is an opaque string the emitter passes through as a TYPE
// comment.
const (
	// TagTravel marks the travel config the planner builds internally.
	TagTravel = "travel"

	// TagBridge excludes a config's records from minimum-layer-time
	// slowdown (planner.Queue.FinalizeLayer).
	TagBridge = "BRIDGE"

	// TagWallOuter marks the outermost perimeter, eligible for
	// start/end overlap trim at loop closure.
	TagWallOuter = "WALL-OUTER"

	// TagWallInner marks an inner perimeter, eligible for start/end
	// overlap trim at loop closure.
	TagWallInner = "WALL-INNER"
)

// Config is an immutable, named bundle of target speed, extrusion width,
// and traversal semantics. Construct with New; every field is fixed for
// the lifetime of the value once returned.
type Config struct {
	// SpeedMMPerS is the target feed rate in millimetres per second.
	SpeedMMPerS float64

	// LineWidthUM is the extrusion width in micrometres. Zero means this
	// config governs travel moves, never extrusion.
	LineWidthUM int64

	// CommentTag is free text; see the Tag* constants for reserved values.
	CommentTag string

	// ClosedLoop indicates the path this config governs returns to its
	// starting point when walked (see planner.Queue.QueuePolygon).
	ClosedLoop bool

	// Spiralize indicates vase-mode Z ramping applies during emission.
	Spiralize bool
}

// New validates and constructs a Config. SpeedMMPerS must be finite and
// positive; LineWidthUM must be non-negative.
func New(speedMMPerS float64, lineWidthUM int64, commentTag string, closedLoop, spiralize bool) (*Config, error) {
	if math.IsNaN(speedMMPerS) || math.IsInf(speedMMPerS, 0) || speedMMPerS <= 0 {
		return nil, ErrInvalidSpeed
	}
	if lineWidthUM < 0 {
		return nil, ErrInvalidWidth
	}

	return &Config{
		SpeedMMPerS: speedMMPerS,
		LineWidthUM: lineWidthUM,
		CommentTag:  commentTag,
		ClosedLoop:  closedLoop,
		Spiralize:   spiralize,
	}, nil
}

// NewTravel builds the reserved travel config at the given speed: zero
// width, open (non-closed-loop), non-spiralize, tagged TagTravel.
func NewTravel(speedMMPerS float64) (*Config, error) {
	return New(speedMMPerS, 0, TagTravel, false, false)
}

// IsTravel reports whether c governs travel moves (LineWidthUM == 0).
func (c *Config) IsTravel() bool {
	return c.LineWidthUM == 0
}

// Same reports whether a and b are the identical Config value (by pointer).
// Two configs with equal fields but distinct identities are never "Same":
// identity, not structural equality, is what lets the planner decide
// whether a new append continues the current path record.
func Same(a, b *Config) bool {
	return a == b
}
