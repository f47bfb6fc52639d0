package planner

import "math"

// Settings is the ConfigSettings view the planner consumes from the
// upstream machine/material profile (spec.md §6). It is immutable once
// constructed.
type Settings struct {
	// MinLayerTimeS is the minimum number of seconds a layer must take;
	// FinalizeLayer slows extrusion to try to meet it.
	MinLayerTimeS float64

	// MinPrintSpeed is the floor FinalizeLayer's slowdown never goes below.
	MinPrintSpeed float64

	// MinFanSpeedLayerTime and MaxFanSpeedLayerTime bound the fan-floor
	// interpolation (see fanFloor).
	MinFanSpeedLayerTime float64
	MaxFanSpeedLayerTime float64

	// FanMinPercent and FanMaxPercent bound the fan-floor interpolation's
	// output range.
	FanMinPercent int
	FanMaxPercent int

	// FirstLayerAllowFan is the first layer index (0-based) at which the
	// fan is allowed to run at all; layers before it always floor to 0.
	FirstLayerAllowFan int

	// RetractMinUM is the travel distance, in micrometres, beyond which a
	// retraction is requested.
	RetractMinUM int64

	// PerimeterOverlapRatio in [0,1] controls how much of a closed
	// perimeter's trailing overlap segment the emitter trims; 1 means no
	// trim.
	PerimeterOverlapRatio float64

	// TravelSpeedMMPerS is the feed rate for the planner's own internal
	// travel config.
	TravelSpeedMMPerS float64
}

// NewSettings validates and returns a Settings. It rejects non-finite or
// out-of-range values so that downstream arithmetic (the fan-floor ratio,
// the layer-speed ratio) never has to guard against NaN/Inf.
func NewSettings(s Settings) (Settings, error) {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	switch {
	case !finite(s.MinLayerTimeS) || s.MinLayerTimeS < 0:
		return Settings{}, ErrInvalidSettings
	case !finite(s.MinPrintSpeed) || s.MinPrintSpeed <= 0:
		return Settings{}, ErrInvalidSettings
	case !finite(s.MinFanSpeedLayerTime) || s.MinFanSpeedLayerTime < 0:
		return Settings{}, ErrInvalidSettings
	case !finite(s.MaxFanSpeedLayerTime) || s.MaxFanSpeedLayerTime < 0:
		return Settings{}, ErrInvalidSettings
	case s.FanMinPercent < 0 || s.FanMinPercent > 100:
		return Settings{}, ErrInvalidSettings
	case s.FanMaxPercent < 0 || s.FanMaxPercent > 100:
		return Settings{}, ErrInvalidSettings
	case s.FirstLayerAllowFan < 0:
		return Settings{}, ErrInvalidSettings
	case s.RetractMinUM < 0:
		return Settings{}, ErrInvalidSettings
	case !finite(s.PerimeterOverlapRatio) || s.PerimeterOverlapRatio < 0 || s.PerimeterOverlapRatio > 1:
		return Settings{}, ErrInvalidSettings
	case !finite(s.TravelSpeedMMPerS) || s.TravelSpeedMMPerS <= 0:
		return Settings{}, ErrInvalidSettings
	}

	return s, nil
}
