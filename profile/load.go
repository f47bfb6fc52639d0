package profile

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/meltpath/layerplan/pathcfg"
	"github.com/meltpath/layerplan/planner"
)

// Load parses a YAML profile from r into a validated planner.Settings
// and a pathcfg.Registry of its named configs, applying any
// LAYERPLAN_-prefixed environment variable overrides to the settings
// fields first.
func Load(r io.Reader) (planner.Settings, *pathcfg.Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return planner.Settings{}, nil, fmt.Errorf("profile: read: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return planner.Settings{}, nil, fmt.Errorf("profile: parse: %w", err)
	}

	applyEnvOverrides(&f.Settings)

	settings, err := planner.NewSettings(planner.Settings{
		MinLayerTimeS:         f.Settings.MinLayerTimeS,
		MinPrintSpeed:         f.Settings.MinPrintSpeed,
		MinFanSpeedLayerTime:  f.Settings.MinFanSpeedLayerTime,
		MaxFanSpeedLayerTime:  f.Settings.MaxFanSpeedLayerTime,
		FanMinPercent:         f.Settings.FanMinPercent,
		FanMaxPercent:         f.Settings.FanMaxPercent,
		FirstLayerAllowFan:    f.Settings.FirstLayerAllowFan,
		RetractMinUM:          f.Settings.RetractMinUM,
		PerimeterOverlapRatio: f.Settings.PerimeterOverlapRatio,
		TravelSpeedMMPerS:     f.Settings.TravelSpeedMMPerS,
	})
	if err != nil {
		return planner.Settings{}, nil, fmt.Errorf("profile: settings: %w", err)
	}

	reg := pathcfg.NewRegistry()
	for name, cf := range f.Configs {
		cfg, err := pathcfg.New(cf.SpeedMMPerS, cf.LineWidthUM, cf.CommentTag, cf.ClosedLoop, cf.Spiralize)
		if err != nil {
			return planner.Settings{}, nil, fmt.Errorf("profile: config %q: %w", name, err)
		}
		if err := reg.Register(name, cfg); err != nil {
			return planner.Settings{}, nil, fmt.Errorf("profile: config %q: %w", name, err)
		}
	}

	return settings, reg, nil
}

// applyEnvOverrides replaces any SettingsFile field whose matching
// LAYERPLAN_-prefixed environment variable is set, e.g.
// LAYERPLAN_RETRACT_MIN_UM overrides retract_min_um.
func applyEnvOverrides(s *SettingsFile) {
	v := viper.New()
	v.SetEnvPrefix("LAYERPLAN")
	v.AutomaticEnv()

	bindFloat := func(key string, dst *float64) {
		_ = v.BindEnv(key)
		if v.IsSet(key) {
			*dst = v.GetFloat64(key)
		}
	}
	bindInt := func(key string, dst *int) {
		_ = v.BindEnv(key)
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}
	bindInt64 := func(key string, dst *int64) {
		_ = v.BindEnv(key)
		if v.IsSet(key) {
			*dst = v.GetInt64(key)
		}
	}

	bindFloat("min_layer_time_s", &s.MinLayerTimeS)
	bindFloat("min_print_speed", &s.MinPrintSpeed)
	bindFloat("min_fan_speed_layer_time", &s.MinFanSpeedLayerTime)
	bindFloat("max_fan_speed_layer_time", &s.MaxFanSpeedLayerTime)
	bindInt("fan_min_percent", &s.FanMinPercent)
	bindInt("fan_max_percent", &s.FanMaxPercent)
	bindInt("first_layer_allow_fan", &s.FirstLayerAllowFan)
	bindInt64("retract_min_um", &s.RetractMinUM)
	bindFloat("perimeter_overlap_ratio", &s.PerimeterOverlapRatio)
	bindFloat("travel_speed_mm_per_s", &s.TravelSpeedMMPerS)
}
