package profile

// File is the on-disk YAML shape: the layer-level settings plus a named
// table of path configs the caller registers roles against.
type File struct {
	Settings SettingsFile          `yaml:"settings"`
	Configs  map[string]ConfigFile `yaml:"configs"`
}

// SettingsFile mirrors planner.Settings field-for-field; it exists
// separately so YAML tags don't leak into the core package.
type SettingsFile struct {
	MinLayerTimeS         float64 `yaml:"min_layer_time_s"`
	MinPrintSpeed         float64 `yaml:"min_print_speed"`
	MinFanSpeedLayerTime  float64 `yaml:"min_fan_speed_layer_time"`
	MaxFanSpeedLayerTime  float64 `yaml:"max_fan_speed_layer_time"`
	FanMinPercent         int     `yaml:"fan_min_percent"`
	FanMaxPercent         int     `yaml:"fan_max_percent"`
	FirstLayerAllowFan    int     `yaml:"first_layer_allow_fan"`
	RetractMinUM          int64   `yaml:"retract_min_um"`
	PerimeterOverlapRatio float64 `yaml:"perimeter_overlap_ratio"`
	TravelSpeedMMPerS     float64 `yaml:"travel_speed_mm_per_s"`
}

// ConfigFile mirrors the arguments to pathcfg.New.
type ConfigFile struct {
	SpeedMMPerS float64 `yaml:"speed_mm_per_s"`
	LineWidthUM int64   `yaml:"line_width_um"`
	CommentTag  string  `yaml:"comment_tag"`
	ClosedLoop  bool    `yaml:"closed_loop"`
	Spiralize   bool    `yaml:"spiralize"`
}
