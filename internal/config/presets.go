package config

import "sort"

// Presets are named viewing configurations. Rates are radians per
// second per rotation plane of the preset's plane set.
var Presets = map[string]*Config{
	"tumble": {
		PlaneSet: "quad", OutDim: 3, Threshold: DefaultThreshold, FPS: 30, Theme: "retro",
		Rates: []float64{0.40, -0.25, 0.15, -0.10},
	},
	"slow": {
		PlaneSet: "quad", OutDim: 3, Threshold: DefaultThreshold, FPS: 30, Theme: "minimal",
		Rates: []float64{0.08, 0.05, 0.03, 0.02},
	},
	"flat": {
		PlaneSet: "dual", OutDim: 2, Threshold: DefaultThreshold, FPS: 30, Theme: "retro",
		Rates: []float64{0.30, -0.20},
	},
	"storm": {
		PlaneSet: "mix", OutDim: 3, Threshold: DefaultThreshold, FPS: 60, Theme: "cyberpunk",
		Rates: []float64{0.90, -0.70, 0.55, -0.45},
	},
	"still": {
		PlaneSet: "quad", OutDim: 3, Threshold: DefaultThreshold, FPS: 30, Theme: "minimal",
		Angles: []float64{0.6, 1.1, -0.4, 0.2},
	},
}

// GetPreset returns the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
