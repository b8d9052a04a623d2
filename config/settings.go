package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains user-adjustable settings ranges
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
	AppName                string // gdata storage namespace
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		VolumeSteps:            []float64{0, 0.25, 0.5, 0.75, 1.0},
		AppName:                "emberveil",
	}
}

// SnapVolume rounds a volume to the nearest configured step.
func SnapVolume(v float64) float64 {
	best := Settings.VolumeSteps[0]
	for _, s := range Settings.VolumeSteps {
		if abs(s-v) < abs(best-v) {
			best = s
		}
	}
	return best
}

// ResolutionAt returns the resolution at index i, or the default one when i
// is out of range.
func ResolutionAt(i int) Resolution {
	if i < 0 || i >= len(Settings.Resolutions) {
		i = Settings.DefaultResolutionIndex
	}
	return Settings.Resolutions[i]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
