package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultOverridePath is read at startup when it exists.
const DefaultOverridePath = "emberveil.yaml"

// Override is the optional YAML file that adjusts the built-in defaults.
// Zero values leave the corresponding default untouched.
type Override struct {
	Server  string          `yaml:"server"`
	Window  WindowOverride  `yaml:"window"`
	Camera  CameraOverride  `yaml:"camera"`
	Fog     FogOverride     `yaml:"fog"`
	Input   InputOverride   `yaml:"input"`
	Audio   AudioOverride   `yaml:"audio"`
	Discord DiscordOverride `yaml:"discord"`
}

type WindowOverride struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type CameraOverride struct {
	Smoothing float64 `yaml:"smoothing"`
}

type FogOverride struct {
	ExploredAlpha float64  `yaml:"explored_alpha"`
	LightRadius   float64  `yaml:"light_radius"`
	Noise         *float64 `yaml:"noise"`
}

type InputOverride struct {
	Deadzone      float64 `yaml:"deadzone"`
	NavIntervalMS int     `yaml:"nav_interval_ms"`
}

type AudioOverride struct {
	Music *float64 `yaml:"music"`
	SFX   *float64 `yaml:"sfx"`
}

type DiscordOverride struct {
	AppID string `yaml:"app_id"`
}

// LoadOverride reads an override file.
func LoadOverride(path string) (*Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	o := &Override{}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return o, nil
}

// Apply writes the set fields into the global configuration.
func (o *Override) Apply() {
	if o.Server != "" {
		Net.ServerAddr = o.Server
	}
	if o.Window.Width > 0 && o.Window.Height > 0 {
		C.Width = o.Window.Width
		C.Height = o.Window.Height
	}
	if o.Camera.Smoothing > 0 && o.Camera.Smoothing <= 1 {
		Camera.FollowSmoothing = o.Camera.Smoothing
	}
	if o.Fog.ExploredAlpha > 0 {
		Fog.ExploredAlpha = min(o.Fog.ExploredAlpha, 1)
	}
	if o.Fog.LightRadius > 0 {
		Fog.LightRadius = o.Fog.LightRadius
	}
	if o.Fog.Noise != nil {
		Fog.NoiseAlpha = *o.Fog.Noise
	}
	if o.Input.Deadzone > 0 && o.Input.Deadzone < 1 {
		Input.AnalogDeadzone = o.Input.Deadzone
	}
	if o.Input.NavIntervalMS > 0 {
		Input.NavInterval = time.Duration(o.Input.NavIntervalMS) * time.Millisecond
	}
	if o.Audio.Music != nil {
		Audio.DefaultMusicVol = *o.Audio.Music
	}
	if o.Audio.SFX != nil {
		Audio.DefaultSFXVol = *o.Audio.SFX
	}
	if o.Discord.AppID != "" {
		Desktop.DiscordAppID = o.Discord.AppID
	}
}
