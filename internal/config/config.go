package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"

	"github.com/depeter/couchcontrols/internal/controls"
)

const appName = "couchcontrols"

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Controls ControlsConfig `toml:"controls"`
	Playback PlaybackConfig `toml:"playback"`
	UI       UIConfig       `toml:"ui"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

type ServerConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
}

type ControlsConfig struct {
	SeekBarColor string  `toml:"seek_bar_color"`
	ThumbColor   string  `toml:"thumb_color"`
	AutoHide     bool    `toml:"auto_hide"`
	HideTimeout  float64 `toml:"hide_timeout_seconds"`
}

type PlaybackConfig struct {
	HWAccel       string  `toml:"hwdec"`
	AudioLanguage string  `toml:"audio_language"`
	SubLanguage   string  `toml:"sub_language"`
	Volume        int     `toml:"volume"`
	SkipForward   float64 `toml:"skip_forward_seconds"`
	SkipBack      float64 `toml:"skip_back_seconds"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Locale     string `toml:"locale"`
}

// KeybindConfig maps keyboard keys (ebiten key names) to remote keys.
type KeybindConfig struct {
	PlayPause   string `toml:"play_pause"`
	FastForward string `toml:"fast_forward"`
	Rewind      string `toml:"rewind"`
	Select      string `toml:"select"`
	Back        string `toml:"back"`
}

func DefaultConfig() *Config {
	return &Config{
		Controls: ControlsConfig{
			SeekBarColor: "#FFFFFF",
			ThumbColor:   "#FFFFFF",
			AutoHide:     true,
			HideTimeout:  3,
		},
		Playback: PlaybackConfig{
			HWAccel:       "auto-safe",
			AudioLanguage: "eng",
			SubLanguage:   "eng",
			Volume:        100,
			SkipForward:   15,
			SkipBack:      5,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1920,
			Height:     1080,
			Locale:     "en-US",
		},
		Keybinds: KeybindConfig{
			PlayPause:   "Space",
			FastForward: "F",
			Rewind:      "R",
			Select:      "Enter",
			Back:        "Escape",
		},
	}
}

// ConfigDir returns the couchcontrols directory under the XDG config home.
func ConfigDir() (string, error) {
	if xdg.ConfigHome == "" {
		return "", errors.New("no XDG config home")
	}
	return filepath.Join(xdg.ConfigHome, appName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path. A missing file yields defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path over the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// ControlsConfig converts the file settings into a controls.Config.
func (c *Config) ControlsConfig() (controls.Config, error) {
	out := controls.DefaultConfig()

	bar, err := parseColor(c.Controls.SeekBarColor)
	if err != nil {
		return out, fmt.Errorf("seek_bar_color: %w", err)
	}
	thumb, err := parseColor(c.Controls.ThumbColor)
	if err != nil {
		return out, fmt.Errorf("thumb_color: %w", err)
	}
	out.SeekBarColor = bar
	out.ThumbColor = thumb
	out.AutoHide = c.Controls.AutoHide
	if c.Controls.HideTimeout > 0 {
		out.HideTimeout = seconds(c.Controls.HideTimeout)
	}

	if c.UI.Locale != "" {
		tag, err := language.Parse(c.UI.Locale)
		if err != nil {
			return out, fmt.Errorf("locale: %w", err)
		}
		out.Locale = tag
	}
	return out, nil
}

// SkipIncrements returns the forward and backward seek steps.
func (c *Config) SkipIncrements() (forward, back time.Duration) {
	forward, back = 15*time.Second, 5*time.Second
	if c.Playback.SkipForward > 0 {
		forward = seconds(c.Playback.SkipForward)
	}
	if c.Playback.SkipBack > 0 {
		back = seconds(c.Playback.SkipBack)
	}
	return forward, back
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
