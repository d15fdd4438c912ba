package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Settings holds the runtime options read from the JSON settings file.
type Settings struct {
	WindowWidth  int   `json:"window_width"`
	WindowHeight int   `json:"window_height"`
	Fullscreen   bool  `json:"fullscreen"`
	Resizable    bool  `json:"resizable"`
	TPS          int   `json:"tps"`
	Seed         int64 `json:"seed"` // 0 picks a time-based seed

	PageHeight int     `json:"page_height"` // scrollable document height in pixels
	ScrollStep float64 `json:"scroll_step"` // pixels per wheel notch or arrow key

	ShowGrid     bool `json:"show_grid"`
	ShowGradient bool `json:"show_gradient"`
	ShowHUD      bool `json:"show_hud"`
}

// NewDefault returns the settings used when no file is present.
func NewDefault() *Settings {
	return &Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		Resizable:    true,
		TPS:          60,
		PageHeight:   4000,
		ScrollStep:   40,
		ShowGrid:     true,
		ShowGradient: true,
	}
}

// Validate reports the first setting that cannot be used.
func (s *Settings) Validate() error {
	switch {
	case s.WindowWidth <= 0 || s.WindowHeight <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", s.WindowWidth, s.WindowHeight)
	case s.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", s.TPS)
	case s.PageHeight <= 0:
		return errors.Errorf("page_height must be positive, got %d", s.PageHeight)
	case s.ScrollStep < 0:
		return errors.Errorf("scroll_step must not be negative, got %v", s.ScrollStep)
	}
	return nil
}

// Load reads settings from filename. A missing file yields the defaults.
// Fields absent from the file keep their default values.
func Load(filename string) (*Settings, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, errors.Wrap(err, "open settings")
	}
	defer file.Close()

	s := NewDefault()
	if err := json.NewDecoder(file).Decode(s); err != nil {
		return nil, errors.Wrapf(err, "decode settings %s", filename)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid settings %s", filename)
	}
	return s, nil
}

// Save writes s to filename as indented JSON.
func Save(s *Settings, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create settings")
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return errors.Wrapf(err, "encode settings %s", filename)
	}
	return nil
}
