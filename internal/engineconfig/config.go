// Package engineconfig handles view-engine configuration loading from
// TOML files and environment variables, adapted from the host
// application's own provider-configuration loader.
package engineconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root engine configuration structure.
type Config struct {
	Buffer BufferConfig `toml:"buffer"`
	UI     UIConfig     `toml:"ui"`
}

// BufferConfig holds per-buffer editing settings.
type BufferConfig struct {
	TabSize               int  `toml:"tab_size"`
	TranslateTabsToSpaces bool `toml:"translate_tabs_to_spaces"`
	AutoIndent            bool `toml:"auto_indent"`
	WordWrap              bool `toml:"word_wrap"`
	WrapWidth             int  `toml:"wrap_width"`
	ScrollPastEnd         bool `toml:"scroll_past_end"`
	UndoCapacity          int  `toml:"undo_capacity"`
}

// TabSizeOrDefault returns the configured tab size or 4 if unset.
func (b BufferConfig) TabSizeOrDefault() int {
	if b.TabSize <= 0 {
		return 4
	}
	return b.TabSize
}

// UndoCapacityOrDefault returns the configured undo-stack capacity or
// 40 if unset.
func (b BufferConfig) UndoCapacityOrDefault() int {
	if b.UndoCapacity <= 0 {
		return 40
	}
	return b.UndoCapacity
}

// UIConfig holds host-presentation settings.
type UIConfig struct {
	SyntaxTheme string  `toml:"syntax_theme"`
	FontFace    string  `toml:"font_face"`
	FontSize    float64 `toml:"font_size"`
}

// SyntaxThemeOrDefault returns the configured syntax theme or
// "vulcan" if unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return "vulcan"
	}
	return u.SyntaxTheme
}

// FontFaceOrDefault returns the configured font face or "Inconsolata"
// if unset.
func (u UIConfig) FontFaceOrDefault() string {
	if u.FontFace == "" {
		return "Inconsolata"
	}
	return u.FontFace
}

// FontSizeOrDefault returns the configured font size or 14.0 if unset.
func (u UIConfig) FontSizeOrDefault() float64 {
	if u.FontSize <= 0 {
		return 14.0
	}
	return u.FontSize
}

// Default returns a Config populated entirely with defaults, for
// hosts that don't ship a config file.
func Default() *Config {
	return &Config{}
}

// Load reads configuration from a TOML file and applies environment
// variable overrides. An empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("engine config file not found: %s", path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Buffer.TabSize < 0 {
		errs = append(errs, errors.New("buffer.tab_size: must not be negative"))
	}
	if c.Buffer.WrapWidth < 0 {
		errs = append(errs, errors.New("buffer.wrap_width: must not be negative"))
	}
	if c.Buffer.UndoCapacity < 0 {
		errs = append(errs, errors.New("buffer.undo_capacity: must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VIEWENGINE_SYNTAX_THEME"); v != "" {
		cfg.UI.SyntaxTheme = v
	}
	if v := os.Getenv("VIEWENGINE_TAB_SIZE"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			cfg.Buffer.TabSize = n
		}
	}
}
