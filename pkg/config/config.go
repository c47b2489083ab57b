// Package config loads backdrop settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/backdrop/config.toml (falling back to
// ~/.config/backdrop/config.toml). Every key is optional; a missing file
// yields [Default]:
//
//	style  = "quantum_ai"
//	width  = 1584
//	height = 396
//	seed   = 0          # 0 picks a fresh seed per render
//	output = "linkedin-background.png"
//	dir    = "backgrounds"
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/backdrop/pkg/errors"
	"github.com/matzehuels/backdrop/pkg/render"
	"github.com/matzehuels/backdrop/pkg/styles"
)

const appName = "backdrop"

// Default canvas size: a LinkedIn profile banner.
const (
	DefaultWidth  = 1584
	DefaultHeight = 396
)

// DefaultDir is where "generate --all" writes when no directory is set.
const DefaultDir = "backgrounds"

// Config holds user settings. Zero values mean "use the default".
type Config struct {
	Style  string `toml:"style"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Seed   uint64 `toml:"seed"`
	Output string `toml:"output"`
	Dir    string `toml:"dir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Style:  styles.DefaultKey,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Output: render.DefaultFilename,
		Dir:    DefaultDir,
	}
}

// SetDefaults fills unset fields from [Default]. Seed is left alone since
// zero is meaningful.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Style == "" {
		c.Style = d.Style
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Dir == "" {
		c.Dir = d.Dir
	}
}

// Validate checks the settings against the built-in style registry.
func (c Config) Validate() error {
	if !styles.Default().Has(c.Style) {
		return errs.New(errs.ErrCodeInvalidConfig, "unknown style %q (valid: %s)",
			c.Style, strings.Join(styles.Default().Keys(), ", "))
	}
	if err := errs.ValidateDimensions(c.Width, c.Height); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "canvas size")
	}
	if err := errs.ValidateOutputPath(c.Output); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "output")
	}
	return nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path, or [DefaultPath] when path is empty, and
// returns it merged over the defaults and validated. A missing file is not
// an error. Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(string(data))
}

// Parse decodes TOML text into a validated Config.
func Parse(data string) (Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
