// Package board describes the display geometry and the strings shown on the
// splash screen of a given board.
package board

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"uf2splash/framebuffer"

	"gopkg.in/yaml.v2"
)

// MaxSide is the largest supported display width or height.
const MaxSide = 1024

// ErrInvalid is returned for unusable board configurations.
var ErrInvalid = errors.New("board: invalid config")

// Config is the per-board screen configuration.
type Config struct {
	// Base names the preset a YAML file starts from.
	Base string `yaml:"base,omitempty"`

	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	Title    string `yaml:"title"`
	Version  string `yaml:"version,omitempty"`
	Hint     string `yaml:"hint"`
	Firmware string `yaml:"firmware"`
	Volume   string `yaml:"volume"`

	Manufacturer string `yaml:"manufacturer,omitempty"`
	Product      string `yaml:"product,omitempty"`
	IndexURL     string `yaml:"index_url,omitempty"`
}

// DefaultName is the preset used when none is given.
const DefaultName = "feathers2"

var presets = map[string]Config{
	"feathers2": {
		Name:         "feathers2",
		Width:        160,
		Height:       128,
		Title:        "FTHRS2",
		Hint:         "circuitpython.org",
		Firmware:     "firmware.uf2",
		Volume:       "UFTHRS2BOOT",
		Manufacturer: "Unexpected Maker",
		Product:      "FeatherS2",
		IndexURL:     "https://circuitpython.org/board/unexpectedmaker_feathers2/",
	},
	"tft240x135": {
		Name:         "tft240x135",
		Width:        240,
		Height:       135,
		Title:        "ESP32-S2",
		Hint:         "circuitpython.org",
		Firmware:     "firmware.uf2",
		Volume:       "TFTS2BOOT",
		Manufacturer: "Adafruit",
		Product:      "Feather ESP32-S2 TFT",
		IndexURL:     "https://circuitpython.org/board/adafruit_feather_esp32s2_tft/",
	},
	"picocalc": {
		Name:         "picocalc",
		Width:        320,
		Height:       320,
		Title:        "PicoCalc",
		Hint:         "circuitpython.org",
		Firmware:     "firmware.uf2",
		Volume:       "PICOBOOT",
		Manufacturer: "ClockworkPi",
		Product:      "PicoCalc",
	},
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named preset.
func Lookup(name string) (Config, bool) {
	c, ok := presets[name]
	return c, ok
}

// Default returns the default preset.
func Default() Config {
	c, _ := Lookup(DefaultName)
	return c
}

// Validate checks that c describes a drawable screen.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %q: empty display %dx%d", ErrInvalid, c.Name, c.Width, c.Height)
	}
	if c.Width > MaxSide || c.Height > MaxSide || c.Width*c.Height > framebuffer.MaxPixels {
		return fmt.Errorf("%w: %q: display %dx%d too large", ErrInvalid, c.Name, c.Width, c.Height)
	}
	return nil
}

// Scale returns the text and icon scale for the display height.
func (c Config) Scale() int {
	if c.Height > 200 {
		return 2
	}
	return 1
}

// Parse decodes a YAML board description. Fields that are not set keep the
// values of the preset named by "base", or of the default preset.
func Parse(data []byte) (Config, error) {
	var head struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("board: parse: %w", err)
	}
	base := head.Base
	if base == "" {
		base = DefaultName
	}
	c, ok := Lookup(base)
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown base %q", ErrInvalid, base)
	}
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("board: parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses a YAML board file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("board: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
