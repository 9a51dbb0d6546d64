package config

import (
	"time"

	"github.com/sdiehl/ipython/pkg/errors"
)

// Config is the complete ipydisplay configuration
type Config struct {
	Output  Output  `koanf:"output"`
	Console Console `koanf:"console"`
	Fetch   Fetch   `koanf:"fetch"`
	Image   Image   `koanf:"image"`
}

// Output selects the publisher
type Output struct {
	// Format is auto, term, text or json
	Format string `koanf:"format"`
}

// Console configures the terminal publisher
type Console struct {
	MarkdownStyle string `koanf:"markdown_style"`
	Width         int    `koanf:"width"`
}

// Fetch configures URL loading
type Fetch struct {
	// Timeout bounds a whole request; 0 waits indefinitely
	Timeout   time.Duration `koanf:"timeout"`
	UserAgent string        `koanf:"user_agent"`
}

// Image holds image display defaults
type Image struct {
	DefaultFormat string `koanf:"default_format"`
	Embed         bool   `koanf:"embed"`
}

var (
	outputFormats = []string{"auto", "term", "text", "json"}
	imageFormats  = []string{"png", "jpeg", "jpg"}
)

// Default returns the built-in configuration, matching embedded/defaults.toml
func Default() *Config {
	return &Config{
		Output: Output{Format: "auto"},
		Console: Console{
			MarkdownStyle: "auto",
		},
		Fetch: Fetch{
			UserAgent: "ipydisplay",
		},
		Image: Image{DefaultFormat: "png"},
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if !oneOf(c.Output.Format, outputFormats) {
		return invalid("output.format", c.Output.Format)
	}
	if c.Console.Width < 0 {
		return invalid("console.width", c.Console.Width)
	}
	if c.Fetch.Timeout < 0 {
		return invalid("fetch.timeout", c.Fetch.Timeout)
	}
	if !oneOf(c.Image.DefaultFormat, imageFormats) {
		return invalid("image.default_format", c.Image.DefaultFormat)
	}
	return nil
}

func invalid(key string, value interface{}) error {
	return errors.Newf(errors.ErrConfigParse, "invalid value %v for %s", value, key).
		WithDetail("key", key)
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
