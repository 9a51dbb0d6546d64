package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sdiehl/ipython/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Marshal encodes the configuration as "toml" or "yaml", using the same keys
// the loader reads. Keys are sorted.
func (c *Config) Marshal(format string) ([]byte, error) {
	data := c.toMap()
	switch strings.ToLower(format) {
	case "toml", "":
		out, err := toml.Marshal(data)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "encoding toml")
		}
		return out, nil
	case "yaml", "yml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "encoding yaml")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
}

func (c *Config) toMap() map[string]interface{} {
	return map[string]interface{}{
		"output": map[string]interface{}{
			"format": c.Output.Format,
		},
		"console": map[string]interface{}{
			"markdown_style": c.Console.MarkdownStyle,
			"width":          c.Console.Width,
		},
		"fetch": map[string]interface{}{
			"timeout":    c.Fetch.Timeout.String(),
			"user_agent": c.Fetch.UserAgent,
		},
		"image": map[string]interface{}{
			"default_format": c.Image.DefaultFormat,
			"embed":          c.Image.Embed,
		},
	}
}
