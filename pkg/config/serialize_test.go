package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalLoadsBack(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "text"
	cfg.Console.Width = 90
	cfg.Fetch.Timeout = 1500 * time.Millisecond
	cfg.Image.Embed = true

	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			isolate(t)
			out, err := cfg.Marshal(format)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "dump."+format)
			require.NoError(t, os.WriteFile(path, out, 0644))

			loaded, err := Load(LoadOptions{ConfigFile: path})
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestMarshalFormats(t *testing.T) {
	cfg := Default()

	out, err := cfg.Marshal("")
	require.NoError(t, err)
	assert.Contains(t, string(out), "[fetch]")

	out, err = cfg.Marshal("YAML")
	require.NoError(t, err)
	assert.Contains(t, string(out), "user_agent: ipydisplay")

	_, err = cfg.Marshal("ini")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
