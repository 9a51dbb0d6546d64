package ipydisplay

import (
	"github.com/sdiehl/ipython/pkg/config"
	"github.com/sdiehl/ipython/pkg/display"
	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/fetch"
	"github.com/sdiehl/ipython/pkg/filesystem"
	"github.com/sdiehl/ipython/pkg/formatter"
	"github.com/sdiehl/ipython/pkg/logging"
	"github.com/sdiehl/ipython/pkg/publisher"
	"github.com/sdiehl/ipython/pkg/types"
	"github.com/spf13/cobra"
)

// session is the display stack assembled for one command run
type session struct {
	cfg       *config.Config
	displayer *display.Displayer
	fs        types.FS
	fetcher   types.Fetcher
}

// loadConfig builds the configuration with the global flags as the last
// layer and installs it as the global config.Get returns.
func loadConfig(cmd *cobra.Command, opts *globalOptions) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("output") {
		overrides["output.format"] = opts.output
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	config.Initialize(cfg)
	return nil
}

func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	logger := logging.GetLogger("cmd.session")

	if err := loadConfig(cmd, opts); err != nil {
		return nil, err
	}
	cfg := config.Get()

	format, err := publisher.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	pub, err := publisher.New(format, cmd.OutOrStdout(), cmd.ErrOrStderr(), publisher.Options{
		MarkdownStyle: cfg.Console.MarkdownStyle,
		Width:         cfg.Console.Width,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "creating publisher")
	}

	logger.Debug().
		Str("output", format.String()).
		Dur("fetch_timeout", cfg.Fetch.Timeout).
		Msg("Display session ready")

	return &session{
		cfg:       cfg,
		displayer: display.New(formatter.New(), pub),
		fs:        filesystem.NewOS(),
		fetcher: fetch.New(fetch.Options{
			Timeout:   cfg.Fetch.Timeout,
			UserAgent: cfg.Fetch.UserAgent,
		}),
	}, nil
}
