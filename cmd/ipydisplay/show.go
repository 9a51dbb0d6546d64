package ipydisplay

import (
	"fmt"
	"io"
	"strings"

	"github.com/sdiehl/ipython/pkg/display"
	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/filesystem"
	"github.com/sdiehl/ipython/pkg/logging"
	"github.com/sdiehl/ipython/pkg/mime"
	"github.com/spf13/cobra"
)

// Kinds accepted by show --kind, in help order
var kindNames = []string{"pretty", "html", "markdown", "latex", "svg", "json", "javascript", "image"}

type showFlags struct {
	kind        string
	raw         bool
	embed       bool
	imageFormat string
	include     []string
	exclude     []string
}

// textBuilders create the display object for every kind except image
var textBuilders = map[string]func(display.Options) (interface{}, error){
	"pretty":     func(o display.Options) (interface{}, error) { return display.NewPretty(o) },
	"html":       func(o display.Options) (interface{}, error) { return display.NewHTML(o) },
	"markdown":   func(o display.Options) (interface{}, error) { return display.NewMarkdown(o) },
	"latex":      func(o display.Options) (interface{}, error) { return display.NewMath(o) },
	"svg":        func(o display.Options) (interface{}, error) { return display.NewSVG(o) },
	"json":       func(o display.Options) (interface{}, error) { return display.NewJSON(o) },
	"javascript": func(o display.Options) (interface{}, error) { return display.NewJavascript(o) },
}

// rawPublishers send loaded bytes through the matching Display<Format> wrapper
var rawPublishers = map[string]func(d *display.Displayer, data []byte) error{
	"pretty":     func(d *display.Displayer, data []byte) error { return d.DisplayPretty(true, data) },
	"html":       func(d *display.Displayer, data []byte) error { return d.DisplayHTML(true, data) },
	"markdown":   func(d *display.Displayer, data []byte) error { return d.DisplayMarkdown(true, data) },
	"latex":      func(d *display.Displayer, data []byte) error { return d.DisplayLatex(true, data) },
	"svg":        func(d *display.Displayer, data []byte) error { return d.DisplaySVG(true, data) },
	"json":       func(d *display.Displayer, data []byte) error { return d.DisplayJSON(true, data) },
	"javascript": func(d *display.Displayer, data []byte) error { return d.DisplayJavascript(true, data) },
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:     "show SOURCE...",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return runShow(cmd, s, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.kind, "kind", "k", "pretty", fmt.Sprintf(MsgFlagKind, strings.Join(kindNames, ", ")))
	cmd.Flags().BoolVar(&flags.raw, "raw", false, MsgFlagRaw)
	cmd.Flags().BoolVar(&flags.embed, "embed", false, MsgFlagEmbed)
	cmd.Flags().StringVar(&flags.imageFormat, "image-format", "", MsgFlagImageFormat)
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, MsgFlagInclude)
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, MsgFlagExclude)
	_ = cmd.RegisterFlagCompletionFunc("kind", cobra.FixedCompletions(kindNames, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("image-format", cobra.FixedCompletions(
		[]string{display.FormatPNG, display.FormatJPEG}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func runShow(cmd *cobra.Command, s *session, flags *showFlags, args []string) error {
	kind := strings.ToLower(flags.kind)
	if kind != "image" && textBuilders[kind] == nil {
		return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownKind, flags.kind, strings.Join(kindNames, ", "))
	}

	logger := logging.WithFields(map[string]interface{}{
		"component": "cmd.show",
		"kind":      kind,
	})
	defer logging.LogOperationStart(logger, "show")()

	sources, err := resolveSources(cmd.InOrStdin(), s, args)
	if err != nil {
		return err
	}
	logger.Info().
		Bool("raw", flags.raw).
		Int("sources", len(sources)).
		Msg("Showing sources")

	if flags.raw {
		return showRaw(s, flags, kind, sources)
	}

	objs := make([]interface{}, 0, len(sources))
	for _, src := range sources {
		obj, err := buildObject(s, flags, kind, src)
		if err != nil {
			return err
		}
		objs = append(objs, obj)
	}

	if len(flags.include) == 0 && len(flags.exclude) == 0 {
		return s.displayer.Display(objs...)
	}
	filter := display.Filter{}
	if len(flags.include) > 0 {
		filter.Include = mime.NewSet(flags.include...)
	}
	if len(flags.exclude) > 0 {
		filter.Exclude = mime.NewSet(flags.exclude...)
	}
	return s.displayer.DisplayFiltered(filter, objs...)
}

func buildObject(s *session, flags *showFlags, kind string, src display.Options) (interface{}, error) {
	if kind != "image" {
		return textBuilders[kind](src)
	}
	return display.NewImage(s.imageOptions(flags, src, flags.embed || s.cfg.Image.Embed))
}

// showRaw publishes each source's bytes unformatted. Images are always
// loaded so their bytes can be published.
func showRaw(s *session, flags *showFlags, kind string, sources []display.Options) error {
	for _, src := range sources {
		if kind == "image" {
			img, err := display.NewImage(s.imageOptions(flags, src, true))
			if err != nil {
				return err
			}
			if img.Format == display.FormatJPEG || img.Format == "jpg" {
				err = s.displayer.DisplayJPEG(true, img.Data)
			} else {
				err = s.displayer.DisplayPNG(true, img.Data)
			}
			if err != nil {
				return err
			}
			continue
		}

		data, err := s.read(src)
		if err != nil {
			return err
		}
		if err := rawPublishers[kind](s.displayer, data); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) imageOptions(flags *showFlags, src display.Options, embed bool) display.ImageOptions {
	format := flags.imageFormat
	if format == "" {
		format = s.cfg.Image.DefaultFormat
	}
	return display.ImageOptions{
		Options: src,
		Format:  format,
		Embed:   embed,
	}
}

// read loads a source's bytes the way display objects do
func (s *session) read(src display.Options) ([]byte, error) {
	switch {
	case src.Filename != "":
		data, err := s.fs.ReadFile(src.Filename)
		if err != nil {
			return nil, filesystem.ReadError(err, src.Filename)
		}
		return data, nil
	case src.URL != "":
		return s.fetcher.Fetch(src.URL)
	default:
		return src.Data, nil
	}
}

// resolveSources turns SOURCE arguments into display options. "-" reads
// standard input, http(s) URLs are fetched and anything else is a file.
func resolveSources(stdin io.Reader, s *session, args []string) ([]display.Options, error) {
	sources := make([]display.Options, 0, len(args))
	usedStdin := false

	for _, arg := range args {
		src := display.Options{FS: s.fs, Fetcher: s.fetcher}
		switch {
		case arg == "-":
			if usedStdin {
				return nil, errors.New(errors.ErrInvalidInput, MsgErrStdinTwice)
			}
			usedStdin = true
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadSource, "standard input")
			}
			src.Data = data
		case strings.HasPrefix(arg, "http://"), strings.HasPrefix(arg, "https://"):
			src.URL = arg
		default:
			src.Filename = arg
		}
		sources = append(sources, src)
	}
	return sources, nil
}
