package ipydisplay

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render rich display objects in the terminal"
	MsgShowShort       = "Display files or URLs as rich objects"
	MsgClearShort      = "Clear the output area"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "ipydisplay version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrUnknownKind = "unknown kind %q (want one of %s)"
	MsgErrReadSource  = "failed to read %s"
	MsgErrStdinTwice  = "standard input can only be used once"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput      = "Output front-end: auto, term, text or json"
	MsgFlagConfig      = "Config file to load after the user config"
	MsgFlagKind        = "Kind of display object: %s"
	MsgFlagRaw         = "Publish the data as-is instead of formatting it"
	MsgFlagEmbed       = "Embed image data instead of referencing the URL"
	MsgFlagImageFormat = "Image format when the source has no extension (png or jpeg)"
	MsgFlagInclude     = "Only compute these MIME types"
	MsgFlagExclude     = "Never compute these MIME types"
	MsgFlagStdout      = "Clear standard output"
	MsgFlagStderr      = "Clear standard error"
	MsgFlagOther       = "Clear other output"
	MsgFlagConfigFmt   = "Encoding: toml or yaml"
	MsgFlagDefaults    = "Print the built-in defaults file instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/clear-long.txt
	msgClearLongRaw string
	MsgClearLong    = strings.TrimSpace(msgClearLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
