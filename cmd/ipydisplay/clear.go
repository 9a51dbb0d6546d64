package ipydisplay

import (
	"github.com/sdiehl/ipython/pkg/display"
	"github.com/spf13/cobra"
)

func newClearCmd(opts *globalOptions) *cobra.Command {
	clearOpts := display.DefaultClearOptions()

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   MsgClearShort,
		Long:    MsgClearLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return s.displayer.ClearOutput(clearOpts)
		},
	}

	cmd.Flags().BoolVar(&clearOpts.Stdout, "stdout", clearOpts.Stdout, MsgFlagStdout)
	cmd.Flags().BoolVar(&clearOpts.Stderr, "stderr", clearOpts.Stderr, MsgFlagStderr)
	cmd.Flags().BoolVar(&clearOpts.Other, "other", clearOpts.Other, MsgFlagOther)

	return cmd
}
