package ipydisplay

import (
	"fmt"

	"github.com/sdiehl/ipython/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprintln(cmd.OutOrStdout(), config.DefaultsContent())
				return nil
			}

			if err := loadConfig(cmd, opts); err != nil {
				return err
			}
			out, err := config.Get().Marshal(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagConfigFmt)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
