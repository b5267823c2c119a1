package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/devsetup/internal/launchers"
	"github.com/conn-castle/devsetup/internal/messages"
)

var launcherSystem launchers.System = launchers.RealSystem{}

func newInitCmd(opts *rootOptions) *cobra.Command {
	var dir string
	var name string

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Long:  messages.InitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logger, err := getLogger(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, _, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.InitConfigReadyFmt, store.Path)

			_, err = launchers.InstallSelf(launcherSystem, launchers.Options{
				Dir:  dir,
				Name: name,
				Out:  out,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&dir, flagDir, launchers.DefaultDir, messages.InitFlagDir)
	cmd.Flags().StringVar(&name, flagName, launchers.DefaultName, messages.InitFlagName)
	return cmd
}
