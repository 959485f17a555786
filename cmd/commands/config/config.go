package config

import (
	"nathanbeddoewebdev/hue/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hue configuration",
		Long: "View and modify persistent hue settings.\n\n" +
			"Configuration is stored at ~/.config/hue/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
