// Package configcmder provides the config command for managing persistent
// annotate configuration stored in the .annotate/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent annotate configuration.

Configuration is stored as config.toml in the .annotate/ directory and
provides default values for command flags. CLI flags always take precedence
over config file values.

Keys use dotted notation matching the TOML section structure:
  storage.path, ui.preview_width

Use subcommands to get, set, or list configuration values:
  annotate config set <key> <value>    Set a configuration value
  annotate config get <key>            Get a configuration value
  annotate config list                 List all configuration values

Examples:
  annotate config set storage.path ~/notes/.annotations
  annotate config get storage.path
  annotate config list`

const configShortDesc string = "Manage persistent annotate configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
