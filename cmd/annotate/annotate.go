// Package annotatecmder provides the root annotate command: invoked with
// text it appends one timestamped annotation, invoked bare it opens the
// interactive annotation list.
package annotatecmder

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	configcmder "github.com/marginaliaco/annotate/cmd/annotate/config"
	versioncmder "github.com/marginaliaco/annotate/cmd/version"
	"github.com/marginaliaco/annotate/pkg/annotation"
	"github.com/marginaliaco/annotate/pkg/config"
	"github.com/marginaliaco/annotate/pkg/logger"
	"github.com/marginaliaco/annotate/pkg/store/flatfile"
	"github.com/marginaliaco/annotate/pkg/storepath"
)

const annotateLongDesc string = `Annotate is a personal annotation jotting tool.

With text arguments, appends one timestamped annotation:
  annotate remember to water the plants

With no arguments, opens the interactive annotation list where entries can
be reviewed and deleted (enter to delete, with confirmation; q to quit).

Annotations live in a flat text file, one per line, resolved in this order:
the --file flag, the ANNOTATE_FILE environment variable, the storage.path
config key, then ~/.annotations.`

const annotateShortDesc string = "Annotate - timestamped personal notes"

func NewAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate [text...]",
		Short: annotateShortDesc,
		Long:  annotateLongDesc,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			jsonLogs, _ := cmd.Flags().GetBool("json")
			file, _ := cmd.Flags().GetString("file")
			configDir, _ := cmd.Flags().GetString("config-dir")

			log := logger.New(
				logger.WithDebug(debug),
				logger.WithPretty(!jsonLogs),
				logger.WithJSON(jsonLogs),
			)

			path, previewWidth, err := resolveStore(file, configDir)
			if err != nil {
				return err
			}
			log.Debug("resolved annotation store", "path", path)

			driver := flatfile.NewDriver(path)
			defer driver.Close()

			if len(args) > 0 {
				return runAnnotate(cmd, driver, strings.Join(args, " "), log)
			}

			return runList(cmd, driver, previewWidth, log)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	cmd.PersistentFlags().StringP("file", "f", "", "Annotations file (default ~/.annotations)")
	cmd.PersistentFlags().String("config-dir", "", "Config directory (default .annotate/ or ~/.annotate/)")

	// Add subcommands
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}

// resolveStore determines the store file path and UI settings. Flag beats
// the ANNOTATE_* environment, which beats config.toml, which beats the
// ~/.annotations default.
func resolveStore(fileFlag, configDir string) (path string, previewWidth int, err error) {
	v, err := config.InitViper(configDir)
	if err != nil {
		return "", 0, err
	}

	override := fileFlag
	if override == "" {
		override = v.GetString("storage.path")
	}

	path, err = storepath.Resolve(override)
	if err != nil {
		return "", 0, err
	}

	return path, int(v.GetUint("ui.preview_width")), nil
}

func runAnnotate(cmd *cobra.Command, driver *flatfile.Driver, content string, log *slog.Logger) error {
	a := annotation.New(content)
	if err := driver.Append(cmd.Context(), a); err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	log.Debug("annotation appended", "path", driver.Path(), "created_at", a.CreatedAt)
	return nil
}

func runList(cmd *cobra.Command, driver *flatfile.Driver, previewWidth int, log *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the interactive annotation list requires a terminal")
	}

	annotations, err := driver.Load(cmd.Context())
	if err != nil {
		return err
	}
	log.Debug("annotation store loaded", "path", driver.Path(), "records", len(annotations))

	return runListTUI(cmd.Context(), driver, annotations, previewWidth)
}
