package config

import (
	"fmt"
	"slices"
	"strings"

	"nathanbeddoewebdev/hue/internal/config"
	"nathanbeddoewebdev/hue/internal/palette/export"
	"nathanbeddoewebdev/hue/internal/palette/storage"
	"nathanbeddoewebdev/hue/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value restores the default.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  hue config set storage-backend sqlite\n" +
			"  hue config set export-format css",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

// choices maps key names to the values they accept.
var choices = map[string]func() []string{
	"storage-backend": storage.Backends,
	"export-format":   export.Names,
}

// validators maps key names to pre-save validation functions.
// Keys not present in this map have no extra validation.
var validators = map[string]func(value string) error{
	"storage-backend": oneOf("storage backend", choices["storage-backend"]),
	"export-format":   oneOf("export format", choices["export-format"]),
}

// choicesFor returns the accepted values for key, or nil when it has none.
func choicesFor(key string) []string {
	if known, ok := choices[key]; ok {
		return known()
	}
	return nil
}

// validate runs the validator registered for key, if any. Empty values are
// always accepted and mean "use the default".
func validate(key, value string) error {
	check, ok := validators[key]
	if !ok || value == "" {
		return nil
	}
	return check(value)
}

func oneOf(what string, known func() []string) func(string) error {
	return func(value string) error {
		names := known()
		if slices.Contains(names, value) {
			return nil
		}
		return fmt.Errorf("unknown %s %q (valid: %s)", what, value, strings.Join(names, ", "))
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	key := util.NormalizeKey(args[0])

	spec := config.Lookup(key)
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	normalized := util.NormalizeKey(args[1])
	if err := validate(spec.Name, normalized); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	spec.Set(cfg, normalized)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, normalized)
	return nil
}
