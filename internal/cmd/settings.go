package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/sftpbot/internal/config"
	"github.com/renato0307/sftpbot/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Set  SettingsSetCmd  `cmd:"set" help:"Write one setting to settings.json"`
}

// SettingsSetCmd updates a single key in settings.json
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name as shown by settings meta"`
	Value string `arg:"" help:"New value"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing settings set command", "key", s.Key)

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := settings.Set(s.Key, s.Value); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s in %s\n", s.Key, config.GetSettingsPath())
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		data, err := json.Marshal(example[key])
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", key, err)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, data)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure sftpbot.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
