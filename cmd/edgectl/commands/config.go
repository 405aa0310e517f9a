package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/edgewise-io/edgeapi/internal/constants"
)

// Config is the CLI state persisted under ~/.edgectl/config.yml.
type Config struct {
	APIEndpoint string `yaml:"api_endpoint,omitempty"`
	APIToken    string `yaml:"api_token,omitempty"`
	APIKey      string `yaml:"api_key,omitempty"`
	APIEmail    string `yaml:"api_email,omitempty"`
	Output      string `yaml:"output,omitempty"`
}

var errUnknownConfigKey = errors.New("unknown config key")

// configFilePath returns the path of the persisted config file.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".edgectl", "config.yml"), nil
}

// loadConfig reads the persisted config, returning an empty config when the
// file does not exist or cannot be parsed.
func loadConfig() *Config {
	config := &Config{}

	path, err := configFilePath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

// saveConfig writes the config file, creating the directory if needed.
func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted edgectl configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  "Display the persisted configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			masked := *config
			if masked.APIToken != "" {
				masked.APIToken = constants.MaskedSecret
			}

			if masked.APIKey != "" {
				masked.APIKey = constants.MaskedSecret
			}

			structured, err := renderStructured(masked)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Setting", "Value")
			_ = table.Append("api_endpoint", orNotAvailable(masked.APIEndpoint))
			_ = table.Append("api_token", orNotAvailable(masked.APIToken))
			_ = table.Append("api_key", orNotAvailable(masked.APIKey))
			_ = table.Append("api_email", orNotAvailable(masked.APIEmail))
			_ = table.Append("output", orNotAvailable(masked.Output))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := applyConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value and persist the change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := applyConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Unset %s\n", args[0])

			return nil
		},
	}
}

func applyConfigValue(config *Config, key, value string) error {
	switch key {
	case "api_endpoint":
		config.APIEndpoint = value
	case "api_token":
		config.APIToken = value
	case "api_key":
		config.APIKey = value
	case "api_email":
		config.APIEmail = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %s", errUnknownConfigKey, key)
	}

	return nil
}
