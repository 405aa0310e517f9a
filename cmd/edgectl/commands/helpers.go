package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/edgewise-io/edgeapi/internal/constants"
	"github.com/edgewise-io/edgeapi/pkg/edge"
	"github.com/edgewise-io/edgeapi/pkg/edgeclient"
)

// defaultJSONIndent is the indent width for JSON output.
const defaultJSONIndent = "  "

// CreateClient builds an API client from flags, environment variables, and
// the saved config file, in that order of precedence.
func CreateClient() (edge.Client, error) {
	config := loadConfig()

	endpoint := viper.GetString("api")
	if endpoint == "" {
		endpoint = config.APIEndpoint
	}

	token := viper.GetString("token")
	if token == "" {
		token = config.APIToken
	}

	clientConfig := &edge.Config{
		APIEndpoint: endpoint,
		APIToken:    token,
		APIKey:      config.APIKey,
		APIEmail:    config.APIEmail,
		Debug:       viper.GetBool("verbose"),
	}

	client, err := edgeclient.New(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// outputFormat returns the requested output format, defaulting to table.
func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}

// renderStructured writes data as JSON or YAML and reports whether the
// requested format was structured. Table rendering stays with the caller.
func renderStructured(data interface{}) (bool, error) {
	switch outputFormat() {
	case constants.FormatJSON:
		return true, renderJSON(data)
	case constants.FormatYAML:
		return true, renderYAML(data)
	default:
		return false, nil
	}
}

// confirmAction prompts for a y/N answer unless force is set.
func confirmAction(prompt string, force bool) bool {
	if force {
		return true
	}

	fmt.Fprintf(os.Stdout, "%s (y/N): ", prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// boolWord renders a boolean as yes/no for table cells.
func boolWord(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// orNotAvailable substitutes the N/A marker for empty table cells.
func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// itoa is a shorthand for table cells holding numbers.
func itoa(value int) string {
	return strconv.Itoa(value)
}
