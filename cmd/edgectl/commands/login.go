package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/edgewise-io/edgeapi/pkg/edge"
	"github.com/edgewise-io/edgeapi/pkg/edgeclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		apiToken    string
		apiKey      string
		apiEmail    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the API",
		Long:  "Verify credentials against the API endpoint and persist them for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				apiEndpoint = loadConfig().APIEndpoint
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Fprint(os.Stdout, "API endpoint: ")

				line, _ := reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(line)
			}

			if apiEndpoint == "" {
				return edge.ErrEndpointRequired
			}

			if apiToken == "" && apiKey == "" {
				token, err := promptForToken()
				if err != nil {
					return err
				}

				apiToken = token
			}

			config := &edge.Config{
				APIEndpoint: apiEndpoint,
				APIToken:    apiToken,
				APIKey:      apiKey,
				APIEmail:    apiEmail,
			}

			client, err := edgeclient.New(config)
			if err != nil {
				return err
			}

			status, err := client.VerifyToken(context.Background())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			saved := loadConfig()
			saved.APIEndpoint = apiEndpoint
			saved.APIToken = apiToken
			saved.APIKey = apiKey
			saved.APIEmail = apiEmail

			err = saveConfig(saved)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Authenticated with %s (token status: %s)\n", apiEndpoint, status.Status)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&apiToken, "token", "t", "", "API token")
	cmd.Flags().StringVar(&apiKey, "key", "", "legacy API key (requires --email)")
	cmd.Flags().StringVar(&apiEmail, "email", "", "account email for --key")

	return cmd
}

// promptForToken reads a token from the terminal without echoing it.
func promptForToken() (string, error) {
	fmt.Fprint(os.Stdout, "API token: ")

	data, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Fprintln(os.Stdout)

	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Remove stored credentials from the config file, keeping the endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIToken = ""
			config.APIKey = ""
			config.APIEmail = ""

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Logged out")

			return nil
		},
	}
}
