package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage accounts",
		Long:    "List and inspect accounts visible to the configured credentials",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long:  "List accounts visible to the configured credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var accounts []edge.Account

			if allPages {
				accounts, err = client.Accounts().ListAll(ctx, nil).All()
				if err != nil {
					return fmt.Errorf("listing accounts: %w", err)
				}
			} else {
				result, err := client.Accounts().List(ctx, nil)
				if err != nil {
					return fmt.Errorf("listing accounts: %w", err)
				}

				accounts = result.Items
			}

			structured, err := renderStructured(accounts)
			if structured || err != nil {
				return err
			}

			if len(accounts) == 0 {
				fmt.Fprintln(os.Stdout, "No accounts found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Type")

			for _, account := range accounts {
				_ = table.Append(account.ID, account.Name, orNotAvailable(account.Type))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Show account details",
		Long:  "Show the details of a single account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.Accounts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching account: %w", err)
			}

			structured, err := renderStructured(account)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", account.ID)
			_ = table.Append("Name", account.Name)
			_ = table.Append("Type", orNotAvailable(account.Type))

			if account.Settings != nil {
				_ = table.Append("Enforce 2FA", boolWord(account.Settings.EnforceTwoFactor))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
