package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

var errKeyNotFound = errors.New("key not found")

// NewKVCommand creates the kv command group.
func NewKVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Manage key-value storage",
		Long:  "Work with key-value namespaces, keys, and values",
	}

	cmd.AddCommand(newKVNamespacesCommand())
	cmd.AddCommand(newKVKeysCommand())
	cmd.AddCommand(newKVGetCommand())
	cmd.AddCommand(newKVPutCommand())
	cmd.AddCommand(newKVDeleteCommand())

	return cmd
}

func newKVNamespacesCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "namespaces ACCOUNT_ID",
		Short: "List namespaces",
		Long:  "List the key-value namespaces of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var namespaces []edge.KVNamespace

			if allPages {
				namespaces, err = client.KV().ListNamespacesAll(ctx, args[0], nil).All()
				if err != nil {
					return fmt.Errorf("listing namespaces: %w", err)
				}
			} else {
				result, err := client.KV().ListNamespaces(ctx, args[0], nil)
				if err != nil {
					return fmt.Errorf("listing namespaces: %w", err)
				}

				namespaces = result.Items
			}

			structured, err := renderStructured(namespaces)
			if structured || err != nil {
				return err
			}

			if len(namespaces) == 0 {
				fmt.Fprintln(os.Stdout, "No namespaces found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "URL Encoding")

			for _, namespace := range namespaces {
				_ = table.Append(namespace.ID, namespace.Title, boolWord(namespace.SupportsURLEncoding))
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

func newKVKeysCommand() *cobra.Command {
	var (
		allPages bool
		prefix   string
	)

	cmd := &cobra.Command{
		Use:   "keys ACCOUNT_ID NAMESPACE_ID",
		Short: "List keys",
		Long:  "List the keys of a namespace",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := edge.NewListOptions()
			if prefix != "" {
				opts.WithFilter("prefix", prefix)
			}

			var keys []edge.KVKey

			if allPages {
				keys, err = client.KV().ListKeysAll(ctx, args[0], args[1], opts).All()
				if err != nil {
					return fmt.Errorf("listing keys: %w", err)
				}
			} else {
				result, err := client.KV().ListKeys(ctx, args[0], args[1], opts)
				if err != nil {
					return fmt.Errorf("listing keys: %w", err)
				}

				keys = result.Items
			}

			structured, err := renderStructured(keys)
			if structured || err != nil {
				return err
			}

			if len(keys) == 0 {
				fmt.Fprintln(os.Stdout, "No keys found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Expiration")

			for _, key := range keys {
				expiration := "never"
				if key.Expiration > 0 {
					expiration = time.Unix(key.Expiration, 0).UTC().Format(time.RFC3339)
				}

				_ = table.Append(key.Name, expiration)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&prefix, "prefix", "", "filter keys by prefix")

	return cmd
}

func newKVGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID NAMESPACE_ID KEY",
		Short: "Read a value",
		Long:  "Read a single value from a namespace",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.KV().BulkGet(context.Background(), args[0], args[1], &edge.KVBulkGetRequest{
				Keys: []string{args[2]},
			})
			if err != nil {
				return fmt.Errorf("reading value: %w", err)
			}

			value, ok := result.Values[args[2]]
			if !ok {
				return fmt.Errorf("%w: %s", errKeyNotFound, args[2])
			}

			fmt.Fprintln(os.Stdout, string(value))

			return nil
		},
	}
}

func newKVPutCommand() *cobra.Command {
	var ttl int64

	cmd := &cobra.Command{
		Use:   "put ACCOUNT_ID NAMESPACE_ID KEY VALUE",
		Short: "Write a value",
		Long:  "Write a value to a namespace, optionally with an expiration",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.KV().Write(context.Background(), args[0], args[1], args[2], &edge.KVWriteRequest{
				Value:         args[3],
				ExpirationTTL: ttl,
			})
			if err != nil {
				return fmt.Errorf("writing value: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Wrote key '%s'\n", args[2])

			return nil
		},
	}

	cmd.Flags().Int64Var(&ttl, "ttl", 0, "expiration TTL in seconds, 0 for none")

	return cmd
}

func newKVDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ACCOUNT_ID NAMESPACE_ID KEY",
		Short: "Delete a key",
		Long:  "Delete a key and its value from a namespace",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Really delete key '%s'?", args[2]), force) {
				fmt.Fprintln(os.Stdout, "Cancelled")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.KV().Delete(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("deleting key: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted key '%s'\n", args[2])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
