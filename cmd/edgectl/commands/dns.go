package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// NewDNSCommand creates the dns command group.
func NewDNSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dns",
		Aliases: []string{"records"},
		Short:   "Manage DNS records",
		Long:    "List, create, update, and delete DNS records within a zone",
	}

	cmd.AddCommand(newDNSListCommand())
	cmd.AddCommand(newDNSCreateCommand())
	cmd.AddCommand(newDNSUpdateCommand())
	cmd.AddCommand(newDNSDeleteCommand())

	return cmd
}

func newDNSListCommand() *cobra.Command {
	var (
		allPages   bool
		recordType string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "list ZONE_ID",
		Short: "List DNS records",
		Long:  "List the DNS records of a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := edge.NewListOptions()
			if recordType != "" {
				opts.WithFilter("type", recordType)
			}

			if name != "" {
				opts.WithFilter("name", name)
			}

			var records []edge.DNSRecord

			if allPages {
				records, err = client.DNSRecords().ListAll(ctx, args[0], opts).All()
				if err != nil {
					return fmt.Errorf("listing DNS records: %w", err)
				}
			} else {
				result, err := client.DNSRecords().List(ctx, args[0], opts)
				if err != nil {
					return fmt.Errorf("listing DNS records: %w", err)
				}

				records = result.Items
			}

			structured, err := renderStructured(records)
			if structured || err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Fprintln(os.Stdout, "No DNS records found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Type", "Name", "Content", "TTL", "Proxied")

			for _, record := range records {
				proxied := false
				if record.Proxied != nil {
					proxied = *record.Proxied
				}

				_ = table.Append(record.ID, record.Type, record.Name,
					record.Content, itoa(record.TTL), boolWord(proxied))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&recordType, "type", "", "filter by record type")
	cmd.Flags().StringVar(&name, "name", "", "filter by record name")

	return cmd
}

func newDNSCreateCommand() *cobra.Command {
	var (
		recordType string
		name       string
		content    string
		ttl        int
		proxied    bool
		comment    string
	)

	cmd := &cobra.Command{
		Use:   "create ZONE_ID",
		Short: "Create a DNS record",
		Long:  "Create a DNS record in a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &edge.DNSRecordCreateRequest{
				Type:    recordType,
				Name:    name,
				Content: content,
				TTL:     ttl,
				Comment: comment,
			}

			if cmd.Flags().Changed("proxied") {
				request.Proxied = &proxied
			}

			record, err := client.DNSRecords().Create(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("creating DNS record: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created %s record '%s' with ID %s\n", record.Type, record.Name, record.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "record type, e.g. A or CNAME (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "record name (required)")
	cmd.Flags().StringVar(&content, "content", "", "record content (required)")
	cmd.Flags().IntVar(&ttl, "ttl", 1, "TTL in seconds, 1 for automatic")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "route through the edge proxy")
	cmd.Flags().StringVar(&comment, "comment", "", "record comment")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newDNSUpdateCommand() *cobra.Command {
	var (
		content string
		ttl     int
		proxied bool
		comment string
	)

	cmd := &cobra.Command{
		Use:   "update ZONE_ID RECORD_ID",
		Short: "Update a DNS record",
		Long:  "Update a DNS record; only the supplied flags are changed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Only flags the user set are sent, so untouched fields keep
			// their server-side values.
			request := &edge.DNSRecordUpdateRequest{}

			if cmd.Flags().Changed("content") {
				request.Content = &content
			}

			if cmd.Flags().Changed("ttl") {
				request.TTL = &ttl
			}

			if cmd.Flags().Changed("proxied") {
				request.Proxied = &proxied
			}

			if cmd.Flags().Changed("comment") {
				request.Comment = &comment
			}

			record, err := client.DNSRecords().Update(context.Background(), args[0], args[1], request)
			if err != nil {
				return fmt.Errorf("updating DNS record: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Updated %s record '%s'\n", record.Type, record.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "new record content")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "new TTL in seconds")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "route through the edge proxy")
	cmd.Flags().StringVar(&comment, "comment", "", "new record comment")

	return cmd
}

func newDNSDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ZONE_ID RECORD_ID",
		Short: "Delete a DNS record",
		Long:  "Delete a DNS record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Really delete record '%s'?", args[1]), force) {
				fmt.Fprintln(os.Stdout, "Cancelled")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.DNSRecords().Delete(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("deleting DNS record: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted record %s\n", result.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
