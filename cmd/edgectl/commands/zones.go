package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

var errPurgeTargetRequired = errors.New("nothing to purge: use --everything or --file")

// NewZonesCommand creates the zones command group.
func NewZonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zones",
		Aliases: []string{"zone", "z"},
		Short:   "Manage zones",
		Long:    "List, inspect, create, and delete zones",
	}

	cmd.AddCommand(newZonesListCommand())
	cmd.AddCommand(newZonesGetCommand())
	cmd.AddCommand(newZonesCreateCommand())
	cmd.AddCommand(newZonesDeleteCommand())
	cmd.AddCommand(newZonesPurgeCommand())

	return cmd
}

func newZonesListCommand() *cobra.Command {
	var (
		allPages bool
		page     int
		perPage  int
		status   string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List zones",
		Long:  "List zones visible to the configured account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := edge.NewListOptions().WithPage(page).WithPerPage(perPage)
			if status != "" {
				opts.WithFilter("status", status)
			}

			if name != "" {
				opts.WithFilter("name", name)
			}

			var zones []edge.Zone

			if allPages {
				zones, err = client.Zones().ListAll(ctx, opts).All()
				if err != nil {
					return fmt.Errorf("listing zones: %w", err)
				}
			} else {
				result, err := client.Zones().List(ctx, opts)
				if err != nil {
					return fmt.Errorf("listing zones: %w", err)
				}

				zones = result.Items
			}

			structured, err := renderStructured(zones)
			if structured || err != nil {
				return err
			}

			if len(zones) == 0 {
				fmt.Fprintln(os.Stdout, "No zones found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Status", "Type", "Paused")

			for _, zone := range zones {
				_ = table.Append(zone.ID, zone.Name, zone.Status,
					orNotAvailable(zone.Type), boolWord(zone.Paused))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&name, "name", "", "filter by zone name")

	return cmd
}

func newZonesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ZONE_ID",
		Short: "Show zone details",
		Long:  "Show the details of a single zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			zone, err := client.Zones().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching zone: %w", err)
			}

			structured, err := renderStructured(zone)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", zone.ID)
			_ = table.Append("Name", zone.Name)
			_ = table.Append("Status", zone.Status)
			_ = table.Append("Type", orNotAvailable(zone.Type))
			_ = table.Append("Paused", boolWord(zone.Paused))

			if zone.Account != nil {
				_ = table.Append("Account", fmt.Sprintf("%s (%s)", zone.Account.Name, zone.Account.ID))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newZonesCreateCommand() *cobra.Command {
	var (
		name      string
		accountID string
		zoneType  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a zone",
		Long:  "Create a zone under the given account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			zone, err := client.Zones().Create(context.Background(), &edge.ZoneCreateRequest{
				Name:    name,
				Account: edge.ZoneAccount{ID: accountID},
				Type:    zoneType,
			})
			if err != nil {
				return fmt.Errorf("creating zone: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created zone '%s' with ID %s\n", zone.Name, zone.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "zone name (required)")
	cmd.Flags().StringVar(&accountID, "account", "", "owning account ID (required)")
	cmd.Flags().StringVar(&zoneType, "type", "", "zone type (full or partial)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newZonesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ZONE_ID",
		Short: "Delete a zone",
		Long:  "Delete a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Really delete zone '%s'?", args[0]), force) {
				fmt.Fprintln(os.Stdout, "Cancelled")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Zones().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("deleting zone: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted zone %s\n", result.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newZonesPurgeCommand() *cobra.Command {
	var (
		everything bool
		files      []string
	)

	cmd := &cobra.Command{
		Use:   "purge ZONE_ID",
		Short: "Purge cached content",
		Long:  "Purge the zone's cache, either everything or specific files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !everything && len(files) == 0 {
				return errPurgeTargetRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Zones().PurgeCache(context.Background(), args[0], &edge.ZonePurgeRequest{
				PurgeEverything: everything,
				Files:           files,
			})
			if err != nil {
				return fmt.Errorf("purging cache: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Purge request accepted")

			return nil
		},
	}

	cmd.Flags().BoolVar(&everything, "everything", false, "purge the entire cache")
	cmd.Flags().StringSliceVar(&files, "file", nil, "purge a specific file URL (repeatable)")

	return cmd
}
