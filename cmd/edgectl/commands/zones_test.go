package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spf13/cobra"

	"github.com/edgewise-io/edgeapi/cmd/edgectl/commands"
)

// mustSubcommand returns the named subcommand, failing the test when the
// command tree does not carry it.
func mustSubcommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()

	for _, sub := range parent.Commands() {
		if sub.Name() == name {
			return sub
		}
	}

	t.Fatalf("command %q has no %q subcommand", parent.Name(), name)

	return nil
}

func TestNewZonesCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewZonesCommand()
	assert.Equal(t, "zones", cmd.Use)
	assert.Equal(t, []string{"zone", "z"}, cmd.Aliases)
	assert.Equal(t, "Manage zones", cmd.Short)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 5)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "purge")
}

func TestZonesListCommandFlags(t *testing.T) {
	t.Parallel()

	listCmd := mustSubcommand(t, commands.NewZonesCommand(), "list")

	assert.NotNil(t, listCmd.Flags().Lookup("all"))
	assert.NotNil(t, listCmd.Flags().Lookup("page"))
	assert.NotNil(t, listCmd.Flags().Lookup("per-page"))
	assert.NotNil(t, listCmd.Flags().Lookup("status"))
	assert.NotNil(t, listCmd.Flags().Lookup("name"))
}

func TestZonesCreateCommandRequiresNameAndAccount(t *testing.T) {
	t.Parallel()

	zonesCmd := commands.NewZonesCommand()
	mustSubcommand(t, zonesCmd, "create")

	zonesCmd.SetArgs([]string{"create"})
	zonesCmd.SetOut(new(bytes.Buffer))
	zonesCmd.SetErr(new(bytes.Buffer))

	err := zonesCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestZonesPurgeCommandRejectsEmptyRequest(t *testing.T) {
	t.Parallel()

	zonesCmd := commands.NewZonesCommand()
	mustSubcommand(t, zonesCmd, "purge")

	zonesCmd.SetArgs([]string{"purge", "zone-1"})
	zonesCmd.SetOut(new(bytes.Buffer))
	zonesCmd.SetErr(new(bytes.Buffer))

	err := zonesCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to purge")
}
