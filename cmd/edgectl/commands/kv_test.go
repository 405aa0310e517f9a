package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewise-io/edgeapi/cmd/edgectl/commands"
)

func TestNewKVCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewKVCommand()
	assert.Equal(t, "kv", cmd.Use)
	assert.Equal(t, "Manage key-value storage", cmd.Short)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 5)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "namespaces")
	assert.Contains(t, commandNames, "keys")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "put")
	assert.Contains(t, commandNames, "delete")
}

func TestKVPutCommandTTLFlag(t *testing.T) {
	t.Parallel()

	putCmd := mustSubcommand(t, commands.NewKVCommand(), "put")

	ttlFlag := putCmd.Flags().Lookup("ttl")
	require.NotNil(t, ttlFlag)
	assert.Equal(t, "0", ttlFlag.DefValue)
}
