package edge_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

func TestJurisdictionKnownValues(t *testing.T) {
	t.Parallel()

	assert.True(t, edge.JurisdictionDefault.IsKnown())
	assert.True(t, edge.JurisdictionEU.IsKnown())
	assert.True(t, edge.JurisdictionFedRAMP.IsKnown())
	assert.Equal(t, "eu", edge.JurisdictionEU.String())
}

func TestJurisdictionPreservesUnknownWireValue(t *testing.T) {
	t.Parallel()

	var j edge.Jurisdiction

	err := json.Unmarshal([]byte(`"apac-sovereign"`), &j)
	require.NoError(t, err)

	assert.False(t, j.IsKnown())
	assert.Equal(t, "apac-sovereign", j.String())

	// The unknown value survives a round trip untouched.
	data, err := json.Marshal(j)
	require.NoError(t, err)
	assert.Equal(t, `"apac-sovereign"`, string(data))
}

func TestJurisdictionJSONRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(edge.JurisdictionFedRAMP)
	require.NoError(t, err)
	assert.Equal(t, `"fedramp"`, string(data))

	var j edge.Jurisdiction

	err = json.Unmarshal(data, &j)
	require.NoError(t, err)
	assert.Equal(t, edge.JurisdictionFedRAMP, j)
}

func TestJurisdictionYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(edge.JurisdictionEU)
	require.NoError(t, err)
	assert.Equal(t, "eu\n", string(data))

	var j edge.Jurisdiction

	err = yaml.Unmarshal([]byte("unknown-region\n"), &j)
	require.NoError(t, err)
	assert.Equal(t, "unknown-region", j.String())
	assert.False(t, j.IsKnown())
}

func TestJurisdictionFromString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, edge.JurisdictionEU, edge.JurisdictionFromString("eu"))
	assert.False(t, edge.JurisdictionFromString("made-up").IsKnown())
}

func TestJurisdictionRejectsNonString(t *testing.T) {
	t.Parallel()

	var j edge.Jurisdiction

	err := json.Unmarshal([]byte(`42`), &j)
	assert.Error(t, err)
}
