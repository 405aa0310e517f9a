package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

func TestNewWiresAllResourceClients(t *testing.T) {
	t.Parallel()

	client := newTestClient("http://127.0.0.1:0")

	assert.NotNil(t, client.Accounts())
	assert.NotNil(t, client.Zones())
	assert.NotNil(t, client.DNSRecords())
	assert.NotNil(t, client.CustomHostnames())
	assert.NotNil(t, client.Rulesets())
	assert.NotNil(t, client.KV())
	assert.NotNil(t, client.Buckets())
	assert.NotNil(t, client.AuditLogs())
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/tokens/verify", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
			"id":     "token-1",
			"status": "active",
		}))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	status, err := client.VerifyToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", status.ID)
	assert.Equal(t, "active", status.Status)
}

func TestVerifyTokenRejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, failureEnvelope(edge.ErrorCodeAuthentication, "invalid token"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	status, err := client.VerifyToken(context.Background())
	require.Error(t, err)
	assert.Nil(t, status)

	var clientErr *edge.ClientError

	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
	require.Len(t, clientErr.Errors, 1)
	assert.Equal(t, edge.ErrorCodeAuthentication, clientErr.Errors[0].Code)
}
