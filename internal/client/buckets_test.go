package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

func TestBucketsList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acct-1/buckets", r.URL.Path)

		buckets := []map[string]interface{}{
			{"name": "assets", "creation_date": "2025-02-01T10:00:00Z", "jurisdiction": "eu"},
			{"name": "logs", "creation_date": "2025-03-15T08:30:00Z", "jurisdiction": "quantum"},
		}
		writeJSON(w, http.StatusOK, pagedEnvelope(buckets, 1, 20, 2, 2))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	page, err := client.Buckets().List(context.Background(), "acct-1", nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, edge.JurisdictionEU, page.Items[0].Jurisdiction)

	// Unknown jurisdiction values survive decoding and re-encode verbatim.
	unknown := page.Items[1].Jurisdiction
	assert.False(t, unknown.IsKnown())
	assert.Equal(t, "quantum", unknown.String())

	reencoded, err := json.Marshal(unknown)
	require.NoError(t, err)
	assert.JSONEq(t, `"quantum"`, string(reencoded))
}

func TestBucketsCreate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acct-1/buckets", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var raw map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "assets", raw["name"])
		assert.Equal(t, "weur", raw["location_hint"])
		assert.Equal(t, "eu", raw["jurisdiction"])

		writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
			"name":          "assets",
			"creation_date": "2025-02-01T10:00:00Z",
			"location":      "WEUR",
			"jurisdiction":  "eu",
		}))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	bucket, err := client.Buckets().Create(context.Background(), "acct-1", &edge.BucketCreateRequest{
		Name:         "assets",
		LocationHint: "weur",
		Jurisdiction: edge.JurisdictionEU,
	})
	require.NoError(t, err)
	assert.Equal(t, "assets", bucket.Name)
	assert.Equal(t, "WEUR", bucket.Location)
}

func TestBucketsGetAndDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acct-1/buckets/assets", r.URL.Path)

		switch r.Method {
		case "GET":
			writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
				"name":          "assets",
				"creation_date": "2025-02-01T10:00:00Z",
			}))
		case "DELETE":
			writeJSON(w, http.StatusOK, envelope(nil))
		default:
			t.Errorf("unexpected method %q", r.Method)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	bucket, err := client.Buckets().Get(context.Background(), "acct-1", "assets")
	require.NoError(t, err)
	assert.Equal(t, "assets", bucket.Name)

	require.NoError(t, client.Buckets().Delete(context.Background(), "acct-1", "assets"))
}
