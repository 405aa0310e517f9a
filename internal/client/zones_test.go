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

func TestZonesList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))

		zones := []map[string]interface{}{
			{"id": "zone-1", "name": "example.com", "status": "active"},
			{"id": "zone-2", "name": "example.org", "status": "active"},
		}
		writeJSON(w, http.StatusOK, pagedEnvelope(zones, 2, 2, 2, 6))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	opts := edge.NewListOptions().WithPage(2).WithFilter("status", "active")

	page, err := client.Zones().List(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "example.com", page.Items[0].Name)
	assert.Equal(t, 2, page.PageInfo.Page)
	assert.Equal(t, 3, page.PageInfo.TotalPages)
	assert.True(t, page.PageInfo.HasMorePages())
}

func TestZonesListEmptyResultIsNeverNil(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pagedEnvelope(nil, 1, 20, 0, 0))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	page, err := client.Zones().List(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestZonesGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones/zone-1", r.URL.Path)

		writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
			"id":     "zone-1",
			"name":   "example.com",
			"status": "active",
			"account": map[string]interface{}{
				"id":   "acct-1",
				"name": "Example Org",
			},
		}))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	zone, err := client.Zones().Get(context.Background(), "zone-1")
	require.NoError(t, err)
	assert.Equal(t, "zone-1", zone.ID)
	assert.Equal(t, "example.com", zone.Name)
	require.NotNil(t, zone.Account)
	assert.Equal(t, "acct-1", zone.Account.ID)
}

func TestZonesGetEnvelopeFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 with success=false is still a semantic failure.
		writeJSON(w, http.StatusOK, failureEnvelope(edge.ErrorCodeNotFound, "zone not found"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	zone, err := client.Zones().Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, zone)

	var statusErr *edge.APIStatusError

	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, edge.ErrorCodeNotFound, statusErr.FirstError().Code)
	assert.True(t, edge.IsNotFound(err))
}

func TestZonesCreate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request edge.ZoneCreateRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "example.com", request.Name)
		assert.Equal(t, "acct-1", request.Account.ID)

		writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
			"id":     "zone-new",
			"name":   request.Name,
			"status": "pending",
		}))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	zone, err := client.Zones().Create(context.Background(), &edge.ZoneCreateRequest{
		Name:    "example.com",
		Account: edge.ZoneAccount{ID: "acct-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "zone-new", zone.ID)
	assert.Equal(t, "pending", zone.Status)
}

func TestZonesDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones/zone-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		writeJSON(w, http.StatusOK, envelope(map[string]interface{}{"id": "zone-1"}))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	deleted, err := client.Zones().Delete(context.Background(), "zone-1")
	require.NoError(t, err)
	assert.Equal(t, "zone-1", deleted.ID)
}

func TestZonesPurgeCache(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones/zone-1/purge_cache", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request edge.ZonePurgeRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.True(t, request.PurgeEverything)

		writeJSON(w, http.StatusOK, envelope(map[string]interface{}{"id": "zone-1"}))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	purged, err := client.Zones().PurgeCache(context.Background(), "zone-1", &edge.ZonePurgeRequest{
		PurgeEverything: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "zone-1", purged.ID)
}

func TestZonesListAll(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")

		switch page {
		case "", "1":
			writeJSON(w, http.StatusOK, pagedEnvelope([]map[string]interface{}{
				{"id": "zone-1", "name": "a.com"},
				{"id": "zone-2", "name": "b.com"},
			}, 1, 2, 2, 3))
		case "2":
			writeJSON(w, http.StatusOK, pagedEnvelope([]map[string]interface{}{
				{"id": "zone-3", "name": "c.com"},
			}, 2, 2, 1, 3))
		default:
			t.Errorf("unexpected page %q", page)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	zones, err := client.Zones().ListAll(context.Background(), edge.NewListOptions().WithPerPage(2)).All()
	require.NoError(t, err)
	require.Len(t, zones, 3)
	assert.Equal(t, "zone-3", zones[2].ID)
}
