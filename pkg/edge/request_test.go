package edge_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

func TestGetDecodesEnvelopeResult(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/widgets/w1", req.Path)

		return okResponse(`{"success":true,"errors":[],"messages":[],"result":{"id":"w1","name":"first"}}`)
	}}
	access := edge.NewResourceAccess(requester)

	got, err := edge.Get[*widget](context.Background(), access, "/widgets/w1", nil)
	require.NoError(t, err)
	assert.Equal(t, "w1", got.ID)
	assert.Equal(t, "first", got.Name)
}

func TestExecuteMapsEnvelopeFailureToStatusError(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		return okResponse(`{"success":false,"errors":[{"code":7003,"message":"widget not found"}],
			"messages":[],"result":null}`)
	}}
	access := edge.NewResourceAccess(requester)

	_, err := edge.Get[*widget](context.Background(), access, "/widgets/missing", nil)
	require.Error(t, err)

	statusErr := &edge.APIStatusError{}
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusOK, statusErr.StatusCode)
	require.NotNil(t, statusErr.FirstError())
	assert.Equal(t, edge.ErrorCodeNotFound, statusErr.FirstError().Code)
	assert.True(t, edge.IsNotFound(err))
}

func TestDecodeNullListResultIsEmptyNotNil(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		return okResponse(`{"success":true,"errors":[],"messages":[],"result":null}`)
	}}
	access := edge.NewResourceAccess(requester)

	got, err := edge.Get[[]widget](context.Background(), access, "/widgets", nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDecodeNullScalarResultIsNil(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		return okResponse(`{"success":true,"errors":[],"messages":[],"result":null}`)
	}}
	access := edge.NewResourceAccess(requester)

	got, err := edge.Delete[*edge.Resource](context.Background(), access, "/widgets/w1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExecuteReturnsDecodeErrorOnMalformedBody(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		return okResponse(`{"success":true,`)
	}}
	access := edge.NewResourceAccess(requester)

	_, err := edge.Get[*widget](context.Background(), access, "/widgets/w1", nil)
	require.Error(t, err)

	decodeErr := &edge.DecodeError{}
	require.ErrorAs(t, err, &decodeErr)
	assert.NotEmpty(t, decodeErr.Body)
}

func TestExecuteReturnsDecodeErrorOnShapeMismatch(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		return okResponse(`{"success":true,"errors":[],"messages":[],"result":"not an object"}`)
	}}
	access := edge.NewResourceAccess(requester)

	_, err := edge.Get[*widget](context.Background(), access, "/widgets/w1", nil)
	require.Error(t, err)

	decodeErr := &edge.DecodeError{}
	assert.ErrorAs(t, err, &decodeErr)
}

func TestPostPassesBodyThrough(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)

		body, ok := req.Body.(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "new", body["name"])

		return okResponse(`{"success":true,"errors":[],"messages":[],"result":{"id":"w9","name":"new"}}`)
	}}
	access := edge.NewResourceAccess(requester)

	got, err := edge.Post[*widget](context.Background(), access, "/widgets", map[string]string{"name": "new"})
	require.NoError(t, err)
	assert.Equal(t, "w9", got.ID)
}

func TestDoForwardsCustomHeaders(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		assert.Equal(t, "application/octet-stream", req.Headers.Get("Accept"))

		return okResponse(`{"success":true,"errors":[],"messages":[],"result":null}`)
	}}
	access := edge.NewResourceAccess(requester)

	headers := http.Header{}
	headers.Set("Accept", "application/octet-stream")

	_, err := edge.Do[*edge.Resource](context.Background(), access, &edge.Request{
		Method:  http.MethodGet,
		Path:    "/widgets/w1/raw",
		Headers: headers,
	})
	require.NoError(t, err)
}

func TestExecutePropagatesTransportError(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{handler: func(req *edge.Request) (*edge.Response, error) {
		return nil, &edge.TransportError{Err: assert.AnError}
	}}
	access := edge.NewResourceAccess(requester)

	_, err := edge.Get[*widget](context.Background(), access, "/widgets/w1", nil)
	require.Error(t, err)
	assert.True(t, edge.IsRetryable(err))
	assert.ErrorIs(t, err, assert.AnError)
}
