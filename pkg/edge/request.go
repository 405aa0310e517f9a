package edge

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
)

// Request describes one API call: a relative path, optional query
// parameters, and an optional JSON body.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers http.Header
}

// Response is the raw outcome of one API call after the resilience layer
// has finished with it.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Requester executes a single API request. The concrete implementation
// lives in internal/http and owns throttling, retries, and the circuit
// breaker; by the time a Response is returned here, that policy is spent.
type Requester interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// ResourceAccess is the capability object every resource client is built
// on. It exposes the verb and pagination primitives as package-level
// generic functions; resource clients supply only endpoint paths and
// result types and never touch the network directly.
type ResourceAccess struct {
	requester Requester
}

// NewResourceAccess wraps a Requester.
func NewResourceAccess(requester Requester) *ResourceAccess {
	return &ResourceAccess{requester: requester}
}

// Get executes a GET request and decodes the envelope result into T.
func Get[T any](ctx context.Context, access *ResourceAccess, path string, query url.Values) (T, error) {
	return execute[T](ctx, access, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request and decodes the envelope result into T.
func Post[T any](ctx context.Context, access *ResourceAccess, path string, body interface{}) (T, error) {
	return execute[T](ctx, access, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put executes a PUT request and decodes the envelope result into T.
func Put[T any](ctx context.Context, access *ResourceAccess, path string, body interface{}) (T, error) {
	return execute[T](ctx, access, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch executes a PATCH request and decodes the envelope result into T.
func Patch[T any](ctx context.Context, access *ResourceAccess, path string, body interface{}) (T, error) {
	return execute[T](ctx, access, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request and decodes the envelope result into T.
func Delete[T any](ctx context.Context, access *ResourceAccess, path string) (T, error) {
	return execute[T](ctx, access, &Request{Method: http.MethodDelete, Path: path})
}

// Do executes an arbitrary request and decodes the envelope result into T.
// It exists for endpoints needing custom methods or headers.
func Do[T any](ctx context.Context, access *ResourceAccess, req *Request) (T, error) {
	return execute[T](ctx, access, req)
}

func execute[T any](ctx context.Context, access *ResourceAccess, req *Request) (T, error) {
	var zero T

	envelope, err := access.envelope(ctx, req)
	if err != nil {
		return zero, err
	}

	return decodeResult[T](envelope)
}

// envelope runs one request through the resilience layer and parses the
// response wrapper, mapping success=false to an APIStatusError.
func (a *ResourceAccess) envelope(ctx context.Context, req *Request) (*Envelope, error) {
	resp, err := a.requester.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var envelope Envelope

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, &DecodeError{Err: err, Body: resp.Body}
	}

	if !envelope.Success {
		return nil, &APIStatusError{
			StatusCode: resp.StatusCode,
			Errors:     envelope.Errors,
			Messages:   envelope.Messages,
		}
	}

	return &envelope, nil
}

// decodeResult unpacks the envelope's result field into T. A null or
// absent result decodes to an empty slice when T is a list type, never to
// a nil sequence.
func decodeResult[T any](envelope *Envelope) (T, error) {
	var out T

	if isNullResult(envelope.Result) {
		normalizeEmptyList(&out)

		return out, nil
	}

	err := json.Unmarshal(envelope.Result, &out)
	if err != nil {
		return out, &DecodeError{Err: err, Body: envelope.Result}
	}

	normalizeEmptyList(&out)

	return out, nil
}

func isNullResult(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// normalizeEmptyList replaces a nil slice with an allocated empty one so
// list results are always a valid sequence.
func normalizeEmptyList(out interface{}) {
	value := reflect.ValueOf(out).Elem()
	if value.Kind() == reflect.Slice && value.IsNil() {
		value.Set(reflect.MakeSlice(value.Type(), 0, 0))
	}
}
