package client

import (
	"encoding/json"
	"net/http"
	"time"

	internalhttp "github.com/edgewise-io/edgeapi/internal/http"
)

// newTestClient creates a client wired straight to a test server URL,
// skipping edgeclient's config validation. Retries are kept fast so
// failure cases do not slow the suite down.
func newTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil,
		internalhttp.WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

	return New(httpClient)
}

// envelope builds a success envelope around a result payload.
func envelope(result interface{}) map[string]interface{} {
	return map[string]interface{}{
		"success":  true,
		"errors":   []interface{}{},
		"messages": []interface{}{},
		"result":   result,
	}
}

// pagedEnvelope builds a success envelope with page-based result_info.
func pagedEnvelope(result interface{}, page, perPage, count, totalCount int) map[string]interface{} {
	totalPages := totalCount / perPage
	if totalCount%perPage != 0 {
		totalPages++
	}

	body := envelope(result)
	body["result_info"] = map[string]interface{}{
		"page":        page,
		"per_page":    perPage,
		"count":       count,
		"total_count": totalCount,
		"total_pages": totalPages,
	}

	return body
}

// cursorEnvelope builds a success envelope with cursor-based result_info.
// An empty cursor marks the final page.
func cursorEnvelope(result interface{}, cursor string, count, perPage int) map[string]interface{} {
	body := envelope(result)
	body["result_info"] = map[string]interface{}{
		"count":    count,
		"per_page": perPage,
		"cursor":   cursor,
	}

	return body
}

// failureEnvelope builds a success=false envelope with one error entry.
func failureEnvelope(code int, message string) map[string]interface{} {
	return map[string]interface{}{
		"success":  false,
		"errors":   []map[string]interface{}{{"code": code, "message": message}},
		"messages": []interface{}{},
		"result":   nil,
	}
}

// writeJSON encodes a payload with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
