package edge

import (
	"encoding/json"
	"time"
)

// Envelope is the standard wrapper every API response body uses.
// Result and ResultInfo are kept raw so callers can decode them against
// the expected result type and pagination strategy for the endpoint.
type Envelope struct {
	Success    bool            `json:"success"`
	Errors     []APIError      `json:"errors"`
	Messages   []Message       `json:"messages"`
	Result     json.RawMessage `json:"result"`
	ResultInfo json.RawMessage `json:"result_info,omitempty"`
}

// Message represents an informational message in a response envelope.
type Message struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// PageInfo describes the position of a numbered page within a listing.
type PageInfo struct {
	Page       int `json:"page"        yaml:"page"`
	PerPage    int `json:"per_page"    yaml:"per_page"`
	Count      int `json:"count"       yaml:"count"`
	TotalCount int `json:"total_count" yaml:"total_count"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// HasMorePages reports whether pages beyond the current one exist.
func (p PageInfo) HasMorePages() bool {
	return p.Page < p.TotalPages
}

// CursorInfo describes the position of a cursor-paginated listing.
// An empty cursor is the terminal signal; a non-empty cursor must be
// passed back verbatim to fetch the next page.
type CursorInfo struct {
	Count   int    `json:"count"            yaml:"count"`
	PerPage int    `json:"per_page"         yaml:"per_page"`
	Cursor  string `json:"cursor,omitempty" yaml:"cursor,omitempty"`
}

// HasMorePages reports whether the server issued a continuation cursor.
func (c CursorInfo) HasMorePages() bool {
	return c.Cursor != ""
}

// Page holds the items of one numbered page together with its PageInfo.
type Page[T any] struct {
	Items    []T      `json:"items"     yaml:"items"`
	PageInfo PageInfo `json:"page_info" yaml:"page_info"`
}

// CursorPage holds the items of one cursor-addressed page together with
// its CursorInfo.
type CursorPage[T any] struct {
	Items      []T        `json:"items"       yaml:"items"`
	CursorInfo CursorInfo `json:"cursor_info" yaml:"cursor_info"`
}

// Resource is the base structure shared by API objects.
type Resource struct {
	ID         string    `json:"id"                    yaml:"id"`
	CreatedOn  time.Time `json:"created_on,omitempty"  yaml:"created_on,omitempty"`
	ModifiedOn time.Time `json:"modified_on,omitempty" yaml:"modified_on,omitempty"`
}

// ResourceID returns the object's identifier. It satisfies Identifiable,
// which cursor iterators use for duplicate suppression.
func (r Resource) ResourceID() string {
	return r.ID
}

// Identifiable is implemented by API objects that carry a stable identifier.
type Identifiable interface {
	ResourceID() string
}
