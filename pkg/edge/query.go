package edge

import (
	"net/url"
	"strconv"
	"strings"
)

// ListOptions expresses the query surface shared by list endpoints:
// pagination (numbered page or opaque cursor), ordering, and
// endpoint-specific filters.
type ListOptions struct {
	// Page is the 1-based page number for page-paginated endpoints.
	Page int
	// PerPage is the page size for either pagination strategy.
	PerPage int
	// Cursor is the opaque continuation token for cursor-paginated
	// endpoints. It must be passed back exactly as the server issued it.
	Cursor string
	// Order names the field to sort by.
	Order string
	// Direction is "asc" or "desc".
	Direction string
	// Match selects "any" or "all" filter semantics where supported.
	Match string
	// Filters holds endpoint-specific query parameters, e.g. name or type.
	Filters map[string][]string
}

// NewListOptions creates an empty ListOptions.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithPage sets the page number.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.Page = page

	return o
}

// WithPerPage sets the page size.
func (o *ListOptions) WithPerPage(perPage int) *ListOptions {
	o.PerPage = perPage

	return o
}

// WithCursor sets the continuation cursor.
func (o *ListOptions) WithCursor(cursor string) *ListOptions {
	o.Cursor = cursor

	return o
}

// WithOrder sets the sort field and direction.
func (o *ListOptions) WithOrder(field, direction string) *ListOptions {
	o.Order = field
	o.Direction = direction

	return o
}

// WithFilter adds an endpoint-specific filter value.
func (o *ListOptions) WithFilter(key string, values ...string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}

	o.Filters[key] = append(o.Filters[key], values...)

	return o
}

// ToValues converts the options to URL query parameters.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(o.PerPage))
	}

	if o.Cursor != "" {
		values.Set("cursor", o.Cursor)
	}

	if o.Order != "" {
		values.Set("order", o.Order)
	}

	if o.Direction != "" {
		values.Set("direction", o.Direction)
	}

	if o.Match != "" {
		values.Set("match", o.Match)
	}

	for key, vals := range o.Filters {
		values.Set(key, strings.Join(vals, ","))
	}

	return values
}

// Clone returns a deep copy so iterators can adjust pagination fields
// without corrupting the caller's options.
func (o *ListOptions) Clone() *ListOptions {
	if o == nil {
		return NewListOptions()
	}

	clone := *o

	if o.Filters != nil {
		clone.Filters = make(map[string][]string, len(o.Filters))
		for key, vals := range o.Filters {
			clone.Filters[key] = append([]string(nil), vals...)
		}
	}

	return &clone
}
