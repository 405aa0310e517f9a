package edge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edgewise-io/edgeapi/internal/constants"
)

// ListPage fetches exactly one numbered page from a page-paginated
// endpoint.
func ListPage[T any](ctx context.Context, access *ResourceAccess, path string, opts *ListOptions) (*Page[T], error) {
	envelope, err := access.envelope(ctx, &Request{Method: http.MethodGet, Path: path, Query: opts.ToValues()})
	if err != nil {
		return nil, err
	}

	items, err := decodeResult[[]T](envelope)
	if err != nil {
		return nil, err
	}

	var info PageInfo

	if len(envelope.ResultInfo) > 0 {
		err = json.Unmarshal(envelope.ResultInfo, &info)
		if err != nil {
			return nil, &DecodeError{Err: err, Body: envelope.ResultInfo}
		}
	}

	return &Page[T]{Items: items, PageInfo: info}, nil
}

// ListCursorPage fetches exactly one page from a cursor-paginated
// endpoint. An empty opts.Cursor requests the first page.
func ListCursorPage[T any](ctx context.Context, access *ResourceAccess, path string, opts *ListOptions) (*CursorPage[T], error) {
	envelope, err := access.envelope(ctx, &Request{Method: http.MethodGet, Path: path, Query: opts.ToValues()})
	if err != nil {
		return nil, err
	}

	items, err := decodeResult[[]T](envelope)
	if err != nil {
		return nil, err
	}

	var info CursorInfo

	if len(envelope.ResultInfo) > 0 {
		err = json.Unmarshal(envelope.ResultInfo, &info)
		if err != nil {
			return nil, &DecodeError{Err: err, Body: envelope.ResultInfo}
		}
	}

	return &CursorPage[T]{Items: items, CursorInfo: info}, nil
}

// PageIterator lazily walks a page-paginated listing one page at a time.
// Fetches are strictly sequential, so items are yielded in the server's
// page order. A fatal error poisons the iterator; construct a new one to
// restart from the first page.
type PageIterator[T any] struct {
	ctx    context.Context
	access *ResourceAccess
	path   string
	opts   *ListOptions

	page    int
	perPage int
	buf     []T
	idx     int
	done    bool
	err     error
}

// NewPageIterator creates an iterator starting at opts.Page (or page 1
// when unset). Pagination fields in opts are captured up front and
// re-injected per fetch, so the caller's options are never mutated.
func NewPageIterator[T any](ctx context.Context, access *ResourceAccess, path string, opts *ListOptions) *PageIterator[T] {
	opts = opts.Clone()

	startPage := opts.Page
	if startPage <= 0 {
		startPage = 1
	}

	perPage := opts.PerPage

	opts.Page = 0
	opts.PerPage = 0
	opts.Cursor = ""

	return &PageIterator[T]{
		ctx:     ctx,
		access:  access,
		path:    path,
		opts:    opts,
		page:    startPage,
		perPage: perPage,
	}
}

// HasNext reports whether another item may be available. It never
// triggers a fetch; a final empty page is only discovered by Next.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.idx < len(it.buf) {
		return true
	}

	return !it.done
}

// Next returns the next item, fetching the next page when the buffer is
// drained. It returns ErrNoMoreItems once the listing is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	for it.idx >= len(it.buf) {
		if it.done {
			return zero, ErrNoMoreItems
		}

		err := it.fetch()
		if err != nil {
			it.err = err

			return zero, err
		}
	}

	item := it.buf[it.idx]
	it.idx++

	return item, nil
}

// All drains the iterator and returns every remaining item.
func (it *PageIterator[T]) All() ([]T, error) {
	all := []T{}

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item, stopping on the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *PageIterator[T]) fetch() error {
	opts := it.opts.Clone()
	opts.Page = it.page
	opts.PerPage = it.perPage

	page, err := ListPage[T](it.ctx, it.access, it.path, opts)
	if err != nil {
		return err
	}

	currentPage := page.PageInfo.Page
	if currentPage <= 0 {
		currentPage = it.page
	}

	it.buf = page.Items
	it.idx = 0
	it.page = currentPage + 1
	it.done = currentPage >= page.PageInfo.TotalPages

	return nil
}

// CursorIteratorOption configures a CursorIterator.
type CursorIteratorOption[T any] func(*CursorIterator[T])

// WithDedup enables duplicate suppression keyed by fn. Some endpoints can
// return an item again on a later page when the underlying collection
// mutates during enumeration; with dedup enabled each key is yielded at
// most once per iterator.
func WithDedup[T any](fn func(T) string) CursorIteratorOption[T] {
	return func(it *CursorIterator[T]) {
		it.keyFn = fn
		it.seen = make(map[string]struct{})
	}
}

// DedupByResourceID enables duplicate suppression using the item's own
// identifier.
func DedupByResourceID[T Identifiable]() CursorIteratorOption[T] {
	return WithDedup(func(item T) string { return item.ResourceID() })
}

// CursorIterator lazily walks a cursor-paginated listing. Cursors are
// opaque and single-use-forward-only, so the iterator is not restartable
// mid-stream; construct a new one to re-enumerate.
type CursorIterator[T any] struct {
	ctx    context.Context
	access *ResourceAccess
	path   string
	opts   *ListOptions

	cursor string
	buf    []T
	idx    int
	done   bool
	err    error

	keyFn func(T) string
	seen  map[string]struct{}
}

// NewCursorIterator creates an iterator over a cursor-paginated listing.
// opts.PerPage is preserved unchanged across every cursor advance; a
// caller-supplied opts.Cursor resumes from that position.
func NewCursorIterator[T any](ctx context.Context, access *ResourceAccess, path string, opts *ListOptions, iterOpts ...CursorIteratorOption[T]) *CursorIterator[T] {
	opts = opts.Clone()

	cursor := opts.Cursor
	opts.Cursor = ""
	opts.Page = 0

	it := &CursorIterator[T]{
		ctx:    ctx,
		access: access,
		path:   path,
		opts:   opts,
		cursor: cursor,
	}

	for _, opt := range iterOpts {
		opt(it)
	}

	return it
}

// HasNext reports whether another item may be available.
func (it *CursorIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.idx < len(it.buf) {
		return true
	}

	return !it.done
}

// Next returns the next item, advancing the cursor when the buffer is
// drained. It returns ErrNoMoreItems once the server stops issuing
// cursors.
func (it *CursorIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	for it.idx >= len(it.buf) {
		if it.done {
			return zero, ErrNoMoreItems
		}

		err := it.fetch()
		if err != nil {
			it.err = err

			return zero, err
		}
	}

	item := it.buf[it.idx]
	it.idx++

	return item, nil
}

// All drains the iterator and returns every remaining item.
func (it *CursorIterator[T]) All() ([]T, error) {
	all := []T{}

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item, stopping on the first error.
func (it *CursorIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *CursorIterator[T]) fetch() error {
	opts := it.opts.Clone()
	opts.Cursor = it.cursor

	page, err := ListCursorPage[T](it.ctx, it.access, it.path, opts)
	if err != nil {
		return err
	}

	it.cursor = page.CursorInfo.Cursor
	it.done = !page.CursorInfo.HasMorePages()
	it.idx = 0

	if it.seen == nil {
		it.buf = page.Items

		return nil
	}

	// Suppress items whose key was already yielded by an earlier page.
	kept := page.Items[:0:0]

	for _, item := range page.Items {
		key := it.keyFn(item)
		if _, dup := it.seen[key]; dup {
			continue
		}

		it.seen[key] = struct{}{}

		kept = append(kept, item)
	}

	it.buf = kept

	return nil
}

// PaginationOptions bounds the auto-advancing collectors.
type PaginationOptions struct {
	// PageSize overrides the per-page size sent with each fetch.
	PageSize int
	// MaxPages caps the number of pages fetched; 0 means no cap.
	MaxPages int
}

// DefaultPaginationOptions returns the standard collector settings.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: constants.StandardPageSize,
	}
}

// FetchAllPages collects every item of a page-paginated listing, fetching
// pages sequentially from page 1.
func FetchAllPages[T any](ctx context.Context, access *ResourceAccess, path string, opts *ListOptions, pagination *PaginationOptions) ([]T, error) {
	opts = opts.Clone()

	if pagination != nil && pagination.PageSize > 0 {
		opts.PerPage = pagination.PageSize
	}

	iterator := NewPageIterator[T](ctx, access, path, opts)

	if pagination == nil || pagination.MaxPages <= 0 {
		return iterator.All()
	}

	all := []T{}

	for fetched := 0; fetched < pagination.MaxPages && iterator.HasNext(); fetched++ {
		page, err := iterator.nextPage()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		all = append(all, page...)
	}

	return all, nil
}

// nextPage advances the iterator by exactly one fetch and returns that
// page's items, consuming any buffered remainder first.
func (it *PageIterator[T]) nextPage() ([]T, error) {
	if it.err != nil {
		return nil, it.err
	}

	if it.idx < len(it.buf) {
		items := it.buf[it.idx:]
		it.idx = len(it.buf)

		return items, nil
	}

	if it.done {
		return nil, ErrNoMoreItems
	}

	err := it.fetch()
	if err != nil {
		it.err = err

		return nil, err
	}

	items := it.buf
	it.idx = len(it.buf)

	return items, nil
}

// FetchAllCursorPages collects every item of a cursor-paginated listing,
// advancing the cursor sequentially from the start.
func FetchAllCursorPages[T any](ctx context.Context, access *ResourceAccess, path string, opts *ListOptions, iterOpts ...CursorIteratorOption[T]) ([]T, error) {
	return NewCursorIterator(ctx, access, path, opts, iterOpts...).All()
}

// PageResult carries one streamed page or the error that ended the stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches a page-paginated listing in the background, sending
// one PageResult per page. The channel closes after the final page or the
// first error; cancelling ctx stops the stream.
func StreamPages[T any](ctx context.Context, access *ResourceAccess, path string, opts *ListOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		iterator := NewPageIterator[T](ctx, access, path, opts)

		for iterator.HasNext() {
			items, err := iterator.nextPage()
			if err != nil {
				if errors.Is(err, ErrNoMoreItems) {
					return
				}

				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: items}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}
