// Package edge provides types, interfaces, and helpers for working with
// the edge-platform REST API.
//
// # Overview
//
// The edge package defines the wire types (Envelope, PageInfo,
// CursorInfo), the error taxonomy, and the interfaces for
// resource-oriented clients (e.g. ZonesClient, DNSRecordsClient). A
// concrete implementation of these clients is provided by the edgeclient
// package, which wires configuration, credentials, and the resilient
// transport. Most consumers should import edgeclient to construct a
// client and then interact with the resource interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/edgewise-io/edgeapi/pkg/edge"
//	  "github.com/edgewise-io/edgeapi/pkg/edgeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := edgeclient.New(&edge.Config{
//	    APIEndpoint: "https://api.example.com/client/v4",
//	    APIToken:    "…",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of zones
//	  zones, err := cli.Zones().List(ctx, edge.NewListOptions().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = zones
//	}
//
// # Queries and pagination
//
// Use ListOptions to express common list options (page, per_page, cursor,
// order, filters). List endpoints come in two pagination flavors, chosen
// statically per endpoint: numbered pages (PageIterator) and opaque
// cursors (CursorIterator). Both iterators fetch one page at a time,
// strictly sequentially:
//
//	it := cli.Zones().ListAll(ctx, edge.NewListOptions())
//	for it.HasNext() {
//	  zone, err := it.Next()
//	  if err != nil { break }
//	  _ = zone
//	}
//
// Cursor-paginated endpoints that can repeat items under concurrent
// mutation opt into duplicate suppression, so an item ID is yielded at
// most once per enumeration.
//
// # Errors
//
// Failures map to one typed error per class: ClientError (4xx),
// ServerError (5xx, retried first), RateLimitError (429, retried first,
// honoring Retry-After), TransportError, APIStatusError (2xx with
// success=false), and DecodeError, plus the ErrCircuitOpen and
// ErrOverloaded sentinels from the resilience layer. Helpers such as
// IsNotFound and IsRateLimited make it easy to branch on common cases.
//
// # Interceptors
//
// The package includes request/response interceptor building blocks for
// logging, extra headers, and metrics. The transport runs them once per
// logical call; retries are not visible to the chain.
package edge
