// Package edgeclient provides the primary entry point for constructing an
// API client that implements the edge.Client interface.
//
// It layers configuration, credentials, and the resilient HTTP transport on
// top of the resource interfaces and types defined in the edge package. Most
// applications should import edgeclient to build a client, then use the
// returned edge.Client to access resource-specific clients, for example
// Zones(), DNSRecords(), KV(), etc.
//
// Quick start
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
//
//	  // With an API token (preferred):
//	  cli, err := edgeclient.New(&edge.Config{
//	    APIEndpoint: "https://api.example.com/client/v4",
//	    APIToken:    "v1.0-abc...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a legacy key/email pair:
//	  cli, err = edgeclient.New(&edge.Config{
//	    APIEndpoint: "https://api.example.com/client/v4",
//	    APIKey:      "37f2...",
//	    APIEmail:    "admin@example.com",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the edge.Client interface
//	  zones, err := cli.Zones().List(ctx, edge.NewListOptions().WithPerPage(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = zones
//	}
//
// # Resilience
//
// Every client shares one proactive permit limiter and one circuit breaker
// across all of its resource clients. Retries with backoff are applied to
// throttled (429), server (5xx), and transport failures; all other errors
// surface immediately as typed errors from the edge package.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithKeyPair that wrap New with the appropriate configuration.
package edgeclient
