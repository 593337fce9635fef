// Package timeouts holds the durations shared by every mythic.nexus binary.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long a server waits for in-flight requests and
// telemetry flushes when stopping.
const Shutdown = 5 * time.Second

// CatalogLoad caps reading the character catalog from its database at startup.
const CatalogLoad = 10 * time.Second
