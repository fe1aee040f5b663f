// Package connectors groups the remote API clients. Each connector
// wraps one external service (the gist API, the image host) behind a
// driven port and owns the service-specific error and rate-limit
// handling.
package connectors
