// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listening port, the API key protecting every route, the request body limit
// and the per-request timeout that bounds each bookmark transaction.
package server
