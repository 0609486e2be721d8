// Package transport defines the abstract boundary between the codec core
// and whatever actually moves bytes to and from a database server. The
// core depends only on this interface; it never opens a connection,
// retries, or times out itself — those concerns belong to whatever
// Transport implementation a caller supplies.
package transport

import "context"

// Transport is the four operations the codec core needs from a server
// connection. Implementations are responsible for their own connection
// management, retries, and authentication; the core treats every call as
// a single synchronous round trip.
type Transport interface {
	// ExecuteNonQuery runs a DDL or administrative statement and surfaces
	// failure only; it returns no result body.
	ExecuteNonQuery(ctx context.Context, sql string) error

	// SendData posts sqlPrefix (an "INSERT ... FORMAT <fmt>" statement)
	// with data as the request body.
	SendData(ctx context.Context, sqlPrefix string, data []byte) error

	// QueryData runs sql (a query ending in "FORMAT <fmt>") and returns
	// the full binary response body.
	QueryData(ctx context.Context, sql string) ([]byte, error)

	// ExecuteQuery runs sql for a non-binary textual format and returns
	// the full response body. Used only for scalar assertions in tests;
	// the codec core never parses its result.
	ExecuteQuery(ctx context.Context, sql string) ([]byte, error)
}
