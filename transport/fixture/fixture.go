// Package fixture provides an in-memory transport.Transport double for
// exercising the format layer (wireformat, registry, block) without a live
// server connection. It is test-only scaffolding, the analogue of the
// teacher's tests/measure and tests/compat fixture packages: a harness
// that replays recorded bytes rather than a real network client.
package fixture

import (
	"context"
	"fmt"
)

// SentRecord captures one SendData call for later assertion.
type SentRecord struct {
	SQLPrefix string
	Data      []byte
}

type response struct {
	data []byte
	err  error
}

// Transport is an in-memory transport.Transport. Query responses must be
// scripted in advance via WithQueryResponse/WithExecuteQueryResponse; an
// unscripted query is a test-authoring error and returns an error rather
// than panicking or returning zero bytes silently.
type Transport struct {
	nonQueryErr error
	dataErr     error

	nonQueries []string
	sent       []SentRecord

	queryResponses   map[string]response
	executeResponses map[string]response
}

// Option configures a Transport at construction. Fixture options never
// fail to apply, so unlike a production client's options this is a plain
// function type rather than anything returning an error.
type Option func(*Transport)

// New returns a Transport configured by opts.
func New(opts ...Option) *Transport {
	t := &Transport{
		queryResponses:   make(map[string]response),
		executeResponses: make(map[string]response),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithQueryResponse scripts the bytes QueryData(sql) returns.
func WithQueryResponse(sql string, data []byte) Option {
	return func(t *Transport) { t.queryResponses[sql] = response{data: data} }
}

// WithQueryError scripts the error QueryData(sql) returns.
func WithQueryError(sql string, err error) Option {
	return func(t *Transport) { t.queryResponses[sql] = response{err: err} }
}

// WithExecuteQueryResponse scripts the bytes ExecuteQuery(sql) returns.
func WithExecuteQueryResponse(sql string, data []byte) Option {
	return func(t *Transport) { t.executeResponses[sql] = response{data: data} }
}

// WithNonQueryError makes every ExecuteNonQuery call fail with err.
func WithNonQueryError(err error) Option {
	return func(t *Transport) { t.nonQueryErr = err }
}

// WithSendDataError makes every SendData call fail with err.
func WithSendDataError(err error) Option {
	return func(t *Transport) { t.dataErr = err }
}

// ExecuteNonQuery records sql and returns the scripted error, if any.
func (t *Transport) ExecuteNonQuery(_ context.Context, sql string) error {
	t.nonQueries = append(t.nonQueries, sql)

	return t.nonQueryErr
}

// SendData records a copy of (sqlPrefix, data) and returns the scripted
// error, if any. The copy protects the fixture from a caller that reuses
// or mutates its buffer after the call returns.
func (t *Transport) SendData(_ context.Context, sqlPrefix string, data []byte) error {
	t.sent = append(t.sent, SentRecord{SQLPrefix: sqlPrefix, Data: append([]byte(nil), data...)})

	return t.dataErr
}

// QueryData returns the bytes scripted via WithQueryResponse for sql, or
// an error if nothing was scripted.
func (t *Transport) QueryData(_ context.Context, sql string) ([]byte, error) {
	r, ok := t.queryResponses[sql]
	if !ok {
		return nil, fmt.Errorf("fixture: no QueryData response scripted for %q", sql)
	}

	return r.data, r.err
}

// ExecuteQuery returns the bytes scripted via WithExecuteQueryResponse for
// sql, or an error if nothing was scripted.
func (t *Transport) ExecuteQuery(_ context.Context, sql string) ([]byte, error) {
	r, ok := t.executeResponses[sql]
	if !ok {
		return nil, fmt.Errorf("fixture: no ExecuteQuery response scripted for %q", sql)
	}

	return r.data, r.err
}

// SentRecords returns every SendData call observed so far, in order.
func (t *Transport) SentRecords() []SentRecord {
	return append([]SentRecord(nil), t.sent...)
}

// NonQueries returns every ExecuteNonQuery statement observed so far, in
// order.
func (t *Transport) NonQueries() []string {
	return append([]string(nil), t.nonQueries...)
}
