// SPDX-License-Identifier: Apache-2.0

// Package query tracks the fetch state of remote data for UI consumers: the
// last successful value, whether a request is in flight, and the last error.
//
// Every fetch is stamped with a monotonically increasing generation number.
// A response is applied only when no newer fetch has started since it left,
// so a slow response can never overwrite the result of a request issued
// after it. Superseded fetches return [ErrStale].
package query

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned by a fetch whose response arrived after a newer fetch
// had already started. The caller should drop the result; the newer request
// owns the state.
var ErrStale = errors.New("response superseded by a newer request")

// Fetcher loads the remote value. Implementations are typically client
// service methods.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Snapshot is one consistent view of a query's state.
type Snapshot[T any] struct {
	// Data is the last successfully fetched value. Zero until the first
	// successful fetch; kept through later failures so the UI can keep
	// rendering the previous value alongside the error.
	Data T

	// Loading reports whether a fetch is in flight.
	Loading bool

	// Err is the error of the most recent completed fetch, nil on success.
	Err error
}

// Query caches the state of one remote collection or record.
// Safe for concurrent use.
type Query[T any] struct {
	fetch Fetcher[T]

	mu         sync.Mutex
	generation uint64
	state      Snapshot[T]
}

// New creates a Query backed by fetch. The query is empty until the first
// Fetch call.
func New[T any](fetch Fetcher[T]) *Query[T] {
	return &Query[T]{fetch: fetch}
}

// Fetch loads the value and updates the query state. The error of a failed
// fetch is recorded in the snapshot; previously fetched data stays available.
// When a newer Fetch starts before this one finishes, the late result is
// discarded and ErrStale is returned.
func (q *Query[T]) Fetch(ctx context.Context) (T, error) {
	q.mu.Lock()
	q.generation++
	generation := q.generation
	q.state.Loading = true
	q.mu.Unlock()

	data, err := q.fetch(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()

	if generation != q.generation {
		var zero T
		return zero, ErrStale
	}

	q.state.Loading = false
	q.state.Err = err
	if err != nil {
		var zero T
		return zero, err
	}

	q.state.Data = data
	return data, nil
}

// State returns the current snapshot.
func (q *Query[T]) State() Snapshot[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// KeyedFetcher loads the remote value identified by key.
type KeyedFetcher[T any] func(ctx context.Context, key string) (T, error)

// Keyed caches the state of a remote record selected by a string key, such as
// per-page settings. Switching keys follows the same generation rule as
// Query: only the latest fetch may write, whichever key it carries.
type Keyed[T any] struct {
	fetch KeyedFetcher[T]

	mu         sync.Mutex
	generation uint64
	key        string
	state      Snapshot[T]
}

// NewKeyed creates a Keyed query backed by fetch.
func NewKeyed[T any](fetch KeyedFetcher[T]) *Keyed[T] {
	return &Keyed[T]{fetch: fetch}
}

// Fetch loads the value for key and updates the query state. A response that
// comes back after a newer Fetch has started, for any key, is discarded with
// ErrStale; the state always reflects the most recently requested key.
func (q *Keyed[T]) Fetch(ctx context.Context, key string) (T, error) {
	q.mu.Lock()
	q.generation++
	generation := q.generation
	q.key = key
	q.state.Loading = true
	q.mu.Unlock()

	data, err := q.fetch(ctx, key)

	q.mu.Lock()
	defer q.mu.Unlock()

	if generation != q.generation {
		var zero T
		return zero, ErrStale
	}

	q.state.Loading = false
	q.state.Err = err
	if err != nil {
		var zero T
		return zero, err
	}

	q.state.Data = data
	return data, nil
}

// Key returns the most recently requested key.
func (q *Keyed[T]) Key() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.key
}

// State returns the current snapshot.
func (q *Keyed[T]) State() Snapshot[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}
