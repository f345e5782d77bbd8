package domain

import (
	"context"
	"time"
)

// SubmissionRepository is the port to the record store. The store is
// insert/query only: submissions are immutable once written.
type SubmissionRepository interface {
	// Insert appends a new submission row.
	Insert(ctx context.Context, sub *Submission) error

	// ListByDomain returns all submissions for a company domain, newest first.
	ListByDomain(ctx context.Context, companyDomain string) ([]*Submission, error)

	// ListAll returns every submission, newest first.
	ListAll(ctx context.Context) ([]*Submission, error)

	// EligibleDomains returns domains with at least minCount submissions,
	// sorted by submission count descending.
	EligibleDomains(ctx context.Context, minCount int) ([]CompanyCount, error)
}

// RateLimiter buckets submission attempts per client fingerprint.
// Fingerprints collide by design; the limiter is a throttle, not identity.
type RateLimiter interface {
	// Allow reports whether the client may submit now and records the attempt
	// when it may.
	Allow(ctx context.Context, fingerprint string) (bool, error)
}

// PendingQueue is the durable holding area for submissions whose insert
// failed after retries. Entries expire rather than accumulate; a replayed or
// expired entry is removed by Clear.
type PendingQueue interface {
	Enqueue(ctx context.Context, fingerprint string, sub *Submission) error
	List(ctx context.Context, fingerprint string) ([]*Submission, error)
	Clear(ctx context.Context, fingerprint string) error
}

// Cache is the port for caching computed views.
type Cache interface {
	// Get retrieves an item from the cache.
	// It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item to the cache, overwriting an existing item if one exists.
	// If expiration is 0, the item is cached indefinitely (if supported by the adapter).
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item from the cache.
	// It should not return an error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")
