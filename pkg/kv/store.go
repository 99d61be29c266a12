// Package kv defines the string key-value contract the menu service persists
// through, plus an in-process implementation.
//
// Absent keys are not errors: Get reports them with ok=false. Errors are
// reserved for transport failures of the backing store.
package kv

import (
	"context"
	"time"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value stored under key; ok is false when the key is absent or expired.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes value under key without expiry, overwriting any prior value.
	Set(ctx context.Context, key, value string) error
	// SetWithTTL is Set with an expiry. A non-positive ttl means no expiry.
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Prefixed returns a view of s where every key is prefixed with prefix.
func Prefixed(s Store, prefix string) Store {
	return &prefixed{store: s, prefix: prefix}
}

type prefixed struct {
	store  Store
	prefix string
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.store.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return p.store.SetWithTTL(ctx, p.prefix+key, value, ttl)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.store.Remove(ctx, p.prefix+key)
}
