// Package cache configures the optional Redis connection used to cache
// identity lookups (external user id to internal user key).
//
// The mapping is stable, so cached entries only expire through their TTL.
// When no address is configured NewClient returns ErrDisabled and callers
// resolve identities straight from the database.
package cache
