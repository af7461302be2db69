// Package bookmarks implements per-user bookmark storage and the offline
// sync endpoints used by clients.
//
// External google ids are mapped to internal user ids by an IdentityResolver,
// optionally cached in Redis. The Store enforces one bookmark per user and
// test through a unique index. The Reconciler applies client batches: batch
// adds contain failures per item and report every skipped item with a reason,
// while batch deletes and the delete phase of a sync are all-or-nothing.
//
// Snapshots export a user's bookmarks as JSON objects to S3-compatible
// storage and can be restored with batch add semantics.
package bookmarks
