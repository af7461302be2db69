// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the narrow interface the bookmark
// snapshot feature needs: bucket bootstrap, uploads, downloads and prefix
// listings. Both AWS S3 and self-hosted MinIO instances are supported.
//
// Storage is optional. When no endpoint is configured NewClient returns
// ErrDisabled and the snapshot endpoints answer 503.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider so that storage
// interactions can be mocked in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket); err != nil { ... }
package storage
