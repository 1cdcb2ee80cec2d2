// Package storage provides an abstraction layer for the export archive.
//
// List-page exports (CSV snapshots of a filtered view) are written to an
// S3-compatible bucket. The package wraps the MinIO Go client behind a small
// interface so both AWS S3 and self-hosted MinIO work, and so feature tests
// can mock storage interactions (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: verifies access to the export bucket.
//   - MakeBucket: creates the bucket if needed.
//   - PutObject: uploads an export.
//   - GetObject: retrieves an export as a stream.
//   - ListObjects: lists stored exports (supports prefix/recursive).
//   - RemoveObject: deletes an export.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "exports")
package storage
