// Package s3 provides BlobStore implementations backed by Amazon S3.
//
// Store is a plain S3 store with streaming uploads via the S3 transfer
// manager. CommitStore layers DynamoDB on top to give the CURRENT snapshot
// pointer the atomic compare-and-swap semantics that S3 lacks, so multiple
// publishers can safely coordinate catalog updates.
//
// # Basic Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := s3blob.NewStore(s3.NewFromConfig(cfg), "my-bucket", "catalogs/")
//	dq, err := dynoq.Open(ctx, store, "dyno-2026.snap")
package s3
