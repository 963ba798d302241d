// Package simpleupload implements a small image upload service: uploaded
// files are written to a blob store (S3 or an in-memory fake) and a metadata
// record per image is kept in a repository (PostgreSQL or in-memory).
//
// The package exposes a Service interface built with functional options:
//
//	svc, err := simpleupload.New(
//	    simpleupload.WithRepository(repo),
//	    simpleupload.WithBlobStore(store),
//	)
//
// HTTP handlers live in the api subpackage; backend implementations live
// under repo/ and storage/.
package simpleupload
