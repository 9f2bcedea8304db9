// Package model defines the data structures used throughout Linkr.
//
// This package contains the core domain models exchanged with the backend
// API: repository links, GitHub access tokens, and commit feed entries. The
// commit feed is an explicit tagged union ([CommitEntry.Kind]) so callers
// never have to infer a record's shape from which fields happen to be set.
package model
