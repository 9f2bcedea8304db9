// Package database provides the local settings store for Linkr.
//
// The package defines the [Store] interface over the client's persisted
// state: the configuration (backend server URL, default project, commit
// page size) and the sealed backend session per server. Nothing fetched
// from the backend is ever cached here; displayed lists always come from
// the last live fetch.
//
// The backend is selected at build time:
//   - Default: BoltDB
//   - With -tags sqlite: SQLite (modernc.org/sqlite, cgo-free)
//
// Use [GetDB] to obtain the singleton instance.
package database
