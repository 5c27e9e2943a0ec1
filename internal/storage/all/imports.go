// Package all wires all built-in storage backends into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) causes the init functions of each concrete storage backend to run,
// which in turn register their factories with the storage package.
//
// In other words, importing this package makes the following storage kinds
// available at runtime:
//
//   - "parquet"  (mmcd/internal/storage/parquet)
//   - "sqlite"   (mmcd/internal/storage/sqlite)
//   - "postgres" (mmcd/internal/storage/postgres)
//
// Binaries that only need a subset of backends can import the individual
// backend packages instead of this one.
package all

import (
	_ "mmcd/internal/storage/parquet"
	_ "mmcd/internal/storage/postgres"
	_ "mmcd/internal/storage/sqlite"
)
