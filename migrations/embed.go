package migrations

import "embed"

// Files stores forward-only SQL migrations embedded into the binary, one directory per dialect.
//
//go:embed sqlite/*.sql mysql/*.sql
var Files embed.FS
