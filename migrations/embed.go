package migrations

import "embed"

// Files stores forward-only goose migrations for every supported dialect,
// one directory per dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var Files embed.FS
