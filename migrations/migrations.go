// Package migrations embeds the record store schema so the server binary
// is self-contained.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
