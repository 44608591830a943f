// Package migrations embeds the SQL schema migrations so the binary
// can migrate any database it can reach without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
