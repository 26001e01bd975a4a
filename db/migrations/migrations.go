package migrations

import "embed"

// FS holds the numbered up/down SQL pairs embedded from this directory.
// internal/db feeds it to golang-migrate through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects; bump it together
// with every new migration pair added here.
const Version = 1
