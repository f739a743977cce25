// Package catalog holds the in-memory book catalog: a flat ordered
// collection of records plus its query and mutation operations.
//
// The catalog is explicitly constructed and owned by its caller (the
// interactive session); there is no package-level state. It lives for
// one process run - the only way data leaves it is the export package.
//
// Positions are 1-based and meaningful only for display numbering.
// All matching is substring-based under Unicode case folding.
package catalog
