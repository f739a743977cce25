package catalog

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

// Sentinel errors returned by catalog mutations. Callers translate
// these into user-facing messages; no mutation happens when one is
// returned.
var (
	ErrEmptyTitle = errors.New("title must not be empty")
	ErrNoChange   = errors.New("new value is empty")
	ErrIndexRange = errors.New("index out of range")
)

// Entry pairs a record with its 1-based catalog position.
type Entry struct {
	Index  int
	Record Record
}

// Catalog is the ordered in-memory collection of records for one
// program run. Insertion order is preserved. Lookups are linear scans.
//
// Not safe for concurrent use - the session loop is single-threaded
// and owns the catalog exclusively.
type Catalog struct {
	records []Record
	fold    cases.Caser
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{fold: cases.Fold()}
}

// Len returns the number of stored records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Add appends a record. The title must be non-empty after trimming;
// author and genre may be blank. All values are stored trimmed.
// No duplicate checking.
func (c *Catalog) Add(title, author, genre string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	c.records = append(c.records, Record{
		Title:  title,
		Author: strings.TrimSpace(author),
		Genre:  strings.TrimSpace(genre),
	})
	return nil
}

// All returns every record paired with its 1-based position, in
// insertion order.
func (c *Catalog) All() []Entry {
	entries := make([]Entry, len(c.records))
	for i, r := range c.records {
		entries[i] = Entry{Index: i + 1, Record: r}
	}
	return entries
}

// Records returns a copy of the stored records in insertion order.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// MatchTitle returns the records whose title contains query under case
// folding, with their original positions. Edit and delete disambiguate
// against titles only; combined-field matching is reserved for Search.
func (c *Catalog) MatchTitle(query string) []Entry {
	var matches []Entry
	for i, r := range c.records {
		if c.contains(r.Title, query) {
			matches = append(matches, Entry{Index: i + 1, Record: r})
		}
	}
	return matches
}

// Search matches query against the concatenation of title, author and
// genre, case-insensitively, and returns the hits in insertion order.
func (c *Catalog) Search(query string) []Record {
	var hits []Record
	for _, r := range c.records {
		combined := r.Title + " " + r.Author + " " + r.Genre
		if c.contains(combined, query) {
			hits = append(hits, r)
		}
	}
	return hits
}

// SearchGenre matches query against the genre field only.
func (c *Catalog) SearchGenre(query string) []Record {
	var hits []Record
	for _, r := range c.records {
		if c.contains(r.Genre, query) {
			hits = append(hits, r)
		}
	}
	return hits
}

// Get returns the record at the 1-based position.
func (c *Catalog) Get(index int) (Record, error) {
	if index < 1 || index > len(c.records) {
		return Record{}, ErrIndexRange
	}
	return c.records[index-1], nil
}

// Edit overwrites one field of the record at the 1-based position.
// An empty trimmed value returns ErrNoChange and leaves the record
// untouched - the original value survives.
func (c *Catalog) Edit(index int, field Field, value string) error {
	if index < 1 || index > len(c.records) {
		return ErrIndexRange
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrNoChange
	}
	c.records[index-1].Set(field, value)
	return nil
}

// Delete removes the record at the 1-based position and returns it.
// The YES-confirmation protocol lives in the session layer; once
// called, Delete mutates unconditionally.
func (c *Catalog) Delete(index int) (Record, error) {
	if index < 1 || index > len(c.records) {
		return Record{}, ErrIndexRange
	}
	r := c.records[index-1]
	c.records = append(c.records[:index-1], c.records[index:]...)
	return r, nil
}

// contains reports whether query occurs in s under simple Unicode case
// folding. Folding (not ToLower) keeps matches correct for scripts
// where lower-casing is not a stable canonical form.
func (c *Catalog) contains(s, query string) bool {
	return strings.Contains(c.fold.String(s), c.fold.String(query))
}
