package catalog

import "fmt"

// Record is one catalog entry. A stored record always has a non-empty
// title; author and genre may be blank.
type Record struct {
	Title  string
	Author string
	Genre  string
}

// String renders the one-line listing form used by search results and
// selection menus.
func (r Record) String() string {
	return fmt.Sprintf("%s by %s (%s)", r.Title, r.Author, r.Genre)
}

// Get returns the value of the given field.
func (r Record) Get(f Field) string {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldAuthor:
		return r.Author
	case FieldGenre:
		return r.Genre
	}
	return ""
}

// Set overwrites the given field in place.
func (r *Record) Set(f Field, value string) {
	switch f {
	case FieldTitle:
		r.Title = value
	case FieldAuthor:
		r.Author = value
	case FieldGenre:
		r.Genre = value
	}
}

// Field identifies one of the three record fields. The user-facing
// field names double as the export keys, so ParseField accepts exactly
// "Book", "Author" and "Genre".
type Field int

const (
	FieldTitle Field = iota
	FieldAuthor
	FieldGenre
)

// FieldNames lists the user-facing field names in display order.
var FieldNames = []string{"Book", "Author", "Genre"}

// ParseField maps a user-facing field name to its Field.
// The match is exact - no trimming beyond what the caller did, no
// case folding. Unknown names return ok=false.
func ParseField(name string) (Field, bool) {
	switch name {
	case "Book":
		return FieldTitle, true
	case "Author":
		return FieldAuthor, true
	case "Genre":
		return FieldGenre, true
	}
	return 0, false
}

// Name returns the user-facing name of the field.
func (f Field) Name() string {
	switch f {
	case FieldTitle:
		return "Book"
	case FieldAuthor:
		return "Author"
	case FieldGenre:
		return "Genre"
	}
	return ""
}
