package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/roach88/bookshelf/internal/catalog"
	"github.com/roach88/bookshelf/internal/export"
)

// Session runs the interactive menu loop against a single catalog.
// All input comes from one scanner; all user-facing text goes to out.
// The loop is the single recovery boundary: no operation is fatal and
// every handler returns control to the menu regardless of outcome.
type Session struct {
	Catalog  *catalog.Catalog
	Exporter *export.Writer

	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session over the given catalog and I/O streams.
// The exporter defaults to JSON files in the current directory.
func NewSession(cat *catalog.Catalog, in io.Reader, out io.Writer) *Session {
	return &Session{
		Catalog:  cat,
		Exporter: &export.Writer{Dir: "."},
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the menu loop until the user picks Exit or input ends.
func (s *Session) Run() {
	for {
		s.printMenu()
		choice, ok := s.readLine("\nChoose an option: ")
		if !ok {
			// Input exhausted; treat like Exit.
			fmt.Fprintln(s.out, "Goodbye!")
			return
		}

		switch choice {
		case "1":
			s.addBook()
		case "2":
			s.viewAll()
		case "3":
			s.searchBooks()
		case "4":
			s.editBook()
		case "5":
			s.deleteBook()
		case "6":
			s.searchByGenre()
		case "7":
			s.exportCatalog()
		case "8":
			fmt.Fprintln(s.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "\n=== Book Catalog ===")
	fmt.Fprintln(s.out, "1. Add new Book")
	fmt.Fprintln(s.out, "2. View all Books")
	fmt.Fprintln(s.out, "3. Search Book")
	fmt.Fprintln(s.out, "4. Edit Book")
	fmt.Fprintln(s.out, "5. Delete Book")
	fmt.Fprintln(s.out, "6. Search by Genre")
	fmt.Fprintln(s.out, "7. Export to file")
	fmt.Fprintln(s.out, "8. Exit")
}

// readLine prints prompt and returns the next input line, trimmed.
// ok is false once input is exhausted.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// parseChoice converts a numbered-menu pick to an int. The explicit
// ok result keeps parse failures out of the control flow.
func parseChoice(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Session) addBook() {
	title, ok := s.readLine("Enter name of Book: ")
	if !ok {
		return
	}
	author, ok := s.readLine("Enter name of Author: ")
	if !ok {
		return
	}
	genre, ok := s.readLine("Enter name of Genre: ")
	if !ok {
		return
	}

	if err := s.Catalog.Add(title, author, genre); err != nil {
		fmt.Fprintln(s.out, "Book title cannot be empty.")
		return
	}
	slog.Debug("book added", "title", strings.TrimSpace(title))
	fmt.Fprintln(s.out, "Book added successfully!")
}

func (s *Session) viewAll() {
	if s.Catalog.Len() == 0 {
		fmt.Fprintln(s.out, "No books yet!")
		return
	}

	for _, e := range s.Catalog.All() {
		fmt.Fprintf(s.out, "\n--- Book %d ---\n", e.Index)
		fmt.Fprintf(s.out, "Book: %s\n", e.Record.Title)
		fmt.Fprintf(s.out, "Author: %s\n", e.Record.Author)
		fmt.Fprintf(s.out, "Genre: %s\n", e.Record.Genre)
	}
}

func (s *Session) searchBooks() {
	if s.Catalog.Len() == 0 {
		fmt.Fprintln(s.out, "No books in the database yet!")
		return
	}

	query, ok := s.readLine("Search for (title / author / genre): ")
	if !ok {
		return
	}

	hits := s.Catalog.Search(query)
	if len(hits) == 0 {
		fmt.Fprintln(s.out, "No items found.")
		return
	}
	for _, r := range hits {
		fmt.Fprintf(s.out, "- %s\n", r)
	}
}

// selectByTitle is the disambiguation flow shared by edit and delete:
// match by title substring, list matches 1-based, let the user pick
// one by number. Any invalid choice aborts the operation - there is no
// retry loop, the user re-invokes from the menu.
func (s *Session) selectByTitle(titlePrompt, pickPrompt string) (catalog.Entry, bool) {
	query, ok := s.readLine(titlePrompt)
	if !ok {
		return catalog.Entry{}, false
	}

	matches := s.Catalog.MatchTitle(query)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No books found with that title.")
		return catalog.Entry{}, false
	}

	fmt.Fprintln(s.out, "\nMatching books:")
	for i, m := range matches {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, m.Record)
	}

	raw, ok := s.readLine(pickPrompt)
	if !ok {
		return catalog.Entry{}, false
	}
	choice, ok := parseChoice(raw)
	if !ok {
		fmt.Fprintln(s.out, "Please enter a valid number.")
		return catalog.Entry{}, false
	}
	if choice < 1 || choice > len(matches) {
		fmt.Fprintln(s.out, "Invalid selection.")
		return catalog.Entry{}, false
	}
	return matches[choice-1], true
}

func (s *Session) editBook() {
	if s.Catalog.Len() == 0 {
		fmt.Fprintln(s.out, "No books to edit yet!")
		return
	}

	entry, ok := s.selectByTitle(
		"Enter the Book title to edit: ",
		"\nEnter the number of the book to edit: ")
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "\nWhich field do you want to edit?")
	for _, name := range catalog.FieldNames {
		fmt.Fprintf(s.out, "- %s\n", name)
	}

	rawField, ok := s.readLine("Enter field name exactly as shown: ")
	if !ok {
		return
	}
	field, ok := catalog.ParseField(rawField)
	if !ok {
		fmt.Fprintln(s.out, "Invalid field name.")
		return
	}

	value, ok := s.readLine(fmt.Sprintf(
		"Enter new value for %s (current: %s): ", field.Name(), entry.Record.Get(field)))
	if !ok {
		return
	}

	err := s.Catalog.Edit(entry.Index, field, value)
	switch {
	case err == nil:
		slog.Debug("book updated", "index", entry.Index, "field", field.Name())
		fmt.Fprintln(s.out, "Book updated successfully!")
	case errors.Is(err, catalog.ErrNoChange):
		fmt.Fprintln(s.out, "No change made.")
	default:
		fmt.Fprintf(s.out, "Edit failed: %v\n", err)
	}
}

func (s *Session) deleteBook() {
	if s.Catalog.Len() == 0 {
		fmt.Fprintln(s.out, "No books to delete yet!")
		return
	}

	entry, ok := s.selectByTitle(
		"Enter the title of the Book to delete: ",
		"\nEnter the number of the book to delete: ")
	if !ok {
		return
	}

	confirm, ok := s.readLine(fmt.Sprintf("Type YES to confirm delete '%s': ", entry.Record.Title))
	if !ok {
		return
	}
	// Literal token, compared after upper-casing the trimmed input.
	if strings.ToUpper(confirm) != "YES" {
		fmt.Fprintln(s.out, "Delete cancelled.")
		return
	}

	if _, err := s.Catalog.Delete(entry.Index); err != nil {
		fmt.Fprintf(s.out, "Delete failed: %v\n", err)
		return
	}
	slog.Debug("book deleted", "title", entry.Record.Title)
	fmt.Fprintln(s.out, "Book deleted successfully!")
}

func (s *Session) searchByGenre() {
	if s.Catalog.Len() == 0 {
		fmt.Fprintln(s.out, "No books in the database yet!")
		return
	}

	query, ok := s.readLine("Enter the Genre to search for: ")
	if !ok {
		return
	}

	hits := s.Catalog.SearchGenre(query)
	fmt.Fprintf(s.out, "\nBooks in Genre '%s':\n", query)
	if len(hits) == 0 {
		fmt.Fprintln(s.out, "No books found in that Genre.")
		return
	}
	for _, r := range hits {
		fmt.Fprintf(s.out, "- %s by %s\n", r.Title, r.Author)
	}
}

func (s *Session) exportCatalog() {
	if s.Catalog.Len() == 0 {
		fmt.Fprintln(s.out, "No books to export yet!")
		return
	}

	path, err := s.Exporter.Write(s.Catalog.Records())
	if err != nil {
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	slog.Debug("catalog exported", "path", path, "records", s.Catalog.Len())
	fmt.Fprintf(s.out, "Export complete: %s\n", path)
}
