package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/matsen/bibconv/internal/fields"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database holding an exported bibliography.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		-- One row per reference, in bibliography order
		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY,
			refnum TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_records_refnum ON records(refnum);

		-- Fields keep their order within the record
		CREATE TABLE IF NOT EXISTS fields (
			record_id INTEGER NOT NULL REFERENCES records(id),
			position INTEGER NOT NULL,
			tag TEXT NOT NULL,
			value TEXT NOT NULL,
			level INTEGER NOT NULL,
			PRIMARY KEY (record_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_fields_tag ON fields(tag);

		CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
			record_id UNINDEXED,
			title,
			authors_text,
			year
		);
	`

	_, err := db.Exec(schema)
	return err
}

// WriteBibliography replaces the database contents with b and returns the
// number of records written.
func (d *DB) WriteBibliography(b *fields.Bibliography) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"fields", "records", "records_fts"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return 0, fmt.Errorf("clearing %s table: %w", table, err)
		}
	}

	recStmt, err := tx.Prepare(`INSERT INTO records (id, refnum) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing records insert: %w", err)
	}
	defer recStmt.Close()

	fieldStmt, err := tx.Prepare(`
		INSERT INTO fields (record_id, position, tag, value, level)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fields insert: %w", err)
	}
	defer fieldStmt.Close()

	ftsStmt, err := tx.Prepare(`
		INSERT INTO records_fts (record_id, title, authors_text, year)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, ref := range b.All() {
		id := i + 1
		refnum := ref.Lookup("REFNUM", fields.LevelMain)
		if _, err := recStmt.Exec(id, nullableStringValue(refnum)); err != nil {
			return 0, fmt.Errorf("inserting record %d: %w", id, err)
		}
		for pos, f := range ref.All() {
			if _, err := fieldStmt.Exec(id, pos, f.Tag, f.Value, f.Level); err != nil {
				return 0, fmt.Errorf("inserting field %s of record %d: %w", f.Tag, id, err)
			}
		}
		_, err := ftsStmt.Exec(id,
			ref.Lookup("TITLE", fields.LevelMain),
			formatAuthorsText(ref),
			ref.Lookup("YEAR", fields.LevelAny),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting fts for record %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return b.Len(), nil
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL field dump.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	b, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}
	return d.WriteBibliography(b)
}

// formatAuthorsText creates a searchable text representation of the
// record's authors. Stored names have the form "Family|Given".
func formatAuthorsText(ref *fields.Fields) string {
	var names []string
	for _, f := range ref.All() {
		if !strings.HasPrefix(strings.ToUpper(f.Tag), "AUTHOR") {
			continue
		}
		family, given, ok := strings.Cut(f.Value, "|")
		if ok && given != "" {
			names = append(names, strings.ReplaceAll(given, "|", " ")+" "+family)
		} else {
			names = append(names, family)
		}
	}
	return strings.Join(names, ", ")
}

// ReadBibliography loads every record in its original order.
func (d *DB) ReadBibliography() (*fields.Bibliography, error) {
	rows, err := d.db.Query(`SELECT id FROM records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	ids, err := scanIDs(rows)
	if err != nil {
		return nil, err
	}
	return d.loadRecords(ids)
}

// GetByRefnum retrieves the first record with the given citation key, or nil.
func (d *DB) GetByRefnum(refnum string) (*fields.Fields, error) {
	var id int
	err := d.db.QueryRow(`SELECT id FROM records WHERE refnum = ? ORDER BY id LIMIT 1`, refnum).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("looking up %s: %w", refnum, err)
	}
	return d.loadRecord(id)
}

// Search performs a full-text search over titles, authors and years.
func (d *DB) Search(query string, limit int) (*fields.Bibliography, error) {
	return d.searchFTS(prepareFTSQuery(query), limit)
}

// SearchField performs a search on a specific field.
func (d *DB) SearchField(field, value string, limit int) (*fields.Bibliography, error) {
	var ftsQuery string

	switch field {
	case "author":
		ftsQuery = "authors_text:" + prepareAuthorQuery(value)
	case "title":
		ftsQuery = "title:" + prepareFTSQuery(value)
	case "year":
		ftsQuery = "year:" + prepareFTSQuery(value)
	default:
		return nil, fmt.Errorf("unknown search field: %s", field)
	}

	return d.searchFTS(ftsQuery, limit)
}

func (d *DB) searchFTS(ftsQuery string, limit int) (*fields.Bibliography, error) {
	rows, err := d.db.Query(`
		SELECT record_id FROM records_fts
		WHERE records_fts MATCH ?
		ORDER BY CAST(record_id AS INTEGER)
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	ids, err := scanIDs(rows)
	if err != nil {
		return nil, err
	}
	return d.loadRecords(ids)
}

// Count returns the total number of records.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

func (d *DB) loadRecords(ids []int) (*fields.Bibliography, error) {
	b := fields.NewBibliography()
	for _, id := range ids {
		ref, err := d.loadRecord(id)
		if err != nil {
			return nil, err
		}
		b.Add(ref)
	}
	return b, nil
}

func (d *DB) loadRecord(id int) (*fields.Fields, error) {
	rows, err := d.db.Query(`
		SELECT tag, value, level FROM fields
		WHERE record_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("loading record %d: %w", id, err)
	}
	defer rows.Close()

	ref := fields.New()
	for rows.Next() {
		var tag, value string
		var level int
		if err := rows.Scan(&tag, &value, &level); err != nil {
			return nil, fmt.Errorf("scanning record %d: %w", id, err)
		}
		ref.Add(tag, value, level)
	}
	return ref, rows.Err()
}

func scanIDs(rows *sql.Rows) ([]int, error) {
	defer rows.Close()
	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// prepareAuthorQuery prepares an author name for FTS5 search with prefix matching.
// It adds a wildcard (*) so "Tim" matches "Timothy".
func prepareAuthorQuery(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return author
	}

	var terms []string
	for _, part := range strings.Fields(author) {
		escaped := strings.ReplaceAll(part, "\"", "\"\"")
		terms = append(terms, "\""+escaped+"\"*")
	}

	// Use OR for multi-word author queries (match any part)
	return "(" + strings.Join(terms, " OR ") + ")"
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// FTS5 uses double quotes for phrase matching
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
