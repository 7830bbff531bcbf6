package feedback

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Rating records whether an explanation helped, keyed to the finding and
// the redacted span it described.
type Rating struct {
	ID        string    `json:"id"`
	FindingID string    `json:"findingId"`
	SpanHash  string    `json:"spanHash"`
	Helpful   bool      `json:"helpful"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists explanation ratings in a local SQLite database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS ratings (
	id         TEXT PRIMARY KEY,
	finding_id TEXT NOT NULL,
	span_hash  TEXT NOT NULL,
	helpful    INTEGER NOT NULL,
	note       TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ratings_finding ON ratings(finding_id);
`

// Open opens (creating if necessary) the ratings database at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("creating feedback directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening feedback database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to feedback database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing feedback schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a rating, filling in the ID and timestamp, and returns the
// stored row.
func (s *Store) Save(findingID, spanHash string, helpful bool, note string) (Rating, error) {
	if findingID == "" {
		return Rating{}, fmt.Errorf("finding id is required")
	}
	r := Rating{
		ID:        uuid.NewString(),
		FindingID: findingID,
		SpanHash:  spanHash,
		Helpful:   helpful,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO ratings (id, finding_id, span_hash, helpful, note, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.FindingID, r.SpanHash, boolToInt(r.Helpful), r.Note, r.CreatedAt,
	)
	if err != nil {
		return Rating{}, fmt.Errorf("inserting rating: %w", err)
	}
	return r, nil
}

// List returns ratings newest first. When findingID is non-empty only
// ratings for that finding are returned.
func (s *Store) List(findingID string) ([]Rating, error) {
	query := `SELECT id, finding_id, span_hash, helpful, note, created_at FROM ratings`
	args := []any{}
	if findingID != "" {
		query += ` WHERE finding_id = ?`
		args = append(args, findingID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying ratings: %w", err)
	}
	defer rows.Close()

	var ratings []Rating
	for rows.Next() {
		var r Rating
		var helpful int
		if err := rows.Scan(&r.ID, &r.FindingID, &r.SpanHash, &helpful, &r.Note, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning rating: %w", err)
		}
		r.Helpful = helpful != 0
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}

// Summary aggregates helpful/unhelpful counts per finding.
type Summary struct {
	FindingID string `json:"findingId"`
	Helpful   int    `json:"helpful"`
	Unhelpful int    `json:"unhelpful"`
}

// Summarize returns per-finding rating counts ordered by finding ID.
func (s *Store) Summarize() ([]Summary, error) {
	rows, err := s.db.Query(`
		SELECT finding_id,
		       SUM(CASE WHEN helpful != 0 THEN 1 ELSE 0 END),
		       SUM(CASE WHEN helpful = 0 THEN 1 ELSE 0 END)
		FROM ratings
		GROUP BY finding_id
		ORDER BY finding_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("summarizing ratings: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.FindingID, &s.Helpful, &s.Unhelpful); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
