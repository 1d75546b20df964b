package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Intent kinds.
const (
	KindToggle = "toggle"
	KindReset  = "reset"
	KindInvert = "invert"
	KindCommit = "commit"
)

// Outcomes.
const (
	OutcomeStaged    = "staged"
	OutcomeRejected  = "rejected"
	OutcomeCommitted = "committed"
	OutcomeNoop      = "noop"
)

// Entry is one journal record.
type Entry struct {
	Seq     int64  `json:"seq"`
	Session string `json:"session"`
	Kind    string `json:"kind"`

	// Row and Col are set for toggle intents only.
	Row *int `json:"row,omitempty"`
	Col *int `json:"col,omitempty"`

	Outcome string `json:"outcome"`

	// OnCount is the number of lit cells in the board the intent produced
	// (staged) or promoted (committed).
	OnCount int `json:"on_count"`

	// Detail carries the error text for rejected intents.
	Detail string `json:"detail,omitempty"`
}

// Journal stores intent entries in SQLite.
type Journal struct {
	db *sql.DB
}

// Open creates or opens a journal database at path.
// Use MemoryPath for a journal that lives only as long as the process.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	// Each connection to ":memory:" is a separate database, so the pool
	// must hold exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record appends an entry.
// Duplicate (session, seq) pairs are ignored so re-recording is idempotent.
func (j *Journal) Record(ctx context.Context, e Entry) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO intents (seq, session, kind, row_idx, col_idx, outcome, on_count, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session, seq) DO NOTHING
	`,
		e.Seq,
		e.Session,
		e.Kind,
		nullableInt(e.Row),
		nullableInt(e.Col),
		e.Outcome,
		e.OnCount,
		e.Detail,
	)
	if err != nil {
		return fmt.Errorf("record intent: %w", err)
	}
	return nil
}

// List returns the entries for a session in seq order.
// An empty session lists every entry.
func (j *Journal) List(ctx context.Context, session string) ([]Entry, error) {
	query := `
		SELECT seq, session, kind, row_idx, col_idx, outcome, on_count, detail
		FROM intents`
	var args []any
	if session != "" {
		query += ` WHERE session = ?`
		args = append(args, session)
	}
	query += ` ORDER BY seq ASC, session ASC`

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list intents: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			row, col sql.NullInt64
		)
		if err := rows.Scan(&e.Seq, &e.Session, &e.Kind, &row, &col, &e.Outcome, &e.OnCount, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan intent: %w", err)
		}
		e.Row = intPtr(row)
		e.Col = intPtr(col)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list intents: %w", err)
	}
	return entries, nil
}

// Count returns the number of entries with the given outcome.
// An empty outcome counts every entry.
func (j *Journal) Count(ctx context.Context, outcome string) (int, error) {
	query := `SELECT COUNT(*) FROM intents`
	var args []any
	if outcome != "" {
		query += ` WHERE outcome = ?`
		args = append(args, outcome)
	}

	var n int
	if err := j.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count intents: %w", err)
	}
	return n, nil
}

func nullableInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
