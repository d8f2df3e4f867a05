package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/domain"
	meetingout "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/port/out"

	_ "modernc.org/sqlite"
)

const ledgerTimeLayout = "2006-01-02T15:04:05Z07:00"

type attendeeRef struct {
	CategoryName string `json:"category_name"`
	Count        int    `json:"count"`
}

// SQLiteLedgerStore appends finished meetings to a meetings table. The
// attendee breakdown is stored as a JSON column since it is only ever
// read back whole.
type SQLiteLedgerStore struct {
	db *sql.DB
}

func NewSQLiteLedgerStore(dbPath string) (meetingout.LedgerStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteLedgerStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteLedgerStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS meetings (
  id TEXT PRIMARY KEY,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  duration_ms INTEGER NOT NULL,
  headcount INTEGER NOT NULL,
  hourly_rate REAL NOT NULL,
  total_cost REAL NOT NULL,
  attendees TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create meetings table: %w", err)
	}
	return nil
}

func (s *SQLiteLedgerStore) Append(ctx context.Context, record domain.MeetingRecord) error {
	attendees := make([]attendeeRef, 0, len(record.Attendees))
	for _, ref := range record.Attendees {
		attendees = append(attendees, attendeeRef{CategoryName: ref.CategoryName, Count: ref.Count})
	}
	payload, err := json.Marshal(attendees)
	if err != nil {
		return fmt.Errorf("marshal attendees: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO meetings (id, started_at, ended_at, duration_ms, headcount, hourly_rate, total_cost, attendees)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`,
		record.ID,
		record.StartedAt.Format(ledgerTimeLayout),
		record.EndedAt.Format(ledgerTimeLayout),
		record.Duration.Milliseconds(),
		record.Headcount,
		record.HourlyRate,
		record.TotalCost,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("append meeting: %w", err)
	}
	return nil
}

// List returns the most recently ended meetings first.
func (s *SQLiteLedgerStore) List(ctx context.Context, limit int) ([]domain.MeetingRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, started_at, ended_at, duration_ms, headcount, hourly_rate, total_cost, attendees
FROM meetings
ORDER BY ended_at DESC, rowid DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	out := make([]domain.MeetingRecord, 0, limit)
	for rows.Next() {
		var (
			record     domain.MeetingRecord
			startedAt  string
			endedAt    string
			durationMS int64
			attendees  string
		)
		if err := rows.Scan(&record.ID, &startedAt, &endedAt, &durationMS, &record.Headcount, &record.HourlyRate, &record.TotalCost, &attendees); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		if record.StartedAt, err = time.Parse(ledgerTimeLayout, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if record.EndedAt, err = time.Parse(ledgerTimeLayout, endedAt); err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		record.Duration = time.Duration(durationMS) * time.Millisecond
		refs := []attendeeRef{}
		if err := json.Unmarshal([]byte(attendees), &refs); err != nil {
			return nil, fmt.Errorf("decode attendees: %w", err)
		}
		for _, ref := range refs {
			record.Attendees = append(record.Attendees, domain.RosterRef{CategoryName: ref.CategoryName, Count: ref.Count})
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}
	return out, nil
}
