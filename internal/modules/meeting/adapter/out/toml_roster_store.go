package out

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/domain"
	meetingout "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/port/out"
)

type rosterFile struct {
	Attendees []rosterEntry `toml:"attendees"`
}

type rosterEntry struct {
	CategoryName string `toml:"category_name"`
	Count        int    `toml:"count"`
}

// TOMLRosterStore persists the roster as an [[attendees]] array of
// {category_name, count} refs. A missing file reads back empty.
type TOMLRosterStore struct {
	path string
}

func NewTOMLRosterStore(path string) meetingout.RosterStore {
	return &TOMLRosterStore{path: path}
}

func (s *TOMLRosterStore) Load(_ context.Context) ([]domain.RosterRef, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}
	file := rosterFile{}
	if err := toml.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	refs := make([]domain.RosterRef, 0, len(file.Attendees))
	for _, entry := range file.Attendees {
		refs = append(refs, domain.RosterRef{CategoryName: entry.CategoryName, Count: entry.Count})
	}
	return refs, nil
}

func (s *TOMLRosterStore) Save(_ context.Context, refs []domain.RosterRef) error {
	file := rosterFile{Attendees: make([]rosterEntry, 0, len(refs))}
	for _, ref := range refs {
		file.Attendees = append(file.Attendees, rosterEntry{CategoryName: ref.CategoryName, Count: ref.Count})
	}
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(file); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create roster dir: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}
