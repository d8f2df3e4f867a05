package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	meetingout "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/adapter/out"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/domain"
)

func TestTOMLRosterStoreLoadMissingReturnsEmpty(t *testing.T) {
	t.Parallel()
	store := meetingout.NewTOMLRosterStore(filepath.Join(t.TempDir(), "attendees.toml"))
	refs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load roster: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected empty roster, got %d", len(refs))
	}
}

func TestTOMLRosterStoreSaveThenLoadKeepsOrder(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "attendees.toml")
	store := meetingout.NewTOMLRosterStore(path)

	refs := []domain.RosterRef{
		{CategoryName: "Engineer", Count: 3},
		{CategoryName: "Manager", Count: 1},
	}
	if err := store.Save(context.Background(), refs); err != nil {
		t.Fatalf("save roster: %v", err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read roster file: %v", err)
	}
	text := string(payload)
	if !strings.Contains(text, "[[attendees]]") || !strings.Contains(text, `category_name = "Engineer"`) {
		t.Fatalf("unexpected roster file contents: %s", text)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load roster: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected two refs, got %d", len(loaded))
	}
	if loaded[0].CategoryName != "Engineer" || loaded[0].Count != 3 {
		t.Fatalf("unexpected first ref: %+v", loaded[0])
	}
	if loaded[1].CategoryName != "Manager" || loaded[1].Count != 1 {
		t.Fatalf("unexpected second ref: %+v", loaded[1])
	}
}

func TestTOMLRosterStoreSaveEmptyTruncates(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "attendees.toml")
	store := meetingout.NewTOMLRosterStore(path)

	if err := store.Save(context.Background(), []domain.RosterRef{{CategoryName: "Engineer", Count: 2}}); err != nil {
		t.Fatalf("save roster: %v", err)
	}
	if err := store.Save(context.Background(), nil); err != nil {
		t.Fatalf("save empty roster: %v", err)
	}
	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load roster: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty roster after clearing save, got %d", len(loaded))
	}
}

func TestTOMLRosterStoreRejectsMalformedTOML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "attendees.toml")
	if err := os.WriteFile(path, []byte("attendees = not-toml"), 0o644); err != nil {
		t.Fatalf("write roster file: %v", err)
	}
	store := meetingout.NewTOMLRosterStore(path)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
