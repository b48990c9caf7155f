package kvstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d testDoc) RecordID() string { return d.ID }

func stores(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestRead_MissingKey(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var out []testDoc
			err := s.Read(context.Background(), "leads", &out)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestWrite_ReplacesPriorValue(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Write(ctx, "leads", []testDoc{{ID: "a"}, {ID: "b"}}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := s.Write(ctx, "leads", []testDoc{{ID: "c"}}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var out []testDoc
			if err := s.Read(ctx, "leads", &out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out) != 1 || out[0].ID != "c" {
				t.Errorf("expected full replacement, got %+v", out)
			}
		})
	}
}

func TestRevision_IncrementsOnWrite(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			rev0, err := s.Revision(ctx, "leads")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rev0 != 0 {
				t.Errorf("expected revision 0 before first write, got %d", rev0)
			}
			s.Write(ctx, "leads", []testDoc{{ID: "a"}})
			s.Write(ctx, "leads", []testDoc{{ID: "b"}})
			rev, err := s.Revision(ctx, "leads")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rev != 2 {
				t.Errorf("expected revision 2, got %d", rev)
			}
		})
	}
}

func TestDelete_AbsentKeyIsNoop(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Delete(context.Background(), "nothing"); err != nil {
				t.Errorf("expected nil for absent key, got %v", err)
			}
		})
	}
}

func TestFileStore_CorruptDataFailsFast(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "leads.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out []testDoc
	err = fs.Read(context.Background(), "leads", &out)
	if err == nil {
		t.Fatal("expected decode error for corrupt data")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("corrupt data must not be reported as missing")
	}
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out []testDoc
	if err := fs.Read(context.Background(), "../etc/passwd", &out); err == nil {
		t.Error("expected error for path traversal key")
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fs1, _ := NewFileStore(dir)
	if err := fs1.Write(ctx, "doctors", []testDoc{{ID: "d1", Name: "Dr. A"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fs2, _ := NewFileStore(dir)
	var out []testDoc
	if err := fs2.Read(ctx, "doctors", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Dr. A" {
		t.Errorf("expected persisted record, got %+v", out)
	}
}

func TestFileStore_RevisionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fs1, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fs1.Write(ctx, "leads", []testDoc{{ID: "a"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fs1.Write(ctx, "leads", []testDoc{{ID: "b"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fs2, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rev, err := fs2.Revision(ctx, "leads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev != 2 {
		t.Errorf("expected revision 2 after reopen, got %d", rev)
	}

	// A poller holding revision 2 must see movement only on a new write.
	if err := fs2.Write(ctx, "leads", []testDoc{{ID: "c"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rev, _ = fs2.Revision(ctx, "leads")
	if rev != 3 {
		t.Errorf("expected revision 3 after write, got %d", rev)
	}
}

func TestFileStore_RejectsDotKeys(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fs.Write(context.Background(), ".revisions", []testDoc{}); err == nil {
		t.Error("expected error for dot-prefixed key")
	}
}
