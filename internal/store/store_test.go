package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestDocuments_RoundTrip(t *testing.T) {
	ctx := context.Background()
	docs := openTestStore(t).Documents()

	_, found, err := docs.Get(ctx, "settings")
	if err != nil {
		t.Fatalf("Get on empty table failed: %v", err)
	}
	if found {
		t.Fatal("Get found a document in an empty table")
	}

	blob := json.RawMessage(`{"theme":"night","soundEnabled":false}`)
	if err := docs.Put(ctx, "settings", blob); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, found, err := docs.Get(ctx, "settings")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("Get did not find the stored document")
	}
	if string(got) != string(blob) {
		t.Errorf("Get = %s, want %s", got, blob)
	}
}

func TestDocuments_PutReplaces(t *testing.T) {
	ctx := context.Background()
	docs := openTestStore(t).Documents()

	if err := docs.Put(ctx, "stats", json.RawMessage(`{"correctAnswers":1}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := docs.Put(ctx, "stats", json.RawMessage(`{"correctAnswers":2}`)); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, _, err := docs.Get(ctx, "stats")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	var parsed struct {
		CorrectAnswers int `json:"correctAnswers"`
	}
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("stored blob is not JSON: %v", err)
	}
	if parsed.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want the replaced value 2", parsed.CorrectAnswers)
	}
}

func TestDocuments_Delete(t *testing.T) {
	ctx := context.Background()
	docs := openTestStore(t).Documents()

	if err := docs.Put(ctx, "result", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := docs.Delete(ctx, "result"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := docs.Get(ctx, "result"); found {
		t.Error("deleted document still present")
	}

	// Deleting an absent key is fine.
	if err := docs.Delete(ctx, "result"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := st.Documents().Put(ctx, "progress", json.RawMessage(`{"totalStudySessions":3}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	st2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer st2.Close()

	_, found, err := st2.Documents().Get(ctx, "progress")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if !found {
		t.Error("document lost across reopen")
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("REKISHI_DB", custom)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath failed: %v", err)
	}
	if p != custom {
		t.Errorf("path = %s, want env override %s", p, custom)
	}
}
