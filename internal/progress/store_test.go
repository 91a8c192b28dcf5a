package progress

import (
	"context"
	"encoding/json"
	"testing"
)

// memDocs is an in-memory Documents implementation for tests.
type memDocs struct {
	blobs map[string]json.RawMessage
	puts  int
}

func newMemDocs() *memDocs {
	return &memDocs{blobs: make(map[string]json.RawMessage)}
}

func (m *memDocs) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	raw, ok := m.blobs[key]
	return raw, ok, nil
}

func (m *memDocs) Put(ctx context.Context, key string, data json.RawMessage) error {
	m.puts++
	m.blobs[key] = append(json.RawMessage(nil), data...)
	return nil
}

func (m *memDocs) Delete(ctx context.Context, key string) error {
	delete(m.blobs, key)
	return nil
}

func TestOpen_EmptyStoreYieldsDefaults(t *testing.T) {
	s := Open(context.Background(), newMemDocs())

	if s.Settings != DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", s.Settings)
	}
	if s.Stats != DefaultStats() {
		t.Errorf("Stats = %+v, want defaults", s.Stats)
	}
	if s.Progress.DailyStats == nil || s.Progress.EraStats == nil || s.Progress.WrongQuestions == nil {
		t.Error("progress maps not initialized")
	}
}

func TestOpen_PersistedFieldsOverlayDefaults(t *testing.T) {
	docs := newMemDocs()
	// Partial settings blob: only the theme is set; the rest must keep
	// defaults rather than zero values.
	docs.blobs[KeySettings] = json.RawMessage(`{"theme":"night"}`)

	s := Open(context.Background(), docs)

	if s.Settings.Theme != ThemeNight {
		t.Errorf("Theme = %q, want night", s.Settings.Theme)
	}
	if !s.Settings.SoundEnabled {
		t.Error("SoundEnabled lost its default")
	}
	if s.Settings.BGMVolume != 0.3 || s.Settings.EffectVolume != 0.7 {
		t.Errorf("volumes = %v/%v, want defaults 0.3/0.7", s.Settings.BGMVolume, s.Settings.EffectVolume)
	}
}

func TestOpen_MalformedBlobYieldsDefaults(t *testing.T) {
	docs := newMemDocs()
	docs.blobs[KeyStats] = json.RawMessage(`{not json`)
	docs.blobs[KeyProgress] = json.RawMessage(`"a string"`)

	s := Open(context.Background(), docs)

	if s.Stats != DefaultStats() {
		t.Errorf("Stats = %+v, want defaults for malformed blob", s.Stats)
	}
	if s.Progress.EraStats == nil {
		t.Error("Progress maps not initialized for malformed blob")
	}
}

func TestSetters_PersistImmediately(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()
	s := Open(ctx, docs)

	if err := s.ApplyTheme(ctx, ThemeNight); err != nil {
		t.Fatalf("ApplyTheme failed: %v", err)
	}
	if err := s.SetSoundEnabled(ctx, false); err != nil {
		t.Fatalf("SetSoundEnabled failed: %v", err)
	}
	if err := s.SetBGMVolume(ctx, 1.7); err != nil {
		t.Fatalf("SetBGMVolume failed: %v", err)
	}
	if err := s.SetEffectVolume(ctx, -0.2); err != nil {
		t.Fatalf("SetEffectVolume failed: %v", err)
	}

	if docs.puts != 4 {
		t.Errorf("puts = %d, want one per setter", docs.puts)
	}
	if s.Settings.BGMVolume != 1 {
		t.Errorf("BGMVolume = %v, want clamped to 1", s.Settings.BGMVolume)
	}
	if s.Settings.EffectVolume != 0 {
		t.Errorf("EffectVolume = %v, want clamped to 0", s.Settings.EffectVolume)
	}

	// A fresh Open over the same documents sees everything.
	reopened := Open(ctx, docs)
	if reopened.Settings.Theme != ThemeNight || reopened.Settings.SoundEnabled {
		t.Errorf("reopened settings = %+v, changes not persisted", reopened.Settings)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()
	s := Open(ctx, docs)

	if err := s.ApplyTheme(ctx, ThemeNight); err != nil {
		t.Fatalf("ApplyTheme failed: %v", err)
	}
	if err := s.Record(ctx, SessionResult{EraID: "nara", Score: 3, TotalQuestions: 5}, testNow(1)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if s.Settings != DefaultSettings() {
		t.Errorf("Settings = %+v after reset, want defaults", s.Settings)
	}
	if s.Stats != DefaultStats() {
		t.Errorf("Stats = %+v after reset, want defaults", s.Stats)
	}
	if len(docs.blobs) != 0 {
		t.Errorf("%d documents remain after reset", len(docs.blobs))
	}
}

func TestHandoff_RoundTripAndConsume(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()
	s := Open(ctx, docs)

	type payload struct {
		Score int `json:"score"`
	}

	var out payload
	found, err := s.TakeHandoff(ctx, &out)
	if err != nil {
		t.Fatalf("TakeHandoff on empty store failed: %v", err)
	}
	if found {
		t.Fatal("TakeHandoff found a handoff in an empty store")
	}

	if err := s.SaveHandoff(ctx, payload{Score: 17}); err != nil {
		t.Fatalf("SaveHandoff failed: %v", err)
	}

	found, err = s.TakeHandoff(ctx, &out)
	if err != nil {
		t.Fatalf("TakeHandoff failed: %v", err)
	}
	if !found || out.Score != 17 {
		t.Fatalf("TakeHandoff = (%v, %+v), want score 17", found, out)
	}

	// Consumed: a second take finds nothing.
	found, err = s.TakeHandoff(ctx, &out)
	if err != nil {
		t.Fatalf("second TakeHandoff failed: %v", err)
	}
	if found {
		t.Error("handoff not deleted after being taken")
	}
}

func TestEraProgress_UnknownEra(t *testing.T) {
	s := Open(context.Background(), newMemDocs())

	es := s.EraProgress("heian")
	if es.TotalQuestions != 0 || es.WrongQuestions == nil {
		t.Errorf("EraProgress(unknown) = %+v, want zero with live set", es)
	}
	if s.WrongQuestionsFor("heian").Len() != 0 {
		t.Error("WrongQuestionsFor(unknown) should be empty")
	}
}
