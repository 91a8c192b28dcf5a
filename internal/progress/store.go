package progress

import (
	"context"
	"encoding/json"
	"fmt"
)

// Document keys in the backing store. Each document is read and written as a
// whole blob; there are no partial updates at the storage layer.
const (
	KeySettings = "settings"
	KeyStats    = "stats"
	KeyProgress = "progress"

	// KeyResult is the transient handoff document carrying a finished quiz
	// result to the results display. Written once, consumed once.
	KeyResult = "result"
)

// Documents is the storage boundary the progress store writes through.
type Documents interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Put(ctx context.Context, key string, data json.RawMessage) error
	Delete(ctx context.Context, key string) error
}

// Store owns the persisted Settings, Stats, and Progress records. It is
// explicitly constructed and passed to the session and aggregator rather
// than living as ambient global state. There is exactly one logical writer
// at a time; two processes sharing a database race with last-writer-wins,
// an accepted limitation.
type Store struct {
	docs Documents

	Settings Settings
	Stats    Stats
	Progress Progress
}

// Open creates a Store over docs and loads all three documents. Loading
// never fails: each record starts from its defaults and overlays whatever
// persisted fields decode; malformed or absent blobs yield the defaults.
func Open(ctx context.Context, docs Documents) *Store {
	s := &Store{docs: docs}
	s.Settings = loadInto(ctx, docs, KeySettings, DefaultSettings())
	s.Stats = loadInto(ctx, docs, KeyStats, DefaultStats())
	s.Progress = loadInto(ctx, docs, KeyProgress, DefaultProgress())
	s.ensureMaps()
	return s
}

// loadInto decodes the persisted blob over a prefilled default record, so
// persisted fields win and missing fields keep their defaults.
func loadInto[T any](ctx context.Context, docs Documents, key string, def T) T {
	record := def
	raw, ok, err := docs.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return def
	}
	return record
}

// ensureMaps re-initializes any map fields a persisted blob left nil.
func (s *Store) ensureMaps() {
	if s.Progress.DailyStats == nil {
		s.Progress.DailyStats = make(map[string]DayStats)
	}
	if s.Progress.EraStats == nil {
		s.Progress.EraStats = make(map[string]EraStats)
	}
	if s.Progress.WrongQuestions == nil {
		s.Progress.WrongQuestions = make(map[string]QuestionSet)
	}
}

// SaveSettings persists the settings document.
func (s *Store) SaveSettings(ctx context.Context) error {
	return s.put(ctx, KeySettings, s.Settings)
}

// SaveStats persists the lifetime stats document.
func (s *Store) SaveStats(ctx context.Context) error {
	return s.put(ctx, KeyStats, s.Stats)
}

// SaveProgress persists the progress document, with every set field encoded
// as a sorted array.
func (s *Store) SaveProgress(ctx context.Context) error {
	return s.put(ctx, KeyProgress, s.Progress)
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.docs.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// ApplyTheme sets the current theme and persists settings immediately.
func (s *Store) ApplyTheme(ctx context.Context, theme Theme) error {
	s.Settings.Theme = theme
	return s.SaveSettings(ctx)
}

// SetSoundEnabled toggles sound and persists settings immediately.
func (s *Store) SetSoundEnabled(ctx context.Context, enabled bool) error {
	s.Settings.SoundEnabled = enabled
	return s.SaveSettings(ctx)
}

// SetBGMVolume clamps the volume to [0,1] and persists settings immediately.
func (s *Store) SetBGMVolume(ctx context.Context, v float64) error {
	s.Settings.BGMVolume = clampVolume(v)
	return s.SaveSettings(ctx)
}

// SetEffectVolume clamps the volume to [0,1] and persists settings immediately.
func (s *Store) SetEffectVolume(ctx context.Context, v float64) error {
	s.Settings.EffectVolume = clampVolume(v)
	return s.SaveSettings(ctx)
}

// Reset drops all three documents and restores in-memory defaults.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range []string{KeySettings, KeyStats, KeyProgress} {
		if err := s.docs.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	s.Settings = DefaultSettings()
	s.Stats = DefaultStats()
	s.Progress = DefaultProgress()
	return nil
}

// SaveHandoff persists the transient result document for the results
// display to pick up.
func (s *Store) SaveHandoff(ctx context.Context, result any) error {
	return s.put(ctx, KeyResult, result)
}

// TakeHandoff decodes the transient result document into out and deletes
// it. Returns false when no handoff is pending.
func (s *Store) TakeHandoff(ctx context.Context, out any) (bool, error) {
	raw, ok, err := s.docs.Get(ctx, KeyResult)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode result handoff: %w", err)
	}
	if err := s.docs.Delete(ctx, KeyResult); err != nil {
		return false, fmt.Errorf("consume result handoff: %w", err)
	}
	return true, nil
}

// EraProgress returns the stats recorded for one era, zero-valued when the
// era has never been played.
func (s *Store) EraProgress(eraID string) EraStats {
	if es, ok := s.Progress.EraStats[eraID]; ok {
		return es
	}
	return EraStats{WrongQuestions: NewQuestionSet()}
}

// WrongQuestionsFor returns the global wrong-question set for an era.
func (s *Store) WrongQuestionsFor(eraID string) QuestionSet {
	if set, ok := s.Progress.WrongQuestions[eraID]; ok {
		return set
	}
	return NewQuestionSet()
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
