// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/models"
)

// failingBackend fails every operation.
type failingBackend struct{ err error }

func (f failingBackend) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingBackend) Put(context.Context, string, []byte) error { return f.err }
func (f failingBackend) Delete(context.Context, string) error { return f.err }
func (f failingBackend) Close() error { return nil }

func sampleSnapshot() Snapshot {
	return Snapshot{
		Language: models.LangEnglish,
		Filters: Filters{
			Category:             models.CategoryPodcast,
			Masterpiece:          true,
			PodcastLanguages:     []models.Lang{"es"},
			DocumentaryLanguages: []models.Lang{},
		},
		Catalog: []models.CatalogItem{
			{ID: "p1", Category: models.CategoryPodcast, Title: models.LocalizedMap("es", "Charlas", "en", "Talks")},
		},
	}
}

func newBadgerStore(t *testing.T) *Store {
	t.Helper()
	b, err := OpenBadger(t.TempDir(), false)
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	s := New(b, "")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	backends := map[string]func(t *testing.T) *Store{
		"memory": func(*testing.T) *Store { return New(NewMemoryBackend(), "") },
		"badger": newBadgerStore,
	}

	for name, open := range backends {
		open := open
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s := open(t)
			fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			s.now = func() time.Time { return fixed }

			if got := s.Load(ctx); got != nil {
				t.Fatalf("Load() on empty store = %+v, want nil", got)
			}

			if err := s.Save(ctx, sampleSnapshot()); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got := s.Load(ctx)
			if got == nil {
				t.Fatal("Load() = nil after Save")
			}
			if got.Version != CurrentVersion || !got.SavedAt.Equal(fixed) {
				t.Errorf("Version=%d SavedAt=%v", got.Version, got.SavedAt)
			}
			if !got.Filters.Equal(sampleSnapshot().Filters) {
				t.Errorf("Filters = %+v", got.Filters)
			}
			if got.Language != models.LangEnglish {
				t.Errorf("Language = %q", got.Language)
			}
			if len(got.Catalog) != 1 || got.Catalog[0].ID != "p1" {
				t.Errorf("Catalog = %+v", got.Catalog)
			}

			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			if s.Load(ctx) != nil {
				t.Error("Load() after Clear should be nil")
			}
		})
	}
}

func TestStore_BadgerInMemory(t *testing.T) {
	t.Parallel()

	b, err := OpenBadger("", true)
	if err != nil {
		t.Fatalf("OpenBadger(in memory) error = %v", err)
	}
	s := New(b, "custom")
	defer func() { _ = s.Close() }()

	if err := s.Save(context.Background(), Snapshot{Language: "es"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := s.Load(context.Background()); got == nil || got.Language != "es" {
		t.Errorf("Load() = %+v", got)
	}
}

func TestStore_LoadNeverFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("backend unavailable", func(t *testing.T) {
		s := New(failingBackend{err: errors.New("disk gone")}, "")
		if s.Load(ctx) != nil {
			t.Error("Load() should return nil")
		}
		if err := s.Save(ctx, Snapshot{}); err == nil {
			t.Error("Save() should report the backend error")
		}
	})

	t.Run("corrupt payload", func(t *testing.T) {
		b := NewMemoryBackend()
		_ = b.Put(ctx, DefaultKey, []byte("{not json"))
		if New(b, "").Load(ctx) != nil {
			t.Error("Load() should return nil for corrupt payload")
		}
	})

	t.Run("newer version discarded", func(t *testing.T) {
		b := NewMemoryBackend()
		_ = b.Put(ctx, DefaultKey, []byte(`{"version": 99}`))
		if New(b, "").Load(ctx) != nil {
			t.Error("Load() should return nil for unsupported version")
		}
		if _, err := b.Get(ctx, DefaultKey); !errors.Is(err, ErrNotFound) {
			t.Error("unsupported snapshot should be deleted")
		}
	})
}

func TestMigrate_IdentityAtCurrentVersion(t *testing.T) {
	t.Parallel()

	in := sampleSnapshot()
	in.Version = CurrentVersion
	in.SavedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	payload, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	out, err := Migrate(payload, CurrentVersion)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	again, err := json.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(payload) {
		t.Errorf("Migrate() at current version changed the payload:\n got %s\nwant %s", again, payload)
	}
}

func TestMigrate_V1(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		version int
		want    Filters
		lang    models.Lang
	}{
		{
			name: "explicit v1",
			payload: `{"version":1,"lang":"en-GB","selectedCategory":"documentales","isMasterpieceActive":true,
				"podcastLanguage":"","documentaryLanguage":"ES","catalog":[{"id":"d1","category":"documentales"}]}`,
			version: 1,
			want: Filters{
				Category:             models.CategoryDocumentaries,
				Masterpiece:          true,
				PodcastLanguages:     []models.Lang{},
				DocumentaryLanguages: []models.Lang{"es"},
			},
			lang: "en",
		},
		{
			name:    "unversioned legacy payload",
			payload: `{"lang":"es","selectedCategory":"Películas","isRegionalCinemaActive":true}`,
			version: 0,
			want: Filters{
				Category:             models.CategoryMovies,
				RegionalCinema:       true,
				PodcastLanguages:     []models.Lang{},
				DocumentaryLanguages: []models.Lang{},
			},
			lang: "es",
		},
		{
			name:    "unknown category dropped",
			payload: `{"version":1,"selectedCategory":"recipes"}`,
			version: 1,
			want:    Filters{PodcastLanguages: []models.Lang{}, DocumentaryLanguages: []models.Lang{}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Migrate([]byte(tt.payload), tt.version)
			if err != nil {
				t.Fatalf("Migrate() error = %v", err)
			}
			if got.Version != CurrentVersion {
				t.Errorf("Version = %d", got.Version)
			}
			if !got.Filters.Equal(tt.want) {
				t.Errorf("Filters = %+v, want %+v", got.Filters, tt.want)
			}
			if got.Language != tt.lang {
				t.Errorf("Language = %q, want %q", got.Language, tt.lang)
			}
		})
	}
}

func TestMigrate_Unsupported(t *testing.T) {
	t.Parallel()

	for _, v := range []int{-1, CurrentVersion + 1} {
		if _, err := Migrate([]byte(`{}`), v); !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("Migrate(v=%d) error = %v, want ErrUnsupportedVersion", v, err)
		}
	}
	if _, err := Migrate([]byte(`[]`), 1); err == nil {
		t.Error("Migrate() should fail on a payload v1 cannot decode")
	}
}

func TestOpenBackend(t *testing.T) {
	t.Parallel()

	b, err := OpenBackend(BackendConfig{Type: BackendMemory})
	if err != nil {
		t.Fatalf("OpenBackend(memory) error = %v", err)
	}
	if _, ok := b.(*MemoryBackend); !ok {
		t.Errorf("OpenBackend(memory) = %T", b)
	}

	if _, err := OpenBackend(BackendConfig{Type: "redis"}); err == nil {
		t.Error("OpenBackend(redis) should fail")
	}
}
