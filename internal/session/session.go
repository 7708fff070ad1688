// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package session

import (
	"context"
	"slices"
	"sync"

	"github.com/tomtom215/recomendador/internal/catalog"
	"github.com/tomtom215/recomendador/internal/filter"
	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/metrics"
	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/navigation"
	"github.com/tomtom215/recomendador/internal/store"
	"github.com/tomtom215/recomendador/internal/taxonomy"
)

// Transition names, used as log fields and metric labels.
const (
	TransitionRestore            = "restore"
	TransitionLoadCatalog        = "load_catalog"
	TransitionGoHome             = "go_home"
	TransitionShowCategories     = "show_categories"
	TransitionSelectCategory     = "select_category"
	TransitionSelectSubcategory  = "select_subcategory"
	TransitionOpenItem           = "open_item"
	TransitionNotFound           = "not_found"
	TransitionBack               = "back"
	TransitionOpenOverlay        = "open_overlay"
	TransitionCloseOverlay       = "close_overlay"
	TransitionToggleMasterpiece  = "toggle_masterpiece"
	TransitionToggleRegional     = "toggle_regional_cinema"
	TransitionTogglePodcastLang  = "toggle_podcast_language"
	TransitionToggleDocumentLang = "toggle_documentary_language"
	TransitionResetFilters       = "reset_filters"
	TransitionSetLanguage        = "set_language"
)

// Observer receives the session state after every transition.
type Observer func(State)

// Options configures a Session. Every field is optional.
type Options struct {
	// Store persists the allow-listed state. Nil keeps the session in memory.
	Store *store.Store

	// Projector memoizes projections. Nil builds one with defaults.
	Projector *catalog.Projector

	// Random drives home sampling. Nil uses catalog.DefaultRandom.
	Random catalog.RandomSource

	// SampleSize is the number of home picks (default catalog.DefaultSampleSize).
	SampleSize int

	// DefaultLanguage is the initial UI language (default es).
	DefaultLanguage models.Lang

	// SupportedLanguages bounds SetLanguage (default es, en).
	SupportedLanguages []models.Lang
}

// State is the read-only view of a session handed to callers and observers.
type State struct {
	View            navigation.State `json:"view"`
	Filters         filter.State     `json:"filters"`
	Language        models.Lang      `json:"language"`
	CatalogRevision uint64           `json:"catalogRevision"`
	CatalogSize     int              `json:"catalogSize"`

	// Sequence numbers transitions of this session, starting at 1. A state
	// with a higher Sequence is always the more recent one.
	Sequence uint64 `json:"sequence"`
}

// subscription serializes delivery to one observer.
//
// Only one goroutine runs fn at a time. A transition that completes while
// the observer is busy parks its state in pending and returns; the
// delivering goroutine picks up the newest pending state before it leaves.
// Under contention intermediate states may be skipped, but an observer
// never sees a state older than one it already received, and the last
// state it sees is the latest one.
type subscription struct {
	id uint64
	fn Observer

	mu      sync.Mutex
	pending State
	queued  bool
	running bool
	last    uint64
}

func (sub *subscription) deliver(st State) {
	sub.mu.Lock()
	if st.Sequence <= sub.last || (sub.queued && st.Sequence <= sub.pending.Sequence) {
		sub.mu.Unlock()
		return
	}
	sub.pending, sub.queued = st, true
	if sub.running {
		sub.mu.Unlock()
		return
	}

	sub.running = true
	for {
		next := sub.pending
		sub.queued = false
		sub.last = next.Sequence
		sub.mu.Unlock()

		sub.fn(next)

		sub.mu.Lock()
		if !sub.queued {
			sub.running = false
			sub.mu.Unlock()
			return
		}
	}
}

// Session is one user's state container. It is safe for concurrent use.
//
// Every exported transition follows the same steps under the write lock:
//
//  1. The filter and view values are replaced by their successors
//  2. The sequence number advances
//  3. The allow-listed part of the state is saved when it changed
//  4. Observers receive the new State after the lock is released
//
// Reads (State, Visible, Subcategories) take the read lock and never block
// on persistence or observers.
//
// Example usage:
//
//	sess := session.New(session.Options{Store: st})
//	if !sess.Restore(ctx) {
//		sess.LoadCatalog(ctx, items)
//	}
//	unsubscribe := sess.Subscribe(hub.Observe)
//	defer unsubscribe()
//	sess.SelectCategory(ctx, models.CategoryMovies)
type Session struct {
	opts Options

	mu      sync.RWMutex
	filters filter.State
	view    navigation.State
	lang    models.Lang
	catalog *catalog.Catalog
	picks   []models.CatalogItem

	persisted    store.Snapshot
	persistedRev uint64
	hasPersisted bool

	seq uint64

	obsMu     sync.Mutex
	observers []*subscription
	nextObsID uint64
}

// New builds a Session at the default state with an empty catalog.
func New(opts Options) *Session {
	if opts.Projector == nil {
		opts.Projector = catalog.NewProjector(catalog.ProjectorConfig{})
	}
	if opts.Random == nil {
		opts.Random = catalog.DefaultRandom
	}
	if opts.SampleSize <= 0 {
		opts.SampleSize = catalog.DefaultSampleSize
	}
	if len(opts.SupportedLanguages) == 0 {
		opts.SupportedLanguages = []models.Lang{models.LangSpanish, models.LangEnglish}
	}
	opts.DefaultLanguage = models.NormalizeLang(string(opts.DefaultLanguage))
	if opts.DefaultLanguage == "" || !slices.Contains(opts.SupportedLanguages, opts.DefaultLanguage) {
		opts.DefaultLanguage = opts.SupportedLanguages[0]
	}

	return &Session{
		opts:    opts,
		filters: filter.New(),
		view:    navigation.New(),
		lang:    opts.DefaultLanguage,
		catalog: catalog.Empty(),
		picks:   []models.CatalogItem{},
	}
}

// Restore applies the persisted snapshot, if any. The subcategory and the
// view are not persisted: a restored category resumes in its listing,
// otherwise the session stays at home. It reports whether a snapshot was
// applied.
func (s *Session) Restore(ctx context.Context) bool {
	if s.opts.Store == nil {
		return false
	}
	snap := s.opts.Store.Load(ctx)
	if snap == nil {
		return false
	}

	s.update(ctx, TransitionRestore, func() {
		if lang := models.NormalizeLang(string(snap.Language)); s.supported(lang) {
			s.lang = lang
		}
		if len(snap.Catalog) > 0 {
			s.setCatalogLocked(snap.Catalog)
		}

		f := filter.New()
		view := navigation.New()
		if cat, err := models.ParseCategory(string(snap.Filters.Category)); err == nil {
			f = f.SetCategory(cat)
			view = view.EnterCategory(cat)
		}
		if snap.Filters.Masterpiece {
			f = f.ToggleMasterpiece()
		}
		if snap.Filters.RegionalCinema {
			f = f.ToggleRegionalCinema()
		}
		if len(snap.Filters.PodcastLanguages) > 0 {
			f = f.TogglePodcastLanguage(snap.Filters.PodcastLanguages[0])
		}
		if len(snap.Filters.DocumentaryLanguages) > 0 {
			f = f.ToggleDocumentaryLanguage(snap.Filters.DocumentaryLanguages[0])
		}
		s.filters = f
		s.view = view

		// What was just read is what is stored.
		s.markPersistedLocked()
	})

	logging.CtxInfo(ctx).
		Str("category", string(snap.Filters.Category)).
		Str("language", string(s.Language())).
		Int("catalog_items", len(snap.Catalog)).
		Msg("Session restored from snapshot")
	return true
}

// LoadCatalog replaces the catalog with a fully materialized item list and
// redraws the home picks. Unknown subcategory labels are reported.
func (s *Session) LoadCatalog(ctx context.Context, items []models.CatalogItem) State {
	return s.update(ctx, TransitionLoadCatalog, func() {
		s.setCatalogLocked(items)
		taxonomy.Audit(items).Log()
	})
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Language returns the UI language.
func (s *Session) Language() models.Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// DefaultLanguage returns the configured initial language, whatever the
// current one is.
func (s *Session) DefaultLanguage() models.Lang {
	return s.opts.DefaultLanguage
}

// SupportedLanguages returns the languages SetLanguage accepts.
func (s *Session) SupportedLanguages() []models.Lang {
	return slices.Clone(s.opts.SupportedLanguages)
}

// Visible returns the projection of the catalog for the current filters.
// The result is shared; callers must not modify it.
func (s *Session) Visible() []models.CatalogItem {
	s.mu.RLock()
	c, f, lang := s.catalog, s.filters, s.lang
	s.mu.RUnlock()
	return s.opts.Projector.Project(c, f, lang)
}

// DailyPicks returns the home picks drawn at the last home entry or catalog
// load.
func (s *Session) DailyPicks() []models.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.picks)
}

// Subcategories lists the subcategories of cat in the UI language.
func (s *Session) Subcategories(cat models.Category) []taxonomy.Subcategory {
	s.mu.RLock()
	c, lang := s.catalog, s.lang
	s.mu.RUnlock()
	return taxonomy.Subcategories(cat, lang, c.Items())
}

// Counts returns item counts per category.
func (s *Session) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Counts()
}

// Item looks up a catalog item.
func (s *Session) Item(ref models.ItemRef) (models.CatalogItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Find(ref)
}

// GoHome returns to home, clearing every filter and redrawing the picks.
func (s *Session) GoHome(ctx context.Context) State {
	return s.update(ctx, TransitionGoHome, s.goHomeLocked)
}

// ShowCategories opens the category grid.
func (s *Session) ShowCategories(ctx context.Context) State {
	return s.update(ctx, TransitionShowCategories, func() {
		s.view = s.view.ShowCategories()
	})
}

// SelectCategory sets the category filter and enters its listing.
func (s *Session) SelectCategory(ctx context.Context, cat models.Category) State {
	return s.update(ctx, TransitionSelectCategory, func() {
		s.filters = s.filters.SetCategory(cat)
		s.view = s.view.EnterCategory(cat)
	})
}

// SelectSubcategory activates a subcategory label or sentinel; a blank
// label clears it.
func (s *Session) SelectSubcategory(ctx context.Context, sub string) State {
	return s.update(ctx, TransitionSelectSubcategory, func() {
		s.filters = s.filters.SetSubcategory(sub)
	})
}

// OpenItem opens the detail view of ref. Unknown items move the view to
// notFound; the second result reports whether the item exists.
func (s *Session) OpenItem(ctx context.Context, ref models.ItemRef) (State, bool) {
	found := false
	st := s.update(ctx, TransitionOpenItem, func() {
		if _, found = s.catalog.Find(ref); found {
			s.view = s.view.OpenItem(ref)
			return
		}
		s.view = s.view.NotFound()
	})
	if !found {
		logging.CtxDebug(ctx).Str("item", ref.String()).Msg("Item not found")
	}
	return st, found
}

// NotFound moves the view to notFound.
func (s *Session) NotFound(ctx context.Context) State {
	return s.update(ctx, TransitionNotFound, func() {
		s.view = s.view.NotFound()
	})
}

// Back follows the single-level back stack. Arriving at home behaves like
// GoHome; arriving at a category listing re-selects lastCategory when the
// filter points elsewhere.
func (s *Session) Back(ctx context.Context) State {
	return s.update(ctx, TransitionBack, func() {
		fromOverlay := s.view.Current().IsOverlay()
		next := s.view.Back()

		switch next.Current() {
		case navigation.ViewHome:
			if !fromOverlay {
				s.goHomeLocked()
				return
			}
		case navigation.ViewSubcategories:
			if last := next.LastCategory(); last != "" && s.filters.Category() != last {
				s.filters = s.filters.SetCategory(last)
			}
		}
		s.view = next
	})
}

// OpenOverlay opens the coffee or how-to-download overlay.
func (s *Session) OpenOverlay(ctx context.Context, v navigation.View) (State, error) {
	if !v.IsOverlay() {
		return s.State(), navigation.ErrNotOverlay
	}
	return s.update(ctx, TransitionOpenOverlay, func() {
		s.view = s.view.OpenOverlay(v)
	}), nil
}

// CloseOverlay returns to the view covered by the overlay.
func (s *Session) CloseOverlay(ctx context.Context) State {
	return s.update(ctx, TransitionCloseOverlay, func() {
		s.view = s.view.CloseOverlay()
	})
}

// ToggleMasterpiece flips the masterpiece filter.
func (s *Session) ToggleMasterpiece(ctx context.Context) State {
	return s.update(ctx, TransitionToggleMasterpiece, func() {
		s.filters = s.filters.ToggleMasterpiece()
	})
}

// ToggleRegionalCinema flips the regional cinema filter.
func (s *Session) ToggleRegionalCinema(ctx context.Context) State {
	return s.update(ctx, TransitionToggleRegional, func() {
		s.filters = s.filters.ToggleRegionalCinema()
	})
}

// TogglePodcastLanguage single-select toggles the podcast language.
func (s *Session) TogglePodcastLanguage(ctx context.Context, lang models.Lang) State {
	return s.update(ctx, TransitionTogglePodcastLang, func() {
		s.filters = s.filters.TogglePodcastLanguage(lang)
	})
}

// ToggleDocumentaryLanguage single-select toggles the documentary language.
func (s *Session) ToggleDocumentaryLanguage(ctx context.Context, lang models.Lang) State {
	return s.update(ctx, TransitionToggleDocumentLang, func() {
		s.filters = s.filters.ToggleDocumentaryLanguage(lang)
	})
}

// ResetFilters clears every filter and returns to home, forgetting the last
// category. A listing with no selected category would show every item, so
// the view never outlives its filters.
func (s *Session) ResetFilters(ctx context.Context) State {
	return s.update(ctx, TransitionResetFilters, s.goHomeLocked)
}

// SetLanguage switches the UI language. Unsupported languages leave the
// state unchanged and report false.
func (s *Session) SetLanguage(ctx context.Context, lang models.Lang) (State, bool) {
	lang = models.NormalizeLang(string(lang))
	if !s.supported(lang) {
		logging.CtxDebug(ctx).Str("language", string(lang)).Msg("Unsupported language ignored")
		return s.State(), false
	}
	return s.update(ctx, TransitionSetLanguage, func() {
		s.lang = lang
	}), true
}

// Subscribe registers fn for every subsequent transition and returns a
// function that removes it.
//
// Delivery guarantees:
//  1. fn never runs concurrently with itself.
//  2. States reach fn in Sequence order; a state older than one already
//     delivered is dropped.
//  3. When transitions race, intermediate states may be collapsed, but the
//     last state fn receives equals State() once the transitions return.
//
// A sequential caller sees every transition synchronously, before the
// transition method returns. fn may call back into the session.
func (s *Session) Subscribe(fn Observer) func() {
	s.obsMu.Lock()
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, &subscription{id: id, fn: fn})
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			defer s.obsMu.Unlock()
			s.observers = slices.DeleteFunc(s.observers, func(sub *subscription) bool {
				return sub.id == id
			})
		})
	}
}

// update runs mutate under the lock, stamps the next sequence number,
// persists the allow-listed fields when they changed, then notifies
// observers outside the lock.
func (s *Session) update(ctx context.Context, name string, mutate func()) State {
	s.mu.Lock()
	mutate()
	s.seq++
	st := s.stateLocked()
	s.persistLocked(ctx)
	s.mu.Unlock()

	metrics.RecordTransition(name)
	logging.CtxDebug(ctx).
		Str("transition", name).
		Str("view", string(st.View.Current())).
		Str("category", string(st.Filters.Category())).
		Msg("Session transition")

	s.notify(st)
	return st
}

func (s *Session) notify(st State) {
	s.obsMu.Lock()
	subs := slices.Clone(s.observers)
	s.obsMu.Unlock()

	for _, sub := range subs {
		sub.deliver(st)
	}
}

func (s *Session) stateLocked() State {
	return State{
		View:            s.view,
		Filters:         s.filters,
		Language:        s.lang,
		CatalogRevision: s.catalog.Revision(),
		CatalogSize:     s.catalog.Len(),
		Sequence:        s.seq,
	}
}

func (s *Session) goHomeLocked() {
	s.view = s.view.GoHome()
	s.filters = s.filters.Reset()
	s.drawPicksLocked()
}

func (s *Session) setCatalogLocked(items []models.CatalogItem) {
	s.catalog = catalog.New(items)
	metrics.SetCatalogItems(s.catalog.Counts())
	s.drawPicksLocked()
}

func (s *Session) drawPicksLocked() {
	s.picks = catalog.Sample(s.catalog.Items(), s.opts.SampleSize, s.opts.Random)
}

func (s *Session) supported(lang models.Lang) bool {
	return lang != "" && slices.Contains(s.opts.SupportedLanguages, lang)
}

func (s *Session) snapshotLocked() store.Snapshot {
	return store.Snapshot{
		Language: s.lang,
		Filters: store.Filters{
			Category:             s.filters.Category(),
			Masterpiece:          s.filters.MasterpieceActive(),
			RegionalCinema:       s.filters.RegionalCinemaActive(),
			PodcastLanguages:     s.filters.PodcastLanguages().Values(),
			DocumentaryLanguages: s.filters.DocumentaryLanguages().Values(),
		},
		Catalog: s.catalog.Items(),
	}
}

func (s *Session) markPersistedLocked() {
	s.persisted = s.snapshotLocked()
	s.persistedRev = s.catalog.Revision()
	s.hasPersisted = true
}

// persistLocked saves when a persisted field changed. Errors are logged and
// the in-memory state stays authoritative.
func (s *Session) persistLocked(ctx context.Context) {
	if s.opts.Store == nil {
		return
	}
	snap := s.snapshotLocked()
	if s.hasPersisted &&
		s.persistedRev == s.catalog.Revision() &&
		s.persisted.Language == snap.Language &&
		s.persisted.Filters.Equal(snap.Filters) {
		return
	}
	if err := s.opts.Store.Save(ctx, snap); err != nil {
		logging.CtxWarn(ctx).Err(err).Msg("Persisting session state failed")
		return
	}
	s.persisted = snap
	s.persistedRev = s.catalog.Revision()
	s.hasPersisted = true
}
