// Package game implements the game state manager: one explicitly constructed store per
// player that owns the progression ledger, quests, the study session, the shop inventory
// and the agenda, and persists a full snapshot after every mutation.
package game

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vytor/studybuddy/internal/catalog"
	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/models"
)

// DefaultStoreName is the key the snapshot is stored under unless configured otherwise.
const DefaultStoreName = "studybuddy-game-store"

// DefaultStartingCoins matches the balance a new player starts with.
const DefaultStartingCoins = 200

// Persister stores encoded snapshots. Load returns nil, nil when nothing is stored yet.
type Persister interface {
	Load(ctx context.Context, storeName string) ([]byte, error)
	Save(ctx context.Context, storeName string, schemaVersion int, payload []byte) error
}

// Config selects the snapshot key and the seed values for a new player.
type Config struct {
	StoreName     string
	StartingCoins int
}

// errNoChange aborts a mutation that found nothing to do; nothing is persisted.
var errNoChange = stderrors.New("no change")

// Outcome distinguishes an applied mutation from one that found nothing to do.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeUnchanged Outcome = "unchanged"
)

// Store serializes all mutations of one game state. Every operation runs to completion
// before the next one starts; readers only ever see persisted snapshots.
type Store struct {
	mu sync.Mutex

	name    string
	state   models.GameState
	catalog *catalog.Catalog
	persist Persister
	now     func() time.Time
	newID   func() string
	log     *logger.Logger

	subs    map[int]func(models.GameState)
	nextSub int
	closed  bool

	// pending holds published snapshots not yet delivered. Only the goroutine that
	// set dispatching drains it.
	pending     []notification
	dispatching bool
}

type notification struct {
	state models.GameState
	subs  []func(models.GameState)
}

type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how session and agenda ids are produced.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Store) { s.catalog = c }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New loads the snapshot stored under cfg.StoreName, or seeds and persists a fresh one.
func New(ctx context.Context, cfg Config, p Persister, opts ...Option) (*Store, error) {
	if cfg.StoreName == "" {
		cfg.StoreName = DefaultStoreName
	}
	if cfg.StartingCoins < 0 {
		return nil, errors.NewValidationError("starting_coins", "cannot be negative")
	}
	s := &Store{
		name:    cfg.StoreName,
		catalog: catalog.Default(),
		persist: p,
		now:     time.Now,
		newID:   uuid.NewString,
		log:     logger.Default().WithPrefix("store"),
		subs:    make(map[int]func(models.GameState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("store", s.name)

	raw, err := p.Load(ctx, s.name)
	if err != nil {
		s.log.Error("failed to load snapshot: %v", err)
		return nil, errors.NewInternalError(fmt.Errorf("load snapshot: %w", err))
	}

	if raw == nil {
		s.log.Info("no snapshot found, seeding new player")
		st := s.initialState(cfg.StartingCoins)
		s.derive(&st)
		if err := s.save(ctx, st); err != nil {
			return nil, err
		}
		s.state = st
		return s, nil
	}

	st, err := DecodeSnapshot(raw)
	if err != nil {
		s.log.Error("failed to decode snapshot: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if err := checkSnapshot(st, time.Time{}); err != nil {
		s.log.Error("stored snapshot is corrupt: %v", err)
		return nil, errors.NewInternalError(err)
	}
	s.normalize(&st)
	s.derive(&st)
	s.state = st
	s.log.Debug("snapshot loaded: level=%d xp=%d", st.Progress.Level, st.Progress.XP)
	return s, nil
}

func (s *Store) initialState(startingCoins int) models.GameState {
	now := s.now()
	return models.GameState{
		Version: SchemaVersion,
		Progress: models.PlayerProgress{
			Level:    1,
			Currency: startingCoins,
		},
		Buddy: models.BuddyState{
			Name:        "Buddy",
			Accessories: []string{},
			Pets:        []string{},
			Mood:        models.MoodHappy,
		},
		Inventory:         []models.OwnedItem{},
		EquippedTheme:     "default",
		DailyQuests:       s.catalog.FreshDailyQuests(),
		Agenda:            []models.AgendaItem{},
		QuestsGeneratedOn: dayKey(now),
		UpdatedAt:         now,
	}
}

// normalize fills in fields a migrated or hand-edited snapshot may lack.
func (s *Store) normalize(st *models.GameState) {
	if st.Buddy.Name == "" {
		st.Buddy.Name = "Buddy"
	}
	if st.Buddy.Mood == "" {
		st.Buddy.Mood = models.MoodHappy
	}
	if st.EquippedTheme == "" {
		st.EquippedTheme = "default"
	}
	if len(st.DailyQuests) == 0 {
		st.DailyQuests = s.catalog.FreshDailyQuests()
	}
}

// derive recomputes every derived field. It runs after each mutation so level,
// evolution stage and focus mode can never drift from their sources.
func (s *Store) derive(st *models.GameState) {
	st.Version = SchemaVersion
	st.Progress.Level = LevelForXP(st.Progress.XP)
	st.Buddy.Evolution = s.catalog.EvolutionForLevel(st.Progress.Level)
	st.FocusMode = st.CurrentSession != nil
}

func (s *Store) save(ctx context.Context, st models.GameState) error {
	payload, err := EncodeSnapshot(st)
	if err != nil {
		s.log.Error("failed to encode snapshot: %v", err)
		return errors.NewInternalError(err)
	}
	if err := s.persist.Save(ctx, s.name, SchemaVersion, payload); err != nil {
		s.log.Error("failed to persist snapshot: %v", err)
		return errors.NewInternalError(fmt.Errorf("persist snapshot: %w", err))
	}
	return nil
}

// mutate applies fn to a copy of the state, derives, persists and publishes it.
// If fn or the persist step fails the current state is left untouched.
func (s *Store) mutate(ctx context.Context, op string, fn func(st *models.GameState) error) (models.GameState, error) {
	log := logger.FromContext(ctx).WithPrefix("store").WithField("op", op)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.GameState{}, errors.NewInternalError(fmt.Errorf("store %s is closed", s.name))
	}

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		if err == errNoChange {
			log.Debug("mutation skipped: nothing to change")
		} else {
			log.Debug("mutation rejected: %v", err)
		}
		return models.GameState{}, err
	}
	s.derive(&next)
	next.UpdatedAt = s.now()

	if err := s.save(ctx, next); err != nil {
		s.mu.Unlock()
		return models.GameState{}, err
	}
	s.state = next

	subs := make([]func(models.GameState), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.pending = append(s.pending, notification{state: next, subs: subs})
	log.Debug("mutation applied: level=%d xp=%d coins=%d", next.Progress.Level, next.Progress.XP, next.Progress.Currency)
	if s.dispatching {
		// A subscriber is mutating from inside a callback; the outer dispatch delivers it.
		s.mu.Unlock()
		return next.Clone(), nil
	}
	s.dispatching = true
	s.mu.Unlock()

	s.dispatch()
	return next.Clone(), nil
}

// dispatch delivers pending snapshots in mutation order without holding mu, so
// subscribers may read or mutate the store.
func (s *Store) dispatch() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.dispatching = false
			s.mu.Unlock()
			return
		}
		n := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, sub := range n.subs {
			sub(n.state.Clone())
		}
	}
}

// Name returns the key the snapshot is stored under.
func (s *Store) Name() string {
	return s.name
}

// Catalog returns the static content the store was built with.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to receive every new snapshot, in mutation order. Callbacks
// run synchronously on the goroutine that drains the queue; a callback that mutates
// the store has its own snapshot delivered after the current one. The returned func
// removes fn.
func (s *Store) Subscribe(fn func(models.GameState)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Close detaches all subscribers. Mutations after Close fail.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]func(models.GameState))
	s.log.Debug("store closed")
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
