package game

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/models"
)

// SchemaVersion is written into every snapshot. Version 0 is the browser-era layout
// that wrapped camelCase state in {"state": ..., "version": 0}.
const SchemaVersion = 1

// EncodeSnapshot serializes the full state graph.
func EncodeSnapshot(st models.GameState) ([]byte, error) {
	st.Version = SchemaVersion
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot reads a snapshot of any known schema version and upgrades it to the
// current one. Derived fields are left for the store to recompute.
func DecodeSnapshot(raw []byte) (models.GameState, error) {
	if !gjson.ValidBytes(raw) {
		return models.GameState{}, fmt.Errorf("decode snapshot: invalid json")
	}
	if gjson.GetBytes(raw, "state").IsObject() {
		return decodeLegacy(raw)
	}

	version := gjson.GetBytes(raw, "version").Int()
	if version > SchemaVersion {
		return models.GameState{}, fmt.Errorf("decode snapshot: schema version %d is newer than %d", version, SchemaVersion)
	}
	var st models.GameState
	if err := json.Unmarshal(raw, &st); err != nil {
		return models.GameState{}, fmt.Errorf("decode snapshot: %w", err)
	}
	st.Inventory = dedupeInventory(st.Inventory)
	st.Buddy.Accessories = dedupe(st.Buddy.Accessories)
	st.Buddy.Pets = dedupe(st.Buddy.Pets)
	return st, nil
}

// checkSnapshot rejects decoded state the ledger could never have produced. A zero
// now skips the check for sessions starting in the future.
func checkSnapshot(st models.GameState, now time.Time) error {
	p := st.Progress
	switch {
	case p.XP < 0:
		return fmt.Errorf("xp cannot be negative, got %d", p.XP)
	case p.Currency < 0:
		return fmt.Errorf("currency cannot be negative, got %d", p.Currency)
	case p.TotalStudyMinutes < 0:
		return fmt.Errorf("total study minutes cannot be negative, got %d", p.TotalStudyMinutes)
	case p.StreakDays < 0:
		return fmt.Errorf("streak cannot be negative, got %d", p.StreakDays)
	}
	for _, q := range st.DailyQuests {
		if q.Target <= 0 {
			return fmt.Errorf("quest %s has target %d", q.ID, q.Target)
		}
		if q.Progress < 0 {
			return fmt.Errorf("quest %s has negative progress", q.ID)
		}
	}
	if sess := st.CurrentSession; sess != nil {
		if sess.StartTime.IsZero() {
			return fmt.Errorf("session %s has no start time", sess.ID)
		}
		if !now.IsZero() && sess.StartTime.After(now) {
			return fmt.Errorf("session %s starts in the future", sess.ID)
		}
	}
	for _, a := range st.Agenda {
		if a.DurationMinutes < 0 {
			return fmt.Errorf("agenda item %s has negative duration", a.ID)
		}
	}
	return nil
}

type legacyEnvelope struct {
	State   legacyState `json:"state"`
	Version int         `json:"version"`
}

type legacyState struct {
	XP             int    `json:"xp"`
	StudyCoins     int    `json:"studyCoins"`
	TotalStudyTime int    `json:"totalStudyTime"`
	Streak         int    `json:"streak"`
	Buddy          struct {
		Accessories []string    `json:"accessories"`
		Pets        []string    `json:"pets"`
		Name        string      `json:"name"`
		Mood        models.Mood `json:"mood"`
	} `json:"buddy"`
	Inventory   []legacyItem  `json:"inventory"`
	DailyQuests []legacyQuest `json:"dailyQuests"`
	CurrentSession *struct {
		ID        string    `json:"id"`
		Subject   string    `json:"subject"`
		Questions []string  `json:"questions"`
		StartTime time.Time `json:"startTime"`
	} `json:"currentSession"`
	Agenda []struct {
		ID        string            `json:"id"`
		Title     string            `json:"title"`
		Subject   string            `json:"subject"`
		Type      models.AgendaType `json:"type"`
		Date      time.Time         `json:"date"`
		Duration  int               `json:"duration"`
		Completed bool              `json:"completed"`
	} `json:"agenda"`
	SelectedTheme string `json:"selectedTheme"`
}

type legacyItem struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Emoji       string              `json:"emoji"`
	Price       int                 `json:"price"`
	Category    models.ItemCategory `json:"category"`
	Description string              `json:"description"`
	Rarity      models.Rarity       `json:"rarity"`
}

type legacyQuest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
	Reward      struct {
		XP    int `json:"xp"`
		Coins int `json:"coins"`
	} `json:"reward"`
	Completed bool   `json:"completed"`
	Type      string `json:"type"`
}

// decodeLegacy maps the version 0 layout. Level and evolution are dropped since they
// are derived, weekly quests never had content, and inventory duplicates left by the
// old double-buy bug are collapsed.
func decodeLegacy(raw []byte) (models.GameState, error) {
	var env legacyEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return models.GameState{}, fmt.Errorf("decode legacy snapshot: %w", err)
	}
	if env.Version != 0 {
		return models.GameState{}, fmt.Errorf("decode legacy snapshot: unsupported version %d", env.Version)
	}
	ls := env.State

	st := models.GameState{
		Progress: models.PlayerProgress{
			XP:                ls.XP,
			Currency:          ls.StudyCoins,
			TotalStudyMinutes: ls.TotalStudyTime,
			StreakDays:        ls.Streak,
		},
		Buddy: models.BuddyState{
			Name:        ls.Buddy.Name,
			Accessories: dedupe(ls.Buddy.Accessories),
			Pets:        dedupe(ls.Buddy.Pets),
			Mood:        ls.Buddy.Mood,
		},
		Inventory:     []models.OwnedItem{},
		EquippedTheme: ls.SelectedTheme,
		DailyQuests:   []models.Quest{},
		Agenda:        []models.AgendaItem{},
	}

	seen := make(map[string]bool, len(ls.Inventory))
	for _, it := range ls.Inventory {
		if it.ID == "" || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		st.Inventory = append(st.Inventory, models.OwnedItem{ShopItem: models.ShopItem{
			ID:          it.ID,
			Name:        it.Name,
			Emoji:       it.Emoji,
			Price:       it.Price,
			Category:    it.Category,
			Description: it.Description,
			Rarity:      it.Rarity,
		}})
	}

	for _, q := range ls.DailyQuests {
		if q.Type != "" && q.Type != "daily" {
			continue
		}
		st.DailyQuests = append(st.DailyQuests, models.Quest{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Progress:    q.Progress,
			Target:      q.Target,
			Reward:      models.QuestReward{XP: q.Reward.XP, Coins: q.Reward.Coins},
			Completed:   q.Completed,
			Type:        "daily",
		})
	}

	if cs := ls.CurrentSession; cs != nil {
		st.CurrentSession = &models.StudySession{
			ID:        cs.ID,
			Subject:   cs.Subject,
			StartTime: cs.StartTime,
			Questions: cs.Questions,
		}
	}

	for _, a := range ls.Agenda {
		st.Agenda = append(st.Agenda, models.AgendaItem{
			ID:              a.ID,
			Title:           a.Title,
			Subject:         a.Subject,
			Type:            a.Type,
			Date:            a.Date,
			DurationMinutes: a.Duration,
			Completed:       a.Completed,
		})
	}
	return st, nil
}

// dedupeInventory keeps the first entry per item id.
func dedupeInventory(in []models.OwnedItem) []models.OwnedItem {
	out := make([]models.OwnedItem, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, it := range in {
		if it.ID == "" || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Import replaces the whole state with a snapshot of any known schema version,
// such as an export from the browser-era app.
func (s *Store) Import(ctx context.Context, raw []byte) error {
	st, err := DecodeSnapshot(raw)
	if err != nil {
		return errors.NewBadRequestError(err.Error())
	}
	if err := checkSnapshot(st, s.now()); err != nil {
		s.log.Warn("rejected snapshot import: %v", err)
		return errors.NewBadRequestError("invalid snapshot: " + err.Error())
	}
	_, err = s.mutate(ctx, "import", func(cur *models.GameState) error {
		s.normalize(&st)
		if st.QuestsGeneratedOn == "" {
			st.QuestsGeneratedOn = cur.QuestsGeneratedOn
		}
		*cur = st
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("snapshot imported: xp=%d coins=%d", st.Progress.XP, st.Progress.Currency)
	return nil
}

// Export returns the encoded current snapshot.
func (s *Store) Export() ([]byte, error) {
	return EncodeSnapshot(s.Snapshot())
}
