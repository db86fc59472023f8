package models

import "time"

// GameState is the whole persisted state graph of one store.
type GameState struct {
	Version           int            `json:"version"`
	Progress          PlayerProgress `json:"progress"`
	Buddy             BuddyState     `json:"buddy"`
	Inventory         []OwnedItem    `json:"inventory"`
	EquippedTheme     string         `json:"equipped_theme"`
	DailyQuests       []Quest        `json:"daily_quests"`
	CurrentSession    *StudySession  `json:"current_session"`
	FocusMode         bool           `json:"focus_mode"`
	Agenda            []AgendaItem   `json:"agenda"`
	QuestsGeneratedOn string         `json:"quests_generated_on,omitempty"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Clone returns a deep copy so readers never share slices with the store.
func (s GameState) Clone() GameState {
	out := s
	out.Buddy.Accessories = cloneSlice(s.Buddy.Accessories)
	out.Buddy.Pets = cloneSlice(s.Buddy.Pets)
	out.Inventory = cloneSlice(s.Inventory)
	out.DailyQuests = cloneSlice(s.DailyQuests)
	out.Agenda = cloneSlice(s.Agenda)
	if s.CurrentSession != nil {
		sess := *s.CurrentSession
		sess.Questions = cloneSlice(s.CurrentSession.Questions)
		out.CurrentSession = &sess
	}
	return out
}

// cloneSlice copies in, keeping the nil/empty distinction so JSON output stays stable.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

// Owns reports whether the inventory holds the item.
func (s GameState) Owns(itemID string) bool {
	for _, it := range s.Inventory {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// QuestIndex returns the position of the quest in DailyQuests, or -1.
func (s GameState) QuestIndex(id string) int {
	for i, q := range s.DailyQuests {
		if q.ID == id {
			return i
		}
	}
	return -1
}
