package models

// Mood is a transient UI hint for the buddy avatar.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodExcited Mood = "excited"
	MoodFocused Mood = "focused"
	MoodSleepy  Mood = "sleepy"
	MoodFire    Mood = "fire"
)

// PlayerProgress holds the progression ledger. Level is always derived from XP.
type PlayerProgress struct {
	Level             int    `json:"level"`
	XP                int    `json:"xp"`
	Currency          int    `json:"currency"`
	TotalStudyMinutes int    `json:"total_study_minutes"`
	StreakDays        int    `json:"streak_days"`
	LastStudyDay      string `json:"last_study_day,omitempty"` // YYYY-MM-DD
}

type Evolution struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Emoji       string `json:"emoji" yaml:"emoji"`
	Description string `json:"description" yaml:"description"`
	MinLevel    int    `json:"min_level" yaml:"min_level"`
	MaxLevel    int    `json:"max_level" yaml:"max_level"`
	Color       string `json:"color" yaml:"color"`
	Vibe        string `json:"vibe" yaml:"vibe"`
}

// Contains reports whether level falls inside the inclusive range of the stage.
func (e Evolution) Contains(level int) bool {
	return level >= e.MinLevel && level <= e.MaxLevel
}

type BuddyState struct {
	Name        string    `json:"name"`
	Evolution   Evolution `json:"evolution"`
	Accessories []string  `json:"accessories"`
	Pets        []string  `json:"pets"`
	Mood        Mood      `json:"mood"`
}
