package models

type QuestReward struct {
	XP    int `json:"xp" yaml:"xp"`
	Coins int `json:"coins" yaml:"coins"`
}

type Quest struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Progress    int         `json:"progress" yaml:"-"`
	Target      int         `json:"target" yaml:"target"`
	Reward      QuestReward `json:"reward" yaml:"reward"`
	Completed   bool        `json:"completed" yaml:"-"`
	Type        string      `json:"type" yaml:"type"` // "daily" or "weekly"
}

// Claimable reports whether the quest reached its target and was not yet claimed.
func (q Quest) Claimable() bool {
	return !q.Completed && q.Progress >= q.Target
}
