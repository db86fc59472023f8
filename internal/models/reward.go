package models

import "time"

// Reward sources recorded in the reward ledger.
const (
	RewardSourceSession  = "session"
	RewardSourceQuest    = "quest"
	RewardSourceManual   = "manual"
	RewardSourcePurchase = "purchase"
)

type RewardEvent struct {
	ID        string    `json:"id"`
	StoreName string    `json:"store_name"`
	Source    string    `json:"source"`
	Reference string    `json:"reference"`
	XP        int       `json:"xp"`
	Coins     int       `json:"coins"`
	CreatedAt time.Time `json:"created_at"`
}
