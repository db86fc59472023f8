package models

import "time"

type ItemCategory string

const (
	CategoryAccessory ItemCategory = "accessory"
	CategoryTheme     ItemCategory = "theme"
	CategoryPowerup   ItemCategory = "powerup"
	CategoryPet       ItemCategory = "pet"
	CategoryEmote     ItemCategory = "emote"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ShopItem is a read-only catalog entry.
type ShopItem struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Emoji       string       `json:"emoji" yaml:"emoji"`
	Price       int          `json:"price" yaml:"price"`
	Category    ItemCategory `json:"category" yaml:"category"`
	Description string       `json:"description" yaml:"description"`
	Rarity      Rarity       `json:"rarity" yaml:"rarity"`
}

// OwnedItem is a catalog entry copied into the player's inventory on purchase.
type OwnedItem struct {
	ShopItem
	PurchasedAt time.Time `json:"purchased_at"`
}

// ShopListing is a catalog entry annotated for a given player.
type ShopListing struct {
	ShopItem
	Owned      bool `json:"owned"`
	Affordable bool `json:"affordable"`
}
