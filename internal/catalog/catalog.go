// Package catalog holds the static, read-only game content: buddy evolution stages,
// shop items, the daily quest set and the session prompt templates.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vytor/studybuddy/internal/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

// QuestionsPerSession is the fixed number of prompts handed out when a session starts.
const QuestionsPerSession = 3

type Catalog struct {
	Evolutions     []models.Evolution `yaml:"evolutions"`
	Shop           []models.ShopItem  `yaml:"shop"`
	DailyQuests    []models.Quest     `yaml:"daily_quests"`
	SessionPrompts []string           `yaml:"session_prompts"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded file is invalid,
// which can only happen at build time.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(catalogYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Evolutions) == 0 {
		return fmt.Errorf("catalog: no evolutions")
	}
	for i, e := range c.Evolutions {
		if e.MinLevel > e.MaxLevel {
			return fmt.Errorf("catalog: evolution %s has min_level > max_level", e.ID)
		}
		if i > 0 && e.MinLevel <= c.Evolutions[i-1].MaxLevel {
			return fmt.Errorf("catalog: evolution %s overlaps %s", e.ID, c.Evolutions[i-1].ID)
		}
	}
	seen := make(map[string]bool, len(c.Shop))
	for _, it := range c.Shop {
		if it.Price <= 0 {
			return fmt.Errorf("catalog: item %s has non-positive price", it.ID)
		}
		if seen[it.ID] {
			return fmt.Errorf("catalog: duplicate item %s", it.ID)
		}
		seen[it.ID] = true
		switch it.Category {
		case models.CategoryAccessory, models.CategoryTheme, models.CategoryPowerup, models.CategoryPet, models.CategoryEmote:
		default:
			return fmt.Errorf("catalog: item %s has unknown category %q", it.ID, it.Category)
		}
		switch it.Rarity {
		case models.RarityCommon, models.RarityRare, models.RarityEpic, models.RarityLegendary:
		default:
			return fmt.Errorf("catalog: item %s has unknown rarity %q", it.ID, it.Rarity)
		}
	}
	for _, q := range c.DailyQuests {
		if q.Target <= 0 {
			return fmt.Errorf("catalog: quest %s has non-positive target", q.ID)
		}
	}
	if len(c.SessionPrompts) < QuestionsPerSession {
		return fmt.Errorf("catalog: need at least %d session prompts, have %d", QuestionsPerSession, len(c.SessionPrompts))
	}
	return nil
}

// EvolutionForLevel returns the first stage whose inclusive range contains level,
// falling back to the lowest stage.
func (c *Catalog) EvolutionForLevel(level int) models.Evolution {
	for _, e := range c.Evolutions {
		if e.Contains(level) {
			return e
		}
	}
	return c.Evolutions[0]
}

// Item looks up a shop entry by id.
func (c *Catalog) Item(id string) (models.ShopItem, bool) {
	for _, it := range c.Shop {
		if it.ID == id {
			return it, true
		}
	}
	return models.ShopItem{}, false
}

// FreshDailyQuests returns a new copy of the daily set with progress reset.
func (c *Catalog) FreshDailyQuests() []models.Quest {
	out := make([]models.Quest, len(c.DailyQuests))
	for i, q := range c.DailyQuests {
		q.Progress = 0
		q.Completed = false
		out[i] = q
	}
	return out
}

// SessionQuestions renders the first QuestionsPerSession prompts for subject.
func (c *Catalog) SessionQuestions(subject string) []string {
	out := make([]string, 0, QuestionsPerSession)
	for _, p := range c.SessionPrompts[:QuestionsPerSession] {
		out = append(out, strings.ReplaceAll(p, "{subject}", subject))
	}
	return out
}
