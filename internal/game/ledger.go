package game

import (
	"context"

	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/models"
)

// XPPerLevel is the flat amount of XP that separates two levels.
const XPPerLevel = 100

// LevelForXP returns floor(xp/100)+1. Negative xp is treated as zero.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPToNextLevel returns how much XP is missing to reach the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return LevelForXP(xp)*XPPerLevel - xp
}

// LevelChange reports the level before and after a credit.
type LevelChange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Up reports whether the credit crossed at least one level boundary.
func (c LevelChange) Up() bool {
	return c.To > c.From
}

// credit adds xp and coins to the ledger, recomputing level and evolution. A level-up
// sets the buddy mood to excited.
func (s *Store) credit(st *models.GameState, xp, coins int) LevelChange {
	change := LevelChange{From: st.Progress.Level}
	st.Progress.XP += xp
	st.Progress.Currency += coins
	s.derive(st)
	change.To = st.Progress.Level
	if change.Up() {
		st.Buddy.Mood = models.MoodExcited
	}
	return change
}

// GainXP adds a positive amount of XP.
func (s *Store) GainXP(ctx context.Context, amount int) (LevelChange, error) {
	if amount <= 0 {
		return LevelChange{}, errors.NewInvalidAmountError("xp", amount)
	}
	var change LevelChange
	_, err := s.mutate(ctx, "gain_xp", func(st *models.GameState) error {
		change = s.credit(st, amount, 0)
		return nil
	})
	if err != nil {
		return LevelChange{}, err
	}
	if change.Up() {
		s.log.Info("level up: %d -> %d", change.From, change.To)
	}
	return change, nil
}

// GainCoins adds a positive amount to the balance. Level and mood are unaffected.
func (s *Store) GainCoins(ctx context.Context, amount int) error {
	if amount <= 0 {
		return errors.NewInvalidAmountError("coins", amount)
	}
	_, err := s.mutate(ctx, "gain_coins", func(st *models.GameState) error {
		st.Progress.Currency += amount
		return nil
	})
	return err
}
