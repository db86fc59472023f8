package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/models"
)

// ProgressBar draws cur/target as a fixed-width bar. Values are clamped.
func ProgressBar(cur, target, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := 0
	if target > 0 {
		if cur > target {
			cur = target
		}
		if cur < 0 {
			cur = 0
		}
		filled = cur * width / target
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// Status renders the buddy and player progress panel.
func Status(st models.GameState) string {
	p := st.Progress
	xpInLevel := p.XP % game.XPPerLevel
	lines := []string{
		Heading(st.Buddy.Evolution.Emoji, fmt.Sprintf("%s the %s", st.Buddy.Name, st.Buddy.Evolution.Name)),
		Muted.Render(st.Buddy.Evolution.Description),
		"",
		LabelValue("Level", p.Level),
		LabelValue("XP", fmt.Sprintf("%s %d/%d", ProgressBar(xpInLevel, game.XPPerLevel, 20), xpInLevel, game.XPPerLevel)),
		LabelValue("Coins", fmt.Sprintf("%s %d", IconCoin, p.Currency)),
		LabelValue("Streak", fmt.Sprintf("%s %d", IconFire, p.StreakDays)),
		LabelValue("Studied", fmt.Sprintf("%d min", p.TotalStudyMinutes)),
		LabelValue("Mood", st.Buddy.Mood),
	}
	if len(st.Buddy.Accessories) > 0 {
		lines = append(lines, LabelValue("Wearing", strings.Join(st.Buddy.Accessories, ", ")))
	}
	if len(st.Buddy.Pets) > 0 {
		lines = append(lines, LabelValue("Pets", strings.Join(st.Buddy.Pets, ", ")))
	}
	if st.EquippedTheme != "" {
		lines = append(lines, LabelValue("Theme", st.EquippedTheme))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

func QuestLine(q models.Quest) string {
	mark := "  "
	switch {
	case q.Completed:
		mark = IconDone
	case q.Progress >= q.Target:
		mark = IconTrophy
	}
	line := fmt.Sprintf("%s %s %s %d/%d %s",
		mark, Key.Render(q.Title), ProgressBar(q.Progress, q.Target, 10), q.Progress, q.Target,
		Muted.Render(fmt.Sprintf("(+%d xp, +%d coins) %s", q.Reward.XP, q.Reward.Coins, q.ID)))
	return line
}

func ShopLine(l models.ShopListing) string {
	price := fmt.Sprintf("%s %d", IconCoin, l.Price)
	switch {
	case l.Owned:
		price = Good.Render("owned")
	case !l.Affordable:
		price = Bad.Render(price)
	}
	return fmt.Sprintf("%s %s %s %s %s",
		l.Emoji, Key.Render(l.Name), Rarity(string(l.Rarity)), price, Muted.Render(l.ID))
}

func AgendaLine(it models.AgendaItem, loc *time.Location) string {
	mark := "○"
	if it.Completed {
		mark = IconDone
	}
	when := it.Date.In(loc).Format("Mon 02 Jan 15:04")
	return fmt.Sprintf("%s %s %s %s %s",
		mark, Muted.Render(when), Key.Render(it.Title),
		Muted.Render(fmt.Sprintf("%s · %s · %d min", it.Subject, it.Type, it.DurationMinutes)),
		Muted.Render(it.ID))
}

// SessionLine shows an open session with its pomodoro position.
func SessionLine(sess models.StudySession, pomo game.Pomodoro) string {
	phase := Good.Render("study")
	if pomo.Phase == game.PhaseBreak {
		phase = Warn.Render("break")
	}
	return fmt.Sprintf("%s %s %s cycle %d, %s left %s",
		IconClock, Key.Render(sess.Subject), phase, pomo.Cycle,
		pomo.Remaining.Round(time.Second), Muted.Render(fmt.Sprintf("(%s elapsed)", pomo.Elapsed.Round(time.Second))))
}

func SessionSummary(sum game.SessionSummary) string {
	lines := []string{
		Heading(IconDone, "Session finished: "+sum.Subject),
		LabelValue("Duration", fmt.Sprintf("%d min", sum.DurationMinutes)),
		LabelValue("Earned", fmt.Sprintf("+%d xp, +%d coins", sum.XPGained, sum.CoinsGained)),
		LabelValue("Streak", fmt.Sprintf("%s %d", IconFire, sum.StreakDays)),
	}
	if sum.Level.Up() {
		lines = append(lines, fmt.Sprintf("%s %d → %d", BadgeLevelUp, sum.Level.From, sum.Level.To))
	}
	if sum.GrindCompleted {
		lines = append(lines, Gold.Render("30 minute grind reached"))
	}
	return strings.Join(lines, "\n")
}
