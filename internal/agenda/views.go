package agenda

import (
	"sort"
	"time"

	"github.com/vytor/studybuddy/internal/models"
)

// Views accepted by Filter.
const (
	ViewAll      = "all"
	ViewToday    = "today"
	ViewUpcoming = "upcoming"
)

// Sorted returns a copy of items ordered by date.
func Sorted(items []models.AgendaItem) []models.AgendaItem {
	out := append([]models.AgendaItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Upcoming returns open items dated after now.
func Upcoming(items []models.AgendaItem, now time.Time) []models.AgendaItem {
	var out []models.AgendaItem
	for _, it := range Sorted(items) {
		if !it.Completed && it.Date.After(now) {
			out = append(out, it)
		}
	}
	return out
}

// Today returns items on the same calendar day as now, in now's location.
func Today(items []models.AgendaItem, now time.Time) []models.AgendaItem {
	y, m, d := now.Date()
	var out []models.AgendaItem
	for _, it := range Sorted(items) {
		iy, im, id := it.Date.In(now.Location()).Date()
		if iy == y && im == m && id == d {
			out = append(out, it)
		}
	}
	return out
}

// Filter applies a named view. Unknown views behave like ViewAll.
func Filter(items []models.AgendaItem, view string, now time.Time) []models.AgendaItem {
	switch view {
	case ViewToday:
		return Today(items, now)
	case ViewUpcoming:
		return Upcoming(items, now)
	default:
		return Sorted(items)
	}
}
