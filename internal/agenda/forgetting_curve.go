package agenda

import (
	"fmt"
	"time"

	"github.com/vytor/studybuddy/internal/models"
)

// ReviewOffsetsDays are the fixed forgetting-curve offsets applied after each session.
var ReviewOffsetsDays = []int{1, 3, 7, 14}

// ReviewDurationMinutes is the planned length of every review reminder.
const ReviewDurationMinutes = 5

// ForgettingCurve returns one review item per offset, dated now + offset days.
// Items are never merged with earlier reminders for the same subject.
func ForgettingCurve(subject string, now time.Time, newID func() string) []models.AgendaItem {
	items := make([]models.AgendaItem, 0, len(ReviewOffsetsDays))
	for _, days := range ReviewOffsetsDays {
		items = append(items, models.AgendaItem{
			ID:              newID(),
			Title:           fmt.Sprintf("Quick Review: %s 🔄", subject),
			Subject:         subject,
			Type:            models.AgendaReview,
			Date:            now.Add(time.Duration(days) * 24 * time.Hour),
			DurationMinutes: ReviewDurationMinutes,
		})
	}
	return items
}
