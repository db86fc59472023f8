package game

import (
	"context"
	"strings"

	"github.com/vytor/studybuddy/internal/agenda"
	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/models"
)

// AddAgendaItem plans a study, test or review block. The id is assigned by the store.
func (s *Store) AddAgendaItem(ctx context.Context, item models.AgendaItem) (models.AgendaItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	item.Subject = strings.TrimSpace(item.Subject)
	if item.Title == "" {
		return models.AgendaItem{}, errors.NewValidationError("title", "cannot be empty")
	}
	switch item.Type {
	case models.AgendaStudy, models.AgendaReview, models.AgendaTest:
	default:
		return models.AgendaItem{}, errors.NewValidationError("type", "must be study, review or test")
	}
	if item.Date.IsZero() {
		return models.AgendaItem{}, errors.NewValidationError("date", "is required")
	}
	if item.DurationMinutes <= 0 {
		return models.AgendaItem{}, errors.NewInvalidAmountError("duration_minutes", item.DurationMinutes)
	}

	item.ID = s.newID()
	item.Completed = false
	_, err := s.mutate(ctx, "add_agenda_item", func(st *models.GameState) error {
		st.Agenda = append(st.Agenda, item)
		return nil
	})
	if err != nil {
		return models.AgendaItem{}, err
	}
	return item, nil
}

// CompleteAgendaItem ticks an agenda entry off.
func (s *Store) CompleteAgendaItem(ctx context.Context, id string) (Outcome, error) {
	_, err := s.mutate(ctx, "complete_agenda_item", func(st *models.GameState) error {
		for i := range st.Agenda {
			if st.Agenda[i].ID != id {
				continue
			}
			if st.Agenda[i].Completed {
				return errNoChange
			}
			st.Agenda[i].Completed = true
			return nil
		}
		return errors.NewUnknownEntityError("agenda item", id)
	})
	if errors.Is(err, errNoChange) {
		return OutcomeUnchanged, nil
	}
	if err != nil {
		return "", err
	}
	return OutcomeApplied, nil
}

// Agenda returns the agenda through one of the named views.
func (s *Store) Agenda(view string) []models.AgendaItem {
	return agenda.Filter(s.Snapshot().Agenda, view, s.now())
}
