package game

import (
	"context"
	"strings"
	"time"

	"github.com/vytor/studybuddy/internal/agenda"
	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/models"
)

const (
	// XPPerMinute is awarded for every whole minute of a closed session.
	XPPerMinute = 3
	// MinutesPerCoin converts session minutes into coins, rounding down.
	MinutesPerCoin = 3
	// GrindMinutes is the session length that completes the daily grind quest.
	GrindMinutes = 30
)

// SessionSummary describes what closing a session credited and scheduled.
type SessionSummary struct {
	SessionID       string              `json:"session_id"`
	Subject         string              `json:"subject"`
	StartedAt       time.Time           `json:"started_at"`
	EndedAt         time.Time           `json:"ended_at"`
	DurationMinutes int                 `json:"duration_minutes"`
	XPGained        int                 `json:"xp_gained"`
	CoinsGained     int                 `json:"coins_gained"`
	Level           LevelChange         `json:"level"`
	GrindCompleted  bool                `json:"grind_completed"`
	StreakDays      int                 `json:"streak_days"`
	Reviews         []models.AgendaItem `json:"reviews"`
}

// SessionRewards converts a whole-minute duration into XP and coins.
func SessionRewards(durationMinutes int) (xp, coins int) {
	if durationMinutes <= 0 {
		return 0, 0
	}
	return durationMinutes * XPPerMinute, durationMinutes / MinutesPerCoin
}

// StartSession opens a focus session. Only one session may be open at a time.
func (s *Store) StartSession(ctx context.Context, subject string) (models.StudySession, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return models.StudySession{}, errors.NewValidationError("subject", "cannot be empty")
	}

	var sess models.StudySession
	_, err := s.mutate(ctx, "start_session", func(st *models.GameState) error {
		if st.CurrentSession != nil {
			return errors.NewSessionConflictError(st.CurrentSession.Subject)
		}
		sess = models.StudySession{
			ID:        s.newID(),
			Subject:   subject,
			StartTime: s.now(),
			Questions: s.catalog.SessionQuestions(subject),
		}
		st.CurrentSession = &sess
		st.Buddy.Mood = models.MoodFocused
		return nil
	})
	if err != nil {
		return models.StudySession{}, err
	}
	s.log.Info("session started: subject=%s", subject)
	return sess, nil
}

// StopSession closes the open session, credits its rewards and schedules reviews.
// With no open session it fails with SESSION_ABSENT and changes nothing.
func (s *Store) StopSession(ctx context.Context) (SessionSummary, error) {
	return s.stopSession(ctx, "stop_session", nil)
}

// FinishSessionWithUpload marks the screenshot quest as done and closes the session,
// in a single mutation.
func (s *Store) FinishSessionWithUpload(ctx context.Context) (SessionSummary, error) {
	return s.stopSession(ctx, "finish_session_with_upload", func(st *models.GameState) {
		if i := st.QuestIndex(QuestScreenshot); i >= 0 {
			q := &st.DailyQuests[i]
			q.Progress = min(1, q.Target)
		}
	})
}

func (s *Store) stopSession(ctx context.Context, op string, before func(st *models.GameState)) (SessionSummary, error) {
	var sum SessionSummary
	_, err := s.mutate(ctx, op, func(st *models.GameState) error {
		sess := st.CurrentSession
		if sess == nil {
			return errors.NewSessionAbsentError()
		}
		if before != nil {
			before(st)
		}

		now := s.now()
		duration := int(now.Sub(sess.StartTime) / time.Minute)
		if duration < 0 {
			duration = 0
		}
		xp, coins := SessionRewards(duration)

		sum = SessionSummary{
			SessionID:       sess.ID,
			Subject:         sess.Subject,
			StartedAt:       sess.StartTime,
			EndedAt:         now,
			DurationMinutes: duration,
			XPGained:        xp,
			CoinsGained:     coins,
		}

		sum.Level = s.credit(st, xp, coins)
		st.Progress.TotalStudyMinutes += duration

		if duration >= GrindMinutes {
			if i := st.QuestIndex(QuestDailyGrind); i >= 0 {
				st.DailyQuests[i].Progress = GrindMinutes
				st.DailyQuests[i].Completed = true
				sum.GrindCompleted = true
			}
		}

		if duration >= 1 {
			recordStudyDay(st, now)
		}
		sum.StreakDays = st.Progress.StreakDays

		sum.Reviews = agenda.ForgettingCurve(sess.Subject, now, s.newID)
		st.Agenda = append(st.Agenda, sum.Reviews...)

		st.CurrentSession = nil
		if duration >= GrindMinutes {
			st.Buddy.Mood = models.MoodFire
		} else {
			st.Buddy.Mood = models.MoodHappy
		}
		return nil
	})
	if err != nil {
		return SessionSummary{}, err
	}
	s.log.Info("session stopped: subject=%s duration=%dm xp=%d coins=%d", sum.Subject, sum.DurationMinutes, sum.XPGained, sum.CoinsGained)
	return sum, nil
}

// recordStudyDay advances the streak: consecutive days grow it, a gap resets it to one,
// and a second session on the same day leaves it alone.
func recordStudyDay(st *models.GameState, now time.Time) {
	today := dayKey(now)
	yesterday := dayKey(now.AddDate(0, 0, -1))
	switch st.Progress.LastStudyDay {
	case today:
	case yesterday:
		st.Progress.StreakDays++
	default:
		st.Progress.StreakDays = 1
	}
	st.Progress.LastStudyDay = today
	if i := st.QuestIndex(QuestDailyStreak); i >= 0 {
		q := &st.DailyQuests[i]
		q.Progress = min(1, q.Target)
	}
}

// CurrentSession returns the open session, if any, and its pomodoro position.
func (s *Store) CurrentSession() (*models.StudySession, Pomodoro) {
	st := s.Snapshot()
	if st.CurrentSession == nil {
		return nil, Pomodoro{}
	}
	return st.CurrentSession, PomodoroAt(s.now().Sub(st.CurrentSession.StartTime))
}
