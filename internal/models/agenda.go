package models

import "time"

type AgendaType string

const (
	AgendaStudy  AgendaType = "study"
	AgendaReview AgendaType = "review"
	AgendaTest   AgendaType = "test"
)

type AgendaItem struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Subject         string     `json:"subject"`
	Type            AgendaType `json:"type"`
	Date            time.Time  `json:"date"`
	DurationMinutes int        `json:"duration_minutes"`
	Completed       bool       `json:"completed"`
}
