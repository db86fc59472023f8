package models

import "time"

// StudySession is the single in-flight focus session.
type StudySession struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	StartTime time.Time `json:"start_time"`
	Questions []string  `json:"questions"`
}

// SessionRecord is a closed session kept in history.
type SessionRecord struct {
	ID              string    `json:"id"`
	StoreName       string    `json:"store_name"`
	Subject         string    `json:"subject"`
	StartedAt       time.Time `json:"started_at"`
	EndedAt         time.Time `json:"ended_at"`
	DurationMinutes int       `json:"duration_minutes"`
	XPGained        int       `json:"xp_gained"`
	CoinsGained     int       `json:"coins_gained"`
	CreatedAt       time.Time `json:"created_at"`
}

type SessionFilter struct {
	StoreName string
	Subject   string
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Offset    int
}

type SubjectTotal struct {
	Subject      string `json:"subject"`
	Sessions     int    `json:"sessions"`
	TotalMinutes int    `json:"total_minutes"`
	TotalXP      int    `json:"total_xp"`
}
