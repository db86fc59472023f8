package game

import "time"

const (
	PomodoroStudy = 25 * time.Minute
	PomodoroBreak = 5 * time.Minute
)

type PomodoroPhase string

const (
	PhaseStudy PomodoroPhase = "study"
	PhaseBreak PomodoroPhase = "break"
)

// Pomodoro is the position of a session clock inside the 25/5 minute cycle.
type Pomodoro struct {
	Phase     PomodoroPhase `json:"phase"`
	Cycle     int           `json:"cycle"`
	Elapsed   time.Duration `json:"elapsed"`
	Remaining time.Duration `json:"remaining"`
}

// PomodoroAt maps an elapsed session time onto the study/break cycle. Cycles are
// numbered from one.
func PomodoroAt(elapsed time.Duration) Pomodoro {
	if elapsed < 0 {
		elapsed = 0
	}
	cycleLen := PomodoroStudy + PomodoroBreak
	into := elapsed % cycleLen
	p := Pomodoro{
		Cycle:   int(elapsed/cycleLen) + 1,
		Elapsed: elapsed,
	}
	if into < PomodoroStudy {
		p.Phase = PhaseStudy
		p.Remaining = PomodoroStudy - into
	} else {
		p.Phase = PhaseBreak
		p.Remaining = cycleLen - into
	}
	return p
}
