package api

import (
	"context"

	"github.com/vytor/studybuddy/internal/services"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	GameService    services.GameService
	HistoryService services.HistoryService
	CoachService   services.CoachService
	DB             Pinger
}
