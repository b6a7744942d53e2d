package usecase

import (
	"smarteventadder/internal/event"
	pkgLog "smarteventadder/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        event.LLM
	calendar   event.Calendar
	fetcher    event.Fetcher
	calendarID string
}

// New creates a new event UseCase instance. calendar and fetcher may be nil
// when the corresponding collaborator is not configured; operations needing
// them fail with a clear error instead.
func New(
	l pkgLog.Logger,
	llm event.LLM,
	calendar event.Calendar,
	fetcher event.Fetcher,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		fetcher:    fetcher,
		calendarID: calendarID,
	}
}
