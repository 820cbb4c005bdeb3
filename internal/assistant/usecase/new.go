package usecase

import (
	"sync"
	"time"

	"agri-assistant/internal/assistant"
	"agri-assistant/internal/model"
	"agri-assistant/internal/router"
	"agri-assistant/internal/specialist"
	"agri-assistant/pkg/gemini"
	pkgLog "agri-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      gemini.Generator
	router   router.Router
	registry *specialist.Registry

	// Session state. mu serializes Process so profile and history are
	// never updated by overlapping requests of the same session.
	mu      sync.Mutex
	profile model.UserProfile
	history []model.ConversationTurn

	now func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates one session's assistant.
func New(l pkgLog.Logger, llm gemini.Generator, r router.Router, registry *specialist.Registry) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		router:   r,
		registry: registry,
		now:      time.Now,
	}
}
