package assistant

import (
	"context"

	"agri-assistant/internal/model"
)

// UseCase is one session's assistant: it owns that session's user
// profile and conversation log and processes queries strictly one at a
// time.
type UseCase interface {
	// Process runs the full request lifecycle: classify, validate,
	// extract, dispatch, synthesize, then update profile and history.
	// Recoverable failures (classifier, specialists, synthesis) never
	// surface as errors; only malformed input does.
	Process(ctx context.Context, input ChatInput) (ChatOutput, error)

	// SubmitReport records a disease sighting in the shared store and
	// returns the alert generated for it.
	SubmitReport(ctx context.Context, input ReportInput) (ReportOutput, error)

	// History returns the session's conversation turns, oldest first.
	History() []model.ConversationTurn

	// Profile returns a snapshot of the accumulated user profile.
	Profile() model.UserProfile

	// ClearProfile resets the accumulated profile. This is the only way
	// profile state is ever dropped.
	ClearProfile()
}
