package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"agri-assistant/internal/assistant"
	"agri-assistant/internal/model"
	"agri-assistant/internal/specialist"
)

// Process runs the full request lifecycle for one query. The pipeline
// is strictly sequential; every external call recovers locally, so the
// only error path is malformed input. Profile and history are touched
// only after a response exists.
func (uc *implUseCase) Process(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyQuery
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	hasImage := input.Image != nil && len(input.Image.Data) > 0

	// 1. Classify intent.
	classification := uc.router.Classify(ctx, input.Text, hasImage)

	// 2. Deterministic override of the agent suggestion.
	validated := uc.router.Validate(classification.AgentsSuggested, classification.PrimaryTask, hasImage, input.Text)
	if !equalAgents(validated, classification.AgentsSuggested) {
		uc.l.Infof(ctx, "%s: corrected agents %v -> %v", LogPrefixProcess, classification.AgentsSuggested, validated)
	}

	// 3. Independent parameter extraction; the image travels on its own
	// field, never merged into the text-derived parameters.
	params := uc.router.ExtractParameters(ctx, input.Text)
	dispatchParams := specialist.Params{
		Crop:     params.Crop,
		Location: params.Location,
		SoilType: params.SoilType,
		Quantity: params.Quantity,
	}
	if hasImage {
		dispatchParams.Image = input.Image
	}

	// 4. Dispatch, isolating each specialist's failure.
	results := uc.dispatch(ctx, validated, dispatchParams)

	// 5/6. Synthesize, or fall back to the task-keyed templates.
	var response string
	if len(results) > 0 {
		response = uc.synthesize(ctx, input.Text, classification.Intent, results)
	} else {
		response = noAgentResponse(classification.PrimaryTask)
	}

	// 7. Profile accumulation (last-write-wins scalars, interest counts).
	uc.updateProfile(params, classification.PrimaryTask)

	// 8. Append the turn.
	uc.history = append(uc.history, model.ConversationTurn{
		ID:           uuid.NewString(),
		Timestamp:    uc.now(),
		UserInput:    input.Text,
		Intent:       classification.Intent,
		PrimaryTask:  classification.PrimaryTask,
		AgentsCalled: validated,
		Response:     response,
		HadImage:     hasImage,
	})

	return assistant.ChatOutput{
		Response:     response,
		Intent:       classification.Intent,
		PrimaryTask:  classification.PrimaryTask,
		AgentsCalled: validated,
	}, nil
}

// dispatch invokes the validated agents in order. Unknown names (a
// hallucinating classifier) are skipped without recording anything; a
// failing specialist is recorded as an error string so its siblings and
// the request survive.
func (uc *implUseCase) dispatch(ctx context.Context, validated []string, p specialist.Params) []assistant.AgentResult {
	results := make([]assistant.AgentResult, 0, len(validated))

	for _, name := range validated {
		s, ok := uc.registry.Get(name)
		if !ok {
			uc.l.Warnf(ctx, "%s: unknown agent %q, skipping", LogPrefixProcess, name)
			continue
		}

		uc.l.Infof(ctx, "%s: calling %s", LogPrefixProcess, name)
		out, err := s.Advise(ctx, p)
		if err != nil {
			uc.l.Errorf(ctx, "%s: %s failed: %v", LogPrefixProcess, name, err)
			out = "Error calling " + name + ": " + err.Error()
		}
		results = append(results, assistant.AgentResult{Name: name, Output: out})
	}

	return results
}

// SubmitReport records a disease sighting and returns its alert.
func (uc *implUseCase) SubmitReport(ctx context.Context, input assistant.ReportInput) (assistant.ReportOutput, error) {
	if strings.TrimSpace(input.Crop) == "" || strings.TrimSpace(input.Disease) == "" || strings.TrimSpace(input.Location) == "" {
		return assistant.ReportOutput{}, assistant.ErrEmptyReport
	}

	r, alert, err := uc.registry.AlertSystem().SubmitReport(ctx, input.Crop, input.Disease, input.Location)
	if err != nil {
		// The report is already stored; surface the stored record with a
		// plain confirmation instead of failing the submission.
		uc.l.Errorf(ctx, "%s: alert generation failed: %v", LogPrefixSubmitReport, err)
		return assistant.ReportOutput{
			Report: r,
			Alert:  "✅ Your report has been recorded. We could not generate an alert message right now.",
		}, nil
	}

	return assistant.ReportOutput{Report: r, Alert: alert}, nil
}

// History returns a copy of the session's conversation log.
func (uc *implUseCase) History() []model.ConversationTurn {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.ConversationTurn, len(uc.history))
	copy(out, uc.history)
	return out
}

// Profile returns a snapshot of the accumulated user profile.
func (uc *implUseCase) Profile() model.UserProfile {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot := uc.profile
	if uc.profile.Interests != nil {
		snapshot.Interests = make(map[model.PrimaryTask]int, len(uc.profile.Interests))
		for k, v := range uc.profile.Interests {
			snapshot.Interests[k] = v
		}
	}
	return snapshot
}

// ClearProfile resets the profile. History is kept: it is an append-only
// record, not derived state.
func (uc *implUseCase) ClearProfile() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.profile = model.UserProfile{}
}

// updateProfile overwrites present scalar parameters and bumps the
// interest counter for the classified task.
func (uc *implUseCase) updateProfile(params model.Parameters, primaryTask model.PrimaryTask) {
	if params.Location != "" {
		uc.profile.Location = params.Location
	}
	if params.Crop != "" {
		uc.profile.CurrentCrop = params.Crop
	}
	if params.SoilType != "" {
		uc.profile.SoilType = params.SoilType
	}

	if primaryTask != "" {
		if uc.profile.Interests == nil {
			uc.profile.Interests = make(map[model.PrimaryTask]int)
		}
		uc.profile.Interests[primaryTask]++
	}
}

func noAgentResponse(primaryTask model.PrimaryTask) string {
	if resp, ok := noAgentResponses[primaryTask]; ok {
		return resp
	}
	return genericMenuResponse
}

func equalAgents(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
