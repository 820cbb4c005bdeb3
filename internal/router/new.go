package router

import (
	"context"

	"agri-assistant/internal/model"
	"agri-assistant/pkg/gemini"
	"agri-assistant/pkg/log"
)

// Router classifies a query, extracts its parameters, and corrects the
// classifier's agent suggestion with a deterministic keyword policy.
type Router interface {
	// Classify determines the query intent. It never fails: any model or
	// parse error yields the deterministic fallback classification.
	Classify(ctx context.Context, text string, hasImage bool) model.IntentClassification

	// ExtractParameters pulls typed parameters out of free text. It never
	// fails: any model or parse error yields empty parameters.
	ExtractParameters(ctx context.Context, text string) model.Parameters

	// Validate applies the keyword override ladder and returns the final
	// agent list to dispatch.
	Validate(suggested []string, primaryTask model.PrimaryTask, hasImage bool, text string) []string
}

// IntentRouter classifies user intent using the LLM, guarded by a
// deterministic keyword override policy.
type IntentRouter struct {
	llm gemini.Generator
	l   log.Logger
}

var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
func New(llm gemini.Generator, l log.Logger) *IntentRouter {
	return &IntentRouter{
		llm: llm,
		l:   l,
	}
}
