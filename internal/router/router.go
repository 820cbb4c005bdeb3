package router

import (
	"context"
	"fmt"
	"strings"

	"agri-assistant/internal/model"
	"agri-assistant/internal/specialist"
	"agri-assistant/pkg/fencedjson"
)

// Classify determines user intent from the query text.
//
// The classifier is an unreliable oracle: if the model call fails, or
// its response is not valid JSON after fence stripping, a deterministic
// fallback classification is substituted. Classify never fails.
func (r *IntentRouter) Classify(ctx context.Context, text string, hasImage bool) model.IntentClassification {
	prompt := fmt.Sprintf(PromptClassify, text, hasImage)

	responseText, err := r.llm.GenerateText(ctx, prompt)
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed, using fallback: %v", LogPrefixClassify, err)
		return fallbackClassification(text, ReasonLLMError)
	}

	var out model.IntentClassification
	if err := fencedjson.Unmarshal(responseText, &out); err != nil {
		r.l.Warnf(ctx, "%s: failed to parse JSON, using fallback: %v", LogPrefixClassify, err)
		return fallbackClassification(text, ReasonParsingError)
	}

	if out.PrimaryTask == "" {
		out.PrimaryTask = model.TaskGeneral
	}
	out.Parameters = normalizeParameters(out.Parameters)

	r.l.Infof(ctx, "%s: classified as %s (task=%s, agents=%v, confidence=%.2f)",
		LogPrefixClassify, out.Intent, out.PrimaryTask, out.AgentsSuggested, out.Confidence)
	return out
}

// ExtractParameters runs the second, independent extraction call. A
// classification failure does not prevent extraction and vice versa.
func (r *IntentRouter) ExtractParameters(ctx context.Context, text string) model.Parameters {
	prompt := fmt.Sprintf(PromptExtract, text)

	responseText, err := r.llm.GenerateText(ctx, prompt)
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed, returning empty parameters: %v", LogPrefixExtract, err)
		return model.Parameters{}
	}

	var params model.Parameters
	if err := fencedjson.Unmarshal(responseText, &params); err != nil {
		r.l.Warnf(ctx, "%s: failed to parse JSON, returning empty parameters: %v", LogPrefixExtract, err)
		return model.Parameters{}
	}

	return normalizeParameters(params)
}

// fallbackClassification is the deterministic safety net under the
// classifier: general task, crop_advisor suggested only when the text
// plainly talks about growing something.
func fallbackClassification(text, reason string) model.IntentClassification {
	lower := strings.ToLower(text)

	var agents []string
	for _, word := range []string{"crop", "grow", "plant"} {
		if strings.Contains(lower, word) {
			agents = []string{specialist.CropAdvisor}
			break
		}
	}

	return model.IntentClassification{
		Intent:          FallbackIntent,
		AgentsSuggested: agents,
		PrimaryTask:     model.TaskGeneral,
		Confidence:      FallbackConfidence,
		Reasoning:       reason,
	}
}

// normalizeParameters treats extraction as a lossy oracle: whitespace is
// trimmed and the empty-ish values models emit for "not mentioned"
// ("null", "none", "n/a") are normalized to absent.
func normalizeParameters(p model.Parameters) model.Parameters {
	return model.Parameters{
		Crop:     normalizeField(p.Crop),
		Location: normalizeField(p.Location),
		SoilType: normalizeField(p.SoilType),
		Quantity: normalizeField(p.Quantity),
	}
}

func normalizeField(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "none", "n/a":
		return ""
	}
	return s
}
