package specialist

import (
	"context"
	"fmt"

	"agri-assistant/pkg/gemini"
	"agri-assistant/pkg/log"
	"agri-assistant/pkg/weather"
)

// CropAdvisorAgent suggests crops to grow from soil type, location and
// a best-effort weather forecast fetched as part of the call.
type CropAdvisorAgent struct {
	llm     gemini.Generator
	weather weather.Lookup
	l       log.Logger
}

var _ Specialist = (*CropAdvisorAgent)(nil)

// NewCropAdvisor creates the crop advisor specialist.
func NewCropAdvisor(llm gemini.Generator, wx weather.Lookup, l log.Logger) *CropAdvisorAgent {
	return &CropAdvisorAgent{llm: llm, weather: wx, l: l}
}

func (a *CropAdvisorAgent) Name() string { return CropAdvisor }

// Advise implements Specialist. The weather summary is folded into the
// advice prompt; callers needing it separately use AdviseCrops.
func (a *CropAdvisorAgent) Advise(ctx context.Context, p Params) (string, error) {
	advice, _, err := a.AdviseCrops(ctx, p.SoilType, p.Location)
	return advice, err
}

// AdviseCrops generates crop advice and returns it together with the
// weather summary used as context. Missing parameters fall back to
// the dispatch defaults.
func (a *CropAdvisorAgent) AdviseCrops(ctx context.Context, soilType, location string) (string, string, error) {
	if soilType == "" {
		soilType = DefaultSoilType
	}
	if location == "" {
		location = DefaultLocation
	}

	wx := a.weather.Summary(ctx, location)
	a.l.Debugf(ctx, "%s: weather for %s: %s", LogPrefixCropAdvisor, location, wx)

	prompt := fmt.Sprintf(PromptCropAdvice, soilType, wx, location)
	advice, err := a.llm.GenerateText(ctx, prompt)
	if err != nil {
		return "", wx, fmt.Errorf("crop advice generation failed: %w", err)
	}
	return advice, wx, nil
}
