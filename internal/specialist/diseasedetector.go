package specialist

import (
	"context"
	"fmt"

	"agri-assistant/internal/model"
	"agri-assistant/pkg/gemini"
	"agri-assistant/pkg/log"
)

// DiseaseDetectorAgent diagnoses crop diseases from leaf images via the
// vision model.
type DiseaseDetectorAgent struct {
	llm gemini.Generator
	l   log.Logger
}

var _ Specialist = (*DiseaseDetectorAgent)(nil)

// NewDiseaseDetector creates the disease detector specialist.
func NewDiseaseDetector(llm gemini.Generator, l log.Logger) *DiseaseDetectorAgent {
	return &DiseaseDetectorAgent{llm: llm, l: l}
}

func (a *DiseaseDetectorAgent) Name() string { return DiseaseDetector }

// Advise implements Specialist.
func (a *DiseaseDetectorAgent) Advise(ctx context.Context, p Params) (string, error) {
	return a.DetectDisease(ctx, p.Image)
}

// DetectDisease analyzes the attached crop image. Routing guarantees an
// image on the disease path when one was uploaded; a keyword-triggered
// query without one gets the fixed instructional message instead of an
// error.
func (a *DiseaseDetectorAgent) DetectDisease(ctx context.Context, img *model.Image) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return NoImageMessage, nil
	}

	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	diagnosis, err := a.llm.GenerateVision(ctx, PromptDiseaseDetection, mimeType, img.Data)
	if err != nil {
		return "", fmt.Errorf("disease detection failed: %w", err)
	}
	return diagnosis, nil
}
