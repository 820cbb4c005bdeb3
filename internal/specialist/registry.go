package specialist

import (
	"fmt"

	"agri-assistant/internal/report"
	"agri-assistant/pkg/gemini"
	"agri-assistant/pkg/log"
	"agri-assistant/pkg/weather"
)

// Registry is the static mapping from the closed specialist name enum
// to instances, populated once at startup. A missing specialist is a
// configuration error surfaced by Validate, not a per-call skip.
type Registry struct {
	specialists map[string]Specialist
	alerts      *AlertSystemAgent
	advisor     *CropAdvisorAgent
}

// NewRegistry builds all four specialists from their injected
// collaborators.
func NewRegistry(l log.Logger, llm gemini.Generator, wx weather.Lookup, store *report.Store) *Registry {
	advisor := NewCropAdvisor(llm, wx, l)
	alerts := NewAlertSystem(llm, store, l)

	r := &Registry{
		specialists: make(map[string]Specialist),
		alerts:      alerts,
		advisor:     advisor,
	}
	for _, s := range []Specialist{
		advisor,
		NewMarketBroker(llm, l),
		NewDiseaseDetector(llm, l),
		alerts,
	} {
		r.specialists[s.Name()] = s
	}
	return r
}

// Get retrieves a specialist by name.
func (r *Registry) Get(name string) (Specialist, bool) {
	s, ok := r.specialists[name]
	return s, ok
}

// AlertSystem returns the alert specialist for the report-submission
// entry point.
func (r *Registry) AlertSystem() *AlertSystemAgent {
	return r.alerts
}

// CropAdvisor returns the crop advisor for the direct advice entry
// point that also surfaces the weather summary.
func (r *Registry) CropAdvisor() *CropAdvisorAgent {
	return r.advisor
}

// Validate checks that every name of the closed enum is registered.
func (r *Registry) Validate() error {
	for _, name := range AllNames {
		if _, ok := r.specialists[name]; !ok {
			return fmt.Errorf("specialist %q is not registered", name)
		}
	}
	return nil
}
