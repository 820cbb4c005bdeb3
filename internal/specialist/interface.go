package specialist

import (
	"context"

	"agri-assistant/internal/model"
)

// Params is the parameter bag handed to a specialist at dispatch time.
// Empty string fields were not extracted from the query; each
// specialist applies its own defaults. Image is attached only when the
// query carried one.
type Params struct {
	Crop     string
	Location string
	SoilType string
	Quantity string
	Image    *model.Image
}

// Specialist is one advice generator: fill a prompt template from the
// parameter bag and external data, call the model once, return raw
// text. Failures are returned as errors; the dispatcher records them as
// the agent's textual result instead of propagating.
type Specialist interface {
	Name() string
	Advise(ctx context.Context, p Params) (string, error)
}
