package model

// Image is an uploaded image with its declared MIME type.
type Image struct {
	MIMEType string
	Data     []byte
}

// PrimaryTask is the enumerated task category a query is classified into.
type PrimaryTask string

const (
	TaskDiseaseDetection PrimaryTask = "disease_detection"
	TaskCropSelection    PrimaryTask = "crop_selection"
	TaskMarketInfo       PrimaryTask = "market_info"
	TaskAlertCheck       PrimaryTask = "alert_check"
	TaskGeneral          PrimaryTask = "general"
)

// Parameters are the agricultural parameters extracted from free text.
// An empty string means the parameter was not mentioned; consumers apply
// their own defaults.
type Parameters struct {
	Crop     string `json:"crop"`
	Location string `json:"location"`
	SoilType string `json:"soil_type"`
	Quantity string `json:"quantity"`
}

// IntentClassification is the classifier's verdict for one query.
// JSON tags match the structured-output contract sent to the model.
type IntentClassification struct {
	Intent          string      `json:"intent"`
	AgentsSuggested []string    `json:"agents_needed"`
	PrimaryTask     PrimaryTask `json:"primary_task"`
	Parameters      Parameters  `json:"parameters"`
	Confidence      float64     `json:"confidence"`
	Reasoning       string      `json:"reasoning"`
}
