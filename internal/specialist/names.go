package specialist

// Specialist agent names. This is the closed enum of dispatchable
// agents; a classifier may hallucinate names outside it, which the
// dispatcher skips.
const (
	CropAdvisor     = "crop_advisor"
	MarketBroker    = "market_broker"
	DiseaseDetector = "disease_detector"
	AlertSystem     = "alert_system"
)

// AllNames lists every specialist the registry must provide at startup.
var AllNames = []string{CropAdvisor, MarketBroker, DiseaseDetector, AlertSystem}
