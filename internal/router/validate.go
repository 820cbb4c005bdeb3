package router

import (
	"strings"

	"agri-assistant/internal/model"
	"agri-assistant/internal/specialist"
)

// Keyword sets for the deterministic override ladder. Earlier rules win.
var (
	diseaseKeywords = []string{"disease", "pest", "sick", "dying", "spots", "leaf", "problem", "analyze", "check", "diagnose", "health"}
	cropKeywords    = []string{"grow", "plant", "suggest crops", "which crop", "best crop", "suitable crop", "recommend"}
	marketKeywords  = []string{"sell", "buyer", "market", "price", "selling", "purchase", "buy"}
	alertKeywords   = []string{"alert", "warning", "outbreak", "recent", "area", "nearby"}
)

// Validate corrects the classifier's agent suggestion with a fixed
// priority ladder. The classifier is occasionally over-eager; clearly
// signaled intents (above all, an attached image) must route
// predictably no matter what it suggested.
func (r *IntentRouter) Validate(suggested []string, primaryTask model.PrimaryTask, hasImage bool, text string) []string {
	lower := strings.ToLower(text)

	// 1. An image always means disease detection.
	if hasImage || containsAny(lower, diseaseKeywords) {
		return []string{specialist.DiseaseDetector}
	}

	// 2. Crop selection needs both a selection keyword and "soil".
	if containsAny(lower, cropKeywords) && strings.Contains(lower, "soil") {
		return []string{specialist.CropAdvisor}
	}

	// 3. Market queries.
	if containsAny(lower, marketKeywords) {
		return []string{specialist.MarketBroker}
	}

	// 4. Alert queries.
	if containsAny(lower, alertKeywords) {
		return []string{specialist.AlertSystem}
	}

	// 5. No keyword matched: trust the classifier, capped at one agent.
	if len(suggested) > 0 {
		return []string{suggested[0]}
	}

	// 6. Unconditional safe default.
	return []string{specialist.CropAdvisor}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
