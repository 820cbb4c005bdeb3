package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
	LogPrefixExtract  = "internal.router.ExtractParameters"
)

// Classification prompt. The model is instructed to answer with a JSON
// object matching model.IntentClassification; a markdown fence around
// the JSON is tolerated and stripped before parsing.
const PromptClassify = `You are an expert agricultural AI classifier. Analyze this query and classify it precisely:

Query: "%s"
Has Image Attached: %t

CLASSIFICATION RULES:
- disease_detector: ONLY if the query mentions disease, pest, leaf problems, image analysis, crop health issues, or an image is attached
- crop_advisor: ONLY if asking what crops to grow, crop suggestions, planting advice
- market_broker: ONLY if asking where to sell, market prices, buyers, selling platforms
- alert_system: ONLY if asking about disease alerts, area warnings, recent outbreaks

KEYWORDS TO WATCH:
- Disease/Health: "disease", "pest", "sick", "spots", "dying", "problem", "leaf", "analyze image", "check photo"
- Crop Selection: "what to grow", "which crop", "suggest crops", "best crops", "planting"
- Market: "sell", "buyer", "market", "price", "where to sell"
- Alerts: "alert", "warning", "outbreak", "recent disease"

Return JSON:
{
    "intent": "specific intent description",
    "agents_needed": ["ONLY the most relevant agent(s)"],
    "primary_task": "disease_detection|crop_selection|market_info|alert_check|general",
    "parameters": {
        "crop": "extracted crop name or null",
        "location": "extracted location or null",
        "soil_type": "extracted soil type or null"
    },
    "confidence": 0.9,
    "reasoning": "why you chose these agents"
}

BE STRICT: Choose only ONE primary agent unless clearly multiple tasks are requested.`

// Parameter extraction prompt, an independent second call.
const PromptExtract = `Extract agricultural parameters from: "%s"

Return JSON:
{
    "crop": "crop name or null",
    "location": "city/region or null",
    "soil_type": "soil type or null",
    "quantity": "quantity mentioned or null"
}`

// Fallback classification content
const (
	FallbackIntent     = "general agricultural query"
	FallbackConfidence = 0.5

	ReasonLLMError     = "Fallback: classifier call failed"
	ReasonParsingError = "Fallback: classifier response was not valid JSON"
)
