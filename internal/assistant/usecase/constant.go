package usecase

import "agri-assistant/internal/model"

// Log prefixes
const (
	LogPrefixProcess      = "internal.assistant.usecase.Process"
	LogPrefixSubmitReport = "internal.assistant.usecase.SubmitReport"
)

// PromptSynthesize merges the specialists' raw outputs into one reply.
// %s placeholders: user query, intent, rendered agent results.
const PromptSynthesize = `User asked: "%s"
Intent: %s

Agent Results:
%s

Create a helpful, comprehensive response that:
1. Directly answers the user's question
2. Integrates all agent outputs naturally
3. Uses a friendly, professional tone
4. Provides actionable advice
5. Includes both English and Hindi where appropriate

Make it conversational and helpful.`

// FallbackResultHeader introduces the verbatim concatenation used when
// the synthesis call fails.
const FallbackResultHeader = "Here's what I found for your query:\n"

// noAgentResponses are returned when the validated list produced no
// results at all, keyed by the classifier's primary task.
var noAgentResponses = map[model.PrimaryTask]string{
	model.TaskDiseaseDetection: "🔬 I understand you want disease analysis. To help you better, please upload an image of your crop leaves, and I'll analyze them for diseases and provide treatment suggestions.",
	model.TaskCropSelection:    "🌱 I can help suggest the best crops for your area! Please provide your soil type and location for personalized recommendations.",
	model.TaskMarketInfo:       "🤝 I can help you find the best places to sell your crops! Please tell me what crop you have and your location.",
	model.TaskAlertCheck:       "⚠️ I can check for disease alerts in your area. Please specify your location and the crop you're concerned about.",
}

// genericMenuResponse covers every other primary task.
const genericMenuResponse = "I understand your agricultural question. Could you please be more specific about what you need help with? I can assist with:\n" +
	"🌱 Crop selection and growing advice\n" +
	"🔬 Disease detection (with images)\n" +
	"🤝 Market information and selling platforms\n" +
	"⚠️ Disease alerts and warnings"
