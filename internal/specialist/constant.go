package specialist

// Dispatch defaults applied when an extracted parameter is absent.
const (
	DefaultSoilType = "mixed"
	DefaultLocation = "India"
	DefaultCrop     = "wheat"

	// QuantityUnspecified is what the market prompt shows when the farmer
	// did not mention a quantity.
	QuantityUnspecified = "Not specified"
)

// NoImageMessage is returned by the disease detector when no image is
// attached. Routing should only send image-less queries here on a
// keyword match, so this stands in for a diagnosis rather than erroring.
const NoImageMessage = "Disease detection requires an image upload. Please use the web interface to attach a photo of the affected crop."

// PromptCropAdvice generates crop suggestions from soil, weather and
// location context. Verb order matters to the model less than the
// explicit bilingual format instructions.
const PromptCropAdvice = `You are an Agriculture expert.

Soil Type: %s
Weather: %s
Location: %s

Suggest the 3 most suitable crops to grow for this weather and soil. Also explain in 5-6 lines why each crop is suitable.
Suggestions must be given in 2 languages, ENGLISH and HINDI.

Provide the response in a friendly and informative tone.
Format the response as follows:
1. Crop Name: [Crop Name] in English and Hindi both.
   Reason: in both languages.
2. Crop Name: [Crop Name] in English and Hindi both.
   Reason: in both languages.
3. Crop Name: [Crop Name] in English and Hindi both.
   Reason: in both languages.

If no crops are suitable, respond with "No suitable crops found for the given conditions."

End with a motivational message about farming, first in English, then in Hindi.
Bold the crop names and the headings Crop Name: and Reason:; keep the rest of the text in normal font.`

// PromptMarketBroker suggests where to sell a crop.
const PromptMarketBroker = `You are a smart agriculture marketing agent.

A farmer has the following details:
- Crop: %s
- Location: %s
- Quantity: %s

Please suggest 2-3 best market platforms or local buyers where this crop can be sold at a good price, trustworthy and researched on recent data.
Include:
- Buyer/market name or platform (e.g., local mandi, cooperative, or online platform like eNAM).
- Why it's a good place to sell the crop.
- Estimated price range (simulate realistically for this region and crop).
Mention that the price is approximate and based on realistic market simulation.
Answer in English first, then in Hindi on the next line for better understanding.

Be confident in your suggestions, simulate useful examples, and do not refuse to answer due to lack of data. Respond clearly and briefly.`

// PromptDiseaseDetection analyzes a crop leaf image.
const PromptDiseaseDetection = `This is a crop leaf image taken by a farmer.
Please analyze if there are any visible signs of plant disease or pest.
If yes:
- Name the crop disease (if possible).
- Mention symptoms seen in the image.
- Suggest treatment or preventive remedy.
- Mention whether it's serious or mild.
- Mention if it can be treated at home or requires professional help.
- Help the farmer understand the issue clearly.
- Provide a friendly and informative response.
If the image is not clear or no disease is detected, ask for a clearer image.
If no disease is detected, say it's healthy.
Explain in Hindi and English both.`

// PromptAlertActive is used when recent reports match the farmer's crop
// or area. %s is the rendered report context.
const PromptAlertActive = `You are an agricultural assistant. Please note the alert for the farmer.
- Recent crop disease reports relevant to the farmer:
%s
- Write a serious but helpful message for the farmer.
- Mention the crop disease name and its symptoms.
- Give the solution for the crop disease and suggest medicines/pesticides.
- Encourage them to inspect the field or consult experts.
- Provide clear and actionable advice, concise and informative.
- First in English, then in Hindi.

Do not give the response in report format, just write a message.
Remark - Always first explain in English, then explain in Hindi.`

// PromptAlertClear is used when no reports match.
const PromptAlertClear = `You are an agricultural assistant. Please note the alert status for the farmer.
- No recent crop disease alerts have been reported for their crop or area.
- Write a cheerful and motivating message for the farmer.
- Encourage them to keep monitoring their fields and report anything unusual.
- First in English, then in Hindi.

Do not give the response in report format, just write a message.
Remark - Always first explain in English, then explain in Hindi.`

// Log prefixes
const (
	LogPrefixCropAdvisor     = "internal.specialist.CropAdvisor"
	LogPrefixMarketBroker    = "internal.specialist.MarketBroker"
	LogPrefixDiseaseDetector = "internal.specialist.DiseaseDetector"
	LogPrefixAlertSystem     = "internal.specialist.AlertSystem"
)
