package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agri-assistant/internal/assistant"
)

// synthesize merges the collected agent results into one reply via a
// final model call. If that call fails, the fallback reproduces every
// result verbatim under a header naming its agent, in dispatch order,
// so the user always receives everything the specialists produced.
func (uc *implUseCase) synthesize(ctx context.Context, userInput, intent string, results []assistant.AgentResult) string {
	prompt := fmt.Sprintf(PromptSynthesize, userInput, intent, renderResults(results))

	response, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "%s: synthesis failed, concatenating results: %v", LogPrefixProcess, err)
		return concatResults(results)
	}
	return response
}

// renderResults formats the {agent: result} pairs as indented JSON for
// the synthesis prompt.
func renderResults(results []assistant.AgentResult) string {
	m := make(map[string]string, len(results))
	for _, r := range results {
		m[r.Name] = r.Output
	}
	rendered, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return concatResults(results)
	}
	return string(rendered)
}

func concatResults(results []assistant.AgentResult) string {
	var b strings.Builder
	b.WriteString(FallbackResultHeader)
	for _, r := range results {
		fmt.Fprintf(&b, "\n**%s:**\n%s\n", displayName(r.Name), r.Output)
	}
	return b.String()
}

// displayName turns an agent name like "market_broker" into
// "Market Broker".
func displayName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
