package specialist

import (
	"context"
	"fmt"

	"agri-assistant/pkg/gemini"
	"agri-assistant/pkg/log"
)

// MarketBrokerAgent suggests where to sell a crop at a good price.
type MarketBrokerAgent struct {
	llm gemini.Generator
	l   log.Logger
}

var _ Specialist = (*MarketBrokerAgent)(nil)

// NewMarketBroker creates the market broker specialist.
func NewMarketBroker(llm gemini.Generator, l log.Logger) *MarketBrokerAgent {
	return &MarketBrokerAgent{llm: llm, l: l}
}

func (a *MarketBrokerAgent) Name() string { return MarketBroker }

// Advise implements Specialist.
func (a *MarketBrokerAgent) Advise(ctx context.Context, p Params) (string, error) {
	return a.BrokerMarket(ctx, p.Crop, p.Location, p.Quantity)
}

// BrokerMarket generates selling advice. Quantity is optional and shown
// as unspecified when absent.
func (a *MarketBrokerAgent) BrokerMarket(ctx context.Context, crop, location, quantity string) (string, error) {
	if crop == "" {
		crop = DefaultCrop
	}
	if location == "" {
		location = DefaultLocation
	}
	if quantity == "" {
		quantity = QuantityUnspecified
	}

	prompt := fmt.Sprintf(PromptMarketBroker, crop, location, quantity)
	advice, err := a.llm.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("market advice generation failed: %w", err)
	}
	return advice, nil
}
