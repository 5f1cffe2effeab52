package draftkings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

const (
	strikesMarketSuffix = " Total Significant Strikes O/U"
	strikesMarketName   = "Total Significant Strikes O/U"
	distanceMarketName  = "Fight to Go the Distance"
)

// Parser turns raw subcategory payloads into Offer rows.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseStrikes extracts significant-strikes over/under selections.
// Fighter name comes from the first participant, falling back to the market
// name with the market suffix stripped. Labels like "Over 87.5" split into
// the label word and the numeric line; an unparsable line stays absent.
func (p *Parser) ParseStrikes(data []byte) ([]models.Offer, error) {
	var resp apiResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse strikes payload: %w", err)
	}

	strikesMarkets := make(map[string]apiMarket)
	for _, m := range resp.Markets {
		if strings.Contains(m.Name, strikesMarketName) {
			strikesMarkets[m.ID] = m
		}
	}

	var offers []models.Offer
	for _, sel := range resp.Selections {
		m, ok := strikesMarkets[sel.MarketID]
		if !ok {
			continue
		}

		fighter := ""
		if len(sel.Participants) > 0 {
			fighter = sel.Participants[0].Name
		} else {
			fighter = strings.TrimSpace(strings.TrimSuffix(m.Name, strikesMarketSuffix))
		}

		label, line := splitLabel(sel.Label)
		offers = append(offers, models.Offer{
			Fighter:    fighter,
			MarketType: models.MarketSignificantStrikes,
			Label:      label,
			Line:       line,
			Odds:       parseAmericanOdds(sel.DisplayOdds.American),
		})
	}
	return offers, nil
}

// ParseDistance extracts going-the-distance selections, keyed by the fight
// (event) name resolved through the events and markets ID maps.
func (p *Parser) ParseDistance(data []byte) ([]models.Offer, error) {
	var resp apiResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse distance payload: %w", err)
	}

	eventNames := make(map[string]string, len(resp.Events))
	for _, e := range resp.Events {
		eventNames[e.ID] = e.Name
	}

	distanceMarkets := make(map[string]apiMarket)
	for _, m := range resp.Markets {
		if strings.Contains(m.Name, distanceMarketName) {
			distanceMarkets[m.ID] = m
		}
	}

	var offers []models.Offer
	for _, sel := range resp.Selections {
		m, ok := distanceMarkets[sel.MarketID]
		if !ok {
			continue
		}

		fight := eventNames[m.EventID]
		if fight == "" {
			fight = "Unknown Fight"
		}

		offers = append(offers, models.Offer{
			Fight:      fight,
			MarketType: models.MarketGoingDistance,
			Label:      sel.Label,
			Odds:       parseAmericanOdds(sel.DisplayOdds.American),
		})
	}
	return offers, nil
}

// splitLabel splits a selection label like "Over 87.5" into its label word
// and numeric line. A missing or non-numeric line is absent, not an error.
func splitLabel(label string) (string, *float64) {
	parts := strings.Fields(label)
	if len(parts) == 0 {
		return label, nil
	}
	if len(parts) < 2 {
		return parts[0], nil
	}
	v, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return parts[0], nil
	}
	return parts[0], models.FloatPtr(v)
}

// parseAmericanOdds coerces display odds like "+200" or "−150" to an int.
// DraftKings uses a Unicode minus sign in display odds.
func parseAmericanOdds(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "−", "-")
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return models.IntPtr(v)
}
