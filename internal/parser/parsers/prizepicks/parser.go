package prizepicks

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

type apiResponse struct {
	Data []apiProjection `json:"data"`
}

type apiProjection struct {
	Attributes apiAttributes `json:"attributes"`
}

type apiAttributes struct {
	Description string    `json:"description"`
	StatType    string    `json:"stat_type"`
	LineScore   flexFloat `json:"line_score"`
	StartTime   string    `json:"start_time"`
	OddsType    string    `json:"odds_type"`
}

// flexFloat accepts a line score as a JSON number or a quoted string.
// A missing or non-numeric value is absent, never a decode error.
type flexFloat struct {
	value float64
	ok    bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.value = v
	f.ok = true
	return nil
}

// Parser filters raw projection payloads down to the configured stat types
// and odds type.
type Parser struct {
	statTypes map[string]struct{}
	oddsType  string
}

// NewParser keeps projections whose stat type is in statTypes (empty list
// keeps all) and whose odds type equals oddsType.
func NewParser(statTypes []string, oddsType string) *Parser {
	set := make(map[string]struct{}, len(statTypes))
	for _, s := range statTypes {
		set[s] = struct{}{}
	}
	return &Parser{statTypes: set, oddsType: oddsType}
}

// Parse maps the JSON:API payload to Projection rows. Rows with an
// unparsable line score are dropped: a projection without a numeric line
// has nothing to compare against.
func (p *Parser) Parse(data []byte) ([]models.Projection, error) {
	var resp apiResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse projections payload: %w", err)
	}

	var projections []models.Projection
	for _, item := range resp.Data {
		attr := item.Attributes
		if !p.wantStat(attr.StatType) {
			continue
		}
		if attr.OddsType != p.oddsType {
			continue
		}
		if !attr.LineScore.ok {
			continue
		}

		// Start time is informational only; a bad value is tolerated.
		start, _ := time.Parse(time.RFC3339, attr.StartTime)

		projections = append(projections, models.Projection{
			Player:    attr.Description,
			StatType:  attr.StatType,
			Line:      attr.LineScore.value,
			StartTime: start,
			OddsType:  attr.OddsType,
		})
	}
	return projections, nil
}

func (p *Parser) wantStat(statType string) bool {
	if len(p.statTypes) == 0 {
		return true
	}
	_, ok := p.statTypes[statType]
	return ok
}
