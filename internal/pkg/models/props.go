package models

import "time"

// DraftKings UFC market types this service works with.
const (
	MarketSignificantStrikes = "Significant Strikes O/U"
	MarketGoingDistance      = "Fight to Go the Distance"
)

// Offer is a single DraftKings market selection row.
// Fighter is set for fighter-level markets (significant strikes),
// Fight for fight-level markets (going the distance).
// Missing numeric values are nil, never a sentinel.
type Offer struct {
	Fighter    string
	Fight      string
	MarketType string
	Label      string
	Line       *float64
	Odds       *int
}

// Projection is a single PrizePicks projection row.
type Projection struct {
	Player    string
	StatType  string
	Line      float64
	StartTime time.Time
	OddsType  string
}

// MatchResult is the outcome of resolving one source name against a
// candidate pool. Matched=false means no candidate cleared the cutoff;
// that is a normal result, not an error.
type MatchResult struct {
	Source     string
	Target     string
	Confidence int
	Matched    bool
}

// PropRow is one fighter in the final merged relation. The outcome fields
// stay empty for later manual annotation.
type PropRow struct {
	Fighter           string
	PPLine            *float64
	DKLine            *float64
	Difference        *float64
	Recommendation    string // "over", "under" or empty when no difference
	GoingDistanceOdds *int

	Actual       string
	BetweenLines string
	PPBetCorrect string
	DKBetCorrect string
}

// FloatPtr returns a pointer to v. Convenience for building rows.
func FloatPtr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }
