package namematch

import "github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"

// DefaultCutoff is the minimum confidence score to accept a fuzzy match.
// Lower values match more fighters at the cost of more wrong pairings.
const DefaultCutoff = 70

// Match resolves sourceName against a pool of normalized candidate names.
// An empty pool or a best score below cutoff yields an unmatched result;
// neither is an error.
func Match(sourceName string, pool []string, cutoff int) models.MatchResult {
	res := models.MatchResult{Source: sourceName}
	if len(pool) == 0 {
		return res
	}

	candidate, score := BestMatch(Variants(Normalize(sourceName)), pool)
	res.Confidence = score
	if candidate == "" || score < cutoff {
		return res
	}
	res.Target = candidate
	res.Matched = true
	return res
}
