package reconcile

import (
	"sort"
	"strings"

	"github.com/atharva-ketkar1/MMA-analysis/internal/namematch"
	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

// Config selects the markets to reconcile and tunes matching.
type Config struct {
	PrimaryMarket   string // market whose line is compared against PrizePicks
	PrimaryLabel    string // qualifying selection label, case-insensitive
	SecondaryMarket string // market merged in for display only
	SecondaryLabel  string
	Cutoff          int // minimum fuzzy-match confidence, 0..100
	Workers         int // matching goroutines; <=1 runs serial
}

// DefaultConfig reconciles DK significant-strikes overs against PrizePicks,
// with going-the-distance "yes" odds attached.
func DefaultConfig() Config {
	return Config{
		PrimaryMarket:   models.MarketSignificantStrikes,
		PrimaryLabel:    "over",
		SecondaryMarket: models.MarketGoingDistance,
		SecondaryLabel:  "yes",
		Cutoff:          namematch.DefaultCutoff,
	}
}

// Engine merges DraftKings offers with PrizePicks projections into one row
// per fighter. It is a pure in-memory transformation: no fetching, no
// persistence, and data-quality problems (missing lines, unmatched names)
// become absent fields, never errors.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.PrimaryMarket == "" {
		cfg.PrimaryMarket = models.MarketSignificantStrikes
	}
	if cfg.PrimaryLabel == "" {
		cfg.PrimaryLabel = "over"
	}
	if cfg.SecondaryMarket == "" {
		cfg.SecondaryMarket = models.MarketGoingDistance
	}
	if cfg.SecondaryLabel == "" {
		cfg.SecondaryLabel = "yes"
	}
	if cfg.Cutoff <= 0 {
		cfg.Cutoff = namematch.DefaultCutoff
	}
	return &Engine{cfg: cfg}
}

// joinedRow is a merged row before order restoration and final filtering.
type joinedRow struct {
	row       models.PropRow
	matchName string // normalized DK name the row joined on, "" when unmatched
}

// Reconcile runs the full merge. PrizePicks drives the row count; rows
// without a qualifying DraftKings line are dropped at the end. Empty input
// yields an empty (non-nil) relation.
func (e *Engine) Reconcile(offers []models.Offer, projections []models.Projection) []models.PropRow {
	rows := make([]models.PropRow, 0, len(projections))
	if len(projections) == 0 {
		return rows
	}

	primary := filterMarket(offers, e.cfg.PrimaryMarket, e.cfg.PrimaryLabel)
	secondary := dedupByFight(filterMarket(offers, e.cfg.SecondaryMarket, e.cfg.SecondaryLabel))

	// Canonical display order: first appearance of each distinct normalized
	// fighter name in the primary bucket, captured before any matching.
	var pool []string
	byName := make(map[string]models.Offer)
	for _, o := range primary {
		name := namematch.Normalize(o.Fighter)
		if name == "" {
			continue
		}
		if _, dup := byName[name]; dup {
			continue
		}
		byName[name] = o
		pool = append(pool, name)
	}
	orderIndex := make(map[string]int, len(pool))
	for i, name := range pool {
		orderIndex[name] = i
	}

	// Every projection pays for its own matching pass; results are
	// per-row independent, so this loop may fan out across workers.
	results := e.matchAll(projections, pool)

	// Left join on the matched name, then dedup by normalized PrizePicks
	// name keeping the first occurrence in input order.
	seen := make(map[string]struct{})
	var joined []joinedRow
	for i, p := range projections {
		key := namematch.Normalize(p.Player)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		res := results[i]
		row := models.PropRow{
			Fighter: p.Player,
			PPLine:  models.FloatPtr(p.Line),
		}
		if res.Matched {
			if o, ok := byName[res.Target]; ok && o.Line != nil {
				row.DKLine = models.FloatPtr(*o.Line)
			}
		}
		if row.PPLine != nil && row.DKLine != nil {
			d := *row.PPLine - *row.DKLine
			row.Difference = &d
			if d > 0 {
				row.Recommendation = "over"
			} else {
				row.Recommendation = "under"
			}
		}
		row.GoingDistanceOdds = distanceOdds(p.Player, secondary)

		joined = append(joined, joinedRow{row: row, matchName: res.Target})
	}

	// Restore DraftKings display order. Unmatched subjects have no position
	// in the captured ordering and are appended after it, keeping their
	// post-join order. Nothing to restore when the ordering is empty.
	if len(orderIndex) > 0 {
		sort.SliceStable(joined, func(i, j int) bool {
			oi, iok := orderIndex[joined[i].matchName]
			oj, jok := orderIndex[joined[j].matchName]
			if iok && jok {
				return oi < oj
			}
			return iok && !jok
		})
	}

	// Only fully comparable rows survive.
	for _, jr := range joined {
		if jr.row.DKLine == nil {
			continue
		}
		rows = append(rows, jr.row)
	}
	return rows
}

// filterMarket keeps offers of one market type whose label matches,
// case-insensitively. Everything else is discarded silently.
func filterMarket(offers []models.Offer, marketType, label string) []models.Offer {
	var out []models.Offer
	for _, o := range offers {
		if o.MarketType != marketType {
			continue
		}
		if !strings.EqualFold(o.Label, label) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// dedupByFight keeps the first offer per fight key, in input order.
func dedupByFight(offers []models.Offer) []models.Offer {
	seen := make(map[string]struct{}, len(offers))
	var out []models.Offer
	for _, o := range offers {
		if _, dup := seen[o.Fight]; dup {
			continue
		}
		seen[o.Fight] = struct{}{}
		out = append(out, o)
	}
	return out
}

// distanceOdds resolves the going-the-distance odds for a fighter by maximal
// token overlap between the fighter's name and each fight name. A single
// shared token is enough; zero overlap never matches. Ties keep the first
// fight encountered.
func distanceOdds(player string, secondary []models.Offer) *int {
	playerTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(namematch.Normalize(player)) {
		playerTokens[tok] = struct{}{}
	}
	best := 0
	var odds *int
	for _, o := range secondary {
		fightTokens := make(map[string]struct{})
		for _, tok := range strings.Fields(namematch.Normalize(o.Fight)) {
			fightTokens[tok] = struct{}{}
		}
		n := 0
		for tok := range playerTokens {
			if _, ok := fightTokens[tok]; ok {
				n++
			}
		}
		if n > best {
			best = n
			odds = o.Odds
		}
	}
	if odds == nil {
		return nil
	}
	return models.IntPtr(*odds)
}
