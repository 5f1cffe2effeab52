package namematch

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/antzucaro/matchr"
)

// scoreStrategy scores a (variant, candidate) pair on a 0..100 scale.
// ok is false when the pair cannot be scored (e.g. an empty side); callers
// skip such results instead of treating them as zero.
type scoreStrategy func(a, b string) (score int, ok bool)

// Strategy order is part of the tie-break contract: on equal scores the
// earlier strategy's candidate wins.
var scoreStrategies = []scoreStrategy{
	tokenSetRatio,
	tokenSortRatio,
	sequenceRatio,
	jaroWinklerRatio,
}

// BestMatch returns the highest-scoring pool candidate over every
// (variant, strategy, candidate) triple. Ties keep the first hit in variant
// order, then strategy order, then pool order, so repeated calls with the
// same inputs always return the same pair.
func BestMatch(variants []string, pool []string) (string, int) {
	var (
		best      string
		bestScore int
		found     bool
	)
	for _, v := range variants {
		for _, strat := range scoreStrategies {
			for _, cand := range pool {
				score, ok := strat(v, cand)
				if !ok {
					continue
				}
				if !found || score > bestScore {
					found = true
					best = cand
					bestScore = score
				}
			}
		}
	}
	if !found {
		return "", 0
	}
	return best, bestScore
}

// sequenceRatio is a Levenshtein-normalized character similarity.
func sequenceRatio(a, b string) (int, bool) {
	if a == "" || b == "" {
		return 0, false
	}
	if a == b {
		return 100, true
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	return int(math.Round((1 - float64(dist)/float64(maxLen)) * 100)), true
}

// tokenSortRatio compares the two names with their tokens sorted, so word
// order does not matter.
func tokenSortRatio(a, b string) (int, bool) {
	return sequenceRatio(sortTokens(a), sortTokens(b))
}

// tokenSetRatio compares the sorted token intersection against each side's
// remainder and takes the best pairing. Tolerates one name being a subset
// of the other.
func tokenSetRatio(a, b string) (int, bool) {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0, false
	}

	var inter, onlyA, onlyB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			inter = append(inter, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	t0 := strings.Join(inter, " ")
	t1 := strings.TrimSpace(t0 + " " + strings.Join(onlyA, " "))
	t2 := strings.TrimSpace(t0 + " " + strings.Join(onlyB, " "))

	best := 0
	found := false
	for _, pair := range [][2]string{{t0, t1}, {t0, t2}, {t1, t2}} {
		if score, ok := sequenceRatio(pair[0], pair[1]); ok {
			found = true
			if score > best {
				best = score
			}
		}
	}
	return best, found
}

// jaroWinklerRatio scales matchr's Jaro-Winkler similarity to 0..100.
func jaroWinklerRatio(a, b string) (int, bool) {
	if a == "" || b == "" {
		return 0, false
	}
	return int(math.Round(matchr.JaroWinkler(a, b, false) * 100)), true
}

func sortTokens(s string) string {
	toks := strings.Fields(s)
	sort.Strings(toks)
	return strings.Join(toks, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}
