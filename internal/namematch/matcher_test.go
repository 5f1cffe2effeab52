package namematch

import "testing"

func TestMatch_NicknameVariant(t *testing.T) {
	pool := []string{"jon jones", "stipe miocic"}
	res := Match("Jonathan Jones", pool, DefaultCutoff)
	if !res.Matched {
		t.Fatalf("Match(%q) not matched, confidence %d", "Jonathan Jones", res.Confidence)
	}
	if res.Target != "jon jones" {
		t.Errorf("Match(%q).Target = %q, want %q", "Jonathan Jones", res.Target, "jon jones")
	}
	if res.Confidence != 100 {
		t.Errorf("Match(%q).Confidence = %d, want 100", "Jonathan Jones", res.Confidence)
	}
}

func TestMatch_EmptyPool(t *testing.T) {
	for _, cutoff := range []int{0, 70, 100} {
		res := Match("Jon Jones", nil, cutoff)
		if res.Matched || res.Target != "" {
			t.Errorf("Match against empty pool (cutoff %d) = %+v, want unmatched", cutoff, res)
		}
	}
}

func TestMatch_CutoffGate(t *testing.T) {
	pool := []string{"alexander volkanovski"}

	// An unrelated name stays below a high cutoff.
	res := Match("Zhang Weili", pool, 70)
	if res.Matched {
		t.Errorf("Match(%q) matched %q at confidence %d, want unmatched", "Zhang Weili", res.Target, res.Confidence)
	}

	// Cutoff zero accepts anything scoreable: recall over precision.
	res = Match("Zhang Weili", pool, 0)
	if !res.Matched {
		t.Errorf("Match(%q) with cutoff 0 should accept best candidate, got %+v", "Zhang Weili", res)
	}
}

func TestMatch_SuffixAndHyphenSpellings(t *testing.T) {
	pool := []string{"kevin holland", "dustin poirier"}
	res := Match("Kevin Holland Jr.", pool, DefaultCutoff)
	if !res.Matched || res.Target != "kevin holland" {
		t.Errorf("Match(%q) = %+v, want kevin holland", "Kevin Holland Jr.", res)
	}
}
