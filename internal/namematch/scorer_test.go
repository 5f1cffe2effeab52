package namematch

import "testing"

func TestBestMatch_ExactCandidate(t *testing.T) {
	pool := []string{"stipe miocic", "jon jones", "islam makhachev"}
	cand, score := BestMatch([]string{"jon jones"}, pool)
	if cand != "jon jones" || score != 100 {
		t.Errorf("BestMatch = (%q, %d), want (%q, 100)", cand, score, "jon jones")
	}
}

func TestBestMatch_WordOrderTolerant(t *testing.T) {
	cand, score := BestMatch([]string{"jones jon"}, []string{"jon jones"})
	if cand != "jon jones" || score != 100 {
		t.Errorf("BestMatch reordered = (%q, %d), want (%q, 100)", cand, score, "jon jones")
	}
}

func TestBestMatch_Deterministic(t *testing.T) {
	variants := Variants("jonathan dwight jones")
	pool := []string{"stipe miocic", "jon jones", "jan jonas", "sean strickland"}

	firstCand, firstScore := BestMatch(variants, pool)
	for i := 0; i < 20; i++ {
		cand, score := BestMatch(variants, pool)
		if cand != firstCand || score != firstScore {
			t.Fatalf("BestMatch not deterministic: run %d got (%q, %d), first run (%q, %d)",
				i, cand, score, firstCand, firstScore)
		}
	}
}

func TestBestMatch_EmptyInputs(t *testing.T) {
	if cand, score := BestMatch(nil, []string{"jon jones"}); cand != "" || score != 0 {
		t.Errorf("BestMatch(nil, pool) = (%q, %d), want none", cand, score)
	}
	if cand, score := BestMatch([]string{"jon jones"}, nil); cand != "" || score != 0 {
		t.Errorf("BestMatch(variants, nil) = (%q, %d), want none", cand, score)
	}
	if cand, score := BestMatch([]string{""}, []string{"jon jones"}); cand != "" || score != 0 {
		t.Errorf("BestMatch with empty variant = (%q, %d), want none", cand, score)
	}
}

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		a, b   string
		want   int
		wantOK bool
	}{
		{"jon jones", "jon jones", 100, true},
		{"", "jon jones", 0, false},
		{"jon jones", "", 0, false},
		{"abcd", "wxyz", 0, true},
	}
	for _, tt := range tests {
		got, ok := sequenceRatio(tt.a, tt.b)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("sequenceRatio(%q, %q) = (%d, %v), want (%d, %v)", tt.a, tt.b, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTokenSetRatio_SubsetNames(t *testing.T) {
	// One side containing the other's tokens scores a perfect set ratio.
	score, ok := tokenSetRatio("jones", "jon jones")
	if !ok || score != 100 {
		t.Errorf("tokenSetRatio(subset) = (%d, %v), want (100, true)", score, ok)
	}
}
