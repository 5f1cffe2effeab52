package prizepicks

import "testing"

const projectionsFixture = `{
	"data": [
		{"attributes": {"description": "Jonathan Jones", "stat_type": "Significant Strikes", "line_score": 87.5, "start_time": "2026-08-29T22:00:00Z", "odds_type": "standard"}},
		{"attributes": {"description": "Stipe Miocic", "stat_type": "Significant Strikes", "line_score": 64.5, "start_time": "2026-08-29T22:00:00Z", "odds_type": "goblin"}},
		{"attributes": {"description": "Max Holloway", "stat_type": "Takedowns", "line_score": 1.5, "start_time": "2026-08-29T22:00:00Z", "odds_type": "standard"}},
		{"attributes": {"description": "Dustin Poirier", "stat_type": "Significant Strikes", "line_score": "not-a-number", "start_time": "2026-08-29T22:00:00Z", "odds_type": "standard"}}
	]
}`

func TestParse_FiltersStatAndOddsType(t *testing.T) {
	parser := NewParser([]string{"Significant Strikes"}, "standard")
	projections, err := parser.Parse([]byte(projectionsFixture))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(projections) != 1 {
		t.Fatalf("Parse returned %d projections, want 1", len(projections))
	}
	p := projections[0]
	if p.Player != "Jonathan Jones" {
		t.Errorf("Player = %q, want %q", p.Player, "Jonathan Jones")
	}
	if p.Line != 87.5 {
		t.Errorf("Line = %v, want 87.5", p.Line)
	}
	if p.StartTime.IsZero() {
		t.Error("StartTime should be parsed")
	}
}

func TestParse_EmptyAllowListKeepsAllStats(t *testing.T) {
	parser := NewParser(nil, "standard")
	projections, err := parser.Parse([]byte(projectionsFixture))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Jonathan Jones and Max Holloway: standard odds with parsable lines.
	if len(projections) != 2 {
		t.Errorf("Parse returned %d projections, want 2", len(projections))
	}
}

func TestParse_MalformedPayload(t *testing.T) {
	if _, err := NewParser(nil, "standard").Parse([]byte("<html>blocked</html>")); err == nil {
		t.Error("Parse should fail on a structurally invalid payload")
	}
}
