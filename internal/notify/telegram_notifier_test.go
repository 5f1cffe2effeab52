package notify

import (
	"strings"
	"testing"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

func TestFormatMergeSummary_SortsByAbsoluteDifference(t *testing.T) {
	rows := []models.PropRow{
		{Fighter: "Small Diff", Difference: models.FloatPtr(0.5), PPLine: models.FloatPtr(4.0), DKLine: models.FloatPtr(3.5), Recommendation: "over"},
		{Fighter: "Big Diff", Difference: models.FloatPtr(-3.0), PPLine: models.FloatPtr(2.0), DKLine: models.FloatPtr(5.0), Recommendation: "under"},
	}

	got := formatMergeSummary(rows)
	if !strings.HasPrefix(got, "UFC props merge: 2 fighters") {
		t.Errorf("summary header wrong: %q", got)
	}
	if strings.Index(got, "Big Diff") > strings.Index(got, "Small Diff") {
		t.Errorf("largest difference should be listed first:\n%s", got)
	}
}

func TestFormatMergeSummary_Empty(t *testing.T) {
	got := formatMergeSummary(nil)
	if !strings.Contains(got, "no comparable fighters") {
		t.Errorf("empty summary = %q", got)
	}
}

func TestNotifyMergeResult_NilReceiver(t *testing.T) {
	var n *TelegramNotifier
	// must not panic
	n.NotifyMergeResult([]models.PropRow{{Fighter: "Jon Jones"}})
}
