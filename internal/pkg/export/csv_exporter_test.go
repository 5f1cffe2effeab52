package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

func TestWrite(t *testing.T) {
	rows := []models.PropRow{
		{
			Fighter:           "Jonathan Jones",
			PPLine:            models.FloatPtr(4.5),
			DKLine:            models.FloatPtr(3.5),
			Difference:        models.FloatPtr(1.0),
			Recommendation:    "over",
			GoingDistanceOdds: models.IntPtr(-150),
		},
		{
			Fighter:        "Stipe Miocic",
			PPLine:         models.FloatPtr(3.0),
			DKLine:         models.FloatPtr(2.5),
			Difference:     models.FloatPtr(0.5),
			Recommendation: "over",
			// no going-the-distance match: column stays empty
		},
	}

	var buf bytes.Buffer
	if err := NewCSVExporter().Write(&buf, rows); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if !reflect.DeepEqual(records[0], Columns) {
		t.Errorf("header = %v, want %v", records[0], Columns)
	}

	want := []string{"Jonathan Jones", "4.5", "3.5", "1", "over", "-150", "", "", "", ""}
	if !reflect.DeepEqual(records[1], want) {
		t.Errorf("row = %v, want %v", records[1], want)
	}
	if records[2][5] != "" {
		t.Errorf("missing odds should print empty, got %q", records[2][5])
	}
}

func TestWrite_EmptyRelationKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVExporter().Write(&buf, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 1 || !reflect.DeepEqual(records[0], Columns) {
		t.Errorf("empty relation should still emit the full column set, got %v", records)
	}
}
