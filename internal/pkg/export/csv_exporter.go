package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

// Columns is the output relation's column order. The outcome columns stay
// empty for later manual entry.
var Columns = []string{
	"fighter",
	"PP Line",
	"DK Line",
	"Difference (PP-DK)",
	"Best Bet (DK)",
	"Going Distance",
	"Actual",
	"Between Lines",
	"PP Bet Correct",
	"DK Bet Correct",
}

// CSVExporter writes merged prop rows as CSV. Absent values print empty.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Write(w io.Writer, rows []models.PropRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Fighter,
			formatFloat(row.PPLine),
			formatFloat(row.DKLine),
			formatFloat(row.Difference),
			row.Recommendation,
			formatInt(row.GoingDistanceOdds),
			row.Actual,
			row.BetweenLines,
			row.PPBetCorrect,
			row.DKBetCorrect,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", row.Fighter, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (e *CSVExporter) WriteFile(path string, rows []models.PropRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := e.Write(f, rows); err != nil {
		return err
	}
	return f.Close()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
