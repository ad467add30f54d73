package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mtuomik/lapster/internal/athlete"
)

// ToPDF renders the same athlete selection as Report in a print-friendly
// layout: one section per athlete with its target/PB lines and lap table.
// Returns ErrNoData (and writes nothing) when no athlete has a lap in range.
func ToPDF(athletes []*athlete.Athlete, from, to time.Time, path string) error {
	blocks := collect(athletes, from, to)
	if len(blocks) == 0 {
		return ErrNoData
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Lap Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, rangeLabel(from, to))
	pdf.Ln(12)

	colWidths := []float64{15, 25, 30, 30, 45}
	headers := []string{"Lap", "Dist (m)", "Lap Time", "Total Time", "Timestamp"}

	for _, blk := range blocks {
		a := blk.athlete

		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, a.Name)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		if a.TargetDistance > 0 && a.TargetTime > 0 {
			pdf.Cell(0, 7, fmt.Sprintf("Target: %.0f m in %s", a.TargetDistance, athlete.FormatTime(a.TargetTime)))
			pdf.Ln(6)
		}
		if a.PBDistance > 0 && a.PBTime > 0 {
			pdf.Cell(0, 7, fmt.Sprintf("PB: %.0f m in %s", a.PBDistance, athlete.FormatTime(a.PBTime)))
			pdf.Ln(6)
		}
		pdf.Ln(2)

		pdf.SetFont("Arial", "B", 10)
		for i, h := range headers {
			pdf.CellFormat(colWidths[i], 7, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		for j, lap := range blk.laps {
			cells := []string{
				fmt.Sprintf("%d", lap.Number),
				fmt.Sprintf("%.0f", lap.TotalDistance),
				athlete.FormatTime(split(blk.laps, j)),
				athlete.FormatTime(lap.TotalTime),
				formatTimestamp(lap.Timestamp),
			}
			for i, c := range cells {
				pdf.CellFormat(colWidths[i], 7, c, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func rangeLabel(from, to time.Time) string {
	switch {
	case from.IsZero() && to.IsZero():
		return "All time"
	case from.IsZero():
		return "Through " + to.Local().Format("2006-01-02")
	case to.IsZero():
		return "From " + from.Local().Format("2006-01-02")
	default:
		return fmt.Sprintf("%s - %s", from.Local().Format("2006-01-02"), to.Local().Format("2006-01-02"))
	}
}
