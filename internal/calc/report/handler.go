package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	ladder "Lestnitsa/internal/calc/ladder"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Ladder  ladder.Input `json:"ladder"`
}

type Handler struct{}

// Generate считает лестницу и отдает сводку PDF. Текст в отчете латиницей:
// встроенные шрифты gofpdf не содержат кириллицы.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Staircase Report"
	}

	calc := ladder.New(ladder.DefaultConfig())
	res := calc.CalculateAll(input.Ladder)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if res.Error != "" {
		pdf.Cell(0, 6, "Calculation failed: see API response for details")
		pdf.Ln(6)
	} else {
		pdf.Cell(0, 6, fmt.Sprintf("Opening: height %.1f cm, length %.1f cm", input.Ladder.Height, input.Ladder.Length))
		pdf.Ln(6)
		if res.Angle != nil && res.Angle.Value != nil {
			pdf.Cell(0, 6, fmt.Sprintf("Slope angle: %.2f deg", *res.Angle.Value))
			pdf.Ln(6)
		}
		if res.Steps != nil {
			pdf.Cell(0, 6, fmt.Sprintf("Steps: %d (riser %.2f cm, tread %.2f cm)",
				res.Steps.Count, res.Steps.ActualHeight, res.Steps.ActualWidth))
			pdf.Ln(6)
		}
		if res.LadderLength != nil && res.LadderLength.Value != nil {
			pdf.Cell(0, 6, fmt.Sprintf("Stringer length: %.2f cm", *res.LadderLength.Value))
			pdf.Ln(6)
		}
		if res.Footprint != nil {
			pdf.Cell(0, 6, fmt.Sprintf("Footprint: %.2f cm projection, %.0f cm width required",
				res.Footprint.HorizontalProjection, res.Footprint.WidthRequired))
			pdf.Ln(6)
		}
		if res.Feasibility != nil {
			verdict := "installation possible"
			if !res.Feasibility.Possible {
				verdict = fmt.Sprintf("installation NOT possible (%d issues)", len(res.Feasibility.Issues))
			}
			pdf.Cell(0, 6, fmt.Sprintf("Feasibility: %s", verdict))
			pdf.Ln(6)
		}
		if res.Parts != nil {
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Cell(0, 6, "Parts list")
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "", 11)
			parts := []struct {
				name  string
				count int
			}{
				{"Treads", res.Parts.Treads},
				{"Risers", res.Parts.Risers},
				{"Stringers", res.Parts.Stringers},
				{"Balusters", res.Parts.Balusters},
				{"Handrails", res.Parts.Handrails},
				{"Landings", res.Parts.Landings},
				{"Winder treads", res.Parts.WinderTreads},
			}
			for _, p := range parts {
				if p.count == 0 {
					continue
				}
				pdf.Cell(0, 6, fmt.Sprintf("- %s: %d", p.name, p.count))
				pdf.Ln(6)
			}
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
