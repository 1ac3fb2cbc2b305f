package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	ladder "Lestnitsa/internal/calc/ladder"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type LadderImportResult struct {
	Count   int             `json:"count"`
	Results []ladder.Result `json:"results"`
}

// Ladder принимает xlsx с проемами и считает каждый ряд.
// Ожидаемые колонки: height, length, width(optional), ladder_type(optional).
func (h *Handler) Ladder(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	calc := ladder.New(ladder.DefaultConfig())
	var results []ladder.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseLadderRow(rows[i])
		if err != nil {
			continue
		}
		results = append(results, calc.CalculateAll(input))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LadderImportResult{Count: len(results), Results: results})
}

func parseLadderRow(row []string) (ladder.Input, error) {
	if len(row) < 2 {
		return ladder.Input{}, fmt.Errorf("bad row")
	}
	height, err := toFloat(row[0])
	if err != nil {
		return ladder.Input{}, err
	}
	length, err := toFloat(row[1])
	if err != nil {
		return ladder.Input{}, err
	}
	input := ladder.Input{Height: height, Length: length, LadderType: ladder.TypeStraight}
	if len(row) > 2 && row[2] != "" {
		if width, err := toFloat(row[2]); err == nil {
			input.Width = &width
		}
	}
	if len(row) > 3 && row[3] != "" {
		if t, err := strconv.Atoi(strings.TrimSpace(row[3])); err == nil {
			input.LadderType = t
		}
	}
	return input, nil
}

func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return strconv.ParseFloat(s, 64)
}
