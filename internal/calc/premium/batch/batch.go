package batch

import (
	"fmt"

	ladder "Lestnitsa/internal/calc/ladder"
)

type LadderBatchInput struct {
	Items []ladder.Input `json:"items"`
}

type LadderBatchResult struct {
	Results []ladder.Result `json:"results"`
}

// CalculateLadder прогоняет движок по каждому проему. Ошибки отдельных
// расчетов остаются внутри Result, пустой список — ошибка запроса.
func CalculateLadder(in LadderBatchInput) (LadderBatchResult, error) {
	if len(in.Items) == 0 {
		return LadderBatchResult{}, fmt.Errorf("no items")
	}
	calc := ladder.New(ladder.DefaultConfig())
	out := LadderBatchResult{Results: make([]ladder.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		out.Results = append(out.Results, calc.CalculateAll(item))
	}
	return out, nil
}
