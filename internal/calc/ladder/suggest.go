package ladder

import "math"

// Option — один предлагаемый вариант параметров.
type Option struct {
	Note       string  `json:"note,omitempty"`
	Steps      int     `json:"steps"`
	Height     float64 `json:"height"`
	Width      float64 `json:"width"`
	Projection float64 `json:"projection"`
	WillFit    bool    `json:"will_fit,omitempty"`
}

// Suggestions — набор вариантов: стандартный, лучший по перебору и,
// только если ничего не нашлось, минимальный. BestOption и MinimumOption
// взаимоисключающие.
type Suggestions struct {
	Message        string  `json:"message"`
	StandardOption *Option `json:"standard_option,omitempty"`
	BestOption     *Option `json:"best_option,omitempty"`
	MinimumOption  *Option `json:"minimum_option,omitempty"`
}

// SuggestParams подбирает рабочие параметры под заданные габариты,
// ориентируясь на стандарт 30x20 см. Перебор лучшего варианта идет по
// всему диапазону ступеней без раннего выхода: побеждает максимальное
// количество ступеней, которое помещается.
func (c *Calculator) SuggestParams(height, availableLength float64, availableWidth *float64) Suggestions {
	_ = availableWidth // ширина проема на подбор пока не влияет

	sug := Suggestions{Message: "Предложения по оптимизации под стандарт 30x20 см"}

	// 1. Стандартные элементы
	stdSteps := int(math.Round(height / c.cfg.StandardStepHeight))
	if stdSteps > 0 {
		stdActualHeight := height / float64(stdSteps)
		stdProjection := float64(stdSteps-1) * c.cfg.StandardStepWidth
		if stdProjection <= availableLength &&
			c.cfg.MinStepHeight <= stdActualHeight && stdActualHeight <= c.cfg.MaxStepHeight {
			sug.StandardOption = &Option{
				Note:       "Рекомендуемый стандартный вариант",
				Steps:      stdSteps,
				Height:     round2(stdActualHeight),
				Width:      c.cfg.StandardStepWidth,
				Projection: round2(stdProjection),
				WillFit:    true,
			}
			sug.Message = "Найдено решение с использованием стандартных элементов 30x20 см"
		}
	}

	// 2. Перебор: максимум ступеней при фиксированной ширине 30 см
	maxSteps := 0
	var best *Option
	for steps := c.cfg.MinSteps; steps <= c.cfg.MaxSteps; steps++ {
		stepHeight := height / float64(steps)
		if stepHeight < c.cfg.MinStepHeight || stepHeight > c.cfg.MaxStepHeight {
			continue
		}
		projection := float64(steps-1) * c.cfg.StandardStepWidth
		if projection <= availableLength && steps > maxSteps {
			maxSteps = steps
			best = &Option{
				Steps:      steps,
				Height:     round2(stepHeight),
				Width:      c.cfg.StandardStepWidth,
				Projection: round2(projection),
			}
		}
	}
	if best != nil && (maxSteps != stdSteps || sug.StandardOption == nil) {
		sug.BestOption = best
	}

	// 3. Минимальные параметры, если ничего не подошло
	if sug.StandardOption == nil && sug.BestOption == nil {
		minSteps := int(math.Round(height / c.cfg.MaxStepHeight))
		if minSteps < c.cfg.MinSteps {
			minSteps = c.cfg.MinSteps
		}
		sug.MinimumOption = &Option{
			Steps:      minSteps,
			Height:     round2(height / float64(minSteps)),
			Width:      c.cfg.StandardStepWidth,
			Projection: round2(float64(minSteps-1) * c.cfg.StandardStepWidth),
		}
		sug.Message = "Рекомендуемые минимальные параметры (ширина ступени 30 см)"
	}

	return sug
}
