package ladder

import (
	"fmt"
	"math"
)

// stepMode — явный выбор по наличию высоты подступенка и ширины ступени.
type stepMode int

const (
	modeStandard   stepMode = iota // ничего не задано, стандарт 30x20
	modeHeightOnly                 // задана высота подступенка
	modeWidthOnly                  // задана ширина ступени
	modeBoth                       // заданы оба параметра
)

func classifyStepMode(stepHeight, stepWidth *float64) stepMode {
	switch {
	case stepHeight == nil && stepWidth == nil:
		return modeStandard
	case stepHeight != nil && stepWidth == nil:
		return modeHeightOnly
	case stepHeight == nil && stepWidth != nil:
		return modeWidthOnly
	default:
		return modeBoth
	}
}

// CalcSteps рассчитывает количество ступеней и фактические размеры шага.
// Округление количества — math.Round (половина от нуля). В стандартном
// режиме подъем перераспределяется поровну: фактическая высота подступенка
// пересчитывается как height/steps. Ширина ступени здесь не сверяется с
// габаритами проема — это делает CheckFeasibility.
func (c *Calculator) CalcSteps(height, length float64, stepHeight, stepWidth *float64) (*int, string, *float64, *float64) {
	switch classifyStepMode(stepHeight, stepWidth) {
	case modeStandard:
		defaultHeight := c.cfg.StandardStepHeight
		// На случай, если стандарт сконфигурирован вне допуска
		if defaultHeight < c.cfg.MinStepHeight || defaultHeight > c.cfg.MaxStepHeight {
			defaultHeight = math.Max(c.cfg.MinStepHeight, math.Min(c.cfg.MaxStepHeight, defaultHeight))
		}
		steps := int(math.Round(height / defaultHeight))
		actualHeight := defaultHeight
		if steps > 0 {
			actualHeight = height / float64(steps)
		}
		actualWidth := c.cfg.StandardStepWidth
		return &steps, "Количество ступеней рассчитано (стандартные элементы 30x20 см)", &actualHeight, &actualWidth

	case modeHeightOnly:
		if *stepHeight <= 0 {
			return nil, "Ошибка: высота подступенка должна быть положительной", nil, nil
		}
		if *stepHeight < c.cfg.MinStepHeight || *stepHeight > c.cfg.MaxStepHeight {
			return nil, fmt.Sprintf("Ошибка: высота подступенка должна быть от %.0f до %.0f см",
				c.cfg.MinStepHeight, c.cfg.MaxStepHeight), nil, nil
		}
		steps := int(math.Round(height / *stepHeight))
		actualWidth := c.cfg.StandardStepWidth
		return &steps, "Количество ступеней рассчитано (высота задана)", stepHeight, &actualWidth

	case modeWidthOnly:
		if *stepWidth <= 0 {
			return nil, "Ошибка: ширина ступени должна быть положительной", nil, nil
		}
		if *stepWidth < c.cfg.MinStepWidth {
			return nil, fmt.Sprintf("Ошибка: ширина ступени должна быть не менее %.0f см", c.cfg.MinStepWidth), nil, nil
		}
		standardHeight := c.cfg.StandardStepHeight
		steps := int(math.Round(height / standardHeight))
		return &steps, "Количество ступеней рассчитано (ширина задана, высота стандартная)", &standardHeight, stepWidth

	default: // modeBoth
		if *stepHeight <= 0 || *stepWidth <= 0 {
			return nil, "Ошибка: параметры должны быть положительными", nil, nil
		}
		if *stepHeight < c.cfg.MinStepHeight || *stepHeight > c.cfg.MaxStepHeight {
			return nil, fmt.Sprintf("Ошибка: высота подступенка должна быть от %.0f до %.0f см",
				c.cfg.MinStepHeight, c.cfg.MaxStepHeight), nil, nil
		}
		if *stepWidth < c.cfg.MinStepWidth {
			return nil, fmt.Sprintf("Ошибка: ширина ступени должна быть не менее %.0f см", c.cfg.MinStepWidth), nil, nil
		}
		steps := int(math.Round(height / *stepHeight))
		return &steps, "Количество ступеней рассчитано (ширина и высота заданы)", stepHeight, stepWidth
	}
}
