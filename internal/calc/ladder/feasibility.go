package ladder

import "fmt"

// CheckFeasibility прогоняет фиксированный набор проверок установки.
// Каждое жесткое нарушение сбрасывает possible и добавляется в issues,
// проверки не прерываются (кроме двух предусловий). Предупреждения не
// влияют на possible.
func (c *Calculator) CheckFeasibility(length float64, width *float64, angle *float64,
	steps int, stepWidth, stepHeight, horizontalProjection float64) Feasibility {

	f := Feasibility{
		Possible: true,
		Issues:   []string{},
		Warnings: []string{},
	}

	if steps == 0 {
		f.Possible = false
		f.Issues = append(f.Issues, "Не удалось рассчитать количество ступеней")
		return f
	}
	if stepWidth <= 0 || stepHeight <= 0 {
		f.Possible = false
		f.Issues = append(f.Issues, "Не удалось рассчитать параметры ступеней")
		return f
	}

	if angle == nil {
		f.Possible = false
		f.Issues = append(f.Issues, "Угол наклона не определен")
	} else if *angle < c.cfg.MinAngle || *angle > c.cfg.MaxAngle {
		f.Possible = false
		f.Issues = append(f.Issues, fmt.Sprintf("Угол наклона %.2f° вне допустимого диапазона (%.0f°-%.0f°)",
			*angle, c.cfg.MinAngle, c.cfg.MaxAngle))
	}

	if stepHeight < c.cfg.MinStepHeight {
		f.Possible = false
		f.Issues = append(f.Issues, fmt.Sprintf("Слишком низкие подступенки (%.2f см < %.0f см)",
			stepHeight, c.cfg.MinStepHeight))
	} else if stepHeight > c.cfg.MaxStepHeight {
		f.Possible = false
		f.Issues = append(f.Issues, fmt.Sprintf("Слишком высокие подступенки (%.2f см > %.0f см)",
			stepHeight, c.cfg.MaxStepHeight))
	}

	if stepWidth < c.cfg.MinStepWidth {
		f.Possible = false
		f.Issues = append(f.Issues, fmt.Sprintf("Слишком узкие ступени (%.2f см < %.0f см)",
			stepWidth, c.cfg.MinStepWidth))
	}

	if steps < c.cfg.MinSteps {
		f.Possible = false
		f.Issues = append(f.Issues, fmt.Sprintf("Слишком мало ступеней (минимум %d)", c.cfg.MinSteps))
	}
	if steps > c.cfg.MaxSteps {
		f.Possible = false
		f.Issues = append(f.Issues, fmt.Sprintf("Слишком много ступеней (максимум %d)", c.cfg.MaxSteps))
	}

	if width != nil && *width < c.cfg.MinLadderWidth {
		f.Possible = false
		f.Issues = append(f.Issues, fmt.Sprintf("Ширина проема недостаточна (%.0f см < %.0f см)",
			*width, c.cfg.MinLadderWidth))
	}

	// Решающая проверка: лестница должна поместиться по длине
	if horizontalProjection > length {
		f.Possible = false
		f.Issues = append(f.Issues, fmt.Sprintf("Лестница не поместится по длине: требуется %.2f см, доступно %.2f см",
			horizontalProjection, length))
	}

	if stepHeight < c.cfg.ComfortMinStepHeight {
		f.Warnings = append(f.Warnings, "Высота подступенка на нижней границе комфортного диапазона")
	} else if stepHeight > c.cfg.ComfortMaxStepHeight {
		f.Warnings = append(f.Warnings, "Высота подступенка на верхней границе комфортного диапазона (стандарт 20 см)")
	}
	if stepWidth < c.cfg.ComfortMinStepWidth {
		f.Warnings = append(f.Warnings, "Ширина ступени близка к минимальной (стандарт 30 см)")
	} else if stepWidth > c.cfg.ComfortMaxStepWidth {
		f.Warnings = append(f.Warnings, "Ширина ступени больше стандартной (стандарт 30 см)")
	}

	return f
}
