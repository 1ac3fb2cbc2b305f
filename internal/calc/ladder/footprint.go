package ladder

import "fmt"

// CalcFootprint считает фактические габариты лестницы на полу.
// Неизвестный тип считается прямой лестницей.
func (c *Calculator) CalcFootprint(steps int, stepWidth float64, ladderType int) (Footprint, error) {
	if steps <= 0 || stepWidth <= 0 {
		return Footprint{}, fmt.Errorf("invalid input")
	}
	switch ladderType {
	case TypeUShaped:
		// Две секции плюс площадка 100 см
		sectionSteps := steps / 2
		if sectionSteps < 1 {
			sectionSteps = 1
		}
		return Footprint{
			HorizontalProjection: round2(2*(float64(sectionSteps-1)*stepWidth) + 100),
			WidthRequired:        120,
			Description:          "П-образная лестница",
		}, nil
	case TypeLShaped:
		// Одна секция плюс разворот 80 см
		return Footprint{
			HorizontalProjection: round2(float64(steps-1)*stepWidth + 80),
			WidthRequired:        100,
			Description:          "Г-образная лестница",
		}, nil
	case TypeStraight:
		return Footprint{
			HorizontalProjection: round2(float64(steps-1) * stepWidth),
			WidthRequired:        80,
			Description:          "Прямая лестница",
		}, nil
	default:
		return Footprint{
			HorizontalProjection: round2(float64(steps-1) * stepWidth),
			WidthRequired:        80,
			Description:          "Прямая лестница (по умолчанию)",
		}, nil
	}
}
