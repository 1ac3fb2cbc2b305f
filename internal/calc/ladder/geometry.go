package ladder

import (
	"fmt"
	"math"
)

// CalcAngle возвращает угол наклона в градусах (2 знака). Если угол задан
// вручную, он возвращается как есть.
func (c *Calculator) CalcAngle(height, length float64, angle *float64) (*float64, string) {
	if angle != nil {
		return angle, "Угол задан вручную"
	}
	if length == 0 {
		return nil, "Ошибка: длина проема не может быть 0"
	}
	deg := round2(math.Atan(height/length) * 180 / math.Pi)
	return &deg, "Угол рассчитан"
}

// CheckAngle проверяет попадание угла в допустимый диапазон.
func (c *Calculator) CheckAngle(angle *float64) string {
	if angle == nil {
		return "Ошибка: угол не определен"
	}
	if c.cfg.MinAngle <= *angle && *angle <= c.cfg.MaxAngle {
		return "Угол подходит"
	}
	return fmt.Sprintf("Угол не подходит (должен быть от %.0f° до %.0f°)", c.cfg.MinAngle, c.cfg.MaxAngle)
}

// CalcLength считает длину косоура: по углу, если он известен, иначе по
// теореме Пифагора. Угол с нулевым косинусом (90°) — ошибка.
func (c *Calculator) CalcLength(height, length float64, angle *float64) (*float64, string) {
	if angle != nil {
		cos := math.Cos(*angle * math.Pi / 180)
		if math.Abs(cos) < 1e-9 {
			return nil, "Ошибка: неверный угол"
		}
		v := round2(length / cos)
		return &v, "Длина лестницы рассчитана по углу"
	}
	v := round2(math.Hypot(height, length))
	return &v, "Длина лестницы рассчитана по теореме Пифагора"
}
