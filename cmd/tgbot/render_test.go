package main

import (
	"strings"
	"testing"

	ladder "Lestnitsa/internal/calc/ladder"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult_Success(t *testing.T) {
	calc := ladder.New(ladder.DefaultConfig())
	width := 100.0
	res := calc.CalculateAll(ladder.Input{
		Height: 270, Length: 400, Width: &width, LadderType: ladder.TypeStraight,
	})

	text := FormatResult(res)
	assert.Contains(t, text, "РАСЧЕТ ЛЕСТНИЦЫ")
	assert.Contains(t, text, "Количество ступеней: 14")
	assert.Contains(t, text, "Лестница может быть установлена")
	assert.Contains(t, text, "Косоуры: 2 шт.")
	// Нулевые детали не показываются
	assert.NotContains(t, text, "Площадки")
}

func TestFormatResult_Error(t *testing.T) {
	calc := ladder.New(ladder.DefaultConfig())
	res := calc.CalculateAll(ladder.Input{Height: 0, Length: 400})

	text := FormatResult(res)
	assert.True(t, strings.HasPrefix(text, "❌ Ошибка:"))
	assert.Contains(t, text, "Высота должна быть положительной")
}

func TestFormatResult_InfeasibleIncludesSuggestions(t *testing.T) {
	calc := ladder.New(ladder.DefaultConfig())
	res := calc.CalculateAll(ladder.Input{Height: 300, Length: 150, LadderType: ladder.TypeStraight})

	text := FormatResult(res)
	assert.Contains(t, text, "Лестница не может быть установлена")
	assert.Contains(t, text, "РЕКОМЕНДАЦИИ")
	assert.Contains(t, text, "Минимальные параметры")
}
