package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestParams_StandardFits(t *testing.T) {
	c := New(DefaultConfig())

	sug := c.SuggestParams(270, 400, nil)
	require.NotNil(t, sug.StandardOption)
	assert.Equal(t, 14, sug.StandardOption.Steps)
	assert.InDelta(t, 19.29, sug.StandardOption.Height, 0.01)
	assert.Equal(t, 30.0, sug.StandardOption.Width)
	assert.Equal(t, 390.0, sug.StandardOption.Projection)
	assert.True(t, sug.StandardOption.WillFit)
	assert.Contains(t, sug.Message, "стандартных элементов")

	// Перебор дает те же 14 ступеней — дубликат не добавляется
	assert.Nil(t, sug.BestOption)
	assert.Nil(t, sug.MinimumOption)
}

func TestSuggestParams_BestSupplementsStandard(t *testing.T) {
	c := New(DefaultConfig())

	// При большом проеме перебор находит больше ступеней, чем стандарт
	sug := c.SuggestParams(270, 1000, nil)
	require.NotNil(t, sug.StandardOption)
	require.NotNil(t, sug.BestOption)
	assert.Equal(t, 14, sug.StandardOption.Steps)
	assert.Equal(t, 18, sug.BestOption.Steps)
	assert.InDelta(t, 15.0, sug.BestOption.Height, 0.01)
	assert.Nil(t, sug.MinimumOption)
}

func TestSuggestParams_BestPicksMaxSteps(t *testing.T) {
	c := New(DefaultConfig())

	sug := c.SuggestParams(400, 1000, nil)
	require.NotNil(t, sug.BestOption)
	// Побеждает максимум ступеней из диапазона перебора
	assert.Equal(t, 25, sug.BestOption.Steps)
	assert.Equal(t, 16.0, sug.BestOption.Height)
	assert.Equal(t, 720.0, sug.BestOption.Projection)
}

func TestSuggestParams_MinimumFallback(t *testing.T) {
	c := New(DefaultConfig())

	// Проем 150 см: ни стандарт, ни перебор не помещаются
	sug := c.SuggestParams(300, 150, nil)
	assert.Nil(t, sug.StandardOption)
	assert.Nil(t, sug.BestOption)
	require.NotNil(t, sug.MinimumOption)
	assert.Equal(t, 12, sug.MinimumOption.Steps)
	assert.Equal(t, 25.0, sug.MinimumOption.Height)
	assert.Equal(t, 330.0, sug.MinimumOption.Projection)
	assert.Contains(t, sug.Message, "минимальные параметры")
}

func TestSuggestParams_MinimumRespectsFloor(t *testing.T) {
	c := New(DefaultConfig())

	// round(40/25) = 2, но меньше трех ступеней не предлагаем
	sug := c.SuggestParams(40, 10, nil)
	require.NotNil(t, sug.MinimumOption)
	assert.Equal(t, 3, sug.MinimumOption.Steps)
}

func TestSuggestParams_BestAndMinimumAreExclusive(t *testing.T) {
	c := New(DefaultConfig())

	for _, tc := range []struct{ height, length float64 }{
		{270, 400}, {270, 1000}, {300, 150}, {100, 50}, {480, 700}, {40, 10},
	} {
		sug := c.SuggestParams(tc.height, tc.length, nil)
		both := sug.BestOption != nil && sug.MinimumOption != nil
		assert.False(t, both, "height=%v length=%v", tc.height, tc.length)
	}
}
