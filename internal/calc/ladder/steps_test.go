package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestCalcSteps_Standard(t *testing.T) {
	c := New(DefaultConfig())

	steps, msg, actualHeight, actualWidth := c.CalcSteps(270, 400, nil, nil)
	require.NotNil(t, steps)
	assert.Equal(t, 14, *steps)
	assert.Contains(t, msg, "стандартные элементы")
	assert.InDelta(t, 19.29, *actualHeight, 0.01)
	assert.Equal(t, 30.0, *actualWidth)
}

func TestCalcSteps_StandardRedistributesRise(t *testing.T) {
	c := New(DefaultConfig())
	for _, height := range []float64{180, 250, 270, 333.5, 480} {
		steps, _, actualHeight, _ := c.CalcSteps(height, 400, nil, nil)
		require.NotNil(t, steps)
		require.GreaterOrEqual(t, *steps, 1)
		// Подъем делится поровну между ступенями
		assert.InDelta(t, height, *actualHeight*float64(*steps), 1e-9)
	}
}

func TestCalcSteps_RoundsHalfAwayFromZero(t *testing.T) {
	c := New(DefaultConfig())

	// 250/20 = 12.5 — округляется вверх
	steps, _, _, _ := c.CalcSteps(250, 400, nil, nil)
	require.NotNil(t, steps)
	assert.Equal(t, 13, *steps)
}

func TestCalcSteps_HeightOnly(t *testing.T) {
	c := New(DefaultConfig())

	steps, msg, actualHeight, actualWidth := c.CalcSteps(270, 400, fptr(18), nil)
	require.NotNil(t, steps)
	assert.Equal(t, 15, *steps)
	assert.Contains(t, msg, "высота задана")
	assert.Equal(t, 18.0, *actualHeight)
	assert.Equal(t, 30.0, *actualWidth)
}

func TestCalcSteps_HeightOnly_Invalid(t *testing.T) {
	c := New(DefaultConfig())

	steps, msg, _, _ := c.CalcSteps(270, 400, fptr(-1), nil)
	assert.Nil(t, steps)
	assert.Contains(t, msg, "положительной")

	steps, msg, _, _ = c.CalcSteps(270, 400, fptr(14), nil)
	assert.Nil(t, steps)
	assert.Contains(t, msg, "от 15 до 25")

	steps, msg, _, _ = c.CalcSteps(270, 400, fptr(26), nil)
	assert.Nil(t, steps)
	assert.Contains(t, msg, "от 15 до 25")
}

func TestCalcSteps_WidthOnly(t *testing.T) {
	c := New(DefaultConfig())

	steps, msg, actualHeight, actualWidth := c.CalcSteps(270, 400, nil, fptr(32))
	require.NotNil(t, steps)
	assert.Equal(t, 14, *steps)
	assert.Contains(t, msg, "ширина задана")
	assert.Equal(t, 20.0, *actualHeight)
	// Ширина принимается как есть, с габаритами сверяет CheckFeasibility
	assert.Equal(t, 32.0, *actualWidth)
}

func TestCalcSteps_WidthOnly_Invalid(t *testing.T) {
	c := New(DefaultConfig())

	steps, msg, _, _ := c.CalcSteps(270, 400, nil, fptr(0))
	assert.Nil(t, steps)
	assert.Contains(t, msg, "положительной")

	steps, msg, _, _ = c.CalcSteps(270, 400, nil, fptr(20))
	assert.Nil(t, steps)
	assert.Contains(t, msg, "не менее 25")
}

func TestCalcSteps_Both(t *testing.T) {
	c := New(DefaultConfig())

	steps, msg, actualHeight, actualWidth := c.CalcSteps(280, 400, fptr(20), fptr(35))
	require.NotNil(t, steps)
	assert.Equal(t, 14, *steps)
	assert.Contains(t, msg, "ширина и высота заданы")
	assert.Equal(t, 20.0, *actualHeight)
	assert.Equal(t, 35.0, *actualWidth)
}

func TestCalcSteps_Both_Invalid(t *testing.T) {
	c := New(DefaultConfig())

	steps, msg, _, _ := c.CalcSteps(280, 400, fptr(-5), fptr(30))
	assert.Nil(t, steps)
	assert.Contains(t, msg, "положительными")

	steps, msg, _, _ = c.CalcSteps(280, 400, fptr(30), fptr(30))
	assert.Nil(t, steps)
	assert.Contains(t, msg, "от 15 до 25")

	steps, msg, _, _ = c.CalcSteps(280, 400, fptr(20), fptr(10))
	assert.Nil(t, steps)
	assert.Contains(t, msg, "не менее 25")
}

func TestClassifyStepMode(t *testing.T) {
	assert.Equal(t, modeStandard, classifyStepMode(nil, nil))
	assert.Equal(t, modeHeightOnly, classifyStepMode(fptr(20), nil))
	assert.Equal(t, modeWidthOnly, classifyStepMode(nil, fptr(30)))
	assert.Equal(t, modeBoth, classifyStepMode(fptr(20), fptr(30)))
}
