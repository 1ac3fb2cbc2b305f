package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcAngle_Computed(t *testing.T) {
	c := New(DefaultConfig())

	angle, msg := c.CalcAngle(100, 100, nil)
	require.NotNil(t, angle)
	assert.Equal(t, 45.0, *angle)
	assert.Equal(t, "Угол рассчитан", msg)

	angle, _ = c.CalcAngle(300, 150, nil)
	require.NotNil(t, angle)
	assert.InDelta(t, 63.43, *angle, 0.01)
}

func TestCalcAngle_Manual(t *testing.T) {
	c := New(DefaultConfig())
	override := 38.5

	angle, msg := c.CalcAngle(270, 400, &override)
	require.NotNil(t, angle)
	assert.Equal(t, 38.5, *angle)
	assert.Equal(t, "Угол задан вручную", msg)
}

func TestCalcAngle_ZeroLength(t *testing.T) {
	c := New(DefaultConfig())

	angle, msg := c.CalcAngle(270, 0, nil)
	assert.Nil(t, angle)
	assert.Contains(t, msg, "не может быть 0")
}

func TestCalcAngle_AlwaysBetweenZeroAnd90(t *testing.T) {
	c := New(DefaultConfig())
	for _, pair := range [][2]float64{{1, 1000}, {270, 400}, {500, 1}, {499, 999}} {
		angle, _ := c.CalcAngle(pair[0], pair[1], nil)
		require.NotNil(t, angle)
		assert.Greater(t, *angle, 0.0)
		assert.Less(t, *angle, 90.0)
	}
}

func TestCheckAngle(t *testing.T) {
	c := New(DefaultConfig())

	low, high, fit := 29.99, 45.01, 37.0
	assert.Contains(t, c.CheckAngle(&low), "не подходит")
	assert.Contains(t, c.CheckAngle(&high), "не подходит")
	assert.Equal(t, "Угол подходит", c.CheckAngle(&fit))

	edgeMin, edgeMax := 30.0, 45.0
	assert.Equal(t, "Угол подходит", c.CheckAngle(&edgeMin))
	assert.Equal(t, "Угол подходит", c.CheckAngle(&edgeMax))

	assert.Contains(t, c.CheckAngle(nil), "не определен")
}

func TestCalcLength_Pythagoras(t *testing.T) {
	c := New(DefaultConfig())

	length, msg := c.CalcLength(300, 400, nil)
	require.NotNil(t, length)
	assert.Equal(t, 500.0, *length)
	assert.Contains(t, msg, "Пифагора")
}

func TestCalcLength_ByAngle(t *testing.T) {
	c := New(DefaultConfig())
	angle := 45.0

	length, msg := c.CalcLength(100, 100, &angle)
	require.NotNil(t, length)
	assert.InDelta(t, 141.42, *length, 0.01)
	assert.Contains(t, msg, "по углу")
}

func TestCalcLength_InvalidAngle(t *testing.T) {
	c := New(DefaultConfig())
	angle := 90.0

	length, msg := c.CalcLength(270, 400, &angle)
	assert.Nil(t, length)
	assert.Contains(t, msg, "неверный угол")
}
