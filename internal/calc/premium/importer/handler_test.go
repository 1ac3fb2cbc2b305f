package importer

import (
	"testing"

	ladder "Lestnitsa/internal/calc/ladder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLadderRow(t *testing.T) {
	in, err := parseLadderRow([]string{"270", "400", "100", "2"})
	require.NoError(t, err)
	assert.Equal(t, 270.0, in.Height)
	assert.Equal(t, 400.0, in.Length)
	require.NotNil(t, in.Width)
	assert.Equal(t, 100.0, *in.Width)
	assert.Equal(t, ladder.TypeUShaped, in.LadderType)
}

func TestParseLadderRow_MinimalAndComma(t *testing.T) {
	in, err := parseLadderRow([]string{"270,5", "400"})
	require.NoError(t, err)
	assert.Equal(t, 270.5, in.Height)
	assert.Nil(t, in.Width)
	assert.Equal(t, ladder.TypeStraight, in.LadderType)
}

func TestParseLadderRow_Bad(t *testing.T) {
	_, err := parseLadderRow([]string{"270"})
	assert.Error(t, err)
	_, err = parseLadderRow([]string{"высота", "400"})
	assert.Error(t, err)
}
