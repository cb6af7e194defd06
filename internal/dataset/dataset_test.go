package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTabSeparatedTxt(t *testing.T) {
	path := writeTemp(t, "data.txt", "0\t3\n1\t5\n2\t7\n")
	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2}, ds.X)
	assert.Equal(t, []float64{3, 5, 7}, ds.FX)
}

func TestLoadCommaSeparatedCsv(t *testing.T) {
	path := writeTemp(t, "data.csv", "0,3\n1,5\n2,7\n")
	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2}, ds.X)
	assert.Equal(t, []float64{3, 5, 7}, ds.FX)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeTemp(t, "data.dat", "0,3\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	path := writeTemp(t, "bad.csv", "not-a-number,3\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDrawFunctionSamplesEvenlySpacedPoints(t *testing.T) {
	identity := func(x []float64) []float64 {
		fx := make([]float64, len(x))
		copy(fx, x)
		return fx
	}

	points := DrawFunction(identity, 0, 10, 5)
	require.Len(t, points, 5)
	assert.Equal(t, 0.0, points[0].X)
	assert.InDelta(t, 8.0, points[4].X, 1e-9)
}

func TestAxisMinMaxPadsSymmetrically(t *testing.T) {
	min, max := AxisMinMax([]float64{0, 10}, 0.1)
	assert.InDelta(t, -1.0, min, 1e-9)
	assert.InDelta(t, 11.0, max, 1e-9)
}
