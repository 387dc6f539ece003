package wbs

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance_0.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0666))
	return path
}

func TestLoadInstance(t *testing.T) {
	path := writeTestFile(t, `Max Fitness,8
String Length,5
Min Weight,-10
Max Weight,10
Discrete,true
No Zero,false
Pos Percentage,
Genes,1,0,0,1,0
Weights,3,-2,0,5,-1
`)

	inst, err := LoadInstance(path)
	require.NoError(t, err)

	assert.Equal(t, 8.0, inst.MaxFitness)
	assert.Equal(t, 5, inst.Length)
	assert.Equal(t, -10.0, inst.MinWeight)
	assert.Equal(t, 10.0, inst.MaxWeight)
	assert.True(t, inst.Discrete)
	assert.False(t, inst.NoZero)
	assert.True(t, math.IsNaN(inst.PosPercentage))
	assert.Equal(t, []float64{1, 0, 0, 1, 0}, inst.Gene.RawVector().Data)
	assert.Equal(t, []float64{3, -2, 0, 5, -1}, inst.Weights.RawVector().Data)
}

func TestLoadInstancePosPercentage(t *testing.T) {
	path := writeTestFile(t, `Max Fitness,1.5
String Length,2
Min Weight,-1
Max Weight,1
Discrete,false
No Zero,true
Pos Percentage,50
Genes,1,0
Weights,1.5,-0.25
`)

	inst, err := LoadInstance(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, inst.PosPercentage)
	assert.True(t, inst.NoZero)
	assert.False(t, inst.Discrete)
}

func TestLoadInstanceErrors(t *testing.T) {
	_, err := LoadInstance(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = LoadInstance(writeTestFile(t, "not an instance file\n"))
	assert.Error(t, err)

	_, err = LoadInstance(writeTestFile(t, `Max Fitness,8
String Length,5
Min Weight,-10
Max Weight,10
Discrete,true
No Zero,false
Pos Percentage,
Genes,1,0
Weights,3,-2,0,5,-1
`))
	assert.ErrorContains(t, err, "expected 5 genes")
}
