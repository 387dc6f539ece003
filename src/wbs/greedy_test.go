package wbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tomcraven/goga"
	"gonum.org/v1/gonum/mat"
)

func TestSolveGreedyRecoversOptimum(t *testing.T) {
	inst := &Instance{
		Length:   5,
		Discrete: true,
		Weights:  mat.NewVecDense(5, []float64{3, -2, 0, 5, -1}),
	}
	inst.deriveOptimum()

	sol := inst.SolveGreedy()

	assert.Equal(t, 8.0, sol.Fitness)
	assert.Equal(t, inst.MaxFitness, sol.Fitness)
	assert.True(t, mat.Equal(inst.Gene, sol.Gene))
}

func TestSolveGreedyContinuous(t *testing.T) {
	inst := &Instance{
		Length:  4,
		Weights: mat.NewVecDense(4, []float64{0.5, -0.25, 1.75, -3.5}),
	}
	inst.deriveOptimum()

	sol := inst.SolveGreedy()

	assert.Equal(t, 2.25, sol.Fitness)
	assert.True(t, mat.Equal(inst.Gene, sol.Gene))
}

func TestSolveGreedyAllNegative(t *testing.T) {
	inst := &Instance{
		Length:   3,
		Discrete: true,
		Weights:  mat.NewVecDense(3, []float64{-1, -2, -3}),
	}
	inst.deriveOptimum()

	sol := inst.SolveGreedy()

	assert.Equal(t, 0.0, sol.Fitness)
	assert.Equal(t, 0.0, mat.Sum(sol.Gene))
}

func TestGetGeneFromGenome(t *testing.T) {
	b := goga.Bitset{}
	b.Create(3)
	b.Set(0, 1)
	b.Set(2, 1)

	gene := getGeneFromGenome(goga.NewGenome(b))

	assert.True(t, mat.Equal(mat.NewVecDense(3, []float64{1, 0, 1}), gene))
}
