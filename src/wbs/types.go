package wbs

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// OutputFormat selects which artifacts Generate writes per instance.
type OutputFormat int

const (
	OverviewOnly OutputFormat = iota
	PerInstanceOnly
	Both
)

// Config holds one generation sweep. MinWeights, MaxWeights and GeneLengths
// are swept as a cartesian product; every combination yields NumInstances
// independent instances. PosPercentage is NaN when no positive ratio is
// requested.
type Config struct {
	OutputDir     string
	NumInstances  int
	MinWeights    []float64
	MaxWeights    []float64
	GeneLengths   []int
	Discrete      bool
	Format        OutputFormat
	NoZero        bool
	PosPercentage float64
}

// Instance is one weighted-binary-string benchmark case together with the
// parameters that produced it. Gene is the known-optimal bit string
// (1 wherever the weight is positive) and MaxFitness its fitness.
type Instance struct {
	Length        int
	MinWeight     float64
	MaxWeight     float64
	Discrete      bool
	NoZero        bool
	PosPercentage float64
	Weights       *mat.VecDense
	Gene          *mat.VecDense
	MaxFitness    float64
}

type Solution struct {
	Gene    *mat.VecDense
	Fitness float64
}

func (inst *Instance) fitness(gene *mat.VecDense) float64 {
	f := mat.Dot(gene, inst.Weights)
	if inst.Discrete {
		return math.Round(f)
	}
	return math.Round(f*100) / 100
}

func (inst *Instance) deriveOptimum() {
	gene := mat.NewVecDense(inst.Length, nil)
	for i := 0; i < inst.Length; i++ {
		if inst.Weights.AtVec(i) > 0 {
			gene.SetVec(i, 1)
		}
	}
	inst.Gene = gene
	inst.MaxFitness = inst.fitness(gene)
}

func (sol *Solution) String() string {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("Fitness: %v\n", sol.Fitness))
	s.WriteString("Gene: [ ")
	for i := 0; i < sol.Gene.Len(); i++ {
		if sol.Gene.AtVec(i) > 0.5 {
			s.WriteString("1 ")
		} else {
			s.WriteString("0 ")
		}
	}
	s.WriteString("]")
	return s.String()
}

func (inst *Instance) String() string {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("String length: %d\n", inst.Length))
	s.WriteString(fmt.Sprintf("Weights in [%v,%v]\n", formatNumber(inst.MinWeight), formatNumber(inst.MaxWeight)))
	s.WriteString(fmt.Sprintf("Discrete: %v, no zero: %v\n", inst.Discrete, inst.NoZero))
	if !math.IsNaN(inst.PosPercentage) {
		s.WriteString(fmt.Sprintf("Positive percentage: %v\n", inst.PosPercentage))
	}
	s.WriteString(fmt.Sprintf("Max fitness: %v\n", formatNumber(inst.MaxFitness)))
	return s.String()
}
