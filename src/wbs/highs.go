package wbs

import (
	"fmt"
	"math"

	"github.com/lanl/highs"
	"gonum.org/v1/gonum/mat"
)

// defProgram builds the 0-1 program min Σ -wᵢxᵢ, whose optimum selects every
// positive weight.
func (inst *Instance) defProgram() *highs.Model {
	lp := new(highs.Model)

	lp.VarTypes = make([]highs.VariableType, inst.Length)
	lp.ColLower = make([]float64, inst.Length)
	lp.ColUpper = make([]float64, inst.Length)
	for j := 0; j < inst.Length; j++ {
		lp.VarTypes[j] = highs.IntegerType
		lp.ColUpper[j] = 1
	}

	costs := make([]float64, inst.Length)
	for j := 0; j < inst.Length; j++ {
		costs[j] = -inst.Weights.AtVec(j)
	}
	lp.ColCosts = costs

	return lp
}

// SolveHighs maximizes the weight subset sum as a 0-1 integer program. It
// exists to cross-check stored optima with an exact external solver.
func (inst *Instance) SolveHighs() (*Solution, error) {
	lp := inst.defProgram()
	solution, err := lp.Solve()
	if err != nil {
		return nil, err
	}
	if solution.Status != highs.Optimal {
		return nil, fmt.Errorf("status: %v", solution.Status.String())
	}

	gene := mat.NewVecDense(inst.Length, nil)
	for i, v := range solution.ColumnPrimal[:inst.Length] {
		gene.SetVec(i, math.Round(v))
	}
	return &Solution{
		Gene:    gene,
		Fitness: inst.fitness(gene),
	}, nil
}
