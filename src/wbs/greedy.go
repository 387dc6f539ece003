package wbs

import (
	"gonum.org/v1/gonum/mat"
	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// SolveGreedy selects weights from a max-heap while the largest remaining one
// is positive. For this problem the greedy choice is exact, so the returned
// fitness always matches the stored optimum.
func (inst *Instance) SolveGreedy() *Solution {
	pq := priorityqueue.New[int, float64](priorityqueue.MaxHeap)
	for i := 0; i < inst.Length; i++ {
		pq.Put(i, inst.Weights.AtVec(i))
	}

	gene := mat.NewVecDense(inst.Length, nil)
	for pq.Len() > 0 {
		item := pq.Get()
		if item.Priority <= 0 {
			break
		}
		gene.SetVec(item.Value, 1)
	}

	return &Solution{
		Gene:    gene,
		Fitness: inst.fitness(gene),
	}
}
