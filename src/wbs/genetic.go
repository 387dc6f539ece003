package wbs

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/tomcraven/goga"
	"gonum.org/v1/gonum/mat"
)

const (
	populationSize = 1000
)

func getGeneFromGenome(g goga.Genome) (gene *mat.VecDense) {
	bits := g.GetBits().GetAll()
	gene = mat.NewVecDense(len(bits), nil)
	for i, v := range bits {
		gene.SetVec(i, float64(v))
	}
	return
}

type wbsSimulator struct {
	ElapsedRounds int
	Instance      *Instance
	Offset        float64
}

func (sim *wbsSimulator) OnBeginSimulation() {
}
func (sim *wbsSimulator) OnEndSimulation() {
	sim.ElapsedRounds++
}

// Simulate scores a genome by its shifted fitness. goga fitnesses are
// positive integers, so the dot product is offset by the sum of absolute
// weights and scaled to keep two decimals.
func (sim *wbsSimulator) Simulate(g goga.Genome) {
	gene := getGeneFromGenome(g)
	f := mat.Dot(gene, sim.Instance.Weights)
	g.SetFitness(int(math.Round(100*(f+sim.Offset))) + 1)
}
func (sim *wbsSimulator) ExitFunc(g goga.Genome) bool {
	return true
}

type randomBitsetCreate struct {
	Length int
}

func (bc *randomBitsetCreate) Go() goga.Bitset {
	b := goga.Bitset{}
	b.Create(bc.Length)
	for i := 0; i < bc.Length; i++ {
		b.Set(i, rand.Intn(2))
	}
	return b
}

type bestGeneConsumer struct {
	BestGenome goga.Genome
}

func (ec *bestGeneConsumer) OnElite(g goga.Genome) {
	if ec.BestGenome == nil || ec.BestGenome.GetFitness() < g.GetFitness() {
		ec.BestGenome = g
	}
}

func (inst *Instance) absWeightSum() (sum float64) {
	for i := 0; i < inst.Length; i++ {
		sum += math.Abs(inst.Weights.AtVec(i))
	}
	return
}

// SolveGenetic runs a genetic-algorithm baseline over the instance and stops
// once the elite fitness has not improved for stallRounds rounds.
func (inst *Instance) SolveGenetic(stallRounds int) *Solution {
	mutate := func(g1, g2 goga.Genome) (goga.Genome, goga.Genome) {
		g1BitsOrig := g1.GetBits()
		g1Bits := g1BitsOrig.CreateCopy()
		randomBit := rand.Intn(inst.Length)
		g1Bits.Set(randomBit, 1-g1Bits.Get(randomBit))
		return goga.NewGenome(g1Bits), goga.NewGenome(*g2.GetBits())
	}

	genAlgo := goga.NewGeneticAlgorithm()
	genAlgo.Simulator = &wbsSimulator{
		Instance: inst,
		Offset:   inst.absWeightSum(),
	}
	genAlgo.BitsetCreate = &randomBitsetCreate{
		Length: inst.Length,
	}
	eliteConsumer := &bestGeneConsumer{}
	genAlgo.EliteConsumer = eliteConsumer
	genAlgo.Mater = goga.NewMater(
		[]goga.MaterFunctionProbability{
			{P: 0.9, F: goga.UniformCrossover, UseElite: true},
			{P: 0.9, F: goga.TwoPointCrossover},
			{P: 0.9, F: mutate},
			{P: 0.9, F: mutate},
			{P: 0.9, F: mutate},
		},
	)
	genAlgo.Selector = goga.NewSelector(
		[]goga.SelectorFunctionProbability{
			{P: 1, F: goga.Roulette},
		},
	)
	genAlgo.Init(populationSize, runtime.NumCPU())

	noImprovRounds := 0
	lastFitness := math.MinInt
	t := time.Now()
	genAlgo.SimulateUntil(func(g goga.Genome) bool {
		if g.GetFitness() == lastFitness {
			noImprovRounds++
		} else {
			noImprovRounds = 0
			lastFitness = g.GetFitness()
		}
		return noImprovRounds == stallRounds
	})
	fmt.Println("Genetic algorithm time:", time.Since(t))

	gene := getGeneFromGenome(eliteConsumer.BestGenome)
	return &Solution{
		Gene:    gene,
		Fitness: inst.fitness(gene),
	}
}
