package wbs

import (
	"math"
	"math/rand"

	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// drawWeight draws a single weight from [minW,maxW], inclusive on both ends
// in the discrete case, rounded to two decimals in the continuous one.
func drawWeight(minW, maxW float64, discrete bool) float64 {
	if discrete {
		lo, hi := int(minW), int(maxW)
		return float64(lo + rand.Intn(hi-lo+1))
	}
	u := distuv.Uniform{Min: minW, Max: maxW}
	return round2(u.Rand())
}

// resampleZeros re-draws the positions held in zeros until none of them is
// exactly zero, using the bounds given by boundsOf for each position. It does
// not terminate if some position's bounds admit only zero; that degenerate
// case is a caller responsibility.
func resampleZeros(weights *mat.VecDense, zeros mapset.Set[int], discrete bool, boundsOf func(i int) (float64, float64)) {
	for !zeros.IsEmpty() {
		for _, i := range zeros.ToSlice() {
			lo, hi := boundsOf(i)
			w := drawWeight(lo, hi, discrete)
			weights.SetVec(i, w)
			if w != 0 {
				zeros.Remove(i)
			}
		}
	}
}

func zeroPositions(weights *mat.VecDense) mapset.Set[int] {
	zeros := mapset.NewSet[int]()
	for i := 0; i < weights.Len(); i++ {
		if weights.AtVec(i) == 0 {
			zeros.Add(i)
		}
	}
	return zeros
}

// sampleWeights draws length weights uniformly from [minW,maxW] without any
// positive/negative ratio constraint.
func sampleWeights(minW, maxW float64, length int, discrete, noZero bool) *mat.VecDense {
	weights := mat.NewVecDense(length, nil)
	for i := 0; i < length; i++ {
		weights.SetVec(i, drawWeight(minW, maxW, discrete))
	}
	if noZero {
		resampleZeros(weights, zeroPositions(weights), discrete, func(int) (float64, float64) {
			return minW, maxW
		})
	}
	return weights
}

// sampleWithRatio draws weights so that exactly round(posPercentage/100*length)
// of them are strictly positive and the rest strictly negative. Positions are
// assigned by a random permutation. Zeros landing in either subset are
// re-drawn from that subset's own bounds, so the positive count holds exactly
// whether or not noZero was requested.
func sampleWithRatio(minW, maxW float64, length int, posPercentage float64, discrete bool) *mat.VecDense {
	posCnt := int(math.Round(posPercentage / 100 * float64(length)))
	indices := rand.Perm(length)
	positive := mapset.NewSet(indices[:posCnt]...)

	posLo, negHi := 1.0, -1.0
	if !discrete {
		posLo, negHi = 0, 0
	}

	weights := mat.NewVecDense(length, nil)
	for _, i := range indices[:posCnt] {
		weights.SetVec(i, drawWeight(posLo, maxW, discrete))
	}
	for _, i := range indices[posCnt:] {
		weights.SetVec(i, drawWeight(minW, negHi, discrete))
	}

	resampleZeros(weights, zeroPositions(weights), discrete, func(i int) (float64, float64) {
		if positive.Contains(i) {
			return posLo, maxW
		}
		return minW, negHi
	})
	return weights
}
