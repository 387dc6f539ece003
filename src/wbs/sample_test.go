package wbs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func countSigns(t *testing.T, weights *mat.VecDense, length int) (pos, neg, zero int) {
	t.Helper()
	for i := 0; i < length; i++ {
		switch w := weights.AtVec(i); {
		case w > 0:
			pos++
		case w < 0:
			neg++
		default:
			zero++
		}
	}
	return
}

func TestSampleWeightsDiscreteBounds(t *testing.T) {
	weights := sampleWeights(-10, 10, 500, true, false)

	assert.Equal(t, 500, weights.Len())
	for i := 0; i < 500; i++ {
		w := weights.AtVec(i)
		assert.GreaterOrEqual(t, w, -10.0)
		assert.LessOrEqual(t, w, 10.0)
		assert.Equal(t, math.Trunc(w), w, "discrete weight must be integral")
	}
}

func TestSampleWeightsContinuousRounding(t *testing.T) {
	weights := sampleWeights(-1, 1, 500, false, false)

	for i := 0; i < 500; i++ {
		w := weights.AtVec(i)
		assert.GreaterOrEqual(t, w, -1.0)
		assert.LessOrEqual(t, w, 1.0)
		scaled := w * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9, "weight must carry at most two decimals")
	}
}

func TestSampleWeightsNoZero(t *testing.T) {
	// A [-1,1] integer range hits zero in about a third of the draws, so a
	// vector this long exercises the re-sampling loop with near certainty.
	weights := sampleWeights(-1, 1, 1000, true, true)

	_, _, zero := countSigns(t, weights, 1000)
	assert.Zero(t, zero)
}

func TestSampleWithRatioExactCounts(t *testing.T) {
	for _, discrete := range []bool{true, false} {
		weights := sampleWithRatio(-10, 10, 10, 70, discrete)

		pos, neg, zero := countSigns(t, weights, 10)
		assert.Equal(t, 7, pos, "discrete=%v", discrete)
		assert.Equal(t, 3, neg, "discrete=%v", discrete)
		assert.Zero(t, zero, "discrete=%v", discrete)
	}
}

func TestSampleWithRatioBounds(t *testing.T) {
	weights := sampleWithRatio(-5, 8, 200, 40, true)

	for i := 0; i < 200; i++ {
		w := weights.AtVec(i)
		assert.GreaterOrEqual(t, w, -5.0)
		assert.LessOrEqual(t, w, 8.0)
	}
	pos, neg, _ := countSigns(t, weights, 200)
	assert.Equal(t, 80, pos)
	assert.Equal(t, 120, neg)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.14, round2(3.14159))
	assert.Equal(t, -2.5, round2(-2.499))
	assert.Equal(t, 0.0, round2(0.001))
}
