package battle

import "math"

const (
	minStage = -6
	maxStage = 6
	// maxStageChange bounds a single change before it is applied.
	maxStageChange = 12
)

type ratio struct{ num, den uint32 }

// statRatios[stage+6] scales a permanent stat.
var statRatios = [...]ratio{
	{1, 4}, {2, 7}, {1, 3}, {2, 5}, {1, 2}, {2, 3},
	{1, 1},
	{3, 2}, {2, 1}, {5, 2}, {3, 1}, {7, 2}, {4, 1},
}

// accuracyRatios[stage+6] is the accuracy/evasion multiplier.
var accuracyRatios = [...]float64{
	0.33, 0.36, 0.43, 0.50, 0.60, 0.75,
	1.00,
	1.33, 1.66, 2.00, 2.50, 2.66, 3.00,
}

// criticalOdds[stage] out of criticalDie.
var criticalOdds = [...]int{3, 6, 12, 16, 24}

const criticalDie = 48

func stageIndex(stage int8) int {
	i := int(stage) - minStage
	if i < 0 || i >= len(statRatios) {
		panic("battle: stat stage out of range")
	}
	return i
}

// ApplyStage scales base by the stage ratio table.
func ApplyStage(base uint16, stage int8) uint16 {
	r := statRatios[stageIndex(stage)]
	v := uint32(base) * r.num / r.den
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// AccuracyRatio returns the multiplier for an accuracy or evasion stage.
func AccuracyRatio(stage int8) float64 {
	return accuracyRatios[stageIndex(stage)]
}

func clampStage(v int) int8 {
	return int8(min(max(v, minStage), maxStage))
}
