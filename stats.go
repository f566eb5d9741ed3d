package ivset

import "math"

// StatisticsOf computes the maxDepth, average and deviation of a depth
// histogram (depth -> item count at that depth). The average is
// count-weighted; the deviation is not: it sums the squared distance
// from the average once per distinct depth, divides by the total item
// count and takes the square root. It is the shared
// computation behind every index's Statistics() (spec §5/SPEC_FULL.md
// §5, generalizing the teacher's Tree.Statistics). Each index package
// builds its own histogram (array-section nesting level for NCL/LCL,
// tree-node depth for SIT/IBST/DIT) and hands it to this one function
// so the arithmetic is written, and can be trusted, exactly once.
func StatisticsOf(depths map[int]int) (maxDepth int, average, deviation float64) {
	if len(depths) == 0 {
		return 0, 0, 0
	}

	var weightedSum, sum int
	for depth, count := range depths {
		weightedSum += depth * count
		sum += count
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	average = float64(weightedSum) / float64(sum)

	var variance float64
	for depth := range depths {
		variance += math.Pow(float64(depth)-average, 2.0)
	}
	variance /= float64(sum)
	deviation = math.Sqrt(variance)

	return maxDepth, average, deviation
}
