package main

// Heuristic scores a partial sequence against the exitus; higher is more
// promising. Each aligned atom earns 3/depth and each misaligned atom costs
// depth, so shallow matches are preferred and deep divergence is punished.
//
// offset counts mismatches so far: after a mismatch, later positions are
// compared one exitus slot further back. Earlier alignment decisions are never
// revisited. Positions past len(target) are always mismatches, whatever the
// offset. depth must be >= 1.
func Heuristic(seq, target []string, depth int) float64 {
	d := float64(depth)
	score := 0.0
	offset := 0
	for i, atom := range seq {
		k := i - offset
		if i <= len(target) && k < len(target) && atom == target[k] {
			score += 3 / d
		} else {
			score -= d
			offset++
		}
	}
	return score
}
