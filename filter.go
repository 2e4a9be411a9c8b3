package main

import (
	"cmp"
	"slices"
)

// FilterReagents drops reagents that can never help build the exitus: every
// plain atom of a kept reagent is either in the exitus or cancellable by a
// negation atom somewhere in the pool. Filtering repeats until the pool stops
// shrinking, since each removal can strip another reagent's justification.
// removed lists dropped reagents in the order they were dropped.
func FilterReagents(exitus Reagent, reagents []Reagent, prefix string) (kept, removed []Reagent) {
	target := make(map[string]struct{}, len(exitus.Atoms))
	for _, a := range exitus.Atoms {
		target[a] = struct{}{}
	}

	kept = slices.Clone(reagents)
	prevLen := len(kept) + 1
	for len(kept) < prevLen {
		prevLen = len(kept)

		pool := make(map[string]struct{})
		for i := range kept {
			for _, a := range kept[i].Atoms {
				pool[a] = struct{}{}
			}
		}

		next := kept[:0]
		for _, r := range kept {
			if useful(r, target, pool, prefix) {
				next = append(next, r)
			} else {
				removed = append(removed, r)
			}
		}
		kept = next
	}
	return kept, removed
}

func useful(r Reagent, target, pool map[string]struct{}, prefix string) bool {
	for _, a := range r.Atoms {
		if isNegation(a, prefix) {
			continue
		}
		if _, ok := target[a]; ok {
			continue
		}
		if _, ok := pool[prefix+a]; ok {
			continue
		}
		return false
	}
	return true
}

// containsOrderedSlice reports whether slice appears contiguously in seq.
func containsOrderedSlice(seq, slice []string) bool {
	if len(slice) > len(seq) {
		return false
	}
	for i := 0; i+len(slice) <= len(seq); i++ {
		if slices.Equal(seq[i:i+len(slice)], slice) {
			return true
		}
	}
	return false
}

// prefixScore is the longest exitus prefix found contiguously in atoms.
func prefixScore(atoms, target []string) int {
	score := 0
	for j := 1; j <= len(target); j++ {
		if !containsOrderedSlice(atoms, target[:j]) {
			break
		}
		score = j
	}
	return score
}

// ViableStarts returns copies of the reagents that alone produce a non-empty
// exitus prefix, with Score set, best first. Equal scores keep pool order.
func ViableStarts(exitus Reagent, reagents []Reagent) []Reagent {
	var starts []Reagent
	for _, r := range reagents {
		score := prefixScore(r.Atoms, exitus.Atoms)
		if score == 0 {
			continue
		}
		starts = append(starts, Reagent{
			Name:  r.Name,
			Atoms: slices.Clone(r.Atoms),
			Score: score,
		})
	}
	slices.SortStableFunc(starts, func(a, b Reagent) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return starts
}
