package main

import (
	"strings"
	"time"
)

// Reagent is a named item whose atoms are applied, in order, to a running
// sequence. An atom starting with the negation prefix removes the plain atom
// of the same name; any other atom is appended if not already present.
type Reagent struct {
	Name  string
	Atoms []string
	// Score is the length of the exitus prefix this reagent produces on its
	// own. Only set on reagents returned by ViableStarts; 0 means unset.
	Score int
}

// String renders the reagent in the line format it was parsed from.
func (r Reagent) String() string {
	if len(r.Atoms) == 0 {
		return r.Name
	}
	return r.Name + " " + strings.Join(r.Atoms, " ")
}

func reagentNames(rs []Reagent) []string {
	names := make([]string, len(rs))
	for i := range rs {
		names[i] = rs[i].Name
	}
	return names
}

func isNegation(atom, prefix string) bool {
	return strings.HasPrefix(atom, prefix)
}

// StopReason tells why a priority search returned.
type StopReason int

const (
	StopFound StopReason = iota
	StopExhausted
	StopDepthLimit
	StopIterationLimit
)

func (s StopReason) String() string {
	switch s {
	case StopFound:
		return "found"
	case StopExhausted:
		return "exhausted"
	case StopDepthLimit:
		return "depth_limit"
	case StopIterationLimit:
		return "iteration_limit"
	}
	return "unknown"
}

// SearchResult is the outcome of one priority search.
type SearchResult struct {
	Path       []string // nil unless Reason == StopFound
	Expansions int
	Reason     StopReason
}

// StartResult pairs a viable start with its search outcome and timing.
type StartResult struct {
	Start   Reagent
	Path    []string
	Elapsed time.Duration
	// Expansions counts frontier pops, bounded by Config.MaxIterations.
	Expansions int
	Reason     StopReason
}

// Found reports whether the search from this start reached the exitus.
func (r StartResult) Found() bool { return r.Path != nil }
