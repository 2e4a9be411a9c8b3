package main

import (
	"fmt"
	"slices"
	"strings"
)

// Combinator accumulates the sequence produced by applying reagents in order.
// It is owned by a single search and reused across branches via Reset.
type Combinator struct {
	Sequence    []string
	ReagentPath []string

	prefix string
}

// NewCombinator returns an empty combinator using the given negation prefix.
func NewCombinator(negationPrefix string) *Combinator {
	return &Combinator{prefix: negationPrefix}
}

// AddReagent applies r to the sequence and records it on the path. The
// returned slice is the combinator's sequence; Reset never writes into it, so
// callers may keep it after resetting.
func (c *Combinator) AddReagent(r *Reagent) []string {
	c.ReagentPath = append(c.ReagentPath, r.Name)

	for _, atom := range r.Atoms {
		if isNegation(atom, c.prefix) {
			plain := atom[len(c.prefix):]
			c.Sequence = slices.DeleteFunc(c.Sequence, func(a string) bool { return a == plain })
		} else if !slices.Contains(c.Sequence, atom) {
			c.Sequence = append(c.Sequence, atom)
		}
	}
	return c.Sequence
}

// Reset reseeds the combinator with base (negation atoms dropped) and a copy
// of path. Both are freshly allocated.
func (c *Combinator) Reset(base, path []string) {
	seq := make([]string, 0, len(base)+4)
	for _, a := range base {
		if !isNegation(a, c.prefix) {
			seq = append(seq, a)
		}
	}
	c.Sequence = seq

	p := make([]string, len(path), len(path)+1)
	copy(p, path)
	c.ReagentPath = p
}

// Matches reports whether the sequence equals target, order included.
func (c *Combinator) Matches(target []string) bool {
	return slices.Equal(c.Sequence, target)
}

func (c *Combinator) String() string {
	return fmt.Sprintf("path=[%s] sequence=[%s]",
		strings.Join(c.ReagentPath, " "), strings.Join(c.Sequence, " "))
}
