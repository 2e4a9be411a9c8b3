package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rg(name string, atoms ...string) Reagent {
	return Reagent{Name: name, Atoms: atoms}
}

// applyPath replays names from an empty combinator.
func applyPath(t *testing.T, path []string, pool []Reagent) []string {
	t.Helper()
	byName := make(map[string]*Reagent, len(pool))
	for i := range pool {
		byName[pool[i].Name] = &pool[i]
	}
	c := NewCombinator("-")
	for _, name := range path {
		r, ok := byName[name]
		require.Truef(t, ok, "unknown reagent %q in path", name)
		c.AddReagent(r)
	}
	return c.Sequence
}

func TestCombinatorAddReagent(t *testing.T) {
	c := NewCombinator("-")
	c.Reset(nil, nil)

	seq := c.AddReagent(&Reagent{Name: "R1", Atoms: []string{"A", "B", "A"}})
	assert.Equal(t, []string{"A", "B"}, seq, "plain atoms are a union in first-insertion order")

	c.AddReagent(&Reagent{Name: "R2", Atoms: []string{"-A", "C", "-Z"}})
	assert.Equal(t, []string{"B", "C"}, c.Sequence, "negation removes, missing atom is a no-op")
	assert.Equal(t, []string{"R1", "R2"}, c.ReagentPath)
}

func TestCombinatorNegationRemovesRatherThanReorders(t *testing.T) {
	pool := []Reagent{rg("R1", "A"), rg("N", "-A"), rg("X", "B")}
	seq := applyPath(t, []string{"R1", "N", "X"}, pool)
	assert.Equal(t, []string{"B"}, seq)
	assert.NotEqual(t, []string{"A", "B"}, seq)
}

func TestCombinatorOrderSensitive(t *testing.T) {
	pool := []Reagent{rg("A", "X"), rg("B", "-X", "Y")}

	assert.Equal(t, []string{"Y"}, applyPath(t, []string{"A", "B"}, pool))
	assert.Equal(t, []string{"Y", "X"}, applyPath(t, []string{"B", "A"}, pool))
}

func TestCombinatorReset(t *testing.T) {
	c := NewCombinator("-")
	c.Reset([]string{"A", "-B", "C"}, []string{"R1"})
	assert.Equal(t, []string{"A", "C"}, c.Sequence, "negation atoms are dropped from the base")
	assert.Equal(t, []string{"R1"}, c.ReagentPath)

	t.Run("copies path", func(t *testing.T) {
		path := []string{"R1", "R2"}
		c.Reset(nil, path)
		c.AddReagent(&Reagent{Name: "R3", Atoms: []string{"A"}})
		assert.Equal(t, []string{"R1", "R2"}, path)
	})

	t.Run("does not touch previously returned sequence", func(t *testing.T) {
		c.Reset([]string{"A"}, nil)
		kept := c.AddReagent(&Reagent{Name: "R", Atoms: []string{"B"}})
		c.Reset([]string{"A", "B"}, nil)
		c.AddReagent(&Reagent{Name: "N", Atoms: []string{"-A", "C"}})
		assert.Equal(t, []string{"A", "B"}, kept)
	})
}

func TestCombinatorReplayIsDeterministic(t *testing.T) {
	pool := []Reagent{
		rg("R1", "A", "B"),
		rg("R2", "-A", "C"),
		rg("R3", "A", "-C", "D"),
	}
	path := []string{"R1", "R2", "R3", "R2"}

	first := applyPath(t, path, pool)

	c := NewCombinator("-")
	c.Reset([]string{"Q"}, []string{"junk"})
	c.Reset(nil, nil)
	for _, name := range path {
		for i := range pool {
			if pool[i].Name == name {
				c.AddReagent(&pool[i])
			}
		}
	}
	assert.Equal(t, first, c.Sequence)
	assert.Equal(t, path, c.ReagentPath)
}

func TestCombinatorCustomPrefix(t *testing.T) {
	c := NewCombinator("!")
	c.Reset([]string{"A", "!B"}, nil)
	c.AddReagent(&Reagent{Name: "R", Atoms: []string{"!A", "-A"}})
	assert.Equal(t, []string{"-A"}, c.Sequence)
	assert.True(t, c.Matches([]string{"-A"}))
	assert.Equal(t, "path=[R] sequence=[-A]", c.String())
}
