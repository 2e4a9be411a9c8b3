package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoExitus means the input has no line named after the exitus.
	ErrNoExitus = errors.New("no exitus found")
	// ErrNoAtoms means a reagent line has a name but no atoms.
	ErrNoAtoms = errors.New("reagent has no atoms")
	// ErrInvalidInput covers structurally broken input.
	ErrInvalidInput = errors.New("invalid reagent input")
)

// ParseReagents reads the line format: one reagent per line, name first, then
// its atoms, whitespace separated. The line named cfg.ExitusName is the
// exitus. Blank lines and lines starting with '#' are skipped.
func ParseReagents(contents string, cfg Config) (Reagent, []Reagent, error) {
	var (
		exitus    Reagent
		hasExitus bool
		reagents  []Reagent
	)

	for n, line := range strings.Split(contents, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) == 1 {
			return Reagent{}, nil, fmt.Errorf("line %d: %q: %w", n+1, fields[0], ErrNoAtoms)
		}

		r := Reagent{Name: fields[0], Atoms: fields[1:]}
		if r.Name == cfg.ExitusName {
			exitus = r
			hasExitus = true
		} else {
			reagents = append(reagents, r)
		}
	}

	if !hasExitus {
		return Reagent{}, nil, fmt.Errorf("%w (expected a line named %s)", ErrNoExitus, cfg.ExitusName)
	}
	return exitus, reagents, nil
}

// LoadReagents reads path and parses it as JSON when it has a .json
// extension, and as the line format otherwise.
func LoadReagents(path string, cfg Config) (Reagent, []Reagent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Reagent{}, nil, fmt.Errorf("read reagents: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseReagentsJSON(string(raw), cfg)
	}
	return ParseReagents(string(raw), cfg)
}
