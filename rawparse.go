package main

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseReagentsJSON reads
//
//	{"exitus": {"name": "...", "atoms": [...]}, "reagents": [{"name": "...", "atoms": [...]}, ...]}
//
// The exitus name is taken from the document; cfg.ExitusName is used when it
// is missing.
func ParseReagentsJSON(data string, cfg Config) (Reagent, []Reagent, error) {
	if !gjson.Valid(data) {
		return Reagent{}, nil, fmt.Errorf("%w: malformed JSON", ErrInvalidInput)
	}
	doc := gjson.Parse(data)

	ex := doc.Get("exitus")
	if !ex.Exists() {
		return Reagent{}, nil, ErrNoExitus
	}
	exitus, err := parseReagentJSON(ex, cfg.ExitusName)
	if err != nil {
		return Reagent{}, nil, fmt.Errorf("exitus: %w", err)
	}

	var reagents []Reagent
	var perr error
	doc.Get("reagents").ForEach(func(k, v gjson.Result) bool {
		r, err := parseReagentJSON(v, "")
		if err != nil {
			perr = fmt.Errorf("reagents[%d]: %w", k.Int(), err)
			return false
		}
		reagents = append(reagents, r)
		return true
	})
	if perr != nil {
		return Reagent{}, nil, perr
	}
	return exitus, reagents, nil
}

func parseReagentJSON(v gjson.Result, defaultName string) (Reagent, error) {
	if !v.IsObject() {
		return Reagent{}, fmt.Errorf("%w: expected object, got %s", ErrInvalidInput, v.Type)
	}
	name := v.Get("name").String()
	if name == "" {
		name = defaultName
	}
	if name == "" {
		return Reagent{}, fmt.Errorf("%w: missing name", ErrInvalidInput)
	}

	var atoms []string
	v.Get("atoms").ForEach(func(_, a gjson.Result) bool {
		atoms = append(atoms, a.String())
		return true
	})
	if len(atoms) == 0 {
		return Reagent{}, fmt.Errorf("%q: %w", name, ErrNoAtoms)
	}
	return Reagent{Name: name, Atoms: atoms}, nil
}
