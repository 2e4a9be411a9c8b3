package main

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Upper bounds for limits supplied by remote callers.
const (
	maxRequestDepth      = 64
	maxRequestIterations = 100_000
)

type solveRequest struct {
	exitus   Reagent
	reagents []Reagent
	cfg      Config
}

// decodeSolveRequest reads a solve request body. The reagents come either as
// line-format text under "input" or as the JSON document ParseReagentsJSON
// accepts. "maxDepth", "maxIterations" and "exitusName" override base.
func decodeSolveRequest(body string, base Config) (solveRequest, error) {
	if !gjson.Valid(body) {
		return solveRequest{}, fmt.Errorf("%w: malformed JSON", ErrInvalidInput)
	}
	doc := gjson.Parse(body)

	cfg := base
	if v := doc.Get("maxDepth"); v.Exists() {
		cfg.MaxDepth = int(v.Int())
	}
	if v := doc.Get("maxIterations"); v.Exists() {
		cfg.MaxIterations = int(v.Int())
	}
	if v := doc.Get("exitusName"); v.Exists() {
		cfg.ExitusName = v.String()
	}
	if err := cfg.Validate(); err != nil {
		return solveRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if cfg.MaxDepth > maxRequestDepth || cfg.MaxIterations > maxRequestIterations {
		return solveRequest{}, fmt.Errorf("%w: limits exceed maxDepth=%d maxIterations=%d",
			ErrInvalidInput, maxRequestDepth, maxRequestIterations)
	}

	var (
		exitus   Reagent
		reagents []Reagent
		err      error
	)
	if in := doc.Get("input"); in.Exists() {
		exitus, reagents, err = ParseReagents(in.String(), cfg)
	} else {
		exitus, reagents, err = ParseReagentsJSON(body, cfg)
	}
	if err != nil {
		return solveRequest{}, err
	}
	return solveRequest{exitus: exitus, reagents: reagents, cfg: cfg}, nil
}
