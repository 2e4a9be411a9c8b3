package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Lines renders the report as the solver's progress log.
func (r *Report) Lines() []string {
	lines := []string{"Removing useless reagents..."}
	if len(r.Removed) == 0 {
		lines = append(lines, " ↳No useless reagents found")
	} else {
		lines = append(lines, " ↳Removed "+strings.Join(reagentNames(r.Removed), ", "))
	}

	lines = append(lines, "Looking for viable start reagents...")
	if len(r.Starts) == 0 {
		return append(lines, " ↳No viable start reagents found")
	}
	lines = append(lines, " ↳Found "+strings.Join(reagentNames(r.Starts), ", "))

	lines = append(lines, "Searching...")
	for _, res := range r.Results {
		if !res.Found() {
			lines = append(lines, fmt.Sprintf("No path found for start %s (%s after %d expansions)",
				res.Start.Name, res.Reason, res.Expansions))
			continue
		}
		lines = append(lines,
			fmt.Sprintf("Path for start %s", res.Start.Name),
			fmt.Sprintf(" ↳%s", strings.Join(res.Path, " -> ")),
			fmt.Sprintf(" ↳found in %d microseconds", res.Elapsed.Microseconds()),
		)
	}
	return lines
}

// String joins Lines with newlines.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

type reagentJSON struct {
	Name  string   `json:"name"`
	Atoms []string `json:"atoms"`
	Score int      `json:"score,omitempty"`
}

type startResultJSON struct {
	Start      string   `json:"start"`
	Found      bool     `json:"found"`
	Path       []string `json:"path,omitempty"`
	Outcome    string   `json:"outcome"`
	Expansions int      `json:"expansions"`
	ElapsedUs  int64    `json:"elapsedUs"`
}

// ReportOutput is the JSON-serializable form of a Report.
type ReportOutput struct {
	RunID     string            `json:"runId"`
	Exitus    reagentJSON       `json:"exitus"`
	Removed   []string          `json:"removed"`
	Starts    []reagentJSON     `json:"starts"`
	Results   []startResultJSON `json:"results"`
	ElapsedMs int64             `json:"elapsedMs"`
}

// Output converts the report for JSON encoding.
func (r *Report) Output() ReportOutput {
	out := ReportOutput{
		RunID:     r.RunID,
		Exitus:    reagentJSON{Name: r.Exitus.Name, Atoms: r.Exitus.Atoms},
		Removed:   reagentNames(r.Removed),
		Starts:    make([]reagentJSON, len(r.Starts)),
		Results:   make([]startResultJSON, len(r.Results)),
		ElapsedMs: r.Elapsed.Milliseconds(),
	}
	for i, s := range r.Starts {
		out.Starts[i] = reagentJSON{Name: s.Name, Atoms: s.Atoms, Score: s.Score}
	}
	for i, res := range r.Results {
		out.Results[i] = startResultJSON{
			Start:      res.Start.Name,
			Found:      res.Found(),
			Path:       res.Path,
			Outcome:    res.Reason.String(),
			Expansions: res.Expansions,
			ElapsedUs:  res.Elapsed.Microseconds(),
		}
	}
	return out
}

// WriteJSON encodes the report to w, indented.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Output())
}
