package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/jobscan"
)

// extractOutput is the JSON shape of one extraction outcome.
type extractOutput struct {
	URL      string                    `json:"url"`
	Result   *jobscan.ExtractionResult `json:"result,omitempty"`
	Analysis *jobscan.Analysis         `json:"analysis,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	outcomes := deps.Pipeline.ExtractAll(deps.Ctx, c.URLs)

	outputs := make([]extractOutput, len(outcomes))
	failed := 0
	for i, outcome := range outcomes {
		outputs[i] = extractOutput{URL: outcome.URL, Result: outcome.Result}
		if outcome.Err != nil {
			outputs[i].Error = jobscan.ErrorMessage(outcome.Err)
			failed++
			continue
		}
		if c.Analyze {
			analysis, err := deps.Pipeline.Analyze(deps.Ctx, outcome.Result)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "warning: analysis failed for %s: %s\n", outcome.URL, jobscan.ErrorMessage(err))
			} else {
				outputs[i].Analysis = analysis
			}
		}
	}

	if c.JSON {
		if err := writeJSON(deps, outputs); err != nil {
			return err
		}
	} else {
		for i, out := range outputs {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			writeText(deps, out)
		}
	}

	if failed == len(outcomes) {
		return outcomes[0].Err
	}
	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "%d of %d URLs failed\n", failed, len(outcomes))
	}
	return nil
}

func writeJSON(deps *Dependencies, outputs []extractOutput) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if len(outputs) == 1 {
		return enc.Encode(outputs[0])
	}
	return enc.Encode(outputs)
}

func writeText(deps *Dependencies, out extractOutput) {
	if out.Error != "" {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", out.URL, out.Error)
		return
	}

	r := out.Result
	if r.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title:    %s\n", r.Title)
	}
	if r.Company != "" {
		fmt.Fprintf(deps.Stdout, "Company:  %s\n", r.Company)
	}
	fmt.Fprintf(deps.Stdout, "Source:   %s\n", r.Source)
	fmt.Fprintf(deps.Stdout, "URL:      %s\n", r.FinalURL)

	if len(r.Keywords) > 0 {
		terms := make([]string, len(r.Keywords))
		for i, kw := range r.Keywords {
			terms[i] = fmt.Sprintf("%s (%d)", kw.Term, kw.Frequency)
		}
		fmt.Fprintf(deps.Stdout, "Keywords: %s\n", strings.Join(terms, ", "))
	}

	fmt.Fprintf(deps.Stdout, "\n%s\n", r.Content.Text)

	if a := out.Analysis; a != nil {
		fmt.Fprintln(deps.Stdout)
		if a.SeniorityLevel != "" {
			fmt.Fprintf(deps.Stdout, "Seniority:    %s\n", a.SeniorityLevel)
		}
		if a.YearsOfExperience != "" {
			fmt.Fprintf(deps.Stdout, "Experience:   %s\n", a.YearsOfExperience)
		}
		if len(a.HardSkills) > 0 {
			fmt.Fprintf(deps.Stdout, "Hard skills:  %s\n", strings.Join(a.HardSkills, ", "))
		}
		if len(a.SoftSkills) > 0 {
			fmt.Fprintf(deps.Stdout, "Soft skills:  %s\n", strings.Join(a.SoftSkills, ", "))
		}
		if len(a.ATSKeywords) > 0 {
			fmt.Fprintf(deps.Stdout, "ATS keywords: %s\n", strings.Join(a.ATSKeywords, ", "))
		}
	}
}
