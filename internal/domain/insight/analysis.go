// Package insight holds the AI-generated analysis model produced from a
// sales digest.
package insight

import "github.com/salespulse/backend/internal/domain/shared"

// ErrMalformedAnalysis is returned when a model response cannot be
// decoded into the expected analysis shape.
var ErrMalformedAnalysis = shared.NewDomainError("MALFORMED_ANALYSIS", "AI response did not contain a valid analysis")

// Analysis is the structured result of an AI sales report. All slices
// are free-text bullet points; Summary is a short prose paragraph.
type Analysis struct {
	Trends      []string `json:"trends"`
	Patterns    []string `json:"patterns"`
	Predictions []string `json:"predictions"`
	Risks       []string `json:"risks"`
	Insights    []string `json:"insights"`
	Summary     string   `json:"summary"`
}

// Validate rejects an analysis with no content at all. Individual
// sections may be empty; a fully empty analysis means the model did not
// follow the requested shape.
func (a *Analysis) Validate() error {
	if len(a.Trends) == 0 && len(a.Patterns) == 0 && len(a.Predictions) == 0 &&
		len(a.Risks) == 0 && len(a.Insights) == 0 && a.Summary == "" {
		return ErrMalformedAnalysis
	}
	return nil
}
