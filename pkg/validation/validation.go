package validation

import (
	"fmt"
	"strings"
)

// Level indicates which validation stage produced the result.
type Level string

const (
	LevelSchema   Level = "schema"
	LevelTopology Level = "topology"
	LevelSpatial  Level = "spatial"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding. Path names the offending project
// field or world element, e.g. "options.roadWidth" or "buildings[3]".
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Path         string   `json:"path,omitempty"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// String formats the result as "[level] path: message".
func (r Result) String() string {
	if r.Path == "" {
		return fmt.Sprintf("[%s] %s", r.Level, r.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", r.Level, r.Path, r.Message)
}

// Report is the complete validation output.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	return &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Err returns nil for a valid report, otherwise an error listing every error
// result.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.String()
	}
	return fmt.Errorf("%d validation errors: %s", len(r.Errors), strings.Join(msgs, "; "))
}

// AtLevel returns the results of every severity produced by stage l, errors
// first.
func (r *Report) AtLevel(l Level) []Result {
	var out []Result
	for _, group := range [][]Result{r.Errors, r.Warnings, r.Info} {
		for _, res := range group {
			if res.Level == l {
				out = append(out, res)
			}
		}
	}
	return out
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
