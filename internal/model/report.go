package model

// Summary holds the aggregate counts of a coverage run.
type Summary struct {
	TotalSourceFiles   int     `json:"total_source_files" yaml:"total_source_files"`
	TestedFiles        int     `json:"tested_files" yaml:"tested_files"`
	UntestedFiles      int     `json:"untested_files" yaml:"untested_files"`
	CoveragePercentage float64 `json:"coverage_percentage" yaml:"coverage_percentage"`
}

// AnalysisResult is the outcome of a single coverage run. Both lists keep
// traversal order.
type AnalysisResult struct {
	Summary       Summary `json:"summary" yaml:"summary"`
	UntestedFiles []Path  `json:"untested_files" yaml:"untested_files"`
	TestedFiles   []Path  `json:"tested_files" yaml:"tested_files"`
}

// NewAnalysisResult builds the result and derives its summary.
func NewAnalysisResult(tested, untested []Path) AnalysisResult {
	if tested == nil {
		tested = []Path{}
	}

	if untested == nil {
		untested = []Path{}
	}

	total := len(tested) + len(untested)

	return AnalysisResult{
		Summary: Summary{
			TotalSourceFiles:   total,
			TestedFiles:        len(tested),
			UntestedFiles:      len(untested),
			CoveragePercentage: CoveragePercentage(len(tested), total),
		},
		UntestedFiles: untested,
		TestedFiles:   tested,
	}
}

// CoveragePercentage returns tested/total*100, or 0 when total is 0.
func CoveragePercentage(tested, total int) float64 {
	if total <= 0 {
		return 0
	}

	return float64(tested) / float64(total) * 100
}
