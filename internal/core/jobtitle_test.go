package core

import "testing"

// TestInferJobTitle verifies the phrase patterns and their fallbacks.
func TestInferJobTitle(t *testing.T) {
	tests := []struct {
		name string
		jd   string
		want string
	}{
		{
			"position of",
			"We are hiring for the position of Data Analyst.\nResponsibilities include reporting.",
			"Data Analyst",
		},
		{
			"position for",
			"Open position for Senior BI Developer.",
			"Senior BI Developer",
		},
		{
			"looking for",
			"We are looking for a Senior ML Engineer, remote friendly.",
			"Senior ML Engineer",
		},
		{
			"short first line",
			"Data Engineer\nBuild pipelines and own the warehouse.",
			"Data Engineer",
		},
		{
			"empty",
			"",
			"Applicant",
		},
		{
			"long unstructured text",
			"This role requires deep experience across several technical domains including warehousing, orchestration and governance tooling without naming any single title up front",
			"Applicant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferJobTitle(tt.jd); got != tt.want {
				t.Errorf("InferJobTitle = %q, want %q", got, tt.want)
			}
		})
	}
}
