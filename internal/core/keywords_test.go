package core

import (
	"reflect"
	"testing"
)

// TestMatchKeywords verifies case-insensitive matching, empty-domain omission
// and taxonomy-order reporting.
func TestMatchKeywords(t *testing.T) {
	text := "Built dashboards in tableau and power bi, pipelines in python on AWS with docker."

	got := MatchKeywords(text)

	want := map[string][]string{
		"data_analytics":        {"Python", "Tableau", "Dashboard"},
		"machine_learning":      {"Python"},
		"business_intelligence": {"Power BI", "Tableau"},
		"cloud":                 {"AWS", "Docker"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchKeywords = %v, want %v", got, want)
	}

	// Domains with no hit are omitted, not present as empty slices.
	if _, ok := got["data_quality"]; ok {
		t.Error("unmatched domain data_quality present in result")
	}
}

// TestMatchKeywordsEmpty verifies that unmatched text yields an empty map.
func TestMatchKeywordsEmpty(t *testing.T) {
	got := MatchKeywords("a cover letter about gardening and cooking")
	if len(got) != 0 {
		t.Errorf("MatchKeywords on unrelated text = %v, want empty", got)
	}
}
