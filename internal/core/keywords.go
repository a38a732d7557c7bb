package core

import "strings"

// keywordDomain is one entry of the fixed screening taxonomy. Declaration
// order is the order matched terms are reported in.
type keywordDomain struct {
	Domain string
	Terms  []string
}

var keywordTaxonomy = []keywordDomain{
	{"data_analytics", []string{"Python", "SQL", "Tableau", "Presto", "Redshift", "PySpark", "Data Analysis", "ETL", "Dashboard"}},
	{"data_quality", []string{"Data Governance", "Data Profiling", "Data Validation", "DQ Tools", "Quality Metrics", "Data Cleansing"}},
	{"machine_learning", []string{"Python", "TensorFlow", "PyTorch", "Data Science", "AI", "Machine Learning", "NLP", "Keras"}},
	{"business_intelligence", []string{"Power BI", "Tableau", "Qlik", "Looker", "Data Visualization", "KPIs", "Metrics"}},
	{"cloud", []string{"AWS", "Azure", "GCP", "DevOps", "CI/CD", "Kubernetes", "Docker", "Terraform"}},
}

// MatchKeywords scores cleaned resume text against the domain taxonomy.
// Matching is case-insensitive substring containment. Domains with no matched
// term are omitted from the result entirely; matched terms keep the taxonomy's
// declared order, not their order of appearance in the text.
func MatchKeywords(text string) map[string][]string {
	matches := make(map[string][]string)
	lower := strings.ToLower(text)
	for _, d := range keywordTaxonomy {
		for _, term := range d.Terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				matches[d.Domain] = append(matches[d.Domain], term)
			}
		}
	}
	return matches
}
