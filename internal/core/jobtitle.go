package core

import (
	"regexp"
	"strings"
)

var (
	positionOfPattern = regexp.MustCompile(`(?i)position\s+(?:of|for)\s+([A-Za-z0-9 &\-+]+)`)
	lookingForPattern = regexp.MustCompile(`(?i)looking for (?:an|a)?\s*([A-Za-z0-9 &\-+]+)`)
)

// InferJobTitle guesses a job title from free-form job description text,
// falling back to a short first line or the generic "Applicant".
func InferJobTitle(jobDescription string) string {
	if jobDescription == "" {
		return "Applicant"
	}
	jd := strings.TrimSpace(jobDescription)

	if m := positionOfPattern.FindStringSubmatch(jd); m != nil {
		return firstLine(strings.TrimSpace(m[1]))
	}
	if m := lookingForPattern.FindStringSubmatch(jd); m != nil {
		return firstLine(strings.TrimSpace(m[1]))
	}

	line := firstLine(jd)
	if len(line) < 80 {
		return strings.TrimSpace(line)
	}
	return "Applicant"
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
