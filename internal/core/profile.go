package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mikey/resume-screener/internal/utils"
	"go.uber.org/zap"
)

// Generator failure sentinels. A narrative equal to or starting with one of
// these must never reach the parser; the candidate is dropped from the run.
const (
	SentinelInitFailed   = "LLM initialization failed"
	SentinelErrPrefix    = "Error generating profile: "
	SentinelExhausted    = "Failed to generate profile after multiple attempts"
	sentinelErrorStart   = "Error"
	sentinelFailureStart = "Failed"
)

// IsFailureNarrative reports whether a narrative is one of the generator
// failure sentinels rather than model output.
func IsFailureNarrative(narrative string) bool {
	return narrative == SentinelInitFailed ||
		strings.HasPrefix(narrative, sentinelErrorStart) ||
		strings.HasPrefix(narrative, sentinelFailureStart)
}

// profilePromptFormat is the frozen instruction template. Only the six
// interpolated fields vary; the section headers double as the markers the
// parser searches for.
const profilePromptFormat = `
You are a senior HR analyst and technical recruiter. Your job is to analyze the resume evidence deeply and compare it with the job description, providing uniquely detailed, non-repetitive, and actionable HR insights. Use different evidence for each section and avoid repeating sentences or phrasing.
Inputs:
Job Description: %s
Resume Text: %s
Matched Keywords: %s
Candidate Name: %s
Candidate Email: %s
Candidate Phone: %s

Output Format (use explicit section headers):
Basic Information:
- Name: %s
- Email: %s
- Phone: %s
- Total years of experience (estimate if not explicit)
- Highest education (if available)
- Most recent position and employer

Strengths & Weaknesses:
List 2-3 unique strengths and 2-3 unique weaknesses, each with distinct evidence from the resume (skills, projects, impact, achievements, missing skills, gaps, etc). Use this format:
- **Strength:** [evidence...]
- **Weakness:** [evidence...]

HR Summary & Justification:
Write a comprehensive, non-repetitive analysis (at least 3-5 lines, with specific, concrete resume evidence in each sentence), combining HR summary and justification. Start with a sub-heading **HR Summary:** and then a sub-heading **Justification:**, and then write the corresponding content for each. The HR Summary must be at least 4-6 lines, and should mention: domain expertise, technical proficiency, business acumen, teamwork, communication, project/role highlights, and unique strengths. Do not repeat phrases or evidence. The Justification must be at least 4-5 lines and reference project/role/skill evidence from the resume. Each major point must reference different evidence from the resume. Highlight both positive and negative aspects, and address business value, culture fit, and any observable upskilling or future potential.

Recommendation:
Provide a decisive recommendation in three clearly marked sections (each at least 2-3 sentences, all using different language/evidence than above):
- **Why Select This Candidate:** Reference at least two unique strengths from the resume.
- **Why Not Select This Candidate:** Reference at least two unique weaknesses or potential concerns from the resume.
- **Additional Future Potential:** Discuss what roles or upskilling would benefit this candidate and the company, referencing new evidence from the resume.

ATS Evaluation JSON:
A valid JSON array with 1 object in this format:
[
  {
    "name": "%s",
    "ats_score": [0-100],
    "hr_score": [1-10]
  }
]

JD-Based Interview Questions & Resume Match Evaluation:
Generate 4-5 highly relevant, domain-specific interview questions based on the JD. For each, rate the resume's match: [Match level: Clear / Partial / Not Evident] - [Explanation, referencing a different project, skill, or achievement from the resume for each question.]

Your output must have these sections clearly separated, each detailed and actionable, with minimal repetition.
`

// ProfileGenerator builds the structured prompt for one candidate and invokes
// the external generator with bounded retry on rate-limit failures.
type ProfileGenerator struct {
	llm           TextGenerator
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	maxAttempts   int
	backoffUnit   time.Duration
	maxResumeSize int
}

// NewProfileGenerator creates a profile generator. A nil TextGenerator is
// tolerated: every Generate call then returns the initialization sentinel.
// maxResumeSize caps the resume text interpolated into the prompt; zero means
// no cap.
func NewProfileGenerator(llm TextGenerator, textProcessor *utils.TextProcessor, logger *zap.Logger, maxAttempts int, backoffUnit time.Duration, maxResumeSize int) *ProfileGenerator {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if backoffUnit <= 0 {
		backoffUnit = time.Second
	}
	return &ProfileGenerator{
		llm:           llm,
		textProcessor: textProcessor,
		logger:        logger,
		maxAttempts:   maxAttempts,
		backoffUnit:   backoffUnit,
		maxResumeSize: maxResumeSize,
	}
}

// BuildPrompt interpolates the candidate facts into the frozen template.
func BuildPrompt(jobDescription string, facts ExtractedFacts) string {
	keywordsJSON, err := json.MarshalIndent(facts.Keywords, "", "  ")
	if err != nil {
		keywordsJSON = []byte("{}")
	}
	return fmt.Sprintf(profilePromptFormat,
		jobDescription,
		facts.CleanedText,
		string(keywordsJSON),
		facts.Name,
		facts.Email,
		facts.Phone,
		facts.Name,
		facts.Email,
		facts.Phone,
		facts.Name,
	)
}

// Generate returns the raw narrative for one candidate, or a failure sentinel.
// Rate-limited calls are retried with linearly increasing backoff; any other
// failure is terminal and reported immediately.
func (g *ProfileGenerator) Generate(ctx context.Context, jobDescription string, facts ExtractedFacts) string {
	if g.llm == nil {
		return SentinelInitFailed
	}

	if g.textProcessor != nil {
		facts.CleanedText = g.textProcessor.ProcessText(facts.CleanedText, g.maxResumeSize)
	}
	prompt := BuildPrompt(jobDescription, facts)

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		narrative, err := g.llm.Generate(ctx, prompt)
		if err == nil {
			return narrative
		}
		if isRateLimited(err) {
			wait := time.Duration(attempt+1) * 5 * g.backoffUnit
			g.logger.Warn("Generator rate limit reached, backing off",
				zap.Duration("wait", wait),
				zap.Int("attempt", attempt+1),
				zap.String("candidate", facts.Name))
			time.Sleep(wait)
			continue
		}
		return SentinelErrPrefix + err.Error()
	}
	return SentinelExhausted
}

// isRateLimited inspects a generator failure for a rate-limit marker or an
// HTTP 429 indicator.
func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate_limit") || strings.Contains(msg, "429")
}
