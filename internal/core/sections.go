package core

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// sectionCutset is trimmed from both ends of every extracted section: stray
// whitespace, colons and markdown asterisks left over from the marker line.
const sectionCutset = " :\n*"

// sectionMarker pairs an internal section key with the fixed phrase that
// starts the section in generator output. Markers are searched case-folded and
// independently; output that reorders or omits sections still parses.
type sectionMarker struct {
	key    string
	marker string
}

var sectionMarkers = []sectionMarker{
	{"basic_info", "basic information"},
	{"strengths_weaknesses", "strengths & weaknesses"},
	{"hr_summary_justification", "hr summary & justification"},
	{"recommendation", "recommendation"},
	{"ats_json", "ats evaluation json"},
	{"interview_questions", "jd-based interview questions"},
}

var (
	jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)
	subSplitPattern  = regexp.MustCompile(`(?i)\*\*HR Summary:\*\*|\*\*Justification:\*\*|HR Summary:|Justification:`)

	recommendationHeadings = []struct {
		pattern *regexp.Regexp
		heading string
	}{
		{regexp.MustCompile(`(?i)\*{0,2}\s*why select this candidate\s*:\*{0,2}`), "Why Select This Candidate"},
		{regexp.MustCompile(`(?i)\*{0,2}\s*why not select this candidate\s*:\*{0,2}`), "Why Not Select This Candidate"},
		{regexp.MustCompile(`(?i)\*{0,2}\s*additional future potential\s*:\*{0,2}`), "Additional Future Potential"},
	}
)

// span is one located section: where its marker starts, where its content
// starts, and which key it fills.
type span struct {
	markerPos    int
	contentStart int
	key          string
}

// splitSections locates every known marker in the narrative and slices the
// text into per-key contents. A section whose marker is absent keeps the empty
// string; the schema is always fully populated.
func splitSections(text string) map[string]string {
	sections := make(map[string]string, len(sectionMarkers))
	for _, m := range sectionMarkers {
		sections[m.key] = ""
	}

	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	var spans []span
	for _, m := range sectionMarkers {
		if idx := strings.Index(lower, m.marker); idx != -1 {
			spans = append(spans, span{markerPos: idx, contentStart: idx + len(m.marker), key: m.key})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].markerPos < spans[j].markerPos })

	for i, s := range spans {
		end := len(trimmed)
		if i+1 < len(spans) {
			end = spans[i+1].markerPos
		}
		sections[s.key] = strings.Trim(trimmed[s.contentStart:end], sectionCutset)
	}
	return sections
}

// recoverJSONArray pulls the first balanced-looking array literal out of
// prose: a greedy match from the first '[' to the last ']'. An empty string
// means no array was found.
func recoverJSONArray(content string) string {
	return jsonArrayPattern.FindString(content)
}

// decodeATSScores reads ats_score and hr_score from a recovered JSON array.
// Malformed JSON, an empty array, a non-object first element or non-numeric
// score values all leave the corresponding score nil; a bad model reply never
// aborts the candidate.
func decodeATSScores(jsonText string) (atsScore, hrScore *int) {
	if jsonText == "" {
		return nil, nil
	}
	var entries []map[string]interface{}
	if err := json.Unmarshal([]byte(jsonText), &entries); err != nil {
		return nil, nil
	}
	if len(entries) == 0 || entries[0] == nil {
		return nil, nil
	}
	return numericField(entries[0], "ats_score"), numericField(entries[0], "hr_score")
}

func numericField(entry map[string]interface{}, key string) *int {
	v, ok := entry[key].(float64)
	if !ok {
		return nil
	}
	n := int(v)
	return &n
}

// splitSummaryJustification re-splits the combined HR-summary/justification
// section on the bold and plain sub-heading forms. Three parts assign both;
// two parts assign whichever label word appears anywhere in the source text;
// one part means no marker fired and the whole text is the summary.
func splitSummaryJustification(text string) (summary, justification string) {
	parts := subSplitPattern.Split(text, -1)
	switch len(parts) {
	case 3:
		summary, justification = parts[1], parts[2]
	case 2:
		if strings.Contains(strings.ToLower(text), "summary") {
			summary = parts[1]
		} else {
			justification = parts[1]
		}
	default:
		summary = text
	}
	return strings.TrimSpace(summary), strings.TrimSpace(justification)
}

// StyleRecommendation rewrites the three recommendation sub-headings to a
// normalized bold-heading-on-its-own-paragraph form. Headings that already
// carry bold markup are left untouched, which makes the operation idempotent.
func StyleRecommendation(recommendation string) string {
	out := recommendation
	for _, h := range recommendationHeadings {
		heading := h.heading
		out = h.pattern.ReplaceAllStringFunc(out, func(m string) string {
			if strings.Contains(m, "*") {
				return m
			}
			return "\n\n**" + heading + ":**"
		})
	}
	return out
}

// ParseNarrative renders a raw generator narrative into the fixed section
// schema: marker split, ATS JSON recovery and score decode, the
// summary/justification sub-split, and recommendation re-markup. It never
// fails; missing pieces degrade to empty or nil fields.
func ParseNarrative(narrative string) ParsedSections {
	raw := splitSections(narrative)

	atsJSON := raw["ats_json"]
	recovered := recoverJSONArray(atsJSON)
	if recovered != "" {
		atsJSON = recovered
	}
	atsScore, hrScore := decodeATSScores(recovered)

	summary, justification := splitSummaryJustification(raw["hr_summary_justification"])

	return ParsedSections{
		BasicInfo:           raw["basic_info"],
		StrengthsWeaknesses: raw["strengths_weaknesses"],
		HRSummary:           summary,
		Justification:       justification,
		Recommendation:      StyleRecommendation(raw["recommendation"]),
		ATSJSON:             atsJSON,
		InterviewQuestions:  raw["interview_questions"],
		ATSScore:            atsScore,
		HRScore:             hrScore,
	}
}
