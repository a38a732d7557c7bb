package core

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ContactNotFound is reported when no email or phone pattern matches.
// Downstream templating always needs a string, so absence is a sentinel, not
// an empty value.
const ContactNotFound = "Not found"

var (
	angleAddrPattern = regexp.MustCompile(`<([^>]+)>`)
	bareAddrPattern  = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	emailPattern     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Ordered by priority; the first pattern with a match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\b\(\d{3}\)\s*\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
		regexp.MustCompile(`\b\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	}

	hashPrefixPattern    = regexp.MustCompile(`^\d+_`)
	trailingDigitPattern = regexp.MustCompile(`[_\- ]?\d{1,3}$`)
	nameSeparatorPattern = regexp.MustCompile(`[_\- ]+`)
)

// ParseSenderEmail extracts just the address from a raw sender header: an
// angle-bracket-delimited address first, then any bare address, then the
// trimmed header itself.
func ParseSenderEmail(sender string) string {
	if sender == "" {
		return ""
	}
	if m := angleAddrPattern.FindStringSubmatch(sender); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := bareAddrPattern.FindString(sender); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(sender)
}

// ExtractCandidateName derives a display name from a stored filename:
// "9981_John_Doe_2.pdf" becomes "John Doe". It strips the numeric hash
// prefix, the extension and a short trailing numeric suffix, then
// capitalizes the remaining separator-delimited tokens.
func ExtractCandidateName(path string) string {
	filename := filepath.Base(path)
	if strings.Contains(filename, "_") {
		if first := strings.SplitN(filename, "_", 2)[0]; isAllDigits(first) {
			filename = hashPrefixPattern.ReplaceAllString(filename, "")
		}
	}
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	stem = trailingDigitPattern.ReplaceAllString(stem, "")

	var words []string
	for _, w := range nameSeparatorPattern.Split(stem, -1) {
		if w == "" {
			continue
		}
		words = append(words, capitalize(w))
	}
	return strings.Join(words, " ")
}

// CandidateName applies ExtractCandidateName with the documented fallbacks:
// the first line of the cleaned text when it is short enough to be a name,
// else the bare filename stem.
func CandidateName(path, cleanedText string) string {
	if name := ExtractCandidateName(path); name != "" {
		return name
	}
	firstLine := cleanedText
	if idx := strings.IndexByte(cleanedText, '\n'); idx >= 0 {
		firstLine = cleanedText[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)
	if firstLine != "" && len(firstLine) < 60 {
		return firstLine
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ExtractContactInfo pulls the first email address and the highest-priority
// phone match out of cleaned resume text.
func ExtractContactInfo(text string) (email, phone string) {
	email = ContactNotFound
	if m := emailPattern.FindString(text); m != "" {
		email = m
	}
	phone = ContactNotFound
	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			phone = m
			break
		}
	}
	return email, phone
}

// ExtractFacts assembles the structured facts for one accepted attachment.
// The sender header's address takes precedence over any address found inside
// the document body.
func ExtractFacts(att AcceptedAttachment, cleanedText string) ExtractedFacts {
	name := CandidateName(att.StoredName, cleanedText)
	docEmail, phone := ExtractContactInfo(cleanedText)
	email := ParseSenderEmail(att.Sender)
	if email == "" {
		email = docEmail
	}
	return ExtractedFacts{
		Name:        name,
		Email:       email,
		Phone:       phone,
		CleanedText: cleanedText,
		Keywords:    MatchKeywords(cleanedText),
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
