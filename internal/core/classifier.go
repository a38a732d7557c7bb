package core

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Exclusion vocabulary for automated/bulk senders. A sender whose lowercased
// header contains any of these is never processed.
var excludedSenderTerms = []string{"noreply", "do-not-reply", "system", "newsletter", "notification", "alert", "auto"}

// Terms that mark a subject or filename as resume-related.
var resumeTerms = []string{"resume", "cv", "profile", "biodata", "application", "job", "candidate", "bio data", "my details", "applying", "seeking", "submission"}

// Filename terms that override a topical match and force rejection.
var excludedFileTerms = []string{"manual", "form", "insurance", "doc", "brochure", "lab", "syllabus", "report"}

// Run holds the mutable state scoped to one ingestion run: the set of sender
// header strings already processed. It is passed through the pipeline
// explicitly and is not safe for concurrent writers.
type Run struct {
	processedSenders map[string]struct{}
}

// NewRun creates the context object for one ingestion run.
func NewRun() *Run {
	return &Run{processedSenders: make(map[string]struct{})}
}

// MarkSender records a sender as processed. It returns false if the exact
// sender string was already seen this run; the first message wins.
func (r *Run) MarkSender(sender string) bool {
	if _, ok := r.processedSenders[sender]; ok {
		return false
	}
	r.processedSenders[sender] = struct{}{}
	return true
}

// IsValidSender reports whether the sender passes the exclusion gate.
func IsValidSender(sender string) bool {
	lower := strings.ToLower(sender)
	for _, term := range excludedSenderTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}

// IsResumeFile reports whether a filename/subject pair matches the resume
// criteria: a resume term in the subject or the filename, and no excluded term
// in the filename.
func IsResumeFile(filename, subject string) bool {
	name := strings.ToLower(filename)
	subj := strings.ToLower(subject)

	subjectOK := containsAny(subj, resumeTerms)
	filenameOK := containsAny(name, resumeTerms)
	excluded := containsAny(name, excludedFileTerms)

	return (subjectOK || filenameOK) && !excluded
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// StoredName derives the store key for an attachment: a small stable hash of
// the sender prefixed to the original filename. The hash is reduced modulo
// 10000, so distinct senders can collide; a colliding name skips the save
// rather than overwriting.
func StoredName(sender, filename string) string {
	h := fnv.New32a()
	h.Write([]byte(sender))
	return fmt.Sprintf("%d_%s", h.Sum32()%10000, filename)
}

// ClassifyAttachment decides whether a single attachment candidate is a
// genuine resume. The sender gates (exclusion vocabulary, per-run dedup) are
// message-level and handled by the caller via IsValidSender and Run.MarkSender;
// this covers the filename and topical gates. The returned reason explains a
// rejection and is empty on acceptance.
func ClassifyAttachment(att AttachmentCandidate, subject string) (bool, string) {
	if !strings.HasSuffix(strings.ToLower(att.Filename), ".pdf") {
		return false, "not a pdf attachment"
	}
	if !IsResumeFile(att.Filename, subject) {
		return false, "filename and subject do not look like a resume"
	}
	return true, ""
}
