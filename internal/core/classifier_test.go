package core

import (
	"strings"
	"testing"
)

// TestIsValidSender verifies the automated-sender exclusion gate.
func TestIsValidSender(t *testing.T) {
	tests := []struct {
		sender string
		want   bool
	}{
		{"John Doe <john.doe@example.com>", true},
		{"newsletter@x.com", false},
		{"Weekly Newsletter <digest@corp.com>", false},
		{"noreply@jobs.example.com", false},
		{"DO-NOT-REPLY@bank.com", false},
		{"system@monitoring.io", false},
		{"alerts@pager.example.com", false},
		{"automation@ci.example.com", false},
		{"jane_smith@gmail.com", true},
	}

	for _, tt := range tests {
		if got := IsValidSender(tt.sender); got != tt.want {
			t.Errorf("IsValidSender(%q) = %v, want %v", tt.sender, got, tt.want)
		}
	}
}

// TestRunMarkSender verifies that the first message from a sender wins and
// every later one is rejected for the rest of the run.
func TestRunMarkSender(t *testing.T) {
	run := NewRun()

	if !run.MarkSender("john@example.com") {
		t.Fatal("first MarkSender = false, want true")
	}
	if run.MarkSender("john@example.com") {
		t.Error("second MarkSender = true, want false")
	}
	if !run.MarkSender("jane@example.com") {
		t.Error("MarkSender for a new sender = false, want true")
	}

	// A fresh run starts with an empty dedup set.
	if !NewRun().MarkSender("john@example.com") {
		t.Error("MarkSender on a fresh run = false, want true")
	}
}

// TestIsResumeFile verifies the topical and exclusion vocabularies.
func TestIsResumeFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		subject  string
		want     bool
	}{
		{"resume in filename", "John_Resume.pdf", "Hello", true},
		{"cv in filename", "jane_cv.pdf", "Hello", true},
		{"resume in subject only", "attachment1.pdf", "My resume for the role", true},
		{"application in subject", "file.pdf", "Job Application", true},
		{"no match anywhere", "scan001.pdf", "Meeting notes", false},
		{"excluded term wins over subject", "insurance_claim.pdf", "Job application", false},
		{"excluded term wins over filename", "resume_form.pdf", "My resume", false},
		{"case insensitive", "JOHN_RESUME.PDF", "", true},
		{"biodata term", "biodata_2024.pdf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsResumeFile(tt.filename, tt.subject); got != tt.want {
				t.Errorf("IsResumeFile(%q, %q) = %v, want %v", tt.filename, tt.subject, got, tt.want)
			}
		})
	}
}

// TestClassifyAttachment verifies the pdf gate on top of the topical match.
func TestClassifyAttachment(t *testing.T) {
	ok, reason := ClassifyAttachment(AttachmentCandidate{Filename: "resume.docx"}, "My resume")
	if ok {
		t.Error("non-pdf attachment accepted")
	}
	if reason == "" {
		t.Error("rejection carried no reason")
	}

	ok, reason = ClassifyAttachment(AttachmentCandidate{Filename: "John_Resume.pdf"}, "")
	if !ok {
		t.Errorf("pdf resume rejected: %s", reason)
	}
	if reason != "" {
		t.Errorf("acceptance carried a reason: %q", reason)
	}

	ok, _ = ClassifyAttachment(AttachmentCandidate{Filename: "scan.pdf"}, "FYI")
	if ok {
		t.Error("non-resume pdf accepted")
	}
}

// TestStoredName verifies the derived store key: stable per sender, hash
// prefix below 10000, original filename preserved.
func TestStoredName(t *testing.T) {
	a := StoredName("john@example.com", "resume.pdf")
	b := StoredName("john@example.com", "resume.pdf")
	if a != b {
		t.Errorf("StoredName not stable: %q vs %q", a, b)
	}
	if !strings.HasSuffix(a, "_resume.pdf") {
		t.Errorf("StoredName %q does not keep the original filename", a)
	}

	prefix := strings.SplitN(a, "_", 2)[0]
	if len(prefix) == 0 || len(prefix) > 4 {
		t.Errorf("hash prefix %q outside the modulo-10000 range", prefix)
	}

	other := StoredName("jane@example.com", "resume.pdf")
	if a == other {
		t.Logf("hash collision between distinct senders: %q", a)
	}
}
