package core

import (
	"strings"
	"testing"
)

// TestAcceptanceEmail verifies the shortlist template.
func TestAcceptanceEmail(t *testing.T) {
	subject, body := AcceptanceEmail("John Doe", "Data Analyst")

	if subject != "Congratulations John Doe - Application Accepted!" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "Dear John Doe,") {
		t.Errorf("body missing salutation: %q", body)
	}
	if !strings.Contains(body, "position of Data Analyst has been shortlisted") {
		t.Errorf("body missing decision line: %q", body)
	}
}

// TestRejectionEmail verifies the rejection template.
func TestRejectionEmail(t *testing.T) {
	subject, body := RejectionEmail("Jane Roe", "Data Analyst")

	if subject != "Application Update - Data Analyst" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "Dear Jane Roe,") {
		t.Errorf("body missing salutation: %q", body)
	}
	if !strings.Contains(body, "has not been shortlisted") {
		t.Errorf("body missing decision line: %q", body)
	}
}
