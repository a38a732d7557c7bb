package core

import "testing"

// TestParseSenderEmail verifies the angle-bracket, bare-address and raw
// fallback extraction order.
func TestParseSenderEmail(t *testing.T) {
	tests := []struct {
		sender string
		want   string
	}{
		{"John Doe <john.doe@example.com>", "john.doe@example.com"},
		{"<jane@x.com>", "jane@x.com"},
		{"plain bob@corp.io header", "bob@corp.io"},
		{"  carol@mail.net  ", "carol@mail.net"},
		{"not an address", "not an address"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParseSenderEmail(tt.sender); got != tt.want {
			t.Errorf("ParseSenderEmail(%q) = %q, want %q", tt.sender, got, tt.want)
		}
	}
}

// TestExtractCandidateName verifies the hash-prefix, extension and trailing
// digit stripping plus token capitalization.
func TestExtractCandidateName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"9981_John_Doe_2.pdf", "John Doe"},
		{"123_jane_smith.pdf", "Jane Smith"},
		{"mary-ann_lee.pdf", "Mary Ann Lee"},
		{"resume.pdf", "Resume"},
		{"temp_resumes/442_Bob_Brown_12.pdf", "Bob Brown"},
		{"UPPER_case_NAME.pdf", "Upper Case Name"},
		// The prefix is only stripped when the first token is all digits.
		{"john1_doe.pdf", "John1 Doe"},
	}

	for _, tt := range tests {
		if got := ExtractCandidateName(tt.path); got != tt.want {
			t.Errorf("ExtractCandidateName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

// TestCandidateNameFallbacks verifies the first-line and filename-stem
// fallbacks for filenames that reduce to nothing.
func TestCandidateNameFallbacks(t *testing.T) {
	// "4321_99.pdf" strips to an empty name, so the text is consulted.
	if got := CandidateName("4321_99.pdf", "Jane Roe"); got != "Jane Roe" {
		t.Errorf("short-text fallback = %q, want %q", got, "Jane Roe")
	}

	long := "Experienced data analyst with ten years of SQL and Python across retail and finance"
	if got := CandidateName("4321_99.pdf", long); got != "4321_99" {
		t.Errorf("long-text fallback = %q, want filename stem %q", got, "4321_99")
	}

	// A usable filename never consults the text.
	if got := CandidateName("9981_John_Doe_2.pdf", "Someone Else"); got != "John Doe" {
		t.Errorf("CandidateName = %q, want %q", got, "John Doe")
	}
}

// TestExtractContactInfo verifies the email match and the phone pattern
// priority order.
func TestExtractContactInfo(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantEmail string
		wantPhone string
	}{
		{
			"dashed phone",
			"John Doe john.doe@example.com 555-123-4567 Python SQL",
			"john.doe@example.com",
			"555-123-4567",
		},
		{
			"bare ten digits",
			"Contact: 5551234567 jane@x.io",
			"jane@x.io",
			"5551234567",
		},
		{
			"dotted phone",
			"reach me at 555.123.4567",
			ContactNotFound,
			"555.123.4567",
		},
		{
			"nothing found",
			"a resume with no contact details at all",
			ContactNotFound,
			ContactNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, phone := ExtractContactInfo(tt.text)
			if email != tt.wantEmail {
				t.Errorf("email = %q, want %q", email, tt.wantEmail)
			}
			if phone != tt.wantPhone {
				t.Errorf("phone = %q, want %q", phone, tt.wantPhone)
			}
		})
	}
}

// TestExtractFacts verifies that the sender header address beats any address
// found in the document body.
func TestExtractFacts(t *testing.T) {
	att := AcceptedAttachment{
		StoredName: "9981_John_Doe.pdf",
		Sender:     "John Doe <john@sender.com>",
	}
	text := "John Doe john@document.com 555-123-4567 Python and Tableau dashboards"

	facts := ExtractFacts(att, text)

	if facts.Name != "John Doe" {
		t.Errorf("Name = %q, want %q", facts.Name, "John Doe")
	}
	if facts.Email != "john@sender.com" {
		t.Errorf("Email = %q, want sender address %q", facts.Email, "john@sender.com")
	}
	if facts.Phone != "555-123-4567" {
		t.Errorf("Phone = %q, want %q", facts.Phone, "555-123-4567")
	}
	if facts.CleanedText != text {
		t.Error("CleanedText not carried through")
	}
	if len(facts.Keywords) == 0 {
		t.Error("Keywords empty, want taxonomy matches")
	}

	// An empty sender header falls back to the document address.
	att.Sender = ""
	facts = ExtractFacts(att, text)
	if facts.Email != "john@document.com" {
		t.Errorf("fallback Email = %q, want document address %q", facts.Email, "john@document.com")
	}
}
