package core

// InboundMessage is one mail message as delivered by a mail source: the raw
// sender header, the subject, and the attachment parts that carried a filename.
type InboundMessage struct {
	Sender      string
	Subject     string
	Attachments []AttachmentCandidate
}

// AttachmentCandidate is a single attachment part awaiting classification.
type AttachmentCandidate struct {
	Filename string
	Payload  []byte
}

// AcceptedAttachment is an attachment that passed classification and was
// written to the run-scoped store under its derived name.
type AcceptedAttachment struct {
	StoredName string
	Path       string
	Filename   string
	Sender     string
	Subject    string
	Payload    []byte
}

// ExtractedFacts are the structured facts derived from one accepted
// attachment's cleaned text plus its sender header.
type ExtractedFacts struct {
	Name        string
	Email       string
	Phone       string
	CleanedText string
	Keywords    map[string][]string
}

// ParsedSections is the fixed schema a generator narrative is parsed into.
// Every string field is always populated, degrading to "" when its marker was
// missing; the two scores stay nil when the embedded JSON could not be read.
// The field names are a stable output contract.
type ParsedSections struct {
	BasicInfo           string `json:"basic_info"`
	StrengthsWeaknesses string `json:"strengths_weaknesses"`
	HRSummary           string `json:"hr_summary"`
	Justification       string `json:"justification"`
	Recommendation      string `json:"recommendation"`
	ATSJSON             string `json:"ats_json"`
	InterviewQuestions  string `json:"interview_questions"`
	ATSScore            *int   `json:"ats_score"`
	HRScore             *int   `json:"hr_score"`
}

// CandidateRecord is the externally visible unit produced by a screening run,
// one per attachment that survived text extraction and narrative generation.
type CandidateRecord struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Filename string         `json:"filename"`
	Sender   string         `json:"sender"`
	Subject  string         `json:"subject"`
	Sections ParsedSections `json:"sections"`
}
