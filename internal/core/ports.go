package core

import (
	"context"
	"time"
)

// TextGenerator defines the interface for the external text-generation model.
// It is a black box: one prompt in, one narrative out. A rate-limited call must
// surface an error whose text carries a rate-limit marker or a 429 indicator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// MailSource lists recent messages that look like they carry PDF resumes.
// Implementations apply the has-attachment/pdf/after query server-side where
// the protocol allows and cap the result to max messages, oldest window first.
type MailSource interface {
	ListResumeMessages(ctx context.Context, since time.Time, max int) ([]InboundMessage, error)
}

// AttachmentStore persists accepted attachment bytes under a derived name.
// Save reports saved=false without error when the name already exists, which
// gives repeat runs their idempotence.
type AttachmentStore interface {
	Save(storedName string, payload []byte) (path string, saved bool, err error)
}

// NarrativeCache stores generated narratives keyed by stored attachment name so
// a re-run does not re-invoke the generator for an unchanged attachment.
type NarrativeCache interface {
	Get(ctx context.Context, storedName string) (string, bool)
	Set(ctx context.Context, storedName string, narrative string, ttl time.Duration)

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}

// TextExtractor converts binary document bytes to plain text. Extraction
// failure is reported as an empty string, never an error.
type TextExtractor interface {
	ExtractText(data []byte) string
}

// DecisionNotifier delivers an accept/reject decision email to a candidate.
type DecisionNotifier interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
