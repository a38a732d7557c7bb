package core

import (
	"context"
	"fmt"
	"time"

	"github.com/mikey/resume-screener/internal/utils"
	"go.uber.org/zap"
)

// ScreeningService runs the full ingestion pipeline: list messages, classify
// attachments, extract text and facts, generate a narrative per candidate and
// parse it into the section schema. Attachments are processed sequentially;
// one attachment's failure never aborts the rest of the run.
type ScreeningService struct {
	source       MailSource
	store        AttachmentStore
	extractor    TextExtractor
	generator    *ProfileGenerator
	cache        NarrativeCache
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
	maxMessages  int
	daysFilter   int
}

// NewScreeningService creates a new screening service
func NewScreeningService(
	source MailSource,
	store AttachmentStore,
	extractor TextExtractor,
	generator *ProfileGenerator,
	cache NarrativeCache,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	maxMessages int,
	daysFilter int,
) *ScreeningService {
	if maxMessages <= 0 {
		maxMessages = 20
	}
	if daysFilter <= 0 {
		daysFilter = 30
	}
	return &ScreeningService{
		source:       source,
		store:        store,
		extractor:    extractor,
		generator:    generator,
		cache:        cache,
		logger:       logger,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
		maxMessages:  maxMessages,
		daysFilter:   daysFilter,
	}
}

// ScreenInbox runs one ingestion pass against the configured mailbox and
// returns the candidate records for every attachment that survived the
// pipeline, in message-listing order.
func (s *ScreeningService) ScreenInbox(ctx context.Context, jobDescription string) ([]CandidateRecord, error) {
	since := time.Now().AddDate(0, 0, -s.daysFilter)
	messages, err := s.source.ListResumeMessages(ctx, since, s.maxMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox messages: %w", err)
	}

	accepted := s.collectAttachments(messages)
	s.logger.Info("Accepted resume attachments",
		zap.Int("messages", len(messages)),
		zap.Int("accepted", len(accepted)))

	records := make([]CandidateRecord, 0, len(accepted))
	for _, att := range accepted {
		record, ok := s.screenAttachment(ctx, jobDescription, att)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// collectAttachments applies the classifier gates to every message and part,
// saving accepted attachments to the run-scoped store. The sender dedup set
// lives in an explicit Run object scoped to this call.
func (s *ScreeningService) collectAttachments(messages []InboundMessage) []AcceptedAttachment {
	run := NewRun()
	var accepted []AcceptedAttachment

	for _, msg := range messages {
		if !IsValidSender(msg.Sender) {
			s.logger.Debug("Skipping excluded sender", zap.String("sender", msg.Sender))
			continue
		}
		if !run.MarkSender(msg.Sender) {
			s.logger.Debug("Skipping duplicate sender", zap.String("sender", msg.Sender))
			continue
		}

		for _, att := range msg.Attachments {
			ok, reason := ClassifyAttachment(att, msg.Subject)
			if !ok {
				s.logger.Debug("Rejected attachment",
					zap.String("filename", att.Filename),
					zap.String("reason", reason))
				continue
			}

			storedName := StoredName(msg.Sender, att.Filename)
			path, saved, err := s.store.Save(storedName, att.Payload)
			if err != nil {
				s.logger.Error("Failed to save attachment",
					zap.String("filename", att.Filename),
					zap.Error(err))
				continue
			}
			if !saved {
				// Same derived name seen on an earlier run; not an error.
				s.logger.Debug("Attachment already stored, skipping",
					zap.String("stored_name", storedName))
				continue
			}

			accepted = append(accepted, AcceptedAttachment{
				StoredName: storedName,
				Path:       path,
				Filename:   att.Filename,
				Sender:     msg.Sender,
				Subject:    msg.Subject,
				Payload:    att.Payload,
			})
		}
	}
	return accepted
}

// screenAttachment carries one accepted attachment through text extraction,
// fact extraction, narrative generation and parsing. A false return means the
// attachment was skipped; no degraded record is emitted.
func (s *ScreeningService) screenAttachment(ctx context.Context, jobDescription string, att AcceptedAttachment) (CandidateRecord, bool) {
	rawText := s.extractor.ExtractText(att.Payload)
	if rawText == "" {
		s.logger.Warn("No text extracted from attachment, skipping",
			zap.String("filename", att.Filename))
		return CandidateRecord{}, false
	}

	cleaned := utils.CollapseWhitespace(rawText)
	facts := ExtractFacts(att, cleaned)

	narrative, fromCache := s.lookupNarrative(ctx, att.StoredName)
	if !fromCache {
		narrative = s.generator.Generate(ctx, jobDescription, facts)
	}

	if IsFailureNarrative(narrative) {
		s.logger.Error("Failed to generate profile, dropping candidate",
			zap.String("candidate", facts.Name),
			zap.String("narrative", narrative))
		return CandidateRecord{}, false
	}

	if s.cacheEnabled && !fromCache {
		s.cache.Set(ctx, att.StoredName, narrative, s.cacheTTL)
	}

	return CandidateRecord{
		Name:     facts.Name,
		Email:    facts.Email,
		Phone:    facts.Phone,
		Filename: att.Filename,
		Sender:   att.Sender,
		Subject:  att.Subject,
		Sections: ParseNarrative(narrative),
	}, true
}

// lookupNarrative checks the narrative cache when enabled.
func (s *ScreeningService) lookupNarrative(ctx context.Context, storedName string) (string, bool) {
	if !s.cacheEnabled || s.cache == nil {
		return "", false
	}
	narrative, ok := s.cache.Get(ctx, storedName)
	if ok {
		s.logger.Debug("Narrative cache hit", zap.String("stored_name", storedName))
	}
	return narrative, ok
}
