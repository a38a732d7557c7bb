// Package imapsource lists resume-bearing messages from a plain IMAP mailbox.
// IMAP search cannot express an attachment filter, so the since-window is
// applied server-side and the attachment/pdf gates fall to the classifier.
package imapsource

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	"github.com/mikey/resume-screener/internal/adapters/mailparse"
	"github.com/mikey/resume-screener/internal/config"
	"github.com/mikey/resume-screener/internal/core"
	"go.uber.org/zap"
)

// Source is a MailSource backed by an IMAP mailbox. A fresh connection is
// dialed per listing; runs are infrequent enough that pooling buys nothing.
type Source struct {
	cfg    config.IMAPConfig
	logger *zap.Logger
}

// NewSource creates an IMAP source
func NewSource(cfg config.IMAPConfig, logger *zap.Logger) (*Source, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, fmt.Errorf("imap email and password are required")
	}
	return &Source{cfg: cfg, logger: logger}, nil
}

// ListResumeMessages fetches full message bodies received since the given
// time, capped to max, and parses them into InboundMessages.
func (s *Source) ListResumeMessages(ctx context.Context, since time.Time, max int) ([]core.InboundMessage, error) {
	c, err := client.DialTLS(s.cfg.Host, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to IMAP server: %w", err)
	}
	defer c.Logout()

	if err := c.Login(s.cfg.Email, s.cfg.Password); err != nil {
		return nil, fmt.Errorf("IMAP login failed: %w", err)
	}

	if _, err := c.Select(s.cfg.Folder, true); err != nil {
		return nil, fmt.Errorf("failed to select folder %q: %w", s.cfg.Folder, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.Since = since
	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("IMAP search failed: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > max {
		ids = ids[:max]
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem()}

	fetched := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, fetched)
	}()

	var messages []core.InboundMessage
	for msg := range fetched {
		body := msg.GetBody(section)
		if body == nil {
			continue
		}
		raw, err := io.ReadAll(body)
		if err != nil {
			s.logger.Warn("Skipping message, body read failed",
				zap.Uint32("seq", msg.SeqNum),
				zap.Error(err))
			continue
		}
		parsed, err := mailparse.Parse(raw)
		if err != nil {
			s.logger.Warn("Skipping message, parse failed",
				zap.Uint32("seq", msg.SeqNum),
				zap.Error(err))
			continue
		}
		messages = append(messages, parsed)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("IMAP fetch failed: %w", err)
	}
	return messages, nil
}
