// Package gmail lists resume-bearing messages through the Gmail REST API.
// The query work (attachment presence, pdf filter, after-timestamp) is pushed
// to the server; only matching messages are fetched in raw form.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mikey/resume-screener/internal/adapters/mailparse"
	"github.com/mikey/resume-screener/internal/config"
	"github.com/mikey/resume-screener/internal/core"
	"go.uber.org/zap"
)

// Source is a MailSource backed by the Gmail API.
type Source struct {
	svc    *gmail.Service
	logger *zap.Logger
}

// NewSource creates a Gmail source authenticated with a refresh token. Token
// acquisition and renewal beyond the refresh exchange are owned by the
// deployment, not this adapter.
func NewSource(ctx context.Context, cfg config.GmailConfig, logger *zap.Logger) (*Source, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, fmt.Errorf("gmail client_id, client_secret and refresh_token are required")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
		Scopes:       []string{gmail.GmailReadonlyScope},
	}
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &Source{svc: svc, logger: logger}, nil
}

// ListResumeMessages queries for messages with PDF attachments received after
// the given time and returns up to max of them, parsed into InboundMessages.
// A message that fails to fetch or parse is logged and skipped; the run
// continues.
func (s *Source) ListResumeMessages(ctx context.Context, since time.Time, max int) ([]core.InboundMessage, error) {
	query := fmt.Sprintf("has:attachment filename:pdf after:%d", since.Unix())

	res, err := s.svc.Users.Messages.List("me").Q(query).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list gmail messages: %w", err)
	}

	var messages []core.InboundMessage
	for i, m := range res.Messages {
		if i >= max {
			break
		}
		full, err := s.svc.Users.Messages.Get("me", m.Id).Format("raw").Context(ctx).Do()
		if err != nil {
			s.logger.Warn("Skipping message, fetch failed",
				zap.String("id", m.Id),
				zap.Error(err))
			continue
		}
		raw, err := base64.URLEncoding.DecodeString(full.Raw)
		if err != nil {
			raw, err = base64.RawURLEncoding.DecodeString(full.Raw)
		}
		if err != nil {
			s.logger.Warn("Skipping message, raw payload not decodable",
				zap.String("id", m.Id),
				zap.Error(err))
			continue
		}

		msg, err := mailparse.Parse(raw)
		if err != nil {
			s.logger.Warn("Skipping message, parse failed",
				zap.String("id", m.Id),
				zap.Error(err))
			continue
		}
		messages = append(messages, msg)
	}

	return messages, nil
}
