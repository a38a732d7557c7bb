package factory

import (
	"context"
	"fmt"

	"github.com/mikey/resume-screener/internal/adapters/gmail"
	"github.com/mikey/resume-screener/internal/adapters/imapsource"
	"github.com/mikey/resume-screener/internal/config"
	"github.com/mikey/resume-screener/internal/core"
	"go.uber.org/zap"
)

// SourceFactory creates mail sources based on configuration
type SourceFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSourceFactory creates a new mail source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger) *SourceFactory {
	return &SourceFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateMailSource creates a mail source based on the configuration
func (f *SourceFactory) CreateMailSource() (core.MailSource, error) {
	provider := f.cfg.GetString("mail.provider")

	switch provider {
	case "gmail":
		return gmail.NewSource(context.Background(), f.cfg.GetGmail(), f.logger)
	case "imap":
		return imapsource.NewSource(f.cfg.GetIMAP(), f.logger)
	default:
		return nil, fmt.Errorf("unsupported mail provider: %s", provider)
	}
}
