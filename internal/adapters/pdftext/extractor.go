package pdftext

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Extractor converts PDF bytes to plain text, page by page in page order.
// Any failure yields an empty string; the caller treats empty text as a
// terminal skip for that attachment, never as an error.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates a new PDF text extractor
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractText extracts the plain text of every page, concatenated.
func (e *Extractor) ExtractText(data []byte) (text string) {
	defer func() {
		// The PDF parser can panic on malformed cross-reference tables;
		// treat that the same as any other unreadable document.
		if r := recover(); r != nil {
			e.logger.Warn("PDF parser panicked", zap.Any("cause", r))
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Warn("Failed to read PDF", zap.Error(err))
		return ""
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Debug("Failed to extract page text",
				zap.Int("page", i),
				zap.Error(err))
			continue
		}
		builder.WriteString(text)
	}
	return builder.String()
}
