// Package mailparse turns raw RFC 822 message bytes into the pipeline's
// InboundMessage: the sender header, the subject, and every attachment part
// that carried a filename, with its transfer encoding already decoded.
package mailparse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/emersion/go-message/mail"

	// Register extended charsets so non-UTF-8 messages still parse.
	_ "github.com/emersion/go-message/charset"

	"github.com/mikey/resume-screener/internal/core"
)

// Parse reads one raw MIME message. Parts that cannot be read are skipped;
// only a header-level failure is an error.
func Parse(raw []byte) (core.InboundMessage, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return core.InboundMessage{}, fmt.Errorf("failed to parse message: %w", err)
	}
	defer mr.Close()

	sender, _ := mr.Header.Text("From")
	subject, _ := mr.Header.Subject()

	msg := core.InboundMessage{
		Sender:  sender,
		Subject: subject,
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single unreadable part should not lose the rest.
			continue
		}

		filename := partFilename(part)
		if filename == "" {
			continue
		}
		payload, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}
		msg.Attachments = append(msg.Attachments, core.AttachmentCandidate{
			Filename: filename,
			Payload:  payload,
		})
	}

	return msg, nil
}

// partFilename returns a part's filename whether it was sent as a proper
// attachment or as an inline part carrying a name.
func partFilename(part *mail.Part) string {
	switch h := part.Header.(type) {
	case *mail.AttachmentHeader:
		filename, err := h.Filename()
		if err != nil {
			return ""
		}
		return filename
	case *mail.InlineHeader:
		// Inline parts occasionally carry the document under the
		// content-type name parameter instead of a disposition filename.
		if _, params, err := h.ContentType(); err == nil {
			return params["name"]
		}
	}
	return ""
}
