// Package convert exposes the five public transcript conversions. Each
// operation is a straight composition of one extractor, the role classifier
// and one serializer; all are pure functions over their arguments.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyperifyio/platoconv/internal/classify"
	"github.com/hyperifyio/platoconv/internal/markup"
	"github.com/hyperifyio/platoconv/internal/render"
	"github.com/hyperifyio/platoconv/internal/textscan"
	"github.com/hyperifyio/platoconv/internal/transcript"
)

// ErrInvalidInput reports a caller bug: an argument the operation cannot
// accept at all. It is raised synchronously with no partial output, and
// retrying is pointless since every conversion is deterministic.
var ErrInvalidInput = errors.New("invalid input")

// HTMLToMessages converts a platoHtml document to a conversation. The
// assistant speaker is recognized by the externally configured name.
// An empty document is rejected with ErrInvalidInput.
func HTMLToMessages(html, assistantName string) (transcript.Conversation, error) {
	if html == "" {
		return nil, fmt.Errorf("%w: empty markup document", ErrInvalidInput)
	}
	records, err := markup.DOMExtractor{}.Extract(html)
	if err != nil {
		return nil, err
	}
	return toMessages(records, classify.ConfiguredIdentity{Name: assistantName}), nil
}

// HTMLToText converts a platoHtml document to platoText. An empty or
// whitespace-only document is a valid no-op yielding an empty result.
func HTMLToText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	records, err := markup.DOMExtractor{}.Extract(html)
	if err != nil {
		return "", err
	}
	return render.ToPlatoText(records), nil
}

// TextToHTML converts a platoText document to platoHtml. An empty or
// whitespace-only document is a valid no-op yielding an empty result.
func TextToHTML(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return render.ToPlatoHTML(textscan.ScanAll(text)), nil
}

// TextToMessages converts a platoText document to a conversation. The
// assistant speaker is recognized by the fixed literal identity, not the
// configured name used by HTMLToMessages; the two paths intentionally differ.
// An empty document is rejected with ErrInvalidInput; a whitespace-only one
// is accepted and simply yields no matches.
func TextToMessages(text string) (transcript.Conversation, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty text document", ErrInvalidInput)
	}
	return toMessages(textscan.ScanAll(text), classify.FixedIdentity{}), nil
}

// MessagesToText renders a conversation as platoText. A nil conversation
// yields an empty result; malformed entries are skipped, never fatal.
func MessagesToText(msgs transcript.Conversation) string {
	return render.MessagesToPlatoText(msgs)
}

func toMessages(records []transcript.Utterance, p classify.Policy) transcript.Conversation {
	out := make(transcript.Conversation, 0, len(records))
	for _, r := range records {
		out = append(out, transcript.Message{
			Role:    classify.Classify(r.Speaker, p),
			Name:    r.Speaker,
			Content: r.Content,
		})
	}
	return out
}
