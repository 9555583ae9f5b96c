// Package markup extracts speaker/utterance pairs from the platoHtml form,
// paragraphs of `<p class="dialogue"><span class="speaker">…</span> …</p>`.
package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/platoconv/internal/transcript"
)

// Extractor defines a minimal interface for dialogue extraction strategies.
// Implementations can swap markup-parsing libraries without changing callers,
// and should be deterministic and free of side effects.
type Extractor interface {
	Extract(markup string) ([]transcript.Utterance, error)
}

// DOMExtractor parses the document into a DOM tree and selects dialogue
// paragraphs by class. Parsing state is scoped to a single call.
type DOMExtractor struct{}

// Extract returns the dialogue paragraphs of the document in order. A
// paragraph without a speaker span is skipped entirely; extraction is
// best-effort and never fails on malformed paragraphs.
func (DOMExtractor) Extract(markup string) ([]transcript.Utterance, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	var out []transcript.Utterance
	doc.Find("p.dialogue").Each(func(_ int, p *goquery.Selection) {
		span := p.Find("span.speaker").First()
		if span.Length() == 0 {
			return
		}
		raw := span.Text()
		// Remove only the first occurrence of the label text, so a speaker
		// name repeated inside the utterance is left intact.
		content := strings.Replace(p.Text(), raw, "", 1)
		content = strings.TrimPrefix(content, ":")
		out = append(out, transcript.Utterance{
			Speaker: strings.TrimSpace(raw),
			Content: strings.TrimSpace(content),
		})
	})
	return out, nil
}
