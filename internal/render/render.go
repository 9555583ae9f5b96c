// Package render serializes extracted dialogue back into the platoHtml,
// platoText and CMJ forms. The emitted shapes are compatibility contracts:
// tag names, class names, separators and escaping must stay byte-for-byte
// stable so stored transcripts keep round-tripping.
package render

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/platoconv/internal/transcript"
)

var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// ToPlatoHTML renders utterances as dialogue paragraphs. Only '<' and '>' are
// escaped in the spoken content; trailing whitespace is trimmed from the end
// of the whole document only.
func ToPlatoHTML(records []transcript.Utterance) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(`<p class="dialogue"><span class="speaker">`)
		b.WriteString(r.Speaker)
		b.WriteString(`</span> `)
		b.WriteString(angleEscaper.Replace(r.Content))
		b.WriteString("</p>\n")
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}

// ToPlatoText renders utterances as "Speaker: content" blocks, each
// terminated by a blank line. No trailing trim.
func ToPlatoText(records []transcript.Utterance) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.Speaker)
		b.WriteString(": ")
		b.WriteString(r.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}

// MessagesToPlatoText renders a conversation as platoText blocks. Messages
// without a usable name or content are skipped with a diagnostic; a malformed
// entry never aborts the batch.
func MessagesToPlatoText(msgs transcript.Conversation) string {
	var b strings.Builder
	for i, m := range msgs {
		name := strings.TrimSpace(m.Name)
		content := strings.TrimSpace(m.Content)
		if name == "" || content == "" {
			log.Warn().Int("index", i).Msg("skipping message without name or content")
			continue
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	return b.String()
}
