// Package textscan extracts speaker/utterance pairs from the platoText form,
// blocks of "Speaker: content" terminated by a blank line.
package textscan

import (
	"regexp"
	"strings"

	"github.com/hyperifyio/platoconv/internal/transcript"
)

// blockRe matches one dialogue block. The label is greedy over letters,
// digits, underscore, space and hyphen; the content is matched lazily across
// lines up to the blank-line terminator.
var blockRe = regexp.MustCompile(`(?s)([A-Za-z0-9_ -]+):(.*?)\n\n`)

// Scanner walks a platoText document and yields dialogue blocks one at a
// time, in document order. Each Scanner is independent and carries no state
// beyond its own position, so concurrent scans of separate inputs need no
// coordination. Text before the first block, or between blocks, that does not
// conform to the pattern is dropped.
type Scanner struct {
	text string
	pos  int
}

// NewScanner returns a scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next dialogue block, with speaker and content trimmed.
// The second result is false once the input is exhausted.
func (s *Scanner) Next() (transcript.Utterance, bool) {
	if s.pos >= len(s.text) {
		return transcript.Utterance{}, false
	}
	loc := blockRe.FindStringSubmatchIndex(s.text[s.pos:])
	if loc == nil {
		s.pos = len(s.text)
		return transcript.Utterance{}, false
	}
	u := transcript.Utterance{
		Speaker: strings.TrimSpace(s.text[s.pos+loc[2] : s.pos+loc[3]]),
		Content: strings.TrimSpace(s.text[s.pos+loc[4] : s.pos+loc[5]]),
	}
	s.pos += loc[1]
	return u, true
}

// ScanAll collects every dialogue block in text.
func ScanAll(text string) []transcript.Utterance {
	var out []transcript.Utterance
	sc := NewScanner(text)
	for {
		u, ok := sc.Next()
		if !ok {
			return out
		}
		out = append(out, u)
	}
}
