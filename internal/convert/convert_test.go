package convert

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hyperifyio/platoconv/internal/markup"
	"github.com/hyperifyio/platoconv/internal/textscan"
	"github.com/hyperifyio/platoconv/internal/transcript"
)

func TestTextToMessages_ClassifiesRoles(t *testing.T) {
	text := "MACHINA RATIOCINATRIX: Hello there.\n\nINSTRUCTIONS: Be concise.\n\nAlice: Hi!\n\n"

	got, err := TextToMessages(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := transcript.Conversation{
		{Role: transcript.RoleAssistant, Name: "MACHINA RATIOCINATRIX", Content: "Hello there."},
		{Role: transcript.RoleSystem, Name: "INSTRUCTIONS", Content: "Be concise."},
		{Role: transcript.RoleUser, Name: "Alice", Content: "Hi!"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHTMLToMessages_UsesConfiguredIdentity(t *testing.T) {
	html := `<p class="dialogue"><span class="speaker">Diotima</span>: Welcome.</p>
	<p class="dialogue"><span class="speaker">Socrates</span>: Thank you.</p>`

	got, err := HTMLToMessages(html, "Diotima")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0].Role != transcript.RoleAssistant {
		t.Fatalf("expected configured name to classify as assistant, got %q", got[0].Role)
	}
	if got[1].Role != transcript.RoleUser {
		t.Fatalf("expected user, got %q", got[1].Role)
	}
}

func TestHTMLToMessages_FixedIdentityDoesNotApply(t *testing.T) {
	// The markup path consults only the configured name; the plain-text
	// path's fixed literal has no effect here.
	html := `<p class="dialogue"><span class="speaker">MACHINA RATIOCINATRIX</span>: Hello.</p>`

	got, err := HTMLToMessages(html, "Diotima")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Role != transcript.RoleUser {
		t.Fatalf("expected user under configured identity, got %q", got[0].Role)
	}
}

func TestEmptyInput_MessageProducingPathsReject(t *testing.T) {
	if _, err := HTMLToMessages("", "Diotima"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := TextToMessages(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWhitespaceOnlyInput_AsymmetryBetweenPaths(t *testing.T) {
	// Serializing paths treat whitespace-only input as a valid empty result.
	if got, err := HTMLToText("   \n\t"); err != nil || got != "" {
		t.Fatalf("expected empty result without error, got %q err=%v", got, err)
	}
	if got, err := TextToHTML("   \n\t"); err != nil || got != "" {
		t.Fatalf("expected empty result without error, got %q err=%v", got, err)
	}
	// The text message path accepts whitespace-only input and finds nothing.
	got, err := TextToMessages("   \n\t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no messages, got %v", got)
	}
}

func TestTextToHTML_ConcreteShape(t *testing.T) {
	got, err := TextToHTML("Bob: Hi <there>\n\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<p class="dialogue"><span class="speaker">Bob</span> Hi &lt;there&gt;</p>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestHTMLToText_SkipsUnattributedParagraphs(t *testing.T) {
	html := `<p class="dialogue">No speaker here.</p>
	<p class="dialogue"><span class="speaker">Bob</span>: Hello.</p>`

	got, err := HTMLToText(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bob: Hello.\n\n" {
		t.Fatalf("expected only attributed paragraph, got %q", got)
	}
}

func TestTextToHTML_RoundTripPreservesPairs(t *testing.T) {
	text := "Socrates: What is <justice>?\n\nGlaucon: I do not know.\nTruly.\n\n"

	direct := textscan.ScanAll(text)

	html, err := TextToHTML(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reparsed, err := markup.DOMExtractor{}.Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(direct, reparsed) {
		t.Fatalf("round trip diverged:\ndirect:   %v\nreparsed: %v", direct, reparsed)
	}
}

func TestMessagesToText_RoundTripThroughTextToMessages(t *testing.T) {
	orig := transcript.Conversation{
		{Role: transcript.RoleAssistant, Name: "MACHINA RATIOCINATRIX", Content: "Hello there."},
		{Role: transcript.RoleSystem, Name: "INSTRUCTIONS", Content: "Be concise."},
		{Role: transcript.RoleUser, Name: "Alice", Content: "Hi!"},
	}

	text := MessagesToText(orig)
	back, err := TextToMessages(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(back, orig) {
		t.Fatalf("round trip diverged:\norig: %v\nback: %v", orig, back)
	}
}

func TestMessagesToText_NilIsEmpty(t *testing.T) {
	if got := MessagesToText(nil); got != "" {
		t.Fatalf("expected empty result for nil conversation, got %q", got)
	}
}
