// Package classify maps speaker labels to conversational roles.
//
// Two CMJ-producing conversion paths historically disagree about where the
// assistant identity comes from: the markup path consults the configured
// machine name while the plain-text path uses a fixed literal. Both behaviors
// are kept as distinct, explicitly named policies rather than unified.
package classify

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hyperifyio/platoconv/internal/transcript"
)

// FixedAssistantName is the literal assistant identity used by the plain-text
// conversion path.
const FixedAssistantName = "MACHINA RATIOCINATRIX"

const systemLabel = "INSTRUCTIONS"

// Policy supplies the assistant identity against which speaker labels are
// matched. Implementations are read-only; classification never mutates state.
type Policy interface {
	AssistantName() string
}

// ConfiguredIdentity matches the assistant by an externally configured name,
// injected by the caller instead of read from an ambient global.
type ConfiguredIdentity struct {
	Name string
}

func (p ConfiguredIdentity) AssistantName() string { return p.Name }

// FixedIdentity matches the assistant by the fixed literal name.
type FixedIdentity struct{}

func (FixedIdentity) AssistantName() string { return FixedAssistantName }

// upper applies Unicode uppercase mapping. A cases.Caser is stateful, so a
// fresh one is taken per call to keep Classify safe for concurrent use.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Classify returns the role for a speaker label. Matching is case-insensitive:
// the label equal to the policy's assistant name is the assistant, the label
// "INSTRUCTIONS" is the system, and anything else is a user.
func Classify(label string, p Policy) transcript.Role {
	u := upper(label)
	switch {
	case u != "" && u == upper(p.AssistantName()):
		return transcript.RoleAssistant
	case u == systemLabel:
		return transcript.RoleSystem
	default:
		return transcript.RoleUser
	}
}
