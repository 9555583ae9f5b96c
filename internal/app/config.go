package app

// Config holds runtime configuration for one conversion run.
type Config struct {
	InputPath  string
	OutputPath string

	// Formats
	From string // html, text, cmj
	To   string // html, text, cmj, pdf

	// AssistantName is the configured machine identity used to recognize the
	// assistant speaker when converting from markup.
	AssistantName string

	Verbose bool
}
