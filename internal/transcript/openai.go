package transcript

import openai "github.com/sashabaranov/go-openai"

// ToChatCompletion converts a conversation to OpenAI chat completion messages
// so a transcript can be fed to an OpenAI-compatible endpoint directly. The
// speaker label travels in the Name field.
func ToChatCompletion(c Conversation) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(c))
	for _, m := range c {
		out = append(out, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Name:    m.Name,
			Content: m.Content,
		})
	}
	return out
}

// FromChatCompletion converts OpenAI chat completion messages back into a
// conversation. Roles outside {user, assistant, system} are kept verbatim;
// callers that need strict roles should reclassify by name.
func FromChatCompletion(msgs []openai.ChatCompletionMessage) Conversation {
	out := make(Conversation, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, Message{
			Role:    Role(m.Role),
			Name:    m.Name,
			Content: m.Content,
		})
	}
	return out
}
