package transcript

import "encoding/json"

// Role identifies the conversational role of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Utterance is a single extracted speaker/content pair, produced transiently
// by an extractor before role classification. Content carries the spoken text
// without the leading "Speaker:" prefix.
type Utterance struct {
	Speaker string
	Content string
}

// Message is the unit of the CMJ (Chat-Messages-JSON) representation. Role is
// derived from Name by classification and is not required on input.
type Message struct {
	Role    Role   `json:"role"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Conversation is an ordered sequence of messages. Order reflects turn order
// in the source document exactly; no conversion may reorder turns.
type Conversation []Message

// MarshalCMJ encodes a conversation as a CMJ JSON array.
func MarshalCMJ(c Conversation) ([]byte, error) {
	if c == nil {
		c = Conversation{}
	}
	return json.Marshal(c)
}

// UnmarshalCMJ decodes a CMJ JSON array into a conversation. Unknown fields
// are ignored; role is accepted as-is when present.
func UnmarshalCMJ(data []byte) (Conversation, error) {
	var c Conversation
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}
