package domain

// Chat roles accepted from clients.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of a tutoring conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the tutor's answer plus suggested follow-ups.
type ChatReply struct {
	Response string   `json:"response"`
	Options  []string `json:"options"`
}
