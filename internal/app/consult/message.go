package consult

import "time"

const (
	// SenderUser marks a message written by the patient.
	SenderUser = "user"

	// SenderAssistant marks a scripted assistant message.
	SenderAssistant = "ai"
)

// MaxMessageLength bounds a single chat message.
const MaxMessageLength = 2000

// assistantReply is the canned response sent after every user message.
const assistantReply = "Thank you for sharing that information. Based on what you've described, I'd recommend consulting with a healthcare professional for a proper evaluation. In the meantime, here are some general suggestions..."

// Message is one entry in a consultation transcript.
type Message struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category,omitempty"`
}
