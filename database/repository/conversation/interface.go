package conversationRepo

import "github.com/yihao03/Aistronaut/models"

// ConversationRepository is the durable, append-only transcript store. Each
// conversation is keyed by its id; a separate per-user pointer tracks the
// current conversation.
type ConversationRepository interface {
	// Create stores a new empty conversation. Creating an id that already
	// exists is idempotent and returns the existing conversation unchanged.
	Create(id, title string) (*models.Conversation, error)
	// Get returns the conversation, or nil when absent.
	Get(id string) (*models.Conversation, error)
	// Append adds a message to the transcript. An absent id is logged and
	// swallowed; transcripts are never partially written.
	Append(id string, msg models.Message) error
	// List returns all conversation headers sorted by last activity,
	// most recent first.
	List() ([]models.ConversationInfo, error)
	Delete(id string) error

	SetCurrent(userID, conversationID string) error
	GetCurrent(userID string) (string, error)
	ClearCurrent(userID string) error
}

// deriveTitle applies the first-user-message title rule: truncate to 50
// characters with an ellipsis marker. Returns "" when the message should not
// retitle the conversation.
func deriveTitle(current string, msg models.Message) string {
	if current != "" && current != models.DefaultConversationTitle {
		return ""
	}
	if msg.Role != models.RoleUser || msg.Text == "" {
		return ""
	}
	runes := []rune(msg.Text)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return msg.Text
}
