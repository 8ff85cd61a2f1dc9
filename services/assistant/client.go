package assistant

import (
	"context"
	"fmt"
)

// Error kinds the orchestrator distinguishes when choosing fallback text.
const (
	ErrKindNetwork   = "network"
	ErrKindProtocol  = "protocol"
	ErrKindMalformed = "malformed"
)

// GatewayError classifies a failed assistant call.
type GatewayError struct {
	Kind    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ErrKind returns the gateway error kind, or "" for non-gateway errors.
func ErrKind(err error) string {
	if ge, ok := err.(*GatewayError); ok {
		return ge.Kind
	}
	return ""
}

// SendRequest is the body of a chat turn sent to the assistant backend.
type SendRequest struct {
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	Content        string `json:"content"`
	ContentType    int    `json:"content_type"`
}

// Response is one assistant reply. Object and FlightObject carry opaque
// JSON blobs that are parsed on demand by the catalog engine.
type Response struct {
	ConversationID      string `json:"conversation_id"`
	Content             string `json:"content"`
	Object              string `json:"object,omitempty"`
	FlightObject        string `json:"flight_object,omitempty"`
	AccommodationObject string `json:"accommodation_object,omitempty"`
	CreatedAt           string `json:"created_at"`
	IsUser              bool   `json:"is_user"`
}

// Client is the boundary to the remote assistant/reservation backend.
type Client interface {
	// CreateConversation mints a new conversation id on the backend.
	CreateConversation(ctx context.Context, token string) (string, error)
	// Send submits user free text and returns the assistant reply.
	Send(ctx context.Context, token string, req SendRequest) (*Response, error)
}
