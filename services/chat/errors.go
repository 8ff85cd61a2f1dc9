package chat

import "fmt"

// ChatError is a typed failure surfaced by the chat service.
type ChatError struct {
	Code    string
	Message string
}

func (e *ChatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrBusy: a send or confirm is already in flight for this conversation.
func NewBusyError(conversationID string) error {
	return &ChatError{
		Code:    "chatBusy",
		Message: fmt.Sprintf("conversation %s already has a request in flight", conversationID),
	}
}

// ErrNotAuthenticated: the caller has no valid identity.
func NewAuthError() error {
	return &ChatError{
		Code:    "notAuthenticated",
		Message: "authentication required",
	}
}

// ErrNotFound: the conversation id is unknown.
func NewNotFoundError(conversationID string) error {
	return &ChatError{
		Code:    "conversationNotFound",
		Message: fmt.Sprintf("conversation %s not found", conversationID),
	}
}

// ErrNoRetryTarget: no prior user message exists to replay.
func NewNoRetryTargetError(conversationID string) error {
	return &ChatError{
		Code:    "noRetryTarget",
		Message: fmt.Sprintf("conversation %s has no user message to retry", conversationID),
	}
}

// IsBusy reports whether the error is the busy rejection.
func IsBusy(err error) bool {
	ce, ok := err.(*ChatError)
	return ok && ce.Code == "chatBusy"
}
