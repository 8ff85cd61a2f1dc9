package chat

import (
	"context"

	"github.com/yihao03/Aistronaut/models"
)

// ChatService drives the booking dialogue. Each operation is one atomic step:
// at most one gateway call and exactly one assistant append, so transcripts
// never interleave or gap.
type ChatService interface {
	// StartConversation mints a fresh conversation and issues the welcome
	// message. An unauthenticated identity receives a transient, unpersisted
	// sign-in prompt instead.
	StartConversation(ctx context.Context, identity models.Identity) (*models.Conversation, error)

	// SendMessage submits free text, enriches the assistant reply with trip
	// options derived from any embedded flight results, and returns the
	// updated transcript. Gateway failures become in-transcript error notices.
	SendMessage(ctx context.Context, identity models.Identity, conversationID, text string) (*models.Conversation, error)

	// SelectFlight records a flight pick and acknowledges it, via the
	// gateway when reachable or with a local summary otherwise.
	SelectFlight(ctx context.Context, identity models.Identity, conversationID string, flight models.FlightOption) (*models.Conversation, error)

	// SelectTrip records a trip pick and offers accommodation options for
	// its date range. Fully local, no gateway call.
	SelectTrip(ctx context.Context, identity models.Identity, conversationID string, trip models.TripOption) (*models.Conversation, error)

	// SelectAccommodation records a stay pick and offers the assembled
	// booking for review. fallbackTrip covers the case where held trip
	// state was cleared out from under the caller.
	SelectAccommodation(ctx context.Context, identity models.Identity, conversationID string, accom models.AccommodationOption, fallbackTrip *models.TripOption) (*models.Conversation, error)

	// ConfirmBooking runs the simulated processing step and appends the
	// confirmation. Re-entry while a confirm is in flight is refused.
	ConfirmBooking(ctx context.Context, identity models.Identity, conversationID string) (*models.Conversation, error)

	// CancelBooking closes the pending booking attempt without clearing
	// selections, so the user may re-select.
	CancelBooking(ctx context.Context, identity models.Identity, conversationID string) (*models.Conversation, error)

	// RetryLastMessage replays the most recent user message through the
	// free-text send path.
	RetryLastMessage(ctx context.Context, identity models.Identity, conversationID string) (*models.Conversation, error)

	GetConversation(ctx context.Context, conversationID string) (*models.Conversation, error)
	ListConversations(ctx context.Context) ([]models.ConversationInfo, error)
	DeleteConversation(ctx context.Context, identity models.Identity, conversationID string) error
	SwitchConversation(ctx context.Context, identity models.Identity, conversationID string) (*models.Conversation, error)
	CurrentConversation(ctx context.Context, identity models.Identity) (*models.Conversation, error)
}
