package models

import "time"

// Author roles for transcript messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Payload kinds for the tagged union carried by assistant messages.
const (
	PayloadNone           = ""
	PayloadOptions        = "options"
	PayloadFlights        = "flights"
	PayloadTrips          = "trips"
	PayloadAccommodations = "accommodations"
	PayloadBooking        = "booking"
)

// DefaultConversationTitle is the placeholder used until the first user
// message supplies a real title.
const DefaultConversationTitle = "New Trip Planning"

// MessagePayload is the structured data attached to an assistant message.
// Kind names the single populated field; use the constructors to keep the
// one-payload-per-message invariant.
type MessagePayload struct {
	Kind           string                `json:"kind"`
	Options        []TravelOption        `json:"options,omitempty"`
	Flights        []FlightOption        `json:"flights,omitempty"`
	Trips          []TripOption          `json:"trips,omitempty"`
	Accommodations []AccommodationOption `json:"accommodations,omitempty"`
	Booking        *BookingDetails       `json:"booking,omitempty"`
}

func OptionsPayload(options []TravelOption) *MessagePayload {
	return &MessagePayload{Kind: PayloadOptions, Options: options}
}

func FlightsPayload(flights []FlightOption) *MessagePayload {
	return &MessagePayload{Kind: PayloadFlights, Flights: flights}
}

func TripsPayload(trips []TripOption) *MessagePayload {
	return &MessagePayload{Kind: PayloadTrips, Trips: trips}
}

func AccommodationsPayload(accommodations []AccommodationOption) *MessagePayload {
	return &MessagePayload{Kind: PayloadAccommodations, Accommodations: accommodations}
}

func BookingPayload(booking *BookingDetails) *MessagePayload {
	return &MessagePayload{Kind: PayloadBooking, Booking: booking}
}

// Message is a single immutable transcript entry.
type Message struct {
	ID            string          `json:"id" bson:"id"`
	Role          string          `json:"role" bson:"role"`
	Text          string          `json:"text" bson:"text"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
	IsErrorNotice bool            `json:"is_error_notice,omitempty" bson:"is_error_notice,omitempty"`
	Payload       *MessagePayload `json:"payload,omitempty" bson:"payload,omitempty"`
}

// ConversationInfo is the transcript header used in listings.
type ConversationInfo struct {
	ID            string    `json:"id" bson:"id"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	LastMessageAt time.Time `json:"last_message_at" bson:"last_message_at"`
	Title         string    `json:"title" bson:"title"`
	MessageCount  int       `json:"message_count" bson:"message_count"`
}

// Conversation is an ordered, append-only transcript of one booking dialogue.
type Conversation struct {
	Info     ConversationInfo `json:"info" bson:"info"`
	Messages []Message        `json:"messages" bson:"messages"`
}
