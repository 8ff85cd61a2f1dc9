package models

// ChatSession is the transient selection state for one conversation. It is
// owned by the chat orchestrator and keyed by conversation id, never held as
// process-wide state, so concurrent conversations cannot cross-contaminate.
type ChatSession struct {
	ConversationID       string               `json:"conversation_id"`
	CurrentFlight        *FlightOption        `json:"current_flight,omitempty"`
	CurrentTrip          *TripOption          `json:"current_trip,omitempty"`
	CurrentAccommodation *AccommodationOption `json:"current_accommodation,omitempty"`
	CurrentBooking       *BookingDetails      `json:"current_booking,omitempty"`
	BookingInFlight      bool                 `json:"booking_in_flight"`
}
