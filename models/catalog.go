package models

import "time"

// TravelOption is the legacy flat package option kept for older transcripts.
type TravelOption struct {
	ID          string   `json:"id" bson:"id"`
	Title       string   `json:"title" bson:"title"`
	Destination string   `json:"destination" bson:"destination"`
	Duration    string   `json:"duration" bson:"duration"`
	Price       string   `json:"price" bson:"price"`
	Description string   `json:"description" bson:"description"`
	Features    []string `json:"features" bson:"features"`
	Itinerary   []string `json:"itinerary" bson:"itinerary"`
}

// FlightLeg describes one direction of a round trip.
type FlightLeg struct {
	FlightNumber  string `json:"flight_number" bson:"flight_number"`
	Route         string `json:"route" bson:"route"`
	DepartureDate string `json:"departure_date" bson:"departure_date"`
	DepartureTime string `json:"departure_time" bson:"departure_time"`
	ArrivalDate   string `json:"arrival_date" bson:"arrival_date"`
	ArrivalTime   string `json:"arrival_time" bson:"arrival_time"`
	Duration      string `json:"duration" bson:"duration"`
	Stops         string `json:"stops" bson:"stops"`
}

// FlightOption is one flight candidate returned by the assistant, tagged with
// a travel-pace mode (chill, moderate, intense).
type FlightOption struct {
	ID             string    `json:"id" bson:"id"`
	Mode           string    `json:"mode" bson:"mode"`
	Airline        string    `json:"airline" bson:"airline"`
	Price          float64   `json:"price" bson:"price"`
	Currency       string    `json:"currency" bson:"currency"`
	Reason         string    `json:"reason" bson:"reason"`
	OutboundFlight FlightLeg `json:"outbound_flight" bson:"outbound_flight"`
	ReturnFlight   FlightLeg `json:"return_flight" bson:"return_flight"`
}

// TripOption pairs a flight with a destination package.
type TripOption struct {
	ID          string       `json:"id" bson:"id"`
	Title       string       `json:"title" bson:"title"`
	Destination string       `json:"destination" bson:"destination"`
	Country     string       `json:"country" bson:"country"`
	Duration    string       `json:"duration" bson:"duration"`
	Description string       `json:"description" bson:"description"`
	Features    []string     `json:"features" bson:"features"`
	Itinerary   []string     `json:"itinerary" bson:"itinerary"`
	FlightInfo  FlightOption `json:"flight_info" bson:"flight_info"`
	TotalPrice  float64      `json:"total_price" bson:"total_price"`
	Currency    string       `json:"currency" bson:"currency"`
}

// AccommodationOption is one stay candidate for a trip's date range.
type AccommodationOption struct {
	ID            string   `json:"id" bson:"id"`
	Name          string   `json:"name" bson:"name"`
	Type          string   `json:"type" bson:"type"`
	Rating        float64  `json:"rating" bson:"rating"`
	Location      string   `json:"location" bson:"location"`
	Description   string   `json:"description" bson:"description"`
	Amenities     []string `json:"amenities" bson:"amenities"`
	PricePerNight float64  `json:"price_per_night" bson:"price_per_night"`
	TotalPrice    float64  `json:"total_price" bson:"total_price"`
	Currency      string   `json:"currency" bson:"currency"`
	CheckIn       string   `json:"check_in" bson:"check_in"`
	CheckOut      string   `json:"check_out" bson:"check_out"`
	RoomType      string   `json:"room_type" bson:"room_type"`
	Guests        int      `json:"guests" bson:"guests"`
	Nights        int      `json:"nights" bson:"nights"`
}

// BookingFlight is a flight leg rendered for a booking document.
type BookingFlight struct {
	ID        string  `json:"id" bson:"id"`
	Airline   string  `json:"airline" bson:"airline"`
	FlightNo  string  `json:"flight_number" bson:"flight_number"`
	Departure string  `json:"departure" bson:"departure"`
	Arrival   string  `json:"arrival" bson:"arrival"`
	Date      string  `json:"date" bson:"date"`
	Time      string  `json:"time" bson:"time"`
	Duration  string  `json:"duration" bson:"duration"`
	Price     float64 `json:"price" bson:"price"`
}

// BookingDetails is the final reviewable booking document. ValidUntil marks
// when the offer goes stale; staleness is checked at presentation time, the
// document itself never mutates.
type BookingDetails struct {
	ID             string              `json:"id" bson:"id"`
	PackageID      string              `json:"package_id" bson:"package_id"`
	PackageTitle   string              `json:"package_title" bson:"package_title"`
	TotalPrice     string              `json:"total_price" bson:"total_price"`
	TotalAmount    float64             `json:"total_amount" bson:"total_amount"`
	Currency       string              `json:"currency" bson:"currency"`
	ValidUntil     time.Time           `json:"valid_until" bson:"valid_until"`
	OutboundFlight BookingFlight       `json:"outbound_flight" bson:"outbound_flight"`
	ReturnFlight   *BookingFlight      `json:"return_flight,omitempty" bson:"return_flight,omitempty"`
	Accommodation  AccommodationOption `json:"accommodation" bson:"accommodation"`
	Inclusions     []string            `json:"inclusions" bson:"inclusions"`
	Terms          []string            `json:"terms" bson:"terms"`
}
