package chat

import (
	"fmt"

	"github.com/yihao03/Aistronaut/models"
)

const welcomeText = "Hi! I'm Aistronaut, your travel planning assistant. " +
	"Tell me where you'd like to go, when you're traveling, and what kind of trip you're after, " +
	"and I'll put together flights, stays, and a full itinerary for you."

const authRequiredText = "Please sign in to start planning your trip. " +
	"I can only save conversations and bookings for signed-in travelers."

const networkErrorText = "I couldn't reach the travel service just now. " +
	"Please check your connection and try sending that again."

const protocolErrorText = "The travel service returned an unexpected response. " +
	"Please try again in a moment."

const bookingDegradedText = "I had trouble putting your booking summary together. " +
	"Your selections are saved, so please pick an accommodation again and I'll retry."

const bookingFailedText = "Something went wrong while processing your booking. " +
	"No charge was made. Please try confirming again."

const cancellationText = "No problem, I've cancelled that booking request. " +
	"Nothing was charged. Feel free to pick a different option or tell me about another trip."

// errorNoticeText picks fallback copy by gateway failure class.
func errorNoticeText(kind string) string {
	if kind == "network" {
		return networkErrorText
	}
	return protocolErrorText
}

func flightPickText(flight models.FlightOption) string {
	return fmt.Sprintf("I'm interested in the %s option with %s for %s %.2f.",
		flight.Mode, flight.Airline, flight.Currency, flight.Price)
}

// flightFallbackText is the locally synthesized confirmation used when the
// gateway cannot acknowledge a flight pick.
func flightFallbackText(flight models.FlightOption) string {
	return fmt.Sprintf(
		"Great choice! I've noted the %s option with %s (%s %.2f), departing %s and returning %s. "+
			"Tell me more about what you'd like to do there and I'll suggest some trip packages.",
		flight.Mode, flight.Airline, flight.Currency, flight.Price,
		flight.OutboundFlight.DepartureDate, flight.ReturnFlight.DepartureDate)
}

func tripPickText(trip models.TripOption) string {
	return fmt.Sprintf("I'd like to book the %s package to %s.", trip.Title, trip.Destination)
}

func tripCongratsText(trip models.TripOption) string {
	return fmt.Sprintf(
		"Excellent choice! %s in %s is a fantastic pick. "+
			"Now let's find you a great place to stay for your %s trip. Here are my top recommendations:",
		trip.Title, trip.Destination, trip.Duration)
}

func accommodationPickText(accom models.AccommodationOption) string {
	return fmt.Sprintf("I'll take the %s (%s).", accom.Name, accom.RoomType)
}

func bookingReviewText(details *models.BookingDetails) string {
	return fmt.Sprintf(
		"Perfect! Here's your complete booking summary for %s. "+
			"The total comes to %s including flights, %d nights at %s, and all fees. "+
			"Review the details below and confirm when you're ready. This offer is valid until %s.",
		details.PackageTitle, details.TotalPrice,
		details.Accommodation.Nights, details.Accommodation.Name,
		details.ValidUntil.Format("Jan 2, 2006 15:04 MST"))
}

func tripsEnrichedText(content string, trips []models.TripOption) string {
	if content == "" {
		content = "Here's what I found for you."
	}
	return fmt.Sprintf("%s\n\nI've put together %d curated trip packages based on those flights. Take a look:",
		content, len(trips))
}

func confirmationText(bookingID string, trip models.TripOption, accom models.AccommodationOption, total string) string {
	return fmt.Sprintf(
		"🎉 Your booking is confirmed!\n\n"+
			"Booking reference: %s\n"+
			"Destination: %s, %s\n"+
			"Travel dates: %s to %s\n"+
			"Airline: %s\n"+
			"Stay: %s\n"+
			"Total paid: %s\n\n"+
			"A confirmation has been sent to your registered contact. Have an amazing trip!",
		bookingID, trip.Destination, trip.Country,
		trip.FlightInfo.OutboundFlight.DepartureDate, trip.FlightInfo.ReturnFlight.ArrivalDate,
		trip.FlightInfo.Airline, accom.Name, total)
}
