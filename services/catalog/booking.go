package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yihao03/Aistronaut/config"
	"github.com/yihao03/Aistronaut/models"

	"github.com/google/uuid"
)

// offerWindow is how long a booking offer stays fresh before presentation
// marks it stale. The document itself never mutates.
const offerWindow = 72 * time.Hour

// Share of the flight price allocated to the outbound leg; the return leg
// takes the remainder.
const outboundShare = 0.6

func surcharge() float64 {
	if config.AppConfig.BookingSurcharge > 0 {
		return config.AppConfig.BookingSurcharge
	}
	return 150
}

// splitRoute breaks a "CityA → CityB" route into its endpoints.
func splitRoute(route string) (string, string) {
	parts := strings.SplitN(route, "→", 2)
	if len(parts) != 2 {
		return strings.TrimSpace(route), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func bookingLeg(leg models.FlightLeg, airline string, price float64) models.BookingFlight {
	dep, arr := splitRoute(leg.Route)
	return models.BookingFlight{
		ID:        "leg_" + uuid.New().String(),
		Airline:   airline,
		FlightNo:  leg.FlightNumber,
		Departure: dep,
		Arrival:   arr,
		Date:      leg.DepartureDate,
		Time:      leg.DepartureTime,
		Duration:  leg.Duration,
		Price:     price,
	}
}

// formatMoney renders an amount as a currency string with thousands grouping.
func formatMoney(amount float64, currency string) string {
	whole := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(whole, ".")
	intPart, fracPart := whole[:dot], whole[dot:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	symbol := currency + " "
	if currency == "USD" || currency == "" {
		symbol = "$"
	}
	return symbol + grouped.String() + fracPart
}

// BuildBookingDetails assembles the final reviewable booking document from a
// chosen trip and accommodation. The trip's flight dates are authoritative
// for the nights count; the accommodation's stored nights are ignored.
// Inputs are never mutated.
func BuildBookingDetails(trip *models.TripOption, accom *models.AccommodationOption, now time.Time) (*models.BookingDetails, error) {
	if trip == nil {
		return nil, errors.New("no trip selected for booking")
	}
	if accom == nil {
		return nil, errors.New("no accommodation selected for booking")
	}

	flight := trip.FlightInfo
	nights := tripNights(flight)

	outboundPrice := flight.Price * outboundShare
	returnPrice := flight.Price - outboundPrice

	total := outboundPrice + returnPrice + accom.PricePerNight*float64(nights) + surcharge()

	currency := flight.Currency
	if currency == "" {
		currency = "USD"
	}

	inclusions := []string{
		"Round-trip flights",
		fmt.Sprintf("%d nights accommodation", nights),
		"Airport transfers",
		"Travel insurance",
		"24/7 customer support",
	}
	inclusions = append(inclusions, trip.Features...)

	terms := []string{
		"Valid passport required (6+ months)",
		"Full payment required within 24 hours",
		"Cancellation: 50% refund if cancelled 7+ days before travel",
		"Prices subject to availability and currency fluctuations",
	}

	finalAccom := *accom
	finalAccom.Nights = nights
	finalAccom.TotalPrice = accom.PricePerNight * float64(nights)
	finalAccom.CheckIn = flight.OutboundFlight.ArrivalDate
	finalAccom.CheckOut = flight.ReturnFlight.DepartureDate

	returnLeg := bookingLeg(flight.ReturnFlight, flight.Airline, returnPrice)

	details := &models.BookingDetails{
		ID:             "booking_" + uuid.New().String(),
		PackageID:      trip.ID,
		PackageTitle:   fmt.Sprintf("%s - %s", trip.Title, trip.Destination),
		TotalPrice:     formatMoney(total, currency),
		TotalAmount:    total,
		Currency:       currency,
		ValidUntil:     now.Add(offerWindow),
		OutboundFlight: bookingLeg(flight.OutboundFlight, flight.Airline, outboundPrice),
		ReturnFlight:   &returnLeg,
		Accommodation:  finalAccom,
		Inclusions:     inclusions,
		Terms:          terms,
	}
	return details, nil
}
