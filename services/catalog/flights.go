package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yihao03/Aistronaut/models"
	"github.com/yihao03/Aistronaut/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Wire shapes for the flight_object blob embedded in assistant replies.
type wireFlightLeg struct {
	FlightNumber  *string  `json:"flight_number"`
	DepartureCity *string  `json:"departure_city"`
	ArrivalCity   *string  `json:"arrival_city"`
	DepartureDate *string  `json:"departure_date"`
	DepartureTime *string  `json:"departure_time"`
	ArrivalDate   *string  `json:"arrival_date"`
	ArrivalTime   *string  `json:"arrival_time"`
	DurationHours *float64 `json:"duration_hours"`
	Stops         []string `json:"stops"`
}

type wireSelectedFlight struct {
	Airline        string        `json:"airline"`
	OutboundFlight wireFlightLeg `json:"outbound_flight"`
	ReturnFlight   wireFlightLeg `json:"return_flight"`
	Price          float64       `json:"price"`
	Currency       *string       `json:"currency"`
	Reason         string        `json:"reason"`
}

type wireTripPlan struct {
	SelectedFlight wireSelectedFlight `json:"selected_flight"`
	Mode           string             `json:"mode"`
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func convertLeg(w wireFlightLeg) models.FlightLeg {
	route := ""
	dep, arr := strOrEmpty(w.DepartureCity), strOrEmpty(w.ArrivalCity)
	if dep != "" || arr != "" {
		route = dep + " → " + arr
	}

	stops := "Direct"
	if len(w.Stops) > 0 {
		stops = fmt.Sprintf("%d stop(s) via %s", len(w.Stops), strings.Join(w.Stops, ", "))
	}

	duration := ""
	if w.DurationHours != nil {
		duration = formatDurationHours(*w.DurationHours)
	}

	return models.FlightLeg{
		FlightNumber:  strOrEmpty(w.FlightNumber),
		Route:         route,
		DepartureDate: strOrEmpty(w.DepartureDate),
		DepartureTime: strOrEmpty(w.DepartureTime),
		ArrivalDate:   strOrEmpty(w.ArrivalDate),
		ArrivalTime:   strOrEmpty(w.ArrivalTime),
		Duration:      duration,
		Stops:         stops,
	}
}

// ParseFlightOptions decodes the assistant's embedded flight payload. A
// malformed blob degrades to no options; the plain-text reply still stands.
func ParseFlightOptions(flightObject string) []models.FlightOption {
	if strings.TrimSpace(flightObject) == "" || flightObject == "null" {
		return nil
	}

	var plans []wireTripPlan
	if err := json.Unmarshal([]byte(flightObject), &plans); err != nil {
		utils.GetLogger().Warn("malformed flight payload, ignoring", zap.Error(err))
		return nil
	}

	options := make([]models.FlightOption, 0, len(plans))
	for _, plan := range plans {
		sf := plan.SelectedFlight
		currency := "USD"
		if sf.Currency != nil && *sf.Currency != "" {
			currency = *sf.Currency
		}
		options = append(options, models.FlightOption{
			ID:             "flight_" + uuid.New().String(),
			Mode:           plan.Mode,
			Airline:        sf.Airline,
			Price:          sf.Price,
			Currency:       currency,
			Reason:         sf.Reason,
			OutboundFlight: convertLeg(sf.OutboundFlight),
			ReturnFlight:   convertLeg(sf.ReturnFlight),
		})
	}
	return options
}
