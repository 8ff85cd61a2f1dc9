package catalog

import (
	"github.com/yihao03/Aistronaut/models"
	"github.com/yihao03/Aistronaut/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxTripOptions = 3

// tripNights derives the stay length from a flight's on-the-ground window:
// outbound arrival through return departure.
func tripNights(flight models.FlightOption) int {
	nights := Nights(flight.OutboundFlight.ArrivalDate, flight.ReturnFlight.DepartureDate)
	if flight.ReturnFlight.DepartureDate < flight.OutboundFlight.ArrivalDate {
		utils.GetLogger().Warn("return departs before outbound arrives, flooring nights",
			zap.String("arrival", flight.OutboundFlight.ArrivalDate),
			zap.String("departure", flight.ReturnFlight.DepartureDate))
	}
	return nights
}

// BuildTripOptions zips flight candidates onto destination templates. A
// detected country selects its templates exclusively; otherwise one template
// per supported country diversifies the catalog. At most 3 options.
func BuildTripOptions(flights []models.FlightOption, country string, estimator PriceEstimator) []models.TripOption {
	templates := templatesFor(country)

	n := len(flights)
	if len(templates) < n {
		n = len(templates)
	}
	if n > maxTripOptions {
		n = maxTripOptions
	}

	trips := make([]models.TripOption, 0, n)
	for i := 0; i < n; i++ {
		flight := flights[i]
		tmpl := templates[i]

		nights := tripNights(flight)
		itinerary := tmpl.Itinerary
		if len(itinerary) > nights+1 {
			itinerary = itinerary[:nights+1]
		}

		total := flight.Price + estimator.NightlyEstimate()*float64(nights) + estimator.ActivitiesEstimate()

		trips = append(trips, models.TripOption{
			ID:          "trip_" + uuid.New().String(),
			Title:       tmpl.Title,
			Destination: tmpl.Destination,
			Country:     tmpl.Country,
			Duration:    DurationString(nights),
			Description: tmpl.Description,
			Features:    tmpl.Features,
			Itinerary:   itinerary,
			FlightInfo:  flight,
			TotalPrice:  total,
			Currency:    flight.Currency,
		})
	}
	return trips
}
