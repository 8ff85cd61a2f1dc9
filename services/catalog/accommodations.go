package catalog

import (
	"fmt"

	"github.com/yihao03/Aistronaut/models"

	"github.com/google/uuid"
)

type accommodationTier struct {
	Tier        string
	NameFormat  string
	Type        string
	Rating      float64
	RoomType    string
	Description string
	Amenities   []string
}

var accommodationTiers = []accommodationTier{
	{
		Tier:        TierLuxury,
		NameFormat:  "%s Grand Resort & Spa",
		Type:        "5-star Resort",
		Rating:      4.8,
		RoomType:    "Deluxe Suite with View",
		Description: "Flagship five-star property with full spa, fine dining, and concierge service.",
		Amenities:   []string{"Infinity Pool", "Full-Service Spa", "Fine Dining", "Concierge", "Airport Limousine", "Fitness Center"},
	},
	{
		Tier:        TierBoutique,
		NameFormat:  "The %s Boutique Hotel",
		Type:        "4-star Boutique Hotel",
		Rating:      4.5,
		RoomType:    "Premium Double Room",
		Description: "Characterful four-star stay in the heart of the neighborhood, breakfast included.",
		Amenities:   []string{"Rooftop Bar", "Daily Breakfast", "Free WiFi", "Swimming Pool", "Laundry Service"},
	},
	{
		Tier:        TierEconomy,
		NameFormat:  "%s City Hotel",
		Type:        "3-star Hotel",
		Rating:      4.0,
		RoomType:    "Standard Double Room",
		Description: "Clean, comfortable, and well-located base for exploring on a budget.",
		Amenities:   []string{"Free WiFi", "Air Conditioning", "24h Front Desk", "Luggage Storage"},
	},
}

// BuildAccommodationOptions produces exactly one option per tier for the
// given destination and date range. Nights derive from the check-in/check-out
// pair independently of any trip state.
func BuildAccommodationOptions(destination, checkIn, checkOut string, estimator PriceEstimator) []models.AccommodationOption {
	nights := Nights(checkIn, checkOut)

	options := make([]models.AccommodationOption, 0, len(accommodationTiers))
	for _, tier := range accommodationTiers {
		rate := estimator.TierNightlyRate(tier.Tier)
		options = append(options, models.AccommodationOption{
			ID:            "accom_" + uuid.New().String(),
			Name:          fmt.Sprintf(tier.NameFormat, destination),
			Type:          tier.Type,
			Rating:        tier.Rating,
			Location:      destination,
			Description:   tier.Description,
			Amenities:     tier.Amenities,
			PricePerNight: rate,
			TotalPrice:    rate * float64(nights),
			Currency:      "USD",
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			RoomType:      tier.RoomType,
			Guests:        2,
			Nights:        nights,
		})
	}
	return options
}
