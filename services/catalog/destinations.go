package catalog

// destinationTemplate is the boilerplate behind a trip option; flights are
// zipped onto templates positionally at synthesis time.
type destinationTemplate struct {
	Destination string
	Country     string
	Title       string
	Description string
	Features    []string
	Itinerary   []string
}

var destinationTemplates = map[string][]destinationTemplate{
	"Thailand": {
		{
			Destination: "Bangkok, Thailand",
			Country:     "Thailand",
			Title:       "Vibrant City Escape",
			Description: "Dive into Bangkok's glittering temples, floating markets, and legendary street food scene.",
			Features:    []string{"Airport transfers", "Daily breakfast", "Grand Palace tour", "24/7 support"},
			Itinerary: []string{
				"Day 1: Arrival & Chao Phraya river cruise",
				"Day 2: Grand Palace & Wat Pho guided tour",
				"Day 3: Damnoen Saduak floating market",
				"Day 4: Chatuchak market & rooftop dinner",
				"Day 5: Thai cooking class in Silom",
				"Day 6: Ayutthaya day trip",
				"Day 7: Last-minute shopping & departure",
			},
		},
		{
			Destination: "Phuket, Thailand",
			Country:     "Thailand",
			Title:       "Tropical Island Paradise",
			Description: "White-sand beaches, limestone cliffs, and turquoise waters on Thailand's largest island.",
			Features:    []string{"Beachfront stay", "Phi Phi Islands cruise", "Airport transfers", "Travel insurance"},
			Itinerary: []string{
				"Day 1: Arrival & Patong Beach sunset",
				"Day 2: Phi Phi Islands speedboat tour",
				"Day 3: Big Buddha & Old Phuket Town",
				"Day 4: Phang Nga Bay sea kayaking",
				"Day 5: Beach day & Thai massage",
				"Day 6: Coral Island snorkeling",
				"Day 7: Departure with spa treatment",
			},
		},
		{
			Destination: "Chiang Mai, Thailand",
			Country:     "Thailand",
			Title:       "Northern Culture Retreat",
			Description: "Misty mountains, ancient temples, and the gentle pace of Thailand's northern capital.",
			Features:    []string{"Elephant sanctuary visit", "Temple tours", "Daily breakfast", "Night bazaar guide"},
			Itinerary: []string{
				"Day 1: Arrival & old city temple walk",
				"Day 2: Doi Suthep sunrise & hill tribe villages",
				"Day 3: Ethical elephant sanctuary",
				"Day 4: Thai cooking class on an organic farm",
				"Day 5: Sticky waterfalls & jungle trek",
				"Day 6: Sunday night market & khantoke dinner",
				"Day 7: Departure with monk blessing",
			},
		},
	},
	"Japan": {
		{
			Destination: "Tokyo, Japan",
			Country:     "Japan",
			Title:       "Neon Metropolis Adventure",
			Description: "From Shibuya's scramble to Asakusa's temples, experience old and new Japan in one city.",
			Features:    []string{"JR Pass included", "English guide", "Skip-the-line tickets", "24/7 support"},
			Itinerary: []string{
				"Day 1: Arrival & Shibuya Crossing at night",
				"Day 2: Senso-ji Temple & Tsukiji sushi tour",
				"Day 3: TeamLab & Tokyo Skytree",
				"Day 4: Day trip to Nikko shrines",
				"Day 5: Harajuku & Meiji Shrine",
				"Day 6: Akihabara & Imperial Palace gardens",
				"Day 7: Ginza shopping & departure",
			},
		},
		{
			Destination: "Kyoto, Japan",
			Country:     "Japan",
			Title:       "Cultural Heritage Journey",
			Description: "Immerse yourself in traditional Japan with historic temples, gardens, and authentic cuisine.",
			Features:    []string{"Traditional ryokan stay", "Tea ceremony", "Kimono experience", "English guide"},
			Itinerary: []string{
				"Day 1: Arrival & traditional welcome ceremony",
				"Day 2: Fushimi Inari & Kiyomizu Temple tours",
				"Day 3: Arashiyama bamboo grove & monkey park",
				"Day 4: Tea ceremony & kimono experience",
				"Day 5: Nijo Castle & Gion district",
				"Day 6: Nara deer park day trip",
				"Day 7: Departure with farewell breakfast",
			},
		},
		{
			Destination: "Osaka, Japan",
			Country:     "Japan",
			Title:       "Street Food Capital",
			Description: "Japan's kitchen serves up takoyaki, neon-lit Dotonbori nights, and castle-town history.",
			Features:    []string{"Food tour included", "Osaka Amazing Pass", "Airport transfers", "Daily breakfast"},
			Itinerary: []string{
				"Day 1: Arrival & Dotonbori food crawl",
				"Day 2: Osaka Castle & Kuromon market",
				"Day 3: Universal Studios Japan",
				"Day 4: Day trip to Kobe & Himeji Castle",
				"Day 5: Shinsekai & Tsutenkaku tower",
				"Day 6: Minoo Falls hike & onsen",
				"Day 7: Last bites & departure",
			},
		},
	},
	"South Korea": {
		{
			Destination: "Seoul, South Korea",
			Country:     "South Korea",
			Title:       "K-Culture City Break",
			Description: "Palaces, K-pop, street fashion, and late-night markets in Korea's electric capital.",
			Features:    []string{"T-money card included", "Palace tours", "Airport transfers", "24/7 support"},
			Itinerary: []string{
				"Day 1: Arrival & Myeongdong night market",
				"Day 2: Gyeongbokgung Palace & hanbok rental",
				"Day 3: Bukchon Hanok Village & Insadong",
				"Day 4: DMZ half-day tour",
				"Day 5: Gangnam & COEX aquarium",
				"Day 6: Namsan Tower & Hongdae nightlife",
				"Day 7: Departure with skincare shopping",
			},
		},
		{
			Destination: "Busan, South Korea",
			Country:     "South Korea",
			Title:       "Coastal City Escape",
			Description: "Beaches, seafood markets, and cliffside temples in Korea's breezy second city.",
			Features:    []string{"Beachfront stay", "Jagalchi market tour", "Daily breakfast", "Airport transfers"},
			Itinerary: []string{
				"Day 1: Arrival & Haeundae Beach stroll",
				"Day 2: Gamcheon Culture Village",
				"Day 3: Haedong Yonggungsa seaside temple",
				"Day 4: Jagalchi fish market & raw fish lunch",
				"Day 5: Taejongdae cliffs & cruise",
				"Day 6: Spa Land & Shinsegae Centum City",
				"Day 7: Departure with ocean views",
			},
		},
		{
			Destination: "Jeju Island, South Korea",
			Country:     "South Korea",
			Title:       "Volcanic Island Getaway",
			Description: "Lava tubes, waterfalls, and tangerine groves on Korea's honeymoon island.",
			Features:    []string{"Rental car included", "Hallasan hike guide", "Daily breakfast", "Travel insurance"},
			Itinerary: []string{
				"Day 1: Arrival & Dongmun night market",
				"Day 2: Seongsan Ilchulbong sunrise peak",
				"Day 3: Manjanggul lava tube & Woljeongri beach",
				"Day 4: Hallasan National Park hike",
				"Day 5: Cheonjeyeon Falls & Jungmun resort area",
				"Day 6: Udo Island bike loop",
				"Day 7: Tangerine picking & departure",
			},
		},
	},
	"Singapore": {
		{
			Destination: "Singapore",
			Country:     "Singapore",
			Title:       "Garden City Luxe",
			Description: "Supertrees, rooftop pools, and hawker food in the world's sleekest city-state.",
			Features:    []string{"Gardens by the Bay tickets", "Hawker food tour", "Airport transfers", "24/7 support"},
			Itinerary: []string{
				"Day 1: Arrival & Marina Bay light show",
				"Day 2: Gardens by the Bay & ArtScience Museum",
				"Day 3: Sentosa Island & cable car",
				"Day 4: Chinatown & Maxwell hawker crawl",
				"Day 5: Singapore Zoo & Night Safari",
				"Day 6: Orchard Road & rooftop bars",
				"Day 7: Jewel Changi & departure",
			},
		},
		{
			Destination: "Sentosa, Singapore",
			Country:     "Singapore",
			Title:       "Island Resort Weekend",
			Description: "Beach clubs, theme parks, and cable-car views a bridge away from downtown Singapore.",
			Features:    []string{"Universal Studios tickets", "Beach club pass", "Daily breakfast", "Airport transfers"},
			Itinerary: []string{
				"Day 1: Arrival & Siloso Beach sunset",
				"Day 2: Universal Studios Singapore",
				"Day 3: S.E.A. Aquarium & Adventure Cove",
				"Day 4: Skyline luge & beach day",
				"Day 5: Fort Siloso & cable car ride",
				"Day 6: Spa morning & Tanjong Beach Club",
				"Day 7: Departure via Jewel Changi",
			},
		},
		{
			Destination: "Singapore City & Beyond",
			Country:     "Singapore",
			Title:       "City & Culture Sampler",
			Description: "Heritage shophouses, Little India spice trails, and a dash of island time.",
			Features:    []string{"Heritage walking tours", "Peranakan dinner", "Daily breakfast", "Travel insurance"},
			Itinerary: []string{
				"Day 1: Arrival & Clarke Quay river cruise",
				"Day 2: Little India & Kampong Glam",
				"Day 3: Peranakan Joo Chiat & Katong laksa",
				"Day 4: Pulau Ubin cycling day trip",
				"Day 5: National Gallery & Lau Pa Sat satay",
				"Day 6: Botanic Gardens & Dempsey Hill",
				"Day 7: Departure with kaya toast breakfast",
			},
		},
	},
	"Malaysia": {
		{
			Destination: "Kuala Lumpur, Malaysia",
			Country:     "Malaysia",
			Title:       "Twin Towers City Break",
			Description: "Skybridges, street food, and cave temples in Malaysia's buzzing capital.",
			Features:    []string{"Petronas Towers tickets", "Batu Caves tour", "Airport transfers", "Daily breakfast"},
			Itinerary: []string{
				"Day 1: Arrival & Petronas Towers at dusk",
				"Day 2: Batu Caves & Royal Selangor visit",
				"Day 3: Merdeka Square & Central Market",
				"Day 4: Jalan Alor food night",
				"Day 5: Genting Highlands day trip",
				"Day 6: KL Forest Eco Park canopy walk",
				"Day 7: Departure with durian dare",
			},
		},
		{
			Destination: "Penang, Malaysia",
			Country:     "Malaysia",
			Title:       "Heritage Food Trail",
			Description: "George Town street art, clan jetties, and the best hawker food in Southeast Asia.",
			Features:    []string{"Street food tour", "Heritage walking tour", "Daily breakfast", "Airport transfers"},
			Itinerary: []string{
				"Day 1: Arrival & Gurney Drive hawker dinner",
				"Day 2: George Town street art walk",
				"Day 3: Kek Lok Si Temple & Penang Hill",
				"Day 4: Clan jetties & Peranakan mansion",
				"Day 5: Batu Ferringhi beach day",
				"Day 6: Tropical Spice Garden & national park",
				"Day 7: Char kway teow farewell & departure",
			},
		},
		{
			Destination: "Langkawi, Malaysia",
			Country:     "Malaysia",
			Title:       "Duty-Free Island Unwind",
			Description: "Sky bridges, mangrove cruises, and quiet beaches on the Jewel of Kedah.",
			Features:    []string{"Sky Cab tickets", "Mangrove cruise", "Beachfront stay", "Travel insurance"},
			Itinerary: []string{
				"Day 1: Arrival & Pantai Cenang sunset",
				"Day 2: Langkawi Sky Bridge & cable car",
				"Day 3: Kilim Geoforest mangrove cruise",
				"Day 4: Island-hopping boat tour",
				"Day 5: Seven Wells waterfall hike",
				"Day 6: Beach day & duty-free shopping",
				"Day 7: Departure with sunset cruise",
			},
		},
	},
}

// templatesFor returns the destination templates for a detected country, or a
// one-per-country round robin when no country was detected.
func templatesFor(country string) []destinationTemplate {
	if country != "" {
		if templates, ok := destinationTemplates[country]; ok && len(templates) > 0 {
			return templates
		}
	}
	var diversified []destinationTemplate
	for _, c := range countryOrder {
		if templates := destinationTemplates[c]; len(templates) > 0 {
			diversified = append(diversified, templates[0])
		}
	}
	return diversified
}
