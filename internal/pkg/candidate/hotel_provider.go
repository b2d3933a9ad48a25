package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/pkg/llm"
	"github.com/tripsmith/trip-planner-service/internal/pkg/websearch"
)

const HotelProviderName = "HotelAgent"

type rawHotel struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Country        string   `json:"country"`
	Rating         float64  `json:"rating"`
	RatingCategory string   `json:"rating_category"`
	PricePerNight  float64  `json:"price_per_night"`
	Currency       string   `json:"currency"`
	Amenities      []string `json:"amenities"`
	BookingLink    *string  `json:"booking_link"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

type HotelProvider struct {
	Name          string
	Config        Config
	SearchClients []websearch.Client
	LLM           llm.Client
	MaxResults    int
}

func NewHotelProvider(config Config, searchClients []websearch.Client, llmClient llm.Client, maxResults int) *HotelProvider {
	return &HotelProvider{
		Name:          HotelProviderName,
		Config:        config,
		SearchClients: searchClients,
		LLM:           llmClient,
		MaxResults:    maxResults,
	}
}

// Search gathers hotel candidates, applies the request's preference and
// total-stay budget filters, and returns them sorted by rating then price.
func (p *HotelProvider) Search(ctx context.Context, req dto.TripRequest) ([]dto.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Config.Timeout)
	defer cancel()

	if err := p.Config.allow(ctx, p.Name); err != nil {
		return nil, err
	}

	raws := p.collectFromSearch(ctx, req)

	if len(raws) == 0 {
		slog.InfoContext(ctx, "no search results, synthesizing hotels",
			slog.String("destination", req.Destination))
		raws = p.synthesize(ctx, req)
	}

	raws = p.applyFilters(ctx, raws, req)

	hotels := p.normalize(ctx, raws)
	if len(hotels) == 0 && len(raws) == 0 {
		// Filters may legitimately empty the list; only the no-candidates-at-all
		// case falls back to the deterministic set.
		hotels = p.normalize(ctx, p.applyFilters(ctx, p.hardcodedHotels(req), req))
	}

	sortHotels(hotels)

	return hotels, nil
}

func (p *HotelProvider) collectFromSearch(ctx context.Context, req dto.TripRequest) []rawHotel {
	query := fmt.Sprintf("hotels in %s with prices and ratings", req.Destination)

	var raws []rawHotel
	for _, client := range p.SearchClients {
		results, err := searchWithRetry(ctx, client, query, p.MaxResults, p.Config.MaxRetries)
		if err != nil {
			slog.WarnContext(ctx, "hotel search client failed",
				slog.String("client", client.Name()), slog.Any("error", err))
			continue
		}

		for _, result := range results {
			raw, err := p.extract(ctx, result)
			if err != nil {
				slog.WarnContext(ctx, "failed to extract hotel candidate", slog.Any("error", err))
				continue
			}
			raws = append(raws, raw)
		}
	}

	return raws
}

func (p *HotelProvider) extract(ctx context.Context, result websearch.Result) (rawHotel, error) {
	prompt := fmt.Sprintf(`Extract hotel information from this search result and return as JSON:

Title: %s
Content: %s

Return JSON with these fields: name, address, city, country, rating (0-5),
rating_category (budget, standard, premium, luxury), price_per_night,
currency, amenities (array of strings), booking_link, latitude, longitude.

If any field cannot be determined, use null.`, result.Title, result.Content)

	resp, err := p.LLM.Complete(ctx, llm.CompletionRequest{
		SystemMessage: "You are a hotel search expert extracting structured data.",
		Prompt:        prompt,
	})
	if err != nil {
		return rawHotel{}, fmt.Errorf("llm extraction: %w", err)
	}

	var raw rawHotel
	if err := llm.ExtractJSONObject(resp.Content, &raw); err != nil {
		return rawHotel{}, err
	}

	return raw, nil
}

func (p *HotelProvider) synthesize(ctx context.Context, req dto.TripRequest) []rawHotel {
	prompt := fmt.Sprintf(`Generate 5 realistic hotel options for a trip to %s for %d nights.

Return the hotels as a JSON array of objects with fields: name, address,
city, country, rating (0-5), rating_category (budget/standard/premium/luxury),
price_per_night, currency, amenities, booking_link, latitude, longitude.

Make the hotels realistic with nightly prices between 50 and 500 USD, rating
categories from budget to luxury, realistic amenities and a mix of hotel
types.`, req.Destination, req.TotalDays())

	resp, err := p.LLM.Complete(ctx, llm.CompletionRequest{
		SystemMessage: "You are a hotel search expert. Generate realistic hotel options based on the given criteria.",
		Prompt:        prompt,
		Temperature:   0.7,
	})
	if err != nil {
		slog.WarnContext(ctx, "hotel synthesis failed", slog.Any("error", err))
		return p.hardcodedHotels(req)
	}

	var raws []rawHotel
	if err := llm.ExtractJSONArray(resp.Content, &raws); err != nil {
		slog.WarnContext(ctx, "hotel synthesis returned no JSON", slog.Any("error", err))
		return p.hardcodedHotels(req)
	}

	return raws
}

func (p *HotelProvider) hardcodedHotels(req dto.TripRequest) []rawHotel {
	link := func(s string) *string { return &s }
	coord := func(f float64) *float64 { return &f }

	return []rawHotel{
		{
			Name: "Grand Hotel & Spa", Address: "123 Main Street",
			City: req.Destination, Country: "United States",
			Rating: 4.5, RatingCategory: "luxury", PricePerNight: 350.0, Currency: "USD",
			Amenities:   []string{"WiFi", "Pool", "Spa", "Gym", "Restaurant", "Room Service"},
			BookingLink: link("https://grandhotel.com"),
			Latitude:    coord(34.0522), Longitude: coord(-118.2437),
		},
		{
			Name: "Comfort Inn Downtown", Address: "456 Oak Avenue",
			City: req.Destination, Country: "United States",
			Rating: 3.8, RatingCategory: "standard", PricePerNight: 120.0, Currency: "USD",
			Amenities:   []string{"WiFi", "Breakfast", "Parking", "Business Center"},
			BookingLink: link("https://comfortinn.com"),
			Latitude:    coord(34.0522), Longitude: coord(-118.2437),
		},
		{
			Name: "Budget Motel Express", Address: "789 Pine Street",
			City: req.Destination, Country: "United States",
			Rating: 2.5, RatingCategory: "budget", PricePerNight: 65.0, Currency: "USD",
			Amenities:   []string{"WiFi", "Parking"},
			BookingLink: link("https://budgetmotel.com"),
			Latitude:    coord(34.0522), Longitude: coord(-118.2437),
		},
		{
			Name: "Boutique Hotel Central", Address: "321 Elm Street",
			City: req.Destination, Country: "United States",
			Rating: 4.2, RatingCategory: "premium", PricePerNight: 220.0, Currency: "USD",
			Amenities:   []string{"WiFi", "Bar", "Restaurant", "Concierge", "Valet Parking"},
			BookingLink: link("https://boutiquehotel.com"),
			Latitude:    coord(34.0522), Longitude: coord(-118.2437),
		},
		{
			Name: "Resort & Conference Center", Address: "654 Beach Boulevard",
			City: req.Destination, Country: "United States",
			Rating: 4.7, RatingCategory: "luxury", PricePerNight: 450.0, Currency: "USD",
			Amenities:   []string{"WiFi", "Pool", "Beach Access", "Golf Course", "Spa", "Multiple Restaurants"},
			BookingLink: link("https://resort.com"),
			Latitude:    coord(34.0522), Longitude: coord(-118.2437),
		},
	}
}

// applyFilters drops candidates that bust the whole-trip budget or miss the
// requested rating/amenity preferences.
func (p *HotelProvider) applyFilters(ctx context.Context, raws []rawHotel, req dto.TripRequest) []rawHotel {
	filtered := make([]rawHotel, 0, len(raws))

	for _, raw := range raws {
		if req.Budget != nil {
			totalCost := raw.PricePerNight * float64(req.TotalDays())
			if totalCost > *req.Budget {
				continue
			}
		}

		if req.Preferences.MinRating != nil && raw.Rating < *req.Preferences.MinRating {
			continue
		}

		if len(req.Preferences.RequiredAmenities) > 0 {
			available := make(map[string]bool, len(raw.Amenities))
			for _, amenity := range raw.Amenities {
				available[amenity] = true
			}

			hasAll := true
			for _, required := range req.Preferences.RequiredAmenities {
				if !available[required] {
					hasAll = false
					break
				}
			}
			if !hasAll {
				continue
			}
		}

		filtered = append(filtered, raw)
	}

	slog.DebugContext(ctx, "applied hotel filters",
		slog.Int("remaining", len(filtered)), slog.Int("total", len(raws)))

	return filtered
}

func (p *HotelProvider) normalize(ctx context.Context, raws []rawHotel) []dto.Hotel {
	hotels := make([]dto.Hotel, 0, len(raws))

	for _, raw := range raws {
		hotel, err := p.toDTO(raw)
		if err != nil {
			slog.WarnContext(ctx, "failed to normalize hotel", slog.Any("error", err))
			continue
		}
		hotels = append(hotels, hotel)
	}

	return hotels
}

func (p *HotelProvider) toDTO(raw rawHotel) (dto.Hotel, error) {
	if raw.Rating < 0 || raw.Rating > 5 {
		return dto.Hotel{}, fmt.Errorf("rating must be between 0 and 5, got %f", raw.Rating)
	}

	category := dto.RatingStandard
	if raw.RatingCategory != "" {
		parsed, ok := dto.ParseRatingCategory(raw.RatingCategory)
		if !ok {
			return dto.Hotel{}, fmt.Errorf("unknown rating category %q", raw.RatingCategory)
		}
		category = parsed
	}

	currency := dto.CurrencyUSD
	if raw.Currency != "" {
		parsed, ok := dto.ParseCurrency(raw.Currency)
		if !ok {
			return dto.Hotel{}, fmt.Errorf("unknown currency %q", raw.Currency)
		}
		currency = parsed
	}

	name := raw.Name
	if name == "" {
		name = "Unknown"
	}

	amenities := raw.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return dto.Hotel{
		Name:           name,
		Address:        raw.Address,
		City:           raw.City,
		Country:        raw.Country,
		Rating:         raw.Rating,
		RatingCategory: category,
		PricePerNight:  raw.PricePerNight,
		Currency:       currency,
		Amenities:      amenities,
		BookingLink:    raw.BookingLink,
		Latitude:       raw.Latitude,
		Longitude:      raw.Longitude,
	}, nil
}

// sortHotels orders by rating descending, ties broken by price ascending.
func sortHotels(hotels []dto.Hotel) {
	sort.SliceStable(hotels, func(i, j int) bool {
		if hotels[i].Rating != hotels[j].Rating {
			return hotels[i].Rating > hotels[j].Rating
		}
		return hotels[i].PricePerNight < hotels[j].PricePerNight
	})
}
