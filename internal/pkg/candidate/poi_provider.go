package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/pkg/llm"
	"github.com/tripsmith/trip-planner-service/internal/pkg/websearch"
)

const POIProviderName = "POIAgent"

// interestAliases maps free-text interest terms onto activity categories.
var interestAliases = map[string]dto.ActivityCategory{
	"culture":       dto.ActivityCultural,
	"history":       dto.ActivityHistorical,
	"museum":        dto.ActivityCultural,
	"art":           dto.ActivityCultural,
	"nature":        dto.ActivityNature,
	"outdoor":       dto.ActivityOutdoor,
	"hiking":        dto.ActivityOutdoor,
	"beach":         dto.ActivityOutdoor,
	"sports":        dto.ActivityOutdoor,
	"food":          dto.ActivityFood,
	"restaurant":    dto.ActivityFood,
	"shopping":      dto.ActivityShopping,
	"entertainment": dto.ActivityEntertainment,
	"nightlife":     dto.ActivityEntertainment,
}

type rawPOI struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Address       *string  `json:"address"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Rating        *float64 `json:"rating"`
	PriceRange    *string  `json:"price_range"`
	DurationHours *float64 `json:"duration_hours"`
	OpeningHours  *string  `json:"opening_hours"`
	Website       *string  `json:"website"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type POIProvider struct {
	Name          string
	Config        Config
	SearchClients []websearch.Client
	LLM           llm.Client
	MaxResults    int
}

func NewPOIProvider(config Config, searchClients []websearch.Client, llmClient llm.Client, maxResults int) *POIProvider {
	return &POIProvider{
		Name:          POIProviderName,
		Config:        config,
		SearchClients: searchClients,
		LLM:           llmClient,
		MaxResults:    maxResults,
	}
}

// Search gathers POI candidates for each mapped interest category and returns
// them sorted by rating then visit duration, best first.
func (p *POIProvider) Search(ctx context.Context, req dto.TripRequest) ([]dto.PointOfInterest, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Config.Timeout)
	defer cancel()

	if err := p.Config.allow(ctx, p.Name); err != nil {
		return nil, err
	}

	interests := MapInterests(req.Preferences.Interests)

	var raws []rawPOI
	for _, interest := range interests {
		raws = append(raws, p.collectFromSearch(ctx, req, interest)...)
	}

	if len(raws) == 0 {
		slog.InfoContext(ctx, "no search results, synthesizing POIs",
			slog.String("destination", req.Destination))
		raws = p.synthesize(ctx, req, interests)
	}

	pois := p.normalize(ctx, raws, interests)
	if len(pois) == 0 {
		pois = p.normalize(ctx, p.hardcodedPOIs(req, interests), interests)
	}

	sortPOIs(pois)

	return pois, nil
}

// MapInterests resolves free-text interests onto activity categories,
// defaulting when the request carries none.
func MapInterests(interests []string) []dto.ActivityCategory {
	if len(interests) == 0 {
		return []dto.ActivityCategory{
			dto.ActivityCultural, dto.ActivityOutdoor, dto.ActivityFood, dto.ActivityEntertainment,
		}
	}

	var mapped []dto.ActivityCategory
	seen := make(map[dto.ActivityCategory]bool)

	for _, interest := range interests {
		lowered := strings.ToLower(strings.TrimSpace(interest))

		category, ok := interestAliases[lowered]
		if !ok {
			category, ok = dto.ParseActivityCategory(lowered)
		}
		if !ok || seen[category] {
			continue
		}

		seen[category] = true
		mapped = append(mapped, category)
	}

	if len(mapped) == 0 {
		return []dto.ActivityCategory{dto.ActivityCultural, dto.ActivityOutdoor}
	}

	return mapped
}

func (p *POIProvider) collectFromSearch(ctx context.Context, req dto.TripRequest, interest dto.ActivityCategory) []rawPOI {
	query := fmt.Sprintf("%s attractions and activities in %s", interest, req.Destination)

	var raws []rawPOI
	for _, client := range p.SearchClients {
		results, err := searchWithRetry(ctx, client, query, p.MaxResults, p.Config.MaxRetries)
		if err != nil {
			slog.WarnContext(ctx, "poi search client failed",
				slog.String("client", client.Name()), slog.Any("error", err))
			continue
		}

		for _, result := range results {
			raw, err := p.extract(ctx, result, interest)
			if err != nil {
				slog.WarnContext(ctx, "failed to extract poi candidate", slog.Any("error", err))
				continue
			}
			raws = append(raws, raw)
		}
	}

	return raws
}

func (p *POIProvider) extract(ctx context.Context, result websearch.Result, interest dto.ActivityCategory) (rawPOI, error) {
	prompt := fmt.Sprintf(`Extract point of interest information from this search result and return as JSON:

Title: %s
Content: %s
Interest Category: %s

Return JSON with these fields: name, description, category (one of: cultural,
outdoor, food, shopping, entertainment, historical, nature), address, city,
country, rating (0-5), price_range ($, $$, $$$ or Free), duration_hours,
opening_hours, website, latitude, longitude.

If any field cannot be determined, use null.`, result.Title, result.Content, interest)

	resp, err := p.LLM.Complete(ctx, llm.CompletionRequest{
		SystemMessage: "You are a travel expert extracting structured point of interest data.",
		Prompt:        prompt,
	})
	if err != nil {
		return rawPOI{}, fmt.Errorf("llm extraction: %w", err)
	}

	var raw rawPOI
	if err := llm.ExtractJSONObject(resp.Content, &raw); err != nil {
		return rawPOI{}, err
	}

	if raw.Category == "" {
		raw.Category = string(interest)
	}

	return raw, nil
}

func (p *POIProvider) synthesize(ctx context.Context, req dto.TripRequest, interests []dto.ActivityCategory) []rawPOI {
	names := make([]string, len(interests))
	for i, interest := range interests {
		names[i] = string(interest)
	}

	prompt := fmt.Sprintf(`Generate realistic points of interest for a trip to %s with interests in %s.

Return the POIs as a JSON array of objects with fields: name, description,
category (one of: cultural, outdoor, food, shopping, entertainment,
historical, nature), address, city, country, rating (0-5), price_range
($, $$, $$$ or Free), duration_hours, opening_hours, website, latitude,
longitude.

Generate 3-4 POIs for each interest category with varied ratings between 2.5
and 5.0, different price ranges, visit durations between 1 and 6 hours, and a
mix of popular spots and hidden gems.`, req.Destination, strings.Join(names, ", "))

	resp, err := p.LLM.Complete(ctx, llm.CompletionRequest{
		SystemMessage: "You are a travel expert specializing in points of interest and activities. Generate realistic POI options based on the given criteria.",
		Prompt:        prompt,
		Temperature:   0.7,
	})
	if err != nil {
		slog.WarnContext(ctx, "poi synthesis failed", slog.Any("error", err))
		return p.hardcodedPOIs(req, interests)
	}

	var raws []rawPOI
	if err := llm.ExtractJSONArray(resp.Content, &raws); err != nil {
		slog.WarnContext(ctx, "poi synthesis returned no JSON", slog.Any("error", err))
		return p.hardcodedPOIs(req, interests)
	}

	return raws
}

func (p *POIProvider) hardcodedPOIs(req dto.TripRequest, interests []dto.ActivityCategory) []rawPOI {
	wanted := make(map[dto.ActivityCategory]bool, len(interests))
	for _, interest := range interests {
		wanted[interest] = true
	}

	str := func(s string) *string { return &s }
	num := func(f float64) *float64 { return &f }

	var raws []rawPOI

	if wanted[dto.ActivityCultural] {
		raws = append(raws,
			rawPOI{
				Name:        "City Museum of Art",
				Description: "Renowned art museum featuring contemporary and classical collections",
				Category:    "cultural", Address: str("123 Art Street"),
				City: req.Destination, Country: "United States",
				Rating: num(4.6), PriceRange: str("$$"), DurationHours: num(3.0),
				OpeningHours: str("10:00 AM - 6:00 PM"), Website: str("https://citymuseum.com"),
				Latitude: num(34.0522), Longitude: num(-118.2437),
			},
			rawPOI{
				Name:        "Historic Downtown Theater",
				Description: "Beautifully restored theater hosting plays and performances",
				Category:    "cultural", Address: str("456 Theater Avenue"),
				City: req.Destination, Country: "United States",
				Rating: num(4.3), PriceRange: str("$$"), DurationHours: num(2.5),
				OpeningHours: str("Varies by show"), Website: str("https://downtowntheater.com"),
				Latitude: num(34.0522), Longitude: num(-118.2437),
			},
		)
	}

	if wanted[dto.ActivityOutdoor] {
		raws = append(raws,
			rawPOI{
				Name:        "Central Park Gardens",
				Description: "Beautiful botanical gardens with walking trails and seasonal flowers",
				Category:    "outdoor", Address: str("789 Garden Lane"),
				City: req.Destination, Country: "United States",
				Rating: num(4.4), PriceRange: str("$"), DurationHours: num(2.0),
				OpeningHours: str("8:00 AM - 8:00 PM"), Website: str("https://centralparkgardens.com"),
				Latitude: num(34.0522), Longitude: num(-118.2437),
			},
			rawPOI{
				Name:        "Riverside Hiking Trail",
				Description: "Scenic hiking trail along the river with mountain views",
				Category:    "outdoor", Address: str("321 Trail Road"),
				City: req.Destination, Country: "United States",
				Rating: num(4.7), PriceRange: str("Free"), DurationHours: num(4.0),
				OpeningHours: str("24/7"), Website: str("https://riversidetrail.com"),
				Latitude: num(34.0522), Longitude: num(-118.2437),
			},
		)
	}

	if wanted[dto.ActivityFood] {
		raws = append(raws,
			rawPOI{
				Name:        "Local Food Market",
				Description: "Vibrant food market with local vendors and fresh produce",
				Category:    "food", Address: str("567 Market Street"),
				City: req.Destination, Country: "United States",
				Rating: num(4.5), PriceRange: str("$$"), DurationHours: num(1.5),
				OpeningHours: str("9:00 AM - 5:00 PM"), Website: str("https://localfoodmarket.com"),
				Latitude: num(34.0522), Longitude: num(-118.2437),
			},
			rawPOI{
				Name:        "Famous Restaurant Row",
				Description: "Street lined with diverse restaurants from around the world",
				Category:    "food", Address: str("890 Restaurant Boulevard"),
				City: req.Destination, Country: "United States",
				Rating: num(4.2), PriceRange: str("$$$"), DurationHours: num(2.0),
				OpeningHours: str("Varies by restaurant"), Website: str("https://restaurantrow.com"),
				Latitude: num(34.0522), Longitude: num(-118.2437),
			},
		)
	}

	if wanted[dto.ActivityEntertainment] {
		raws = append(raws, rawPOI{
			Name:        "Downtown Entertainment District",
			Description: "Vibrant area with bars, clubs, and live music venues",
			Category:    "entertainment", Address: str("234 Entertainment Way"),
			City: req.Destination, Country: "United States",
			Rating: num(4.1), PriceRange: str("$$"), DurationHours: num(3.0),
			OpeningHours: str("6:00 PM - 2:00 AM"), Website: str("https://entertainmentdistrict.com"),
			Latitude: num(34.0522), Longitude: num(-118.2437),
		})
	}

	return raws
}

func (p *POIProvider) normalize(ctx context.Context, raws []rawPOI, interests []dto.ActivityCategory) []dto.PointOfInterest {
	pois := make([]dto.PointOfInterest, 0, len(raws))

	for _, raw := range raws {
		poi, err := p.toDTO(raw, interests)
		if err != nil {
			slog.WarnContext(ctx, "failed to normalize poi", slog.Any("error", err))
			continue
		}
		pois = append(pois, poi)
	}

	return pois
}

func (p *POIProvider) toDTO(raw rawPOI, interests []dto.ActivityCategory) (dto.PointOfInterest, error) {
	category, ok := dto.ParseActivityCategory(raw.Category)
	if !ok {
		category = categorizeByContent(raw, interests)
	}

	if raw.Rating != nil && (*raw.Rating < 0 || *raw.Rating > 5) {
		return dto.PointOfInterest{}, fmt.Errorf("rating must be between 0 and 5, got %f", *raw.Rating)
	}

	if raw.DurationHours != nil && *raw.DurationHours <= 0 {
		return dto.PointOfInterest{}, fmt.Errorf("duration must be positive, got %f", *raw.DurationHours)
	}

	name := raw.Name
	if name == "" {
		name = "Unknown"
	}

	description := raw.Description
	if description == "" {
		description = "No description available"
	}

	return dto.PointOfInterest{
		Name:          name,
		Description:   description,
		Category:      category,
		Address:       raw.Address,
		City:          raw.City,
		Country:       raw.Country,
		Rating:        raw.Rating,
		PriceRange:    raw.PriceRange,
		DurationHours: raw.DurationHours,
		OpeningHours:  raw.OpeningHours,
		Website:       raw.Website,
		Latitude:      raw.Latitude,
		Longitude:     raw.Longitude,
	}, nil
}

// categorizeByContent is the keyword fallback for candidates whose category
// did not survive extraction.
func categorizeByContent(raw rawPOI, interests []dto.ActivityCategory) dto.ActivityCategory {
	text := strings.ToLower(raw.Name + " " + raw.Description)

	keywords := []struct {
		category dto.ActivityCategory
		words    []string
	}{
		{dto.ActivityCultural, []string{"museum", "art", "gallery", "theater", "opera"}},
		{dto.ActivityOutdoor, []string{"park", "trail", "hiking", "beach", "outdoor"}},
		{dto.ActivityFood, []string{"restaurant", "cafe", "food", "market", "dining"}},
		{dto.ActivityShopping, []string{"mall", "shop", "store", "boutique"}},
		{dto.ActivityEntertainment, []string{"bar", "club", "nightlife", "entertainment"}},
		{dto.ActivityHistorical, []string{"historic", "monument", "castle", "ruins"}},
		{dto.ActivityNature, []string{"nature", "wildlife", "forest", "garden"}},
	}

	for _, entry := range keywords {
		for _, word := range entry.words {
			if strings.Contains(text, word) {
				return entry.category
			}
		}
	}

	if len(interests) > 0 {
		return interests[0]
	}

	return dto.ActivityCultural
}

// sortPOIs orders by rating descending, ties broken by duration descending.
// Missing values count as zero.
func sortPOIs(pois []dto.PointOfInterest) {
	value := func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	}

	sort.SliceStable(pois, func(i, j int) bool {
		if value(pois[i].Rating) != value(pois[j].Rating) {
			return value(pois[i].Rating) > value(pois[j].Rating)
		}
		return value(pois[i].DurationHours) > value(pois[j].DurationHours)
	})
}
