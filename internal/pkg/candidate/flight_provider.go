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

const FlightProviderName = "FlightAgent"

// rawFlight is the loosely-typed candidate shape produced by LLM extraction
// and synthesis before normalization.
type rawFlight struct {
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	DurationMinutes  int     `json:"duration_minutes"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	FlightClass      string  `json:"flight_class"`
	Stops            int     `json:"stops"`
	BookingLink      *string `json:"booking_link"`
}

type FlightProvider struct {
	Name          string
	Config        Config
	SearchClients []websearch.Client
	LLM           llm.Client
	MaxResults    int
}

func NewFlightProvider(config Config, searchClients []websearch.Client, llmClient llm.Client, maxResults int) *FlightProvider {
	return &FlightProvider{
		Name:          FlightProviderName,
		Config:        config,
		SearchClients: searchClients,
		LLM:           llmClient,
		MaxResults:    maxResults,
	}
}

// Search gathers flight candidates. External failures degrade step by step:
// web search, then LLM synthesis, then a deterministic hardcoded set, so the
// composer always receives a list.
func (p *FlightProvider) Search(ctx context.Context, req dto.TripRequest) ([]dto.Flight, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Config.Timeout)
	defer cancel()

	if err := p.Config.allow(ctx, p.Name); err != nil {
		return nil, err
	}

	raws := p.collectFromSearch(ctx, req)

	if len(raws) == 0 {
		slog.InfoContext(ctx, "no search results, synthesizing flights",
			slog.String("destination", req.Destination))
		raws = p.synthesize(ctx, req)
	}

	flights := p.normalize(ctx, raws)
	if len(flights) == 0 {
		flights = p.normalize(ctx, p.hardcodedFlights(req))
	}

	sortFlights(flights)

	return flights, nil
}

func (p *FlightProvider) collectFromSearch(ctx context.Context, req dto.TripRequest) []rawFlight {
	query := fmt.Sprintf("flights to %s on %s", req.Destination, req.StartDate)

	var raws []rawFlight
	for _, client := range p.SearchClients {
		results, err := searchWithRetry(ctx, client, query, p.MaxResults, p.Config.MaxRetries)
		if err != nil {
			slog.WarnContext(ctx, "flight search client failed",
				slog.String("client", client.Name()), slog.Any("error", err))
			continue
		}

		for _, result := range results {
			raw, err := p.extract(ctx, result)
			if err != nil {
				slog.WarnContext(ctx, "failed to extract flight candidate", slog.Any("error", err))
				continue
			}
			raws = append(raws, raw)
		}
	}

	return raws
}

// extract turns one unstructured search hit into a flight candidate via the
// LLM. A failed extraction drops only that hit.
func (p *FlightProvider) extract(ctx context.Context, result websearch.Result) (rawFlight, error) {
	prompt := fmt.Sprintf(`Extract flight information from this search result and return as JSON:

Title: %s
Content: %s

Return JSON with these fields: airline, flight_number, departure_airport
(3-letter code), arrival_airport (3-letter code), departure_time (ISO
datetime), arrival_time (ISO datetime), duration_minutes (integer), price
(number), currency (USD, EUR, ...), flight_class (economy, business, ...),
stops (integer), booking_link.

If any field cannot be determined, use null.`, result.Title, result.Content)

	resp, err := p.LLM.Complete(ctx, llm.CompletionRequest{
		SystemMessage: "You are a flight search expert extracting structured data.",
		Prompt:        prompt,
	})
	if err != nil {
		return rawFlight{}, fmt.Errorf("llm extraction: %w", err)
	}

	var raw rawFlight
	if err := llm.ExtractJSONObject(resp.Content, &raw); err != nil {
		return rawFlight{}, err
	}

	return raw, nil
}

func (p *FlightProvider) synthesize(ctx context.Context, req dto.TripRequest) []rawFlight {
	prompt := fmt.Sprintf(`Generate 3 realistic flight options for a trip to %s on %s.

Return the flights as a JSON array of objects with fields: airline,
flight_number, departure_airport, arrival_airport, departure_time,
arrival_time, duration_minutes, price, currency, flight_class, stops,
booking_link.

Make the flights realistic with different airlines, economy prices between
200 and 800 USD, durations between 2 and 15 hours, and a mix of direct and
connecting flights.`, req.Destination, req.StartDate)

	resp, err := p.LLM.Complete(ctx, llm.CompletionRequest{
		SystemMessage: "You are a flight search expert. Generate realistic flight options based on the given criteria.",
		Prompt:        prompt,
		Temperature:   0.7,
	})
	if err != nil {
		slog.WarnContext(ctx, "flight synthesis failed", slog.Any("error", err))
		return p.hardcodedFlights(req)
	}

	var raws []rawFlight
	if err := llm.ExtractJSONArray(resp.Content, &raws); err != nil {
		slog.WarnContext(ctx, "flight synthesis returned no JSON", slog.Any("error", err))
		return p.hardcodedFlights(req)
	}

	return raws
}

// hardcodedFlights is the last-resort deterministic candidate set.
func (p *FlightProvider) hardcodedFlights(req dto.TripRequest) []rawFlight {
	day := req.StartDate
	link := func(s string) *string { return &s }

	return []rawFlight{
		{
			Airline:          "Delta Airlines",
			FlightNumber:     "DL1234",
			DepartureAirport: "JFK",
			ArrivalAirport:   "LAX",
			DepartureTime:    day + "T08:00:00",
			ArrivalTime:      day + "T11:30:00",
			DurationMinutes:  210,
			Price:            350.0,
			Currency:         "USD",
			FlightClass:      "economy",
			Stops:            0,
			BookingLink:      link("https://delta.com"),
		},
		{
			Airline:          "United Airlines",
			FlightNumber:     "UA5678",
			DepartureAirport: "ORD",
			ArrivalAirport:   "LAX",
			DepartureTime:    day + "T10:30:00",
			ArrivalTime:      day + "T14:15:00",
			DurationMinutes:  225,
			Price:            420.0,
			Currency:         "USD",
			FlightClass:      "economy",
			Stops:            1,
			BookingLink:      link("https://united.com"),
		},
		{
			Airline:          "American Airlines",
			FlightNumber:     "AA9012",
			DepartureAirport: "DFW",
			ArrivalAirport:   "LAX",
			DepartureTime:    day + "T12:00:00",
			ArrivalTime:      day + "T15:30:00",
			DurationMinutes:  210,
			Price:            380.0,
			Currency:         "USD",
			FlightClass:      "economy",
			Stops:            0,
			BookingLink:      link("https://aa.com"),
		},
	}
}

// normalize coerces raw candidates into typed flights, dropping any record
// that fails coercion. Best-effort and lossy, not atomic.
func (p *FlightProvider) normalize(ctx context.Context, raws []rawFlight) []dto.Flight {
	flights := make([]dto.Flight, 0, len(raws))

	for _, raw := range raws {
		flight, err := p.toDTO(raw)
		if err != nil {
			slog.WarnContext(ctx, "failed to normalize flight", slog.Any("error", err))
			continue
		}
		flights = append(flights, flight)
	}

	return flights
}

func (p *FlightProvider) toDTO(raw rawFlight) (dto.Flight, error) {
	departure, err := parseTimestamp(raw.DepartureTime)
	if err != nil {
		return dto.Flight{}, fmt.Errorf("invalid departure_time %q: %w", raw.DepartureTime, err)
	}

	arrival, err := parseTimestamp(raw.ArrivalTime)
	if err != nil {
		return dto.Flight{}, fmt.Errorf("invalid arrival_time %q: %w", raw.ArrivalTime, err)
	}

	if raw.DurationMinutes <= 0 {
		return dto.Flight{}, fmt.Errorf("duration must be positive, got %d", raw.DurationMinutes)
	}

	if raw.Price < 0 {
		return dto.Flight{}, fmt.Errorf("price cannot be negative, got %f", raw.Price)
	}

	currency := dto.CurrencyUSD
	if raw.Currency != "" {
		parsed, ok := dto.ParseCurrency(raw.Currency)
		if !ok {
			return dto.Flight{}, fmt.Errorf("unknown currency %q", raw.Currency)
		}
		currency = parsed
	}

	class := dto.FlightClassEconomy
	if raw.FlightClass != "" {
		parsed, ok := dto.ParseFlightClass(raw.FlightClass)
		if !ok {
			return dto.Flight{}, fmt.Errorf("unknown flight class %q", raw.FlightClass)
		}
		class = parsed
	}

	airline := raw.Airline
	if airline == "" {
		airline = "Unknown"
	}

	flightNumber := raw.FlightNumber
	if flightNumber == "" {
		flightNumber = "N/A"
	}

	return dto.Flight{
		Airline:          airline,
		FlightNumber:     flightNumber,
		DepartureAirport: raw.DepartureAirport,
		ArrivalAirport:   raw.ArrivalAirport,
		DepartureTime:    departure,
		ArrivalTime:      arrival,
		DurationMinutes:  raw.DurationMinutes,
		Price:            raw.Price,
		Currency:         currency,
		FlightClass:      class,
		Stops:            raw.Stops,
		BookingLink:      raw.BookingLink,
	}, nil
}

// sortFlights orders by price ascending, ties broken by duration ascending.
func sortFlights(flights []dto.Flight) {
	sort.SliceStable(flights, func(i, j int) bool {
		if flights[i].Price != flights[j].Price {
			return flights[i].Price < flights[j].Price
		}
		return flights[i].DurationMinutes < flights[j].DurationMinutes
	})
}
