package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/tripsmith/trip-planner-service/internal/app/config"
	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/app/endpoints"
	"github.com/tripsmith/trip-planner-service/internal/app/service"
	"github.com/tripsmith/trip-planner-service/internal/app/transport"
	"github.com/tripsmith/trip-planner-service/internal/pkg/candidate"
	"github.com/tripsmith/trip-planner-service/internal/pkg/llm"
	"github.com/tripsmith/trip-planner-service/internal/pkg/logger"
	"github.com/tripsmith/trip-planner-service/internal/pkg/trip"
	"github.com/tripsmith/trip-planner-service/internal/pkg/websearch"
)

// @title           Trip Planner Service API
// @version         0.0.1
// @description     trip-planner-service
// @host      localhost:8080
// @BasePath  /
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	llmClient, err := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init LLM client", slog.String("error", err.Error()))
		panic(err)
	}

	searchClients := makeSearchClients(cfg)

	return endpoints.Endpoints{
		PlannerEndpoint: makePlannerEndpoint(cfg, redisClient, llmClient, searchClients),
	}
}

// makeSearchClients registers the configured web search backends. SerpAPI is
// optional and skipped without a key.
func makeSearchClients(cfg *config.Config) []websearch.Client {
	clients := []websearch.Client{
		websearch.NewTavilyClient(cfg.Tavily.APIURL, cfg.Tavily.APIKey),
	}

	if cfg.SerpAPI.APIKey != "" {
		clients = append(clients, websearch.NewSerpAPIClient(cfg.SerpAPI.APIURL, cfg.SerpAPI.APIKey))
	}

	return clients
}

func makePlannerEndpoint(cfg *config.Config, redisClient *redis.Client,
	llmClient llm.Client, searchClients []websearch.Client) endpoints.PlannerEndpoint {

	limiter := redis_rate.NewLimiter(redisClient)

	flightProvider := candidate.NewFlightProvider(candidate.Config{
		Timeout:      cfg.Providers.FlightProvider.Timeout,
		MaxRetries:   cfg.Providers.FlightProvider.MaxRetries,
		RateLimitRPS: cfg.Providers.FlightProvider.RateLimitRPS,
		Limiter:      limiter,
	}, searchClients, llmClient, cfg.Tavily.MaxResults)

	hotelProvider := candidate.NewHotelProvider(candidate.Config{
		Timeout:      cfg.Providers.HotelProvider.Timeout,
		MaxRetries:   cfg.Providers.HotelProvider.MaxRetries,
		RateLimitRPS: cfg.Providers.HotelProvider.RateLimitRPS,
		Limiter:      limiter,
	}, searchClients, llmClient, cfg.Tavily.MaxResults)

	poiProvider := candidate.NewPOIProvider(candidate.Config{
		Timeout:      cfg.Providers.POIProvider.Timeout,
		MaxRetries:   cfg.Providers.POIProvider.MaxRetries,
		RateLimitRPS: cfg.Providers.POIProvider.RateLimitRPS,
		Limiter:      limiter,
	}, searchClients, llmClient, cfg.Tavily.MaxResults)

	// cache and artifact store
	candidateCache := trip.NewCandidateCache(redisClient)
	fileStore := trip.NewFileStore(cfg.Output.Dir)

	// service
	plannerService := service.NewPlannerService(flightProvider, hotelProvider, poiProvider,
		candidateCache, fileStore,
		cfg.Providers.CacheExpiration, cfg.Providers.LockTimeout)

	// endpoint
	return endpoints.MakePlannerEndpoint(plannerService)
}
