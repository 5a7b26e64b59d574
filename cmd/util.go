package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"finora/api"
	integration_tests "finora/integration-tests"
	"finora/internal/logger"
	"finora/internal/repository"
	"finora/internal/service"
	"finora/internal/util"

	_ "github.com/lib/pq"
)

// Dependencies is everything the API and the CLI commands share.
type Dependencies struct {
	Secrets      *util.Secrets
	Db           *sql.DB
	ReturnsCache repository.ReturnsCacheRepository
	ApiHandler   *api.ApiHandler
}

func CloseDependencies(handler *api.ApiHandler) {
	if err := handler.Db.Close(); err != nil {
		logger.New().Fatalf("failed to close db: %v", err)
	}
}

func (d *Dependencies) Close() error {
	if err := d.ReturnsCache.Close(); err != nil {
		return fmt.Errorf("failed to close returns cache: %w", err)
	}
	if err := d.Db.Close(); err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}

func InitializeDependencies() (*api.ApiHandler, error) {
	deps, err := NewDependencies()
	if err != nil {
		return nil, err
	}
	return deps.ApiHandler, nil
}

func NewDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	return NewDependenciesFromSecrets(secrets)
}

func NewDependenciesFromSecrets(secrets *util.Secrets) (*Dependencies, error) {
	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	userAccountRepository := repository.NewUserAccountRepository(dbConn)
	clientRepository := repository.NewClientRepository(dbConn)
	leadRepository := repository.NewLeadRepository(dbConn)
	tradeRepository := repository.NewTradeRepository(dbConn)
	apiRequestRepository := repository.NewApiRequestRepository(dbConn)

	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	switch {
	case strings.EqualFold(os.Getenv("FINORA_ENV"), "test"):
		alpacaRepository = integration_tests.NewMockAlpacaRepositoryForTests()
	case UseMockAlpaca:
		alpacaRepository = NewAlwaysOpenAlpacaRepository(alpacaRepository)
	}

	returnsCache, err := repository.NewReturnsCacheRepository(repository.RedisConfig{
		Addr:     secrets.Redis.Addr,
		Password: secrets.Redis.Password,
		DB:       secrets.Redis.DB,
		TTL:      time.Duration(secrets.Redis.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create returns cache: %w", err)
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPT != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPT)
		if err != nil {
			return nil, fmt.Errorf("failed to create gpt repository: %w", err)
		}
	}

	emailRepository, err := repository.NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}

	returnsService := service.NewReturnsService(tradeRepository, clientRepository, returnsCache)
	emailService := service.NewEmailService(
		emailRepository,
		gptRepository,
		clientRepository,
		userAccountRepository,
		repository.NewEmailPreferenceRepository(dbConn),
		returnsService,
	)

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		JwtDecodeToken:            secrets.Jwt,
		UserAccountRepository:     userAccountRepository,
		ApiRequestRepository:      apiRequestRepository,
		LatencyTrackingRepository: repository.NewLatencyTrackingRepository(dbConn),
		ClientService:             service.NewClientService(clientRepository),
		LeadService:               service.NewLeadService(dbConn, leadRepository, clientRepository),
		RecommendationService:     service.NewRecommendationService(tradeRepository, clientRepository, alpacaRepository, returnsCache),
		ReturnsService:            returnsService,
		EmailService:              emailService,
	}

	return &Dependencies{
		Secrets:      secrets,
		Db:           dbConn,
		ReturnsCache: returnsCache,
		ApiHandler:   apiHandler,
	}, nil
}
