package integration_tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finora/api"
	"finora/internal/db/models/postgres/public/table"
	"finora/internal/domain"
	"finora/internal/repository"
	"finora/internal/service"
	"finora/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/golang-jwt/jwt"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	testJwtSecret     = "integration-secret"
	testAuthSubject   = "integration|advisor"
	testAdvisorEmail  = "advisor@finora.test"
	testAdvisorName   = "Integration Advisor"
	testTokenLifetime = time.Hour
)

func newTestHandler(db *sql.DB) (*api.ApiHandler, error) {
	cache, err := repository.NewReturnsCacheRepository(repository.RedisConfig{})
	if err != nil {
		return nil, err
	}
	clientRepository := repository.NewClientRepository(db)
	leadRepository := repository.NewLeadRepository(db)
	tradeRepository := repository.NewTradeRepository(db)

	return &api.ApiHandler{
		Db:                    db,
		JwtDecodeToken:        testJwtSecret,
		UserAccountRepository: repository.NewUserAccountRepository(db),
		ClientService:         service.NewClientService(clientRepository),
		LeadService:           service.NewLeadService(db, leadRepository, clientRepository),
		RecommendationService: service.NewRecommendationService(tradeRepository, clientRepository, NewMockAlpacaRepositoryForTests(), cache),
		ReturnsService:        service.NewReturnsService(tradeRepository, clientRepository, cache),
	}, nil
}

func cleanupAdvisor(db *sql.DB) error {
	subject := postgres.String(testAuthSubject)
	advisorIDs := table.UserAccount.
		SELECT(table.UserAccount.UserAccountID).
		WHERE(table.UserAccount.AuthProviderID.EQ(subject))

	statements := []postgres.Statement{
		table.Trade.DELETE().WHERE(table.Trade.UserAccountID.IN(advisorIDs)),
		table.Lead.DELETE().WHERE(table.Lead.UserAccountID.IN(advisorIDs)),
		table.Client.DELETE().WHERE(table.Client.UserAccountID.IN(advisorIDs)),
		table.UserAccount.DELETE().WHERE(table.UserAccount.AuthProviderID.EQ(subject)),
	}
	for _, stmt := range statements {
		if _, err := stmt.Exec(db); err != nil {
			return fmt.Errorf("failed to clean up advisor: %w", err)
		}
	}
	return nil
}

func bearerToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   testAuthSubject,
		"email": testAdvisorEmail,
		"name":  testAdvisorName,
		"exp":   time.Now().Add(testTokenLifetime).Unix(),
	})
	return token.SignedString([]byte(testJwtSecret))
}

func hitEndpoint(baseURL, token, route, method string, payload interface{}, target interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, baseURL+"/"+route, bytes.NewReader(payloadBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("failed with status %d: %s", resp.StatusCode, string(responseBody))
	}
	if target == nil {
		return nil
	}

	return json.Unmarshal(responseBody, target)
}

func Test_recommendationFlow(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}
	require.NoError(t, cleanupAdvisor(db))
	defer func() {
		require.NoError(t, cleanupAdvisor(db))
	}()

	handler, err := newTestHandler(db)
	require.NoError(t, err)
	server := httptest.NewServer(handler.InitializeRouterEngine())
	defer server.Close()

	token, err := bearerToken()
	require.NoError(t, err)
	call := func(route, method string, payload, target interface{}) {
		err := hitEndpoint(server.URL, token, route, method, payload, target)
		require.NoError(t, err)
	}

	// lead -> client
	lead := map[string]any{}
	call("leads", http.MethodPost, map[string]any{
		"fullName": "Nisha Menon",
		"email":    "nisha@example.com",
		"source":   "referral",
	}, &lead)
	converted := struct {
		Lead struct {
			Status            string  `json:"status"`
			ConvertedClientID *string `json:"convertedClientId"`
		} `json:"lead"`
		Client struct {
			ClientID    string `json:"clientId"`
			RiskProfile string `json:"riskProfile"`
		} `json:"client"`
	}{}
	call(fmt.Sprintf("leads/%s/convert", lead["leadId"]), http.MethodPost, map[string]any{
		"riskProfile": "aggressive",
	}, &converted)
	require.Equal(t, "CONVERTED", converted.Lead.Status)
	require.Equal(t, converted.Client.ClientID, *converted.Lead.ConvertedClientID)
	require.Equal(t, "AGGRESSIVE", converted.Client.RiskProfile)

	// converting twice conflicts
	err = hitEndpoint(server.URL, token, fmt.Sprintf("leads/%s/convert", lead["leadId"]), http.MethodPost, nil, nil)
	require.ErrorContains(t, err, "409")

	// recommendations
	call("trades", http.MethodPost, map[string]any{
		"clientId":    converted.Client.ClientID,
		"symbol":      "meta",
		"direction":   "BUY",
		"entryPrice":  "250",
		"targetPrice": "270",
		"createdAt":   time.Now().Add(-48 * time.Hour).UTC(),
	}, nil)
	call("trades", http.MethodPost, map[string]any{
		"clientId":      converted.Client.ClientID,
		"symbol":        "AAPL",
		"direction":     "BUY",
		"entryPrice":    "120",
		"stoplossPrice": "110",
		"createdAt":     time.Now().Add(-24 * time.Hour).UTC(),
	}, nil)

	monitor := service.MonitorResult{}
	call("monitorRecommendations", http.MethodPost, map[string]any{"autoExit": true}, &monitor)
	require.True(t, monitor.MarketOpen)
	require.Equal(t, 2, monitor.TradesChecked)
	require.Len(t, monitor.Alerts, 1)
	require.Equal(t, "META", monitor.Alerts[0].Symbol)
	require.Equal(t, domain.AlertKind_TargetHit, monitor.Alerts[0].Kind)
	require.True(t, monitor.Alerts[0].Exited)

	report := domain.ReturnsReport{}
	call(fmt.Sprintf("clients/%s/returns", converted.Client.ClientID), http.MethodGet, nil, &report)
	require.Equal(t, 2, report.Summary.NumTrades)
	require.Equal(t, 1, report.Summary.NumExited)
	require.True(t, decimal.NewFromInt(120).Equal(report.Summary.TotalValue), report.Summary.TotalValue.String())

	advisorReport := domain.ReturnsReport{}
	call("returns", http.MethodGet, nil, &advisorReport)
	require.Equal(t, report.Summary.TotalValue.String(), advisorReport.Summary.TotalValue.String())
}
