// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	"github.com/phoenix-field/backend/internal/application/usecase/directory"
	"github.com/phoenix-field/backend/internal/application/usecase/expense"
	"github.com/phoenix-field/backend/internal/application/usecase/itinerary"
	"github.com/phoenix-field/backend/internal/application/usecase/sales"
	"github.com/phoenix-field/backend/internal/application/usecase/updates"
	"github.com/phoenix-field/backend/internal/infra/server/router"
	"github.com/phoenix-field/backend/internal/integration/adapters"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/controller"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/middleware"
	"github.com/phoenix-field/backend/internal/integration/persistence"
	"github.com/phoenix-field/backend/internal/integration/sheets"
	"github.com/phoenix-field/backend/internal/integration/webhook"
	"github.com/phoenix-field/backend/test/integration/mock"
)

const (
	testJWTSecret      = "integration-test-jwt-secret"
	testReferenceYear  = 2025
	testTopPerformers  = 10
	testAccessExpiry   = 15 * time.Minute
	testRefreshExpiry  = 72 * time.Hour
	testWebhookTimeout = 5 * time.Second
)

// fixturePasswords mirrors the credentials seeded in the mock spreadsheet.
var fixturePasswords = map[string]string{
	"sam@phoenixfield.test":    "owner-pass",
	"jordan@phoenixfield.test": "lead-pass",
	"casey@phoenixfield.test":  "rep-pass",
	"riley@phoenixfield.test":  "rep-pass",
}

// app holds the fully wired application shared by every scenario.
type app struct {
	source  *mock.SheetSource
	store   *sheets.Store
	hook    *mock.Webhook
	server  *httptest.Server
	cleanup func()
}

var theApp *app
var appOnce sync.Once

func buildApp() *app {
	source := mock.NewSheetSource()
	mapper := sheets.NewMapper(testReferenceYear)
	store := sheets.NewStore(source, mapper)

	db := mock.NewDb()
	redisClient := mock.NewRedis()
	hook := mock.NewWebhook()

	tokenRepo := persistence.NewTokenRepository(db)
	tokenService := adapters.NewTokenService(testJWTSecret, testAccessExpiry, testRefreshExpiry, tokenRepo)
	verifier := adapters.NewCredentialVerifier()
	gateway := webhook.NewAppsScriptClient(hook.URL(), testWebhookTimeout)

	loginUseCase := auth.NewLoginUserUseCase(store, verifier, tokenService)
	refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	resolveUseCase := auth.NewResolveProfileUseCase(store)
	dashboardUseCase := sales.NewGetDashboardUseCase(store, testTopPerformers)
	monthsUseCase := sales.NewListMonthsUseCase(store)
	itineraryUseCase := itinerary.NewGetItineraryUseCase(store)
	updatesUseCase := updates.NewListUpdatesUseCase(store)
	directoryUseCase := directory.NewListDirectoryUseCase(store)
	expenseUseCase := expense.NewSubmitExpenseUseCase(gateway)

	r := router.NewRouter(
		controller.NewHealthController(func() bool { return true }, store.Loaded),
		controller.NewAuthController(loginUseCase, refreshUseCase, logoutUseCase, resolveUseCase),
		controller.NewSalesController(resolveUseCase, dashboardUseCase, monthsUseCase),
		controller.NewItineraryController(resolveUseCase, itineraryUseCase),
		controller.NewUpdatesController(resolveUseCase, updatesUseCase),
		controller.NewDirectoryController(resolveUseCase, directoryUseCase),
		controller.NewExpenseController(resolveUseCase, expenseUseCase),
		controller.NewDataController(resolveUseCase, store),
		middleware.NewRedisRateLimiter(redisClient, 5, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
	)
	engine := r.Setup("test")
	server := httptest.NewServer(engine)

	return &app{
		source: source,
		store:  store,
		hook:   hook,
		server: server,
		cleanup: func() {
			server.Close()
			hook.Close()
		},
	}
}

// TestContext holds per-scenario request and response state.
type TestContext struct {
	client       *http.Client
	headers      map[string]string
	response     *http.Response
	responseBody []byte
	accessToken  string
	refreshToken string
}

type contextKey struct{}

func getTestContext(ctx context.Context) *TestContext {
	tc, _ := ctx.Value(contextKey{}).(*TestContext)
	return tc
}

func setTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up shared resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
		appOnce.Do(func() { theApp = buildApp() })
	})

	ctx.AfterSuite(func() {
		if theApp != nil {
			theApp.cleanup()
		}
	})
}

// InitializeScenario registers all step definitions and resets shared state
// between scenarios.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		appOnce.Do(func() { theApp = buildApp() })

		theApp.source.Reset()
		if err := theApp.store.Refresh(context.Background()); err != nil {
			return ctx, fmt.Errorf("failed to load fixture dataset: %w", err)
		}
		theApp.hook.ResetAck()
		if err := mock.Reset(mock.NewDb()); err != nil {
			return ctx, fmt.Errorf("failed to reset sessions: %w", err)
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, fmt.Errorf("failed to reset rate limits: %w", err)
		}

		tc := &TestContext{
			client:  &http.Client{Timeout: 10 * time.Second},
			headers: make(map[string]string),
		}
		return setTestContext(ctx, tc), nil
	})

	registerRequestSteps(ctx)
	registerAuthSteps(ctx)
	registerDataSteps(ctx)
	registerResponseSteps(ctx)
}

func registerRequestSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAsWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)"$`, iAmLoggedInAs)
	ctx.Step(`^I have an invalid access token$`, iHaveAnInvalidAccessToken)
	ctx.Step(`^I log out$`, iLogOut)
	ctx.Step(`^I refresh my session$`, iRefreshMySession)
}

func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the employee "([^"]*)" is removed from the roster$`, theEmployeeIsRemovedFromTheRoster)
	ctx.Step(`^the spreadsheet is unreachable$`, theSpreadsheetIsUnreachable)
	ctx.Step(`^the expense webhook rejects submissions with "([^"]*)"$`, theExpenseWebhookRejects)
	ctx.Step(`^the expense webhook is failing$`, theExpenseWebhookIsFailing)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be absent$`, theResponseFieldShouldBeAbsent)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, theResponseListShouldHaveItems)
	ctx.Step(`^the last expense payload field "([^"]*)" should be "([^"]*)"$`, theLastExpensePayloadFieldShouldBe)
}

// Request steps

func (tc *TestContext) do(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, theApp.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.headers {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return getTestContext(ctx).do(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return getTestContext(ctx).do(method, endpoint, bytes.NewBufferString(body.Content))
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	getTestContext(ctx).headers[header] = value
	return nil
}

// Auth steps

func iLogInAsWithPassword(ctx context.Context, email, password string) error {
	tc := getTestContext(ctx)
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	if err := tc.do(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload)); err != nil {
		return err
	}
	if tc.response.StatusCode == http.StatusOK {
		var auth struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
			return fmt.Errorf("failed to parse login response: %w", err)
		}
		tc.accessToken = auth.AccessToken
		tc.refreshToken = auth.RefreshToken
	}
	return nil
}

func iAmLoggedInAs(ctx context.Context, email string) error {
	password, ok := fixturePasswords[email]
	if !ok {
		return fmt.Errorf("no fixture credentials for %q", email)
	}
	if err := iLogInAsWithPassword(ctx, email, password); err != nil {
		return err
	}
	tc := getTestContext(ctx)
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login as %q failed with status %d: %s", email, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func iHaveAnInvalidAccessToken(ctx context.Context) error {
	getTestContext(ctx).accessToken = "not-a-real-token"
	return nil
}

func iLogOut(ctx context.Context) error {
	tc := getTestContext(ctx)
	payload, _ := json.Marshal(map[string]string{"refresh_token": tc.refreshToken})
	return tc.do(http.MethodPost, "/api/v1/auth/logout", bytes.NewReader(payload))
}

func iRefreshMySession(ctx context.Context) error {
	tc := getTestContext(ctx)
	payload, _ := json.Marshal(map[string]string{"refresh_token": tc.refreshToken})
	if err := tc.do(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(payload)); err != nil {
		return err
	}
	if tc.response.StatusCode == http.StatusOK {
		var tokens struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.Unmarshal(tc.responseBody, &tokens); err != nil {
			return fmt.Errorf("failed to parse refresh response: %w", err)
		}
		tc.accessToken = tokens.AccessToken
		tc.refreshToken = tokens.RefreshToken
	}
	return nil
}

// Data steps

func theEmployeeIsRemovedFromTheRoster(ctx context.Context, email string) error {
	rows, err := theApp.source.FetchRows(context.Background(), sheets.SheetLogins)
	if err != nil {
		return err
	}
	kept := [][]string{rows[0]}
	for _, row := range rows[1:] {
		if len(row) > 1 && strings.EqualFold(row[1], email) {
			continue
		}
		kept = append(kept, row)
	}
	theApp.source.SetRows(sheets.SheetLogins, kept)
	return theApp.store.Refresh(context.Background())
}

func theSpreadsheetIsUnreachable(ctx context.Context) error {
	theApp.source.SetError(fmt.Errorf("connection refused"))
	return nil
}

func theExpenseWebhookRejects(ctx context.Context, message string) error {
	theApp.hook.SetAck(false, message)
	return nil
}

func theExpenseWebhookIsFailing(ctx context.Context) error {
	theApp.hook.SetStatus(http.StatusInternalServerError)
	return nil
}

// Response steps

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := getTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := getTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, tc.responseBody)
	}
	return nil
}

// lookupField resolves a dotted path like "user.tier" or "teams.0.team_name"
// against the parsed response body.
func lookupField(body []byte, path string) (any, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, body)
			}
			current = value
		case []any:
			var index int
			if _, err := fmt.Sscanf(part, "%d", &index); err != nil {
				return nil, fmt.Errorf("field %q: %q is not a list index", path, part)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q: index %d out of range", path, index)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q: cannot descend into %T", path, current)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := getTestContext(ctx)
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := getTestContext(ctx)
	_, err := lookupField(tc.responseBody, field)
	return err
}

func theResponseFieldShouldBeAbsent(ctx context.Context, field string) error {
	tc := getTestContext(ctx)
	if _, err := lookupField(tc.responseBody, field); err == nil {
		return fmt.Errorf("field %q unexpectedly present. Body: %s", field, tc.responseBody)
	}
	return nil
}

func theResponseListShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := getTestContext(ctx)
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list. Body: %s", field, tc.responseBody)
	}
	if len(list) != count {
		return fmt.Errorf("field %q has %d items, expected %d. Body: %s", field, len(list), count, tc.responseBody)
	}
	return nil
}

func theLastExpensePayloadFieldShouldBe(ctx context.Context, field, expected string) error {
	payload := theApp.hook.LastPayload()
	if payload == nil {
		return fmt.Errorf("expense webhook received no payloads")
	}
	value, ok := payload[field]
	if !ok {
		return fmt.Errorf("payload field %q not found: %v", field, payload)
	}
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("payload field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}
