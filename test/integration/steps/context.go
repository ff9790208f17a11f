// Package steps provides step definitions for the integration test suite.
package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/cash-organizer/backend/internal/application/usecase/auth"
	"github.com/cash-organizer/backend/internal/application/usecase/balance"
	"github.com/cash-organizer/backend/internal/application/usecase/budget"
	"github.com/cash-organizer/backend/internal/application/usecase/currency"
	"github.com/cash-organizer/backend/internal/application/usecase/goal"
	"github.com/cash-organizer/backend/internal/application/usecase/transaction"
	"github.com/cash-organizer/backend/internal/infra/server/router"
	"github.com/cash-organizer/backend/internal/integration/adapters"
	"github.com/cash-organizer/backend/internal/integration/email"
	"github.com/cash-organizer/backend/internal/integration/entrypoint/controller"
	"github.com/cash-organizer/backend/internal/integration/entrypoint/middleware"
	"github.com/cash-organizer/backend/internal/integration/persistence"
	"github.com/cash-organizer/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"
const testResetURLBase = "http://localhost:5173/reset-password"

var appOnce sync.Once
var appEngine *gin.Engine
var appEmailSender *email.MockEmailSender

// buildApp wires the full application over the shared test database and
// the in-process redis, exactly like the production entry point does.
func buildApp() {
	testDb := mock.NewDb()
	redisClient := mock.NewRedis()
	dbConn := testDb.DbConn

	userRepo := persistence.NewUserRepository(dbConn)
	tokenRepo := persistence.NewTokenRepository(dbConn)
	balanceRepo := persistence.NewBalanceRepository(dbConn)
	budgetRepo := persistence.NewBudgetRepository(dbConn)
	goalRepo := persistence.NewGoalRepository(dbConn)
	transactionRepo := persistence.NewTransactionRepository(dbConn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	appEmailSender = email.NewMockEmailSender()

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
		auth.NewForgotPasswordUseCase(userRepo, resetTokenService, appEmailSender, testResetURLBase),
		auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService),
	)
	currencyController := controller.NewCurrencyController(currency.NewListCurrenciesUseCase())
	balanceController := controller.NewBalanceController(
		balance.NewListBalancesUseCase(balanceRepo, transactionRepo),
		balance.NewGetBalanceUseCase(balanceRepo, transactionRepo),
		balance.NewCreateBalanceUseCase(balanceRepo),
		balance.NewRenameBalanceUseCase(balanceRepo),
		balance.NewDeleteBalanceUseCase(balanceRepo),
	)
	budgetController := controller.NewBudgetController(
		budget.NewListBudgetsUseCase(budgetRepo, transactionRepo),
		budget.NewGetBudgetUseCase(budgetRepo, transactionRepo),
		budget.NewCreateBudgetUseCase(budgetRepo),
		budget.NewRenameBudgetUseCase(budgetRepo),
		budget.NewDeleteBudgetUseCase(budgetRepo),
	)
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(goalRepo, transactionRepo),
		goal.NewGetGoalUseCase(goalRepo, transactionRepo),
		goal.NewCreateGoalUseCase(goalRepo),
		goal.NewRenameGoalUseCase(goalRepo),
		goal.NewDeleteGoalUseCase(goalRepo, transactionRepo),
		goal.NewFulfillGoalUseCase(goalRepo, balanceRepo, transactionRepo),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo, balanceRepo),
		transaction.NewGetTransactionUseCase(transactionRepo, balanceRepo),
		transaction.NewCreateTransactionUseCase(transactionRepo, balanceRepo),
		transaction.NewExpendBudgetUseCase(transactionRepo, balanceRepo, budgetRepo),
	)
	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		authController,
		currencyController,
		balanceController,
		budgetController,
		goalController,
		transactionController,
		middleware.NewRateLimiter(redisClient),
		middleware.NewAuthMiddleware(tokenService),
	)
	appEngine = r.Setup("test")
}

// TestContext carries per-scenario state between steps.
type TestContext struct {
	response       *httptest.ResponseRecorder
	responseBody   []byte
	requestHeaders map[string]string
	accessToken    string
	refreshToken   string
	// ids maps "balance:Checking", "budget:Groceries" or "goal:Vacation"
	// to the UUID the API assigned.
	ids map[string]string
}

type contextKey struct{}

// GetTestContext retrieves the scenario state from the godog context.
func GetTestContext(ctx context.Context) *TestContext {
	tc, _ := ctx.Value(contextKey{}).(*TestContext)
	return tc
}

// SetTestContext stores the scenario state in the godog context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite runs once before all scenarios.
func InitializeTestSuite(sc *godog.TestSuiteContext) {
	sc.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		appOnce.Do(buildApp)
	})
}

// InitializeScenario wires hooks and step definitions for each scenario.
func InitializeScenario(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		appOnce.Do(buildApp)
		if err := mock.NewDb().ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		appEmailSender.Reset()
		return SetTestContext(ctx, &TestContext{
			requestHeaders: make(map[string]string),
			ids:            make(map[string]string),
		}), nil
	})

	registerGivenSteps(sc)
	registerRequestSteps(sc)
	registerResponseSteps(sc)
}

func registerGivenSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the user "([^"]*)" is registered with password "([^"]*)"$`, theUserIsRegistered)
	sc.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAs)
	sc.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	sc.Step(`^I have a balance "([^"]*)" in "([^"]*)"$`, iHaveABalance)
	sc.Step(`^the balance "([^"]*)" received "([^"]*)" described as "([^"]*)"$`, theBalanceReceived)
	sc.Step(`^I have a budget "([^"]*)" in "([^"]*)" with initial amount "([^"]*)"$`, iHaveABudget)
	sc.Step(`^I have a goal "([^"]*)" in "([^"]*)" with target "([^"]*)"$`, iHaveAGoal)
	sc.Step(`^the user "([^"]*)" with password "([^"]*)" has a balance "([^"]*)" in "([^"]*)"$`, otherUserHasABalance)
}

func registerRequestSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	sc.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	sc.Step(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, iSendNRequestsToWithBody)
	sc.Step(`^I set the header "([^"]*)" to "([^"]*)"$`, iSetTheHeader)
}

func registerResponseSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	sc.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	sc.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
	sc.Step(`^a password reset email should have been sent to "([^"]*)"$`, aResetEmailShouldHaveBeenSentTo)
	sc.Step(`^no password reset email should have been sent$`, noResetEmailShouldHaveBeenSent)
}

// emailFor derives a deterministic address from a username so given steps
// and feature files agree on it.
func emailFor(username string) string {
	return strings.ToLower(username) + "@example.com"
}

func (tc *TestContext) doRequest(method, endpoint, body string) error {
	endpoint = tc.replacePlaceholders(endpoint)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(tc.replacePlaceholders(body))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(strings.ToUpper(method), endpoint, reader)
	req.Header.Set("Content-Type", "application/json")
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}
	for k, v := range tc.requestHeaders {
		req.Header.Set(k, tc.replacePlaceholders(v))
	}

	tc.response = httptest.NewRecorder()
	appEngine.ServeHTTP(tc.response, req)
	tc.responseBody = tc.response.Body.Bytes()
	return nil
}

var resetTokenPattern = regexp.MustCompile(`token=([^"&\s]+)`)

// replacePlaceholders swaps {balance:Name}, {budget:Name}, {goal:Name},
// {access_token}, {refresh_token} and {reset_token} for live values.
func (tc *TestContext) replacePlaceholders(s string) string {
	for key, id := range tc.ids {
		s = strings.ReplaceAll(s, "{"+key+"}", id)
	}
	s = strings.ReplaceAll(s, "{access_token}", tc.accessToken)
	s = strings.ReplaceAll(s, "{refresh_token}", tc.refreshToken)
	if strings.Contains(s, "{reset_token}") {
		s = strings.ReplaceAll(s, "{reset_token}", lastResetToken())
	}
	return s
}

// lastResetToken extracts the token from the most recent captured email.
func lastResetToken() string {
	if len(appEmailSender.SentEmails) == 0 {
		return ""
	}
	last := appEmailSender.SentEmails[len(appEmailSender.SentEmails)-1]
	match := resetTokenPattern.FindStringSubmatch(last.HTML)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

func (tc *TestContext) decodedBody() (map[string]any, error) {
	var body map[string]any
	if err := json.Unmarshal(tc.responseBody, &body); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w (body: %s)", err, tc.responseBody)
	}
	return body, nil
}

// lookupField walks a dot separated path through the decoded response,
// treating numeric segments as list indices.
func lookupField(body map[string]any, path string) (any, bool) {
	var current any = body
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}

func formatFieldValue(value any) string {
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}

func theUserIsRegistered(ctx context.Context, username, password string) error {
	tc := GetTestContext(ctx)
	saved := tc.accessToken
	tc.accessToken = ""
	defer func() { tc.accessToken = saved }()

	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, emailFor(username), password)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", body); err != nil {
		return err
	}
	if tc.response.Code != http.StatusCreated {
		return fmt.Errorf("registering %q failed with status %d: %s", username, tc.response.Code, tc.responseBody)
	}
	return nil
}

func iAmLoggedInAs(ctx context.Context, username, password string) error {
	tc := GetTestContext(ctx)
	tc.accessToken = ""

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/login", body); err != nil {
		return err
	}
	if tc.response.Code != http.StatusOK {
		return fmt.Errorf("login as %q failed with status %d: %s", username, tc.response.Code, tc.responseBody)
	}

	decoded, err := tc.decodedBody()
	if err != nil {
		return err
	}
	tc.accessToken, _ = decoded["access_token"].(string)
	tc.refreshToken, _ = decoded["refresh_token"].(string)
	if tc.accessToken == "" {
		return fmt.Errorf("login response is missing an access token: %s", tc.responseBody)
	}
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.accessToken = ""
	tc.refreshToken = ""
	return nil
}

func (tc *TestContext) createNamed(kind, endpoint, body string) error {
	if tc.accessToken == "" {
		return fmt.Errorf("creating a %s requires a logged in user", kind)
	}
	if err := tc.doRequest(http.MethodPost, endpoint, body); err != nil {
		return err
	}
	if tc.response.Code != http.StatusCreated {
		return fmt.Errorf("creating %s failed with status %d: %s", kind, tc.response.Code, tc.responseBody)
	}
	decoded, err := tc.decodedBody()
	if err != nil {
		return err
	}
	id, _ := decoded["id"].(string)
	if id == "" {
		return fmt.Errorf("create %s response is missing an id: %s", kind, tc.responseBody)
	}
	name, _ := decoded["name"].(string)
	tc.ids[kind+":"+name] = id
	return nil
}

func iHaveABalance(ctx context.Context, name, currency string) error {
	tc := GetTestContext(ctx)
	body := fmt.Sprintf(`{"name":%q,"currency":%q,"annual_income_percentage":0}`, name, currency)
	return tc.createNamed("balance", "/api/v1/balances", body)
}

func theBalanceReceived(ctx context.Context, name, amount, description string) error {
	tc := GetTestContext(ctx)
	balanceID, ok := tc.ids["balance:"+name]
	if !ok {
		return fmt.Errorf("unknown balance %q", name)
	}
	parsed, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	body := fmt.Sprintf(`{"balance_id":%q,"amount":%g,"description":%q}`, balanceID, parsed, description)
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", body); err != nil {
		return err
	}
	if tc.response.Code != http.StatusCreated {
		return fmt.Errorf("recording transaction failed with status %d: %s", tc.response.Code, tc.responseBody)
	}
	decoded, err := tc.decodedBody()
	if err != nil {
		return err
	}
	if id, _ := decoded["id"].(string); id != "" {
		tc.ids["transaction:"+description] = id
	}
	return nil
}

func iHaveABudget(ctx context.Context, name, currency, initialAmount string) error {
	tc := GetTestContext(ctx)
	parsed, err := strconv.ParseFloat(initialAmount, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", initialAmount, err)
	}
	body := fmt.Sprintf(`{"name":%q,"currency":%q,"initial_amount":%g}`, name, currency, parsed)
	return tc.createNamed("budget", "/api/v1/budgets", body)
}

func iHaveAGoal(ctx context.Context, name, currency, target string) error {
	tc := GetTestContext(ctx)
	parsed, err := strconv.ParseFloat(target, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", target, err)
	}
	body := fmt.Sprintf(`{"name":%q,"currency":%q,"initial_amount":%g}`, name, currency, parsed)
	return tc.createNamed("goal", "/api/v1/goals", body)
}

// otherUserHasABalance registers and logs in a second user, creates a
// balance on their account, then restores the original session.
func otherUserHasABalance(ctx context.Context, username, password, name, currency string) error {
	tc := GetTestContext(ctx)
	savedAccess := tc.accessToken
	savedRefresh := tc.refreshToken

	if err := theUserIsRegistered(ctx, username, password); err != nil {
		return err
	}
	if err := iAmLoggedInAs(ctx, username, password); err != nil {
		return err
	}
	if err := iHaveABalance(ctx, name, currency); err != nil {
		return err
	}

	tc.accessToken = savedAccess
	tc.refreshToken = savedRefresh
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return GetTestContext(ctx).doRequest(method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return GetTestContext(ctx).doRequest(method, endpoint, body.Content)
}

func iSendNRequestsToWithBody(ctx context.Context, count int, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	for i := 0; i < count; i++ {
		if err := tc.doRequest(method, endpoint, body.Content); err != nil {
			return err
		}
	}
	return nil
}

func iSetTheHeader(ctx context.Context, name, value string) error {
	GetTestContext(ctx).requestHeaders[name] = value
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no request has been sent yet")
	}
	if tc.response.Code != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, tc.response.Code, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), tc.replacePlaceholders(expected)) {
		return fmt.Errorf("response %s does not contain %q", tc.responseBody, expected)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	decoded, err := tc.decodedBody()
	if err != nil {
		return err
	}
	value, ok := lookupField(decoded, path)
	if !ok {
		return fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
	}
	got := formatFieldValue(value)
	want := tc.replacePlaceholders(expected)
	if got != want {
		return fmt.Errorf("field %q = %q, expected %q", path, got, want)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	decoded, err := tc.decodedBody()
	if err != nil {
		return err
	}
	if _, ok := lookupField(decoded, path); !ok {
		return fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
	}
	return nil
}

func theResponseListShouldHaveItems(ctx context.Context, path string, count int) error {
	tc := GetTestContext(ctx)
	decoded, err := tc.decodedBody()
	if err != nil {
		return err
	}
	value, ok := lookupField(decoded, path)
	if !ok {
		return fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list: %s", path, tc.responseBody)
	}
	if len(list) != count {
		return fmt.Errorf("list %q has %d items, expected %d", path, len(list), count)
	}
	return nil
}

func aResetEmailShouldHaveBeenSentTo(ctx context.Context, address string) error {
	for _, sent := range appEmailSender.SentEmails {
		if sent.To == address {
			if !strings.Contains(sent.HTML, testResetURLBase+"?token=") {
				return fmt.Errorf("email to %q does not carry a reset link: %s", address, sent.HTML)
			}
			return nil
		}
	}
	return fmt.Errorf("no email was sent to %q (%d emails captured)", address, len(appEmailSender.SentEmails))
}

func noResetEmailShouldHaveBeenSent(ctx context.Context) error {
	if n := len(appEmailSender.SentEmails); n > 0 {
		return fmt.Errorf("expected no emails, %d were sent", n)
	}
	return nil
}
