package testutil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"river-watch/internal/config"
	"river-watch/internal/data"
	"river-watch/internal/middlewares"
	"river-watch/internal/mocks"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing a handler or flow.
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockCache      *mocks.MockCacheProvider
	MockSession    *mocks.MockSessionProvider
	MockOIDC       *mocks.MockOIDCProvider
	MockStorage    *mocks.MockTelemetryStore
	LogHandler     *TestLogHandler
}

func NewTestContext(t *testing.T) *TestContext {
	cfg := &config.Config{}

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockCache := mocks.NewMockCacheProvider(ctrl)
	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockOIDC := mocks.NewMockOIDCProvider(ctrl)
	mockStorage := mocks.NewMockTelemetryStore(ctrl)

	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:        context.Background(),
		Config:         cfg,
		Logger:         logger,
		SessionManager: mockSession,
		OIDCProvider:   mockOIDC,
		Cache:          mockCache,
		Storage:        mockStorage,
		Request:        nil,
		Response:       rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        nil,
		Response:       rr,
		MockController: ctrl,
		MockCache:      mockCache,
		MockSession:    mockSession,
		MockOIDC:       mockOIDC,
		MockStorage:    mockStorage,
		LogHandler:     logHandler,
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults.
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	tc := NewTestContext(t)

	req := httptest.NewRequest(method, url, nil)
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()

	return tc
}

// Finish should be called at the end of tests to clean up mocks.
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogsContainMessage(t *testing.T, level slog.Level, message string) {
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

func (tc *TestContext) GetLogRecords() []TestLogRecord {
	return tc.LogHandler.GetRecords()
}

func (tc *TestContext) ClearLogRecords() {
	tc.LogHandler.Reset()
}

// CallHandler executes a handler with the test context.
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code.
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header.
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertRedirect checks for a redirect status and Location header.
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, expectedLocation string) {
	tc.AssertStatus(t, expectedStatus)
	if loc := tc.Response.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Expected redirect to %s, got %s", expectedLocation, loc)
	}
}

// GetJSONResponse parses the response body as JSON.
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// GetJSONResponseArray parses the response body as a JSON array.
func (tc *TestContext) GetJSONResponseArray(t *testing.T) []interface{} {
	var response []interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON array response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response.
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONString checks a specific string field in a JSON response.
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertJSONNull checks that a field is present and explicitly null.
func (tc *TestContext) AssertJSONNull(t *testing.T, field string) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	if actual != nil {
		t.Errorf("Expected %s to be null, got %v", field, actual)
	}
}

// AssertJSONObject validates an object field with expected key-value pairs.
func (tc *TestContext) AssertJSONObject(t *testing.T, field string, expectedFields map[string]interface{}) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualObj, ok := actual.(map[string]interface{})
	if !ok {
		t.Errorf("Expected %s to be an object, got %T", field, actual)
		return
	}

	for key, expectedValue := range expectedFields {
		if actualValue, keyExists := actualObj[key]; !keyExists {
			t.Errorf("Expected field %s.%s to exist", field, key)
		} else if actualValue != expectedValue {
			t.Errorf("Expected %s.%s to be %v, got %v", field, key, expectedValue, actualValue)
		}
	}
}

func (tc *TestContext) AssertJSONArrayLength(t *testing.T, expected int) {
	response := tc.GetJSONResponseArray(t)
	if len(response) != expected {
		t.Errorf("Expected JSON array length %d, got %d", expected, len(response))
	}
}

// WithConfig allows you to override the default config for specific tests.
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithLogger allows you to override the default logger for specific tests.
func (tc *TestContext) WithLogger(logger *slog.Logger) *TestContext {
	tc.AppContext.Logger = logger
	return tc
}

// WithCache allows you to override the cache with a different mock or implementation.
func (tc *TestContext) WithCache(cache data.CacheProvider) *TestContext {
	tc.AppContext.Cache = cache
	return tc
}

// WithDataService wires a data service built over the test's store and cache.
func (tc *TestContext) WithDataService(service *data.Service) *TestContext {
	tc.AppContext.DataService = service
	return tc
}

// WithSessionManager allows you to override the session manager with a different mock or implementation.
func (tc *TestContext) WithSessionManager(sm middlewares.SessionProvider) *TestContext {
	tc.AppContext.SessionManager = sm
	return tc
}

// WithQueryParam adds a query parameter to the request.
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// WithURLParam injects a chi route parameter, mirroring what the router does
// when a pattern like /api/stations/{station} matches.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)

	req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, routeCtx))
	return tc.WithRequest(req)
}

// WithHeader adds a header to the request.
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithRequest allows you to set a custom request.
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

// ExpectCacheGet sets up an expectation for cache.Get().
func (tc *TestContext) ExpectCacheGet(key string, returnData []byte, found bool) *gomock.Call {
	return tc.MockCache.EXPECT().Get(gomock.Any(), key).Return(returnData, found)
}

// ExpectCacheSet sets up an expectation for cache.Set().
func (tc *TestContext) ExpectCacheSet(key string, value any, ttl time.Duration) *gomock.Call {
	return tc.MockCache.EXPECT().Set(gomock.Any(), key, value, ttl)
}

// ExpectSessionIsAuthenticated sets up an expectation for session.IsAuthenticated().
func (tc *TestContext) ExpectSessionIsAuthenticated(result bool) *gomock.Call {
	return tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(result)
}

// ExpectSessionGetUserProfile sets up an expectation for session.GetUserProfile().
func (tc *TestContext) ExpectSessionGetUserProfile(profile any, ok bool) *gomock.Call {
	return tc.MockSession.EXPECT().GetUserProfile(tc.AppContext).Return(profile, ok)
}
