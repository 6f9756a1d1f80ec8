package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumeai/resume-assistant/internal/config"
	"resumeai/resume-assistant/internal/handlers"
	"resumeai/resume-assistant/internal/repositories"
	"resumeai/resume-assistant/internal/services"
	"resumeai/resume-assistant/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8000",
			Env:            "development",
			AllowedOrigins: []string{"https://app.example.com"},
		},
		Upload: config.UploadConfig{MaxFileSize: 2 * 1024 * 1024, MaxPages: 3},
	}
}

// newTestApp wires the real services around a mocked completion client.
func newTestApp(t *testing.T, client services.CompletionClient) *fiber.App {
	t.Helper()
	cfg := testConfig()

	registry, err := services.DefaultPromptRegistry()
	require.NoError(t, err)
	promptBuilder := services.NewPromptBuilder(registry)
	pdfParser := services.NewPDFParserService(cfg.Upload.MaxPages)
	repo := repositories.NewMemorySessionRepository()
	sessions := services.NewSessionService(repo, pdfParser)
	analyzer, err := services.NewAnalyzerService(client, pdfParser, registry)
	require.NoError(t, err)

	return New(cfg, Handlers{
		Analyze:  handlers.NewAnalyzeHandler(sessions, analyzer, cfg.Upload.MaxFileSize, false),
		Chatbot:  handlers.NewChatbotHandler(sessions, services.NewChatService(repo, sessions, client, promptBuilder), cfg.Upload.MaxFileSize, false),
		JobMatch: handlers.NewJobMatchHandler(sessions, services.NewJobMatchService(client, promptBuilder), false),
		Rewrite:  handlers.NewRewriteHandler(sessions, services.NewRewriteService(client, promptBuilder), false),
	})
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return raw
}

func TestHealthIsIdempotent(t *testing.T) {
	app := newTestApp(t, new(mocks.MockCompletionClient))

	var bodies []string
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		bodies = append(bodies, string(readBody(t, resp)))
	}

	assert.JSONEq(t, `{"status":"ok"}`, bodies[0])
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestRootListsEndpoints(t *testing.T) {
	app := newTestApp(t, new(mocks.MockCompletionClient))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	var body struct {
		Message   string   `json:"message"`
		Endpoints []string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, appName, body.Message)
	assert.Contains(t, body.Endpoints, "POST /jobmatch")
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t, new(mocks.MockCompletionClient))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)

	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
}

func TestCORSAllowList(t *testing.T) {
	app := newTestApp(t, new(mocks.MockCompletionClient))

	preflight := func(origin string) *http.Response {
		req := httptest.NewRequest(http.MethodOptions, "/chatbot/respond", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	allowed := preflight("https://app.example.com")
	assert.Equal(t, "https://app.example.com", allowed.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", allowed.Header.Get(fiber.HeaderAccessControlAllowCredentials))

	denied := preflight("https://evil.example.org")
	assert.Empty(t, denied.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestCORSConfigWildcard(t *testing.T) {
	cfg := corsConfig([]string{"*"})
	assert.Equal(t, "*", cfg.AllowOrigins)
	assert.False(t, cfg.AllowCredentials)

	cfg = corsConfig([]string{"https://a.example.com", "https://b.example.com"})
	assert.Equal(t, "https://a.example.com,https://b.example.com", cfg.AllowOrigins)
	assert.True(t, cfg.AllowCredentials)
}

func TestUnknownRouteUsesErrorHandler(t *testing.T) {
	app := newTestApp(t, new(mocks.MockCompletionClient))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.EqualValues(t, http.StatusNotFound, body["code"])
}

func postForm(t *testing.T, app *fiber.App, path string, fields map[string]string) (int, map[string]any) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(readBody(t, resp), &out))
	return resp.StatusCode, out
}

func TestEndpointsRequireUploadedResume(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	app := newTestApp(t, client)

	status, _ := postForm(t, app, "/jobmatch", map[string]string{"user_id": "stranger", "job_description": "Go developer"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = postForm(t, app, "/chatbot/respond", map[string]string{"user_id": "stranger", "message": "hi"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = postForm(t, app, "/rewrite", map[string]string{"user_id": "stranger"})
	assert.Equal(t, http.StatusNotFound, status)

	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}
