package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightx-ai/insightx-be/internal/core/export"
	"github.com/insightx-ai/insightx-be/internal/core/llm"
	"github.com/insightx-ai/insightx-be/internal/core/profiler"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/services"
)

type stubProvider struct{ reply string }

func (s *stubProvider) Chat(context.Context, string, []llm.Message) (string, error) {
	return s.reply, nil
}

func (s *stubProvider) GetProviderName() string { return "stub" }

const testCSV = "date,amount,category\n" +
	"2024-01-10,10,A\n" +
	"2024-01-20,20,B\n" +
	"2024-02-05,30,A\n"

func newTestApp(t *testing.T) (*fiber.App, *services.DatasetService) {
	t.Helper()

	llmService := llm.NewServiceWithProvider(&stubProvider{reply: "the answer"})
	datasetService := services.NewDatasetService(profiler.Options{}, nil)
	chatService := services.NewChatService(llmService, datasetService, nil)
	exportService := export.NewService()

	chatHandler := NewChatHandler(chatService)
	sessionHandler := NewSessionHandler(chatService)
	uploadHandler := NewUploadHandler(datasetService)
	dashboardHandler := NewDashboardHandler(datasetService)
	exportHandler := NewExportHandler(datasetService, exportService)
	healthHandler := NewHealthHandler(llmService, datasetService, chatService)

	app := fiber.New()
	app.Get("/api/health", healthHandler.GetHealth)
	app.Post("/api/chat", chatHandler.PostChat)
	app.Get("/api/overview", chatHandler.GetOverview)
	app.Get("/api/session/:id", sessionHandler.GetSession)
	app.Delete("/api/session/:id", sessionHandler.ClearSession)
	app.Post("/api/upload", uploadHandler.UploadDataset)
	app.Get("/api/profile", uploadHandler.GetProfile)
	app.Get("/api/charts", dashboardHandler.GetCharts)
	app.Get("/api/export", exportHandler.ExportProfile)

	return app, datasetService
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	app, datasets := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	body := decodeJSON(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "stub", body["provider"])
	assert.Equal(t, false, body["csv_loaded"])

	_, err = datasets.Load("t.csv", strings.NewReader(testCSV))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	body = decodeJSON(t, resp)
	assert.Equal(t, true, body["csv_loaded"])
	assert.Equal(t, "t.csv", body["csv_filename"])
}

func TestUploadEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(uploadRequest(t, "transactions.csv", testCSV))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "transactions.csv", body["filename"])
	assert.Equal(t, float64(3), body["rows"])
}

func TestUploadEndpointRejectsEmptyDataset(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(uploadRequest(t, "empty.csv", "a,b\n"))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "dataset is empty", body["error"])
}

func TestUploadEndpointRequiresFile(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/upload", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileEndpoint(t *testing.T) {
	app, datasets := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, err = datasets.Load("t.csv", strings.NewReader(testCSV))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, float64(3), body["row_count"])
	assert.Equal(t, "amount", body["primary_numeric_column"])
}

func TestChartsEndpoint(t *testing.T) {
	app, datasets := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/charts", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, err = datasets.Load("t.csv", strings.NewReader(testCSV))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/charts", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.NotEmpty(t, body["cards"])
	assert.NotNil(t, body["histogram"])
}

func TestChatEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"how many rows?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "the answer", body["reply"])
	assert.NotEmpty(t, body["session_id"])
}

func TestChatEndpointValidation(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessionEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/session/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello","session_id":"s1"}`))
	req.Header.Set("Content-Type", "application/json")
	_, err = app.Test(req)
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/session/s1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "s1", body["session_id"])
	assert.Len(t, body["messages"], 2)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/session/s1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/session/s1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportEndpoint(t *testing.T) {
	app, datasets := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/export", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, err = datasets.Load("sales.csv", strings.NewReader(testCSV))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/export?format=csv", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `sales_profile.csv`)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, string(data), "# Key Figures")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/export?format=docx", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOverviewEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/overview", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "the answer", body["overview"])
	assert.NotEmpty(t, body["session_id"])
}
