package health

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"backoffice/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()

	db := setupDB(t, allModels()...)

	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(db, mockClient, "test-bucket", zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleHealthCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "ok", body["database"]["status"])
	assert.Equal(t, "ok", body["storage"]["status"])
}

func TestHandleHealthCheck_StorageError(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "error", body["storage"]["status"])
}

func TestHandleDatabaseCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/health/database", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report DatabaseReport
	json.NewDecoder(resp.Body).Decode(&report)
	assert.Empty(t, report.MissingTables)
}

func TestHandleStorageCheck_MissingWithFix(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)

	req := httptest.NewRequest("GET", "/health/storage?fix=true", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertExpectations(t)
}

func TestHandleStorageCheck_NumericFixFlag(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)

	// The fix flag goes through the shared coercion helpers, so "1" counts.
	req := httptest.NewRequest("GET", "/health/storage?fix=1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertExpectations(t)
}

func TestHandleStorageCheck_Exists(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	req := httptest.NewRequest("GET", "/health/storage", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "checked", body["status"])
	assert.Equal(t, true, body["exists"])
}
