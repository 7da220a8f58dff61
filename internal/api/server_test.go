package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/model-registry-bff/internal/api"
	"github.com/stacklok/model-registry-bff/internal/mocks"
	"github.com/stacklok/model-registry-bff/internal/models"
	"github.com/stacklok/model-registry-bff/internal/service"
	"github.com/stacklok/model-registry-bff/internal/service/inmemory"
	svcmocks "github.com/stacklok/model-registry-bff/internal/service/mocks"
)

func serve(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := svcmocks.NewMockModelRegistryService(ctrl)
	// No expectations needed - health check doesn't call service
	server := api.NewServer(mockSvc)

	rr := serve(t, server, "/healthcheck")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "available", response["status"])
	assert.Contains(t, response, "system_info")
}

func TestReadinessEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		setupMock      func(*svcmocks.MockModelRegistryService)
		expectedStatus int
	}{
		{
			name: "service ready",
			setupMock: func(m *svcmocks.MockModelRegistryService) {
				m.EXPECT().CheckReadiness(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "service not ready",
			setupMock: func(m *svcmocks.MockModelRegistryService) {
				m.EXPECT().CheckReadiness(gomock.Any()).Return(fmt.Errorf("service not initialized"))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := svcmocks.NewMockModelRegistryService(ctrl)
			tt.setupMock(mockSvc)

			rr := serve(t, api.NewServer(mockSvc), "/readiness")
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRegisteredModelEndpoints(t *testing.T) {
	t.Parallel()

	model := mocks.NewTestRegisteredModel("fraud",
		mocks.WithModelID("1"),
		mocks.WithModelLabels("owner", "team"),
	)

	tests := []struct {
		name           string
		path           string
		setupMock      func(*svcmocks.MockModelRegistryService)
		expectedStatus int
		expectedBody   any
	}{
		{
			name: "list registered models",
			path: "/api/v1/model_registry/mr/registered_models",
			setupMock: func(m *svcmocks.MockModelRegistryService) {
				m.EXPECT().ListRegisteredModels(gomock.Any(), "mr").
					Return([]models.RegisteredModel{model}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   mocks.MockBFFResponse(mocks.MockList(model)),
		},
		{
			name: "empty list",
			path: "/api/v1/model_registry/mr/registered_models",
			setupMock: func(m *svcmocks.MockModelRegistryService) {
				m.EXPECT().ListRegisteredModels(gomock.Any(), "mr").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   mocks.MockBFFResponse(mocks.MockList[models.RegisteredModel]()),
		},
		{
			name: "get registered model",
			path: "/api/v1/model_registry/mr/registered_models/1",
			setupMock: func(m *svcmocks.MockModelRegistryService) {
				m.EXPECT().GetRegisteredModel(gomock.Any(), "mr", "1").Return(&model, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   mocks.MockBFFResponse(model),
		},
		{
			name: "registered model not found",
			path: "/api/v1/model_registry/mr/registered_models/9",
			setupMock: func(m *svcmocks.MockModelRegistryService) {
				m.EXPECT().GetRegisteredModel(gomock.Any(), "mr", "9").
					Return(nil, fmt.Errorf("%w: 9", service.ErrRegisteredModelNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: models.ErrorEnvelope{Error: models.HTTPError{
				Code:    "404",
				Message: "registered model not found: 9",
			}},
		},
		{
			name: "unexpected service error",
			path: "/api/v1/model_registry/mr/registered_models",
			setupMock: func(m *svcmocks.MockModelRegistryService) {
				m.EXPECT().ListRegisteredModels(gomock.Any(), "mr").
					Return(nil, fmt.Errorf("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: models.ErrorEnvelope{Error: models.HTTPError{
				Code:    "500",
				Message: "internal server error",
			}},
		},
		{
			name: "whitespace id is rejected",
			path: "/api/v1/model_registry/mr/registered_models/a%20b",
			setupMock: func(_ *svcmocks.MockModelRegistryService) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: models.ErrorEnvelope{Error: models.HTTPError{
				Code:    "400",
				Message: "registeredModelId cannot contain whitespace",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := svcmocks.NewMockModelRegistryService(ctrl)
			tt.setupMock(mockSvc)

			rr := serve(t, api.NewServer(mockSvc), tt.path)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			expected, err := json.Marshal(tt.expectedBody)
			require.NoError(t, err)
			assert.JSONEq(t, string(expected), rr.Body.String())
		})
	}
}

func TestServer_WithFixtures(t *testing.T) {
	t.Parallel()

	svc, err := inmemory.New([]models.ModelRegistry{{Name: "model-registry"}}, mocks.DefaultFixtureSet())
	require.NoError(t, err)
	server := api.NewServer(svc, api.WithMiddlewares(api.LoggingMiddleware))

	t.Run("list registries", func(t *testing.T) {
		t.Parallel()

		rr := serve(t, server, "/api/v1/model_registry")
		require.Equal(t, http.StatusOK, rr.Code)

		var body models.ModelRegistryBody[[]models.ModelRegistry]
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, []models.ModelRegistry{{Name: "model-registry"}}, body.Data)
	})

	t.Run("list versions", func(t *testing.T) {
		t.Parallel()

		rr := serve(t, server, "/api/v1/model_registry/model-registry/registered_models/1/versions")
		require.Equal(t, http.StatusOK, rr.Code)

		var body models.ModelRegistryBody[models.List[models.ModelVersion]]
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Data.Size)
		assert.Equal(t, []string{"Financial data", "Fraud detection"}, body.Data.Items[0].CustomProperties.Labels())
	})

	t.Run("get version", func(t *testing.T) {
		t.Parallel()

		rr := serve(t, server, "/api/v1/model_registry/model-registry/model_versions/3")
		require.Equal(t, http.StatusOK, rr.Code)

		var body models.ModelRegistryBody[models.ModelVersion]
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, models.NewDoubleValue(0.87), body.Data.CustomProperties["accuracy"])
	})

	t.Run("list artifacts", func(t *testing.T) {
		t.Parallel()

		rr := serve(t, server, "/api/v1/model_registry/model-registry/model_versions/1/artifacts")
		require.Equal(t, http.StatusOK, rr.Code)

		var body models.ModelRegistryBody[models.List[models.ModelArtifact]]
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, "s3://models/fraud/v1", body.Data.Items[0].URI)
	})

	t.Run("unknown registry", func(t *testing.T) {
		t.Parallel()

		rr := serve(t, server, "/api/v1/model_registry/other/registered_models")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
