// Package v1 provides the model registry BFF handlers served under /api/v1.
package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/model-registry-bff/internal/api/common"
	"github.com/stacklok/model-registry-bff/internal/mocks"
	"github.com/stacklok/model-registry-bff/internal/service"
	"github.com/stacklok/model-registry-bff/pkg/versions"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string                `json:"status" example:"available"`
	SystemInfo versions.VersionInfo `json:"system_info"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status string `json:"status" example:"ready"`
}

// Routes holds the handlers of the model registry API
type Routes struct {
	service service.ModelRegistryService
}

// NewRoutes creates a new Routes instance with the provided service
func NewRoutes(svc service.ModelRegistryService) *Routes {
	return &Routes{
		service: svc,
	}
}

// HealthRouter creates a router for health check endpoints
func HealthRouter(svc service.ModelRegistryService) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthcheck", healthHandler)
	r.Get("/readiness", readinessHandler(svc))

	return r
}

// Router creates the model registry router. It is meant to be mounted at
// /api/v1/model_registry.
func Router(svc service.ModelRegistryService) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()
	r.Get("/", routes.listModelRegistries)
	r.Route("/{registryName}", func(r chi.Router) {
		r.Get("/registered_models", routes.listRegisteredModels)
		r.Get("/registered_models/{registeredModelId}", routes.getRegisteredModel)
		r.Get("/registered_models/{registeredModelId}/versions", routes.listModelVersions)
		r.Get("/model_versions/{modelVersionId}", routes.getModelVersion)
		r.Get("/model_versions/{modelVersionId}/artifacts", routes.listModelArtifacts)
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSONResponse(w, HealthResponse{
		Status:     "available",
		SystemInfo: versions.GetVersionInfo(),
	}, http.StatusOK)
}

func readinessHandler(svc service.ModelRegistryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckReadiness(r.Context()); err != nil {
			common.WriteErrorResponse(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		common.WriteJSONResponse(w, ReadinessResponse{Status: "ready"}, http.StatusOK)
	}
}

func (rr *Routes) listModelRegistries(w http.ResponseWriter, r *http.Request) {
	registries, err := rr.service.ListModelRegistries(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSONResponse(w, mocks.MockBFFResponse(registries), http.StatusOK)
}

func (rr *Routes) listRegisteredModels(w http.ResponseWriter, r *http.Request) {
	registryName, ok := urlParam(w, r, "registryName")
	if !ok {
		return
	}
	list, err := rr.service.ListRegisteredModels(r.Context(), registryName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSONResponse(w, mocks.MockBFFResponse(mocks.MockList(list...)), http.StatusOK)
}

func (rr *Routes) getRegisteredModel(w http.ResponseWriter, r *http.Request) {
	registryName, ok := urlParam(w, r, "registryName")
	if !ok {
		return
	}
	id, ok := urlParam(w, r, "registeredModelId")
	if !ok {
		return
	}
	model, err := rr.service.GetRegisteredModel(r.Context(), registryName, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSONResponse(w, mocks.MockBFFResponse(model), http.StatusOK)
}

func (rr *Routes) listModelVersions(w http.ResponseWriter, r *http.Request) {
	registryName, ok := urlParam(w, r, "registryName")
	if !ok {
		return
	}
	id, ok := urlParam(w, r, "registeredModelId")
	if !ok {
		return
	}
	list, err := rr.service.ListModelVersions(r.Context(), registryName, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSONResponse(w, mocks.MockBFFResponse(mocks.MockList(list...)), http.StatusOK)
}

func (rr *Routes) getModelVersion(w http.ResponseWriter, r *http.Request) {
	registryName, ok := urlParam(w, r, "registryName")
	if !ok {
		return
	}
	id, ok := urlParam(w, r, "modelVersionId")
	if !ok {
		return
	}
	version, err := rr.service.GetModelVersion(r.Context(), registryName, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSONResponse(w, mocks.MockBFFResponse(version), http.StatusOK)
}

func (rr *Routes) listModelArtifacts(w http.ResponseWriter, r *http.Request) {
	registryName, ok := urlParam(w, r, "registryName")
	if !ok {
		return
	}
	id, ok := urlParam(w, r, "modelVersionId")
	if !ok {
		return
	}
	list, err := rr.service.ListModelArtifacts(r.Context(), registryName, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	common.WriteJSONResponse(w, mocks.MockBFFResponse(mocks.MockList(list...)), http.StatusOK)
}

// urlParam reads a path parameter and writes a 400 response when it is invalid
func urlParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value, err := common.GetAndValidateURLParam(r, name)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRegistryNotFound),
		errors.Is(err, service.ErrRegisteredModelNotFound),
		errors.Is(err, service.ErrModelVersionNotFound):
		common.WriteErrorResponse(w, err.Error(), http.StatusNotFound)
	default:
		slog.Error("Model registry request failed", "error", err)
		common.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
	}
}
