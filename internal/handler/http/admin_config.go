package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/handler/http/response"
)

type AdminConfigHandler interface {
	ListPOSCategories(w http.ResponseWriter, r *http.Request)
	ListJobRoles(w http.ResponseWriter, r *http.Request)
	ListContributions(w http.ResponseWriter, r *http.Request)
	CreateContribution(w http.ResponseWriter, r *http.Request)
	DeleteContribution(w http.ResponseWriter, r *http.Request)
}

type adminConfigHandlerImpl struct {
	configService contribution.ConfigService
}

func NewAdminConfigHandler(configService contribution.ConfigService) AdminConfigHandler {
	return &adminConfigHandlerImpl{configService: configService}
}

// ListPOSCategories handles GET /admin/config/pos-categories
func (h *adminConfigHandlerImpl) ListPOSCategories(w http.ResponseWriter, r *http.Request) {
	names, err := h.configService.ListCategoryNames(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, names)
}

// ListJobRoles handles GET /admin/config/job-roles
func (h *adminConfigHandlerImpl) ListJobRoles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.configService.ListJobTitles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, titles)
}

// ListContributions handles GET /admin/config/contributions/{storeID}
func (h *adminConfigHandlerImpl) ListContributions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.configService.ListContributions(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// CreateContribution handles POST /admin/config/contributions/{storeID}
func (h *adminConfigHandlerImpl) CreateContribution(w http.ResponseWriter, r *http.Request) {
	var req contribution.CreateContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create contribution decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	created, err := h.configService.CreateContribution(r.Context(), req)
	if err != nil {
		slog.Error("Create contribution service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contribution created successfully", created)
}

// DeleteContribution handles DELETE /admin/config/contributions/{id}
func (h *adminConfigHandlerImpl) DeleteContribution(w http.ResponseWriter, r *http.Request) {
	if err := h.configService.DeleteContribution(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contribution deleted successfully", nil)
}
