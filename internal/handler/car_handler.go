package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"autobid-server/internal/middleware"
	"autobid-server/internal/model"
	"autobid-server/internal/service"
	"autobid-server/pkg/apierror"
)

type CarHandler struct {
	catalog *service.CatalogService
}

func NewCarHandler(catalog *service.CatalogService) *CarHandler {
	return &CarHandler{catalog: catalog}
}

// List serves the paginated, filterable storefront listing.
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	q := service.ParseCarQuery(r.URL.Query())

	cars, err := h.catalog.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cars)
}

// Count serves the total matching count used for client-side pagination.
// It composes the filter exactly like List, minus sort and window.
func (h *CarHandler) Count(w http.ResponseWriter, r *http.Request) {
	q := service.ParseCarCountQuery(r.URL.Query())

	count, err := h.catalog.Count(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CountResponse{Count: count})
}

func (h *CarHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	cars, err := h.catalog.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cars)
}

// GetByID returns the car or a null body when no record matches.
func (h *CarHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	car, err := h.catalog.GetByID(r.Context(), id)
	if errors.Is(err, model.ErrCarNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, car)
}

// ListForOwner returns the caller's own listings. The path email must
// match the authenticated identity exactly.
func (h *CarHandler) ListForOwner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !ownerMatches(r, email) {
		writeError(w, apierror.Forbidden("Forbidden"))
		return
	}

	cars, err := h.catalog.ListForOwner(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("authentication required"))
		return
	}

	var payload model.Car
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	created, err := h.catalog.Create(r.Context(), payload, claims.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MutationResult{
		Acknowledged: true,
		InsertedID:   created.ID,
	})
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id := chi.URLParam(r, "id")

	var patch model.CarPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	result, err := h.catalog.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.catalog.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ownerMatches compares the authenticated identity against a path email.
// Exact string equality, no case folding.
func ownerMatches(r *http.Request, email string) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	return ok && claims.Email == email
}
