package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"autobid-server/internal/middleware"
	"autobid-server/internal/model"
	"autobid-server/internal/service"
	"autobid-server/pkg/apierror"
)

type BidHandler struct {
	bids *service.BidService
}

func NewBidHandler(bids *service.BidService) *BidHandler {
	return &BidHandler{bids: bids}
}

func (h *BidHandler) Place(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("authentication required"))
		return
	}

	var payload model.CreateBidRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	created, err := h.bids.Place(r.Context(), payload, claims.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MutationResult{
		Acknowledged: true,
		InsertedID:   created.ID,
	})
}

// MyBids returns the caller's bids as a bidder.
func (h *BidHandler) MyBids(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !ownerMatches(r, email) {
		writeError(w, apierror.Forbidden("Forbidden"))
		return
	}

	bids, err := h.bids.ListForParty(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bids)
}

// MyRequests returns bids placed against the caller's own listings.
func (h *BidHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !ownerMatches(r, email) {
		writeError(w, apierror.Forbidden("Forbidden"))
		return
	}

	bids, err := h.bids.ListForSeller(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bids)
}

func (h *BidHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id := chi.URLParam(r, "id")

	var payload model.UpdateBidStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	result, err := h.bids.SetStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
