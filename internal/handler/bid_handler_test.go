package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autobid-server/internal/model"
	"autobid-server/internal/service"
)

func TestBidHandler_Place(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the legacy email alias into bidder_email", func(t *testing.T) {
		bidStore := new(service.MockBidStore)
		router, tokens := newTestRouter(t, new(service.MockCarStore), bidStore)

		bidStore.On("Insert", mock.Anything, mock.MatchedBy(func(bid model.Bid) bool {
			return bid.BidderEmail == "a@x.com" && bid.Status == model.BidStatusPending
		}), "a@x.com").Return(model.Bid{ID: "b1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/bid",
			strings.NewReader(`{"email":"a@x.com","amount":100}`))
		req.AddCookie(sessionCookie(t, tokens, "a@x.com"))

		rec := doRequest(router, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var result model.MutationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "b1", result.InsertedID)
		bidStore.AssertExpectations(t)
	})

	t.Run("anonymous bid is rejected", func(t *testing.T) {
		bidStore := new(service.MockBidStore)
		router, _ := newTestRouter(t, new(service.MockCarStore), bidStore)

		req := httptest.NewRequest(http.MethodPost, "/bid", strings.NewReader(`{"amount":100}`))
		rec := doRequest(router, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bidStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBidHandler_Listings(t *testing.T) {
	t.Parallel()

	t.Run("my-bids requires the path email to match the session", func(t *testing.T) {
		bidStore := new(service.MockBidStore)
		router, tokens := newTestRouter(t, new(service.MockCarStore), bidStore)

		req := httptest.NewRequest(http.MethodGet, "/my-bids/alice@x.com", nil)
		req.AddCookie(sessionCookie(t, tokens, "bob@x.com"))

		rec := doRequest(router, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		bidStore.AssertNotCalled(t, "FindByBidder", mock.Anything, mock.Anything)
	})

	t.Run("my-bids returns the party's bids", func(t *testing.T) {
		bidStore := new(service.MockBidStore)
		router, tokens := newTestRouter(t, new(service.MockCarStore), bidStore)

		bidStore.On("FindByBidder", mock.Anything, "alice@x.com").
			Return([]model.Bid{{ID: "b1", BidderEmail: "alice@x.com", Status: model.BidStatusPending}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/my-bids/alice@x.com", nil)
		req.AddCookie(sessionCookie(t, tokens, "alice@x.com"))

		rec := doRequest(router, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var bids []model.Bid
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bids))
		require.Len(t, bids, 1)
		assert.Equal(t, model.BidStatusPending, bids[0].Status)
	})

	t.Run("my-request returns the seller's incoming bids", func(t *testing.T) {
		bidStore := new(service.MockBidStore)
		router, tokens := newTestRouter(t, new(service.MockCarStore), bidStore)

		bidStore.On("FindBySeller", mock.Anything, "seller@x.com").
			Return([]model.Bid{{ID: "b2", SellerEmail: "seller@x.com", Status: model.BidStatusAccepted}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/my-request/seller@x.com", nil)
		req.AddCookie(sessionCookie(t, tokens, "seller@x.com"))

		rec := doRequest(router, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var bids []model.Bid
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bids))
		require.Len(t, bids, 1)
		assert.Equal(t, model.BidStatusAccepted, bids[0].Status)
	})
}

func TestBidHandler_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("applies a valid decision", func(t *testing.T) {
		bidStore := new(service.MockBidStore)
		router, tokens := newTestRouter(t, new(service.MockCarStore), bidStore)

		bidStore.On("UpdateStatus", mock.Anything, "b1", model.BidStatusAccepted).Return(int64(1), nil)

		req := httptest.NewRequest(http.MethodPatch, "/bid/b1", strings.NewReader(`{"status":"accepted"}`))
		req.AddCookie(sessionCookie(t, tokens, "seller@x.com"))

		rec := doRequest(router, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var result model.MutationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, int64(1), result.ModifiedCount)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		bidStore := new(service.MockBidStore)
		router, tokens := newTestRouter(t, new(service.MockCarStore), bidStore)

		req := httptest.NewRequest(http.MethodPatch, "/bid/b1", strings.NewReader(`{"status":"maybe"}`))
		req.AddCookie(sessionCookie(t, tokens, "seller@x.com"))

		rec := doRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		bidStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
