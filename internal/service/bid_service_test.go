package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autobid-server/internal/model"
)

func TestBidService_Place(t *testing.T) {
	t.Parallel()

	t.Run("copies the legacy email field into bidder_email", func(t *testing.T) {
		store := new(MockBidStore)
		svc := NewBidService(store, nil)

		store.On("Insert", mock.Anything, mock.MatchedBy(func(bid model.Bid) bool {
			return bid.BidderEmail == "a@x.com" && bid.Status == model.BidStatusPending
		}), "a@x.com").Return(model.Bid{ID: "b1", BidderEmail: "a@x.com", Status: model.BidStatusPending}, nil)

		created, err := svc.Place(context.Background(), model.CreateBidRequest{
			Email:  "a@x.com",
			Amount: 100,
		}, "a@x.com")

		require.NoError(t, err)
		assert.Equal(t, "a@x.com", created.BidderEmail)
		assert.Equal(t, model.BidStatusPending, created.Status)
		store.AssertExpectations(t)
	})

	t.Run("prefers an explicit bidder_email over the alias", func(t *testing.T) {
		store := new(MockBidStore)
		svc := NewBidService(store, nil)

		store.On("Insert", mock.Anything, mock.MatchedBy(func(bid model.Bid) bool {
			return bid.BidderEmail == "real@x.com"
		}), "alias@x.com").Return(model.Bid{ID: "b1"}, nil)

		_, err := svc.Place(context.Background(), model.CreateBidRequest{
			BidderEmail: "real@x.com",
			Email:       "alias@x.com",
			Amount:      50,
		}, "caller@x.com")

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("falls back to the caller identity", func(t *testing.T) {
		store := new(MockBidStore)
		svc := NewBidService(store, nil)

		store.On("Insert", mock.Anything, mock.MatchedBy(func(bid model.Bid) bool {
			return bid.BidderEmail == "caller@x.com"
		}), "").Return(model.Bid{ID: "b1"}, nil)

		_, err := svc.Place(context.Background(), model.CreateBidRequest{Amount: 10}, "caller@x.com")

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("status in the payload is ignored", func(t *testing.T) {
		store := new(MockBidStore)
		svc := NewBidService(store, nil)

		store.On("Insert", mock.Anything, mock.MatchedBy(func(bid model.Bid) bool {
			return bid.Status == model.BidStatusPending
		}), mock.Anything).Return(model.Bid{}, nil)

		// CreateBidRequest has no status field at all; pending is forced.
		_, err := svc.Place(context.Background(), model.CreateBidRequest{Amount: 10}, "caller@x.com")
		require.NoError(t, err)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		store := new(MockBidStore)
		svc := NewBidService(store, nil)

		_, err := svc.Place(context.Background(), model.CreateBidRequest{Amount: 0}, "caller@x.com")

		require.Error(t, err)
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBidService_SetStatus(t *testing.T) {
	t.Parallel()

	t.Run("accepts known statuses", func(t *testing.T) {
		store := new(MockBidStore)
		svc := NewBidService(store, nil)

		store.On("UpdateStatus", mock.Anything, "b1", model.BidStatusAccepted).Return(int64(1), nil)

		result, err := svc.SetStatus(context.Background(), "b1", "accepted")
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ModifiedCount)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		store := new(MockBidStore)
		svc := NewBidService(store, nil)

		_, err := svc.SetStatus(context.Background(), "b1", "maybe")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BAD_REQUEST")
		store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing bid yields zero matched", func(t *testing.T) {
		store := new(MockBidStore)
		svc := NewBidService(store, nil)

		store.On("UpdateStatus", mock.Anything, "ghost", model.BidStatusRejected).Return(int64(0), nil)

		result, err := svc.SetStatus(context.Background(), "ghost", "rejected")
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.MatchedCount)
	})
}
