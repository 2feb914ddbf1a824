package service

import (
	"context"
	"net/http"
	"strings"

	"autobid-server/internal/model"
	"autobid-server/pkg/apierror"
)

// BidStore is the persistence contract the ledger needs. Implemented by
// repository.BidRepository; mocked in tests.
type BidStore interface {
	Insert(ctx context.Context, bid model.Bid, legacyEmail string) (model.Bid, error)
	FindByBidder(ctx context.Context, email string) ([]model.Bid, error)
	FindBySeller(ctx context.Context, email string) ([]model.Bid, error)
	UpdateStatus(ctx context.Context, id string, status string) (int64, error)
}

type ledgerMetrics interface {
	RecordBidPlaced()
}

// BidService manages the bid lifecycle: creation in pending state and
// seller-initiated accept/reject decisions.
type BidService struct {
	store   BidStore
	metrics ledgerMetrics
}

func NewBidService(store BidStore, metrics ledgerMetrics) *BidService {
	return &BidService{store: store, metrics: metrics}
}

// Place records a new bid. The bidder is resolved from the payload's
// bidder_email, then its deprecated email alias, then the caller's
// identity, so bidder_email is always populated. Status starts pending
// regardless of the payload.
func (s *BidService) Place(ctx context.Context, req model.CreateBidRequest, identity string) (model.Bid, error) {
	bidder := strings.TrimSpace(req.BidderEmail)
	legacy := strings.TrimSpace(req.Email)
	if bidder == "" {
		bidder = legacy
	}
	if bidder == "" {
		bidder = identity
	}

	if req.Amount <= 0 {
		return model.Bid{}, apierror.New("BAD_REQUEST", "amount must be positive", "amount", http.StatusBadRequest)
	}

	bid := model.Bid{
		CarID:       strings.TrimSpace(req.CarID),
		CarName:     strings.TrimSpace(req.CarName),
		BidderEmail: bidder,
		SellerEmail: strings.TrimSpace(req.SellerEmail),
		Amount:      req.Amount,
		Status:      model.BidStatusPending,
	}

	created, err := s.store.Insert(ctx, bid, legacy)
	if err != nil {
		return model.Bid{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordBidPlaced()
	}
	return created, nil
}

// ListForParty returns bids visible to the given party as a bidder.
func (s *BidService) ListForParty(ctx context.Context, email string) ([]model.Bid, error) {
	return s.store.FindByBidder(ctx, email)
}

// ListForSeller returns bids placed against the given seller's listings.
func (s *BidService) ListForSeller(ctx context.Context, email string) ([]model.Bid, error) {
	return s.store.FindBySeller(ctx, email)
}

// SetStatus applies the seller's decision. Only known statuses are
// accepted; the transition graph itself is not enforced, so concurrent
// updates resolve last-write-wins at the datastore.
func (s *BidService) SetStatus(ctx context.Context, id string, status string) (model.MutationResult, error) {
	status = strings.TrimSpace(status)
	if !model.ValidBidStatus(status) {
		return model.MutationResult{}, apierror.New("BAD_REQUEST", "unknown bid status", status, http.StatusBadRequest)
	}

	matched, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return model.MutationResult{}, err
	}

	return model.MutationResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: matched,
	}, nil
}
