package model

import "time"

// Bid statuses. A bid is created pending; accepted and rejected are
// terminal in the product flow, though the ledger does not lock them
// (see SetStatus).
const (
	BidStatusPending  = "pending"
	BidStatusAccepted = "accepted"
	BidStatusRejected = "rejected"
)

// ValidBidStatus reports whether s is one of the known bid statuses.
func ValidBidStatus(s string) bool {
	return s == BidStatusPending || s == BidStatusAccepted || s == BidStatusRejected
}

// Bid is a buyer's offer on a listing. It is visible to both the bidder
// and the seller it references.
type Bid struct {
	ID          string    `json:"id"`
	CarID       string    `json:"car_id"`
	CarName     string    `json:"car_name,omitempty"`
	BidderEmail string    `json:"bidder_email"`
	SellerEmail string    `json:"seller_email"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBidRequest is the bid submission payload. Email is a deprecated
// alias for BidderEmail kept for older clients; creation normalizes it.
type CreateBidRequest struct {
	CarID       string  `json:"car_id"`
	CarName     string  `json:"car_name"`
	BidderEmail string  `json:"bidder_email"`
	Email       string  `json:"email"`
	SellerEmail string  `json:"seller_email"`
	Amount      float64 `json:"amount"`
}

// UpdateBidStatusRequest carries the seller's accept/reject decision.
type UpdateBidStatusRequest struct {
	Status string `json:"status"`
}
