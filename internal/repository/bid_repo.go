package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"autobid-server/internal/model"
)

const bidColumns = `id, car_id, car_name, bidder_email, seller_email, amount,
	status, created_at, updated_at`

type BidRepository struct {
	pool *pgxpool.Pool
}

func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

func (r *BidRepository) Insert(ctx context.Context, bid model.Bid, legacyEmail string) (model.Bid, error) {
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO bids (car_id, car_name, bidder_email, legacy_email, seller_email,
		                   amount, status, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $8)
		 RETURNING `+bidColumns,
		bid.CarID, bid.CarName, bid.BidderEmail, legacyEmail, bid.SellerEmail,
		bid.Amount, bid.Status, now)

	created, err := scanBid(row)
	if err != nil {
		return model.Bid{}, fmt.Errorf("insert bid: %w", err)
	}
	return created, nil
}

// FindByBidder returns bids placed by the given party. The legacy email
// column is matched alongside bidder_email to cover rows written before
// creation-time normalization existed.
func (r *BidRepository) FindByBidder(ctx context.Context, email string) ([]model.Bid, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bidColumns+` FROM bids
		 WHERE bidder_email = $1 OR legacy_email = $1
		 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("find bids by bidder: %w", err)
	}
	defer rows.Close()

	return scanBids(rows)
}

func (r *BidRepository) FindBySeller(ctx context.Context, email string) ([]model.Bid, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE seller_email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("find bids by seller: %w", err)
	}
	defer rows.Close()

	return scanBids(rows)
}

// UpdateStatus sets the bid status unconditionally; concurrent writers
// race at last-write-wins granularity. Returns the number of rows matched.
func (r *BidRepository) UpdateStatus(ctx context.Context, id string, status string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bids SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("update bid status: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanBid(row rowScanner) (model.Bid, error) {
	var b model.Bid
	err := row.Scan(&b.ID, &b.CarID, &b.CarName, &b.BidderEmail, &b.SellerEmail,
		&b.Amount, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Bid{}, err
	}
	return b, nil
}

func scanBids(rows pgx.Rows) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}
