package model

import "time"

// Car is a single auction listing. Ownership belongs to SellerEmail until a
// buyer is recorded.
type Car struct {
	ID            string    `json:"id"`
	BrandName     string    `json:"brand_name"`
	ModelName     string    `json:"model_name"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price,omitempty"`
	Deadline      time.Time `json:"deadline"`
	SellerEmail   string    `json:"seller_email"`
	Buyer         *Buyer    `json:"buyer,omitempty"`
	GalleryImages []string  `json:"gallery_images,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Buyer is recorded on a listing once the seller accepts a bid.
type Buyer struct {
	Email  string  `json:"email"`
	Name   string  `json:"name,omitempty"`
	Amount float64 `json:"amount,omitempty"`
}

// CarPatch is a partial update. Nil means "field absent from the request":
// the stored value is left unchanged. In particular a missing GalleryImages
// never clears an existing gallery.
type CarPatch struct {
	BrandName     *string    `json:"brand_name"`
	ModelName     *string    `json:"model_name"`
	Category      *string    `json:"category"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price"`
	Deadline      *time.Time `json:"deadline"`
	Buyer         *Buyer     `json:"buyer"`
	GalleryImages []string   `json:"gallery_images"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p CarPatch) IsEmpty() bool {
	return p.BrandName == nil && p.ModelName == nil && p.Category == nil &&
		p.Description == nil && p.Price == nil && p.Deadline == nil &&
		p.Buyer == nil && p.GalleryImages == nil
}
