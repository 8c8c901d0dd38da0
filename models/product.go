package models

import "time"

// Product categories available in the storefront.
var Categories = []string{"vegetables", "fruits", "dairy", "beverages", "grains"}

// Product is a catalog entry. OfferPrice is nil when the product is not
// on offer; Stock is decremented on order placement and is not clamped
// at zero by the server.
type Product struct {
	ProductID   string    `json:"productid" bson:"productid"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	OfferPrice  *float64  `json:"offerPrice,omitempty" bson:"offerPrice,omitempty"`
	Image       string    `json:"image" bson:"image"`
	Images      []string  `json:"images" bson:"images"`
	Category    string    `json:"category" bson:"category"`
	Stock       int       `json:"stock" bson:"stock"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// EffectivePrice is the unit price used for display and purchase:
// the offer price when present, the base price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.Price
}

// ProductPage is the paginated listing envelope returned by GET /api/products.
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}
