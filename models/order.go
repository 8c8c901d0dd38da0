package models

import "time"

// Order statuses. Orders start pending; users may cancel, admins may
// mark completed.
const (
	OrderPending   = "pending"
	OrderCancelled = "cancelled"
	OrderCompleted = "completed"
)

// Payment methods.
const (
	PaymentCOD  = "cod"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// OrderItem is a denormalized snapshot of a product at purchase time.
// Price is the unit price actually charged (offer price if one applied).
// Product carries the live catalog document when the order is read back
// with references populated; it is never stored.
type OrderItem struct {
	ProductID string   `json:"product" bson:"product"`
	Name      string   `json:"name" bson:"name"`
	Price     float64  `json:"price" bson:"price"`
	Quantity  int      `json:"quantity" bson:"quantity"`
	Image     string   `json:"image" bson:"image"`
	Product   *Product `json:"productDetails,omitempty" bson:"-"`
}

type ShippingAddress struct {
	FullName string `json:"fullName" bson:"fullName"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone" bson:"phone"`
	Address  string `json:"address" bson:"address"`
	City     string `json:"city" bson:"city"`
	Pincode  string `json:"pincode" bson:"pincode"`
}

type Order struct {
	OrderID       string          `json:"orderId" bson:"orderId"`
	UserID        string          `json:"userId" bson:"userId"`
	Items         []OrderItem     `json:"items" bson:"items"`
	Total         float64         `json:"total" bson:"total"`
	Address       ShippingAddress `json:"address" bson:"address"`
	PaymentMethod string          `json:"paymentMethod" bson:"paymentMethod"`
	Status        string          `json:"status" bson:"status"`
	CreatedAt     time.Time       `json:"createdAt" bson:"createdAt"`

	// Buyer is populated on admin listings only.
	Buyer *PublicUser `json:"user,omitempty" bson:"-"`
}

// OrderRequest is the POST /api/orders body. The total is computed
// client-side (subtotal plus delivery fee) and stored as submitted.
type OrderRequest struct {
	Items         []OrderItem     `json:"items"`
	Total         float64         `json:"total"`
	Address       ShippingAddress `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
}
