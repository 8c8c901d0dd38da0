// Package checkout turns a basket into a placed order: it validates the
// shipping form, prices the order with the delivery-fee rule, and
// submits it to the storefront API.
package checkout

import (
	"regexp"

	"kirana/cart"
	"kirana/models"
)

// Free delivery kicks in at a 500 subtotal; below that a flat 50 fee.
const (
	FreeDeliveryThreshold = 500
	DeliveryCharge        = 50
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

// ShippingInfo is the checkout form.
type ShippingInfo struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	Pincode  string
}

// Validate reports per-field problems. An empty map means the form may
// be submitted; any entry blocks submission before the network call.
func (s ShippingInfo) Validate() map[string]string {
	errs := make(map[string]string)

	if s.FullName == "" {
		errs["fullName"] = "Full name is required"
	}
	if s.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(s.Email) {
		errs["email"] = "Please enter a valid email"
	}
	if s.Phone == "" {
		errs["phone"] = "Phone number is required"
	} else if !phoneRegex.MatchString(s.Phone) {
		errs["phone"] = "Please enter a valid 10-digit phone number"
	}
	if s.Address == "" {
		errs["address"] = "Address is required"
	}
	if s.City == "" {
		errs["city"] = "City is required"
	}
	if s.Pincode == "" {
		errs["pincode"] = "Pincode is required"
	} else if !pincodeRegex.MatchString(s.Pincode) {
		errs["pincode"] = "Please enter a valid 6-digit pincode"
	}

	return errs
}

func (s ShippingInfo) address() models.ShippingAddress {
	return models.ShippingAddress{
		FullName: s.FullName,
		Email:    s.Email,
		Phone:    s.Phone,
		Address:  s.Address,
		City:     s.City,
		Pincode:  s.Pincode,
	}
}

// DeliveryFee is 0 once the subtotal reaches the free-delivery
// threshold, else the flat charge.
func DeliveryFee(subtotal float64) float64 {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	return DeliveryCharge
}

// BuildOrderRequest snapshots the basket lines into the POST /api/orders
// body. Unit prices are the effective (offer) prices; the total carries
// the delivery fee.
func BuildOrderRequest(lines []cart.Line, info ShippingInfo, paymentMethod string) models.OrderRequest {
	items := make([]models.OrderItem, 0, len(lines))
	var subtotal float64
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.EffectivePrice(),
			Quantity:  l.Quantity,
			Image:     l.Image,
		})
		subtotal += l.EffectivePrice() * float64(l.Quantity)
	}
	return models.OrderRequest{
		Items:         items,
		Total:         subtotal + DeliveryFee(subtotal),
		Address:       info.address(),
		PaymentMethod: paymentMethod,
	}
}

// Reorder re-adds a past order's lines to the basket, one AddToCart per
// unit. Order snapshots carry no live stock, so each line's ceiling is
// seeded from the ordered quantity itself; the stock check is therefore
// effectively bypassed until the basket is revalidated.
func Reorder(engine *cart.Engine, order models.Order) {
	for _, item := range order.Items {
		snap := cart.Snapshot{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Stock:     item.Quantity,
		}
		for i := 0; i < item.Quantity; i++ {
			engine.AddToCart(snap)
		}
	}
}
