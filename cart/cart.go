// Package cart is the client-local basket: an explicitly owned state
// object the UI layer holds, persisted through a pluggable store the
// way a browser basket lives under a single localStorage key.
package cart

import "log"

// Snapshot captures the product fields the basket needs at the moment a
// line is added or validated. Stock is the ceiling recorded at that
// time; it is not re-checked against the live catalog.
type Snapshot struct {
	ProductID  string   `json:"productid"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	OfferPrice *float64 `json:"offerPrice,omitempty"`
	Image      string   `json:"image"`
	Category   string   `json:"category"`
	Stock      int      `json:"stock"`
}

// EffectivePrice is the offer price when present, the base price otherwise.
func (s Snapshot) EffectivePrice() float64 {
	if s.OfferPrice != nil {
		return *s.OfferPrice
	}
	return s.Price
}

// Line is one product-and-quantity pairing in the basket.
type Line struct {
	Snapshot
	Quantity int `json:"quantity"`
}

// Store persists the full line set after every mutation.
type Store interface {
	Save(lines []Line) error
	Load() ([]Line, error)
}

// Engine owns the basket lines. It expects a single caller: the basket
// belongs to one session and is never shared across goroutines.
type Engine struct {
	lines []Line
	store Store
}

// NewEngine loads any persisted basket from the store. Missing or
// malformed state yields an empty basket, never an error.
func NewEngine(store Store) *Engine {
	e := &Engine{store: store}
	if store == nil {
		return e
	}
	lines, err := store.Load()
	if err != nil {
		log.Println("cart: discarding unreadable saved state:", err)
		return e
	}
	e.lines = lines
	return e
}

// AddToCart inserts the product at quantity 1, or bumps an existing
// line by 1. Returns false without changing state when the product is
// out of stock or the bump would exceed its stock.
func (e *Engine) AddToCart(p Snapshot) bool {
	if p.Stock <= 0 {
		return false
	}
	for i := range e.lines {
		if e.lines[i].ProductID == p.ProductID {
			if e.lines[i].Quantity+1 > p.Stock {
				return false
			}
			e.lines[i].Quantity++
			e.lines[i].Snapshot = p
			e.persist()
			return true
		}
	}
	e.lines = append(e.lines, Line{Snapshot: p, Quantity: 1})
	e.persist()
	return true
}

// RemoveFromCart deletes the line if present; no-op otherwise.
func (e *Engine) RemoveFromCart(productID string) {
	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			e.persist()
			return
		}
	}
}

// UpdateQuantity sets a line's quantity. qty <= 0 removes the line.
// Returns false without changing state when qty exceeds the stock
// ceiling recorded on the line, or when the line does not exist.
func (e *Engine) UpdateQuantity(productID string, qty int) bool {
	if qty <= 0 {
		e.RemoveFromCart(productID)
		return true
	}
	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			if qty > e.lines[i].Stock {
				return false
			}
			e.lines[i].Quantity = qty
			e.persist()
			return true
		}
	}
	return false
}

// ClearCart empties the basket. Safe to call repeatedly.
func (e *Engine) ClearCart() {
	e.lines = nil
	e.persist()
}

// CartTotal sums effective price times quantity over all lines.
func (e *Engine) CartTotal() float64 {
	var total float64
	for _, l := range e.lines {
		total += l.EffectivePrice() * float64(l.Quantity)
	}
	return total
}

// ItemsCount sums quantities over all lines.
func (e *Engine) ItemsCount() int {
	var n int
	for _, l := range e.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a copy of the basket contents in insertion order.
func (e *Engine) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

func (e *Engine) persist() {
	if e.store == nil {
		return
	}
	if err := e.store.Save(e.Lines()); err != nil {
		log.Println("cart: persist failed:", err)
	}
}
