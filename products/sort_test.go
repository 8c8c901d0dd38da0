package products

import (
	"testing"

	"kirana/models"
)

func offer(v float64) *float64 { return &v }

func samplePage() []models.Product {
	return []models.Product{
		{ProductID: "p1", Name: "Quinoa", Price: 300, OfferPrice: offer(280)},
		{ProductID: "p2", Name: "apples", Price: 120, OfferPrice: offer(100)},
		{ProductID: "p3", Name: "Milk", Price: 60},
	}
}

func TestSortProductsPriceLow(t *testing.T) {
	list := samplePage()
	sortProducts(list, "price-low")
	// effective prices: 60, 100, 280
	if list[0].ProductID != "p3" || list[1].ProductID != "p2" || list[2].ProductID != "p1" {
		t.Fatalf("unexpected order: %s %s %s", list[0].ProductID, list[1].ProductID, list[2].ProductID)
	}
}

func TestSortProductsPriceHigh(t *testing.T) {
	list := samplePage()
	sortProducts(list, "price-high")
	if list[0].ProductID != "p1" || list[2].ProductID != "p3" {
		t.Fatalf("unexpected order: %s %s %s", list[0].ProductID, list[1].ProductID, list[2].ProductID)
	}
}

func TestSortProductsByNameIgnoresCase(t *testing.T) {
	list := samplePage()
	sortProducts(list, "name")
	if list[0].Name != "apples" || list[1].Name != "Milk" || list[2].Name != "Quinoa" {
		t.Fatalf("unexpected order: %s %s %s", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestSortProductsUnknownKeyKeepsOrder(t *testing.T) {
	list := samplePage()
	sortProducts(list, "")
	if list[0].ProductID != "p1" || list[2].ProductID != "p3" {
		t.Fatal("expected original order preserved")
	}
}
