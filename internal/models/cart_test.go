package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartTotalAndItemCount(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: primitive.NewObjectID(), Price: 19.99, Quantity: 2},
		{ProductID: primitive.NewObjectID(), Price: 5.50, Quantity: 3},
	}}

	if got, want := cart.Total(), 19.99*2+5.50*3; got != want {
		t.Fatalf("Total() = %v, want %v", got, want)
	}
	if got := cart.ItemCount(); got != 5 {
		t.Fatalf("ItemCount() = %d, want 5", got)
	}
}

func TestEmptyCartTotals(t *testing.T) {
	var cart Cart
	if cart.Total() != 0 || cart.ItemCount() != 0 {
		t.Fatalf("empty cart should total zero, got %v / %d", cart.Total(), cart.ItemCount())
	}
}

func TestOrderUnitsSold(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Quantity: 2},
		{Quantity: 1},
	}}
	if got := order.UnitsSold(); got != 3 {
		t.Fatalf("UnitsSold() = %d, want 3", got)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		if !ValidOrderStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if ValidOrderStatus("returned") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestWishlistContains(t *testing.T) {
	id := primitive.NewObjectID()
	list := Wishlist{Items: []WishlistItem{{ProductID: id}}}
	if !list.Contains(id) {
		t.Fatal("expected wishlist to contain product")
	}
	if list.Contains(primitive.NewObjectID()) {
		t.Fatal("expected missing product to be absent")
	}
}

func TestProductIsLowStock(t *testing.T) {
	if (Product{Stock: 0}).IsLowStock() {
		t.Fatal("out of stock is not low stock")
	}
	if !(Product{Stock: 9}).IsLowStock() {
		t.Fatal("stock 9 should be low")
	}
	if (Product{Stock: 10}).IsLowStock() {
		t.Fatal("stock 10 is not low")
	}
}
