package wishlist

import (
	"context"
	"testing"

	"github.com/favstore/wishlist-backend/pkg/db"
	"github.com/favstore/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/favstore/wishlist-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	products := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  price NUMERIC NOT NULL,
  image TEXT,
  brand TEXT NOT NULL,
  review_score REAL,
  created_at DATETIME,
  updated_at DATETIME
);`
	wishlistItems := `
CREATE TABLE IF NOT EXISTS wishlist_items (
  customer_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  created_at DATETIME,
  PRIMARY KEY (customer_id, product_id)
);`
	if err := conn.Exec(products).Error; err != nil {
		t.Fatalf("create products table: %v", err)
	}
	if err := conn.Exec(wishlistItems).Error; err != nil {
		t.Fatalf("create wishlist_items table: %v", err)
	}
	return conn
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := setupWishlistTestDB(t)
	svc, err := NewService(ServiceParams{DB: db.NewWithConn(conn)})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, conn
}

func seedProduct(t *testing.T, conn *gorm.DB, id int64, title string, price string) {
	t.Helper()
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price: %v", err)
	}
	product := models.Product{
		ID:    id,
		Title: title,
		Price: amount,
		Brand: "Acme",
	}
	if err := conn.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func TestAddAndList(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	seedProduct(t, conn, 9101, "Wireless Mouse", "149.90")

	if err := svc.Add(ctx, 11, 9101); err != nil {
		t.Fatalf("add: %v", err)
	}

	list, err := svc.List(ctx, 11)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(list.Products))
	}
	got := list.Products[0]
	if got.ID != "9101" {
		t.Fatalf("expected string id 9101, got %s", got.ID)
	}
	if got.Title != "Wireless Mouse" {
		t.Fatalf("unexpected title %s", got.Title)
	}
	if got.Price != 149.90 {
		t.Fatalf("unexpected price %v", got.Price)
	}
}

func TestListEmptyWishlist(t *testing.T) {
	svc, _ := newTestService(t)

	list, err := svc.List(context.Background(), 404040)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Products == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(list.Products) != 0 {
		t.Fatalf("expected empty wishlist, got %d", len(list.Products))
	}
}

func TestListOrdersByProductID(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	seedProduct(t, conn, 9202, "Second", "20.00")
	seedProduct(t, conn, 9201, "First", "10.00")

	if err := svc.Add(ctx, 12, 9202); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(ctx, 12, 9201); err != nil {
		t.Fatalf("add: %v", err)
	}

	list, err := svc.List(ctx, 12)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list.Products))
	}
	if list.Products[0].ID != "9201" || list.Products[1].ID != "9202" {
		t.Fatalf("expected ascending product ids, got %s then %s", list.Products[0].ID, list.Products[1].ID)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Add(context.Background(), 13, 987654321)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Product not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestAddDuplicate(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	seedProduct(t, conn, 9301, "Keyboard", "300.00")

	if err := svc.Add(ctx, 14, 9301); err != nil {
		t.Fatalf("add: %v", err)
	}

	err := svc.Add(ctx, 14, 9301)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if typed.Message() != "Product already in wishlist" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestRemove(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	seedProduct(t, conn, 9401, "Monitor", "999.00")

	if err := svc.Add(ctx, 15, 9401); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Remove(ctx, 15, 9401); err != nil {
		t.Fatalf("remove: %v", err)
	}

	list, err := svc.List(ctx, 15)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Products) != 0 {
		t.Fatalf("expected empty wishlist after remove, got %d", len(list.Products))
	}
}

func TestRemoveUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Remove(context.Background(), 16, 987654321)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Product not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestRemoveNotInWishlist(t *testing.T) {
	svc, conn := newTestService(t)
	seedProduct(t, conn, 9501, "Webcam", "250.00")

	err := svc.Remove(context.Background(), 17, 9501)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Product not in wishlist" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestWishlistsAreIsolatedPerCustomer(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	seedProduct(t, conn, 9601, "Headset", "420.00")

	if err := svc.Add(ctx, 18, 9601); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(ctx, 19, 9601); err != nil {
		t.Fatalf("second customer add should succeed: %v", err)
	}

	if err := svc.Remove(ctx, 18, 9601); err != nil {
		t.Fatalf("remove: %v", err)
	}

	list, err := svc.List(ctx, 19)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Products) != 1 {
		t.Fatalf("other customer's wishlist should be untouched, got %d", len(list.Products))
	}
}
