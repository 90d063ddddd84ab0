package catalog

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
)

func productColumns() []string {
	return []string{"id", "name", "description", "price", "old_price", "category", "gender", "image", "images", "sizes", "rating", "is_new", "is_sale"}
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db, zap.NewNop())

	rows := sqlmock.NewRows(productColumns()).
		AddRow("1", "Urban Glide X", "desc", "129", nil, "Sneakers", "Men", "img", `{img1,img2}`, `{7,8,9.5}`, 4.8, true, false).
		AddRow("4", "Neon Flash Racer", "desc", "110", "140", "Sneakers", "Women", "img", `{img1}`, `{6,7}`, 4.7, false, true)
	mock.ExpectQuery("FROM products").WillReturnRows(rows)

	products := repo.List()
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Urban Glide X" {
		t.Fatalf("unexpected product name %q", products[0].Name)
	}
	if products[0].OldPrice != nil {
		t.Fatal("expected nil oldPrice for first product")
	}
	if products[1].OldPrice == nil || products[1].OldPrice.String() != "140" {
		t.Fatalf("expected oldPrice 140 for second product, got %v", products[1].OldPrice)
	}
	if len(products[0].Sizes) != 3 || products[0].Sizes[2] != 9.5 {
		t.Fatalf("unexpected sizes %v", products[0].Sizes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db, zap.NewNop())

	mock.ExpectQuery("FROM products").WithArgs("999").WillReturnRows(sqlmock.NewRows(productColumns()))

	if _, err := repo.GetByID("999"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
