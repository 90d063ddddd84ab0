package catalog

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PostgresRepository loads the catalog from the `products` table. The table
// is an alternative catalog source; rows are read-only at runtime.
type PostgresRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

const (
	listProductsQuery = `
		SELECT id, name, description, price, old_price, category, gender, image, images, sizes, rating, is_new, is_sale
		FROM products
		ORDER BY ord
	`
	getProductByIDQuery = `
		SELECT id, name, description, price, old_price, category, gender, image, images, sizes, rating, is_new, is_sale
		FROM products
		WHERE id = $1
	`
	insertProductQuery = `
		INSERT INTO products (id, name, description, price, old_price, category, gender, image, images, sizes, rating, is_new, is_sale, ord)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`
	createProductsTableQuery = `
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC NOT NULL,
			old_price NUMERIC,
			category TEXT,
			gender TEXT,
			image TEXT,
			images TEXT[],
			sizes NUMERIC[],
			rating NUMERIC,
			is_new BOOLEAN NOT NULL DEFAULT FALSE,
			is_sale BOOLEAN NOT NULL DEFAULT FALSE,
			ord INT
		)
	`
)

func NewPostgresRepository(db *sql.DB, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, logger: logger}
}

// EnsureSchema creates the products table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createProductsTableQuery)
	return err
}

// SeedIfEmpty inserts the given products when the table holds no rows.
func (r *PostgresRepository) SeedIfEmpty(seed []Product) error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i, p := range seed {
		var old decimal.NullDecimal
		if p.OldPrice != nil {
			old = decimal.NullDecimal{Decimal: *p.OldPrice, Valid: true}
		}
		if _, err := r.db.Exec(insertProductQuery,
			p.ID, p.Name, p.Description, p.Price, old,
			string(p.Category), string(p.Gender), p.Image,
			pq.StringArray(p.Images), pq.Float64Array(p.Sizes),
			p.Rating, p.IsNew, p.IsSale, i,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		r.logger.Warn("catalog query failed", zap.Error(err))
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Warn("catalog row scan failed", zap.Error(err))
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(rs rowScanner) (Product, error) {
	var (
		p      Product
		old    decimal.NullDecimal
		images pq.StringArray
		sizes  pq.Float64Array
	)
	if err := rs.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &old,
		&p.Category, &p.Gender, &p.Image, &images, &sizes,
		&p.Rating, &p.IsNew, &p.IsSale); err != nil {
		return Product{}, err
	}
	if old.Valid {
		d := old.Decimal
		p.OldPrice = &d
	}
	p.Images = []string(images)
	p.Sizes = []float64(sizes)
	return p, nil
}
