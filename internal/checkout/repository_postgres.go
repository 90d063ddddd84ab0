package checkout

import (
	"database/sql"
	"encoding/json"

	"github.com/urbanstep/storefront-backend/internal/cart"
)

// PostgresRepository archives orders in the `orders` table. Cart lines and
// shipping details are stored as JSONB documents.
type PostgresRepository struct {
	db *sql.DB
}

const (
	createOrdersTableQuery = `
		CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			total_items INT NOT NULL DEFAULT 0,
			total_price NUMERIC NOT NULL DEFAULT 0,
			shipping JSONB NOT NULL DEFAULT '{}',
			status TEXT,
			created_at TEXT
		)
	`
	insertOrderQuery = `
		INSERT INTO orders (order_id, session_id, items, total_items, total_price, shipping, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	listOrdersBySessionQuery = `
		SELECT order_id, session_id, items, total_items, total_price, shipping, status, created_at
		FROM orders
		WHERE session_id = $1
		ORDER BY created_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the orders table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createOrdersTableQuery)
	return err
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	shipping, err := json.Marshal(ord.Shipping)
	if err != nil {
		return Order{}, err
	}

	if _, err := r.db.Exec(insertOrderQuery,
		ord.ID, ord.SessionID, string(items), ord.TotalItems,
		ord.TotalPrice, string(shipping), ord.Status, ord.CreatedAt,
	); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListBySession(sessionID string) ([]Order, error) {
	rows, err := r.db.Query(listOrdersBySessionQuery, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var (
			ord         Order
			rawItems    []byte
			rawShipping []byte
		)
		if err := rows.Scan(&ord.ID, &ord.SessionID, &rawItems, &ord.TotalItems,
			&ord.TotalPrice, &rawShipping, &ord.Status, &ord.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawItems, &ord.Items); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawShipping, &ord.Shipping); err != nil {
			return nil, err
		}
		if ord.Items == nil {
			ord.Items = []cart.Item{}
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}
