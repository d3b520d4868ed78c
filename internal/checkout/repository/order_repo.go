package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/pc-part-finder/go-partfinder-backend/internal/checkout/domain"
	"github.com/pc-part-finder/go-partfinder-backend/internal/checkout/utils"
)

// OrderRepository persists checkout receipts.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order receipt for the given user.
func (r *OrderRepository) Create(ctx context.Context, userFirebaseUID string, amount float64, itemCount int) (*domain.Order, error) {
	if userFirebaseUID == "" {
		return nil, fmt.Errorf("user firebase uid required")
	}

	for i := 0; i < 5; i++ {
		publicID, err := utils.NewTextID("order")
		if err != nil {
			return nil, err
		}

		const q = `
INSERT INTO orders (public_id, user_firebase_uid, amount, item_count)
VALUES ($1, $2, $3, $4)
RETURNING public_id, amount, item_count, created_at;
`
		var o domain.Order
		err = r.db.QueryRowContext(ctx, q, publicID, userFirebaseUID, amount, itemCount).
			Scan(&o.PublicID, &o.Amount, &o.ItemCount, &o.CreatedAt)

		if err == nil {
			o.UserID = userFirebaseUID
			return &o, nil
		}

		// unique violation on public_id → retry
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique order id")
}

// List returns the user's order receipts, newest first.
func (r *OrderRepository) List(ctx context.Context, userFirebaseUID string) ([]domain.Order, error) {
	const q = `
SELECT public_id, amount, item_count, created_at
FROM orders
WHERE user_firebase_uid = $1
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, userFirebaseUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Order, 0, 16)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.PublicID, &o.Amount, &o.ItemCount, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.UserID = userFirebaseUID
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
