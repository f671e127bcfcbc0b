package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// PurchaseCount returns how many purchase events are stored for a collection.
func (r *Repository) PurchaseCount(ctx context.Context, collection string) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("purchase_count", collection, err, start)
	}()

	const query = `
SELECT count() AS purchases
FROM presale_purchases FINAL
WHERE collection = ?`

	rows, err := r.conn.Query(ctx, query, collection)
	if err != nil {
		return 0, fmt.Errorf("query purchase count: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var count uint64
	if !rows.Next() {
		err = errors.New("purchase count not found")
		return 0, err
	}

	if err = rows.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan purchase count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate purchase count: %w", err)
	}

	return count, nil
}
