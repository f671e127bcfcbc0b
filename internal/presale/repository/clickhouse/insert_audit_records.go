package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

// InsertAuditRecords stores administrative audit records.
func (r *Repository) InsertAuditRecords(ctx context.Context, records []model.AuditRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_audit_records", firstCollection(records), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	const query = `
INSERT INTO presale_audit (
	collection,
	operation,
	caller,
	detail,
	status,
	error,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare audit batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			rec.Collection,
			rec.Operation,
			rec.Caller.Hex(),
			rec.Detail,
			string(rec.Status),
			rec.Error,
			rec.Timestamp,
		); err != nil {
			return fmt.Errorf("append audit record: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert audit records: %w", err)
	}
	return nil
}
