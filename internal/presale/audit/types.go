package audit

import (
	"context"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertAuditRecords(ctx context.Context, records []model.AuditRecord) error
	}
)
