package repository

import (
	"context"
	"fmt"

	"musafir/internal/db"
	dom "musafir/internal/domain/audit"
	"musafir/internal/logging"
)

type AuditRepository struct {
	client *db.Client
	logger logging.Logger
}

func NewAuditRepository(client *db.Client, logger logging.Logger) dom.Repository {
	return &AuditRepository{
		client: client,
		logger: logger.With("component", "audit_repo"),
	}
}

func (r *AuditRepository) Insert(ctx context.Context, rec *dom.Record) error {
	builder := r.client.Ent().AuditRecord.
		Create().
		SetEvent(rec.Event).
		SetMessage(rec.Message)

	if len(rec.Payload) > 0 {
		builder = builder.SetPayload(rec.Payload)
	}
	if rec.Error != "" {
		builder = builder.SetError(rec.Error)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("ent.AuditRecord.Create: %w", err)
	}

	rec.ID = created.ID
	rec.CreatedAt = created.CreatedAt
	return nil
}
