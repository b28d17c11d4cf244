package repositories

import (
	"context"

	"gorm.io/gorm"

	"oksimin/internal/models/db_models"
)

type AuditLogRepository interface {
	Append(ctx context.Context, entry *db_models.AuditLog) error
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Append(ctx context.Context, entry *db_models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
