package scanner

import (
	"context"

	"Campus-Inventory-System/entities"

	"gorm.io/gorm"
)

type (
	DeletionLogRepository interface {
		AppendLog(ctx context.Context, log *entities.DeletionLog) error
		GetLogs(ctx context.Context) ([]*entities.DeletionLog, error)
	}

	deletionLogRepository struct {
		db *gorm.DB
	}
)

func NewDeletionLogRepository(db *gorm.DB) DeletionLogRepository {
	return &deletionLogRepository{db: db}
}

func (r *deletionLogRepository) AppendLog(ctx context.Context, log *entities.DeletionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *deletionLogRepository) GetLogs(ctx context.Context) ([]*entities.DeletionLog, error) {
	var logs []*entities.DeletionLog
	if err := r.db.WithContext(ctx).Order("deleted_at desc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
