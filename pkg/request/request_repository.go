package request

import (
	"context"

	"Campus-Inventory-System/entities"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.Request) error
		GetRequestByID(ctx context.Context, id string) (*entities.Request, error)
		UpdateRequest(ctx context.Context, request *entities.Request) error
		ReplaceRequestItems(ctx context.Context, request *entities.Request, items []entities.RequestItem) error
		DeleteRequest(ctx context.Context, id string) error
		GetRequests(ctx context.Context) ([]*entities.Request, error)
		UniqueIDExists(ctx context.Context, uniqueID string, excludeID string) (bool, error)
		SaveOutcomes(ctx context.Context, request *entities.Request) error
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.Request, error) {
	var request entities.Request
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateRequest(ctx context.Context, request *entities.Request) error {
	return r.db.WithContext(ctx).Omit("Items").Save(request).Error
}

// ReplaceRequestItems swaps the request's item lines for a new ordered set in
// one transaction, together with the request header.
func (r *requestRepository) ReplaceRequestItems(ctx context.Context, request *entities.Request, items []entities.RequestItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", request.ID).Delete(&entities.RequestItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items").Save(request).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *requestRepository) DeleteRequest(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Request{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *requestRepository) GetRequests(ctx context.Context) ([]*entities.Request, error) {
	var requests []*entities.Request
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) UniqueIDExists(ctx context.Context, uniqueID string, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Request{}).Where("unique_id = ?", uniqueID)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *requestRepository) SaveOutcomes(ctx context.Context, request *entities.Request) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range request.Items {
			if err := tx.Model(&entities.RequestItem{}).
				Where("id = ?", request.Items[i].ID).
				Update("outcome", request.Items[i].Outcome).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entities.Request{}).
			Where("id = ?", request.ID).
			Updates(map[string]interface{}{
				"approved":        request.Approved,
				"approved_date":   request.ApprovedDate,
				"requestor_email": request.RequestorEmail,
				"requestor_phone": request.RequestorPhone,
			}).Error
	})
}
