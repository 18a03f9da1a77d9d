package item

import (
	"context"

	"Campus-Inventory-System/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		GetItemByBarcode(ctx context.Context, barcode string) (*entities.Item, error)
		BarcodeExists(ctx context.Context, barcode string) (bool, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context) ([]*entities.Item, error)
		DecrementQuantity(ctx context.Context, id string, amount int) (newQty int, depleted bool, err error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetItemByBarcode(ctx context.Context, barcode string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) BarcodeExists(ctx context.Context, barcode string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("barcode = ?", barcode).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepository) GetItems(ctx context.Context) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DecrementQuantity performs the conditional read-modify-write against the
// authoritative row under a row lock, so two near-simultaneous scans of the
// same barcode can never drive the quantity negative.
func (r *itemRepository) DecrementQuantity(ctx context.Context, id string, amount int) (int, bool, error) {
	var newQty int
	var depleted bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entities.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&item).Error; err != nil {
			return err
		}

		newQty = item.Quantity - amount
		if newQty <= 0 {
			depleted = true
			newQty = 0
			return tx.Delete(&item).Error
		}

		return tx.Model(&item).Update("quantity", newQty).Error
	})
	if err != nil {
		return 0, false, err
	}
	return newQty, depleted, nil
}
