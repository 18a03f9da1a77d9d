package item

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/entities"
	"Campus-Inventory-System/internal/utils/storage"
	"Campus-Inventory-System/pkg/taxonomy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	barcodePrefix   = "ITEM-"
	barcodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	barcodeSuffix   = 9
	barcodeRetries  = 5
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context) ([]domain.ItemResponse, error)
		GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error)
		FindByBarcode(ctx context.Context, barcode string) (domain.ItemResponse, error)
		DecrementQuantity(ctx context.Context, id string, amount int) (domain.DecrementOutcome, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest) (string, error)
	}

	itemService struct {
		itemRepository ItemRepository
		s3             storage.AwsS3
	}
)

func NewItemService(itemRepository ItemRepository, s3 storage.AwsS3) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		s3:             s3,
	}
}

func (s *itemService) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error) {
	fields, err := parseItemFields(req.Name, req.Quantity, req.Amount, req.Supplier,
		req.ItemType, req.Category, req.SubCategory, req.Program, req.RequestedDate)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	barcode, err := s.generateBarcode(ctx)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	item := &entities.Item{
		ID:            uuid.New(),
		Name:          fields.name,
		Quantity:      fields.quantity,
		Amount:        fields.amount,
		Supplier:      fields.supplier,
		ItemType:      fields.itemType,
		Category:      fields.category,
		SubCategory:   fields.subCategory,
		Program:       fields.program,
		Barcode:       barcode,
		ImageURL:      req.ImageURL,
		RequestedDate: fields.requestedDate,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	fields, err := parseItemFields(req.Name, req.Quantity, req.Amount, req.Supplier,
		req.ItemType, req.Category, req.SubCategory, req.Program, req.RequestedDate)
	if err != nil {
		return err
	}

	// Barcode is never regenerated on edit.
	item.Name = fields.name
	item.Quantity = fields.quantity
	item.Amount = fields.amount
	item.Supplier = fields.supplier
	item.ItemType = fields.itemType
	item.Category = fields.category
	item.SubCategory = fields.subCategory
	item.Program = fields.program
	item.RequestedDate = fields.requestedDate

	return s.itemRepository.UpdateItem(ctx, item)
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}
	return nil
}

func (s *itemService) GetItems(ctx context.Context) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *itemService) FindByBarcode(ctx context.Context, barcode string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *itemService) DecrementQuantity(ctx context.Context, id string, amount int) (domain.DecrementOutcome, error) {
	if amount <= 0 {
		return domain.DecrementOutcome{}, domain.ErrInvalidQuantity
	}

	newQty, depleted, err := s.itemRepository.DecrementQuantity(ctx, id, amount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DecrementOutcome{}, domain.ErrItemNotFound
		}
		return domain.DecrementOutcome{}, err
	}

	return domain.DecrementOutcome{Depleted: depleted, NewQuantity: newQty}, nil
}

func (s *itemService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest) (string, error) {
	item, err := s.itemRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrItemNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return "", err
	}
	return item.ImageURL, nil
}

// generateBarcode rolls a fresh barcode and re-rolls on collision with any
// live item, up to barcodeRetries attempts.
func (s *itemService) generateBarcode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < barcodeRetries; attempt++ {
		barcode, err := randomBarcode()
		if err != nil {
			return "", err
		}
		exists, err := s.itemRepository.BarcodeExists(ctx, barcode)
		if err != nil {
			return "", err
		}
		if !exists {
			return barcode, nil
		}
	}
	return "", domain.ErrBarcodeGeneration
}

func randomBarcode() (string, error) {
	suffix := make([]byte, barcodeSuffix)
	max := big.NewInt(int64(len(barcodeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = barcodeAlphabet[n.Int64()]
	}
	return barcodePrefix + string(suffix), nil
}

type itemFields struct {
	name          string
	quantity      int
	amount        decimal.Decimal
	supplier      string
	itemType      taxonomy.ItemType
	category      taxonomy.Category
	subCategory   taxonomy.SubCategory
	program       taxonomy.Program
	requestedDate time.Time
}

func parseItemFields(name string, quantity int, amount, supplier, itemType, category, subCategory, program, requestedDate string) (itemFields, error) {
	if quantity <= 0 {
		return itemFields{}, domain.ErrInvalidQuantity
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil || parsedAmount.IsNegative() {
		return itemFields{}, domain.ErrInvalidAmount
	}

	parsedDate, err := time.Parse("2006-01-02", requestedDate)
	if err != nil {
		return itemFields{}, domain.ErrInvalidDate
	}

	if !taxonomy.ValidItemType(taxonomy.ItemType(itemType)) {
		return itemFields{}, taxonomy.ErrUnknownItemType
	}

	if err := taxonomy.Validate(
		taxonomy.Category(category),
		taxonomy.SubCategory(subCategory),
		taxonomy.Program(program),
	); err != nil {
		return itemFields{}, err
	}

	return itemFields{
		name:          name,
		quantity:      quantity,
		amount:        parsedAmount,
		supplier:      supplier,
		itemType:      taxonomy.ItemType(itemType),
		category:      taxonomy.Category(category),
		subCategory:   taxonomy.SubCategory(subCategory),
		program:       taxonomy.Program(program),
		requestedDate: parsedDate,
	}, nil
}

func toItemResponse(item *entities.Item) domain.ItemResponse {
	return domain.ItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		Quantity:      item.Quantity,
		Amount:        item.Amount,
		Supplier:      item.Supplier,
		ItemType:      item.ItemType,
		Category:      item.Category,
		SubCategory:   item.SubCategory,
		Program:       item.Program,
		Barcode:       item.Barcode,
		ImageURL:      item.ImageURL,
		RequestedDate: item.RequestedDate,
		CreatedAt:     item.CreatedAt,
	}
}
