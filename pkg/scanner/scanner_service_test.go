package scanner

import (
	"context"
	"testing"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItem struct {
	id       string
	name     string
	barcode  string
	quantity int
}

// fakeItemService backs the scanner with a mutable in-memory ledger.
type fakeItemService struct {
	items map[string]*fakeItem // keyed by barcode
}

func newFakeItemService(items ...*fakeItem) *fakeItemService {
	byBarcode := map[string]*fakeItem{}
	for _, it := range items {
		byBarcode[it.barcode] = it
	}
	return &fakeItemService{items: byBarcode}
}

func (f *fakeItemService) AddItem(context.Context, domain.AddItemRequest) (domain.ItemResponse, error) {
	panic("not used")
}

func (f *fakeItemService) UpdateItem(context.Context, string, domain.UpdateItemRequest) error {
	panic("not used")
}

func (f *fakeItemService) DeleteItem(context.Context, string) error {
	panic("not used")
}

func (f *fakeItemService) GetItems(context.Context) ([]domain.ItemResponse, error) {
	panic("not used")
}

func (f *fakeItemService) GetItemByID(_ context.Context, id string) (domain.ItemResponse, error) {
	for _, it := range f.items {
		if it.id == id {
			return domain.ItemResponse{ID: it.id, Name: it.name, Barcode: it.barcode, Quantity: it.quantity}, nil
		}
	}
	return domain.ItemResponse{}, domain.ErrItemNotFound
}

func (f *fakeItemService) FindByBarcode(_ context.Context, barcode string) (domain.ItemResponse, error) {
	it, ok := f.items[barcode]
	if !ok {
		return domain.ItemResponse{}, domain.ErrItemNotFound
	}
	return domain.ItemResponse{ID: it.id, Name: it.name, Barcode: it.barcode, Quantity: it.quantity}, nil
}

func (f *fakeItemService) DecrementQuantity(_ context.Context, id string, amount int) (domain.DecrementOutcome, error) {
	for barcode, it := range f.items {
		if it.id != id {
			continue
		}
		newQty := it.quantity - amount
		if newQty <= 0 {
			delete(f.items, barcode)
			return domain.DecrementOutcome{Depleted: true}, nil
		}
		it.quantity = newQty
		return domain.DecrementOutcome{NewQuantity: newQty}, nil
	}
	return domain.DecrementOutcome{}, domain.ErrItemNotFound
}

func (f *fakeItemService) UploadItemImage(context.Context, domain.UploadItemImageRequest) (string, error) {
	panic("not used")
}

type fakeLogRepository struct {
	logs []*entities.DeletionLog
}

func (f *fakeLogRepository) AppendLog(_ context.Context, log *entities.DeletionLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeLogRepository) GetLogs(_ context.Context) ([]*entities.DeletionLog, error) {
	return f.logs, nil
}

// blockingItemService parks FindByBarcode until released so a second decode
// can arrive while the first is still resolving.
type blockingItemService struct {
	*fakeItemService
	entered chan struct{}
	release chan struct{}
}

func (b *blockingItemService) FindByBarcode(ctx context.Context, barcode string) (domain.ItemResponse, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.fakeItemService.FindByBarcode(ctx, barcode)
}

func glueGun() *fakeItem {
	return &fakeItem{
		id:       uuid.NewString(),
		name:     "Glue gun",
		barcode:  "ITEM-a1b2c3d4e",
		quantity: 4,
	}
}

func TestStartSession(t *testing.T) {
	t.Run("rejects an unknown mode", func(t *testing.T) {
		service := NewScannerService(newFakeItemService(), &fakeLogRepository{})
		err := service.StartSession(domain.StartSessionRequest{Mode: "inventory"})
		assert.ErrorIs(t, err, domain.ErrUnknownMode)
	})

	t.Run("defaults quantity to one", func(t *testing.T) {
		service := NewScannerService(newFakeItemService(), &fakeLogRepository{})
		require.NoError(t, service.StartSession(domain.StartSessionRequest{Mode: "consume"}))

		mode, quantity, active := service.Session()
		assert.Equal(t, ModeConsume, mode)
		assert.Equal(t, 1, quantity)
		assert.True(t, active)
	})

	t.Run("only one session at a time", func(t *testing.T) {
		service := NewScannerService(newFakeItemService(), &fakeLogRepository{})
		require.NoError(t, service.StartSession(domain.StartSessionRequest{Mode: "search"}))

		err := service.StartSession(domain.StartSessionRequest{Mode: "search"})
		assert.ErrorIs(t, err, domain.ErrScannerBusy)

		service.Cancel()
		assert.NoError(t, service.StartSession(domain.StartSessionRequest{Mode: "search"}))
	})
}

func TestHandleDecode(t *testing.T) {
	t.Run("idle scanner rejects decodes", func(t *testing.T) {
		service := NewScannerService(newFakeItemService(), &fakeLogRepository{})
		_, err := service.HandleDecode(context.Background(), "ITEM-a1b2c3d4e")
		assert.ErrorIs(t, err, domain.ErrScannerIdle)
	})

	t.Run("search resolves and ends the session", func(t *testing.T) {
		it := glueGun()
		service := NewScannerService(newFakeItemService(it), &fakeLogRepository{})
		require.NoError(t, service.StartSession(domain.StartSessionRequest{Mode: "search"}))

		result, err := service.HandleDecode(context.Background(), it.barcode)
		require.NoError(t, err)

		assert.Equal(t, StatusResolved, result.Status)
		assert.Equal(t, "Found item: 'Glue gun' - Quantity: 4", result.Message)
		require.NotNil(t, result.Item)
		assert.Equal(t, it.id, result.Item.ID)

		_, _, active := service.Session()
		assert.False(t, active)
	})

	t.Run("unknown barcode keeps the session open", func(t *testing.T) {
		service := NewScannerService(newFakeItemService(glueGun()), &fakeLogRepository{})
		require.NoError(t, service.StartSession(domain.StartSessionRequest{Mode: "search"}))

		result, err := service.HandleDecode(context.Background(), "ITEM-zzzzzzzzz")
		require.NoError(t, err)

		assert.Equal(t, StatusNotFound, result.Status)
		assert.Equal(t, "Item not found. Please check the barcode and try again.", result.Message)

		_, _, active := service.Session()
		assert.True(t, active)
	})

	t.Run("overlapping decodes consume the session once", func(t *testing.T) {
		it := glueGun()
		items := &blockingItemService{
			fakeItemService: newFakeItemService(it),
			entered:         make(chan struct{}),
			release:         make(chan struct{}),
		}
		service := NewScannerService(items, &fakeLogRepository{})
		require.NoError(t, service.StartSession(domain.StartSessionRequest{Mode: "search"}))

		done := make(chan error, 1)
		go func() {
			_, err := service.HandleDecode(context.Background(), it.barcode)
			done <- err
		}()

		<-items.entered
		_, err := service.HandleDecode(context.Background(), it.barcode)
		assert.ErrorIs(t, err, domain.ErrScannerIdle)

		close(items.release)
		require.NoError(t, <-done)

		_, _, active := service.Session()
		assert.False(t, active)
	})

	t.Run("consume decrements stock", func(t *testing.T) {
		it := glueGun()
		items := newFakeItemService(it)
		service := NewScannerService(items, &fakeLogRepository{})
		require.NoError(t, service.StartSession(domain.StartSessionRequest{Mode: "consume", Quantity: 3}))

		result, err := service.HandleDecode(context.Background(), it.barcode)
		require.NoError(t, err)

		assert.Equal(t, StatusUpdated, result.Status)
		assert.Equal(t, "Updated item 'Glue gun'. New quantity: 1.", result.Message)
		assert.Equal(t, 1, result.Quantity)

		_, _, active := service.Session()
		assert.False(t, active)
	})

	t.Run("depletion removes the item and logs it", func(t *testing.T) {
		it := glueGun()
		items := newFakeItemService(it)
		logs := &fakeLogRepository{}
		service := NewScannerService(items, logs)
		require.NoError(t, service.StartSession(domain.StartSessionRequest{Mode: "consume", Quantity: 4}))

		result, err := service.HandleDecode(context.Background(), it.barcode)
		require.NoError(t, err)

		assert.Equal(t, StatusDepleted, result.Status)
		assert.Equal(t, "Item 'Glue gun' deleted as quantity is now zero.", result.Message)

		_, findErr := items.FindByBarcode(context.Background(), it.barcode)
		assert.ErrorIs(t, findErr, domain.ErrItemNotFound)

		require.Len(t, logs.logs, 1)
		assert.Equal(t, "Glue gun", logs.logs[0].Name)
		assert.Equal(t, it.barcode, logs.logs[0].Barcode)
		assert.Equal(t, it.id, logs.logs[0].ItemID.String())
	})
}

func TestDeletionLogs(t *testing.T) {
	logs := &fakeLogRepository{logs: []*entities.DeletionLog{
		{ID: uuid.New(), ItemID: uuid.New(), Name: "Glue gun", Barcode: "ITEM-a1b2c3d4e"},
	}}
	service := NewScannerService(newFakeItemService(), logs)

	response, err := service.DeletionLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.Equal(t, "Glue gun", response[0].Name)
}

func TestBarcodeLabel(t *testing.T) {
	service := NewScannerService(newFakeItemService(), &fakeLogRepository{})

	png, err := service.BarcodeLabel(domain.BarcodeLabelRequest{Barcode: "ITEM-a1b2c3d4e", Caption: "Glue gun"})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic header.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	t.Run("bare symbol without caption", func(t *testing.T) {
		png, err := service.BarcodeLabel(domain.BarcodeLabelRequest{Barcode: "ITEM-a1b2c3d4e"})
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
	})
}
