package request

import (
	"context"
	"errors"
	"sort"
	"testing"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRequestRepository struct {
	requests map[string]*entities.Request
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{requests: map[string]*entities.Request{}}
}

func copyRequest(request *entities.Request) *entities.Request {
	copied := *request
	copied.Items = append([]entities.RequestItem(nil), request.Items...)
	return &copied
}

func (f *fakeRequestRepository) CreateRequest(_ context.Context, request *entities.Request) error {
	f.requests[request.ID.String()] = copyRequest(request)
	return nil
}

func (f *fakeRequestRepository) GetRequestByID(_ context.Context, id string) (*entities.Request, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	sorted := copyRequest(request)
	sort.Slice(sorted.Items, func(i, j int) bool { return sorted.Items[i].Position < sorted.Items[j].Position })
	return sorted, nil
}

func (f *fakeRequestRepository) UpdateRequest(_ context.Context, request *entities.Request) error {
	if _, ok := f.requests[request.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	existing := f.requests[request.ID.String()]
	items := existing.Items
	f.requests[request.ID.String()] = copyRequest(request)
	f.requests[request.ID.String()].Items = items
	return nil
}

func (f *fakeRequestRepository) ReplaceRequestItems(_ context.Context, request *entities.Request, items []entities.RequestItem) error {
	if _, ok := f.requests[request.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	replaced := copyRequest(request)
	replaced.Items = append([]entities.RequestItem(nil), items...)
	f.requests[request.ID.String()] = replaced
	return nil
}

func (f *fakeRequestRepository) DeleteRequest(_ context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeRequestRepository) GetRequests(_ context.Context) ([]*entities.Request, error) {
	requests := make([]*entities.Request, 0, len(f.requests))
	for _, request := range f.requests {
		requests = append(requests, copyRequest(request))
	}
	return requests, nil
}

func (f *fakeRequestRepository) UniqueIDExists(_ context.Context, uniqueID string, excludeID string) (bool, error) {
	for id, request := range f.requests {
		if request.UniqueID == uniqueID && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRequestRepository) SaveOutcomes(_ context.Context, request *entities.Request) error {
	if _, ok := f.requests[request.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.requests[request.ID.String()] = copyRequest(request)
	return nil
}

type stubNotifier struct {
	sent []domain.OutcomeNotification
	err  error
}

func (s *stubNotifier) NotifyOutcome(n domain.OutcomeNotification) error {
	s.sent = append(s.sent, n)
	return s.err
}

func validCreateRequest() domain.CreateRequestRequest {
	return domain.CreateRequestRequest{
		UniqueID:       "PR-2026-0001",
		ItemNames:      []string{"Whiteboard markers", "Bond paper (A4)", "Stapler"},
		Purpose:        "Office restock",
		ItemType:       "Office Supplies",
		Category:       "Non-Academic",
		SubCategory:    "OFFICE OF THE REGISTRAR",
		RequestDate:    "2026-04-02",
		RequestorEmail: "registrar@example.edu",
	}
}

func TestCreateRequest(t *testing.T) {
	t.Run("creates pending lines in order", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		res, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		assert.False(t, res.Approved)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "Whiteboard markers", res.Items[0].Label)
		for _, item := range res.Items {
			assert.Equal(t, entities.OutcomePending, item.Outcome)
		}
	})

	t.Run("rejects duplicate unique ID", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		_, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = service.CreateRequest(context.Background(), validCreateRequest())
		assert.ErrorIs(t, err, domain.ErrDuplicateUniqueID)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		service := NewRequestService(newFakeRequestRepository(), &stubNotifier{})

		req := validCreateRequest()
		req.ItemNames = nil
		_, err := service.CreateRequest(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrEmptyItemList)
	})

	t.Run("rejects bad taxonomy", func(t *testing.T) {
		service := NewRequestService(newFakeRequestRepository(), &stubNotifier{})

		req := validCreateRequest()
		req.SubCategory = "COLLEGE OF ENGINEERING"
		_, err := service.CreateRequest(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestUpdateRequest(t *testing.T) {
	t.Run("unique ID check excludes the record being edited", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		created, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		// Saving the same request under its own unique ID must succeed.
		_, err = service.UpdateRequest(context.Background(), created.ID, domain.UpdateRequestRequest{
			UniqueID:    created.UniqueID,
			ItemNames:   []string{"Whiteboard markers"},
			Purpose:     "Office restock (reduced)",
			ItemType:    "Office Supplies",
			Category:    "Non-Academic",
			SubCategory: "OFFICE OF THE REGISTRAR",
			RequestDate: "2026-04-02",
		})
		assert.NoError(t, err)

		// Taking another request's unique ID must not.
		other := validCreateRequest()
		other.UniqueID = "PR-2026-0002"
		created2, err := service.CreateRequest(context.Background(), other)
		require.NoError(t, err)

		_, err = service.UpdateRequest(context.Background(), created2.ID, domain.UpdateRequestRequest{
			UniqueID:    created.UniqueID,
			ItemNames:   []string{"Stapler"},
			Purpose:     "Office restock",
			ItemType:    "Office Supplies",
			Category:    "Non-Academic",
			SubCategory: "OFFICE OF THE REGISTRAR",
			RequestDate: "2026-04-02",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateUniqueID)
	})

	t.Run("keeps marks for surviving labels", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		created, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, _, err = service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels: []string{"Stapler"},
			Outcome:    "Fulfilled",
		})
		require.NoError(t, err)

		updated, err := service.UpdateRequest(context.Background(), created.ID, domain.UpdateRequestRequest{
			UniqueID:    created.UniqueID,
			ItemNames:   []string{"Stapler", "Desk organizer"},
			Purpose:     "Office restock",
			ItemType:    "Office Supplies",
			Category:    "Non-Academic",
			SubCategory: "OFFICE OF THE REGISTRAR",
			RequestDate: "2026-04-02",
		})
		require.NoError(t, err)

		require.Len(t, updated.Items, 2)
		assert.Equal(t, entities.OutcomeFulfilled, updated.Items[0].Outcome)
		assert.Equal(t, entities.OutcomePending, updated.Items[1].Outcome)
		assert.False(t, updated.Approved)
	})

	t.Run("rejects editing an approved request", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		req := validCreateRequest()
		req.ItemNames = []string{"Stapler"}
		created, err := service.CreateRequest(context.Background(), req)
		require.NoError(t, err)

		_, _, err = service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels: []string{"Stapler"},
			Outcome:    "Fulfilled",
		})
		require.NoError(t, err)

		_, err = service.UpdateRequest(context.Background(), created.ID, domain.UpdateRequestRequest{
			UniqueID:    created.UniqueID,
			ItemNames:   []string{"Stapler"},
			Purpose:     "Office restock",
			ItemType:    "Office Supplies",
			Category:    "Non-Academic",
			SubCategory: "OFFICE OF THE REGISTRAR",
			RequestDate: "2026-04-02",
		})
		assert.ErrorIs(t, err, domain.ErrRequestAlreadyClosed)
	})
}

func TestMarkItemOutcome(t *testing.T) {
	t.Run("partial marks leave the request pending", func(t *testing.T) {
		repo := newFakeRequestRepository()
		notifier := &stubNotifier{}
		service := NewRequestService(repo, notifier)

		created, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		res, notifyErr, err := service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels: []string{"Whiteboard markers"},
			Outcome:    "Fulfilled",
		})
		require.NoError(t, err)
		assert.NoError(t, notifyErr)

		assert.False(t, res.Approved)
		assert.Nil(t, res.ApprovedDate)
		assert.Equal(t, entities.OutcomeFulfilled, res.Items[0].Outcome)
		assert.Equal(t, entities.OutcomePending, res.Items[1].Outcome)
	})

	t.Run("approval once every line is terminal", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		created, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, _, err = service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels: []string{"Whiteboard markers", "Bond paper (A4)"},
			Outcome:    "Fulfilled",
		})
		require.NoError(t, err)

		res, _, err := service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels: []string{"Stapler"},
			Outcome:    "Out of Stock",
		})
		require.NoError(t, err)

		assert.True(t, res.Approved)
		require.NotNil(t, res.ApprovedDate)
	})

	t.Run("marks every line sharing a label", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		create := validCreateRequest()
		create.ItemNames = []string{"Stapler", "Stapler"}
		created, err := service.CreateRequest(context.Background(), create)
		require.NoError(t, err)

		res, _, err := service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels: []string{"Stapler"},
			Outcome:    "Fulfilled",
		})
		require.NoError(t, err)

		require.Len(t, res.Items, 2)
		assert.Equal(t, entities.OutcomeFulfilled, res.Items[0].Outcome)
		assert.Equal(t, entities.OutcomeFulfilled, res.Items[1].Outcome)
		assert.True(t, res.Approved)
	})

	t.Run("persists contact overrides", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		created, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, _, err = service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels:     []string{"Stapler"},
			Outcome:        "Fulfilled",
			RequestorEmail: "procurement@example.edu",
			RequestorPhone: "09171234567",
		})
		require.NoError(t, err)

		stored, err := service.GetRequestByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "procurement@example.edu", stored.RequestorEmail)
		assert.Equal(t, "09171234567", stored.RequestorPhone)
	})

	t.Run("rejects a non-terminal mark", func(t *testing.T) {
		service := NewRequestService(newFakeRequestRepository(), &stubNotifier{})

		_, _, err := service.MarkItemOutcome(context.Background(), "any", domain.MarkOutcomeRequest{
			ItemLabels: []string{"Stapler"},
			Outcome:    "Pending",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
	})

	t.Run("rejects an unknown label", func(t *testing.T) {
		repo := newFakeRequestRepository()
		service := NewRequestService(repo, &stubNotifier{})

		created, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, _, err = service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels: []string{"Paper shredder"},
			Outcome:    "Fulfilled",
		})
		assert.ErrorIs(t, err, domain.ErrRequestItemNotFound)
	})

	t.Run("notification failure does not roll back marks", func(t *testing.T) {
		repo := newFakeRequestRepository()
		notifier := &stubNotifier{err: errors.New("smtp unreachable")}
		service := NewRequestService(repo, notifier)

		created, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		res, notifyErr, err := service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels: []string{"Whiteboard markers"},
			Outcome:    "Fulfilled",
		})
		require.NoError(t, err)
		assert.Error(t, notifyErr)

		assert.Equal(t, entities.OutcomeFulfilled, res.Items[0].Outcome)

		stored, err := service.GetRequestByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.OutcomeFulfilled, stored.Items[0].Outcome)
	})

	t.Run("sends the notification payload", func(t *testing.T) {
		repo := newFakeRequestRepository()
		notifier := &stubNotifier{}
		service := NewRequestService(repo, notifier)

		created, err := service.CreateRequest(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, _, err = service.MarkItemOutcome(context.Background(), created.ID, domain.MarkOutcomeRequest{
			ItemLabels:   []string{"Whiteboard markers"},
			Outcome:      "Out of Stock",
			PurchaseDate: "2026-04-10",
		})
		require.NoError(t, err)

		require.Len(t, notifier.sent, 1)
		sent := notifier.sent[0]
		assert.Equal(t, "registrar@example.edu", sent.Recipient)
		assert.Equal(t, "PR-2026-0001", sent.UniqueID)
		assert.Equal(t, entities.OutcomeOutOfStock, sent.Action)
		assert.Equal(t, "2026-04-10", sent.PurchaseDate)
	})
}

func TestDeleteRequest(t *testing.T) {
	repo := newFakeRequestRepository()
	service := NewRequestService(repo, &stubNotifier{})

	created, err := service.CreateRequest(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, service.DeleteRequest(context.Background(), created.ID))
	assert.ErrorIs(t, service.DeleteRequest(context.Background(), created.ID), domain.ErrRequestNotFound)
}
