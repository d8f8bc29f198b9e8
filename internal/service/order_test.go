package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubOrderStore struct {
	orders       map[uint]*model.Order
	created      []*model.Order
	statusSets   map[uint]model.OrderStatus
	sweepCalls   int
	sweepCutoffs []time.Time
	sweepErr     error
}

func newStubOrderStore() *stubOrderStore {
	return &stubOrderStore{
		orders:     make(map[uint]*model.Order),
		statusSets: make(map[uint]model.OrderStatus),
	}
}

func (s *stubOrderStore) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (s *stubOrderStore) GetAll(ctx context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, int64, error) {
	var out []model.Order
	for _, order := range s.orders {
		if status != "" && order.Status != status {
			continue
		}
		out = append(out, *order)
	}
	return out, int64(len(out)), nil
}

func (s *stubOrderStore) Create(ctx context.Context, order *model.Order) error {
	order.ID = uint(len(s.created) + 1)
	s.created = append(s.created, order)
	s.orders[order.ID] = order
	return nil
}

func (s *stubOrderStore) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	order, ok := s.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	s.statusSets[id] = status
	return nil
}

func (s *stubOrderStore) Assign(ctx context.Context, id uint, staffID uint) error {
	if _, ok := s.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.orders[id].AssignedToID = &staffID
	return nil
}

func (s *stubOrderStore) ExpireStale(ctx context.Context, statuses []model.OrderStatus, olderThan time.Time) (int64, error) {
	s.sweepCalls++
	s.sweepCutoffs = append(s.sweepCutoffs, olderThan)
	if s.sweepErr != nil {
		return 0, s.sweepErr
	}
	var expired int64
	for _, order := range s.orders {
		for _, status := range statuses {
			if order.Status == status && order.CreatedAt.Before(olderThan) {
				order.Status = model.StatusExpired
				expired++
			}
		}
	}
	return expired, nil
}

func (s *stubOrderStore) Customers(ctx context.Context, limit, offset int, search string) ([]dto.CustomerResponse, int64, error) {
	return nil, 0, nil
}

type stubProductFinder struct {
	products map[uint]*model.Product
}

func (s *stubProductFinder) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func testProduct(id uint, price string, active bool) *model.Product {
	product := &model.Product{
		Name:   "20ft Standard",
		Slug:   "20ft-standard",
		Price:  decimal.RequireFromString(price),
		Active: active,
	}
	product.ID = id
	return product
}

func newTestOrderService(store *stubOrderStore, finder *stubProductFinder) *OrderService {
	return NewOrderService(store, finder, 30*24*time.Hour)
}

func TestOrderService_CreateQuote(t *testing.T) {
	store := newStubOrderStore()
	finder := &stubProductFinder{products: map[uint]*model.Product{
		1: testProduct(1, "2500.00", true),
		2: testProduct(2, "99.99", true),
	}}
	svc := newTestOrderService(store, finder)

	res, err := svc.CreateQuote(context.Background(), &dto.QuoteRequest{
		CustomerName:  "  Jordan Reyes  ",
		CustomerEmail: "Jordan@Example.COM",
		Items: []dto.OrderItemRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuote failed: %v", err)
	}

	if res.Status != string(model.StatusNewLead) {
		t.Errorf("Expected status NEW_LEAD, got %s", res.Status)
	}
	if res.CustomerName != "Jordan Reyes" {
		t.Errorf("Expected trimmed name, got %q", res.CustomerName)
	}
	if res.CustomerEmail != "jordan@example.com" {
		t.Errorf("Expected lowercased email, got %q", res.CustomerEmail)
	}
	if res.Total != 5099.99 {
		t.Errorf("Expected total 5099.99, got %v", res.Total)
	}

	if len(store.created) != 1 {
		t.Fatalf("Expected 1 stored order, got %d", len(store.created))
	}
	if !store.created[0].Total.Equal(decimal.RequireFromString("5099.99")) {
		t.Errorf("Expected stored decimal total 5099.99, got %s", store.created[0].Total)
	}
}

func TestOrderService_CreateQuoteRejectsInactiveProduct(t *testing.T) {
	store := newStubOrderStore()
	finder := &stubProductFinder{products: map[uint]*model.Product{
		1: testProduct(1, "2500.00", false),
	}}
	svc := newTestOrderService(store, finder)

	_, err := svc.CreateQuote(context.Background(), &dto.QuoteRequest{
		CustomerName:  "Jordan Reyes",
		CustomerEmail: "jordan@example.com",
		Items:         []dto.OrderItemRequest{{ProductID: 1, Quantity: 1}},
	})
	if !errors.Is(err, apperrors.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
	if len(store.created) != 0 {
		t.Errorf("Expected no order to be stored, got %d", len(store.created))
	}
}

func TestOrderService_CreateCheckout(t *testing.T) {
	store := newStubOrderStore()
	finder := &stubProductFinder{products: map[uint]*model.Product{
		1: testProduct(1, "1200.50", true),
	}}
	svc := newTestOrderService(store, finder)

	res, err := svc.CreateCheckout(context.Background(), &dto.CheckoutRequest{
		CustomerName:  "Sam Ortiz",
		CustomerEmail: "sam@example.com",
		Items:         []dto.OrderItemRequest{{ProductID: 1, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("CreateCheckout failed: %v", err)
	}

	if res.Status != string(model.StatusPending) {
		t.Errorf("Expected status PENDING, got %s", res.Status)
	}
	if res.Total != 3601.50 {
		t.Errorf("Expected total 3601.50, got %v", res.Total)
	}
}

func seedOrder(store *stubOrderStore, id uint, status model.OrderStatus) *model.Order {
	order := &model.Order{Status: status}
	order.ID = id
	store.orders[id] = order
	return order
}

func TestOrderService_SetStatus(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})
	seedOrder(store, 1, model.StatusNewLead)

	res, err := svc.SetStatus(context.Background(), 1, "LEAD", 7)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if res.Status != string(model.StatusLead) {
		t.Errorf("Expected status LEAD, got %s", res.Status)
	}
	if store.statusSets[1] != model.StatusLead {
		t.Errorf("Expected stored status LEAD, got %s", store.statusSets[1])
	}
}

func TestOrderService_SetStatusRejectsIllegalTransition(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})
	seedOrder(store, 1, model.StatusCompleted)

	_, err := svc.SetStatus(context.Background(), 1, "LEAD", 7)
	if !errors.Is(err, apperrors.ErrIllegalTransition) {
		t.Errorf("Expected ErrIllegalTransition, got %v", err)
	}
	if _, ok := store.statusSets[1]; ok {
		t.Error("Expected no status write after a rejected transition")
	}
}

func TestOrderService_SetStatusRejectsUnknownStatus(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})
	seedOrder(store, 1, model.StatusLead)

	_, err := svc.SetStatus(context.Background(), 1, "SHIPPED", 7)
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestOrderService_SetStatusSameStatusIsNoOp(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})
	seedOrder(store, 1, model.StatusLead)

	res, err := svc.SetStatus(context.Background(), 1, "LEAD", 7)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if res.Status != string(model.StatusLead) {
		t.Errorf("Expected status LEAD, got %s", res.Status)
	}
	if _, ok := store.statusSets[1]; ok {
		t.Error("Expected no status write for a same-status update")
	}
}

func TestOrderService_SetStatusMissingOrder(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})

	_, err := svc.SetStatus(context.Background(), 99, "LEAD", 7)
	if !errors.Is(err, apperrors.ErrOrderNotFound) {
		t.Errorf("Expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_ListSweepsLeadViews(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})

	if _, _, _, err := svc.List(context.Background(), "LEAD", 10, 0); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if store.sweepCalls != 1 {
		t.Errorf("Expected 1 sweep for a lead view, got %d", store.sweepCalls)
	}

	if _, _, _, err := svc.List(context.Background(), "", 10, 0); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if store.sweepCalls != 2 {
		t.Errorf("Expected a sweep for the unfiltered view, got %d calls", store.sweepCalls)
	}

	if _, _, _, err := svc.List(context.Background(), "PAID", 10, 0); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if store.sweepCalls != 2 {
		t.Errorf("Expected no sweep for a PAID view, got %d calls", store.sweepCalls)
	}
}

func TestOrderService_ListSurvivesSweepFailure(t *testing.T) {
	store := newStubOrderStore()
	store.sweepErr = errors.New("deadlock detected")
	svc := newTestOrderService(store, &stubProductFinder{})
	seedOrder(store, 1, model.StatusLead)

	orders, total, _, err := svc.List(context.Background(), "LEAD", 10, 0)
	if err != nil {
		t.Fatalf("Expected listing to survive a sweep failure, got %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Errorf("Expected 1 order, got %d (total %d)", len(orders), total)
	}
}

func TestOrderService_ListRejectsUnknownStatusFilter(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})

	_, _, _, err := svc.List(context.Background(), "SHIPPED", 10, 0)
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestOrderService_ExpireStaleLeadsCutoff(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})

	before := time.Now().Add(-30 * 24 * time.Hour)
	if _, err := svc.ExpireStaleLeads(context.Background()); err != nil {
		t.Fatalf("ExpireStaleLeads failed: %v", err)
	}
	after := time.Now().Add(-30 * 24 * time.Hour)

	if len(store.sweepCutoffs) != 1 {
		t.Fatalf("Expected 1 sweep, got %d", len(store.sweepCutoffs))
	}
	cutoff := store.sweepCutoffs[0]
	if cutoff.Before(before) || cutoff.After(after) {
		t.Errorf("Expected cutoff near %v, got %v", before, cutoff)
	}
}

func TestOrderService_ExpireStaleLeadsIsIdempotent(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})

	stale := seedOrder(store, 1, model.StatusLead)
	stale.CreatedAt = time.Now().Add(-60 * 24 * time.Hour)
	fresh := seedOrder(store, 2, model.StatusLead)
	fresh.CreatedAt = time.Now()

	expired, err := svc.ExpireStaleLeads(context.Background())
	if err != nil {
		t.Fatalf("ExpireStaleLeads failed: %v", err)
	}
	if expired != 1 {
		t.Errorf("Expected 1 expired lead, got %d", expired)
	}
	if stale.Status != model.StatusExpired {
		t.Errorf("Expected stale lead to be EXPIRED, got %s", stale.Status)
	}
	if fresh.Status != model.StatusLead {
		t.Errorf("Expected fresh lead to stay LEAD, got %s", fresh.Status)
	}

	expired, err = svc.ExpireStaleLeads(context.Background())
	if err != nil {
		t.Fatalf("ExpireStaleLeads failed: %v", err)
	}
	if expired != 0 {
		t.Errorf("Expected second sweep to expire nothing, got %d", expired)
	}
}

func TestOrderService_Assign(t *testing.T) {
	store := newStubOrderStore()
	svc := newTestOrderService(store, &stubProductFinder{})
	seedOrder(store, 1, model.StatusLead)

	if err := svc.Assign(context.Background(), 1, 5); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if store.orders[1].AssignedToID == nil || *store.orders[1].AssignedToID != 5 {
		t.Error("Expected order to be assigned to staff 5")
	}

	if err := svc.Assign(context.Background(), 99, 5); !errors.Is(err, apperrors.ErrOrderNotFound) {
		t.Errorf("Expected ErrOrderNotFound, got %v", err)
	}
}
