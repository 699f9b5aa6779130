package ordering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/partner"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByNumber(ctx context.Context, orderNumber string) (*ordering.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]ordering.Order), args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) FindByStatuses(ctx context.Context, statuses []ordering.OrderStatus) ([]ordering.Order, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *mockOrderRepo) FindLate(ctx context.Context, now time.Time) ([]ordering.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *mockOrderRepo) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) StartRoute(ctx context.Context, orderID uuid.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *mockOrderRepo) Finalize(ctx context.Context, orderID uuid.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type mockPanelRepo struct {
	mock.Mock
}

func (m *mockPanelRepo) FindByID(ctx context.Context, id uuid.UUID) (*ordering.SupplierPanel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.SupplierPanel), args.Error(1)
}

func (m *mockPanelRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]ordering.SupplierPanel, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.SupplierPanel), args.Error(1)
}

func (m *mockPanelRepo) FindConfirmedByOrderID(ctx context.Context, orderID uuid.UUID) (*ordering.SupplierPanel, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.SupplierPanel), args.Error(1)
}

func (m *mockPanelRepo) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]ordering.SupplierPanel, int64, error) {
	args := m.Called(ctx, supplierID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]ordering.SupplierPanel), args.Get(1).(int64), args.Error(2)
}

func (m *mockPanelRepo) Save(ctx context.Context, panel *ordering.SupplierPanel) error {
	args := m.Called(ctx, panel)
	return args.Error(0)
}

func (m *mockPanelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPanelRepo) SetCost(ctx context.Context, id uuid.UUID, cost decimal.Decimal) error {
	args := m.Called(ctx, id, cost)
	return args.Error(0)
}

func (m *mockPanelRepo) Approve(ctx context.Context, panelID uuid.UUID) (*ordering.SupplierPanel, error) {
	args := m.Called(ctx, panelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.SupplierPanel), args.Error(1)
}

func (m *mockPanelRepo) CancelWaiting(ctx context.Context, panelID uuid.UUID, reason string) (*ordering.SupplierPanel, error) {
	args := m.Called(ctx, panelID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.SupplierPanel), args.Error(1)
}

func (m *mockPanelRepo) CancelConfirmed(ctx context.Context, panelID uuid.UUID, reason string) (*ordering.SupplierPanel, error) {
	args := m.Called(ctx, panelID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.SupplierPanel), args.Error(1)
}

func (m *mockPanelRepo) ConfirmDelivery(ctx context.Context, panelID uuid.UUID, receiverName string, deliveredAt time.Time) (*ordering.SupplierPanel, error) {
	args := m.Called(ctx, panelID, receiverName, deliveredAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.SupplierPanel), args.Error(1)
}

func (m *mockPanelRepo) Expire(ctx context.Context, panelID uuid.UUID) (*ordering.SupplierPanel, error) {
	args := m.Called(ctx, panelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.SupplierPanel), args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]ordering.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindByGatewayID(ctx context.Context, gatewayID string) (*ordering.Payment, error) {
	args := m.Called(ctx, gatewayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Payment), args.Error(1)
}

func (m *mockPaymentRepo) Save(ctx context.Context, payment *ordering.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepo) MarkPaid(ctx context.Context, paymentID uuid.UUID, paidAt time.Time) error {
	args := m.Called(ctx, paymentID, paidAt)
	return args.Error(0)
}

func (m *mockPaymentRepo) CancelActive(ctx context.Context, paymentID uuid.UUID, refund decimal.Decimal) error {
	args := m.Called(ctx, paymentID, refund)
	return args.Error(0)
}

type mockSupplierRepo struct {
	mock.Mock
}

func (m *mockSupplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) FindByJID(ctx context.Context, jid string) (*partner.Supplier, error) {
	args := m.Called(ctx, jid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]partner.Supplier), args.Get(1).(int64), args.Error(2)
}

func (m *mockSupplierRepo) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *mockSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindByPhone(ctx context.Context, phone string) (*partner.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendText(ctx context.Context, to, text string) (*SendResult, error) {
	args := m.Called(ctx, to, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SendResult), args.Error(1)
}

func (m *mockNotifier) SendTemplate(ctx context.Context, to, template string, params map[string]string) (*SendResult, error) {
	args := m.Called(ctx, to, template, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SendResult), args.Error(1)
}

type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) Schedule(ctx context.Context, path string, payload any, delay time.Duration) error {
	args := m.Called(ctx, path, payload, delay)
	return args.Error(0)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateCharge(ctx context.Context, req CreateChargeRequest) (*ChargeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChargeResult), args.Error(1)
}

func (m *mockGateway) GetCharge(ctx context.Context, gatewayPaymentID string) (*ChargeStatus, error) {
	args := m.Called(ctx, gatewayPaymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChargeStatus), args.Error(1)
}

func (m *mockGateway) Refund(ctx context.Context, gatewayID string, amount decimal.Decimal) error {
	args := m.Called(ctx, gatewayID, amount)
	return args.Error(0)
}
