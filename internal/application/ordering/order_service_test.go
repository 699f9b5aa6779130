package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type orderServiceMocks struct {
	orderRepo    *mockOrderRepo
	panelRepo    *mockPanelRepo
	paymentRepo  *mockPaymentRepo
	customerRepo *mockCustomerRepo
	supplierRepo *mockSupplierRepo
	notifier     *mockNotifier
}

func newOrderService(t *testing.T) (*OrderService, *orderServiceMocks) {
	t.Helper()
	m := &orderServiceMocks{
		orderRepo:    new(mockOrderRepo),
		panelRepo:    new(mockPanelRepo),
		paymentRepo:  new(mockPaymentRepo),
		customerRepo: new(mockCustomerRepo),
		supplierRepo: new(mockSupplierRepo),
		notifier:     new(mockNotifier),
	}
	svc := NewOrderService(
		m.orderRepo, m.panelRepo, m.paymentRepo,
		m.customerRepo, m.supplierRepo,
		m.notifier, zap.NewNop(),
	)
	return svc, m
}

func TestOrderService_Finalize(t *testing.T) {
	orderID := uuid.New()

	confirmedPanelWithCost := func(t *testing.T) *ordering.SupplierPanel {
		panel := testPanel(t, orderID, uuid.New())
		assert.NoError(t, panel.Confirm())
		assert.NoError(t, panel.SetCost(decimal.NewFromInt(90)))
		return panel
	}

	t.Run("blocks while a required payment is active", func(t *testing.T) {
		svc, m := newOrderService(t)
		pending, err := ordering.NewPayment(orderID, ordering.PaymentTypeCardCredit, decimal.NewFromInt(200))
		assert.NoError(t, err)

		m.paymentRepo.On("FindByOrderID", mock.Anything, orderID).Return([]ordering.Payment{*pending}, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, orderID).Return(confirmedPanelWithCost(t), nil)

		_, err = svc.Finalize(context.Background(), orderID)

		assert.ErrorIs(t, err, shared.ErrPaymentPending)
		m.orderRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
	})

	paidPayment := func(t *testing.T) ordering.Payment {
		paid, err := ordering.NewPayment(orderID, ordering.PaymentTypePix, decimal.NewFromInt(200))
		assert.NoError(t, err)
		assert.NoError(t, paid.MarkPaid(time.Now()))
		return *paid
	}

	t.Run("an active boleto does not block", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := testOrder(t)
		boleto, err := ordering.NewPayment(orderID, ordering.PaymentTypeBoleto, decimal.NewFromInt(200))
		assert.NoError(t, err)

		m.paymentRepo.On("FindByOrderID", mock.Anything, orderID).Return([]ordering.Payment{*boleto, paidPayment(t)}, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, orderID).Return(confirmedPanelWithCost(t), nil)
		m.orderRepo.On("Finalize", mock.Anything, orderID).Return(nil)
		m.orderRepo.On("FindByID", mock.Anything, orderID).Return(order, nil)

		_, err = svc.Finalize(context.Background(), orderID)

		assert.NoError(t, err)
		m.orderRepo.AssertCalled(t, "Finalize", mock.Anything, orderID)
	})

	t.Run("blocks when nothing was ever paid", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.paymentRepo.On("FindByOrderID", mock.Anything, orderID).Return([]ordering.Payment{}, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, orderID).Return(confirmedPanelWithCost(t), nil)

		_, err := svc.Finalize(context.Background(), orderID)

		assert.ErrorIs(t, err, shared.ErrPaymentPending)
		m.orderRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
	})

	t.Run("blocks when the only payment was cancelled and refunded", func(t *testing.T) {
		svc, m := newOrderService(t)
		refunded, err := ordering.NewPayment(orderID, ordering.PaymentTypePix, decimal.NewFromInt(200))
		assert.NoError(t, err)
		assert.NoError(t, refunded.Cancel(decimal.NewFromInt(200)))

		m.paymentRepo.On("FindByOrderID", mock.Anything, orderID).Return([]ordering.Payment{*refunded}, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, orderID).Return(confirmedPanelWithCost(t), nil)

		_, err = svc.Finalize(context.Background(), orderID)

		assert.ErrorIs(t, err, shared.ErrPaymentPending)
		m.orderRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
	})

	t.Run("blocks when the confirmed panel has no cost", func(t *testing.T) {
		svc, m := newOrderService(t)
		panel := testPanel(t, orderID, uuid.New())
		assert.NoError(t, panel.Confirm())

		m.paymentRepo.On("FindByOrderID", mock.Anything, orderID).Return([]ordering.Payment{paidPayment(t)}, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, orderID).Return(panel, nil)

		_, err := svc.Finalize(context.Background(), orderID)

		assert.ErrorIs(t, err, shared.ErrCostUndefined)
	})

	t.Run("blocks when no panel is confirmed", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.paymentRepo.On("FindByOrderID", mock.Anything, orderID).Return([]ordering.Payment{}, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

		_, err := svc.Finalize(context.Background(), orderID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderService_StartRoute(t *testing.T) {
	t.Run("duplicate request is rejected by the guarded update", func(t *testing.T) {
		svc, m := newOrderService(t)
		orderID := uuid.New()

		m.orderRepo.On("StartRoute", mock.Anything, orderID).Return(shared.ErrAlreadyProcessed)

		_, err := svc.StartRoute(context.Background(), orderID)

		assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
		m.notifier.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("notifies the customer after the transition", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := testOrder(t)
		customer := testCustomer(t)
		order.CustomerID = customer.ID

		m.orderRepo.On("StartRoute", mock.Anything, order.ID).Return(nil)
		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		m.notifier.On("SendText", mock.Anything, customer.Phone, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)

		resp, err := svc.StartRoute(context.Background(), order.ID)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		m.notifier.AssertExpectations(t)
	})
}

func TestOrderService_Kanban(t *testing.T) {
	svc, m := newOrderService(t)

	pending := testOrder(t)
	producing := testOrder(t)
	assert.NoError(t, producing.StartProduction())
	onRoute := testOrder(t)
	assert.NoError(t, onRoute.StartProduction())
	assert.NoError(t, onRoute.StartRoute())

	paid, err := ordering.NewPayment(producing.ID, ordering.PaymentTypePix, decimal.NewFromInt(120))
	assert.NoError(t, err)
	assert.NoError(t, paid.MarkPaid(time.Now()))

	m.orderRepo.On("FindByStatuses", mock.Anything, mock.Anything).
		Return([]ordering.Order{*pending, *producing, *onRoute}, nil)
	m.panelRepo.On("FindByOrderID", mock.Anything, mock.Anything).Return([]ordering.SupplierPanel{}, nil)
	m.paymentRepo.On("FindByOrderID", mock.Anything, producing.ID).Return([]ordering.Payment{*paid}, nil)
	m.paymentRepo.On("FindByOrderID", mock.Anything, mock.Anything).Return([]ordering.Payment{}, nil)

	board, err := svc.Kanban(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, board.Pending.Total)
	assert.Equal(t, 1, board.Producing.Total)
	assert.Equal(t, 1, board.Delivering.Total)
	assert.True(t, board.Producing.Cards[0].IsPaid)
	assert.True(t, board.Producing.Cards[0].TotalAmount.Equal(decimal.NewFromInt(120)))
	assert.False(t, board.Pending.Cards[0].IsPaid)
}

func TestOrderService_WarnLate(t *testing.T) {
	t.Run("skips when the order was delivered before the callback", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := testOrder(t)
		assert.NoError(t, order.StartProduction())
		assert.NoError(t, order.StartRoute())
		assert.NoError(t, order.MarkDelivered())

		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		err := svc.WarnLate(context.Background(), order.ID)

		assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
		m.notifier.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pings the confirmed supplier when the deadline passed", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := testOrder(t)
		order.DeliveryUntil = time.Now().Add(-time.Hour)
		assert.NoError(t, order.StartProduction())
		supplier := testSupplier(t)
		panel := testPanel(t, order.ID, supplier.ID)
		assert.NoError(t, panel.Confirm())

		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, order.ID).Return(panel, nil)
		m.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		m.notifier.On("SendText", mock.Anything, supplier.JID, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)

		err := svc.WarnLate(context.Background(), order.ID)

		assert.NoError(t, err)
		m.notifier.AssertExpectations(t)
	})
}
