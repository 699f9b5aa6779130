package ordering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/partner"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type panelServiceMocks struct {
	panelRepo    *mockPanelRepo
	orderRepo    *mockOrderRepo
	paymentRepo  *mockPaymentRepo
	supplierRepo *mockSupplierRepo
	customerRepo *mockCustomerRepo
	notifier     *mockNotifier
	scheduler    *mockScheduler
}

func newPanelService(t *testing.T) (*PanelService, *panelServiceMocks) {
	t.Helper()
	m := &panelServiceMocks{
		panelRepo:    new(mockPanelRepo),
		orderRepo:    new(mockOrderRepo),
		paymentRepo:  new(mockPaymentRepo),
		supplierRepo: new(mockSupplierRepo),
		customerRepo: new(mockCustomerRepo),
		notifier:     new(mockNotifier),
		scheduler:    new(mockScheduler),
	}
	svc := NewPanelService(
		m.panelRepo, m.orderRepo, m.paymentRepo,
		m.supplierRepo, m.customerRepo,
		m.notifier, m.scheduler,
		DefaultPanelServiceConfig(), zap.NewNop(),
	)
	return svc, m
}

func testOrder(t *testing.T) *ordering.Order {
	t.Helper()
	order, err := ordering.NewOrder("PED-1001", uuid.New(), "Maria Souza",
		uuid.New(), "Buquê de rosas", time.Now().Add(6*time.Hour), ordering.DeliveryPeriodAfternoon)
	assert.NoError(t, err)
	return order
}

func testSupplier(t *testing.T) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier("Floricultura Jardim", "5511999990000@s.whatsapp.net", "+5511999990000", "São Paulo")
	assert.NoError(t, err)
	return supplier
}

func testCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Maria Souza", "+5511988880000", "maria@example.com")
	assert.NoError(t, err)
	return customer
}

func testPanel(t *testing.T, orderID, supplierID uuid.UUID) *ordering.SupplierPanel {
	t.Helper()
	panel, err := ordering.NewSupplierPanel(orderID, supplierID, decimal.NewFromInt(15), time.Now().Add(30*time.Minute))
	assert.NoError(t, err)
	return panel
}

func TestPanelService_Create(t *testing.T) {
	t.Run("creates panel, notifies supplier and schedules expiry", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		supplier := testSupplier(t)

		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		m.panelRepo.On("Save", mock.Anything, mock.AnythingOfType("*ordering.SupplierPanel")).Return(nil)
		m.notifier.On("SendTemplate", mock.Anything, supplier.JID, TemplateNewPanel, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)
		m.scheduler.On("Schedule", mock.Anything, WebhookPathExpirePanel, mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Create(context.Background(), CreatePanelRequest{
			OrderID:    order.ID,
			SupplierID: supplier.ID,
			Freight:    decimal.NewFromInt(15),
		})

		assert.NoError(t, err)
		assert.Equal(t, ordering.PanelStatusWaiting, resp.Status)
		m.notifier.AssertExpectations(t)
		m.scheduler.AssertExpectations(t)
	})

	t.Run("rejects order not waiting for a supplier", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		assert.NoError(t, order.StartProduction())

		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := svc.Create(context.Background(), CreatePanelRequest{
			OrderID:    order.ID,
			SupplierID: uuid.New(),
			Freight:    decimal.Zero,
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("rejects disabled supplier", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		supplier := testSupplier(t)
		assert.NoError(t, supplier.DisableUntil(time.Now().Add(24*time.Hour)))

		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)

		_, err := svc.Create(context.Background(), CreatePanelRequest{
			OrderID:    order.ID,
			SupplierID: supplier.ID,
			Freight:    decimal.Zero,
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SUPPLIER_DISABLED", domainErr.Code)
	})

	t.Run("panel is created even when the scheduler is down", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		supplier := testSupplier(t)

		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		m.panelRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.notifier.On("SendTemplate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("bridge offline"))
		m.scheduler.On("Schedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("scheduler down"))

		resp, err := svc.Create(context.Background(), CreatePanelRequest{
			OrderID:    order.ID,
			SupplierID: supplier.ID,
			Freight:    decimal.Zero,
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
	})
}

func TestPanelService_Approve(t *testing.T) {
	t.Run("approves and schedules follow-ups", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		customer := testCustomer(t)
		order.CustomerID = customer.ID
		panel := testPanel(t, order.ID, uuid.New())
		assert.NoError(t, panel.Confirm())

		m.panelRepo.On("Approve", mock.Anything, panel.ID).Return(panel, nil)
		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		m.notifier.On("SendText", mock.Anything, customer.Phone, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)
		m.scheduler.On("Schedule", mock.Anything, WebhookPathWarnLatePhoto, mock.Anything, mock.Anything).Return(nil)
		m.scheduler.On("Schedule", mock.Anything, WebhookPathWarnLateOrder, mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Approve(context.Background(), panel.ID)

		assert.NoError(t, err)
		assert.Equal(t, ordering.PanelStatusConfirmed, resp.Status)
		m.scheduler.AssertNumberOfCalls(t, "Schedule", 2)
	})

	t.Run("propagates the conditional-update rejection", func(t *testing.T) {
		svc, m := newPanelService(t)
		panelID := uuid.New()

		m.panelRepo.On("Approve", mock.Anything, panelID).Return(nil, shared.ErrAlreadyProcessed)

		_, err := svc.Approve(context.Background(), panelID)

		assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
		m.notifier.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("notification failure does not undo the approval", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		customer := testCustomer(t)
		order.CustomerID = customer.ID
		panel := testPanel(t, order.ID, uuid.New())
		assert.NoError(t, panel.Confirm())

		m.panelRepo.On("Approve", mock.Anything, panel.ID).Return(panel, nil)
		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		m.notifier.On("SendText", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("bridge offline"))
		m.scheduler.On("Schedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Approve(context.Background(), panel.ID)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
	})
}

func TestPanelService_CancelByAdmin(t *testing.T) {
	t.Run("requires a reason", func(t *testing.T) {
		svc, _ := newPanelService(t)

		_, err := svc.CancelByAdmin(context.Background(), uuid.New(), "")

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REASON", domainErr.Code)
	})

	t.Run("cancels and notifies the supplier", func(t *testing.T) {
		svc, m := newPanelService(t)
		supplier := testSupplier(t)
		panel := testPanel(t, uuid.New(), supplier.ID)
		assert.NoError(t, panel.Confirm())
		assert.NoError(t, panel.Cancel("produto indisponível"))

		m.panelRepo.On("CancelConfirmed", mock.Anything, panel.ID, "produto indisponível").Return(panel, nil)
		m.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		m.notifier.On("SendText", mock.Anything, supplier.JID, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)

		resp, err := svc.CancelByAdmin(context.Background(), panel.ID, "produto indisponível")

		assert.NoError(t, err)
		assert.Equal(t, ordering.PanelStatusCancelled, resp.Status)
	})
}

func TestPanelService_ConfirmDelivery(t *testing.T) {
	t.Run("delivery stands when the settlement gate still blocks finalize", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		customer := testCustomer(t)
		order.CustomerID = customer.ID
		panel := testPanel(t, order.ID, uuid.New())
		assert.NoError(t, panel.Confirm())
		assert.NoError(t, panel.SetCost(decimal.NewFromInt(80)))

		pending, err := ordering.NewPayment(order.ID, ordering.PaymentTypePix, decimal.NewFromInt(150))
		assert.NoError(t, err)

		m.panelRepo.On("ConfirmDelivery", mock.Anything, panel.ID, "João", mock.Anything).Return(panel, nil)
		m.paymentRepo.On("FindByOrderID", mock.Anything, order.ID).Return([]ordering.Payment{*pending}, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, order.ID).Return(panel, nil)
		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		m.notifier.On("SendText", mock.Anything, customer.Phone, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)

		resp, err := svc.ConfirmDelivery(context.Background(), panel.ID, "João")

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		m.orderRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
	})

	t.Run("finalizes when the gate passes", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		customer := testCustomer(t)
		order.CustomerID = customer.ID
		panel := testPanel(t, order.ID, uuid.New())
		assert.NoError(t, panel.Confirm())
		assert.NoError(t, panel.SetCost(decimal.NewFromInt(80)))

		paid, err := ordering.NewPayment(order.ID, ordering.PaymentTypePix, decimal.NewFromInt(150))
		assert.NoError(t, err)
		assert.NoError(t, paid.MarkPaid(time.Now()))

		m.panelRepo.On("ConfirmDelivery", mock.Anything, panel.ID, "João", mock.Anything).Return(panel, nil)
		m.paymentRepo.On("FindByOrderID", mock.Anything, order.ID).Return([]ordering.Payment{*paid}, nil)
		m.panelRepo.On("FindConfirmedByOrderID", mock.Anything, order.ID).Return(panel, nil)
		m.orderRepo.On("Finalize", mock.Anything, order.ID).Return(nil)
		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		m.notifier.On("SendText", mock.Anything, customer.Phone, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)

		_, err = svc.ConfirmDelivery(context.Background(), panel.ID, "João")

		assert.NoError(t, err)
		m.orderRepo.AssertCalled(t, "Finalize", mock.Anything, order.ID)
	})

	t.Run("propagates duplicate delivery rejection", func(t *testing.T) {
		svc, m := newPanelService(t)
		panelID := uuid.New()

		m.panelRepo.On("ConfirmDelivery", mock.Anything, panelID, "João", mock.Anything).
			Return(nil, shared.ErrAlreadyProcessed)

		_, err := svc.ConfirmDelivery(context.Background(), panelID, "João")

		assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
	})
}

func TestPanelService_Expire(t *testing.T) {
	t.Run("notifies supplier and customer after expiring", func(t *testing.T) {
		svc, m := newPanelService(t)
		order := testOrder(t)
		customer := testCustomer(t)
		order.CustomerID = customer.ID
		supplier := testSupplier(t)
		panel := testPanel(t, order.ID, supplier.ID)
		assert.NoError(t, panel.Cancel(ordering.ExpiryCancelReason))

		m.panelRepo.On("Expire", mock.Anything, panel.ID).Return(panel, nil)
		m.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		m.notifier.On("SendTemplate", mock.Anything, supplier.JID, TemplatePanelExpired, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)
		m.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		m.notifier.On("SendText", mock.Anything, customer.Phone, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)

		resp, err := svc.Expire(context.Background(), panel.ID)

		assert.NoError(t, err)
		assert.Equal(t, ordering.PanelStatusCancelled, resp.Status)
		m.notifier.AssertExpectations(t)
	})

	t.Run("rejects when the supplier answered before the callback", func(t *testing.T) {
		svc, m := newPanelService(t)
		panelID := uuid.New()

		m.panelRepo.On("Expire", mock.Anything, panelID).Return(nil, shared.ErrAlreadyProcessed)

		_, err := svc.Expire(context.Background(), panelID)

		assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
		m.notifier.AssertNotCalled(t, "SendTemplate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPanelService_WarnLatePhoto(t *testing.T) {
	t.Run("skips when the photo already arrived", func(t *testing.T) {
		svc, m := newPanelService(t)
		panel := testPanel(t, uuid.New(), uuid.New())
		assert.NoError(t, panel.Confirm())
		panel.SetPhotoKey("panels/abc/photo.jpg")

		m.panelRepo.On("FindByID", mock.Anything, panel.ID).Return(panel, nil)

		err := svc.WarnLatePhoto(context.Background(), panel.ID)

		assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
	})

	t.Run("nudges the supplier while the photo is missing", func(t *testing.T) {
		svc, m := newPanelService(t)
		supplier := testSupplier(t)
		panel := testPanel(t, uuid.New(), supplier.ID)
		assert.NoError(t, panel.Confirm())

		m.panelRepo.On("FindByID", mock.Anything, panel.ID).Return(panel, nil)
		m.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		m.notifier.On("SendTemplate", mock.Anything, supplier.JID, TemplateLatePhoto, mock.Anything).
			Return(&SendResult{Status: DeliveryStatusSent}, nil)

		err := svc.WarnLatePhoto(context.Background(), panel.ID)

		assert.NoError(t, err)
		m.notifier.AssertExpectations(t)
	})
}

func TestPanelService_Delete(t *testing.T) {
	t.Run("rejects confirmed panels", func(t *testing.T) {
		svc, m := newPanelService(t)
		panel := testPanel(t, uuid.New(), uuid.New())
		assert.NoError(t, panel.Confirm())

		m.panelRepo.On("FindByID", mock.Anything, panel.ID).Return(panel, nil)

		err := svc.Delete(context.Background(), panel.ID)

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		m.panelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes waiting panels", func(t *testing.T) {
		svc, m := newPanelService(t)
		panel := testPanel(t, uuid.New(), uuid.New())

		m.panelRepo.On("FindByID", mock.Anything, panel.ID).Return(panel, nil)
		m.panelRepo.On("Delete", mock.Anything, panel.ID).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), panel.ID))
	})
}
